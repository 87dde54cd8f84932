package book

import "errors"

var (
	// ErrNotFound means the identifier did not resolve to a book.
	ErrNotFound = errors.New("book not found")

	// ErrHasInstances blocks deletion while copies of the book exist.
	ErrHasInstances = errors.New("book has dependent instances")

	// ErrAuthorNotFound surfaces a broken author reference at write time.
	ErrAuthorNotFound = errors.New("referenced author does not exist")

	// ErrGenreNotFound surfaces a broken genre reference at write time.
	ErrGenreNotFound = errors.New("referenced genre does not exist")
)
