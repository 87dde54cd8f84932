package bookinstance

import "errors"

var (
	// ErrNotFound means the identifier did not resolve to a copy.
	ErrNotFound = errors.New("book instance not found")

	// ErrBookNotFound surfaces a broken book reference at write time.
	ErrBookNotFound = errors.New("referenced book does not exist")
)
