package author

import "errors"

var (
	// ErrNotFound means the identifier did not resolve to an author.
	ErrNotFound = errors.New("author not found")

	// ErrHasBooks blocks deletion while books still reference the author.
	ErrHasBooks = errors.New("author has dependent books")
)
