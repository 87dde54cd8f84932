package genre

import "errors"

var (
	// ErrNotFound means the identifier (or exact name, for GetByName)
	// did not resolve to a genre.
	ErrNotFound = errors.New("genre not found")

	// ErrHasBooks blocks deletion while books still carry the genre.
	ErrHasBooks = errors.New("genre has dependent books")
)
