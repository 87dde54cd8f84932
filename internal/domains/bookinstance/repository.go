package bookinstance

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the book-instance persistence contract. Reads resolve
// the book reference to its title for display.
type Repository interface {
	// List returns all copies sorted by the referenced book's title.
	List(ctx context.Context) ([]BookInstance, error)

	// GetByID returns ErrNotFound when the id does not resolve.
	GetByID(ctx context.Context, id uuid.UUID) (*BookInstance, error)

	// ListByBook returns the copies of one book, sorted by imprint.
	ListByBook(ctx context.Context, bookID uuid.UUID) ([]BookInstance, error)

	Insert(ctx context.Context, bi *BookInstance) error

	// Replace overwrites the record under its existing id and returns
	// ErrNotFound when no row matched.
	Replace(ctx context.Context, bi *BookInstance) error

	// Delete removes by id and reports the number of rows affected.
	Delete(ctx context.Context, id uuid.UUID) (int64, error)

	Count(ctx context.Context) (int, error)

	// CountByStatus counts copies in one state, e.g. Available for the
	// home page.
	CountByStatus(ctx context.Context, status Status) (int, error)
}
