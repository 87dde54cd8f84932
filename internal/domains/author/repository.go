package author

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the author persistence contract. It mirrors the
// document-store operation set the handlers were written against:
// sorted list, get by id, count, insert, replace by id, delete by id.
type Repository interface {
	// List returns all authors sorted by family name.
	List(ctx context.Context) ([]Author, error)

	// GetByID returns ErrNotFound when the id does not resolve.
	GetByID(ctx context.Context, id uuid.UUID) (*Author, error)

	Insert(ctx context.Context, a *Author) error

	// Replace overwrites the full record under its existing id and
	// returns ErrNotFound when no row matched.
	Replace(ctx context.Context, a *Author) error

	// Delete removes by id and reports the number of rows affected;
	// deleting an absent id is not an error.
	Delete(ctx context.Context, id uuid.UUID) (int64, error)

	Count(ctx context.Context) (int, error)
}
