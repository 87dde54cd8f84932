package genre

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the genre persistence contract.
type Repository interface {
	// List returns all genres sorted by name.
	List(ctx context.Context) ([]Genre, error)

	// GetByID returns ErrNotFound when the id does not resolve.
	GetByID(ctx context.Context, id uuid.UUID) (*Genre, error)

	// GetByName does a case-sensitive exact-match lookup and returns
	// ErrNotFound when no genre carries the name.
	GetByName(ctx context.Context, name string) (*Genre, error)

	// Insert adds the genre unless its name is already taken; it
	// reports false without error when a concurrent writer won the
	// name first.
	Insert(ctx context.Context, g *Genre) (bool, error)

	// Replace overwrites the record under its existing id and returns
	// ErrNotFound when no row matched.
	Replace(ctx context.Context, g *Genre) error

	// Delete removes by id and reports the number of rows affected.
	Delete(ctx context.Context, id uuid.UUID) (int64, error)

	Count(ctx context.Context) (int, error)
}
