package author

import (
	"context"

	"github.com/google/uuid"
)

// Service owns the author business rules: constraint re-checks before
// persistence, id assignment on create, and the delete guard.
type Service interface {
	List(ctx context.Context) ([]Author, error)
	Get(ctx context.Context, id uuid.UUID) (*Author, error)
	Create(ctx context.Context, f Form) (*Author, error)
	Update(ctx context.Context, f Form) (*Author, error)

	// Delete returns ErrHasBooks while books reference the author.
	// Deleting an id that no longer exists succeeds.
	Delete(ctx context.Context, id uuid.UUID) error

	Count(ctx context.Context) (int, error)
}
