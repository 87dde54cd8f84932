package genre

import (
	"context"

	"github.com/google/uuid"
)

// Service owns the genre business rules, in particular the
// duplicate-name semantics: creating a genre whose exact name already
// exists yields the existing record instead of a second one.
type Service interface {
	List(ctx context.Context) ([]Genre, error)
	Get(ctx context.Context, id uuid.UUID) (*Genre, error)

	// Create returns the existing genre when the name is already
	// taken; callers redirect to the returned record's URL either way.
	Create(ctx context.Context, f Form) (*Genre, error)

	Update(ctx context.Context, f Form) (*Genre, error)

	// Delete returns ErrHasBooks while books carry the genre.
	Delete(ctx context.Context, id uuid.UUID) error

	Count(ctx context.Context) (int, error)
}
