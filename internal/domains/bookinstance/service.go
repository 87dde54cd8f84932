package bookinstance

import (
	"context"

	"github.com/google/uuid"
)

// Service owns the book-instance business rules. Deletion is
// unguarded: nothing references a copy.
type Service interface {
	List(ctx context.Context) ([]BookInstance, error)
	Get(ctx context.Context, id uuid.UUID) (*BookInstance, error)
	ListByBook(ctx context.Context, bookID uuid.UUID) ([]BookInstance, error)
	Create(ctx context.Context, f Form) (*BookInstance, error)
	Update(ctx context.Context, f Form) (*BookInstance, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int, error)
	CountAvailable(ctx context.Context) (int, error)
}
