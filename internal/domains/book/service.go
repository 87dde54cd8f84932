package book

import (
	"context"

	"github.com/google/uuid"
)

// Service owns the book business rules.
type Service interface {
	List(ctx context.Context) ([]Book, error)
	Get(ctx context.Context, id uuid.UUID) (*Book, error)
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]Book, error)
	ListByGenre(ctx context.Context, genreID uuid.UUID) ([]Book, error)
	Create(ctx context.Context, f Form) (*Book, error)
	Update(ctx context.Context, f Form) (*Book, error)

	// Delete returns ErrHasInstances while copies of the book exist.
	Delete(ctx context.Context, id uuid.UUID) error

	Count(ctx context.Context) (int, error)
}
