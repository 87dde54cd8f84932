package book

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the book persistence contract. Reads resolve the
// author reference (and genres, where listed) for display; writes keep
// the genre links in step with the record inside one transaction.
type Repository interface {
	// List returns all books sorted by title with the author resolved.
	List(ctx context.Context) ([]Book, error)

	// GetByID returns the book with author and genres resolved, or
	// ErrNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*Book, error)

	// ListByAuthor returns the books referencing the author, sorted by
	// title.
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]Book, error)

	// ListByGenre returns the books carrying the genre, sorted by title.
	ListByGenre(ctx context.Context, genreID uuid.UUID) ([]Book, error)

	// Insert writes the book and its genre links atomically.
	Insert(ctx context.Context, b *Book, genreIDs []uuid.UUID) error

	// Replace overwrites the record under its existing id, rewrites the
	// genre links, and returns ErrNotFound when no row matched.
	Replace(ctx context.Context, b *Book, genreIDs []uuid.UUID) error

	// Delete removes by id and reports the number of rows affected.
	Delete(ctx context.Context, id uuid.UUID) (int64, error)

	Count(ctx context.Context) (int, error)
}
