package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"library-catalog/internal/domains/book"
	"library-catalog/internal/domains/genre"
)

type genreService struct {
	repo  genre.Repository
	books book.Repository
}

func NewGenreService(repo genre.Repository, books book.Repository) genre.Service {
	return &genreService{repo: repo, books: books}
}

func (s *genreService) List(ctx context.Context) ([]genre.Genre, error) {
	return s.repo.List(ctx)
}

func (s *genreService) Get(ctx context.Context, id uuid.UUID) (*genre.Genre, error) {
	return s.repo.GetByID(ctx, id)
}

// Create never persists a duplicate name. The common duplicate path is
// caught by the lookup and does not write at all; the race between
// lookup and insert is closed by the unique index, in which case the
// genre that won the name is fetched and returned.
func (s *genreService) Create(ctx context.Context, f genre.Form) (*genre.Genre, error) {
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("invalid genre: %w", err)
	}

	existing, err := s.repo.GetByName(ctx, f.Name)
	if err != nil && !errors.Is(err, genre.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	g := f.Model()
	g.ID = uuid.New()

	inserted, err := s.repo.Insert(ctx, g)
	if err != nil {
		return nil, err
	}
	if !inserted {
		return s.repo.GetByName(ctx, f.Name)
	}
	return g, nil
}

func (s *genreService) Update(ctx context.Context, f genre.Form) (*genre.Genre, error) {
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("invalid genre: %w", err)
	}

	g := f.Model()
	if err := s.repo.Replace(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *genreService) Delete(ctx context.Context, id uuid.UUID) error {
	books, err := s.books.ListByGenre(ctx, id)
	if err != nil {
		return err
	}
	if len(books) > 0 {
		return genre.ErrHasBooks
	}

	if _, err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	return nil
}

func (s *genreService) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
