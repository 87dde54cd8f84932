package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"library-catalog/internal/domains/book"
	"library-catalog/internal/domains/bookinstance"
)

type bookService struct {
	repo      book.Repository
	instances bookinstance.Repository
}

func NewBookService(repo book.Repository, instances bookinstance.Repository) book.Service {
	return &bookService{repo: repo, instances: instances}
}

func (s *bookService) List(ctx context.Context) ([]book.Book, error) {
	return s.repo.List(ctx)
}

func (s *bookService) Get(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *bookService) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]book.Book, error) {
	return s.repo.ListByAuthor(ctx, authorID)
}

func (s *bookService) ListByGenre(ctx context.Context, genreID uuid.UUID) ([]book.Book, error) {
	return s.repo.ListByGenre(ctx, genreID)
}

func (s *bookService) Create(ctx context.Context, f book.Form) (*book.Book, error) {
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("invalid book: %w", err)
	}

	b := f.Model()
	b.ID = uuid.New()

	if err := s.repo.Insert(ctx, b, f.GenreIDs); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *bookService) Update(ctx context.Context, f book.Form) (*book.Book, error) {
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("invalid book: %w", err)
	}

	b := f.Model()
	if err := s.repo.Replace(ctx, b, f.GenreIDs); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *bookService) Delete(ctx context.Context, id uuid.UUID) error {
	copies, err := s.instances.ListByBook(ctx, id)
	if err != nil {
		return err
	}
	if len(copies) > 0 {
		return book.ErrHasInstances
	}

	if _, err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	return nil
}

func (s *bookService) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
