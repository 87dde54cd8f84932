package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"library-catalog/internal/domains/author"
	"library-catalog/internal/domains/book"
)

type authorService struct {
	repo  author.Repository
	books book.Repository
}

func NewAuthorService(repo author.Repository, books book.Repository) author.Service {
	return &authorService{repo: repo, books: books}
}

func (s *authorService) List(ctx context.Context) ([]author.Author, error) {
	return s.repo.List(ctx)
}

func (s *authorService) Get(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *authorService) Create(ctx context.Context, f author.Form) (*author.Author, error) {
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("invalid author: %w", err)
	}

	a := f.Model()
	a.ID = uuid.New()

	if err := s.repo.Insert(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *authorService) Update(ctx context.Context, f author.Form) (*author.Author, error) {
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("invalid author: %w", err)
	}

	// The candidate must carry the original id; replacing under uuid.Nil
	// would target no row and surface as ErrNotFound.
	a := f.Model()
	if err := s.repo.Replace(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *authorService) Delete(ctx context.Context, id uuid.UUID) error {
	books, err := s.books.ListByAuthor(ctx, id)
	if err != nil {
		return err
	}
	if len(books) > 0 {
		return author.ErrHasBooks
	}

	// Zero rows affected means the author was already gone, which the
	// delete flow treats as success.
	if _, err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	return nil
}

func (s *authorService) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
