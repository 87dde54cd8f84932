package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"library-catalog/internal/domains/bookinstance"
)

type instanceService struct {
	repo bookinstance.Repository
}

func NewBookInstanceService(repo bookinstance.Repository) bookinstance.Service {
	return &instanceService{repo: repo}
}

func (s *instanceService) List(ctx context.Context) ([]bookinstance.BookInstance, error) {
	return s.repo.List(ctx)
}

func (s *instanceService) Get(ctx context.Context, id uuid.UUID) (*bookinstance.BookInstance, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *instanceService) ListByBook(ctx context.Context, bookID uuid.UUID) ([]bookinstance.BookInstance, error) {
	return s.repo.ListByBook(ctx, bookID)
}

func (s *instanceService) Create(ctx context.Context, f bookinstance.Form) (*bookinstance.BookInstance, error) {
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("invalid book instance: %w", err)
	}

	bi := f.Model()
	bi.ID = uuid.New()

	if err := s.repo.Insert(ctx, bi); err != nil {
		return nil, err
	}
	return bi, nil
}

func (s *instanceService) Update(ctx context.Context, f bookinstance.Form) (*bookinstance.BookInstance, error) {
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("invalid book instance: %w", err)
	}

	bi := f.Model()
	if err := s.repo.Replace(ctx, bi); err != nil {
		return nil, err
	}
	return bi, nil
}

func (s *instanceService) Delete(ctx context.Context, id uuid.UUID) error {
	// Copies have no dependents; deleting an absent id is a no-op.
	_, err := s.repo.Delete(ctx, id)
	return err
}

func (s *instanceService) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

func (s *instanceService) CountAvailable(ctx context.Context) (int, error) {
	return s.repo.CountByStatus(ctx, bookinstance.StatusAvailable)
}
