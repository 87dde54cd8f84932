package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-catalog/internal/domains/author"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) author.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) List(ctx context.Context) ([]author.Author, error) {
	const query = `
		SELECT id, first_name, family_name, date_of_birth, date_of_death
		FROM authors
		ORDER BY family_name, first_name
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}
	defer rows.Close()

	authors := make([]author.Author, 0)
	for rows.Next() {
		var a author.Author
		if err := rows.Scan(&a.ID, &a.FirstName, &a.FamilyName, &a.DateOfBirth, &a.DateOfDeath); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return authors, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	const query = `
		SELECT id, first_name, family_name, date_of_birth, date_of_death
		FROM authors
		WHERE id = $1
	`

	a := &author.Author{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.FirstName, &a.FamilyName, &a.DateOfBirth, &a.DateOfDeath,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get author: %w", err)
	}

	return a, nil
}

func (r *postgresRepository) Insert(ctx context.Context, a *author.Author) error {
	const query = `
		INSERT INTO authors (id, first_name, family_name, date_of_birth, date_of_death)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query,
		a.ID, a.FirstName, a.FamilyName, a.DateOfBirth, a.DateOfDeath,
	)
	if err != nil {
		return fmt.Errorf("failed to insert author: %w", err)
	}
	return nil
}

func (r *postgresRepository) Replace(ctx context.Context, a *author.Author) error {
	const query = `
		UPDATE authors
		SET first_name = $2, family_name = $3, date_of_birth = $4, date_of_death = $5
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		a.ID, a.FirstName, a.FamilyName, a.DateOfBirth, a.DateOfDeath,
	)
	if err != nil {
		return fmt.Errorf("failed to replace author: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return author.ErrNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete author: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *postgresRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM authors`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count authors: %w", err)
	}
	return count, nil
}
