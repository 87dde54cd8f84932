package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-catalog/internal/domains/genre"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) genre.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) List(ctx context.Context) ([]genre.Genre, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM genres ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list genres: %w", err)
	}
	defer rows.Close()

	genres := make([]genre.Genre, 0)
	for rows.Next() {
		var g genre.Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, fmt.Errorf("failed to scan genre: %w", err)
		}
		genres = append(genres, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return genres, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*genre.Genre, error) {
	g := &genre.Genre{}
	err := r.pool.QueryRow(ctx, `SELECT id, name FROM genres WHERE id = $1`, id).
		Scan(&g.ID, &g.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, genre.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get genre: %w", err)
	}
	return g, nil
}

func (r *postgresRepository) GetByName(ctx context.Context, name string) (*genre.Genre, error) {
	g := &genre.Genre{}
	err := r.pool.QueryRow(ctx, `SELECT id, name FROM genres WHERE name = $1`, name).
		Scan(&g.ID, &g.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, genre.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get genre by name: %w", err)
	}
	return g, nil
}

// Insert relies on the unique index on genres.name: a name collision is
// not an error, it just reports that nothing was inserted so the caller
// can fetch the record that won.
func (r *postgresRepository) Insert(ctx context.Context, g *genre.Genre) (bool, error) {
	const query = `
		INSERT INTO genres (id, name)
		VALUES ($1, $2)
		ON CONFLICT (name) DO NOTHING
		RETURNING id
	`

	var inserted uuid.UUID
	err := r.pool.QueryRow(ctx, query, g.ID, g.Name).Scan(&inserted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to insert genre: %w", err)
	}
	return true, nil
}

func (r *postgresRepository) Replace(ctx context.Context, g *genre.Genre) error {
	tag, err := r.pool.Exec(ctx, `UPDATE genres SET name = $2 WHERE id = $1`, g.ID, g.Name)
	if err != nil {
		return fmt.Errorf("failed to replace genre: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return genre.ErrNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM genres WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete genre: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *postgresRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM genres`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count genres: %w", err)
	}
	return count, nil
}
