package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-catalog/internal/domains/bookinstance"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) bookinstance.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) List(ctx context.Context) ([]bookinstance.BookInstance, error) {
	const query = `
		SELECT bi.id, bi.book_id, COALESCE(b.title, ''), bi.imprint, bi.status, bi.due_back
		FROM book_instances bi
		LEFT JOIN books b ON bi.book_id = b.id
		ORDER BY b.title, bi.imprint
	`
	return r.queryInstances(ctx, query)
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*bookinstance.BookInstance, error) {
	const query = `
		SELECT bi.id, bi.book_id, COALESCE(b.title, ''), bi.imprint, bi.status, bi.due_back
		FROM book_instances bi
		LEFT JOIN books b ON bi.book_id = b.id
		WHERE bi.id = $1
	`

	bi := &bookinstance.BookInstance{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&bi.ID, &bi.BookID, &bi.BookTitle, &bi.Imprint, &bi.Status, &bi.DueBack,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, bookinstance.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get book instance: %w", err)
	}

	return bi, nil
}

func (r *postgresRepository) ListByBook(ctx context.Context, bookID uuid.UUID) ([]bookinstance.BookInstance, error) {
	const query = `
		SELECT bi.id, bi.book_id, COALESCE(b.title, ''), bi.imprint, bi.status, bi.due_back
		FROM book_instances bi
		LEFT JOIN books b ON bi.book_id = b.id
		WHERE bi.book_id = $1
		ORDER BY bi.imprint
	`
	return r.queryInstances(ctx, query, bookID)
}

func (r *postgresRepository) Insert(ctx context.Context, bi *bookinstance.BookInstance) error {
	const query = `
		INSERT INTO book_instances (id, book_id, imprint, status, due_back)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query, bi.ID, bi.BookID, bi.Imprint, bi.Status, bi.DueBack)
	if err != nil {
		return mapReferenceError(err, "failed to insert book instance")
	}
	return nil
}

func (r *postgresRepository) Replace(ctx context.Context, bi *bookinstance.BookInstance) error {
	const query = `
		UPDATE book_instances
		SET book_id = $2, imprint = $3, status = $4, due_back = $5
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, bi.ID, bi.BookID, bi.Imprint, bi.Status, bi.DueBack)
	if err != nil {
		return mapReferenceError(err, "failed to replace book instance")
	}
	if tag.RowsAffected() == 0 {
		return bookinstance.ErrNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM book_instances WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete book instance: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *postgresRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM book_instances`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count book instances: %w", err)
	}
	return count, nil
}

func (r *postgresRepository) CountByStatus(ctx context.Context, status bookinstance.Status) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM book_instances WHERE status = $1`, status,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count book instances by status: %w", err)
	}
	return count, nil
}

func (r *postgresRepository) queryInstances(ctx context.Context, query string, args ...interface{}) ([]bookinstance.BookInstance, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list book instances: %w", err)
	}
	defer rows.Close()

	instances := make([]bookinstance.BookInstance, 0)
	for rows.Next() {
		var bi bookinstance.BookInstance
		if err := rows.Scan(&bi.ID, &bi.BookID, &bi.BookTitle, &bi.Imprint, &bi.Status, &bi.DueBack); err != nil {
			return nil, fmt.Errorf("failed to scan book instance: %w", err)
		}
		instances = append(instances, bi)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return instances, nil
}

func mapReferenceError(err error, msg string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.ConstraintName == "book_instances_book_id_fkey" {
			return bookinstance.ErrBookNotFound
		}
	}
	return fmt.Errorf("%s: %w", msg, err)
}
