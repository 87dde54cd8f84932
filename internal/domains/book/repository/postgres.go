package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-catalog/internal/domains/book"
)

// authorNameExpr resolves the author reference to its display name in
// SQL, matching Author.Name: blank when either part is missing.
const authorNameExpr = `
	COALESCE(
		CASE
			WHEN a.first_name = '' OR a.family_name = '' THEN ''
			ELSE a.family_name || ', ' || a.first_name
		END,
	'')
`

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) book.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) List(ctx context.Context) ([]book.Book, error) {
	query := `
		SELECT b.id, b.title, b.summary, b.isbn, b.author_id, ` + authorNameExpr + ` AS author_name
		FROM books b
		LEFT JOIN authors a ON b.author_id = a.id
		ORDER BY b.title
	`
	return r.queryBooks(ctx, query)
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	query := `
		SELECT b.id, b.title, b.summary, b.isbn, b.author_id, ` + authorNameExpr + ` AS author_name
		FROM books b
		LEFT JOIN authors a ON b.author_id = a.id
		WHERE b.id = $1
	`

	b := &book.Book{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.Title, &b.Summary, &b.ISBN, &b.AuthorID, &b.AuthorName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get book: %w", err)
	}

	genres, err := r.genresFor(ctx, id)
	if err != nil {
		return nil, err
	}
	b.Genres = genres

	return b, nil
}

func (r *postgresRepository) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]book.Book, error) {
	query := `
		SELECT b.id, b.title, b.summary, b.isbn, b.author_id, ` + authorNameExpr + ` AS author_name
		FROM books b
		LEFT JOIN authors a ON b.author_id = a.id
		WHERE b.author_id = $1
		ORDER BY b.title
	`
	return r.queryBooks(ctx, query, authorID)
}

func (r *postgresRepository) ListByGenre(ctx context.Context, genreID uuid.UUID) ([]book.Book, error) {
	query := `
		SELECT b.id, b.title, b.summary, b.isbn, b.author_id, ` + authorNameExpr + ` AS author_name
		FROM books b
		LEFT JOIN authors a ON b.author_id = a.id
		JOIN book_genres bg ON bg.book_id = b.id
		WHERE bg.genre_id = $1
		ORDER BY b.title
	`
	return r.queryBooks(ctx, query, genreID)
}

func (r *postgresRepository) Insert(ctx context.Context, b *book.Book, genreIDs []uuid.UUID) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	const query = `
		INSERT INTO books (id, title, summary, isbn, author_id)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := tx.Exec(ctx, query, b.ID, b.Title, b.Summary, b.ISBN, b.AuthorID); err != nil {
		return mapReferenceError(err, "failed to insert book")
	}

	if err := insertGenreLinks(ctx, tx, b.ID, genreIDs); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit book insert: %w", err)
	}
	return nil
}

func (r *postgresRepository) Replace(ctx context.Context, b *book.Book, genreIDs []uuid.UUID) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	const query = `
		UPDATE books
		SET title = $2, summary = $3, isbn = $4, author_id = $5
		WHERE id = $1
	`
	tag, err := tx.Exec(ctx, query, b.ID, b.Title, b.Summary, b.ISBN, b.AuthorID)
	if err != nil {
		return mapReferenceError(err, "failed to replace book")
	}
	if tag.RowsAffected() == 0 {
		return book.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM book_genres WHERE book_id = $1`, b.ID); err != nil {
		return fmt.Errorf("failed to clear genre links: %w", err)
	}
	if err := insertGenreLinks(ctx, tx, b.ID, genreIDs); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit book replace: %w", err)
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	// Genre links go with the book via ON DELETE CASCADE.
	tag, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete book: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *postgresRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM books`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count books: %w", err)
	}
	return count, nil
}

func (r *postgresRepository) queryBooks(ctx context.Context, query string, args ...interface{}) ([]book.Book, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	books := make([]book.Book, 0)
	for rows.Next() {
		var b book.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Summary, &b.ISBN, &b.AuthorID, &b.AuthorName); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return books, nil
}

func (r *postgresRepository) genresFor(ctx context.Context, bookID uuid.UUID) ([]book.GenreRef, error) {
	const query = `
		SELECT g.id, g.name
		FROM genres g
		JOIN book_genres bg ON bg.genre_id = g.id
		WHERE bg.book_id = $1
		ORDER BY g.name
	`

	rows, err := r.pool.Query(ctx, query, bookID)
	if err != nil {
		return nil, fmt.Errorf("failed to list book genres: %w", err)
	}
	defer rows.Close()

	genres := make([]book.GenreRef, 0)
	for rows.Next() {
		var g book.GenreRef
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, fmt.Errorf("failed to scan genre ref: %w", err)
		}
		genres = append(genres, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return genres, nil
}

func insertGenreLinks(ctx context.Context, tx pgx.Tx, bookID uuid.UUID, genreIDs []uuid.UUID) error {
	for _, gid := range genreIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO book_genres (book_id, genre_id) VALUES ($1, $2)`,
			bookID, gid,
		)
		if err != nil {
			return mapReferenceError(err, "failed to link genre")
		}
	}
	return nil
}

// mapReferenceError turns foreign-key violations into the domain's
// broken-reference sentinels.
func mapReferenceError(err error, msg string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.ConstraintName {
		case "books_author_id_fkey":
			return book.ErrAuthorNotFound
		case "book_genres_genre_id_fkey":
			return book.ErrGenreNotFound
		}
	}
	return fmt.Errorf("%s: %w", msg, err)
}
