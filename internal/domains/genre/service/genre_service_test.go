package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-catalog/internal/domains/book"
	"library-catalog/internal/domains/genre"
)

type fakeGenreRepo struct {
	genres map[uuid.UUID]genre.Genre

	// simulate a concurrent writer landing between lookup and insert
	missFirstLookup bool
	conflicts       bool
}

func newFakeGenreRepo() *fakeGenreRepo {
	return &fakeGenreRepo{genres: make(map[uuid.UUID]genre.Genre)}
}

func (r *fakeGenreRepo) List(ctx context.Context) ([]genre.Genre, error) {
	out := make([]genre.Genre, 0, len(r.genres))
	for _, g := range r.genres {
		out = append(out, g)
	}
	return out, nil
}

func (r *fakeGenreRepo) GetByID(ctx context.Context, id uuid.UUID) (*genre.Genre, error) {
	g, ok := r.genres[id]
	if !ok {
		return nil, genre.ErrNotFound
	}
	return &g, nil
}

func (r *fakeGenreRepo) GetByName(ctx context.Context, name string) (*genre.Genre, error) {
	if r.missFirstLookup {
		r.missFirstLookup = false
		return nil, genre.ErrNotFound
	}
	for _, g := range r.genres {
		if g.Name == name {
			g := g
			return &g, nil
		}
	}
	return nil, genre.ErrNotFound
}

func (r *fakeGenreRepo) Insert(ctx context.Context, g *genre.Genre) (bool, error) {
	if r.conflicts {
		r.conflicts = false
		return false, nil
	}
	for _, existing := range r.genres {
		if existing.Name == g.Name {
			return false, nil
		}
	}
	r.genres[g.ID] = *g
	return true, nil
}

func (r *fakeGenreRepo) Replace(ctx context.Context, g *genre.Genre) error {
	if _, ok := r.genres[g.ID]; !ok {
		return genre.ErrNotFound
	}
	r.genres[g.ID] = *g
	return nil
}

func (r *fakeGenreRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	if _, ok := r.genres[id]; !ok {
		return 0, nil
	}
	delete(r.genres, id)
	return 1, nil
}

func (r *fakeGenreRepo) Count(ctx context.Context) (int, error) {
	return len(r.genres), nil
}

type fakeBookRepo struct {
	byGenre map[uuid.UUID][]book.Book
}

func (r *fakeBookRepo) List(ctx context.Context) ([]book.Book, error) { return nil, nil }
func (r *fakeBookRepo) GetByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	return nil, book.ErrNotFound
}
func (r *fakeBookRepo) ListByAuthor(ctx context.Context, id uuid.UUID) ([]book.Book, error) {
	return nil, nil
}
func (r *fakeBookRepo) ListByGenre(ctx context.Context, id uuid.UUID) ([]book.Book, error) {
	return r.byGenre[id], nil
}
func (r *fakeBookRepo) Insert(ctx context.Context, b *book.Book, genreIDs []uuid.UUID) error {
	return nil
}
func (r *fakeBookRepo) Replace(ctx context.Context, b *book.Book, genreIDs []uuid.UUID) error {
	return nil
}
func (r *fakeBookRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) { return 0, nil }
func (r *fakeBookRepo) Count(ctx context.Context) (int, error)                  { return 0, nil }

func TestCreateAssignsID(t *testing.T) {
	repo := newFakeGenreRepo()
	svc := NewGenreService(repo, &fakeBookRepo{})

	created, err := svc.Create(context.Background(), genre.Form{Name: "Fantasy"})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)

	count, _ := repo.Count(context.Background())
	assert.Equal(t, 1, count)
}

func TestCreateDuplicateNameReturnsExisting(t *testing.T) {
	repo := newFakeGenreRepo()
	svc := NewGenreService(repo, &fakeBookRepo{})

	first, err := svc.Create(context.Background(), genre.Form{Name: "Fantasy"})
	require.NoError(t, err)

	second, err := svc.Create(context.Background(), genre.Form{Name: "Fantasy"})
	require.NoError(t, err)

	// Same record both times, never a second row.
	assert.Equal(t, first.ID, second.ID)
	count, _ := repo.Count(context.Background())
	assert.Equal(t, 1, count)
}

func TestCreateDuplicateIsCaseSensitive(t *testing.T) {
	repo := newFakeGenreRepo()
	svc := NewGenreService(repo, &fakeBookRepo{})

	first, err := svc.Create(context.Background(), genre.Form{Name: "Fantasy"})
	require.NoError(t, err)

	second, err := svc.Create(context.Background(), genre.Form{Name: "fantasy"})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestCreateLostRaceFetchesWinner(t *testing.T) {
	repo := newFakeGenreRepo()
	winner := genre.Genre{ID: uuid.New(), Name: "Horror"}

	svc := NewGenreService(repo, &fakeBookRepo{})

	// The lookup misses, the insert is skipped by the unique index,
	// and the record that won the name is fetched instead.
	repo.genres[winner.ID] = winner
	repo.missFirstLookup = true
	repo.conflicts = true

	got, err := svc.Create(context.Background(), genre.Form{Name: "Horror"})

	require.NoError(t, err)
	assert.Equal(t, winner.ID, got.ID)
}

func TestCreateRejectsShortName(t *testing.T) {
	repo := newFakeGenreRepo()
	svc := NewGenreService(repo, &fakeBookRepo{})

	_, err := svc.Create(context.Background(), genre.Form{Name: "ab"})

	require.Error(t, err)
	count, _ := repo.Count(context.Background())
	assert.Equal(t, 0, count)
}

func TestUpdateKeepsIdentifier(t *testing.T) {
	repo := newFakeGenreRepo()
	svc := NewGenreService(repo, &fakeBookRepo{})

	created, err := svc.Create(context.Background(), genre.Form{Name: "Fantasy"})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), genre.Form{ID: created.ID, Name: "High Fantasy"})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	count, _ := repo.Count(context.Background())
	assert.Equal(t, 1, count)
}

func TestUpdateMissingIDIsNotFound(t *testing.T) {
	svc := NewGenreService(newFakeGenreRepo(), &fakeBookRepo{})

	_, err := svc.Update(context.Background(), genre.Form{ID: uuid.New(), Name: "Fantasy"})

	assert.ErrorIs(t, err, genre.ErrNotFound)
}

func TestDeleteBlockedByDependents(t *testing.T) {
	repo := newFakeGenreRepo()
	g := genre.Genre{ID: uuid.New(), Name: "Fantasy"}
	repo.genres[g.ID] = g

	books := &fakeBookRepo{byGenre: map[uuid.UUID][]book.Book{
		g.ID: {{ID: uuid.New(), Title: "The Hobbit"}},
	}}
	svc := NewGenreService(repo, books)

	err := svc.Delete(context.Background(), g.ID)

	assert.ErrorIs(t, err, genre.ErrHasBooks)
	count, _ := repo.Count(context.Background())
	assert.Equal(t, 1, count)
}

func TestDeleteSucceedsOnceDependentsGone(t *testing.T) {
	repo := newFakeGenreRepo()
	g := genre.Genre{ID: uuid.New(), Name: "Fantasy"}
	repo.genres[g.ID] = g

	svc := NewGenreService(repo, &fakeBookRepo{})

	require.NoError(t, svc.Delete(context.Background(), g.ID))

	count, _ := repo.Count(context.Background())
	assert.Equal(t, 0, count)
}

func TestDeleteMissingIDIsIdempotent(t *testing.T) {
	svc := NewGenreService(newFakeGenreRepo(), &fakeBookRepo{})

	assert.NoError(t, svc.Delete(context.Background(), uuid.New()))
}
