package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-catalog/internal/domains/author"
	"library-catalog/internal/domains/book"
	"library-catalog/internal/shared/forms"
)

type fakeRenderer struct {
	status int
	name   string
	data   gin.H
}

func (f *fakeRenderer) HTML(c *gin.Context, status int, name string, data gin.H) {
	f.status, f.name, f.data = status, name, data
	c.Status(status)
}

type fakeAuthorService struct {
	authors   map[uuid.UUID]author.Author
	deleteErr error
	lastForm  author.Form
}

func newFakeAuthorService() *fakeAuthorService {
	return &fakeAuthorService{authors: make(map[uuid.UUID]author.Author)}
}

func (s *fakeAuthorService) List(ctx context.Context) ([]author.Author, error) {
	out := make([]author.Author, 0, len(s.authors))
	for _, a := range s.authors {
		out = append(out, a)
	}
	return out, nil
}

func (s *fakeAuthorService) Get(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	a, ok := s.authors[id]
	if !ok {
		return nil, author.ErrNotFound
	}
	return &a, nil
}

func (s *fakeAuthorService) Create(ctx context.Context, f author.Form) (*author.Author, error) {
	s.lastForm = f
	a := f.Model()
	a.ID = uuid.New()
	s.authors[a.ID] = *a
	return a, nil
}

func (s *fakeAuthorService) Update(ctx context.Context, f author.Form) (*author.Author, error) {
	s.lastForm = f
	if _, ok := s.authors[f.ID]; !ok {
		return nil, author.ErrNotFound
	}
	a := f.Model()
	s.authors[a.ID] = *a
	return a, nil
}

func (s *fakeAuthorService) Delete(ctx context.Context, id uuid.UUID) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	delete(s.authors, id)
	return nil
}

func (s *fakeAuthorService) Count(ctx context.Context) (int, error) {
	return len(s.authors), nil
}

type fakeBookService struct {
	byAuthor map[uuid.UUID][]book.Book
}

func (s *fakeBookService) List(ctx context.Context) ([]book.Book, error) { return nil, nil }
func (s *fakeBookService) Get(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	return nil, book.ErrNotFound
}
func (s *fakeBookService) ListByAuthor(ctx context.Context, id uuid.UUID) ([]book.Book, error) {
	return s.byAuthor[id], nil
}
func (s *fakeBookService) ListByGenre(ctx context.Context, id uuid.UUID) ([]book.Book, error) {
	return nil, nil
}
func (s *fakeBookService) Create(ctx context.Context, f book.Form) (*book.Book, error) {
	return nil, nil
}
func (s *fakeBookService) Update(ctx context.Context, f book.Form) (*book.Book, error) {
	return nil, nil
}
func (s *fakeBookService) Delete(ctx context.Context, id uuid.UUID) error { return nil }
func (s *fakeBookService) Count(ctx context.Context) (int, error)         { return 0, nil }

func newTestRouter(h *AuthorHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/catalog/authors", h.List)
	r.GET("/catalog/author/create", h.CreateForm)
	r.POST("/catalog/author/create", h.Create)
	r.GET("/catalog/author/:id", h.Detail)
	r.GET("/catalog/author/:id/update", h.UpdateForm)
	r.POST("/catalog/author/:id/update", h.Update)
	r.GET("/catalog/author/:id/delete", h.DeleteForm)
	r.POST("/catalog/author/:id/delete", h.Delete)
	return r
}

func postForm(r http.Handler, path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateValidRedirectsToCanonicalURL(t *testing.T) {
	authors := newFakeAuthorService()
	renderer := &fakeRenderer{}
	h := NewAuthorHandler(authors, &fakeBookService{}, renderer)
	r := newTestRouter(h)

	w := postForm(r, "/catalog/author/create", url.Values{
		"first_name":  {"  Ursula  "},
		"family_name": {"Le Guin"},
	})

	require.Equal(t, http.StatusFound, w.Code)
	location := w.Header().Get("Location")
	assert.True(t, strings.HasPrefix(location, "/catalog/author/"), location)

	// The persisted record carries the sanitized values.
	assert.Equal(t, "Ursula", authors.lastForm.FirstName)
	count, _ := authors.Count(context.Background())
	assert.Equal(t, 1, count)
}

func TestCreateInvalidReRendersWithCandidate(t *testing.T) {
	authors := newFakeAuthorService()
	renderer := &fakeRenderer{}
	h := NewAuthorHandler(authors, &fakeBookService{}, renderer)
	r := newTestRouter(h)

	w := postForm(r, "/catalog/author/create", url.Values{
		"first_name": {"Ursula"},
		// family_name missing
	})

	// Validation failures re-render the form with HTTP success.
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "author_form", renderer.name)

	errs, ok := renderer.data["errors"].(forms.Errors)
	require.True(t, ok)
	assert.True(t, errs.Has("family_name"))

	candidate, ok := renderer.data["author"].(author.Form)
	require.True(t, ok)
	assert.Equal(t, "Ursula", candidate.FirstName)

	// Nothing persisted.
	count, _ := authors.Count(context.Background())
	assert.Equal(t, 0, count)
}

func TestDetailNotFound(t *testing.T) {
	renderer := &fakeRenderer{}
	h := NewAuthorHandler(newFakeAuthorService(), &fakeBookService{}, renderer)
	r := newTestRouter(h)

	w := get(r, "/catalog/author/"+uuid.NewString())

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "error", renderer.name)
}

func TestDetailRendersAuthorAndBooks(t *testing.T) {
	authors := newFakeAuthorService()
	a := author.Author{ID: uuid.New(), FirstName: "Ursula", FamilyName: "Le Guin"}
	authors.authors[a.ID] = a

	books := &fakeBookService{byAuthor: map[uuid.UUID][]book.Book{
		a.ID: {{ID: uuid.New(), Title: "A Wizard of Earthsea"}},
	}}

	renderer := &fakeRenderer{}
	h := NewAuthorHandler(authors, books, renderer)
	r := newTestRouter(h)

	w := get(r, "/catalog/author/"+a.ID.String())

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "author_detail", renderer.name)

	got, ok := renderer.data["books"].([]book.Book)
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, "A Wizard of Earthsea", got[0].Title)
}

func TestUpdateCarriesOriginalIdentifier(t *testing.T) {
	authors := newFakeAuthorService()
	a := author.Author{ID: uuid.New(), FirstName: "Ursula", FamilyName: "Le Guin"}
	authors.authors[a.ID] = a

	renderer := &fakeRenderer{}
	h := NewAuthorHandler(authors, &fakeBookService{}, renderer)
	r := newTestRouter(h)

	w := postForm(r, "/catalog/author/"+a.ID.String()+"/update", url.Values{
		"first_name":  {"Ursula K."},
		"family_name": {"Le Guin"},
	})

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, a.URL(), w.Header().Get("Location"))

	// Replace-by-id, not insert-under-new-id.
	assert.Equal(t, a.ID, authors.lastForm.ID)
	count, _ := authors.Count(context.Background())
	assert.Equal(t, 1, count)
}

func TestUpdateMissingRecordIsNotFound(t *testing.T) {
	renderer := &fakeRenderer{}
	h := NewAuthorHandler(newFakeAuthorService(), &fakeBookService{}, renderer)
	r := newTestRouter(h)

	w := postForm(r, "/catalog/author/"+uuid.NewString()+"/update", url.Values{
		"first_name":  {"Ursula"},
		"family_name": {"Le Guin"},
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "error", renderer.name)
}

func TestDeleteFormAbsentRecordRedirectsToList(t *testing.T) {
	renderer := &fakeRenderer{}
	h := NewAuthorHandler(newFakeAuthorService(), &fakeBookService{}, renderer)
	r := newTestRouter(h)

	w := get(r, "/catalog/author/"+uuid.NewString()+"/delete")

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/catalog/authors", w.Header().Get("Location"))
}

func TestDeleteFormListsDependents(t *testing.T) {
	authors := newFakeAuthorService()
	a := author.Author{ID: uuid.New(), FirstName: "U", FamilyName: "L"}
	authors.authors[a.ID] = a

	books := &fakeBookService{byAuthor: map[uuid.UUID][]book.Book{
		a.ID: {{ID: uuid.New(), Title: "A Wizard of Earthsea"}},
	}}

	renderer := &fakeRenderer{}
	h := NewAuthorHandler(authors, books, renderer)
	r := newTestRouter(h)

	w := get(r, "/catalog/author/"+a.ID.String()+"/delete")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "author_delete", renderer.name)

	got, ok := renderer.data["books"].([]book.Book)
	require.True(t, ok)
	assert.Len(t, got, 1)
}

func TestDeleteBlockedReRendersConfirmation(t *testing.T) {
	authors := newFakeAuthorService()
	a := author.Author{ID: uuid.New(), FirstName: "U", FamilyName: "L"}
	authors.authors[a.ID] = a
	authors.deleteErr = author.ErrHasBooks

	books := &fakeBookService{byAuthor: map[uuid.UUID][]book.Book{
		a.ID: {{ID: uuid.New(), Title: "A Wizard of Earthsea"}},
	}}

	renderer := &fakeRenderer{}
	h := NewAuthorHandler(authors, books, renderer)
	r := newTestRouter(h)

	w := postForm(r, "/catalog/author/"+a.ID.String()+"/delete", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "author_delete", renderer.name)

	// Record still present.
	count, _ := authors.Count(context.Background())
	assert.Equal(t, 1, count)
}

func TestDeleteSucceedsAndRedirects(t *testing.T) {
	authors := newFakeAuthorService()
	a := author.Author{ID: uuid.New(), FirstName: "U", FamilyName: "L"}
	authors.authors[a.ID] = a

	renderer := &fakeRenderer{}
	h := NewAuthorHandler(authors, &fakeBookService{}, renderer)
	r := newTestRouter(h)

	w := postForm(r, "/catalog/author/"+a.ID.String()+"/delete", nil)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/catalog/authors", w.Header().Get("Location"))

	count, _ := authors.Count(context.Background())
	assert.Equal(t, 0, count)
}

func TestDeleteMissingIDIsIdempotent(t *testing.T) {
	renderer := &fakeRenderer{}
	h := NewAuthorHandler(newFakeAuthorService(), &fakeBookService{}, renderer)
	r := newTestRouter(h)

	w := postForm(r, "/catalog/author/"+uuid.NewString()+"/delete", nil)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/catalog/authors", w.Header().Get("Location"))
}
