package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"library-catalog/internal/domains/author"
	"library-catalog/internal/domains/book"
	"library-catalog/internal/domains/bookinstance"
	"library-catalog/internal/domains/genre"
	"library-catalog/internal/shared/render"
)

const listPath = "/catalog/books"

type BookHandler struct {
	books     book.Service
	authors   author.Service
	genres    genre.Service
	instances bookinstance.Service
	render    render.Renderer
}

func NewBookHandler(
	books book.Service,
	authors author.Service,
	genres genre.Service,
	instances bookinstance.Service,
	r render.Renderer,
) *BookHandler {
	return &BookHandler{
		books:     books,
		authors:   authors,
		genres:    genres,
		instances: instances,
		render:    r,
	}
}

// genreOption carries the transient checked flag a re-rendered form
// needs to restore the user's genre selection. Never persisted.
type genreOption struct {
	genre.Genre
	Checked bool
}

func markChecked(all []genre.Genre, selected []uuid.UUID) []genreOption {
	options := make([]genreOption, 0, len(all))
	for _, g := range all {
		opt := genreOption{Genre: g}
		for _, id := range selected {
			if id == g.ID {
				opt.Checked = true
				break
			}
		}
		options = append(options, opt)
	}
	return options
}

// List - GET /catalog/books
func (h *BookHandler) List(c *gin.Context) {
	books, err := h.books.List(c.Request.Context())
	if err != nil {
		render.ServerError(c, h.render, err)
		return
	}

	h.render.HTML(c, http.StatusOK, "book_list", gin.H{
		"title": "Book List",
		"books": books,
	})
}

// Detail - GET /catalog/book/:id
func (h *BookHandler) Detail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		render.NotFound(c, h.render)
		return
	}

	var (
		b      *book.Book
		copies []bookinstance.BookInstance
	)
	g, gctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		var err error
		b, err = h.books.Get(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		copies, err = h.instances.ListByBook(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		if errors.Is(err, book.ErrNotFound) {
			render.NotFound(c, h.render)
			return
		}
		render.ServerError(c, h.render, err)
		return
	}

	h.render.HTML(c, http.StatusOK, "book_detail", gin.H{
		"title":     b.Title,
		"book":      b,
		"instances": copies,
	})
}

// selectionData fetches everything the book form's selection inputs
// need. The two reads are independent and issued together.
func (h *BookHandler) selectionData(c *gin.Context) ([]author.Author, []genre.Genre, error) {
	var (
		authors []author.Author
		genres  []genre.Genre
	)
	g, gctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		var err error
		authors, err = h.authors.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		genres, err = h.genres.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return authors, genres, nil
}

// CreateForm - GET /catalog/book/create
func (h *BookHandler) CreateForm(c *gin.Context) {
	authors, genres, err := h.selectionData(c)
	if err != nil {
		render.ServerError(c, h.render, err)
		return
	}

	h.render.HTML(c, http.StatusOK, "book_form", gin.H{
		"title":   "Create Book",
		"authors": authors,
		"genres":  markChecked(genres, nil),
	})
}

// Create - POST /catalog/book/create
func (h *BookHandler) Create(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		render.ServerError(c, h.render, err)
		return
	}

	candidate, errs := book.Bind(c.Request.PostForm)
	if len(errs) > 0 {
		authors, genres, err := h.selectionData(c)
		if err != nil {
			render.ServerError(c, h.render, err)
			return
		}
		h.render.HTML(c, http.StatusOK, "book_form", gin.H{
			"title":   "Create Book",
			"book":    candidate,
			"authors": authors,
			"genres":  markChecked(genres, candidate.GenreIDs),
			"errors":  errs,
		})
		return
	}

	created, err := h.books.Create(c.Request.Context(), candidate)
	if err != nil {
		render.ServerError(c, h.render, err)
		return
	}

	c.Redirect(http.StatusFound, created.URL())
}

// UpdateForm - GET /catalog/book/:id/update
// The record and the selection data are independent and fetched
// together; existing genre references arrive pre-checked.
func (h *BookHandler) UpdateForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		render.NotFound(c, h.render)
		return
	}

	var (
		b       *book.Book
		authors []author.Author
		genres  []genre.Genre
	)
	g, gctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		var err error
		b, err = h.books.Get(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		authors, err = h.authors.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		genres, err = h.genres.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		if errors.Is(err, book.ErrNotFound) {
			render.NotFound(c, h.render)
			return
		}
		render.ServerError(c, h.render, err)
		return
	}

	h.render.HTML(c, http.StatusOK, "book_form", gin.H{
		"title":   "Update Book",
		"book":    b,
		"authors": authors,
		"genres":  markChecked(genres, b.GenreIDs()),
	})
}

// Update - POST /catalog/book/:id/update
func (h *BookHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		render.NotFound(c, h.render)
		return
	}

	if err := c.Request.ParseForm(); err != nil {
		render.ServerError(c, h.render, err)
		return
	}

	candidate, errs := book.Bind(c.Request.PostForm)
	candidate.ID = id

	if len(errs) > 0 {
		authors, genres, err := h.selectionData(c)
		if err != nil {
			render.ServerError(c, h.render, err)
			return
		}
		h.render.HTML(c, http.StatusOK, "book_form", gin.H{
			"title":   "Update Book",
			"book":    candidate,
			"authors": authors,
			"genres":  markChecked(genres, candidate.GenreIDs),
			"errors":  errs,
		})
		return
	}

	updated, err := h.books.Update(c.Request.Context(), candidate)
	if err != nil {
		if errors.Is(err, book.ErrNotFound) {
			render.NotFound(c, h.render)
			return
		}
		render.ServerError(c, h.render, err)
		return
	}

	c.Redirect(http.StatusFound, updated.URL())
}

// DeleteForm - GET /catalog/book/:id/delete
func (h *BookHandler) DeleteForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.Redirect(http.StatusFound, listPath)
		return
	}

	var (
		b          *book.Book
		dependents []bookinstance.BookInstance
	)
	g, gctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		var err error
		b, err = h.books.Get(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		dependents, err = h.instances.ListByBook(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		if errors.Is(err, book.ErrNotFound) {
			c.Redirect(http.StatusFound, listPath)
			return
		}
		render.ServerError(c, h.render, err)
		return
	}

	h.render.HTML(c, http.StatusOK, "book_delete", gin.H{
		"title":     "Delete Book",
		"book":      b,
		"instances": dependents,
	})
}

// Delete - POST /catalog/book/:id/delete
func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.Redirect(http.StatusFound, listPath)
		return
	}

	if err := h.books.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, book.ErrHasInstances) {
			h.DeleteForm(c)
			return
		}
		render.ServerError(c, h.render, err)
		return
	}

	c.Redirect(http.StatusFound, listPath)
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
