package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"library-catalog/internal/domains/book"
	"library-catalog/internal/domains/genre"
	"library-catalog/internal/shared/render"
)

const listPath = "/catalog/genres"

type GenreHandler struct {
	genres genre.Service
	books  book.Service
	render render.Renderer
}

func NewGenreHandler(genres genre.Service, books book.Service, r render.Renderer) *GenreHandler {
	return &GenreHandler{genres: genres, books: books, render: r}
}

// List - GET /catalog/genres
func (h *GenreHandler) List(c *gin.Context) {
	genres, err := h.genres.List(c.Request.Context())
	if err != nil {
		render.ServerError(c, h.render, err)
		return
	}

	h.render.HTML(c, http.StatusOK, "genre_list", gin.H{
		"title":  "Genre List",
		"genres": genres,
	})
}

// Detail - GET /catalog/genre/:id
func (h *GenreHandler) Detail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		render.NotFound(c, h.render)
		return
	}

	var (
		g     *genre.Genre
		books []book.Book
	)
	grp, gctx := errgroup.WithContext(c.Request.Context())
	grp.Go(func() error {
		var err error
		g, err = h.genres.Get(gctx, id)
		return err
	})
	grp.Go(func() error {
		var err error
		books, err = h.books.ListByGenre(gctx, id)
		return err
	})
	if err := grp.Wait(); err != nil {
		if errors.Is(err, genre.ErrNotFound) {
			render.NotFound(c, h.render)
			return
		}
		render.ServerError(c, h.render, err)
		return
	}

	h.render.HTML(c, http.StatusOK, "genre_detail", gin.H{
		"title": "Genre: " + g.Name,
		"genre": g,
		"books": books,
	})
}

// CreateForm - GET /catalog/genre/create
func (h *GenreHandler) CreateForm(c *gin.Context) {
	h.render.HTML(c, http.StatusOK, "genre_form", gin.H{
		"title": "Create Genre",
	})
}

// Create - POST /catalog/genre/create
// Submitting a name that already exists redirects to the existing
// record's URL; a second record is never created.
func (h *GenreHandler) Create(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		render.ServerError(c, h.render, err)
		return
	}

	candidate, errs := genre.Bind(c.Request.PostForm)
	if len(errs) > 0 {
		h.render.HTML(c, http.StatusOK, "genre_form", gin.H{
			"title":  "Create Genre",
			"genre":  candidate,
			"errors": errs,
		})
		return
	}

	created, err := h.genres.Create(c.Request.Context(), candidate)
	if err != nil {
		render.ServerError(c, h.render, err)
		return
	}

	c.Redirect(http.StatusFound, created.URL())
}

// UpdateForm - GET /catalog/genre/:id/update
func (h *GenreHandler) UpdateForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		render.NotFound(c, h.render)
		return
	}

	g, err := h.genres.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, genre.ErrNotFound) {
			render.NotFound(c, h.render)
			return
		}
		render.ServerError(c, h.render, err)
		return
	}

	h.render.HTML(c, http.StatusOK, "genre_form", gin.H{
		"title": "Update Genre",
		"genre": g,
	})
}

// Update - POST /catalog/genre/:id/update
func (h *GenreHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		render.NotFound(c, h.render)
		return
	}

	if err := c.Request.ParseForm(); err != nil {
		render.ServerError(c, h.render, err)
		return
	}

	candidate, errs := genre.Bind(c.Request.PostForm)
	candidate.ID = id

	if len(errs) > 0 {
		h.render.HTML(c, http.StatusOK, "genre_form", gin.H{
			"title":  "Update Genre",
			"genre":  candidate,
			"errors": errs,
		})
		return
	}

	updated, err := h.genres.Update(c.Request.Context(), candidate)
	if err != nil {
		if errors.Is(err, genre.ErrNotFound) {
			render.NotFound(c, h.render)
			return
		}
		render.ServerError(c, h.render, err)
		return
	}

	c.Redirect(http.StatusFound, updated.URL())
}

// DeleteForm - GET /catalog/genre/:id/delete
func (h *GenreHandler) DeleteForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.Redirect(http.StatusFound, listPath)
		return
	}

	var (
		g          *genre.Genre
		dependents []book.Book
	)
	grp, gctx := errgroup.WithContext(c.Request.Context())
	grp.Go(func() error {
		var err error
		g, err = h.genres.Get(gctx, id)
		return err
	})
	grp.Go(func() error {
		var err error
		dependents, err = h.books.ListByGenre(gctx, id)
		return err
	})
	if err := grp.Wait(); err != nil {
		if errors.Is(err, genre.ErrNotFound) {
			c.Redirect(http.StatusFound, listPath)
			return
		}
		render.ServerError(c, h.render, err)
		return
	}

	h.render.HTML(c, http.StatusOK, "genre_delete", gin.H{
		"title": "Delete Genre",
		"genre": g,
		"books": dependents,
	})
}

// Delete - POST /catalog/genre/:id/delete
func (h *GenreHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.Redirect(http.StatusFound, listPath)
		return
	}

	if err := h.genres.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, genre.ErrHasBooks) {
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
