package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"library-catalog/internal/domains/author"
	"library-catalog/internal/domains/book"
	"library-catalog/internal/shared/render"
)

const listPath = "/catalog/authors"

type AuthorHandler struct {
	authors author.Service
	books   book.Service
	render  render.Renderer
}

func NewAuthorHandler(authors author.Service, books book.Service, r render.Renderer) *AuthorHandler {
	return &AuthorHandler{authors: authors, books: books, render: r}
}

// List - GET /catalog/authors
func (h *AuthorHandler) List(c *gin.Context) {
	authors, err := h.authors.List(c.Request.Context())
	if err != nil {
		render.ServerError(c, h.render, err)
		return
	}

	h.render.HTML(c, http.StatusOK, "author_list", gin.H{
		"title":   "Author List",
		"authors": authors,
	})
}

// Detail - GET /catalog/author/:id
// The author and their books are independent reads, so they are issued
// together; the first failure cancels the other and is the one reported.
func (h *AuthorHandler) Detail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		render.NotFound(c, h.render)
		return
	}

	var (
		a     *author.Author
		books []book.Book
	)
	g, gctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		var err error
		a, err = h.authors.Get(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		books, err = h.books.ListByAuthor(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		if errors.Is(err, author.ErrNotFound) {
			render.NotFound(c, h.render)
			return
		}
		render.ServerError(c, h.render, err)
		return
	}

	h.render.HTML(c, http.StatusOK, "author_detail", gin.H{
		"title":  "Author: " + a.Name(),
		"author": a,
		"books":  books,
	})
}

// CreateForm - GET /catalog/author/create
func (h *AuthorHandler) CreateForm(c *gin.Context) {
	h.render.HTML(c, http.StatusOK, "author_form", gin.H{
		"title": "Create Author",
	})
}

// Create - POST /catalog/author/create
func (h *AuthorHandler) Create(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		render.ServerError(c, h.render, err)
		return
	}

	candidate, errs := author.Bind(c.Request.PostForm)
	if len(errs) > 0 {
		h.render.HTML(c, http.StatusOK, "author_form", gin.H{
			"title":  "Create Author",
			"author": candidate,
			"errors": errs,
		})
		return
	}

	created, err := h.authors.Create(c.Request.Context(), candidate)
	if err != nil {
		render.ServerError(c, h.render, err)
		return
	}

	c.Redirect(http.StatusFound, created.URL())
}

// UpdateForm - GET /catalog/author/:id/update
func (h *AuthorHandler) UpdateForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		render.NotFound(c, h.render)
		return
	}

	a, err := h.authors.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, author.ErrNotFound) {
			render.NotFound(c, h.render)
			return
		}
		render.ServerError(c, h.render, err)
		return
	}

	h.render.HTML(c, http.StatusOK, "author_form", gin.H{
		"title":  "Update Author",
		"author": a,
	})
}

// Update - POST /catalog/author/:id/update
// The candidate carries the path id so persistence replaces the record
// in place instead of minting a new identifier.
func (h *AuthorHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		render.NotFound(c, h.render)
		return
	}

	if err := c.Request.ParseForm(); err != nil {
		render.ServerError(c, h.render, err)
		return
	}

	candidate, errs := author.Bind(c.Request.PostForm)
	candidate.ID = id

	if len(errs) > 0 {
		h.render.HTML(c, http.StatusOK, "author_form", gin.H{
			"title":  "Update Author",
			"author": candidate,
			"errors": errs,
		})
		return
	}

	updated, err := h.authors.Update(c.Request.Context(), candidate)
	if err != nil {
		if errors.Is(err, author.ErrNotFound) {
			render.NotFound(c, h.render)
			return
		}
		render.ServerError(c, h.render, err)
		return
	}

	c.Redirect(http.StatusFound, updated.URL())
}

// DeleteForm - GET /catalog/author/:id/delete
// An author that is already gone redirects straight back to the list;
// while books reference the author the confirmation lists them and no
// unconditional delete is offered.
func (h *AuthorHandler) DeleteForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.Redirect(http.StatusFound, listPath)
		return
	}

	var (
		a          *author.Author
		dependents []book.Book
	)
	g, gctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		var err error
		a, err = h.authors.Get(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		dependents, err = h.books.ListByAuthor(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		if errors.Is(err, author.ErrNotFound) {
			c.Redirect(http.StatusFound, listPath)
			return
		}
		render.ServerError(c, h.render, err)
		return
	}

	h.render.HTML(c, http.StatusOK, "author_delete", gin.H{
		"title":  "Delete Author",
		"author": a,
		"books":  dependents,
	})
}

// Delete - POST /catalog/author/:id/delete
// Dependents are re-checked at delete time; when any exist the same
// confirmation view is rendered again instead of deleting.
func (h *AuthorHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.Redirect(http.StatusFound, listPath)
		return
	}

	if err := h.authors.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, author.ErrHasBooks) {
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
