package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"library-catalog/internal/domains/book"
	"library-catalog/internal/domains/bookinstance"
	"library-catalog/internal/shared/render"
)

const listPath = "/catalog/bookinstances"

type BookInstanceHandler struct {
	instances bookinstance.Service
	books     book.Service
	render    render.Renderer
}

func NewBookInstanceHandler(instances bookinstance.Service, books book.Service, r render.Renderer) *BookInstanceHandler {
	return &BookInstanceHandler{instances: instances, books: books, render: r}
}

// List - GET /catalog/bookinstances
func (h *BookInstanceHandler) List(c *gin.Context) {
	instances, err := h.instances.List(c.Request.Context())
	if err != nil {
		render.ServerError(c, h.render, err)
		return
	}

	h.render.HTML(c, http.StatusOK, "bookinstance_list", gin.H{
		"title":     "Book Instance List",
		"instances": instances,
	})
}

// Detail - GET /catalog/bookinstance/:id
func (h *BookInstanceHandler) Detail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		render.NotFound(c, h.render)
		return
	}

	bi, err := h.instances.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, bookinstance.ErrNotFound) {
			render.NotFound(c, h.render)
			return
		}
		render.ServerError(c, h.render, err)
		return
	}

	h.render.HTML(c, http.StatusOK, "bookinstance_detail", gin.H{
		"title":    "Copy: " + bi.BookTitle,
		"instance": bi,
	})
}

// CreateForm - GET /catalog/bookinstance/create
func (h *BookInstanceHandler) CreateForm(c *gin.Context) {
	books, err := h.books.List(c.Request.Context())
	if err != nil {
		render.ServerError(c, h.render, err)
		return
	}

	h.render.HTML(c, http.StatusOK, "bookinstance_form", gin.H{
		"title":    "Create BookInstance",
		"books":    books,
		"statuses": bookinstance.Statuses(),
	})
}

// Create - POST /catalog/bookinstance/create
func (h *BookInstanceHandler) Create(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		render.ServerError(c, h.render, err)
		return
	}

	candidate, errs := bookinstance.Bind(c.Request.PostForm)
	if len(errs) > 0 {
		books, err := h.books.List(c.Request.Context())
		if err != nil {
			render.ServerError(c, h.render, err)
			return
		}
		h.render.HTML(c, http.StatusOK, "bookinstance_form", gin.H{
			"title":    "Create BookInstance",
			"instance": candidate,
			"books":    books,
			"statuses": bookinstance.Statuses(),
			"errors":   errs,
		})
		return
	}

	created, err := h.instances.Create(c.Request.Context(), candidate)
	if err != nil {
		render.ServerError(c, h.render, err)
		return
	}

	c.Redirect(http.StatusFound, created.URL())
}

// UpdateForm - GET /catalog/bookinstance/:id/update
func (h *BookInstanceHandler) UpdateForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		render.NotFound(c, h.render)
		return
	}

	var (
		bi    *bookinstance.BookInstance
		books []book.Book
	)
	g, gctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		var err error
		bi, err = h.instances.Get(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		books, err = h.books.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		if errors.Is(err, bookinstance.ErrNotFound) {
			render.NotFound(c, h.render)
			return
		}
		render.ServerError(c, h.render, err)
		return
	}

	h.render.HTML(c, http.StatusOK, "bookinstance_form", gin.H{
		"title":    "Update BookInstance",
		"instance": bi,
		"books":    books,
		"statuses": bookinstance.Statuses(),
	})
}

// Update - POST /catalog/bookinstance/:id/update
func (h *BookInstanceHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		render.NotFound(c, h.render)
		return
	}

	if err := c.Request.ParseForm(); err != nil {
		render.ServerError(c, h.render, err)
		return
	}

	candidate, errs := bookinstance.Bind(c.Request.PostForm)
	candidate.ID = id

	if len(errs) > 0 {
		books, err := h.books.List(c.Request.Context())
		if err != nil {
			render.ServerError(c, h.render, err)
			return
		}
		h.render.HTML(c, http.StatusOK, "bookinstance_form", gin.H{
			"title":    "Update BookInstance",
			"instance": candidate,
			"books":    books,
			"statuses": bookinstance.Statuses(),
			"errors":   errs,
		})
		return
	}

	updated, err := h.instances.Update(c.Request.Context(), candidate)
	if err != nil {
		if errors.Is(err, bookinstance.ErrNotFound) {
			render.NotFound(c, h.render)
			return
		}
		render.ServerError(c, h.render, err)
		return
	}

	c.Redirect(http.StatusFound, updated.URL())
}

// DeleteForm - GET /catalog/bookinstance/:id/delete
// Copies have no dependents, so the confirmation is always plain.
func (h *BookInstanceHandler) DeleteForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.Redirect(http.StatusFound, listPath)
		return
	}

	bi, err := h.instances.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, bookinstance.ErrNotFound) {
			c.Redirect(http.StatusFound, listPath)
			return
		}
		render.ServerError(c, h.render, err)
		return
	}

	h.render.HTML(c, http.StatusOK, "bookinstance_delete", gin.H{
		"title":    "Delete BookInstance",
		"instance": bi,
	})
}

// Delete - POST /catalog/bookinstance/:id/delete
func (h *BookInstanceHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.Redirect(http.StatusFound, listPath)
		return
	}

	if err := h.instances.Delete(c.Request.Context(), id); err != nil {
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
