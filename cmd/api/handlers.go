package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"library-catalog/internal/shared/render"
	"library-catalog/pkg/container"
)

// indexHandler serves GET /catalog: record counts for every entity
// type plus available copies, all counted concurrently.
func indexHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var bookCount, instanceCount, availableCount, authorCount, genreCount int

		g, gctx := errgroup.WithContext(ctx.Request.Context())
		g.Go(func() error {
			var err error
			bookCount, err = c.BookService.Count(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			instanceCount, err = c.InstanceService.Count(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			availableCount, err = c.InstanceService.CountAvailable(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			authorCount, err = c.AuthorService.Count(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			genreCount, err = c.GenreService.Count(gctx)
			return err
		})
		if err := g.Wait(); err != nil {
			render.ServerError(ctx, c.Renderer, err)
			return
		}

		c.Renderer.HTML(ctx, http.StatusOK, "index", gin.H{
			"title":                   c.Config.App.Name,
			"book_count":              bookCount,
			"book_instance_count":     instanceCount,
			"book_instance_available": availableCount,
			"author_count":            authorCount,
			"genre_count":             genreCount,
		})
	}
}
