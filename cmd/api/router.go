package main

import (
	"path/filepath"

	"github.com/gin-gonic/gin"

	"library-catalog/internal/shared/middleware"
	"library-catalog/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(c.Renderer),
		middleware.RequestID(),
		middleware.Logger(),
	)

	// The template directory is absent in handler tests; the renderer
	// interface is what they exercise.
	if matches, err := filepath.Glob(c.Config.App.TemplateDir); err == nil && len(matches) > 0 {
		router.LoadHTMLGlob(c.Config.App.TemplateDir)
	}

	catalog := router.Group("/catalog")
	{
		catalog.GET("", indexHandler(c))

		setupBookRoutes(catalog, c)
		setupAuthorRoutes(catalog, c)
		setupGenreRoutes(catalog, c)
		setupBookInstanceRoutes(catalog, c)
	}

	return router
}

// Static /create paths are registered before the parameterized /:id
// paths so "create" is never captured as an identifier.
func setupBookRoutes(catalog *gin.RouterGroup, c *container.Container) {
	catalog.GET("/books", c.BookHandler.List)
	catalog.GET("/book/create", c.BookHandler.CreateForm)
	catalog.POST("/book/create", c.BookHandler.Create)
	catalog.GET("/book/:id", c.BookHandler.Detail)
	catalog.GET("/book/:id/update", c.BookHandler.UpdateForm)
	catalog.POST("/book/:id/update", c.BookHandler.Update)
	catalog.GET("/book/:id/delete", c.BookHandler.DeleteForm)
	catalog.POST("/book/:id/delete", c.BookHandler.Delete)
}

func setupAuthorRoutes(catalog *gin.RouterGroup, c *container.Container) {
	catalog.GET("/authors", c.AuthorHandler.List)
	catalog.GET("/author/create", c.AuthorHandler.CreateForm)
	catalog.POST("/author/create", c.AuthorHandler.Create)
	catalog.GET("/author/:id", c.AuthorHandler.Detail)
	catalog.GET("/author/:id/update", c.AuthorHandler.UpdateForm)
	catalog.POST("/author/:id/update", c.AuthorHandler.Update)
	catalog.GET("/author/:id/delete", c.AuthorHandler.DeleteForm)
	catalog.POST("/author/:id/delete", c.AuthorHandler.Delete)
}

func setupGenreRoutes(catalog *gin.RouterGroup, c *container.Container) {
	catalog.GET("/genres", c.GenreHandler.List)
	catalog.GET("/genre/create", c.GenreHandler.CreateForm)
	catalog.POST("/genre/create", c.GenreHandler.Create)
	catalog.GET("/genre/:id", c.GenreHandler.Detail)
	catalog.GET("/genre/:id/update", c.GenreHandler.UpdateForm)
	catalog.POST("/genre/:id/update", c.GenreHandler.Update)
	catalog.GET("/genre/:id/delete", c.GenreHandler.DeleteForm)
	catalog.POST("/genre/:id/delete", c.GenreHandler.Delete)
}

func setupBookInstanceRoutes(catalog *gin.RouterGroup, c *container.Container) {
	catalog.GET("/bookinstances", c.InstanceHandler.List)
	catalog.GET("/bookinstance/create", c.InstanceHandler.CreateForm)
	catalog.POST("/bookinstance/create", c.InstanceHandler.Create)
	catalog.GET("/bookinstance/:id", c.InstanceHandler.Detail)
	catalog.GET("/bookinstance/:id/update", c.InstanceHandler.UpdateForm)
	catalog.POST("/bookinstance/:id/update", c.InstanceHandler.Update)
	catalog.GET("/bookinstance/:id/delete", c.InstanceHandler.DeleteForm)
	catalog.POST("/bookinstance/:id/delete", c.InstanceHandler.Delete)
}
