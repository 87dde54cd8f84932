// Package container builds the application dependency graph. Handlers
// receive their store and renderer handles at construction time; there
// is no ambient global registry anywhere in the application.
package container

import (
	"context"
	"fmt"

	"library-catalog/internal/config"
	"library-catalog/internal/infrastructure/database"
	"library-catalog/internal/shared/render"

	"library-catalog/internal/domains/author"
	authorHandler "library-catalog/internal/domains/author/handler"
	authorRepo "library-catalog/internal/domains/author/repository"
	authorService "library-catalog/internal/domains/author/service"

	"library-catalog/internal/domains/genre"
	genreHandler "library-catalog/internal/domains/genre/handler"
	genreRepo "library-catalog/internal/domains/genre/repository"
	genreService "library-catalog/internal/domains/genre/service"

	"library-catalog/internal/domains/book"
	bookHandler "library-catalog/internal/domains/book/handler"
	bookRepo "library-catalog/internal/domains/book/repository"
	bookService "library-catalog/internal/domains/book/service"

	"library-catalog/internal/domains/bookinstance"
	instanceHandler "library-catalog/internal/domains/bookinstance/handler"
	instanceRepo "library-catalog/internal/domains/bookinstance/repository"
	instanceService "library-catalog/internal/domains/bookinstance/service"
)

type Container struct {
	Config   *config.Config
	DB       *database.PostgresDB
	Renderer render.Renderer

	AuthorRepo   author.Repository
	GenreRepo    genre.Repository
	BookRepo     book.Repository
	InstanceRepo bookinstance.Repository

	AuthorService   author.Service
	GenreService    genre.Service
	BookService     book.Service
	InstanceService bookinstance.Service

	AuthorHandler   *authorHandler.AuthorHandler
	GenreHandler    *genreHandler.GenreHandler
	BookHandler     *bookHandler.BookHandler
	InstanceHandler *instanceHandler.BookInstanceHandler
}

// NewContainer initializes the graph in dependency order: config,
// database, repositories, services, handlers.
func NewContainer(ctx context.Context) (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	c.DB = database.New(&cfg.Database)
	if err := c.DB.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	c.Renderer = render.NewTemplateRenderer()

	c.AuthorRepo = authorRepo.NewPostgresRepository(c.DB.Pool)
	c.GenreRepo = genreRepo.NewPostgresRepository(c.DB.Pool)
	c.BookRepo = bookRepo.NewPostgresRepository(c.DB.Pool)
	c.InstanceRepo = instanceRepo.NewPostgresRepository(c.DB.Pool)

	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo, c.BookRepo)
	c.GenreService = genreService.NewGenreService(c.GenreRepo, c.BookRepo)
	c.BookService = bookService.NewBookService(c.BookRepo, c.InstanceRepo)
	c.InstanceService = instanceService.NewBookInstanceService(c.InstanceRepo)

	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService, c.BookService, c.Renderer)
	c.GenreHandler = genreHandler.NewGenreHandler(c.GenreService, c.BookService, c.Renderer)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService, c.AuthorService, c.GenreService, c.InstanceService, c.Renderer)
	c.InstanceHandler = instanceHandler.NewBookInstanceHandler(c.InstanceService, c.BookService, c.Renderer)

	return c, nil
}

func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
}
