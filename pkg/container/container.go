package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"blog-backend/internal/config"
	"blog-backend/internal/infrastructure/database"
	"blog-backend/internal/infrastructure/sqlite"

	authorRepo "blog-backend/internal/domains/author/repository"
	authorService "blog-backend/internal/domains/author/service"
	postRepo "blog-backend/internal/domains/post/repository"
	postService "blog-backend/internal/domains/post/service"
)

// Container holds every dependency of the application.
//
// Setup happens in two phases:
//  1. NewContainer opens storage and builds the repositories.
//  2. InitServices builds the services, which requires a migrated schema.
//
// Migrate sits between the two when the caller owns the schema.
type Container struct {
	Config *config.Config

	// Exactly one of these is set, depending on Config.Storage.Driver.
	DB     *database.PostgresDB
	SQLite *sqlite.Store

	AuthorRepo authorRepo.RepositoryInterface
	PostRepo   postRepo.RepositoryInterface

	AuthorService authorService.ServiceInterface
	PostService   postService.ServiceInterface
}

// NewContainer opens the configured storage and builds the repositories.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		if err := c.openPostgres(ctx); err != nil {
			return nil, err
		}
		c.AuthorRepo = authorRepo.NewPostgresRepository(c.DB.Pool)
		c.PostRepo = postRepo.NewPostgresRepository(c.DB.Pool)

	case config.DriverSQLite:
		store, err := sqlite.Open(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		c.SQLite = store
		c.AuthorRepo = authorRepo.NewSQLiteRepository(store.DB())
		c.PostRepo = postRepo.NewSQLiteRepository(store.DB())

	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Storage.Driver)
	}

	log.Debug().Str("driver", cfg.Storage.Driver).Msg("Repositories initialized")
	return c, nil
}

func (c *Container) openPostgres(ctx context.Context) error {
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := db.Connect(connectCtx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(ctx); err != nil {
		db.Close()
		return fmt.Errorf("database health check failed: %w", err)
	}

	c.DB = db
	return nil
}

// Migrate applies the bundled schema to the open storage.
func (c *Container) Migrate(ctx context.Context) error {
	if c.DB != nil {
		return c.DB.Migrate(ctx)
	}
	return c.SQLite.Migrate(ctx)
}

// InitServices builds the services. It fails with the domain's
// ErrSchemaNotReady when a table is missing.
func (c *Container) InitServices(ctx context.Context) error {
	authors, err := authorService.NewAuthorService(ctx, c.AuthorRepo)
	if err != nil {
		return err
	}

	posts, err := postService.NewPostService(ctx, c.PostRepo)
	if err != nil {
		return err
	}

	c.AuthorService = authors
	c.PostService = posts
	return nil
}

// Cleanup releases storage handles.
func (c *Container) Cleanup() {
	if c.DB != nil {
		_ = c.DB.Close()
	}
	if c.SQLite != nil {
		if err := c.SQLite.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close sqlite store")
		}
	}
}
