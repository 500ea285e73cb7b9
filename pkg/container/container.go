package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"library-service/internal/config"
	infracache "library-service/internal/infrastructure/cache"
	"library-service/internal/infrastructure/database"
	"library-service/pkg/cache"
	"library-service/pkg/logger"

	authorhandler "library-service/internal/domains/author/handler"
	authorrepo "library-service/internal/domains/author/repository"
	authorservice "library-service/internal/domains/author/service"
	bookhandler "library-service/internal/domains/book/handler"
	bookrepo "library-service/internal/domains/book/repository"
	bookservice "library-service/internal/domains/book/service"
)

// Container is the root of the dependency graph. Everything in it is
// built once at process start and torn down via Cleanup at process stop;
// there are no ambient singletons.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Cache  cache.Cache

	AuthorRepo authorrepo.Repository
	BookRepo   bookrepo.Repository

	AuthorService authorservice.Service
	BookService   bookservice.Service

	AuthorHandler *authorhandler.AuthorHandler
	BookHandler   *bookhandler.BookHandler
}

// NewContainer initializes the dependency graph in order: config,
// database (fatal on failure), cache (falls back to the in-process
// backend), repositories, services, handlers.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	logger.Init(cfg.App.Environment)

	if err := c.initDatabase(); err != nil {
		return nil, err
	}

	c.initCache()
	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Info().Str("environment", cfg.App.Environment).Msg("container initialized")
	return c, nil
}

func (c *Container) initDatabase() error {
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	c.DB = db
	return nil
}

// initCache selects the cache backend once at startup. An unreachable
// networked cache is not fatal: listings fall back to the in-process
// backend with a warning. There is no runtime failover.
func (c *Container) initCache() {
	redisCache, err := infracache.NewRedisCache(c.Config.Cache.URL)
	if err == nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err = redisCache.Ping(ctx); err == nil {
			log.Info().Msg("connected to redis cache backend")
			c.Cache = redisCache
			return
		}
		_ = redisCache.Close()
	}

	log.Warn().Err(err).Msg("redis cache backend unavailable, falling back to in-memory cache")
	c.Cache = infracache.NewMemoryCache()
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.AuthorRepo = authorrepo.NewPostgresRepository(pool)
	c.BookRepo = bookrepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	c.AuthorService = authorservice.NewAuthorService(c.AuthorRepo)
	c.BookService = bookservice.NewBookService(
		c.BookRepo,
		c.AuthorRepo,
		c.Cache,
		c.Config.Cache.Prefix,
		c.Config.Cache.DefaultTTL,
	)
}

func (c *Container) initHandlers() {
	c.AuthorHandler = authorhandler.NewAuthorHandler(c.AuthorService)
	c.BookHandler = bookhandler.NewBookHandler(c.BookService)
}

// Cleanup releases resources on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}

	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close cache")
		}
	}
}
