package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"artworks-backend/internal/config"
	infraCache "artworks-backend/internal/infrastructure/cache"
	"artworks-backend/internal/infrastructure/database"
	"artworks-backend/pkg/cache"

	artworkHandler "artworks-backend/internal/domains/artwork/handler"
	artworkRepo "artworks-backend/internal/domains/artwork/repository"
	artworkService "artworks-backend/internal/domains/artwork/service"
)

// Container holds every dependency of the application; it is the root of
// the dependency graph. All members are singletons.
type Container struct {
	// Infrastructure
	Config *config.Config
	DB     *database.PostgresDB
	Cache  cache.Cache

	// Artwork domain
	ArtworkRepo    artworkRepo.ArtworkRepository
	ArtworkService artworkService.ServiceInterface
	ArtworkHandler *artworkHandler.ArtworkHandler

	redisCache *infraCache.RedisCache
}

// NewContainer initializes the dependency graph in order:
// config -> infrastructure -> repository -> service -> handler.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)
	if err := redisCache.Ping(ctx); err != nil {
		// The cache is an optimization; a dead Redis degrades reads but
		// must not keep the API down.
		log.Warn().Err(err).Msg("Redis unavailable, detail reads will skip the cache")
	}
	c.redisCache = redisCache
	c.Cache = redisCache

	c.ArtworkRepo = artworkRepo.NewPostgresRepository(db.Pool, c.Cache)
	c.ArtworkService = artworkService.NewArtworkService(c.ArtworkRepo)
	c.ArtworkHandler = artworkHandler.NewArtworkHandler(c.ArtworkService)

	return c, nil
}

// Cleanup releases infrastructure connections on shutdown.
func (c *Container) Cleanup() {
	if c.redisCache != nil {
		if err := c.redisCache.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close Redis client")
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
