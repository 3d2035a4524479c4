package container

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"github.com/user235678/yt-adawi-sub002/internal/catalog"
	"github.com/user235678/yt-adawi-sub002/internal/config"
	"github.com/user235678/yt-adawi-sub002/internal/server"
	"github.com/user235678/yt-adawi-sub002/internal/service"
	"github.com/user235678/yt-adawi-sub002/internal/state"
)

// Container holds all initialized components
type Container struct {
	Config   *config.Config
	Client   catalog.CatalogClient
	Sessions state.SessionStore
	Service  *service.Service
	Server   *server.Server

	redis *redis.Client
}

// New creates a new container with all dependencies initialized
func New(cfg *config.Config) (*Container, error) {
	container := &Container{
		Config: cfg,
	}

	container.Client = catalog.NewCatalogClient(cfg.Catalog)

	sessionTTL := time.Duration(cfg.Redis.SessionTTL) * time.Minute

	if cfg.Redis.Host != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.Database,
		})

		// Test connection
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		log.Info("✅ Connected to Redis successfully")

		container.redis = rdb
		container.Sessions = state.NewRedisSessionStore(rdb, sessionTTL)
	} else {
		log.Info("Redis not configured, keeping session state in memory")
		container.Sessions = state.NewMemorySessionStore()
	}

	container.Service = service.NewService(container.Client, container.Sessions, cfg.Catalog.PageSize)
	container.Server = server.New(cfg.Server, container.Service, sessionTTL)

	return container, nil
}

// Run serves the storefront until the context is cancelled
func (c *Container) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return c.Server.Run(ctx)
	})

	return g.Wait()
}

// Close performs cleanup when shutting down
func (c *Container) Close() error {
	log.Info("Shutting down container...")

	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			return err
		}
	}

	log.Info("Container shut down successfully")
	return nil
}
