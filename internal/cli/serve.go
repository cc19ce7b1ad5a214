package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/dkreuer/grapple/internal/server"
	"github.com/dkreuer/grapple/pkg/cache"
	"github.com/dkreuer/grapple/pkg/config"
	apperrors "github.com/dkreuer/grapple/pkg/errors"
	"github.com/dkreuer/grapple/pkg/pipeline"
	"github.com/dkreuer/grapple/pkg/store"
)

// serveCommand creates the "serve" command for the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		configPath string
		addr       string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the graph analysis HTTP API",
		Long: `Serve the graph analysis HTTP API.

Configuration is read from a TOML file; a missing file falls back to
defaults (listen on :8080, file cache, in-memory store). The --addr flag
overrides the configured listen address.

Examples:
  grapple serve
  grapple serve --config grapple.toml
  grapple serve --addr :9090`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			ctx := cmd.Context()

			ca, err := serveCache(ctx, cfg)
			if err != nil {
				return err
			}
			defer ca.Close()

			st, err := serveStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer st.Close(context.Background())

			runner := pipeline.NewRunner(ca, nil, c.Logger)
			runner.TTL = cfg.CacheTTL()

			c.Logger.Info("starting server",
				"addr", cfg.Server.Addr,
				"cache", cfg.Cache.Backend,
				"store", cfg.Store.Backend,
			)
			return server.New(runner, st, c.Logger).Run(ctx, cfg.Server.Addr)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to TOML config file")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")

	return cmd
}

// serveCache builds the cache backend named in the config.
func serveCache(ctx context.Context, cfg config.Config) (cache.Cache, error) {
	switch cfg.Cache.Backend {
	case config.CacheNone:
		return cache.NewNullCache(), nil
	case config.CacheRedis:
		return cache.NewRedisCache(ctx, cache.RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	case config.CacheFile:
		dir := cfg.Cache.Dir
		if dir == "" {
			var err error
			dir, err = cacheDir()
			if err != nil {
				return nil, err
			}
		}
		return cache.NewFileCache(dir)
	default:
		return nil, apperrors.New(apperrors.ErrCodeInvalidConfig, "unknown cache backend: %s", cfg.Cache.Backend)
	}
}

// serveStore builds the store backend named in the config.
func serveStore(ctx context.Context, cfg config.Config) (store.Store, error) {
	switch cfg.Store.Backend {
	case config.StoreMemory:
		return store.NewMemoryStore(), nil
	case config.StoreMongo:
		return store.NewMongoStore(ctx, store.MongoOptions{
			URI:      cfg.Store.URI,
			Database: cfg.Store.Database,
		})
	default:
		return nil, apperrors.New(apperrors.ErrCodeInvalidConfig, "unknown store backend: %s", cfg.Store.Backend)
	}
}
