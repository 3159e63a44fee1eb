package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"github.com/Nathan-Yinka/vendy-stores/internal/infra/cache"
	"github.com/Nathan-Yinka/vendy-stores/internal/pkg/config"
	"github.com/Nathan-Yinka/vendy-stores/internal/usecase"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewProductCache,
	),
)

// NewProductCache connects to redis when REDIS_ADDR is set. An unreachable
// redis at startup degrades to no caching.
func NewProductCache(lc fx.Lifecycle, cfg config.CacheConfig, logger *slog.Logger) usecase.ProductCache {
	if cfg.Addr == "" {
		logger.Info("product cache disabled")
		return cache.NopProductCache{}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rdb, err := cache.NewRedisClient(ctx, cfg)
	if err != nil {
		logger.Warn("product cache unavailable", "addr", cfg.Addr, "error", err.Error())
		return cache.NopProductCache{}
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})
	return cache.NewRedisProductCache(rdb, cfg.TTL)
}
