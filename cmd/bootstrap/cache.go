package bootstrap

import (
	"context"
	"log/slog"

	"court-booking/internal/infra/refdata"
	"court-booking/internal/pkg/clock"
	"court-booking/internal/pkg/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewReferenceCache,
	),
)

// NewReferenceCache uses Redis when REDIS_ADDR is set and an in-process map otherwise.
func NewReferenceCache(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) (refdata.Cache, error) {
	if cfg.Redis.Addr == "" {
		logger.Info("reference cache: in-memory")
		return refdata.NewMemoryCache(clk), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				logger.Warn("redis unreachable, reference lookups will hit the database", "addr", cfg.Redis.Addr, "error", err)
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	logger.Info("reference cache: redis", "addr", cfg.Redis.Addr)
	return refdata.NewRedisCache(client, cfg.Redis.Prefix), nil
}
