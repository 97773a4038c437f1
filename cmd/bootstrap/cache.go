package bootstrap

import (
	"context"
	"log/slog"

	"commission-tracker/internal/infra/cache"
	"commission-tracker/internal/pkg/config"
	"commission-tracker/internal/usecase/queries"
	"commission-tracker/internal/usecase/shared"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewSummaryCache,
	),
)

type SummaryCacheResult struct {
	fx.Out

	Cache       queries.SummaryCache
	Invalidator shared.SummaryInvalidator
}

// NewSummaryCache falls back to a no-op cache when REDIS_ADDR is unset.
func NewSummaryCache(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (SummaryCacheResult, error) {
	if !cfg.Redis.Enabled() {
		logger.Info("commission summary cache disabled")
		noop := cache.NoopSummaryCache{}
		return SummaryCacheResult{Cache: noop, Invalidator: noop}, nil
	}

	client, err := cache.NewRedisClient(context.Background(), cfg.Redis)
	if err != nil {
		return SummaryCacheResult{}, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			logger.Info("closing redis client")
			return client.Close()
		},
	})

	logger.Info("commission summary cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.CacheTTL)
	summaries := cache.NewRedisSummaryCache(client, cfg.Redis.CacheTTL)
	return SummaryCacheResult{Cache: summaries, Invalidator: summaries}, nil
}
