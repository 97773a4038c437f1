package bootstrap

import (
	"context"
	"log/slog"

	"commission-tracker/internal/infra/db"
	"commission-tracker/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(NewDB),
)

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.StopHook(func() {
		stat := pool.Stat()
		slog.Info("closing database pool",
			"acquired", stat.AcquiredConns(),
			"idle", stat.IdleConns(),
			"total", stat.TotalConns())
		pool.Close()
	}))

	return pool, nil
}
