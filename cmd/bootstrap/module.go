package bootstrap

import (
	"commission-tracker/cmd/bootstrap/components"
	"commission-tracker/internal/pkg/config"

	"go.uber.org/fx"
)

// Module is the whole API server graph. Infrastructure comes first so the
// layers below can depend on it.
var Module = fx.Options(
	fx.Module("config", fx.Provide(config.LoadConfig)),
	LoggerModule,
	DBModule,
	CacheModule,
	JWTModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
