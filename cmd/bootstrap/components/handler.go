package components

import (
	"commission-tracker/internal/handler"
	"commission-tracker/internal/handler/api"
	"commission-tracker/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCampaignHandler,
		api.NewOrderHandler,
		api.NewUserHandler,
		api.NewDashboardHandler,
		api.NewSequenceHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
