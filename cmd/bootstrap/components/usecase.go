package components

import (
	"commission-tracker/internal/pkg/clock"
	"commission-tracker/internal/usecase"
	"commission-tracker/internal/usecase/commands"
	"commission-tracker/internal/usecase/queries"

	"go.uber.org/fx"
)

// UseCaseModule provides the command and query services. All of them share
// one UTC wall clock.
var UseCaseModule = fx.Module("usecase",
	fx.Provide(clock.NewRealClock),
	fx.Provide(
		// writes
		commands.NewAuthCommands,
		commands.NewUserCommands,
		commands.NewCampaignCommands,
		commands.NewOrderCommands,
	),
	fx.Provide(
		// reads
		queries.NewUserQueries,
		queries.NewCampaignQueries,
		queries.NewOrderQueries,
		queries.NewDashboardQueries,
		queries.NewSequenceQueries,
	),
	fx.Provide(usecase.NewTokenValidator),
)
