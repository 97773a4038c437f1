package components

import (
	"commission-tracker/internal/infra/readstore"
	"commission-tracker/internal/infra/sequence"
	sqlc "commission-tracker/internal/infra/sqlc/generated"
	"commission-tracker/internal/infra/uow"
	"commission-tracker/internal/pkg/config"
	"commission-tracker/internal/usecase/queries"
	"commission-tracker/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// PersistenceModule exposes one stateless *sqlc.Queries under every narrow
// query interface the stores accept. Read stores run on the pool; write
// repositories are built per transaction by the unit of work.
var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		fx.Annotate(
			newQueries,
			fx.As(
				fx.Self(),
				new(readstore.UserReadQueries),
				new(readstore.CampaignViewQueries),
				new(readstore.OrderViewQueries),
				new(readstore.SummaryQueries),
				new(sequence.CounterQueries),
			),
		),
		poolDBTX,
		func(cfg config.Config) config.SequenceConfig { return cfg.Sequence },
	),
	fx.Provide(
		fx.Annotate(readstore.NewUserReadStore, fx.As(new(queries.UserReadStore))),
		fx.Annotate(readstore.NewCampaignReadStore, fx.As(new(queries.CampaignReadStore))),
		fx.Annotate(readstore.NewOrderReadStore, fx.As(new(queries.OrderReadStore))),
		fx.Annotate(readstore.NewSummaryReadStore, fx.As(new(queries.SummaryReadStore))),
		fx.Annotate(sequence.NewPostgresAllocator, fx.As(new(queries.SequenceReader))),
	),
	fx.Provide(
		uow.NewPostgresUoW,
		func(u shared.UnitOfWork) queries.ReadOnlyRunner { return u },
	),
)

// newQueries depends on the pool so the database is up before any store.
func newQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func poolDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
