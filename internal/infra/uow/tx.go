package uow

import (
	"context"

	"commission-tracker/internal/infra/readstore"
	"commission-tracker/internal/infra/repository"
	"commission-tracker/internal/infra/sequence"
	sqlc "commission-tracker/internal/infra/sqlc/generated"
	"commission-tracker/internal/usecase/shared"

	"github.com/google/uuid"
)

// pgTx binds the write repositories to one open transaction.
type pgTx struct {
	db        sqlc.DBTX
	sequences shared.SequenceAllocator
	campaigns shared.CampaignRepository
	orders    shared.OrderRepository
	users     shared.UserRepository
	reads     txReads
}

func newTx(db sqlc.DBTX, q *sqlc.Queries) *pgTx {
	return &pgTx{
		db:        db,
		sequences: sequence.NewPostgresAllocator(q),
		campaigns: repository.NewCampaignRepository(q),
		orders:    repository.NewOrderRepository(q),
		users:     repository.NewUserRepository(q),
		reads:     txReads{users: readstore.NewUserReadStore(q, db)},
	}
}

func (t *pgTx) DB() sqlc.DBTX                        { return t.db }
func (t *pgTx) Sequences() shared.SequenceAllocator  { return t.sequences }
func (t *pgTx) Campaigns() shared.CampaignRepository { return t.campaigns }
func (t *pgTx) Orders() shared.OrderRepository       { return t.orders }
func (t *pgTx) Users() shared.UserRepository         { return t.users }
func (t *pgTx) Reads() shared.CommandReads           { return t.reads }

// txReads lets commands check referenced users inside the same snapshot
// they write in.
type txReads struct {
	users *readstore.UserReadStore
}

func (r txReads) UserByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	u, err := r.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &shared.UserSnapshot{
		ID:               u.ID,
		Email:            u.Email,
		Name:             u.Name,
		Role:             u.Role,
		CommissionRateBP: u.CommissionRateBP,
		IsActive:         u.IsActive,
	}, nil
}
