package shared

import (
	"context"

	"commission-tracker/internal/domain/campaign"
	"commission-tracker/internal/domain/order"
	"commission-tracker/internal/domain/sequence"
	"commission-tracker/internal/domain/user"
	sqlc "commission-tracker/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow_mock.go -package=sharedmock

// UnitOfWork scopes repositories and counters to one database transaction.
type UnitOfWork interface {
	// Within commits fn's writes atomically and retries on serialization
	// failures or deadlocks.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly gives fn a consistent snapshot across tables.
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
}

type Tx interface {
	Sequences() SequenceAllocator
	Campaigns() CampaignRepository
	Orders() OrderRepository
	Users() UserRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

// SequenceAllocator hands out per-key numbers from persisted counters. It runs
// on the caller's transaction so the increment commits or rolls back together
// with the row that uses the number.
type SequenceAllocator interface {
	AllocateNext(ctx context.Context, db sqlc.DBTX, key sequence.Key) (int64, error)
	Current(ctx context.Context, db sqlc.DBTX, key sequence.Key) (int64, error)
}

type CommandReads interface {
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
}

type CampaignRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, c *campaign.Campaign) error
	FindByRefForUpdate(ctx context.Context, tx sqlc.DBTX, referenceID string) (*campaign.Campaign, error)
	Update(ctx context.Context, tx sqlc.DBTX, c *campaign.Campaign) error
}

type OrderRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, o *order.Order) error
	FindByRefForUpdate(ctx context.Context, tx sqlc.DBTX, referenceID string) (*order.Order, error)
	ReplaceItems(ctx context.Context, tx sqlc.DBTX, o *order.Order) error
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) error
	FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*user.User, error)
	UpdateCommissionRate(ctx context.Context, tx sqlc.DBTX, u *user.User) error
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, u *user.User) error
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error
}

// SummaryInvalidator drops cached commission summaries after order writes.
type SummaryInvalidator interface {
	Invalidate(ctx context.Context) error
}
