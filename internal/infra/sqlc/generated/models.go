// Hand-maintained in sqlc's output layout. Keep in sync with queries/ and sqlc.yaml.

package sqlc

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Campaigns struct {
	ID            uuid.UUID
	ReferenceID   string
	Title         string
	Platform      string
	CampaignType  string
	Url           string
	SalesPersonID uuid.UUID
	Status        string
	StartDate     pgtype.Date
	EndDate       pgtype.Date
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}

type OrderLineItems struct {
	OrderID        uuid.UUID
	Position       int32
	Name           string
	Quantity       int32
	UnitPriceCents int64
}

type Orders struct {
	ID              uuid.UUID
	ReferenceID     string
	CampaignID      uuid.UUID
	SalesPersonID   uuid.UUID
	OrderDate       pgtype.Date
	OrderTotalCents int64
	SnapshotRateBp  int32
	CommissionCents int64
	CreatedAt       pgtype.Timestamptz
	UpdatedAt       pgtype.Timestamptz
}

type SequenceCounters struct {
	Key       string
	Seq       int64
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

type Users struct {
	ID               uuid.UUID
	Email            string
	Name             string
	PasswordHash     string
	Role             string
	CommissionRateBp int32
	IsActive         bool
	LastLogin        pgtype.Timestamptz
	CreatedAt        pgtype.Timestamptz
	UpdatedAt        pgtype.Timestamptz
}
