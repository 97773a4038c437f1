package queries

import (
	"time"

	"commission-tracker/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidCursor    = errs.Validation(errs.New("invalid cursor"))
	ErrInvalidDateRange = errs.Validation(errs.New("from must not be after to"))
)

// AuthorizedUserView is the slice of a user the auth layer needs.
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

type UserView struct {
	ID               uuid.UUID  `json:"id"`
	Email            string     `json:"email"`
	Name             string     `json:"name"`
	Role             string     `json:"role"`
	CommissionRateBP int32      `json:"commission_rate_bp"`
	IsActive         bool       `json:"is_active"`
	LastLogin        *time.Time `json:"last_login,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type CampaignView struct {
	ID              uuid.UUID  `json:"id"`
	ReferenceID     string     `json:"reference_id"`
	Title           string     `json:"title"`
	Platform        string     `json:"platform"`
	Type            string     `json:"type"`
	URL             string     `json:"url"`
	SalesPersonID   uuid.UUID  `json:"sales_person_id"`
	SalesPersonName string     `json:"sales_person_name"`
	Status          string     `json:"status"`
	StartDate       *time.Time `json:"start_date,omitempty"`
	EndDate         *time.Time `json:"end_date,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type LineItemView struct {
	Name           string `json:"name"`
	Quantity       int32  `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
}

type OrderView struct {
	ID                  uuid.UUID      `json:"id"`
	ReferenceID         string         `json:"reference_id"`
	CampaignID          uuid.UUID      `json:"campaign_id"`
	CampaignReferenceID string         `json:"campaign_reference_id"`
	SalesPersonID       uuid.UUID      `json:"sales_person_id"`
	SalesPersonName     string         `json:"sales_person_name"`
	OrderDate           time.Time      `json:"order_date"`
	Items               []LineItemView `json:"items"`
	OrderTotalCents     int64          `json:"order_total_cents"`
	SnapshotRateBP      int32          `json:"snapshot_rate_bp"`
	CommissionCents     int64          `json:"commission_cents"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
}

type SalesPersonCommission struct {
	SalesPersonID        uuid.UUID `json:"sales_person_id"`
	SalesPersonName      string    `json:"sales_person_name"`
	OrderCount           int64     `json:"order_count"`
	SalesTotalCents      int64     `json:"sales_total_cents"`
	CommissionTotalCents int64     `json:"commission_total_cents"`
}

// CommissionSummary aggregates orders whose order date falls in [From, To].
type CommissionSummary struct {
	From                 time.Time               `json:"from"`
	To                   time.Time               `json:"to"`
	SalesPeople          []SalesPersonCommission `json:"sales_people"`
	OrderCount           int64                   `json:"order_count"`
	SalesTotalCents      int64                   `json:"sales_total_cents"`
	CommissionTotalCents int64                   `json:"commission_total_cents"`
}

type SequenceView struct {
	Key     string `json:"key"`
	Current int64  `json:"current"`
}

type CampaignFilter struct {
	Platform      *string
	Status        *string
	SalesPersonID *uuid.UUID
}

type OrderFilter struct {
	CampaignReferenceID *string
	SalesPersonID       *uuid.UUID
	From                *time.Time
	To                  *time.Time
}

type UserFilter struct {
	Role *string
}
