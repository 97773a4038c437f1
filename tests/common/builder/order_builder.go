//go:build unit || e2e

package builder

import (
	"time"

	"commission-tracker/internal/domain/commission"
	"commission-tracker/internal/domain/order"
	sqlc "commission-tracker/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type OrderBuilder struct {
	CampaignID    uuid.UUID
	CampaignRef   string
	SalesPersonID uuid.UUID
	RateBP        int32
	Items         []order.ItemInput
	OrderDate     time.Time
	Today         time.Time
	Number        int64
	Now           time.Time
}

func NewOrderBuilder() *OrderBuilder {
	today := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	return &OrderBuilder{
		CampaignID:    uuid.New(),
		CampaignRef:   "FB-001",
		SalesPersonID: uuid.New(),
		RateBP:        1000,
		Items: []order.ItemInput{
			{Name: "Widget", Quantity: 2, UnitPrice: 1500},
			{Name: "Gadget", Quantity: 1, UnitPrice: 2000},
		},
		OrderDate: today,
		Today:     today,
		Number:    1,
		Now:       today.Add(9 * time.Hour),
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

func (b *OrderBuilder) BuildDraft() (*order.Draft, error) {
	rate, err := commission.NewRateFromBasisPoints(b.RateBP)
	if err != nil {
		return nil, err
	}
	return order.NewDraft(
		order.CampaignRef{ID: b.CampaignID, ReferenceID: b.CampaignRef},
		order.SalesPerson{ID: b.SalesPersonID, Rate: rate},
		b.Items,
		b.OrderDate,
		b.Today,
	)
}

func (b *OrderBuilder) BuildDomain() (*order.Order, error) {
	d, err := b.BuildDraft()
	if err != nil {
		return nil, err
	}
	return d.Issue(b.Number, b.Now)
}

// BuildInfra returns the locked row shape plus its line item rows.
func (b *OrderBuilder) BuildInfra() (sqlc.FindOrderByReferenceIDForUpdateRow, []sqlc.OrderLineItems, error) {
	o, err := b.BuildDomain()
	if err != nil {
		return sqlc.FindOrderByReferenceIDForUpdateRow{}, nil, err
	}
	row := sqlc.FindOrderByReferenceIDForUpdateRow{
		ID:                  o.ID(),
		ReferenceID:         o.ReferenceID(),
		CampaignID:          b.CampaignID,
		SalesPersonID:       b.SalesPersonID,
		OrderDate:           pgtype.Date{Time: o.OrderDate(), Valid: true},
		OrderTotalCents:     o.OrderTotal().Cents(),
		SnapshotRateBp:      o.SnapshotRate().BasisPoints(),
		CommissionCents:     o.CommissionAmount().Cents(),
		CreatedAt:           pgtype.Timestamptz{Time: b.Now, Valid: true},
		UpdatedAt:           pgtype.Timestamptz{Time: b.Now, Valid: true},
		CampaignReferenceID: b.CampaignRef,
	}
	items := make([]sqlc.OrderLineItems, 0, len(o.Items()))
	for i, li := range o.Items() {
		items = append(items, sqlc.OrderLineItems{
			OrderID:        o.ID(),
			Position:       int32(i),
			Name:           li.Name(),
			Quantity:       li.Quantity(),
			UnitPriceCents: li.UnitPrice().Cents(),
		})
	}
	return row, items, nil
}

func (b *OrderBuilder) WithRate(bp int32) *OrderBuilder {
	b.RateBP = bp
	return b
}
