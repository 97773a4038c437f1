package order

import (
	"time"

	"commission-tracker/internal/domain/commission"
	"commission-tracker/internal/domain/sequence"
	"commission-tracker/internal/pkg/clock"
	"commission-tracker/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrFutureOrderDate = errs.Validation(errs.New("order date must not be in the future"))
	ErrMissingDate     = errs.Validation(errs.New("order date is required"))
)

// CampaignRef is what an order needs to know about its campaign.
type CampaignRef struct {
	ID          uuid.UUID
	ReferenceID string
}

// SalesPerson is the rate holder at the moment the order is drafted.
type SalesPerson struct {
	ID   uuid.UUID
	Rate commission.Rate
}

type Order struct {
	id               uuid.UUID
	referenceID      string
	campaign         CampaignRef
	salesPersonID    uuid.UUID
	items            []LineItem
	orderDate        time.Time
	orderTotal       commission.Money
	snapshotRate     commission.Rate
	commissionAmount commission.Money
	createdAt        time.Time
	updatedAt        time.Time
}

// Draft is a validated order with its commission already fixed. Issuing it
// only adds the reference id.
type Draft struct {
	campaign      CampaignRef
	salesPersonID uuid.UUID
	items         []LineItem
	orderDate     time.Time
	rate          commission.Rate
	totals        Totals
}

// NewDraft validates the submission and takes the sales person's current rate
// as the snapshot. today is the current calendar day.
func NewDraft(c CampaignRef, sp SalesPerson, inputs []ItemInput, orderDate, today time.Time) (*Draft, error) {
	if orderDate.IsZero() {
		return nil, ErrMissingDate
	}
	if clock.DateOf(orderDate).After(clock.DateOf(today)) {
		return nil, ErrFutureOrderDate
	}
	items, err := SanitizeItems(inputs)
	if err != nil {
		return nil, err
	}
	totals, err := ComputeTotals(items, sp.Rate)
	if err != nil {
		return nil, err
	}
	return &Draft{
		campaign:      c,
		salesPersonID: sp.ID,
		items:         items,
		orderDate:     clock.DateOf(orderDate),
		rate:          sp.Rate,
		totals:        totals,
	}, nil
}

// CounterKey is the per-campaign counter orders draw their numbers from.
func (d *Draft) CounterKey() (sequence.Key, error) {
	return sequence.NewKey(d.campaign.ReferenceID)
}

func (d *Draft) Totals() Totals { return d.totals }

func (d *Draft) Issue(number int64, now time.Time) (*Order, error) {
	scheme, err := sequence.SchemeFor(sequence.KindOrder)
	if err != nil {
		return nil, err
	}
	ref, err := scheme.Issue(d.campaign.ReferenceID, number)
	if err != nil {
		return nil, err
	}
	return &Order{
		id:               uuid.New(),
		referenceID:      ref,
		campaign:         d.campaign,
		salesPersonID:    d.salesPersonID,
		items:            d.items,
		orderDate:        d.orderDate,
		orderTotal:       d.totals.OrderTotal,
		snapshotRate:     d.rate,
		commissionAmount: d.totals.Commission,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

func ReconstructOrder(
	id uuid.UUID,
	referenceID string,
	campaign CampaignRef,
	salesPersonID uuid.UUID,
	items []LineItem,
	orderDate time.Time,
	orderTotal commission.Money,
	snapshotRate commission.Rate,
	commissionAmount commission.Money,
	createdAt, updatedAt time.Time,
) *Order {
	return &Order{
		id:               id,
		referenceID:      referenceID,
		campaign:         campaign,
		salesPersonID:    salesPersonID,
		items:            items,
		orderDate:        orderDate,
		orderTotal:       orderTotal,
		snapshotRate:     snapshotRate,
		commissionAmount: commissionAmount,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// ReplaceItems recomputes the totals with the stored snapshot rate. The
// reference id and the rate never change after creation.
func (o *Order) ReplaceItems(inputs []ItemInput, now time.Time) error {
	items, err := SanitizeItems(inputs)
	if err != nil {
		return err
	}
	totals, err := ComputeTotals(items, o.snapshotRate)
	if err != nil {
		return err
	}
	o.items = items
	o.orderTotal = totals.OrderTotal
	o.commissionAmount = totals.Commission
	o.updatedAt = now
	return nil
}

func (o *Order) ID() uuid.UUID                      { return o.id }
func (o *Order) ReferenceID() string                { return o.referenceID }
func (o *Order) Campaign() CampaignRef              { return o.campaign }
func (o *Order) SalesPersonID() uuid.UUID           { return o.salesPersonID }
func (o *Order) Items() []LineItem                  { return o.items }
func (o *Order) OrderDate() time.Time               { return o.orderDate }
func (o *Order) OrderTotal() commission.Money       { return o.orderTotal }
func (o *Order) SnapshotRate() commission.Rate      { return o.snapshotRate }
func (o *Order) CommissionAmount() commission.Money { return o.commissionAmount }
func (o *Order) CreatedAt() time.Time               { return o.createdAt }
func (o *Order) UpdatedAt() time.Time               { return o.updatedAt }
