package converter

import (
	"commission-tracker/internal/domain/commission"
	"commission-tracker/internal/domain/order"
	sqlc "commission-tracker/internal/infra/sqlc/generated"
	"commission-tracker/internal/pkg/pgconv"
)

func OrderToDomain(row sqlc.FindOrderByReferenceIDForUpdateRow, itemRows []sqlc.OrderLineItems) (*order.Order, error) {
	items, err := LineItemsToDomain(itemRows)
	if err != nil {
		return nil, err
	}
	total, err := commission.NewMoney(row.OrderTotalCents)
	if err != nil {
		return nil, err
	}
	amount, err := commission.NewMoney(row.CommissionCents)
	if err != nil {
		return nil, err
	}
	rate, err := commission.NewRateFromBasisPoints(row.SnapshotRateBp)
	if err != nil {
		return nil, err
	}

	return order.ReconstructOrder(
		row.ID,
		row.ReferenceID,
		order.CampaignRef{ID: row.CampaignID, ReferenceID: row.CampaignReferenceID},
		row.SalesPersonID,
		items,
		pgconv.DateFromPgtype(row.OrderDate),
		total,
		rate,
		amount,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func LineItemsToDomain(rows []sqlc.OrderLineItems) ([]order.LineItem, error) {
	items := make([]order.LineItem, 0, len(rows))
	for _, r := range rows {
		price, err := commission.NewMoney(r.UnitPriceCents)
		if err != nil {
			return nil, err
		}
		items = append(items, order.ReconstructLineItem(r.Name, r.Quantity, price))
	}
	return items, nil
}

func OrderToCreateParams(o *order.Order) sqlc.CreateOrderParams {
	return sqlc.CreateOrderParams{
		ID:              o.ID(),
		ReferenceID:     o.ReferenceID(),
		CampaignID:      o.Campaign().ID,
		SalesPersonID:   o.SalesPersonID(),
		OrderDate:       pgconv.DateToPgtype(o.OrderDate()),
		OrderTotalCents: o.OrderTotal().Cents(),
		SnapshotRateBp:  o.SnapshotRate().BasisPoints(),
		CommissionCents: o.CommissionAmount().Cents(),
		CreatedAt:       pgconv.TimeToPgtype(o.CreatedAt()),
		UpdatedAt:       pgconv.TimeToPgtype(o.UpdatedAt()),
	}
}

func LineItemParams(o *order.Order) []sqlc.CreateOrderLineItemParams {
	params := make([]sqlc.CreateOrderLineItemParams, 0, len(o.Items()))
	for i, li := range o.Items() {
		params = append(params, sqlc.CreateOrderLineItemParams{
			OrderID:        o.ID(),
			Position:       int32(i), // #nosec G115 -- bounded by order.MaxLineItems
			Name:           li.Name(),
			Quantity:       li.Quantity(),
			UnitPriceCents: li.UnitPrice().Cents(),
		})
	}
	return params
}
