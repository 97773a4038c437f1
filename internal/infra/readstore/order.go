package readstore

import (
	"context"
	"time"

	"commission-tracker/internal/infra"
	sqlc "commission-tracker/internal/infra/sqlc/generated"
	"commission-tracker/internal/pkg/pgconv"
	"commission-tracker/internal/usecase/queries"

	"github.com/google/uuid"
)

//go:generate mockgen -source=order.go -destination=../../../tests/mock/readstore/order_mock.go -package=readstoremock

type OrderViewQueries interface {
	GetOrderView(ctx context.Context, db sqlc.DBTX, referenceID string) (sqlc.GetOrderViewRow, error)
	ListOrderLineItems(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID) ([]sqlc.OrderLineItems, error)
	ListOrderLineItemsByOrders(ctx context.Context, db sqlc.DBTX, orderIds []uuid.UUID) ([]sqlc.OrderLineItems, error)
	ListOrdersFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOrdersFirstPageParams) ([]sqlc.ListOrdersFirstPageRow, error)
	ListOrdersKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOrdersKeysetParams) ([]sqlc.ListOrdersKeysetRow, error)
}

type OrderReadStore struct {
	queries OrderViewQueries
	db      sqlc.DBTX
}

func NewOrderReadStore(queries OrderViewQueries, db sqlc.DBTX) *OrderReadStore {
	return &OrderReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *OrderReadStore) FindByRef(ctx context.Context, referenceID string) (*queries.OrderView, error) {
	row, err := r.queries.GetOrderView(ctx, r.db, referenceID)
	if err != nil {
		return nil, infra.WrapRepoErr("order "+referenceID, err)
	}
	items, err := r.queries.ListOrderLineItems(ctx, r.db, row.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list line items for order "+referenceID, err, infra.KindDBFailure)
	}
	v := toOrderView(row)
	v.Items = toLineItemViews(items)
	return v, nil
}

func (r *OrderReadStore) ListFirstPage(ctx context.Context, filter queries.OrderFilter, limit int32) ([]*queries.OrderView, error) {
	rows, err := r.queries.ListOrdersFirstPage(ctx, r.db, sqlc.ListOrdersFirstPageParams{
		CampaignReferenceID: pgconv.StringPtrToPgtype(filter.CampaignReferenceID),
		SalesPersonID:       pgconv.UUIDPtrToPgtype(filter.SalesPersonID),
		FromDate:            pgconv.DatePtrToPgtype(filter.From),
		ToDate:              pgconv.DatePtrToPgtype(filter.To),
		Limit:               limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	views := make([]*queries.OrderView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toOrderView(sqlc.GetOrderViewRow(row)))
	}
	return r.attachItems(ctx, views)
}

func (r *OrderReadStore) ListKeyset(ctx context.Context, filter queries.OrderFilter, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.OrderView, error) {
	rows, err := r.queries.ListOrdersKeyset(ctx, r.db, sqlc.ListOrdersKeysetParams{
		CampaignReferenceID: pgconv.StringPtrToPgtype(filter.CampaignReferenceID),
		SalesPersonID:       pgconv.UUIDPtrToPgtype(filter.SalesPersonID),
		FromDate:            pgconv.DatePtrToPgtype(filter.From),
		ToDate:              pgconv.DatePtrToPgtype(filter.To),
		CreatedAt:           pgconv.TimeToPgtype(lastCreatedAt),
		ID:                  lastID,
		Limit:               limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders after cursor", err)
	}
	views := make([]*queries.OrderView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toOrderView(sqlc.GetOrderViewRow(row)))
	}
	return r.attachItems(ctx, views)
}

// attachItems loads the items of a whole page in one query.
func (r *OrderReadStore) attachItems(ctx context.Context, views []*queries.OrderView) ([]*queries.OrderView, error) {
	if len(views) == 0 {
		return views, nil
	}
	ids := make([]uuid.UUID, len(views))
	for i, v := range views {
		ids[i] = v.ID
	}
	items, err := r.queries.ListOrderLineItemsByOrders(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list line items", err, infra.KindDBFailure)
	}
	byOrder := make(map[uuid.UUID][]sqlc.OrderLineItems, len(views))
	for _, it := range items {
		byOrder[it.OrderID] = append(byOrder[it.OrderID], it)
	}
	for _, v := range views {
		v.Items = toLineItemViews(byOrder[v.ID])
	}
	return views, nil
}

func toOrderView(row sqlc.GetOrderViewRow) *queries.OrderView {
	return &queries.OrderView{
		ID:                  row.ID,
		ReferenceID:         row.ReferenceID,
		CampaignID:          row.CampaignID,
		CampaignReferenceID: row.CampaignReferenceID,
		SalesPersonID:       row.SalesPersonID,
		SalesPersonName:     row.SalesPersonName,
		OrderDate:           pgconv.DateFromPgtype(row.OrderDate),
		OrderTotalCents:     row.OrderTotalCents,
		SnapshotRateBP:      row.SnapshotRateBp,
		CommissionCents:     row.CommissionCents,
		CreatedAt:           pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:           pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func toLineItemViews(rows []sqlc.OrderLineItems) []queries.LineItemView {
	out := make([]queries.LineItemView, 0, len(rows))
	for _, r := range rows {
		out = append(out, queries.LineItemView{
			Name:           r.Name,
			Quantity:       r.Quantity,
			UnitPriceCents: r.UnitPriceCents,
		})
	}
	return out
}
