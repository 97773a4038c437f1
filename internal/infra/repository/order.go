package repository

import (
	"context"

	"commission-tracker/internal/domain/order"
	"commission-tracker/internal/infra"
	"commission-tracker/internal/infra/repository/converter"
	sqlc "commission-tracker/internal/infra/sqlc/generated"
	"commission-tracker/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=order.go -destination=../../../tests/mock/repository/order_mock.go -package=repositorymock

type OrderWriteQueries interface {
	CreateOrder(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOrderParams) error
	CreateOrderLineItem(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOrderLineItemParams) error
	DeleteOrderLineItems(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID) error
	FindOrderByReferenceIDForUpdate(ctx context.Context, db sqlc.DBTX, referenceID string) (sqlc.FindOrderByReferenceIDForUpdateRow, error)
	ListOrderLineItems(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID) ([]sqlc.OrderLineItems, error)
	UpdateOrderTotals(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateOrderTotalsParams) (int64, error)
}

type OrderRepository struct {
	queries OrderWriteQueries
}

func NewOrderRepository(queries OrderWriteQueries) *OrderRepository {
	return &OrderRepository{queries: queries}
}

// Create inserts the order header followed by its line items in input order.
func (r *OrderRepository) Create(ctx context.Context, tx sqlc.DBTX, o *order.Order) error {
	if err := r.queries.CreateOrder(ctx, tx, converter.OrderToCreateParams(o)); err != nil {
		return wrapAllocatedInsertErr("failed to create order "+o.ReferenceID(), err)
	}
	return r.insertItems(ctx, tx, o)
}

func (r *OrderRepository) FindByRefForUpdate(ctx context.Context, tx sqlc.DBTX, referenceID string) (*order.Order, error) {
	row, err := r.queries.FindOrderByReferenceIDForUpdate(ctx, tx, referenceID)
	if err != nil {
		return nil, infra.WrapRepoErr("order "+referenceID, err)
	}
	items, err := r.queries.ListOrderLineItems(ctx, tx, row.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list line items for order "+referenceID, err, infra.KindDBFailure)
	}
	o, err := converter.OrderToDomain(row, items)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt order row "+referenceID, err, infra.KindDBFailure)
	}
	return o, nil
}

// ReplaceItems rewrites the line items and the stored totals. The reference id
// and the snapshot rate are never written here.
func (r *OrderRepository) ReplaceItems(ctx context.Context, tx sqlc.DBTX, o *order.Order) error {
	n, err := r.queries.UpdateOrderTotals(ctx, tx, sqlc.UpdateOrderTotalsParams{
		ID:              o.ID(),
		OrderTotalCents: o.OrderTotal().Cents(),
		CommissionCents: o.CommissionAmount().Cents(),
		UpdatedAt:       pgconv.TimeToPgtype(o.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update totals for order "+o.ReferenceID(), err)
	}
	if n == 0 {
		return infra.WrapRepoErr("order "+o.ReferenceID(), nil, infra.KindNotFound)
	}
	if err := r.queries.DeleteOrderLineItems(ctx, tx, o.ID()); err != nil {
		return infra.WrapRepoErr("failed to delete line items for order "+o.ReferenceID(), err)
	}
	return r.insertItems(ctx, tx, o)
}

func (r *OrderRepository) insertItems(ctx context.Context, tx sqlc.DBTX, o *order.Order) error {
	for _, p := range converter.LineItemParams(o) {
		if err := r.queries.CreateOrderLineItem(ctx, tx, p); err != nil {
			return infra.WrapRepoErr("failed to insert line item for order "+o.ReferenceID(), err)
		}
	}
	return nil
}
