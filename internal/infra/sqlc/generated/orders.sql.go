// Hand-maintained in sqlc's output layout. Keep in sync with queries/orders.sql.

package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createOrder = `-- name: CreateOrder :exec
INSERT INTO orders (
    id, reference_id, campaign_id, sales_person_id, order_date,
    order_total_cents, snapshot_rate_bp, commission_cents, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
`

type CreateOrderParams struct {
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

func (q *Queries) CreateOrder(ctx context.Context, db DBTX, arg CreateOrderParams) error {
	_, err := db.Exec(ctx, createOrder, arg.ID, arg.ReferenceID, arg.CampaignID, arg.SalesPersonID, arg.OrderDate, arg.OrderTotalCents, arg.SnapshotRateBp, arg.CommissionCents, arg.CreatedAt, arg.UpdatedAt)
	return err
}

const createOrderLineItem = `-- name: CreateOrderLineItem :exec
INSERT INTO order_line_items (order_id, position, name, quantity, unit_price_cents)
VALUES ($1, $2, $3, $4, $5)
`

type CreateOrderLineItemParams struct {
	OrderID        uuid.UUID
	Position       int32
	Name           string
	Quantity       int32
	UnitPriceCents int64
}

func (q *Queries) CreateOrderLineItem(ctx context.Context, db DBTX, arg CreateOrderLineItemParams) error {
	_, err := db.Exec(ctx, createOrderLineItem, arg.OrderID, arg.Position, arg.Name, arg.Quantity, arg.UnitPriceCents)
	return err
}

const deleteOrderLineItems = `-- name: DeleteOrderLineItems :exec
DELETE FROM order_line_items WHERE order_id = $1
`

func (q *Queries) DeleteOrderLineItems(ctx context.Context, db DBTX, orderID uuid.UUID) error {
	_, err := db.Exec(ctx, deleteOrderLineItems, orderID)
	return err
}

const findOrderByReferenceIDForUpdate = `-- name: FindOrderByReferenceIDForUpdate :one
SELECT o.id, o.reference_id, o.campaign_id, o.sales_person_id, o.order_date, o.order_total_cents, o.snapshot_rate_bp, o.commission_cents, o.created_at, o.updated_at, c.reference_id AS campaign_reference_id
FROM orders o
JOIN campaigns c ON c.id = o.campaign_id
WHERE o.reference_id = $1
FOR UPDATE OF o
`

type FindOrderByReferenceIDForUpdateRow struct {
	ID                  uuid.UUID
	ReferenceID         string
	CampaignID          uuid.UUID
	SalesPersonID       uuid.UUID
	OrderDate           pgtype.Date
	OrderTotalCents     int64
	SnapshotRateBp      int32
	CommissionCents     int64
	CreatedAt           pgtype.Timestamptz
	UpdatedAt           pgtype.Timestamptz
	CampaignReferenceID string
}

func (q *Queries) FindOrderByReferenceIDForUpdate(ctx context.Context, db DBTX, referenceID string) (FindOrderByReferenceIDForUpdateRow, error) {
	row := db.QueryRow(ctx, findOrderByReferenceIDForUpdate, referenceID)
	var i FindOrderByReferenceIDForUpdateRow
	err := row.Scan(
		&i.ID,
		&i.ReferenceID,
		&i.CampaignID,
		&i.SalesPersonID,
		&i.OrderDate,
		&i.OrderTotalCents,
		&i.SnapshotRateBp,
		&i.CommissionCents,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.CampaignReferenceID,
	)
	return i, err
}

const getOrderView = `-- name: GetOrderView :one
SELECT o.id, o.reference_id, o.campaign_id, o.sales_person_id, o.order_date, o.order_total_cents, o.snapshot_rate_bp, o.commission_cents, o.created_at, o.updated_at, c.reference_id AS campaign_reference_id, u.name AS sales_person_name
FROM orders o
JOIN campaigns c ON c.id = o.campaign_id
JOIN users u ON u.id = o.sales_person_id
WHERE o.reference_id = $1
`

type GetOrderViewRow struct {
	ID                  uuid.UUID
	ReferenceID         string
	CampaignID          uuid.UUID
	SalesPersonID       uuid.UUID
	OrderDate           pgtype.Date
	OrderTotalCents     int64
	SnapshotRateBp      int32
	CommissionCents     int64
	CreatedAt           pgtype.Timestamptz
	UpdatedAt           pgtype.Timestamptz
	CampaignReferenceID string
	SalesPersonName     string
}

func (q *Queries) GetOrderView(ctx context.Context, db DBTX, referenceID string) (GetOrderViewRow, error) {
	row := db.QueryRow(ctx, getOrderView, referenceID)
	var i GetOrderViewRow
	err := row.Scan(
		&i.ID,
		&i.ReferenceID,
		&i.CampaignID,
		&i.SalesPersonID,
		&i.OrderDate,
		&i.OrderTotalCents,
		&i.SnapshotRateBp,
		&i.CommissionCents,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.CampaignReferenceID,
		&i.SalesPersonName,
	)
	return i, err
}

const listOrderLineItems = `-- name: ListOrderLineItems :many
SELECT order_id, position, name, quantity, unit_price_cents FROM order_line_items WHERE order_id = $1 ORDER BY position
`

func (q *Queries) ListOrderLineItems(ctx context.Context, db DBTX, orderID uuid.UUID) ([]OrderLineItems, error) {
	rows, err := db.Query(ctx, listOrderLineItems, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []OrderLineItems
	for rows.Next() {
		var i OrderLineItems
		if err := rows.Scan(
			&i.OrderID,
			&i.Position,
			&i.Name,
			&i.Quantity,
			&i.UnitPriceCents,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listOrderLineItemsByOrders = `-- name: ListOrderLineItemsByOrders :many
SELECT order_id, position, name, quantity, unit_price_cents FROM order_line_items WHERE order_id = ANY($1::uuid[]) ORDER BY order_id, position
`

func (q *Queries) ListOrderLineItemsByOrders(ctx context.Context, db DBTX, orderIds []uuid.UUID) ([]OrderLineItems, error) {
	rows, err := db.Query(ctx, listOrderLineItemsByOrders, orderIds)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []OrderLineItems
	for rows.Next() {
		var i OrderLineItems
		if err := rows.Scan(
			&i.OrderID,
			&i.Position,
			&i.Name,
			&i.Quantity,
			&i.UnitPriceCents,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listOrdersFirstPage = `-- name: ListOrdersFirstPage :many
SELECT o.id, o.reference_id, o.campaign_id, o.sales_person_id, o.order_date, o.order_total_cents, o.snapshot_rate_bp, o.commission_cents, o.created_at, o.updated_at, c.reference_id AS campaign_reference_id, u.name AS sales_person_name
FROM orders o
JOIN campaigns c ON c.id = o.campaign_id
JOIN users u ON u.id = o.sales_person_id
WHERE ($1::text IS NULL OR c.reference_id = $1)
  AND ($2::uuid IS NULL OR o.sales_person_id = $2)
  AND ($3::date IS NULL OR o.order_date >= $3)
  AND ($4::date IS NULL OR o.order_date <= $4)
ORDER BY o.created_at DESC, o.id DESC
LIMIT $5
`

type ListOrdersFirstPageParams struct {
	CampaignReferenceID pgtype.Text
	SalesPersonID       pgtype.UUID
	FromDate            pgtype.Date
	ToDate              pgtype.Date
	Limit               int32
}

type ListOrdersFirstPageRow struct {
	ID                  uuid.UUID
	ReferenceID         string
	CampaignID          uuid.UUID
	SalesPersonID       uuid.UUID
	OrderDate           pgtype.Date
	OrderTotalCents     int64
	SnapshotRateBp      int32
	CommissionCents     int64
	CreatedAt           pgtype.Timestamptz
	UpdatedAt           pgtype.Timestamptz
	CampaignReferenceID string
	SalesPersonName     string
}

func (q *Queries) ListOrdersFirstPage(ctx context.Context, db DBTX, arg ListOrdersFirstPageParams) ([]ListOrdersFirstPageRow, error) {
	rows, err := db.Query(ctx, listOrdersFirstPage, arg.CampaignReferenceID, arg.SalesPersonID, arg.FromDate, arg.ToDate, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListOrdersFirstPageRow
	for rows.Next() {
		var i ListOrdersFirstPageRow
		if err := rows.Scan(
			&i.ID,
			&i.ReferenceID,
			&i.CampaignID,
			&i.SalesPersonID,
			&i.OrderDate,
			&i.OrderTotalCents,
			&i.SnapshotRateBp,
			&i.CommissionCents,
			&i.CreatedAt,
			&i.UpdatedAt,
			&i.CampaignReferenceID,
			&i.SalesPersonName,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listOrdersKeyset = `-- name: ListOrdersKeyset :many
SELECT o.id, o.reference_id, o.campaign_id, o.sales_person_id, o.order_date, o.order_total_cents, o.snapshot_rate_bp, o.commission_cents, o.created_at, o.updated_at, c.reference_id AS campaign_reference_id, u.name AS sales_person_name
FROM orders o
JOIN campaigns c ON c.id = o.campaign_id
JOIN users u ON u.id = o.sales_person_id
WHERE ($1::text IS NULL OR c.reference_id = $1)
  AND ($2::uuid IS NULL OR o.sales_person_id = $2)
  AND ($3::date IS NULL OR o.order_date >= $3)
  AND ($4::date IS NULL OR o.order_date <= $4)
  AND (o.created_at, o.id) < ($5::timestamptz, $6::uuid)
ORDER BY o.created_at DESC, o.id DESC
LIMIT $7
`

type ListOrdersKeysetParams struct {
	CampaignReferenceID pgtype.Text
	SalesPersonID       pgtype.UUID
	FromDate            pgtype.Date
	ToDate              pgtype.Date
	CreatedAt           pgtype.Timestamptz
	ID                  uuid.UUID
	Limit               int32
}

type ListOrdersKeysetRow struct {
	ID                  uuid.UUID
	ReferenceID         string
	CampaignID          uuid.UUID
	SalesPersonID       uuid.UUID
	OrderDate           pgtype.Date
	OrderTotalCents     int64
	SnapshotRateBp      int32
	CommissionCents     int64
	CreatedAt           pgtype.Timestamptz
	UpdatedAt           pgtype.Timestamptz
	CampaignReferenceID string
	SalesPersonName     string
}

func (q *Queries) ListOrdersKeyset(ctx context.Context, db DBTX, arg ListOrdersKeysetParams) ([]ListOrdersKeysetRow, error) {
	rows, err := db.Query(ctx, listOrdersKeyset, arg.CampaignReferenceID, arg.SalesPersonID, arg.FromDate, arg.ToDate, arg.CreatedAt, arg.ID, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListOrdersKeysetRow
	for rows.Next() {
		var i ListOrdersKeysetRow
		if err := rows.Scan(
			&i.ID,
			&i.ReferenceID,
			&i.CampaignID,
			&i.SalesPersonID,
			&i.OrderDate,
			&i.OrderTotalCents,
			&i.SnapshotRateBp,
			&i.CommissionCents,
			&i.CreatedAt,
			&i.UpdatedAt,
			&i.CampaignReferenceID,
			&i.SalesPersonName,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateOrderTotals = `-- name: UpdateOrderTotals :execrows
UPDATE orders
SET order_total_cents = $2,
    commission_cents  = $3,
    updated_at        = $4
WHERE id = $1
`

type UpdateOrderTotalsParams struct {
	ID              uuid.UUID
	OrderTotalCents int64
	CommissionCents int64
	UpdatedAt       pgtype.Timestamptz
}

// snapshot_rate_bp and reference_id are deliberately not updatable.
func (q *Queries) UpdateOrderTotals(ctx context.Context, db DBTX, arg UpdateOrderTotalsParams) (int64, error) {
	result, err := db.Exec(ctx, updateOrderTotals, arg.ID, arg.OrderTotalCents, arg.CommissionCents, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
