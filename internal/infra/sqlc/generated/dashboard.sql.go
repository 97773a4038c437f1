// Hand-maintained in sqlc's output layout. Keep in sync with queries/dashboard.sql.

package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const getCommissionSummary = `-- name: GetCommissionSummary :many
SELECT
    u.id                                 AS sales_person_id,
    u.name                               AS sales_person_name,
    COUNT(o.id)::bigint                  AS order_count,
    COALESCE(SUM(o.order_total_cents), 0)::bigint AS sales_total_cents,
    COALESCE(SUM(o.commission_cents), 0)::bigint  AS commission_total_cents
FROM orders o
JOIN users u ON u.id = o.sales_person_id
WHERE o.order_date >= $1::date
  AND o.order_date <= $2::date
GROUP BY u.id, u.name
ORDER BY commission_total_cents DESC, u.name
`

type GetCommissionSummaryParams struct {
	FromDate pgtype.Date
	ToDate   pgtype.Date
}

type GetCommissionSummaryRow struct {
	SalesPersonID        uuid.UUID
	SalesPersonName      string
	OrderCount           int64
	SalesTotalCents      int64
	CommissionTotalCents int64
}

func (q *Queries) GetCommissionSummary(ctx context.Context, db DBTX, arg GetCommissionSummaryParams) ([]GetCommissionSummaryRow, error) {
	rows, err := db.Query(ctx, getCommissionSummary, arg.FromDate, arg.ToDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []GetCommissionSummaryRow
	for rows.Next() {
		var i GetCommissionSummaryRow
		if err := rows.Scan(
			&i.SalesPersonID,
			&i.SalesPersonName,
			&i.OrderCount,
			&i.SalesTotalCents,
			&i.CommissionTotalCents,
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
