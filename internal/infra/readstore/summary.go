package readstore

import (
	"context"
	"time"

	"commission-tracker/internal/infra"
	sqlc "commission-tracker/internal/infra/sqlc/generated"
	"commission-tracker/internal/pkg/pgconv"
	"commission-tracker/internal/usecase/queries"
)

//go:generate mockgen -source=summary.go -destination=../../../tests/mock/readstore/summary_mock.go -package=readstoremock

type SummaryQueries interface {
	GetCommissionSummary(ctx context.Context, db sqlc.DBTX, arg sqlc.GetCommissionSummaryParams) ([]sqlc.GetCommissionSummaryRow, error)
}

type SummaryReadStore struct {
	queries SummaryQueries
	db      sqlc.DBTX
}

func NewSummaryReadStore(queries SummaryQueries, db sqlc.DBTX) *SummaryReadStore {
	return &SummaryReadStore{
		queries: queries,
		db:      db,
	}
}

// CommissionSummary groups orders by the sales person stored on each order,
// so reassigning a campaign later does not move past commission.
func (r *SummaryReadStore) CommissionSummary(ctx context.Context, from, to time.Time) ([]queries.SalesPersonCommission, error) {
	rows, err := r.queries.GetCommissionSummary(ctx, r.db, sqlc.GetCommissionSummaryParams{
		FromDate: pgconv.DateToPgtype(from),
		ToDate:   pgconv.DateToPgtype(to),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate commissions", err)
	}
	out := make([]queries.SalesPersonCommission, 0, len(rows))
	for _, row := range rows {
		out = append(out, queries.SalesPersonCommission{
			SalesPersonID:        row.SalesPersonID,
			SalesPersonName:      row.SalesPersonName,
			OrderCount:           row.OrderCount,
			SalesTotalCents:      row.SalesTotalCents,
			CommissionTotalCents: row.CommissionTotalCents,
		})
	}
	return out, nil
}
