package queries

import (
	"context"
	"log/slog"
	"time"

	"commission-tracker/internal/pkg/clock"
)

//go:generate mockgen -source=dashboard.go -destination=../../../tests/mock/queries/dashboard_mock.go -package=queriesmock

type SummaryReadStore interface {
	CommissionSummary(ctx context.Context, from, to time.Time) ([]SalesPersonCommission, error)
}

// SummaryCache stores computed summaries keyed by date range and cache
// generation. Get reports a miss as a nil summary and returns the generation
// it looked under; Set must be given that generation so a summary computed
// before an invalidation is never stored under the newer one.
type SummaryCache interface {
	Get(ctx context.Context, from, to time.Time) (*CommissionSummary, int64, error)
	Set(ctx context.Context, generation int64, summary *CommissionSummary) error
}

type DashboardQueries interface {
	// CommissionSummary defaults to to = today and from = the first day of to's month.
	CommissionSummary(ctx context.Context, from, to *time.Time) (*CommissionSummary, error)
}

type dashboardQueriesImpl struct {
	readStore SummaryReadStore
	cache     SummaryCache
	clock     clock.Clock
}

func NewDashboardQueries(readStore SummaryReadStore, cache SummaryCache, clk clock.Clock) DashboardQueries {
	return &dashboardQueriesImpl{
		readStore: readStore,
		cache:     cache,
		clock:     clk,
	}
}

func (q *dashboardQueriesImpl) CommissionSummary(ctx context.Context, from, to *time.Time) (*CommissionSummary, error) {
	end := clock.Today(q.clock)
	if to != nil {
		end = clock.DateOf(*to)
	}
	start := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC)
	if from != nil {
		start = clock.DateOf(*from)
	}
	if start.After(end) {
		return nil, ErrInvalidDateRange
	}

	cached, gen, cacheErr := q.cache.Get(ctx, start, end)
	if cacheErr != nil {
		slog.Warn("commission summary cache read failed", "error", cacheErr)
	} else if cached != nil {
		return cached, nil
	}

	rows, err := q.readStore.CommissionSummary(ctx, start, end)
	if err != nil {
		return nil, err
	}

	summary := &CommissionSummary{From: start, To: end, SalesPeople: rows}
	for _, r := range rows {
		summary.OrderCount += r.OrderCount
		summary.SalesTotalCents += r.SalesTotalCents
		summary.CommissionTotalCents += r.CommissionTotalCents
	}
	if summary.SalesPeople == nil {
		summary.SalesPeople = []SalesPersonCommission{}
	}

	// Without a generation there is no safe slot to write to.
	if cacheErr == nil {
		if err := q.cache.Set(ctx, gen, summary); err != nil {
			slog.Warn("commission summary cache write failed", "error", err)
		}
	}
	return summary, nil
}
