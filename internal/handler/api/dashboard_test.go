//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"commission-tracker/internal/handler/api"
	resdto "commission-tracker/internal/handler/dto/response"
	"commission-tracker/internal/pkg/errs"
	"commission-tracker/internal/usecase/queries"
	"commission-tracker/tests/common/httptest"
	queriesmock "commission-tracker/tests/mock/queries"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

func TestDashboardHandler_Commissions(t *testing.T) {
	summary := &queries.CommissionSummary{
		From: *datePtr(2025, 3, 1),
		To:   *datePtr(2025, 3, 10),
		SalesPeople: []queries.SalesPersonCommission{
			{SalesPersonID: uuid.New(), SalesPersonName: "Aiko", OrderCount: 2, SalesTotalCents: 10000, CommissionTotalCents: 1250},
		},
		OrderCount:           2,
		SalesTotalCents:      10000,
		CommissionTotalCents: 1250,
	}

	t.Run("success: defaults are left to the query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := queriesmock.NewMockDashboardQueries(ctrl)
		router := newTestRouter(t)
		router.GET("/dashboard/commissions", api.NewDashboardHandler(q).Commissions)

		q.EXPECT().CommissionSummary(gomock.Any(), (*time.Time)(nil), (*time.Time)(nil)).Return(summary, nil)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/dashboard/commissions", nil, "")

		var resp resdto.CommissionSummaryResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &resp)
		if resp.From != "2025-03-01" || resp.To != "2025-03-10" || resp.CommissionTotalCents != 1250 {
			t.Fatalf("unexpected summary: %+v", resp)
		}
	})

	t.Run("success: explicit range is parsed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := queriesmock.NewMockDashboardQueries(ctrl)
		router := newTestRouter(t)
		router.GET("/dashboard/commissions", api.NewDashboardHandler(q).Commissions)

		q.EXPECT().CommissionSummary(gomock.Any(), datePtr(2025, 2, 1), datePtr(2025, 2, 28)).Return(summary, nil)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/dashboard/commissions?from=2025-02-01&to=2025-02-28", nil, "")
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)
	})

	t.Run("error: status mapping", func(t *testing.T) {
		cases := []struct {
			name   string
			query  string
			err    error
			status int
		}{
			{name: "malformed date", query: "?from=2025-2-1", status: http.StatusBadRequest},
			{name: "inverted range", query: "?from=2025-03-10&to=2025-03-01", err: queries.ErrInvalidDateRange, status: http.StatusUnprocessableEntity},
			{name: "storage down", query: "", err: errs.Persistence(errors.New("conn refused")), status: http.StatusServiceUnavailable},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				q := queriesmock.NewMockDashboardQueries(ctrl)
				router := newTestRouter(t)
				router.GET("/dashboard/commissions", api.NewDashboardHandler(q).Commissions)
				if tc.err != nil {
					q.EXPECT().CommissionSummary(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)
				}

				rec := httptest.PerformRequest(t, router, http.MethodGet, "/dashboard/commissions"+tc.query, nil, "")
				httptest.AssertErrorResponse(t, rec, tc.status, "")
			})
		}
	})
}
