//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"commission-tracker/internal/infra"
	"commission-tracker/internal/infra/readstore"
	sqlc "commission-tracker/internal/infra/sqlc/generated"
	"commission-tracker/internal/usecase/queries"
	"commission-tracker/tests/common/dbtest"
	readstoremock "commission-tracker/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func orderViewRow(ref string) sqlc.GetOrderViewRow {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	return sqlc.GetOrderViewRow{
		ID:                  uuid.New(),
		ReferenceID:         ref,
		CampaignID:          uuid.New(),
		SalesPersonID:       uuid.New(),
		OrderDate:           pgtype.Date{Time: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), Valid: true},
		OrderTotalCents:     5000,
		SnapshotRateBp:      1000,
		CommissionCents:     500,
		CreatedAt:           pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:           pgtype.Timestamptz{Time: now, Valid: true},
		CampaignReferenceID: "FB-001",
		SalesPersonName:     "Alice",
	}
}

func TestOrderReadStore_FindByRef(t *testing.T) {
	ctx := context.Background()

	t.Run("success: order with items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockOrderViewQueries(ctrl)
		store := readstore.NewOrderReadStore(mockQueries, &dbtest.StubDB{})

		row := orderViewRow("FB-001-01")
		mockQueries.EXPECT().GetOrderView(ctx, gomock.Any(), "FB-001-01").Return(row, nil)
		mockQueries.EXPECT().ListOrderLineItems(ctx, gomock.Any(), row.ID).Return([]sqlc.OrderLineItems{
			{OrderID: row.ID, Position: 0, Name: "Widget", Quantity: 2, UnitPriceCents: 1500},
			{OrderID: row.ID, Position: 1, Name: "Gadget", Quantity: 1, UnitPriceCents: 2000},
		}, nil)

		v, err := store.FindByRef(ctx, "FB-001-01")

		require.NoError(t, err)
		assert.Equal(t, "FB-001", v.CampaignReferenceID)
		assert.Equal(t, int32(1000), v.SnapshotRateBP)
		require.Len(t, v.Items, 2)
		assert.Equal(t, "Widget", v.Items[0].Name)
	})

	t.Run("error: order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockOrderViewQueries(ctrl)
		store := readstore.NewOrderReadStore(mockQueries, &dbtest.StubDB{})

		mockQueries.EXPECT().GetOrderView(ctx, gomock.Any(), "FB-001-09").Return(sqlc.GetOrderViewRow{}, pgx.ErrNoRows)

		_, err := store.FindByRef(ctx, "FB-001-09")

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestOrderReadStore_ListFirstPage(t *testing.T) {
	ctx := context.Background()

	t.Run("success: items grouped per order with one query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockOrderViewQueries(ctrl)
		store := readstore.NewOrderReadStore(mockQueries, &dbtest.StubDB{})

		first, second := orderViewRow("FB-001-02"), orderViewRow("FB-001-01")
		from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

		mockQueries.EXPECT().ListOrdersFirstPage(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.ListOrdersFirstPageParams) ([]sqlc.ListOrdersFirstPageRow, error) {
				assert.True(t, arg.FromDate.Valid)
				assert.False(t, arg.ToDate.Valid)
				return []sqlc.ListOrdersFirstPageRow{
					sqlc.ListOrdersFirstPageRow(first),
					sqlc.ListOrdersFirstPageRow(second),
				}, nil
			})
		mockQueries.EXPECT().ListOrderLineItemsByOrders(ctx, gomock.Any(), []uuid.UUID{first.ID, second.ID}).
			Return([]sqlc.OrderLineItems{
				{OrderID: first.ID, Position: 0, Name: "A", Quantity: 1, UnitPriceCents: 100},
				{OrderID: second.ID, Position: 0, Name: "B", Quantity: 1, UnitPriceCents: 100},
				{OrderID: second.ID, Position: 1, Name: "C", Quantity: 1, UnitPriceCents: 100},
			}, nil)

		views, err := store.ListFirstPage(ctx, queries.OrderFilter{From: &from}, 21)

		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Len(t, views[0].Items, 1)
		assert.Len(t, views[1].Items, 2)
	})

	t.Run("success: empty page skips the item query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockOrderViewQueries(ctrl)
		store := readstore.NewOrderReadStore(mockQueries, &dbtest.StubDB{})

		mockQueries.EXPECT().ListOrdersFirstPage(ctx, gomock.Any(), gomock.Any()).Return(nil, nil)
		mockQueries.EXPECT().ListOrderLineItemsByOrders(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		views, err := store.ListFirstPage(ctx, queries.OrderFilter{}, 21)

		require.NoError(t, err)
		assert.Empty(t, views)
	})
}
