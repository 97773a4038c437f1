//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"commission-tracker/internal/domain/campaign"
	"commission-tracker/internal/domain/order"
	"commission-tracker/internal/domain/sequence"
	"commission-tracker/internal/infra"
	sqlc "commission-tracker/internal/infra/sqlc/generated"
	"commission-tracker/internal/pkg/errs"
	"commission-tracker/internal/usecase/commands"
	"commission-tracker/tests/common/builder"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func createOrderRequest() commands.CreateOrderRequest {
	return commands.CreateOrderRequest{
		CampaignReferenceID: "FB-001",
		Items: []commands.LineItemInput{
			{Name: "Widget", Quantity: 2, UnitPriceCents: 1500},
			{Name: "Gadget", Quantity: 1, UnitPriceCents: 2000},
		},
		OrderDate: time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC),
	}
}

func activeCampaign(t *testing.T) *campaign.Campaign {
	t.Helper()
	c, err := builder.NewCampaignBuilder().BuildDomain()
	require.NoError(t, err)
	return c
}

func TestOrderCommands_Create(t *testing.T) {
	ctx := context.Background()
	campaignKey, err := sequence.NewKey("FB-001")
	require.NoError(t, err)

	t.Run("success: commission uses the rate read at creation", func(t *testing.T) {
		f := newUOWFixture(t)
		uc := commands.NewOrderCommands(f.uow, f.invalidator, f.clock)
		c := activeCampaign(t)
		sp := activeSalesPerson(c.SalesPersonID())
		sp.CommissionRateBP = 1250

		var stored *order.Order
		gomock.InOrder(
			f.campaigns.EXPECT().FindByRefForUpdate(gomock.Any(), gomock.Any(), "FB-001").Return(c, nil),
			f.reads.EXPECT().UserByID(gomock.Any(), c.SalesPersonID()).Return(sp, nil),
			f.sequences.EXPECT().AllocateNext(gomock.Any(), gomock.Any(), campaignKey).Return(int64(1), nil),
			f.orders.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, o *order.Order) error {
					stored = o
					return nil
				}),
			f.invalidator.EXPECT().Invalidate(gomock.Any()).Return(nil),
		)

		got, err := uc.Create(ctx, createOrderRequest())

		require.NoError(t, err)
		assert.Equal(t, "FB-001-01", got.ReferenceID)
		require.NotNil(t, stored)
		assert.Equal(t, int64(5000), stored.OrderTotal().Cents())
		assert.Equal(t, int32(1250), stored.SnapshotRate().BasisPoints())
		assert.Equal(t, int64(625), stored.CommissionAmount().Cents())
		assert.Equal(t, c.ID(), stored.Campaign().ID)
		assert.Equal(t, c.SalesPersonID(), stored.SalesPersonID())
	})

	t.Run("success: second order of a campaign", func(t *testing.T) {
		f := newUOWFixture(t)
		uc := commands.NewOrderCommands(f.uow, f.invalidator, f.clock)
		c := activeCampaign(t)

		f.campaigns.EXPECT().FindByRefForUpdate(gomock.Any(), gomock.Any(), "FB-001").Return(c, nil)
		f.reads.EXPECT().UserByID(gomock.Any(), c.SalesPersonID()).Return(activeSalesPerson(c.SalesPersonID()), nil)
		f.sequences.EXPECT().AllocateNext(gomock.Any(), gomock.Any(), campaignKey).Return(int64(2), nil)
		f.orders.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.invalidator.EXPECT().Invalidate(gomock.Any()).Return(nil)

		got, err := uc.Create(ctx, createOrderRequest())

		require.NoError(t, err)
		assert.Equal(t, "FB-001-02", got.ReferenceID)
	})

	t.Run("success: cache invalidation failure does not fail the order", func(t *testing.T) {
		f := newUOWFixture(t)
		uc := commands.NewOrderCommands(f.uow, f.invalidator, f.clock)
		c := activeCampaign(t)

		f.campaigns.EXPECT().FindByRefForUpdate(gomock.Any(), gomock.Any(), "FB-001").Return(c, nil)
		f.reads.EXPECT().UserByID(gomock.Any(), c.SalesPersonID()).Return(activeSalesPerson(c.SalesPersonID()), nil)
		f.sequences.EXPECT().AllocateNext(gomock.Any(), gomock.Any(), campaignKey).Return(int64(1), nil)
		f.orders.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.invalidator.EXPECT().Invalidate(gomock.Any()).Return(errs.New("redis unavailable"))

		_, err := uc.Create(ctx, createOrderRequest())

		assert.NoError(t, err)
	})

	rejected := []struct {
		name    string
		mutate  func(*commands.CreateOrderRequest)
		wantErr error
	}{
		{
			name: "error: no valid line items",
			mutate: func(r *commands.CreateOrderRequest) {
				r.Items = []commands.LineItemInput{{Name: "  ", Quantity: 1, UnitPriceCents: 100}, {Name: "Widget", Quantity: 0, UnitPriceCents: 100}}
			},
			wantErr: order.ErrNoValidItems,
		},
		{
			name: "error: negative unit price",
			mutate: func(r *commands.CreateOrderRequest) {
				r.Items = []commands.LineItemInput{{Name: "Widget", Quantity: 1, UnitPriceCents: -1}}
			},
			wantErr: order.ErrNegativePrice,
		},
		{
			name:    "error: order date in the future",
			mutate:  func(r *commands.CreateOrderRequest) { r.OrderDate = fixedNow.AddDate(0, 0, 1) },
			wantErr: order.ErrFutureOrderDate,
		},
	}

	for _, tc := range rejected {
		t.Run(tc.name+" does not advance the counter", func(t *testing.T) {
			f := newUOWFixture(t)
			uc := commands.NewOrderCommands(f.uow, f.invalidator, f.clock)
			c := activeCampaign(t)

			f.campaigns.EXPECT().FindByRefForUpdate(gomock.Any(), gomock.Any(), "FB-001").Return(c, nil)
			f.reads.EXPECT().UserByID(gomock.Any(), c.SalesPersonID()).Return(activeSalesPerson(c.SalesPersonID()), nil)
			f.sequences.EXPECT().AllocateNext(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			f.invalidator.EXPECT().Invalidate(gomock.Any()).Times(0)

			req := createOrderRequest()
			tc.mutate(&req)
			_, err := uc.Create(ctx, req)

			require.Error(t, err)
			assert.True(t, errs.Is(err, tc.wantErr))
			assert.True(t, errs.Is(err, errs.ErrValidation))
		})
	}

	t.Run("error: unknown campaign", func(t *testing.T) {
		f := newUOWFixture(t)
		uc := commands.NewOrderCommands(f.uow, f.invalidator, f.clock)

		f.campaigns.EXPECT().FindByRefForUpdate(gomock.Any(), gomock.Any(), "FB-404").
			Return(nil, infra.WrapRepoErr("campaign FB-404", pgx.ErrNoRows))

		req := createOrderRequest()
		req.CampaignReferenceID = "FB-404"
		_, err := uc.Create(ctx, req)

		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrCampaignNotFound))
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})

	t.Run("error: paused campaign does not take orders", func(t *testing.T) {
		f := newUOWFixture(t)
		uc := commands.NewOrderCommands(f.uow, f.invalidator, f.clock)
		paused, err := builder.NewCampaignBuilder().WithStatus("paused").BuildDomain()
		require.NoError(t, err)

		f.campaigns.EXPECT().FindByRefForUpdate(gomock.Any(), gomock.Any(), "FB-001").Return(paused, nil)

		_, err = uc.Create(ctx, createOrderRequest())

		require.Error(t, err)
		assert.True(t, errs.Is(err, campaign.ErrNotAcceptingOrders))
	})

	t.Run("error: insert failure surfaces as persistence", func(t *testing.T) {
		f := newUOWFixture(t)
		uc := commands.NewOrderCommands(f.uow, f.invalidator, f.clock)
		c := activeCampaign(t)

		f.campaigns.EXPECT().FindByRefForUpdate(gomock.Any(), gomock.Any(), "FB-001").Return(c, nil)
		f.reads.EXPECT().UserByID(gomock.Any(), c.SalesPersonID()).Return(activeSalesPerson(c.SalesPersonID()), nil)
		f.sequences.EXPECT().AllocateNext(gomock.Any(), gomock.Any(), campaignKey).Return(int64(1), nil)
		f.orders.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("insert order", errs.New("disk full"), infra.KindDBFailure))

		_, err := uc.Create(ctx, createOrderRequest())

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrPersistence))
	})
}

func TestOrderCommands_ReplaceItems(t *testing.T) {
	ctx := context.Background()

	t.Run("success: totals use the stored rate and the reference id is kept", func(t *testing.T) {
		f := newUOWFixture(t)
		uc := commands.NewOrderCommands(f.uow, f.invalidator, f.clock)
		existing, err := builder.NewOrderBuilder().WithRate(1000).BuildDomain()
		require.NoError(t, err)

		f.orders.EXPECT().FindByRefForUpdate(gomock.Any(), gomock.Any(), "FB-001-01").Return(existing, nil)
		f.orders.EXPECT().ReplaceItems(gomock.Any(), gomock.Any(), existing).Return(nil)
		f.invalidator.EXPECT().Invalidate(gomock.Any()).Return(nil)

		err = uc.ReplaceItems(ctx, "FB-001-01", []commands.LineItemInput{{Name: "Bundle", Quantity: 3, UnitPriceCents: 1000}})

		require.NoError(t, err)
		assert.Equal(t, "FB-001-01", existing.ReferenceID())
		assert.Equal(t, int32(1000), existing.SnapshotRate().BasisPoints())
		assert.Equal(t, int64(3000), existing.OrderTotal().Cents())
		assert.Equal(t, int64(300), existing.CommissionAmount().Cents())
		require.Len(t, existing.Items(), 1)
	})

	t.Run("error: empty replacement keeps the old items", func(t *testing.T) {
		f := newUOWFixture(t)
		uc := commands.NewOrderCommands(f.uow, f.invalidator, f.clock)
		existing, err := builder.NewOrderBuilder().BuildDomain()
		require.NoError(t, err)

		f.orders.EXPECT().FindByRefForUpdate(gomock.Any(), gomock.Any(), "FB-001-01").Return(existing, nil)

		err = uc.ReplaceItems(ctx, "FB-001-01", nil)

		require.Error(t, err)
		assert.True(t, errs.Is(err, order.ErrNoValidItems))
		assert.Equal(t, int64(5000), existing.OrderTotal().Cents())
	})

	t.Run("error: unknown order", func(t *testing.T) {
		f := newUOWFixture(t)
		uc := commands.NewOrderCommands(f.uow, f.invalidator, f.clock)

		f.orders.EXPECT().FindByRefForUpdate(gomock.Any(), gomock.Any(), "FB-001-99").
			Return(nil, infra.WrapRepoErr("order FB-001-99", pgx.ErrNoRows))

		err := uc.ReplaceItems(ctx, "FB-001-99", []commands.LineItemInput{{Name: "Widget", Quantity: 1}})

		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrOrderNotFound))
	})
}
