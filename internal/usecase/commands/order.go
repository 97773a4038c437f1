package commands

import (
	"context"
	"log/slog"
	"time"

	"commission-tracker/internal/domain/commission"
	"commission-tracker/internal/domain/order"
	"commission-tracker/internal/infra"
	"commission-tracker/internal/pkg/clock"
	"commission-tracker/internal/pkg/errs"
	"commission-tracker/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=order.go -destination=../../../tests/mock/commands/order_mock.go -package=commandsmock

var ErrOrderNotFound = errs.NotFound(errs.New("order not found"))

type LineItemInput struct {
	Name           string
	Quantity       int32
	UnitPriceCents int64
}

type CreateOrderRequest struct {
	CampaignReferenceID string
	Items               []LineItemInput
	OrderDate           time.Time
}

type CreateOrderResult struct {
	ID          uuid.UUID
	ReferenceID string
}

type OrderCommands interface {
	// Create snapshots the sales person's current rate. Nothing is allocated
	// when validation fails.
	Create(ctx context.Context, req CreateOrderRequest) (*CreateOrderResult, error)
	// ReplaceItems recomputes totals with the order's stored rate.
	ReplaceItems(ctx context.Context, referenceID string, items []LineItemInput) error
}

type orderCommandsImpl struct {
	uow         shared.UnitOfWork
	invalidator shared.SummaryInvalidator
	clock       clock.Clock
}

func NewOrderCommands(uow shared.UnitOfWork, invalidator shared.SummaryInvalidator, clk clock.Clock) OrderCommands {
	return &orderCommandsImpl{uow: uow, invalidator: invalidator, clock: clk}
}

func (uc *orderCommandsImpl) Create(ctx context.Context, req CreateOrderRequest) (*CreateOrderResult, error) {
	var created *order.Order
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, derr := findCampaignForUpdate(ctx, tx, req.CampaignReferenceID)
		if derr != nil {
			return derr
		}
		if derr = c.EnsureAcceptsOrders(); derr != nil {
			return derr
		}

		sp, derr := tx.Reads().UserByID(ctx, c.SalesPersonID())
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Wrapf(ErrSalesPersonNotFound, "user %s", c.SalesPersonID())
			}
			return derr
		}
		rate, derr := commission.NewRateFromBasisPoints(sp.CommissionRateBP)
		if derr != nil {
			return derr
		}

		draft, derr := order.NewDraft(
			order.CampaignRef{ID: c.ID(), ReferenceID: c.ReferenceID()},
			order.SalesPerson{ID: sp.ID, Rate: rate},
			toItemInputs(req.Items),
			req.OrderDate,
			clock.Today(uc.clock),
		)
		if derr != nil {
			return derr
		}
		key, derr := draft.CounterKey()
		if derr != nil {
			return derr
		}

		n, derr := tx.Sequences().AllocateNext(ctx, tx.DB(), key)
		if derr != nil {
			return derr
		}
		o, derr := draft.Issue(n, uc.clock.Now())
		if derr != nil {
			return derr
		}
		if derr = tx.Orders().Create(ctx, tx.DB(), o); derr != nil {
			return derr
		}
		created = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.invalidateSummaries(ctx)
	return &CreateOrderResult{ID: created.ID(), ReferenceID: created.ReferenceID()}, nil
}

func (uc *orderCommandsImpl) ReplaceItems(ctx context.Context, referenceID string, items []LineItemInput) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, derr := tx.Orders().FindByRefForUpdate(ctx, tx.DB(), referenceID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Wrapf(ErrOrderNotFound, "order %s", referenceID)
			}
			return derr
		}
		if derr = o.ReplaceItems(toItemInputs(items), uc.clock.Now()); derr != nil {
			return derr
		}
		return tx.Orders().ReplaceItems(ctx, tx.DB(), o)
	})
	if err != nil {
		return err
	}

	uc.invalidateSummaries(ctx)
	return nil
}

// A stale summary expires with its TTL, so a failed invalidation does not
// fail the write that already committed.
func (uc *orderCommandsImpl) invalidateSummaries(ctx context.Context) {
	if err := uc.invalidator.Invalidate(ctx); err != nil {
		slog.Warn("failed to invalidate commission summary cache", "error", err.Error())
	}
}

func toItemInputs(in []LineItemInput) []order.ItemInput {
	out := make([]order.ItemInput, len(in))
	for i, item := range in {
		out[i] = order.ItemInput{Name: item.Name, Quantity: item.Quantity, UnitPrice: item.UnitPriceCents}
	}
	return out
}
