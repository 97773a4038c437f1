package queries

import (
	"context"
	"time"

	"commission-tracker/internal/infra"
	"commission-tracker/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=order.go -destination=../../../tests/mock/queries/order_mock.go -package=queriesmock

var ErrOrderNotFound = errs.NotFound(errs.New("order not found"))

type OrderReadStore interface {
	FindByRef(ctx context.Context, referenceID string) (*OrderView, error)
	ListFirstPage(ctx context.Context, filter OrderFilter, limit int32) ([]*OrderView, error)
	ListKeyset(ctx context.Context, filter OrderFilter, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*OrderView, error)
}

type OrderQueries interface {
	GetByRef(ctx context.Context, referenceID string) (*OrderView, error)
	List(ctx context.Context, filter OrderFilter, cursor *Cursor, limit int) ([]*OrderView, *Cursor, error)
}

type orderQueriesImpl struct {
	readStore OrderReadStore
}

func NewOrderQueries(readStore OrderReadStore) OrderQueries {
	return &orderQueriesImpl{readStore: readStore}
}

func (q *orderQueriesImpl) GetByRef(ctx context.Context, referenceID string) (*OrderView, error) {
	v, err := q.readStore.FindByRef(ctx, referenceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Wrapf(ErrOrderNotFound, "reference id %s", referenceID)
		}
		return nil, err
	}
	return v, nil
}

func (q *orderQueriesImpl) List(ctx context.Context, filter OrderFilter, cursor *Cursor, limit int) ([]*OrderView, *Cursor, error) {
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return nil, nil, ErrInvalidDateRange
	}
	return page(cursor, limit,
		func(n int32) ([]*OrderView, error) {
			return q.readStore.ListFirstPage(ctx, filter, n)
		},
		func(after time.Time, afterID uuid.UUID, n int32) ([]*OrderView, error) {
			return q.readStore.ListKeyset(ctx, filter, after, afterID, n)
		},
		func(v *OrderView) (time.Time, uuid.UUID) { return v.CreatedAt, v.ID },
	)
}
