package queries

import (
	"context"
	"time"

	"commission-tracker/internal/infra"
	"commission-tracker/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=campaign.go -destination=../../../tests/mock/queries/campaign_mock.go -package=queriesmock

var ErrCampaignNotFound = errs.NotFound(errs.New("campaign not found"))

type CampaignReadStore interface {
	FindByRef(ctx context.Context, referenceID string) (*CampaignView, error)
	ListFirstPage(ctx context.Context, filter CampaignFilter, limit int32) ([]*CampaignView, error)
	ListKeyset(ctx context.Context, filter CampaignFilter, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*CampaignView, error)
}

type CampaignQueries interface {
	GetByRef(ctx context.Context, referenceID string) (*CampaignView, error)
	List(ctx context.Context, filter CampaignFilter, cursor *Cursor, limit int) ([]*CampaignView, *Cursor, error)
}

type campaignQueriesImpl struct {
	readStore CampaignReadStore
}

func NewCampaignQueries(readStore CampaignReadStore) CampaignQueries {
	return &campaignQueriesImpl{readStore: readStore}
}

func (q *campaignQueriesImpl) GetByRef(ctx context.Context, referenceID string) (*CampaignView, error) {
	v, err := q.readStore.FindByRef(ctx, referenceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Wrapf(ErrCampaignNotFound, "reference id %s", referenceID)
		}
		return nil, err
	}
	return v, nil
}

func (q *campaignQueriesImpl) List(ctx context.Context, filter CampaignFilter, cursor *Cursor, limit int) ([]*CampaignView, *Cursor, error) {
	return page(cursor, limit,
		func(n int32) ([]*CampaignView, error) {
			return q.readStore.ListFirstPage(ctx, filter, n)
		},
		func(after time.Time, afterID uuid.UUID, n int32) ([]*CampaignView, error) {
			return q.readStore.ListKeyset(ctx, filter, after, afterID, n)
		},
		func(v *CampaignView) (time.Time, uuid.UUID) { return v.CreatedAt, v.ID },
	)
}
