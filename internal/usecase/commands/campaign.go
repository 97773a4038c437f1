package commands

import (
	"context"
	"time"

	"commission-tracker/internal/domain/campaign"
	"commission-tracker/internal/infra"
	"commission-tracker/internal/pkg/clock"
	"commission-tracker/internal/pkg/errs"
	"commission-tracker/internal/pkg/patch"
	"commission-tracker/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=campaign.go -destination=../../../tests/mock/commands/campaign_mock.go -package=commandsmock

var (
	ErrCampaignNotFound    = errs.NotFound(errs.New("campaign not found"))
	ErrSalesPersonNotFound = errs.NotFound(errs.New("sales person not found"))
	ErrSalesPersonInactive = errs.Validation(errs.New("sales person is inactive"))
)

type CreateCampaignRequest struct {
	Title         string
	Platform      string
	Type          string
	URL           string
	SalesPersonID uuid.UUID
	StartDate     *time.Time
	EndDate       *time.Time
}

// UpdateCampaignRequest leaves nil fields untouched.
type UpdateCampaignRequest struct {
	Title         *string
	Platform      *string
	Type          *string
	URL           *string
	SalesPersonID *uuid.UUID
	StartDate     *time.Time
	EndDate       *time.Time
}

type CreateCampaignResult struct {
	ID          uuid.UUID
	ReferenceID string
}

type CampaignCommands interface {
	Create(ctx context.Context, req CreateCampaignRequest) (*CreateCampaignResult, error)
	Update(ctx context.Context, referenceID string, req UpdateCampaignRequest) error
	ChangeStatus(ctx context.Context, referenceID string, status string) error
}

type campaignCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCampaignCommands(uow shared.UnitOfWork, clk clock.Clock) CampaignCommands {
	return &campaignCommandsImpl{uow: uow, clock: clk}
}

func (uc *campaignCommandsImpl) Create(ctx context.Context, req CreateCampaignRequest) (*CreateCampaignResult, error) {
	draft, err := newCampaignDraft(req)
	if err != nil {
		return nil, err
	}
	key, err := draft.CounterKey()
	if err != nil {
		return nil, err
	}

	var created *campaign.Campaign
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := ensureAssignable(ctx, tx, draft.SalesPersonID()); derr != nil {
			return derr
		}

		n, derr := tx.Sequences().AllocateNext(ctx, tx.DB(), key)
		if derr != nil {
			return derr
		}
		c, derr := draft.Issue(n, uc.clock.Now())
		if derr != nil {
			return derr
		}
		if derr = tx.Campaigns().Create(ctx, tx.DB(), c); derr != nil {
			return derr
		}
		created = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CreateCampaignResult{ID: created.ID(), ReferenceID: created.ReferenceID()}, nil
}

func (uc *campaignCommandsImpl) Update(ctx context.Context, referenceID string, req UpdateCampaignRequest) error {
	changes, err := campaignChanges(req)
	if err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, derr := findCampaignForUpdate(ctx, tx, referenceID)
		if derr != nil {
			return derr
		}

		if req.StartDate != nil || req.EndDate != nil {
			start, end := c.Period().Start(), c.Period().End()
			if req.StartDate != nil {
				start = req.StartDate
			}
			if req.EndDate != nil {
				end = req.EndDate
			}
			period, perr := campaign.NewPeriod(start, end)
			if perr != nil {
				return perr
			}
			changes.Period = &period
		}

		if patch.Changed(req.SalesPersonID, c.SalesPersonID()) {
			if derr = ensureAssignable(ctx, tx, *req.SalesPersonID); derr != nil {
				return derr
			}
		}

		if derr = c.Apply(changes, uc.clock.Now()); derr != nil {
			return derr
		}
		return tx.Campaigns().Update(ctx, tx.DB(), c)
	})
}

func (uc *campaignCommandsImpl) ChangeStatus(ctx context.Context, referenceID string, status string) error {
	next, err := campaign.NewStatus(status)
	if err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, derr := findCampaignForUpdate(ctx, tx, referenceID)
		if derr != nil {
			return derr
		}
		if derr = c.TransitionTo(next, uc.clock.Now()); derr != nil {
			return derr
		}
		return tx.Campaigns().Update(ctx, tx.DB(), c)
	})
}

func newCampaignDraft(req CreateCampaignRequest) (*campaign.Draft, error) {
	title, err := campaign.NewTitle(req.Title)
	if err != nil {
		return nil, err
	}
	platform, err := campaign.NewPlatform(req.Platform)
	if err != nil {
		return nil, err
	}
	campaignType, err := campaign.NewType(req.Type)
	if err != nil {
		return nil, err
	}
	link, err := campaign.NewURL(req.URL)
	if err != nil {
		return nil, err
	}
	period, err := campaign.NewPeriod(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	return campaign.NewDraft(title, platform, campaignType, link, req.SalesPersonID, period)
}

func campaignChanges(req UpdateCampaignRequest) (campaign.Changes, error) {
	var ch campaign.Changes
	if req.Title != nil {
		title, err := campaign.NewTitle(*req.Title)
		if err != nil {
			return ch, err
		}
		ch.Title = &title
	}
	if req.Platform != nil {
		platform, err := campaign.NewPlatform(*req.Platform)
		if err != nil {
			return ch, err
		}
		ch.Platform = &platform
	}
	if req.Type != nil {
		campaignType, err := campaign.NewType(*req.Type)
		if err != nil {
			return ch, err
		}
		ch.Type = &campaignType
	}
	if req.URL != nil {
		link, err := campaign.NewURL(*req.URL)
		if err != nil {
			return ch, err
		}
		ch.URL = &link
	}
	ch.SalesPersonID = req.SalesPersonID
	return ch, nil
}

func findCampaignForUpdate(ctx context.Context, tx shared.Tx, referenceID string) (*campaign.Campaign, error) {
	c, err := tx.Campaigns().FindByRefForUpdate(ctx, tx.DB(), referenceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Wrapf(ErrCampaignNotFound, "campaign %s", referenceID)
		}
		return nil, err
	}
	return c, nil
}

// ensureAssignable reads the user inside tx so the check and the write see
// the same snapshot.
func ensureAssignable(ctx context.Context, tx shared.Tx, salesPersonID uuid.UUID) error {
	sp, err := tx.Reads().UserByID(ctx, salesPersonID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Wrapf(ErrSalesPersonNotFound, "user %s", salesPersonID)
		}
		return err
	}
	if !sp.IsActive {
		return errs.Wrapf(ErrSalesPersonInactive, "user %s", salesPersonID)
	}
	return nil
}
