package campaign

import (
	"time"

	"commission-tracker/internal/domain/sequence"
	"commission-tracker/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransition  = errs.Validation(errs.New("campaign status transition is not allowed"))
	ErrNotAcceptingOrders = errs.Validation(errs.New("campaign is not active"))
	ErrPlatformImmutable  = errs.Validation(errs.New("campaign platform cannot be changed"))
	ErrNoSalesPerson      = errs.Validation(errs.New("sales person is required"))
)

type Campaign struct {
	id            uuid.UUID
	referenceID   string
	title         Title
	platform      Platform
	campaignType  Type
	url           URL
	salesPersonID uuid.UUID
	status        Status
	period        Period
	createdAt     time.Time
	updatedAt     time.Time
}

// Draft is a validated campaign that has not been issued a reference id yet.
// Nothing is persisted for a draft.
type Draft struct {
	title         Title
	platform      Platform
	campaignType  Type
	url           URL
	salesPersonID uuid.UUID
	period        Period
}

func NewDraft(title Title, platform Platform, campaignType Type, link URL, salesPersonID uuid.UUID, period Period) (*Draft, error) {
	if _, err := platform.Prefix(); err != nil {
		return nil, err
	}
	if salesPersonID == uuid.Nil {
		return nil, ErrNoSalesPerson
	}
	return &Draft{
		title:         title,
		platform:      platform,
		campaignType:  campaignType,
		url:           link,
		salesPersonID: salesPersonID,
		period:        period,
	}, nil
}

// CounterKey is the sequence counter campaigns on this platform draw from.
func (d *Draft) CounterKey() (sequence.Key, error) {
	return sequence.NewKey(d.platform.String())
}

func (d *Draft) SalesPersonID() uuid.UUID { return d.salesPersonID }

// Issue turns the draft into an active campaign carrying the reference id for
// the allocated number.
func (d *Draft) Issue(number int64, now time.Time) (*Campaign, error) {
	prefix, err := d.platform.Prefix()
	if err != nil {
		return nil, err
	}
	scheme, err := sequence.SchemeFor(sequence.KindCampaign)
	if err != nil {
		return nil, err
	}
	ref, err := scheme.Issue(prefix, number)
	if err != nil {
		return nil, err
	}
	return &Campaign{
		id:            uuid.New(),
		referenceID:   ref,
		title:         d.title,
		platform:      d.platform,
		campaignType:  d.campaignType,
		url:           d.url,
		salesPersonID: d.salesPersonID,
		status:        StatusActive,
		period:        d.period,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructCampaign(
	id uuid.UUID,
	referenceID string,
	title Title,
	platform Platform,
	campaignType Type,
	link URL,
	salesPersonID uuid.UUID,
	status Status,
	period Period,
	createdAt, updatedAt time.Time,
) *Campaign {
	return &Campaign{
		id:            id,
		referenceID:   referenceID,
		title:         title,
		platform:      platform,
		campaignType:  campaignType,
		url:           link,
		salesPersonID: salesPersonID,
		status:        status,
		period:        period,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Changes carries optional edits. Nil fields are left as they are.
type Changes struct {
	Title         *Title
	Platform      *Platform
	Type          *Type
	URL           *URL
	SalesPersonID *uuid.UUID
	Period        *Period
}

func (c *Campaign) Apply(ch Changes, now time.Time) error {
	if ch.Platform != nil && *ch.Platform != c.platform {
		return ErrPlatformImmutable
	}
	if ch.SalesPersonID != nil && *ch.SalesPersonID == uuid.Nil {
		return ErrNoSalesPerson
	}
	if ch.Title != nil {
		c.title = *ch.Title
	}
	if ch.Type != nil {
		c.campaignType = *ch.Type
	}
	if ch.URL != nil {
		c.url = *ch.URL
	}
	if ch.SalesPersonID != nil {
		c.salesPersonID = *ch.SalesPersonID
	}
	if ch.Period != nil {
		c.period = *ch.Period
	}
	c.updatedAt = now
	return nil
}

func (c *Campaign) TransitionTo(next Status, now time.Time) error {
	if !c.status.CanTransitionTo(next) {
		return errs.Wrapf(ErrInvalidTransition, "%s -> %s", c.status, next)
	}
	c.status = next
	c.updatedAt = now
	return nil
}

func (c *Campaign) EnsureAcceptsOrders() error {
	if c.status != StatusActive {
		return errs.Wrapf(ErrNotAcceptingOrders, "campaign %s is %s", c.referenceID, c.status)
	}
	return nil
}

func (c *Campaign) ID() uuid.UUID            { return c.id }
func (c *Campaign) ReferenceID() string      { return c.referenceID }
func (c *Campaign) Title() Title             { return c.title }
func (c *Campaign) Platform() Platform       { return c.platform }
func (c *Campaign) Type() Type               { return c.campaignType }
func (c *Campaign) URL() URL                 { return c.url }
func (c *Campaign) SalesPersonID() uuid.UUID { return c.salesPersonID }
func (c *Campaign) Status() Status           { return c.status }
func (c *Campaign) Period() Period           { return c.period }
func (c *Campaign) CreatedAt() time.Time     { return c.createdAt }
func (c *Campaign) UpdatedAt() time.Time     { return c.updatedAt }
