//go:build unit || e2e

package builder

import (
	"time"

	"commission-tracker/internal/domain/campaign"
	sqlc "commission-tracker/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CampaignBuilder struct {
	Title         string
	Platform      string
	Type          string
	URL           string
	SalesPersonID uuid.UUID
	Number        int64
	Status        string
	Start         *time.Time
	End           *time.Time
	Now           time.Time
}

func NewCampaignBuilder() *CampaignBuilder {
	return &CampaignBuilder{
		Title:         "Spring launch",
		Platform:      "facebook",
		Type:          "post",
		URL:           "https://facebook.com/posts/1",
		SalesPersonID: uuid.New(),
		Number:        1,
		Status:        "active",
		Now:           time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (b *CampaignBuilder) With(mutate func(*CampaignBuilder)) *CampaignBuilder {
	mutate(b)
	return b
}

func (b *CampaignBuilder) BuildDraft() (*campaign.Draft, error) {
	title, err := campaign.NewTitle(b.Title)
	if err != nil {
		return nil, err
	}
	platform, err := campaign.NewPlatform(b.Platform)
	if err != nil {
		return nil, err
	}
	typ, err := campaign.NewType(b.Type)
	if err != nil {
		return nil, err
	}
	link, err := campaign.NewURL(b.URL)
	if err != nil {
		return nil, err
	}
	period, err := campaign.NewPeriod(b.Start, b.End)
	if err != nil {
		return nil, err
	}
	return campaign.NewDraft(title, platform, typ, link, b.SalesPersonID, period)
}

// BuildDomain issues the draft with Number and then applies Status.
func (b *CampaignBuilder) BuildDomain() (*campaign.Campaign, error) {
	d, err := b.BuildDraft()
	if err != nil {
		return nil, err
	}
	c, err := d.Issue(b.Number, b.Now)
	if err != nil {
		return nil, err
	}
	status, err := campaign.NewStatus(b.Status)
	if err != nil {
		return nil, err
	}
	if status != c.Status() {
		if err := c.TransitionTo(status, b.Now); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (b *CampaignBuilder) BuildInfra() (sqlc.Campaigns, error) {
	c, err := b.BuildDomain()
	if err != nil {
		return sqlc.Campaigns{}, err
	}
	return sqlc.Campaigns{
		ID:            c.ID(),
		ReferenceID:   c.ReferenceID(),
		Title:         b.Title,
		Platform:      b.Platform,
		CampaignType:  b.Type,
		Url:           b.URL,
		SalesPersonID: b.SalesPersonID,
		Status:        b.Status,
		StartDate:     datePtr(b.Start),
		EndDate:       datePtr(b.End),
		CreatedAt:     pgtype.Timestamptz{Time: b.Now, Valid: true},
		UpdatedAt:     pgtype.Timestamptz{Time: b.Now, Valid: true},
	}, nil
}

func (b *CampaignBuilder) OnInstagram() *CampaignBuilder {
	b.Platform = "instagram"
	b.URL = "https://instagram.com/p/1"
	return b
}

func (b *CampaignBuilder) WithNumber(n int64) *CampaignBuilder {
	b.Number = n
	return b
}

func (b *CampaignBuilder) WithStatus(status string) *CampaignBuilder {
	b.Status = status
	return b
}

func datePtr(t *time.Time) pgtype.Date {
	if t == nil {
		return pgtype.Date{}
	}
	return pgtype.Date{Time: *t, Valid: true}
}
