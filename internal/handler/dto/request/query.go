package request

import (
	"time"

	"commission-tracker/internal/pkg/errs"
	"commission-tracker/internal/usecase/queries"

	"github.com/google/uuid"
)

// PageQuery is embedded by every list query.
type PageQuery struct {
	Limit int    `form:"limit" binding:"omitempty,min=1,max=200"`
	After string `form:"after"`
}

func (p PageQuery) Cursor() *queries.Cursor {
	if p.After == "" {
		return nil
	}
	return &queries.Cursor{After: p.After}
}

func (p PageQuery) PageLimit() int {
	return queries.ValidateLimit(p.Limit)
}

type ListCampaignsQuery struct {
	PageQuery
	Platform      *string `form:"platform" binding:"omitempty,platform"`
	Status        *string `form:"status" binding:"omitempty,oneof=active paused ended"`
	SalesPersonID *string `form:"sales_person_id" binding:"omitempty,uuid"`
}

func (q *ListCampaignsQuery) ToFilter() (queries.CampaignFilter, error) {
	spID, err := parseUUIDPtr(q.SalesPersonID)
	if err != nil {
		return queries.CampaignFilter{}, err
	}
	return queries.CampaignFilter{Platform: q.Platform, Status: q.Status, SalesPersonID: spID}, nil
}

type ListOrdersQuery struct {
	PageQuery
	CampaignReferenceID *string `form:"campaign_reference_id"`
	SalesPersonID       *string `form:"sales_person_id" binding:"omitempty,uuid"`
	From                *string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To                  *string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}

func (q *ListOrdersQuery) ToFilter() (queries.OrderFilter, error) {
	spID, err := parseUUIDPtr(q.SalesPersonID)
	if err != nil {
		return queries.OrderFilter{}, err
	}
	from, err := parseDatePtr(q.From)
	if err != nil {
		return queries.OrderFilter{}, errs.Validation(err)
	}
	to, err := parseDatePtr(q.To)
	if err != nil {
		return queries.OrderFilter{}, errs.Validation(err)
	}
	return queries.OrderFilter{CampaignReferenceID: q.CampaignReferenceID, SalesPersonID: spID, From: from, To: to}, nil
}

type ListUsersQuery struct {
	PageQuery
	Role *string `form:"role" binding:"omitempty,oneof=admin sales"`
}

func (q *ListUsersQuery) ToFilter() queries.UserFilter {
	return queries.UserFilter{Role: q.Role}
}

type CommissionSummaryQuery struct {
	From *string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To   *string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}

func (q *CommissionSummaryQuery) Range() (from, to *time.Time, err error) {
	if from, err = parseDatePtr(q.From); err != nil {
		return nil, nil, errs.Validation(err)
	}
	if to, err = parseDatePtr(q.To); err != nil {
		return nil, nil, errs.Validation(err)
	}
	return from, to, nil
}

func parseUUIDPtr(s *string) (*uuid.UUID, error) {
	if s == nil {
		return nil, nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil, errs.Validation(err)
	}
	return &id, nil
}
