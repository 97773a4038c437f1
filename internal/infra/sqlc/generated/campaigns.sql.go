// Hand-maintained in sqlc's output layout. Keep in sync with queries/campaigns.sql.

package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createCampaign = `-- name: CreateCampaign :exec
INSERT INTO campaigns (
    id, reference_id, title, platform, campaign_type, url, sales_person_id,
    status, start_date, end_date, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
`

type CreateCampaignParams struct {
	ID            uuid.UUID
	ReferenceID   string
	Title         string
	Platform      string
	CampaignType  string
	Url           string
	SalesPersonID uuid.UUID
	Status        string
	StartDate     pgtype.Date
	EndDate       pgtype.Date
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}

func (q *Queries) CreateCampaign(ctx context.Context, db DBTX, arg CreateCampaignParams) error {
	_, err := db.Exec(ctx, createCampaign, arg.ID, arg.ReferenceID, arg.Title, arg.Platform, arg.CampaignType, arg.Url, arg.SalesPersonID, arg.Status, arg.StartDate, arg.EndDate, arg.CreatedAt, arg.UpdatedAt)
	return err
}

const findCampaignByReferenceID = `-- name: FindCampaignByReferenceID :one
SELECT id, reference_id, title, platform, campaign_type, url, sales_person_id, status, start_date, end_date, created_at, updated_at FROM campaigns WHERE reference_id = $1
`

func (q *Queries) FindCampaignByReferenceID(ctx context.Context, db DBTX, referenceID string) (Campaigns, error) {
	row := db.QueryRow(ctx, findCampaignByReferenceID, referenceID)
	var i Campaigns
	err := row.Scan(
		&i.ID,
		&i.ReferenceID,
		&i.Title,
		&i.Platform,
		&i.CampaignType,
		&i.Url,
		&i.SalesPersonID,
		&i.Status,
		&i.StartDate,
		&i.EndDate,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const findCampaignByReferenceIDForUpdate = `-- name: FindCampaignByReferenceIDForUpdate :one
SELECT id, reference_id, title, platform, campaign_type, url, sales_person_id, status, start_date, end_date, created_at, updated_at FROM campaigns WHERE reference_id = $1 FOR UPDATE
`

func (q *Queries) FindCampaignByReferenceIDForUpdate(ctx context.Context, db DBTX, referenceID string) (Campaigns, error) {
	row := db.QueryRow(ctx, findCampaignByReferenceIDForUpdate, referenceID)
	var i Campaigns
	err := row.Scan(
		&i.ID,
		&i.ReferenceID,
		&i.Title,
		&i.Platform,
		&i.CampaignType,
		&i.Url,
		&i.SalesPersonID,
		&i.Status,
		&i.StartDate,
		&i.EndDate,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getCampaignView = `-- name: GetCampaignView :one
SELECT c.id, c.reference_id, c.title, c.platform, c.campaign_type, c.url, c.sales_person_id, c.status, c.start_date, c.end_date, c.created_at, c.updated_at, u.name AS sales_person_name
FROM campaigns c
JOIN users u ON u.id = c.sales_person_id
WHERE c.reference_id = $1
`

type GetCampaignViewRow struct {
	ID              uuid.UUID
	ReferenceID     string
	Title           string
	Platform        string
	CampaignType    string
	Url             string
	SalesPersonID   uuid.UUID
	Status          string
	StartDate       pgtype.Date
	EndDate         pgtype.Date
	CreatedAt       pgtype.Timestamptz
	UpdatedAt       pgtype.Timestamptz
	SalesPersonName string
}

func (q *Queries) GetCampaignView(ctx context.Context, db DBTX, referenceID string) (GetCampaignViewRow, error) {
	row := db.QueryRow(ctx, getCampaignView, referenceID)
	var i GetCampaignViewRow
	err := row.Scan(
		&i.ID,
		&i.ReferenceID,
		&i.Title,
		&i.Platform,
		&i.CampaignType,
		&i.Url,
		&i.SalesPersonID,
		&i.Status,
		&i.StartDate,
		&i.EndDate,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.SalesPersonName,
	)
	return i, err
}

const listCampaignsFirstPage = `-- name: ListCampaignsFirstPage :many
SELECT c.id, c.reference_id, c.title, c.platform, c.campaign_type, c.url, c.sales_person_id, c.status, c.start_date, c.end_date, c.created_at, c.updated_at, u.name AS sales_person_name
FROM campaigns c
JOIN users u ON u.id = c.sales_person_id
WHERE ($1::text IS NULL OR c.platform = $1)
  AND ($2::text IS NULL OR c.status = $2)
  AND ($3::uuid IS NULL OR c.sales_person_id = $3)
ORDER BY c.created_at DESC, c.id DESC
LIMIT $4
`

type ListCampaignsFirstPageParams struct {
	Platform      pgtype.Text
	Status        pgtype.Text
	SalesPersonID pgtype.UUID
	Limit         int32
}

type ListCampaignsFirstPageRow struct {
	ID              uuid.UUID
	ReferenceID     string
	Title           string
	Platform        string
	CampaignType    string
	Url             string
	SalesPersonID   uuid.UUID
	Status          string
	StartDate       pgtype.Date
	EndDate         pgtype.Date
	CreatedAt       pgtype.Timestamptz
	UpdatedAt       pgtype.Timestamptz
	SalesPersonName string
}

func (q *Queries) ListCampaignsFirstPage(ctx context.Context, db DBTX, arg ListCampaignsFirstPageParams) ([]ListCampaignsFirstPageRow, error) {
	rows, err := db.Query(ctx, listCampaignsFirstPage, arg.Platform, arg.Status, arg.SalesPersonID, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListCampaignsFirstPageRow
	for rows.Next() {
		var i ListCampaignsFirstPageRow
		if err := rows.Scan(
			&i.ID,
			&i.ReferenceID,
			&i.Title,
			&i.Platform,
			&i.CampaignType,
			&i.Url,
			&i.SalesPersonID,
			&i.Status,
			&i.StartDate,
			&i.EndDate,
			&i.CreatedAt,
			&i.UpdatedAt,
			&i.SalesPersonName,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listCampaignsKeyset = `-- name: ListCampaignsKeyset :many
SELECT c.id, c.reference_id, c.title, c.platform, c.campaign_type, c.url, c.sales_person_id, c.status, c.start_date, c.end_date, c.created_at, c.updated_at, u.name AS sales_person_name
FROM campaigns c
JOIN users u ON u.id = c.sales_person_id
WHERE ($1::text IS NULL OR c.platform = $1)
  AND ($2::text IS NULL OR c.status = $2)
  AND ($3::uuid IS NULL OR c.sales_person_id = $3)
  AND (c.created_at, c.id) < ($4::timestamptz, $5::uuid)
ORDER BY c.created_at DESC, c.id DESC
LIMIT $6
`

type ListCampaignsKeysetParams struct {
	Platform      pgtype.Text
	Status        pgtype.Text
	SalesPersonID pgtype.UUID
	CreatedAt     pgtype.Timestamptz
	ID            uuid.UUID
	Limit         int32
}

type ListCampaignsKeysetRow struct {
	ID              uuid.UUID
	ReferenceID     string
	Title           string
	Platform        string
	CampaignType    string
	Url             string
	SalesPersonID   uuid.UUID
	Status          string
	StartDate       pgtype.Date
	EndDate         pgtype.Date
	CreatedAt       pgtype.Timestamptz
	UpdatedAt       pgtype.Timestamptz
	SalesPersonName string
}

func (q *Queries) ListCampaignsKeyset(ctx context.Context, db DBTX, arg ListCampaignsKeysetParams) ([]ListCampaignsKeysetRow, error) {
	rows, err := db.Query(ctx, listCampaignsKeyset, arg.Platform, arg.Status, arg.SalesPersonID, arg.CreatedAt, arg.ID, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListCampaignsKeysetRow
	for rows.Next() {
		var i ListCampaignsKeysetRow
		if err := rows.Scan(
			&i.ID,
			&i.ReferenceID,
			&i.Title,
			&i.Platform,
			&i.CampaignType,
			&i.Url,
			&i.SalesPersonID,
			&i.Status,
			&i.StartDate,
			&i.EndDate,
			&i.CreatedAt,
			&i.UpdatedAt,
			&i.SalesPersonName,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateCampaign = `-- name: UpdateCampaign :execrows
UPDATE campaigns
SET title           = $2,
    campaign_type   = $3,
    url             = $4,
    sales_person_id = $5,
    status          = $6,
    start_date      = $7,
    end_date        = $8,
    updated_at      = $9
WHERE id = $1
`

type UpdateCampaignParams struct {
	ID            uuid.UUID
	Title         string
	CampaignType  string
	Url           string
	SalesPersonID uuid.UUID
	Status        string
	StartDate     pgtype.Date
	EndDate       pgtype.Date
	UpdatedAt     pgtype.Timestamptz
}

func (q *Queries) UpdateCampaign(ctx context.Context, db DBTX, arg UpdateCampaignParams) (int64, error) {
	result, err := db.Exec(ctx, updateCampaign, arg.ID, arg.Title, arg.CampaignType, arg.Url, arg.SalesPersonID, arg.Status, arg.StartDate, arg.EndDate, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
