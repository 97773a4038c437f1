// Hand-maintained in sqlc's output layout. Keep in sync with queries/users.sql.

package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createUser = `-- name: CreateUser :exec
INSERT INTO users (id, email, name, password_hash, role, commission_rate_bp, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`

type CreateUserParams struct {
	ID               uuid.UUID
	Email            string
	Name             string
	PasswordHash     string
	Role             string
	CommissionRateBp int32
	IsActive         bool
	CreatedAt        pgtype.Timestamptz
	UpdatedAt        pgtype.Timestamptz
}

func (q *Queries) CreateUser(ctx context.Context, db DBTX, arg CreateUserParams) error {
	_, err := db.Exec(ctx, createUser, arg.ID, arg.Email, arg.Name, arg.PasswordHash, arg.Role, arg.CommissionRateBp, arg.IsActive, arg.CreatedAt, arg.UpdatedAt)
	return err
}

const findUserByEmail = `-- name: FindUserByEmail :one
SELECT id, email, name, password_hash, role, commission_rate_bp, is_active, last_login, created_at, updated_at FROM users WHERE email = $1
`

func (q *Queries) FindUserByEmail(ctx context.Context, db DBTX, email string) (Users, error) {
	row := db.QueryRow(ctx, findUserByEmail, email)
	var i Users
	err := row.Scan(
		&i.ID,
		&i.Email,
		&i.Name,
		&i.PasswordHash,
		&i.Role,
		&i.CommissionRateBp,
		&i.IsActive,
		&i.LastLogin,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const findUserByID = `-- name: FindUserByID :one
SELECT id, email, name, password_hash, role, commission_rate_bp, is_active, last_login, created_at, updated_at FROM users WHERE id = $1
`

func (q *Queries) FindUserByID(ctx context.Context, db DBTX, id uuid.UUID) (Users, error) {
	row := db.QueryRow(ctx, findUserByID, id)
	var i Users
	err := row.Scan(
		&i.ID,
		&i.Email,
		&i.Name,
		&i.PasswordHash,
		&i.Role,
		&i.CommissionRateBp,
		&i.IsActive,
		&i.LastLogin,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const findUserByIDForUpdate = `-- name: FindUserByIDForUpdate :one
SELECT id, email, name, password_hash, role, commission_rate_bp, is_active, last_login, created_at, updated_at FROM users WHERE id = $1 FOR UPDATE
`

func (q *Queries) FindUserByIDForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Users, error) {
	row := db.QueryRow(ctx, findUserByIDForUpdate, id)
	var i Users
	err := row.Scan(
		&i.ID,
		&i.Email,
		&i.Name,
		&i.PasswordHash,
		&i.Role,
		&i.CommissionRateBp,
		&i.IsActive,
		&i.LastLogin,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listUsersFirstPage = `-- name: ListUsersFirstPage :many
SELECT id, email, name, password_hash, role, commission_rate_bp, is_active, last_login, created_at, updated_at FROM users
WHERE ($1::text IS NULL OR role = $1)
ORDER BY created_at DESC, id DESC
LIMIT $2
`

type ListUsersFirstPageParams struct {
	Role  pgtype.Text
	Limit int32
}

func (q *Queries) ListUsersFirstPage(ctx context.Context, db DBTX, arg ListUsersFirstPageParams) ([]Users, error) {
	rows, err := db.Query(ctx, listUsersFirstPage, arg.Role, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Users
	for rows.Next() {
		var i Users
		if err := rows.Scan(
			&i.ID,
			&i.Email,
			&i.Name,
			&i.PasswordHash,
			&i.Role,
			&i.CommissionRateBp,
			&i.IsActive,
			&i.LastLogin,
			&i.CreatedAt,
			&i.UpdatedAt,
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

const listUsersKeyset = `-- name: ListUsersKeyset :many
SELECT id, email, name, password_hash, role, commission_rate_bp, is_active, last_login, created_at, updated_at FROM users
WHERE ($1::text IS NULL OR role = $1)
  AND (created_at, id) < ($2::timestamptz, $3::uuid)
ORDER BY created_at DESC, id DESC
LIMIT $4
`

type ListUsersKeysetParams struct {
	Role      pgtype.Text
	CreatedAt pgtype.Timestamptz
	ID        uuid.UUID
	Limit     int32
}

func (q *Queries) ListUsersKeyset(ctx context.Context, db DBTX, arg ListUsersKeysetParams) ([]Users, error) {
	rows, err := db.Query(ctx, listUsersKeyset, arg.Role, arg.CreatedAt, arg.ID, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Users
	for rows.Next() {
		var i Users
		if err := rows.Scan(
			&i.ID,
			&i.Email,
			&i.Name,
			&i.PasswordHash,
			&i.Role,
			&i.CommissionRateBp,
			&i.IsActive,
			&i.LastLogin,
			&i.CreatedAt,
			&i.UpdatedAt,
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

const updateUserCommissionRate = `-- name: UpdateUserCommissionRate :execrows
UPDATE users SET commission_rate_bp = $2, updated_at = $3 WHERE id = $1
`

type UpdateUserCommissionRateParams struct {
	ID               uuid.UUID
	CommissionRateBp int32
	UpdatedAt        pgtype.Timestamptz
}

func (q *Queries) UpdateUserCommissionRate(ctx context.Context, db DBTX, arg UpdateUserCommissionRateParams) (int64, error) {
	result, err := db.Exec(ctx, updateUserCommissionRate, arg.ID, arg.CommissionRateBp, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const updateUserLastLogin = `-- name: UpdateUserLastLogin :exec
UPDATE users SET last_login = now() WHERE id = $1
`

func (q *Queries) UpdateUserLastLogin(ctx context.Context, db DBTX, id uuid.UUID) error {
	_, err := db.Exec(ctx, updateUserLastLogin, id)
	return err
}

const updateUserStatus = `-- name: UpdateUserStatus :execrows
UPDATE users SET is_active = $2, updated_at = $3 WHERE id = $1
`

type UpdateUserStatusParams struct {
	ID        uuid.UUID
	IsActive  bool
	UpdatedAt pgtype.Timestamptz
}

func (q *Queries) UpdateUserStatus(ctx context.Context, db DBTX, arg UpdateUserStatusParams) (int64, error) {
	result, err := db.Exec(ctx, updateUserStatus, arg.ID, arg.IsActive, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
