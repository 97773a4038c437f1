package readstore

import (
	"context"
	"time"

	"commission-tracker/internal/infra"
	sqlc "commission-tracker/internal/infra/sqlc/generated"
	"commission-tracker/internal/pkg/pgconv"
	"commission-tracker/internal/usecase/queries"

	"github.com/google/uuid"
)

//go:generate mockgen -source=user.go -destination=../../../tests/mock/readstore/user_mock.go -package=readstoremock

type UserReadQueries interface {
	FindUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error)
	FindUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Users, error)
	ListUsersFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListUsersFirstPageParams) ([]sqlc.Users, error)
	ListUsersKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListUsersKeysetParams) ([]sqlc.Users, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	row, err := r.queries.FindUserByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("user "+id.String(), err)
	}
	return toUserView(row), nil
}

// FindByEmail also returns the password hash for credential checks.
func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	row, err := r.queries.FindUserByEmail(ctx, r.db, email)
	if err != nil {
		return nil, "", infra.WrapRepoErr("user not found", err)
	}
	return &queries.AuthorizedUserView{
		ID:       row.ID,
		Email:    row.Email,
		Name:     row.Name,
		Role:     row.Role,
		IsActive: row.IsActive,
	}, row.PasswordHash, nil
}

func (r *UserReadStore) ListFirstPage(ctx context.Context, filter queries.UserFilter, limit int32) ([]*queries.UserView, error) {
	rows, err := r.queries.ListUsersFirstPage(ctx, r.db, sqlc.ListUsersFirstPageParams{
		Role:  pgconv.StringPtrToPgtype(filter.Role),
		Limit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	return toUserViews(rows), nil
}

func (r *UserReadStore) ListKeyset(ctx context.Context, filter queries.UserFilter, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.UserView, error) {
	rows, err := r.queries.ListUsersKeyset(ctx, r.db, sqlc.ListUsersKeysetParams{
		Role:      pgconv.StringPtrToPgtype(filter.Role),
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		Limit:     limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users after cursor", err)
	}
	return toUserViews(rows), nil
}

func toUserViews(rows []sqlc.Users) []*queries.UserView {
	out := make([]*queries.UserView, 0, len(rows))
	for _, row := range rows {
		out = append(out, toUserView(row))
	}
	return out
}

func toUserView(row sqlc.Users) *queries.UserView {
	return &queries.UserView{
		ID:               row.ID,
		Email:            row.Email,
		Name:             row.Name,
		Role:             row.Role,
		CommissionRateBP: row.CommissionRateBp,
		IsActive:         row.IsActive,
		LastLogin:        pgconv.TimestamptzPtrFromPgtype(row.LastLogin),
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:        pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
