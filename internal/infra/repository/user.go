package repository

import (
	"context"

	"commission-tracker/internal/domain/user"
	"commission-tracker/internal/infra"
	"commission-tracker/internal/infra/repository/converter"
	sqlc "commission-tracker/internal/infra/sqlc/generated"
	"commission-tracker/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=user.go -destination=../../../tests/mock/repository/user_mock.go -package=repositorymock

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) error
	FindUserByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error)
	UpdateUserCommissionRate(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserCommissionRateParams) (int64, error)
	UpdateUserStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserStatusParams) (int64, error)
	UpdateUserLastLogin(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
}

type UserRepository struct {
	queries UserWriteQueries
}

func NewUserRepository(queries UserWriteQueries) *UserRepository {
	return &UserRepository{queries: queries}
}

func (r *UserRepository) Create(ctx context.Context, tx sqlc.DBTX, u *user.User) error {
	if err := r.queries.CreateUser(ctx, tx, converter.UserToCreateParams(u)); err != nil {
		return infra.WrapRepoErr("failed to create user "+u.Email().Value(), err)
	}
	return nil
}

func (r *UserRepository) FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*user.User, error) {
	row, err := r.queries.FindUserByIDForUpdate(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("user "+id.String(), err)
	}
	u, err := converter.UserToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt user row "+id.String(), err, infra.KindDBFailure)
	}
	return u, nil
}

// UpdateCommissionRate writes the rate used for orders created from now on.
func (r *UserRepository) UpdateCommissionRate(ctx context.Context, tx sqlc.DBTX, u *user.User) error {
	n, err := r.queries.UpdateUserCommissionRate(ctx, tx, sqlc.UpdateUserCommissionRateParams{
		ID:               u.ID(),
		CommissionRateBp: u.CommissionRate().BasisPoints(),
		UpdatedAt:        pgconv.TimeToPgtype(u.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update commission rate", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("user "+u.ID().String(), nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, u *user.User) error {
	n, err := r.queries.UpdateUserStatus(ctx, tx, sqlc.UpdateUserStatusParams{
		ID:        u.ID(),
		IsActive:  u.IsActive(),
		UpdatedAt: pgconv.TimeToPgtype(u.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update user status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("user "+u.ID().String(), nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error {
	if err := r.queries.UpdateUserLastLogin(ctx, tx, userID); err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}
