package converter

import (
	"commission-tracker/internal/domain/commission"
	"commission-tracker/internal/domain/user"
	sqlc "commission-tracker/internal/infra/sqlc/generated"
	"commission-tracker/internal/pkg/pgconv"
)

func UserToDomain(row sqlc.Users) (*user.User, error) {
	email, err := user.NewEmail(row.Email)
	if err != nil {
		return nil, err
	}
	name, err := user.NewName(row.Name)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(row.Role)
	if err != nil {
		return nil, err
	}
	rate, err := commission.NewRateFromBasisPoints(row.CommissionRateBp)
	if err != nil {
		return nil, err
	}

	return user.ReconstructUser(
		row.ID,
		email,
		name,
		row.PasswordHash,
		role,
		rate,
		pgconv.TimestamptzPtrFromPgtype(row.LastLogin),
		row.IsActive,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func UserToCreateParams(u *user.User) sqlc.CreateUserParams {
	return sqlc.CreateUserParams{
		ID:               u.ID(),
		Email:            u.Email().Value(),
		Name:             u.Name().Value(),
		PasswordHash:     u.PasswordHash(),
		Role:             u.Role().String(),
		CommissionRateBp: u.CommissionRate().BasisPoints(),
		IsActive:         u.IsActive(),
		CreatedAt:        pgconv.TimeToPgtype(u.CreatedAt()),
		UpdatedAt:        pgconv.TimeToPgtype(u.UpdatedAt()),
	}
}
