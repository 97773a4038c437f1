//go:build unit || e2e

package builder

import (
	"time"

	"commission-tracker/internal/domain/commission"
	"commission-tracker/internal/domain/user"
	reqdto "commission-tracker/internal/handler/dto/request"
	sqlc "commission-tracker/internal/infra/sqlc/generated"
	"commission-tracker/tests/common/dbtest"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// UserBuilder defaults to an active sales person at a 10% rate.
type UserBuilder struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Role         string
	RateBP       int32
	IsActive     bool
	CreatedAt    time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.New(),
		Email:        "sales@example.com",
		Name:         "Sales Person",
		PasswordHash: "hashed_password",
		Role:         "sales",
		RateBP:       1000,
		IsActive:     true,
		CreatedAt:    time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	name, err := user.NewName(u.Name)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}
	rate, err := commission.NewRateFromBasisPoints(u.RateBP)
	if err != nil {
		return nil, err
	}
	return user.ReconstructUser(u.ID, email, name, u.PasswordHash, role, rate, nil, u.IsActive, u.CreatedAt, u.CreatedAt), nil
}

func (u *UserBuilder) BuildInfra() sqlc.Users {
	return sqlc.Users{
		ID:               u.ID,
		Email:            u.Email,
		Name:             u.Name,
		PasswordHash:     u.PasswordHash,
		Role:             u.Role,
		CommissionRateBp: u.RateBP,
		IsActive:         u.IsActive,
		LastLogin:        pgtype.Timestamptz{},
		CreatedAt:        pgtype.Timestamptz{Time: u.CreatedAt, Valid: true},
		UpdatedAt:        pgtype.Timestamptz{Time: u.CreatedAt, Valid: true},
	}
}

// LoginDTO pairs the builder's email with the password CreateTestUser seeds.
func (u *UserBuilder) LoginDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{Email: u.Email, Password: dbtest.TestPassword}
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithRate(bp int32) *UserBuilder {
	u.RateBP = bp
	return u
}

func (u *UserBuilder) AsAdmin() *UserBuilder {
	u.Role = "admin"
	u.Email = "admin@example.com"
	u.Name = "Admin"
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}
