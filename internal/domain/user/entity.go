package user

import (
	"time"

	"commission-tracker/internal/domain/commission"
	"commission-tracker/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInactive         = errs.Validation(errs.New("user is inactive"))
	ErrRateUnchanged    = errs.Validation(errs.New("commission rate is unchanged"))
	ErrAlreadyInState   = errs.Validation(errs.New("user is already in the requested state"))
	ErrEmptyPasswordSet = errs.Validation(errs.New("password hash is required"))
)

// User is a login account and, for orders, the sales person whose commission
// rate is snapshotted.
type User struct {
	id             uuid.UUID
	email          Email
	name           Name
	passwordHash   string
	role           Role
	commissionRate commission.Rate
	lastLogin      *time.Time
	isActive       bool
	createdAt      time.Time
	updatedAt      time.Time
}

func NewUser(email Email, name Name, passwordHash string, role Role, rate commission.Rate, now time.Time) (*User, error) {
	if passwordHash == "" {
		return nil, ErrEmptyPasswordSet
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	return &User{
		id:             uuid.New(),
		email:          email,
		name:           name,
		passwordHash:   passwordHash,
		role:           role,
		commissionRate: rate,
		isActive:       true,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructUser(
	id uuid.UUID,
	email Email,
	name Name,
	passwordHash string,
	role Role,
	rate commission.Rate,
	lastLogin *time.Time,
	isActive bool,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:             id,
		email:          email,
		name:           name,
		passwordHash:   passwordHash,
		role:           role,
		commissionRate: rate,
		lastLogin:      lastLogin,
		isActive:       isActive,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// ChangeCommissionRate only affects orders created afterwards; existing
// orders carry their own snapshot.
func (u *User) ChangeCommissionRate(rate commission.Rate, now time.Time) error {
	if rate == u.commissionRate {
		return ErrRateUnchanged
	}
	u.commissionRate = rate
	u.updatedAt = now
	return nil
}

func (u *User) SetActive(active bool, now time.Time) error {
	if u.isActive == active {
		return ErrAlreadyInState
	}
	u.isActive = active
	u.updatedAt = now
	return nil
}

// EnsureAssignable checks the user can be put on a campaign.
func (u *User) EnsureAssignable() error {
	if !u.isActive {
		return ErrInactive
	}
	return nil
}

func (u *User) ID() uuid.UUID                   { return u.id }
func (u *User) Email() Email                    { return u.email }
func (u *User) Name() Name                      { return u.name }
func (u *User) PasswordHash() string            { return u.passwordHash }
func (u *User) Role() Role                      { return u.role }
func (u *User) CommissionRate() commission.Rate { return u.commissionRate }
func (u *User) LastLogin() *time.Time           { return u.lastLogin }
func (u *User) IsActive() bool                  { return u.isActive }
func (u *User) CreatedAt() time.Time            { return u.createdAt }
func (u *User) UpdatedAt() time.Time            { return u.updatedAt }
