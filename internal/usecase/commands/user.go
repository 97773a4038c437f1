package commands

import (
	"context"

	"commission-tracker/internal/domain/commission"
	"commission-tracker/internal/domain/user"
	"commission-tracker/internal/infra"
	"commission-tracker/internal/pkg/clock"
	"commission-tracker/internal/pkg/errs"
	"commission-tracker/internal/pkg/password"
	"commission-tracker/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=user.go -destination=../../../tests/mock/commands/user_mock.go -package=commandsmock

var (
	ErrUserNotFound = errs.NotFound(errs.New("user not found"))
	ErrEmailTaken   = errs.Validation(errs.New("email is already registered"))
)

type CreateUserRequest struct {
	Email                 string
	Name                  string
	Password              string
	Role                  string
	CommissionRatePercent float64
}

type CreateUserResult struct {
	ID uuid.UUID
}

type UserCommands interface {
	Create(ctx context.Context, req CreateUserRequest) (*CreateUserResult, error)
	// ChangeCommissionRate applies to orders created afterwards only.
	ChangeCommissionRate(ctx context.Context, id uuid.UUID, percent float64) error
	SetStatus(ctx context.Context, id uuid.UUID, active bool) error
}

type userCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewUserCommands(uow shared.UnitOfWork, clk clock.Clock) UserCommands {
	return &userCommandsImpl{uow: uow, clock: clk}
}

func (uc *userCommandsImpl) Create(ctx context.Context, req CreateUserRequest) (*CreateUserResult, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, err
	}
	name, err := user.NewName(req.Name)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(req.Role)
	if err != nil {
		return nil, err
	}
	rate, err := commission.NewRateFromPercent(req.CommissionRatePercent)
	if err != nil {
		return nil, err
	}
	if err = password.Validate(req.Password); err != nil {
		return nil, errs.Validation(err)
	}
	hash, err := password.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	u, err := user.NewUser(email, name, hash, role, rate, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Create(ctx, tx.DB(), u)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Wrapf(ErrEmailTaken, "email %s", email.Value())
		}
		return nil, err
	}
	return &CreateUserResult{ID: u.ID()}, nil
}

func (uc *userCommandsImpl) ChangeCommissionRate(ctx context.Context, id uuid.UUID, percent float64) error {
	rate, err := commission.NewRateFromPercent(percent)
	if err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, derr := findUserForUpdate(ctx, tx, id)
		if derr != nil {
			return derr
		}
		if derr = u.ChangeCommissionRate(rate, uc.clock.Now()); derr != nil {
			return derr
		}
		return tx.Users().UpdateCommissionRate(ctx, tx.DB(), u)
	})
}

func (uc *userCommandsImpl) SetStatus(ctx context.Context, id uuid.UUID, active bool) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, derr := findUserForUpdate(ctx, tx, id)
		if derr != nil {
			return derr
		}
		if derr = u.SetActive(active, uc.clock.Now()); derr != nil {
			return derr
		}
		return tx.Users().UpdateStatus(ctx, tx.DB(), u)
	})
}

func findUserForUpdate(ctx context.Context, tx shared.Tx, id uuid.UUID) (*user.User, error) {
	u, err := tx.Users().FindByIDForUpdate(ctx, tx.DB(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Wrapf(ErrUserNotFound, "user %s", id)
		}
		return nil, err
	}
	return u, nil
}
