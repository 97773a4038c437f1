//go:build unit

package commands_test

import (
	"context"
	"testing"

	"commission-tracker/internal/domain/commission"
	"commission-tracker/internal/domain/user"
	"commission-tracker/internal/infra"
	sqlc "commission-tracker/internal/infra/sqlc/generated"
	"commission-tracker/internal/pkg/errs"
	"commission-tracker/internal/pkg/password"
	"commission-tracker/internal/usecase/commands"
	"commission-tracker/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func createUserRequest() commands.CreateUserRequest {
	return commands.CreateUserRequest{
		Email:                 "Sales@Example.com",
		Name:                  "Sales Person",
		Password:              "password123",
		Role:                  "sales",
		CommissionRatePercent: 12.5,
	}
}

func TestUserCommands_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success: stores a hashed password and the rate in basis points", func(t *testing.T) {
		f := newUOWFixture(t)
		uc := commands.NewUserCommands(f.uow, f.clock)

		var stored *user.User
		f.users.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, u *user.User) error {
				stored = u
				return nil
			})

		got, err := uc.Create(ctx, createUserRequest())

		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, stored.ID(), got.ID)
		assert.Equal(t, "sales@example.com", stored.Email().Value())
		assert.Equal(t, int32(1250), stored.CommissionRate().BasisPoints())
		assert.True(t, stored.IsActive())
		assert.NotEqual(t, "password123", stored.PasswordHash())
		assert.NoError(t, password.ComparePassword(stored.PasswordHash(), "password123"))
	})

	t.Run("error: duplicate email", func(t *testing.T) {
		f := newUOWFixture(t)
		uc := commands.NewUserCommands(f.uow, f.clock)

		f.users.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("insert user", &pgconn.PgError{Code: "23505"}))

		_, err := uc.Create(ctx, createUserRequest())

		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrEmailTaken))
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})

	cases := []struct {
		name    string
		mutate  func(*commands.CreateUserRequest)
		wantErr error
	}{
		{name: "error: short password", mutate: func(r *commands.CreateUserRequest) { r.Password = "short" }, wantErr: password.ErrTooShort},
		{name: "error: rate above 100 percent", mutate: func(r *commands.CreateUserRequest) { r.CommissionRatePercent = 100.01 }, wantErr: commission.ErrInvalidRate},
		{name: "error: unknown role", mutate: func(r *commands.CreateUserRequest) { r.Role = "manager" }, wantErr: user.ErrInvalidRole},
		{name: "error: malformed email", mutate: func(r *commands.CreateUserRequest) { r.Email = "not-an-email" }, wantErr: user.ErrInvalidEmail},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newUOWFixture(t)
			uc := commands.NewUserCommands(f.uow, f.clock)

			req := createUserRequest()
			tc.mutate(&req)
			_, err := uc.Create(ctx, req)

			require.Error(t, err)
			assert.True(t, errs.Is(err, tc.wantErr))
			assert.True(t, errs.Is(err, errs.ErrValidation))
		})
	}
}

func TestUserCommands_ChangeCommissionRate(t *testing.T) {
	ctx := context.Background()

	t.Run("success: new rate is stored", func(t *testing.T) {
		f := newUOWFixture(t)
		uc := commands.NewUserCommands(f.uow, f.clock)
		existing, err := builder.NewUserBuilder().WithRate(1000).BuildDomain()
		require.NoError(t, err)

		f.users.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), existing.ID()).Return(existing, nil)
		f.users.EXPECT().UpdateCommissionRate(gomock.Any(), gomock.Any(), existing).Return(nil)

		err = uc.ChangeCommissionRate(ctx, existing.ID(), 15)

		require.NoError(t, err)
		assert.Equal(t, int32(1500), existing.CommissionRate().BasisPoints())
	})

	t.Run("error: unchanged rate", func(t *testing.T) {
		f := newUOWFixture(t)
		uc := commands.NewUserCommands(f.uow, f.clock)
		existing, err := builder.NewUserBuilder().WithRate(1000).BuildDomain()
		require.NoError(t, err)

		f.users.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), existing.ID()).Return(existing, nil)

		err = uc.ChangeCommissionRate(ctx, existing.ID(), 10)

		require.Error(t, err)
		assert.True(t, errs.Is(err, user.ErrRateUnchanged))
	})

	t.Run("error: unknown user", func(t *testing.T) {
		f := newUOWFixture(t)
		uc := commands.NewUserCommands(f.uow, f.clock)
		id := uuid.New()

		f.users.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), id).Return(nil, infra.WrapRepoErr("user", pgx.ErrNoRows))

		err := uc.ChangeCommissionRate(ctx, id, 15)

		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrUserNotFound))
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})
}

func TestUserCommands_SetStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("success: deactivate", func(t *testing.T) {
		f := newUOWFixture(t)
		uc := commands.NewUserCommands(f.uow, f.clock)
		existing, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)

		f.users.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), existing.ID()).Return(existing, nil)
		f.users.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), existing).Return(nil)

		err = uc.SetStatus(ctx, existing.ID(), false)

		require.NoError(t, err)
		assert.False(t, existing.IsActive())
	})

	t.Run("error: already inactive", func(t *testing.T) {
		f := newUOWFixture(t)
		uc := commands.NewUserCommands(f.uow, f.clock)
		existing, err := builder.NewUserBuilder().AsInactive().BuildDomain()
		require.NoError(t, err)

		f.users.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), existing.ID()).Return(existing, nil)

		err = uc.SetStatus(ctx, existing.ID(), false)

		require.Error(t, err)
		assert.True(t, errs.Is(err, user.ErrAlreadyInState))
	})
}
