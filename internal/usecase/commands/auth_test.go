//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"commission-tracker/internal/domain/auth"
	"commission-tracker/internal/domain/user"
	"commission-tracker/internal/infra"
	"commission-tracker/internal/pkg/errs"
	"commission-tracker/internal/pkg/jwt"
	"commission-tracker/internal/pkg/password"
	"commission-tracker/internal/usecase/commands"
	"commission-tracker/internal/usecase/queries"
	queriesmock "commission-tracker/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testSecret = "test-secret-key-for-commission-tracker"

func newJWTService() *jwt.Service {
	return jwt.NewService(testSecret, 15*time.Minute, 168*time.Hour)
}

func TestAuthCommands_Login(t *testing.T) {
	ctx := context.Background()
	hash, err := password.HashPassword("password123")
	require.NoError(t, err)

	t.Run("success: issues a token pair and records the login", func(t *testing.T) {
		f := newUOWFixture(t)
		store := queriesmock.NewMockUserReadStore(gomock.NewController(t))
		jwtSvc := newJWTService()
		uc := commands.NewAuthCommands(f.uow, store, jwtSvc)
		view := &queries.AuthorizedUserView{ID: uuid.New(), Email: "admin@example.com", Role: "admin", IsActive: true}

		store.EXPECT().FindByEmail(gomock.Any(), "admin@example.com").Return(view, hash, nil)
		f.users.EXPECT().UpdateLastLogin(gomock.Any(), gomock.Any(), view.ID).Return(nil)

		got, err := uc.Login(ctx, "Admin@Example.com", "password123")

		require.NoError(t, err)
		assert.Equal(t, view, got.User)
		claims, err := jwtSvc.Verify(got.TokenPair.AccessToken, jwt.TokenTypeAccess)
		require.NoError(t, err)
		assert.Equal(t, view.ID, claims.UserID)
		assert.Equal(t, jwt.TokenTypeAccess, claims.TokenType)
		assert.Equal(t, string(user.RoleAdmin), claims.Role)
	})

	t.Run("success: last login failure does not block the login", func(t *testing.T) {
		f := newUOWFixture(t)
		store := queriesmock.NewMockUserReadStore(gomock.NewController(t))
		uc := commands.NewAuthCommands(f.uow, store, newJWTService())
		view := &queries.AuthorizedUserView{ID: uuid.New(), Role: "sales", IsActive: true}

		store.EXPECT().FindByEmail(gomock.Any(), "sales@example.com").Return(view, hash, nil)
		f.users.EXPECT().UpdateLastLogin(gomock.Any(), gomock.Any(), view.ID).
			Return(infra.WrapRepoErr("last login", errs.New("timeout"), infra.KindDBFailure))

		_, err := uc.Login(ctx, "sales@example.com", "password123")

		assert.NoError(t, err)
	})

	t.Run("error: wrong password", func(t *testing.T) {
		f := newUOWFixture(t)
		store := queriesmock.NewMockUserReadStore(gomock.NewController(t))
		uc := commands.NewAuthCommands(f.uow, store, newJWTService())

		store.EXPECT().FindByEmail(gomock.Any(), "sales@example.com").
			Return(&queries.AuthorizedUserView{ID: uuid.New(), Role: "sales", IsActive: true}, hash, nil)

		_, err := uc.Login(ctx, "sales@example.com", "wrong-password")

		require.Error(t, err)
		assert.True(t, errs.Is(err, auth.ErrInvalidCredentials))
		assert.True(t, errs.Is(err, errs.ErrUnauthorized))
	})

	t.Run("error: unknown email looks like a wrong password", func(t *testing.T) {
		f := newUOWFixture(t)
		store := queriesmock.NewMockUserReadStore(gomock.NewController(t))
		uc := commands.NewAuthCommands(f.uow, store, newJWTService())

		store.EXPECT().FindByEmail(gomock.Any(), "ghost@example.com").Return(nil, "", infra.WrapRepoErr("user", pgx.ErrNoRows))

		_, err := uc.Login(ctx, "ghost@example.com", "password123")

		require.Error(t, err)
		assert.True(t, errs.Is(err, auth.ErrInvalidCredentials))
	})

	t.Run("error: inactive user", func(t *testing.T) {
		f := newUOWFixture(t)
		store := queriesmock.NewMockUserReadStore(gomock.NewController(t))
		uc := commands.NewAuthCommands(f.uow, store, newJWTService())

		store.EXPECT().FindByEmail(gomock.Any(), "sales@example.com").
			Return(&queries.AuthorizedUserView{ID: uuid.New(), Role: "sales", IsActive: false}, hash, nil)

		_, err := uc.Login(ctx, "sales@example.com", "password123")

		require.Error(t, err)
		assert.True(t, errs.Is(err, queries.ErrUserInactive))
	})
}

func TestAuthCommands_RefreshToken(t *testing.T) {
	ctx := context.Background()

	t.Run("success: uses the current role", func(t *testing.T) {
		f := newUOWFixture(t)
		store := queriesmock.NewMockUserReadStore(gomock.NewController(t))
		jwtSvc := newJWTService()
		uc := commands.NewAuthCommands(f.uow, store, jwtSvc)
		id := uuid.New()
		refresh, err := jwtSvc.Sign(jwt.TokenTypeRefresh, id, user.RoleAdmin)
		require.NoError(t, err)

		store.EXPECT().FindByID(gomock.Any(), id).Return(&queries.UserView{ID: id, Role: "sales", IsActive: true}, nil)

		got, err := uc.RefreshToken(ctx, refresh)

		require.NoError(t, err)
		claims, err := jwtSvc.Verify(got.AccessToken, jwt.TokenTypeAccess)
		require.NoError(t, err)
		assert.Equal(t, "sales", claims.Role)
	})

	t.Run("error: access token cannot refresh", func(t *testing.T) {
		f := newUOWFixture(t)
		store := queriesmock.NewMockUserReadStore(gomock.NewController(t))
		jwtSvc := newJWTService()
		uc := commands.NewAuthCommands(f.uow, store, jwtSvc)
		access, err := jwtSvc.Sign(jwt.TokenTypeAccess, uuid.New(), user.RoleSales)
		require.NoError(t, err)

		_, err = uc.RefreshToken(ctx, access)

		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrTokenValidation))
		assert.True(t, errs.Is(err, errs.ErrUnauthorized))
	})

	t.Run("error: garbage token", func(t *testing.T) {
		f := newUOWFixture(t)
		store := queriesmock.NewMockUserReadStore(gomock.NewController(t))
		uc := commands.NewAuthCommands(f.uow, store, newJWTService())

		_, err := uc.RefreshToken(ctx, "not-a-jwt")

		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrTokenValidation))
	})

	t.Run("error: deactivated user", func(t *testing.T) {
		f := newUOWFixture(t)
		store := queriesmock.NewMockUserReadStore(gomock.NewController(t))
		jwtSvc := newJWTService()
		uc := commands.NewAuthCommands(f.uow, store, jwtSvc)
		id := uuid.New()
		refresh, err := jwtSvc.Sign(jwt.TokenTypeRefresh, id, user.RoleSales)
		require.NoError(t, err)

		store.EXPECT().FindByID(gomock.Any(), id).Return(&queries.UserView{ID: id, Role: "sales", IsActive: false}, nil)

		_, err = uc.RefreshToken(ctx, refresh)

		require.Error(t, err)
		assert.True(t, errs.Is(err, queries.ErrUserInactive))
	})
}
