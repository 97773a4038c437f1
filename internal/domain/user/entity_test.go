//go:build unit

package user_test

import (
	"testing"
	"time"

	"commission-tracker/internal/domain/commission"
	"commission-tracker/internal/domain/user"
	"commission-tracker/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmp.AllowUnexported(user.User{}, user.Email{}, user.Name{}, commission.Rate{}),
	cmpopts.IgnoreFields(user.User{}, "id"),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

var now = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func TestNewUser(t *testing.T) {
	t.Run("success: new user is active with the given rate", func(t *testing.T) {
		email, err := user.NewEmail("  Seller@Example.com ")
		require.NoError(t, err)
		name, err := user.NewName("Seller")
		require.NoError(t, err)
		rate, err := commission.NewRateFromPercent(12.5)
		require.NoError(t, err)

		actual, err := user.NewUser(email, name, "hash", user.RoleSales, rate, now)
		require.NoError(t, err)

		expected := user.ReconstructUser(uuid.Nil, email, name, "hash", user.RoleSales, rate, nil, true, now, now)
		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}
		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "seller@example.com", actual.Email().Value())
		assert.Equal(t, int32(1250), actual.CommissionRate().BasisPoints())
		assert.Nil(t, actual.LastLogin())
	})

	t.Run("error: empty password hash", func(t *testing.T) {
		email, _ := user.NewEmail("seller@example.com")
		name, _ := user.NewName("Seller")
		_, err := user.NewUser(email, name, "", user.RoleSales, commission.Rate{}, now)
		require.ErrorIs(t, err, user.ErrEmptyPasswordSet)
	})

	t.Run("error: unknown role", func(t *testing.T) {
		email, _ := user.NewEmail("seller@example.com")
		name, _ := user.NewName("Seller")
		_, err := user.NewUser(email, name, "hash", user.Role("viewer"), commission.Rate{}, now)
		require.ErrorIs(t, err, user.ErrInvalidRole)
	})
}

func TestUserBuilderValidation(t *testing.T) {
	t.Run("email", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "success: valid email", mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") }},
			{name: "error: empty email", mutate: func(b *builder.UserBuilder) { b.WithEmail("") }, errIs: user.ErrInvalidEmail},
			{name: "error: missing domain", mutate: func(b *builder.UserBuilder) { b.WithEmail("invalid-email") }, errIs: user.ErrInvalidEmail},
			{name: "error: missing at sign", mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") }, errIs: user.ErrInvalidEmail},
		})
	})

	t.Run("role", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "success: admin", mutate: func(b *builder.UserBuilder) { b.AsAdmin() }},
			{name: "success: sales", mutate: func(b *builder.UserBuilder) { b.WithRole("sales") }},
			{name: "error: unknown role", mutate: func(b *builder.UserBuilder) { b.WithRole("operator") }, errIs: user.ErrInvalidRole},
			{name: "error: empty role", mutate: func(b *builder.UserBuilder) { b.WithRole("") }, errIs: user.ErrInvalidRole},
		})
	})

	t.Run("commission rate", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "success: zero", mutate: func(b *builder.UserBuilder) { b.WithRate(0) }},
			{name: "success: one hundred percent", mutate: func(b *builder.UserBuilder) { b.WithRate(10000) }},
			{name: "error: negative", mutate: func(b *builder.UserBuilder) { b.WithRate(-1) }, errIs: commission.ErrInvalidRate},
			{name: "error: above one hundred percent", mutate: func(b *builder.UserBuilder) { b.WithRate(10001) }, errIs: commission.ErrInvalidRate},
		})
	})

	t.Run("name", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "error: blank name", mutate: func(b *builder.UserBuilder) { b.Name = "   " }, errIs: user.ErrInvalidName},
		})
	})
}

func TestUserStateChanges(t *testing.T) {
	t.Run("success: rate change updates timestamp", func(t *testing.T) {
		u, err := builder.NewUserBuilder().WithRate(1000).BuildDomain()
		require.NoError(t, err)
		rate, _ := commission.NewRateFromBasisPoints(1500)

		require.NoError(t, u.ChangeCommissionRate(rate, now))
		assert.Equal(t, int32(1500), u.CommissionRate().BasisPoints())
		assert.Equal(t, now, u.UpdatedAt())
	})

	t.Run("error: unchanged rate", func(t *testing.T) {
		u, err := builder.NewUserBuilder().WithRate(1000).BuildDomain()
		require.NoError(t, err)
		rate, _ := commission.NewRateFromBasisPoints(1000)

		require.ErrorIs(t, u.ChangeCommissionRate(rate, now), user.ErrRateUnchanged)
	})

	t.Run("success: deactivate then reactivate", func(t *testing.T) {
		u, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, u.SetActive(false, now))
		assert.False(t, u.IsActive())
		require.ErrorIs(t, u.EnsureAssignable(), user.ErrInactive)

		require.ErrorIs(t, u.SetActive(false, now), user.ErrAlreadyInState)
		require.NoError(t, u.SetActive(true, now))
		assert.NoError(t, u.EnsureAssignable())
	})

	t.Run("success: role ordering", func(t *testing.T) {
		assert.True(t, user.RoleAdmin.AtLeast(user.RoleSales))
		assert.True(t, user.RoleAdmin.AtLeast(user.RoleAdmin))
		assert.False(t, user.RoleSales.AtLeast(user.RoleAdmin))
		assert.False(t, user.Role("").AtLeast(user.RoleSales))
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
