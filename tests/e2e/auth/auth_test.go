//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"commission-tracker/internal/domain/user"
	"commission-tracker/internal/handler/dto/request"
	"commission-tracker/internal/handler/dto/response"
	"commission-tracker/internal/usecase/queries"
	"commission-tracker/tests/common/authtest"
	"commission-tracker/tests/common/dbtest"
	"commission-tracker/tests/common/httptest"
	"commission-tracker/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL   = "/api/auth/login"
	logoutURL  = "/api/auth/logout"
	refreshURL = "/api/auth/refresh"
	meURL      = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) seedUsers() {
	t := s.T()
	dbtest.CreateTestUser(t, s.DB, "admin@example.com", string(user.RoleAdmin), 0)
	dbtest.CreateTestUser(t, s.DB, "sales@example.com", string(user.RoleSales), 1000)
	dbtest.CreateTestUser(t, s.DB, "inactive@example.com", string(user.RoleSales), 1000)

	_, err := s.DB.Exec(t.Context(), "UPDATE users SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(t, err)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{"success: admin credentials", "admin@example.com", dbtest.TestPassword, http.StatusOK},
		{"success: sales credentials", "sales@example.com", dbtest.TestPassword, http.StatusOK},
		{"error: unknown email", "nobody@example.com", dbtest.TestPassword, http.StatusUnauthorized},
		{"error: wrong password", "admin@example.com", "wrongpassword", http.StatusUnauthorized},
		{"error: inactive user", "inactive@example.com", dbtest.TestPassword, http.StatusUnauthorized},
		{"error: empty email", "", dbtest.TestPassword, http.StatusBadRequest},
		{"error: short password", "admin@example.com", "short", http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()
			s.seedUsers()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Email: tt.email, Password: tt.password}, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus != http.StatusOK {
				return
			}
			var res response.LoginResponse
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
			assert.NotEmpty(t, res.AccessToken)
			assert.NotEmpty(t, res.RefreshToken)
			require.NotNil(t, res.User)
			assert.Equal(t, tt.email, res.User.Email)
			assert.NotNil(t, httptest.ExtractCookie(w, "access_token"))
			assert.NotNil(t, httptest.ExtractCookie(w, "refresh_token"))

			var lastLoginSet bool
			err := s.DB.QueryRow(t.Context(),
				"SELECT last_login IS NOT NULL FROM users WHERE email = $1", tt.email).Scan(&lastLoginSet)
			require.NoError(t, err)
			assert.True(t, lastLoginSet, "last_login should be recorded")
		})
	}
}

func (s *authSuite) TestRefresh() {
	login := func() response.LoginResponse {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "sales@example.com", Password: dbtest.TestPassword}, "")
		var res response.LoginResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		return res
	}

	s.Run("success: refresh token in body", func() {
		t := s.T()
		s.seedUsers()
		res := login()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL,
			request.RefreshRequest{RefreshToken: res.RefreshToken}, "")
		var tokens response.TokenResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &tokens)
		assert.NotEmpty(t, tokens.AccessToken)
		assert.NotEmpty(t, tokens.RefreshToken)
	})

	s.Run("success: refresh token from cookie", func() {
		t := s.T()
		s.seedUsers()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "sales@example.com", Password: dbtest.TestPassword}, "")
		require.Equal(t, http.StatusOK, w.Code)
		refreshCookie := httptest.ExtractCookie(w, "refresh_token")
		require.NotNil(t, refreshCookie)

		w = httptest.Perform(t, s.Router, http.MethodPost, refreshURL, nil, httptest.WithCookies(refreshCookie))
		assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("error: access token is not a refresh token", func() {
		t := s.T()
		s.seedUsers()
		res := login()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL,
			request.RefreshRequest{RefreshToken: res.AccessToken}, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("error: user deactivated after login", func() {
		t := s.T()
		s.seedUsers()
		res := login()
		_, err := s.DB.Exec(t.Context(), "UPDATE users SET is_active = false WHERE email = 'sales@example.com'")
		require.NoError(t, err)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL,
			request.RefreshRequest{RefreshToken: res.RefreshToken}, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("error: garbage token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, refreshURL,
			request.RefreshRequest{RefreshToken: "invalid-refresh-token"}, "")
		assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})

	s.Run("error: no token at all", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, refreshURL, nil, "")
		assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestLogout() {
	s.Run("success: clears auth cookies", func() {
		t := s.T()
		s.seedUsers()
		token := authtest.LoginUser(t, s.Router, "admin@example.com", dbtest.TestPassword)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, token)
		require.Equal(t, http.StatusNoContent, w.Code)
		access := httptest.ExtractCookie(w, "access_token")
		require.NotNil(t, access)
		assert.Empty(t, access.Value)
		assert.Negative(t, access.MaxAge)
	})

	s.Run("error: invalid token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, logoutURL, nil, "invalid-token")
		assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})

	s.Run("error: no token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, logoutURL, nil, "")
		assert.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestMe() {
	for _, role := range []user.Role{user.RoleAdmin, user.RoleSales} {
		s.Run("success: "+string(role)+" sees own profile", func() {
			t := s.T()
			email := string(role) + "-me@example.com"
			id, token := authtest.CreateAndLogin(t, s.DB, s.Router, email, string(role), 500)

			w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
			var me queries.AuthorizedUserView
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &me)
			assert.Equal(t, id, me.ID)
			assert.Equal(t, email, me.Email)
			assert.Equal(t, string(role), me.Role)
			assert.NotContains(t, w.Body.String(), "password")
		})
	}

	s.Run("error: token for a user that no longer exists", func() {
		t := s.T()
		token := s.jwt.AccessToken(t, uuid.New(), user.RoleAdmin)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	s.Run("error: expired token", func() {
		t := s.T()
		id := dbtest.CreateTestUser(t, s.DB, "expired@example.com", string(user.RoleAdmin), 0)
		token := s.jwt.ExpiredAccessToken(t, id, user.RoleAdmin)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("error: refresh token used as access token", func() {
		t := s.T()
		id := dbtest.CreateTestUser(t, s.DB, "refresh-only@example.com", string(user.RoleAdmin), 0)
		token := s.jwt.RefreshToken(t, id, user.RoleAdmin)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestRoleEnforcement() {
	s.Run("error: sales user cannot create campaigns", func() {
		t := s.T()
		_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "seller@example.com", string(user.RoleSales), 1000)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/campaigns", map[string]any{}, token)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	s.Run("error: sales user cannot list users", func() {
		t := s.T()
		_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "seller@example.com", string(user.RoleSales), 1000)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/users", nil, token)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	s.Run("success: sales user can read campaigns", func() {
		t := s.T()
		_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "seller@example.com", string(user.RoleSales), 1000)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/campaigns", nil, token)
		assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("error: protected endpoints without a token", func() {
		t := s.T()
		for _, ep := range []struct{ method, path string }{
			{http.MethodGet, meURL},
			{http.MethodPost, logoutURL},
			{http.MethodGet, "/api/campaigns"},
			{http.MethodGet, "/api/orders"},
			{http.MethodGet, "/api/dashboard/commissions"},
		} {
			w := httptest.PerformRequest(t, s.Router, ep.method, ep.path, nil, "")
			assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", ep.method, ep.path)
		}
	})
}
