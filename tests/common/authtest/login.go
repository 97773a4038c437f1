//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"commission-tracker/internal/handler/dto/request"
	sqlc "commission-tracker/internal/infra/sqlc/generated"
	"commission-tracker/internal/pkg/cookie"
	"commission-tracker/tests/common/dbtest"
	"commission-tracker/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const loginURL = "/api/auth/login"

// LoginUser logs in through the API and returns the access token cookie value.
func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, loginURL,
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	access := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
	require.NotNil(t, access, "access token cookie missing")
	require.NotEmpty(t, access.Value)
	return access.Value
}

// CreateAndLogin seeds a user with dbtest.TestPassword and returns its id and
// an access token.
func CreateAndLogin(t *testing.T, db sqlc.DBTX, router *gin.Engine, email, role string, rateBP int32) (uuid.UUID, string) {
	t.Helper()
	id := dbtest.CreateTestUser(t, db, email, role, rateBP)
	return id, LoginUser(t, router, email, dbtest.TestPassword)
}
