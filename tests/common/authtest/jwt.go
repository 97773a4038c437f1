//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"commission-tracker/internal/domain/user"
	"commission-tracker/internal/pkg/config"
	"commission-tracker/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper mints tokens with the application's secret without a login.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) AccessToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	return h.sign(t, h.cfg.AccessTokenDuration, jwt.TokenTypeAccess, userID, role)
}

func (h *JWTHelper) RefreshToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	return h.sign(t, h.cfg.AccessTokenDuration, jwt.TokenTypeRefresh, userID, role)
}

// ExpiredAccessToken expired a minute ago.
func (h *JWTHelper) ExpiredAccessToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	return h.sign(t, -time.Minute, jwt.TokenTypeAccess, userID, role)
}

func (h *JWTHelper) sign(t *testing.T, accessTTL time.Duration, typ jwt.TokenType, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, accessTTL, h.cfg.RefreshTokenDuration).Sign(typ, userID, role)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	return token
}
