package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"commission-tracker/internal/domain/user"
	"commission-tracker/internal/handler/httperr"
	"commission-tracker/internal/pkg/cookie"
	"commission-tracker/internal/pkg/errs"
	"commission-tracker/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxPrincipalKey = "principal"

// Principal is the authenticated caller attached to the request context.
type Principal struct {
	UserID uuid.UUID
	Role   user.Role
}

var (
	errTokenMissing       = errs.Unauthorized(errs.New("access token required"))
	errInsufficientRole   = errs.New("insufficient permissions")
	errMissingAuthContext = errs.New("role checked before authentication")
)

type AuthMiddleware struct {
	tokens usecase.TokenValidator
}

func NewAuthMiddleware(tokens usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// RequireAuth accepts the access token cookie first and falls back to a
// Bearer header.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := accessToken(c.Request)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errTokenMissing, "Access token required", nil)
			return
		}

		userID, role, err := m.tokens.ValidateToken(token)
		if err != nil {
			slog.Warn("rejected access token",
				"path", c.FullPath(),
				"request_id", GetRequestID(c),
				"error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxPrincipalKey, Principal{UserID: userID, Role: role})
		c.Next()
	}
}

// RequireRoleAtLeast must run after RequireAuth.
func (m *AuthMiddleware) RequireRoleAtLeast(minRole user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := GetPrincipal(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError, errMissingAuthContext, "Internal server error", nil)
			return
		}
		if !p.Role.AtLeast(minRole) {
			httperr.AbortWithError(c, http.StatusForbidden, errInsufficientRole, "Insufficient permissions", nil)
			return
		}
		c.Next()
	}
}

func accessToken(r *http.Request) string {
	if token := cookie.AccessToken(r); token != "" {
		return token
	}
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func GetPrincipal(c *gin.Context) (Principal, bool) {
	v, exists := c.Get(ctxPrincipalKey)
	if !exists {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	p, ok := GetPrincipal(c)
	return p.UserID, ok
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	p, ok := GetPrincipal(c)
	return p.Role, ok
}
