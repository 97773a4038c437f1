package api

import (
	"net/http"

	reqdto "commission-tracker/internal/handler/dto/request"
	resdto "commission-tracker/internal/handler/dto/response"
	"commission-tracker/internal/handler/httperr"
	"commission-tracker/internal/handler/middleware"
	"commission-tracker/internal/pkg/config"
	"commission-tracker/internal/pkg/cookie"
	"commission-tracker/internal/pkg/errs"
	"commission-tracker/internal/pkg/jwt"
	"commission-tracker/internal/usecase/commands"
	"commission-tracker/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errNoRefreshToken = errs.Unauthorized(errs.New("refresh token missing"))

type AuthHandler struct {
	cmds       commands.AuthCommands
	users      queries.UserQueries
	jwtService *jwt.Service
	cookies    cookie.Jar
}

func NewAuthHandler(cmds commands.AuthCommands, users queries.UserQueries, jwtService *jwt.Service, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		cmds:       cmds,
		users:      users,
		jwtService: jwtService,
		cookies:    cookie.NewJar(cfg.Cookie),
	}
}

// @Summary User login
// @Description Login with email and password. Tokens are returned in the body and as HTTP-only cookies.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	result, err := h.cmds.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.Abort(c, err, "Login failed")
		return
	}
	h.setCookies(c, result.TokenPair)
	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken:  result.TokenPair.AccessToken,
		RefreshToken: result.TokenPair.RefreshToken,
		User:         result.User,
	})
}

// @Summary Refresh tokens
// @Description Exchange a refresh token from the body or cookie for a new token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RefreshRequest false "Refresh request"
// @Success 200 {object} resdto.TokenResponse
// @Failure 401 {object} httperr.Response
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req reqdto.RefreshRequest
	// an empty body is fine when the cookie carries the token
	_ = c.ShouldBindJSON(&req)
	token := req.RefreshToken
	if token == "" {
		token = cookie.RefreshToken(c.Request)
	}
	if token == "" {
		httperr.Abort(c, errNoRefreshToken, "Refresh failed")
		return
	}
	pair, err := h.cmds.RefreshToken(c.Request.Context(), token)
	if err != nil {
		httperr.Abort(c, err, "Refresh failed")
		return
	}
	h.setCookies(c, pair)
	c.JSON(http.StatusOK, resdto.TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

// @Summary User logout
// @Description Clear the token cookies. Issued tokens stay valid until they expire.
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.cookies.Expire(c.Writer)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.AuthorizedUserView
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.Abort(c, errs.Unauthorized(errs.New("user not authenticated")), "Unauthorized")
		return
	}
	view, err := h.users.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		httperr.Abort(c, err, "Failed to load user")
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *AuthHandler) setCookies(c *gin.Context, pair *commands.TokenPair) {
	h.cookies.Store(c.Writer, pair.AccessToken, pair.RefreshToken,
		h.jwtService.TTL(jwt.TokenTypeAccess), h.jwtService.TTL(jwt.TokenTypeRefresh))
}
