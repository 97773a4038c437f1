package api

import (
	"net/http"

	reqdto "commission-tracker/internal/handler/dto/request"
	resdto "commission-tracker/internal/handler/dto/response"
	"commission-tracker/internal/handler/httperr"
	"commission-tracker/internal/usecase/commands"
	"commission-tracker/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UserHandler struct {
	cmds commands.UserCommands
	q    queries.UserQueries
}

func NewUserHandler(cmds commands.UserCommands, q queries.UserQueries) *UserHandler {
	return &UserHandler{cmds: cmds, q: q}
}

// @Summary Create user
// @Description Create an admin or sales user with a commission rate in percent
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateUserRequest true "Create user request"
// @Success 201 {object} resdto.UserResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req reqdto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.Abort(c, err, "Create user failed")
		return
	}
	c.Header("Location", "/api/users/"+result.ID.String())
	h.respondWithView(c, http.StatusCreated, result.ID)
}

// @Summary Get user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} resdto.UserResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	h.respondWithView(c, http.StatusOK, id)
}

// @Summary List users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param role query string false "Role filter"
// @Param limit query int false "Page size (default 20, max 200)"
// @Param after query string false "Opaque cursor from a previous page"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	var q reqdto.ListUsersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	items, next, err := h.q.List(c.Request.Context(), q.ToFilter(), q.Cursor(), q.PageLimit())
	if err != nil {
		httperr.Abort(c, err, "List users failed")
		return
	}
	resp, err := resdto.FromUserList(items)
	if err != nil {
		httperr.Abort(c, err, "Failed to render users")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"users":       resp,
		"next_cursor": nextCursor(next),
	})
}

// @Summary Change commission rate
// @Description Change a user's rate; orders already recorded keep their snapshot
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body reqdto.ChangeCommissionRateRequest true "New rate in percent"
// @Success 200 {object} resdto.UserResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /users/{id}/commission-rate [put]
func (h *UserHandler) ChangeCommissionRate(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req reqdto.ChangeCommissionRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	if err := h.cmds.ChangeCommissionRate(c.Request.Context(), id, *req.CommissionRate); err != nil {
		httperr.Abort(c, err, "Change commission rate failed")
		return
	}
	h.respondWithView(c, http.StatusOK, id)
}

// @Summary Activate or deactivate user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body reqdto.SetUserStatusRequest true "Status"
// @Success 200 {object} resdto.UserResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /users/{id}/status [put]
func (h *UserHandler) SetStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req reqdto.SetUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	if err := h.cmds.SetStatus(c.Request.Context(), id, *req.IsActive); err != nil {
		httperr.Abort(c, err, "Change status failed")
		return
	}
	h.respondWithView(c, http.StatusOK, id)
}

func (h *UserHandler) respondWithView(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err, "Failed to load user")
		return
	}
	resp, err := resdto.FromUserView(view)
	if err != nil {
		httperr.Abort(c, err, "Failed to render user")
		return
	}
	c.JSON(status, resp)
}

func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}
