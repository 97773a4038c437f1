package api

import (
	"net/http"

	reqdto "commission-tracker/internal/handler/dto/request"
	resdto "commission-tracker/internal/handler/dto/response"
	"commission-tracker/internal/handler/httperr"
	"commission-tracker/internal/usecase/commands"
	"commission-tracker/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CampaignHandler struct {
	cmds commands.CampaignCommands
	q    queries.CampaignQueries
}

func NewCampaignHandler(cmds commands.CampaignCommands, q queries.CampaignQueries) *CampaignHandler {
	return &CampaignHandler{cmds: cmds, q: q}
}

// @Summary Create campaign
// @Description Create a campaign and allocate its platform reference ID
// @Tags campaigns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCampaignRequest true "Create campaign request"
// @Success 201 {object} resdto.CampaignResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /campaigns [post]
func (h *CampaignHandler) Create(c *gin.Context) {
	var req reqdto.CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.Abort(c, err, "Invalid campaign")
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), cmd)
	if err != nil {
		httperr.Abort(c, err, "Create campaign failed")
		return
	}
	view, err := h.q.GetByRef(c.Request.Context(), result.ReferenceID)
	if err != nil {
		httperr.Abort(c, err, "Failed to load campaign")
		return
	}
	c.Header("Location", "/api/campaigns/"+result.ReferenceID)
	c.JSON(http.StatusCreated, resdto.FromCampaignView(view))
}

// @Summary Get campaign
// @Description Get a campaign by reference ID
// @Tags campaigns
// @Produce json
// @Security BearerAuth
// @Param ref path string true "Campaign reference ID" example(FB-001)
// @Success 200 {object} resdto.CampaignResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /campaigns/{ref} [get]
func (h *CampaignHandler) Get(c *gin.Context) {
	view, err := h.q.GetByRef(c.Request.Context(), c.Param("ref"))
	if err != nil {
		httperr.Abort(c, err, "Campaign not found")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCampaignView(view))
}

// @Summary List campaigns
// @Description List campaigns newest first with keyset pagination
// @Tags campaigns
// @Produce json
// @Security BearerAuth
// @Param platform query string false "Platform filter"
// @Param status query string false "Status filter"
// @Param sales_person_id query string false "Sales person filter"
// @Param limit query int false "Page size (default 20, max 200)"
// @Param after query string false "Opaque cursor from a previous page"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /campaigns [get]
func (h *CampaignHandler) List(c *gin.Context) {
	var q reqdto.ListCampaignsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	filter, err := q.ToFilter()
	if err != nil {
		httperr.Abort(c, err, "Invalid filter")
		return
	}
	items, next, err := h.q.List(c.Request.Context(), filter, q.Cursor(), q.PageLimit())
	if err != nil {
		httperr.Abort(c, err, "List campaigns failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"campaigns":   resdto.FromCampaignList(items),
		"next_cursor": nextCursor(next),
	})
}

// @Summary Update campaign
// @Description Partially update a campaign; the platform cannot change
// @Tags campaigns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param ref path string true "Campaign reference ID"
// @Param request body reqdto.UpdateCampaignRequest true "Update campaign request"
// @Success 200 {object} resdto.CampaignResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /campaigns/{ref} [patch]
func (h *CampaignHandler) Update(c *gin.Context) {
	ref := c.Param("ref")
	var req reqdto.UpdateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.Abort(c, err, "Invalid campaign")
		return
	}
	if err := h.cmds.Update(c.Request.Context(), ref, cmd); err != nil {
		httperr.Abort(c, err, "Update campaign failed")
		return
	}
	h.respondWithView(c, ref)
}

// @Summary Change campaign status
// @Description Move a campaign between active, paused and ended
// @Tags campaigns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param ref path string true "Campaign reference ID"
// @Param request body reqdto.ChangeCampaignStatusRequest true "Status change"
// @Success 200 {object} resdto.CampaignResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /campaigns/{ref}/status [put]
func (h *CampaignHandler) ChangeStatus(c *gin.Context) {
	ref := c.Param("ref")
	var req reqdto.ChangeCampaignStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	if err := h.cmds.ChangeStatus(c.Request.Context(), ref, req.Status); err != nil {
		httperr.Abort(c, err, "Change status failed")
		return
	}
	h.respondWithView(c, ref)
}

func (h *CampaignHandler) respondWithView(c *gin.Context, ref string) {
	view, err := h.q.GetByRef(c.Request.Context(), ref)
	if err != nil {
		httperr.Abort(c, err, "Failed to load campaign")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCampaignView(view))
}
