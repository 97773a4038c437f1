package api

import (
	"net/http"

	reqdto "commission-tracker/internal/handler/dto/request"
	resdto "commission-tracker/internal/handler/dto/response"
	"commission-tracker/internal/handler/httperr"
	"commission-tracker/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	q queries.DashboardQueries
}

func NewDashboardHandler(q queries.DashboardQueries) *DashboardHandler {
	return &DashboardHandler{q: q}
}

// @Summary Commission summary
// @Description Per sales person totals for a date range. Defaults to the current month up to today.
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param from query string false "First order date (YYYY-MM-DD)"
// @Param to query string false "Last order date (YYYY-MM-DD)"
// @Success 200 {object} resdto.CommissionSummaryResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /dashboard/commissions [get]
func (h *DashboardHandler) Commissions(c *gin.Context) {
	var q reqdto.CommissionSummaryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	from, to, err := q.Range()
	if err != nil {
		httperr.Abort(c, err, "Invalid date range")
		return
	}
	summary, err := h.q.CommissionSummary(c.Request.Context(), from, to)
	if err != nil {
		httperr.Abort(c, err, "Commission summary failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCommissionSummary(summary))
}
