package api

import (
	"net/http"

	resdto "commission-tracker/internal/handler/dto/response"
	"commission-tracker/internal/handler/httperr"
	"commission-tracker/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SequenceHandler struct {
	q queries.SequenceQueries
}

func NewSequenceHandler(q queries.SequenceQueries) *SequenceHandler {
	return &SequenceHandler{q: q}
}

// @Summary Current counter value
// @Description Read a reference counter without allocating. Keys look like campaign:facebook or order:FB-001.
// @Tags sequences
// @Produce json
// @Security BearerAuth
// @Param key path string true "Counter key"
// @Success 200 {object} resdto.SequenceResponse
// @Failure 403 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /sequences/{key} [get]
func (h *SequenceHandler) Current(c *gin.Context) {
	view, err := h.q.Current(c.Request.Context(), c.Param("key"))
	if err != nil {
		httperr.Abort(c, err, "Read counter failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromSequenceView(view))
}
