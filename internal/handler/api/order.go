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

type OrderHandler struct {
	cmds commands.OrderCommands
	q    queries.OrderQueries
}

func NewOrderHandler(cmds commands.OrderCommands, q queries.OrderQueries) *OrderHandler {
	return &OrderHandler{cmds: cmds, q: q}
}

// @Summary Create order
// @Description Record an order under an active campaign and snapshot the sales person's commission rate
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateOrderRequest true "Create order request"
// @Success 201 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	var req reqdto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.Abort(c, err, "Invalid order")
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), cmd)
	if err != nil {
		httperr.Abort(c, err, "Create order failed")
		return
	}
	view, err := h.q.GetByRef(c.Request.Context(), result.ReferenceID)
	if err != nil {
		httperr.Abort(c, err, "Failed to load order")
		return
	}
	c.Header("Location", "/api/orders/"+result.ReferenceID)
	c.JSON(http.StatusCreated, resdto.FromOrderView(view))
}

// @Summary Get order
// @Description Get an order with its line items
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param ref path string true "Order reference ID" example(FB-001-01)
// @Success 200 {object} resdto.OrderResponse
// @Failure 404 {object} httperr.Response
// @Router /orders/{ref} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	view, err := h.q.GetByRef(c.Request.Context(), c.Param("ref"))
	if err != nil {
		httperr.Abort(c, err, "Order not found")
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

// @Summary List orders
// @Description List orders newest first with keyset pagination
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param campaign_reference_id query string false "Campaign filter"
// @Param sales_person_id query string false "Sales person filter"
// @Param from query string false "First order date (YYYY-MM-DD)"
// @Param to query string false "Last order date (YYYY-MM-DD)"
// @Param limit query int false "Page size (default 20, max 200)"
// @Param after query string false "Opaque cursor from a previous page"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Router /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	var q reqdto.ListOrdersQuery
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
		httperr.Abort(c, err, "List orders failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"orders":      resdto.FromOrderList(items),
		"next_cursor": nextCursor(next),
	})
}

// @Summary Replace order items
// @Description Replace the line items and recompute totals with the original snapshot rate
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param ref path string true "Order reference ID"
// @Param request body reqdto.ReplaceItemsRequest true "New line items"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /orders/{ref}/items [put]
func (h *OrderHandler) ReplaceItems(c *gin.Context) {
	ref := c.Param("ref")
	var req reqdto.ReplaceItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err)
		return
	}
	if err := h.cmds.ReplaceItems(c.Request.Context(), ref, req.ToCommand()); err != nil {
		httperr.Abort(c, err, "Replace items failed")
		return
	}
	view, err := h.q.GetByRef(c.Request.Context(), ref)
	if err != nil {
		httperr.Abort(c, err, "Failed to load order")
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}
