package handlers

import (
	"net/http"

	request "tecnicontrol/internal/adapter/http/dto/request"
	response "tecnicontrol/internal/adapter/http/dto/response"
	"tecnicontrol/internal/usecase"

	"github.com/gin-gonic/gin"
)

// OrderHandler serves the caller's service orders and the numbering status.
type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// CreateOrder godoc
// @Summary      Create a service order
// @Description  Allocates the next number of the order type and stores the order under its display ID (e.g. OMAN007).
// @Tags         ordenes
// @Accept       json
// @Produce      json
// @Param        order  body      request.OrderCreateRequest  true  "Order"
// @Success      201    {object}  response.OrderResponse
// @Failure      400    {object}  pkg.HTTPError
// @Failure      403    {object}  pkg.HTTPError
// @Failure      404    {object}  pkg.HTTPError
// @Failure      409    {object}  pkg.HTTPError
// @Failure      503    {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /ordenes [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}

	var payload request.OrderCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}

	order, err := h.usecase.CreateOrder(c.Request.Context(), payload.ToCommand(id.UID))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromOrder(order))
}

// GetOrder godoc
// @Summary  Get a service order
// @Tags     ordenes
// @Produce  json
// @Param    id   path      string  true  "Display ID"
// @Success  200  {object}  response.OrderResponse
// @Failure  403  {object}  pkg.HTTPError
// @Failure  404  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /ordenes/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}

	order, err := h.usecase.GetOrder(c.Request.Context(), id.UID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

// ListOrders godoc
// @Summary  List the caller's service orders, newest first
// @Tags     ordenes
// @Produce  json
// @Param    tipo        query     string  false  "Order type"
// @Param    cliente_id  query     string  false  "Client id"
// @Param    q           query     string  false  "Search text"
// @Param    page        query     int     false  "Page (1 to 100000)"
// @Param    page_size   query     int     false  "Page size (max 100)"
// @Success  200  {object}  response.OrderPageResponse
// @Failure  400  {object}  pkg.HTTPError
// @Failure  503  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /ordenes [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}

	var q request.OrderListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}

	page, err := h.usecase.ListOrders(c.Request.Context(), id.UID, q.ToFilter())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromOrderPage(page))
}

// Stats godoc
// @Summary  Summary counters over the caller's orders
// @Tags     ordenes
// @Produce  json
// @Success  200  {object}  response.StatsResponse
// @Failure  503  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /ordenes/estadisticas [get]
func (h *OrderHandler) Stats(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}

	stats, err := h.usecase.Stats(c.Request.Context(), id.UID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromStats(stats))
}

// UpdateOrderDetails godoc
// @Summary  Replace the details of a service order
// @Tags     ordenes
// @Accept   json
// @Produce  json
// @Param    id       path      string                              true  "Display ID"
// @Param    details  body      request.OrderDetailsUpdateRequest  true  "Details"
// @Success  200  {object}  response.OrderResponse
// @Failure  400  {object}  pkg.HTTPError
// @Failure  403  {object}  pkg.HTTPError
// @Failure  404  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /ordenes/{id} [put]
func (h *OrderHandler) UpdateOrderDetails(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}

	var payload request.OrderDetailsUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}

	order, err := h.usecase.UpdateOrderDetails(c.Request.Context(), id.UID, payload.ToOrder(c.Param("id")))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

// DeleteOrder godoc
// @Summary  Delete a service order
// @Tags     ordenes
// @Param    id  path  string  true  "Display ID"
// @Success  204
// @Failure  403  {object}  pkg.HTTPError
// @Failure  404  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /ordenes/{id} [delete]
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}

	if err := h.usecase.DeleteOrder(c.Request.Context(), id.UID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Sequences godoc
// @Summary  Last number issued per order type
// @Tags     ordenes
// @Produce  json
// @Success  200  {array}  response.SequenceResponse
// @Security Bearer
// @Router   /ordenes/secuencias [get]
func (h *OrderHandler) Sequences(c *gin.Context) {
	if _, ok := caller(c); !ok {
		return
	}

	seqs, err := h.usecase.Sequences(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromSequences(seqs))
}
