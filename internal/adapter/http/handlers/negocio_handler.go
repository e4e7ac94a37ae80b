package handlers

import (
	"net/http"

	request "tecnicontrol/internal/adapter/http/dto/request"
	response "tecnicontrol/internal/adapter/http/dto/response"
	"tecnicontrol/internal/usecase"

	"github.com/gin-gonic/gin"
)

// NegocioHandler serves the caller's business profile and per-user counter.
type NegocioHandler struct {
	negocios   usecase.INegocioUseCase
	contadores usecase.IContadorUseCase
}

func NewNegocioHandler(negocios usecase.INegocioUseCase, contadores usecase.IContadorUseCase) *NegocioHandler {
	return &NegocioHandler{negocios: negocios, contadores: contadores}
}

// GetNegocio godoc
// @Summary      Get the caller's business profile
// @Description  The profile is created from the token's name and email on first access.
// @Tags         negocio
// @Produce      json
// @Success      200  {object}  response.NegocioResponse
// @Security     Bearer
// @Router       /negocio [get]
func (h *NegocioHandler) GetNegocio(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}

	n, err := h.negocios.GetNegocio(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromNegocio(n))
}

// UpdateNegocio godoc
// @Summary  Partially update the caller's business profile
// @Tags     negocio
// @Accept   json
// @Produce  json
// @Param    negocio  body      request.NegocioUpdateRequest  true  "Fields to change"
// @Success  200      {object}  response.NegocioResponse
// @Failure  400      {object}  pkg.HTTPError
// @Security Bearer
// @Router   /negocio [patch]
func (h *NegocioHandler) UpdateNegocio(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}

	var payload request.NegocioUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}

	n, err := h.negocios.UpdateNegocio(c.Request.Context(), id, payload.ToUpdate())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromNegocio(n))
}

// GetContador godoc
// @Summary  Get the caller's counter
// @Tags     negocio
// @Produce  json
// @Success  200  {object}  response.ContadorResponse
// @Security Bearer
// @Router   /contador [get]
func (h *NegocioHandler) GetContador(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}

	ct, err := h.contadores.GetContador(c.Request.Context(), id.UID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromContador(ct))
}

// NextNumber godoc
// @Summary      Take the next number of the caller's counter
// @Description  Independent from the order type sequences; does not create an order.
// @Tags         negocio
// @Produce      json
// @Success      200  {object}  response.NextNumberResponse
// @Failure      503  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /contador/siguiente [post]
func (h *NegocioHandler) NextNumber(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}

	n, ct, err := h.contadores.NextNumber(c.Request.Context(), id.UID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.NextNumberResponse{Numero: n, Contador: response.FromContador(ct)})
}
