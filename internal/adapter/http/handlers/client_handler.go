package handlers

import (
	"net/http"

	request "tecnicontrol/internal/adapter/http/dto/request"
	response "tecnicontrol/internal/adapter/http/dto/response"
	"tecnicontrol/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ClientHandler struct {
	usecase usecase.IClientUseCase
}

func NewClientHandler(uc usecase.IClientUseCase) *ClientHandler {
	return &ClientHandler{usecase: uc}
}

// CreateClient godoc
// @Summary  Create a client
// @Tags     clientes
// @Accept   json
// @Produce  json
// @Param    client  body      request.ClientCreateRequest  true  "Client"
// @Success  201     {object}  response.ClientResponse
// @Failure  400     {object}  pkg.HTTPError
// @Security Bearer
// @Router   /clientes [post]
func (h *ClientHandler) CreateClient(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}

	var payload request.ClientCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}

	client, err := h.usecase.CreateClient(c.Request.Context(), usecase.CreateClientCommand{
		UserID:     id.UID,
		Name:       payload.Nombre,
		NationalID: payload.Cedula,
		Email:      payload.Email,
		Phone:      payload.Telefono,
		Address:    payload.Direccion,
		Devices:    payload.Devices(),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromClient(client))
}

// ListClients godoc
// @Summary  List the caller's clients, newest first
// @Tags     clientes
// @Produce  json
// @Success  200  {array}   response.ClientResponse
// @Failure  503  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /clientes [get]
func (h *ClientHandler) ListClients(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}

	clients, err := h.usecase.ListClients(c.Request.Context(), id.UID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromClients(clients))
}

// GetClient godoc
// @Summary  Get a client
// @Tags     clientes
// @Produce  json
// @Param    id   path      string  true  "Client id"
// @Success  200  {object}  response.ClientResponse
// @Failure  403  {object}  pkg.HTTPError
// @Failure  404  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /clientes/{id} [get]
func (h *ClientHandler) GetClient(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}

	client, err := h.usecase.GetClient(c.Request.Context(), id.UID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromClient(client))
}

// UpdateClient godoc
// @Summary  Partially update a client
// @Tags     clientes
// @Accept   json
// @Produce  json
// @Param    id      path      string                       true  "Client id"
// @Param    client  body      request.ClientUpdateRequest  true  "Fields to change"
// @Success  200     {object}  response.ClientResponse
// @Failure  400     {object}  pkg.HTTPError
// @Failure  403     {object}  pkg.HTTPError
// @Failure  404     {object}  pkg.HTTPError
// @Security Bearer
// @Router   /clientes/{id} [patch]
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}

	var payload request.ClientUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}

	client, err := h.usecase.UpdateClient(c.Request.Context(), id.UID, c.Param("id"), payload.ToUpdate())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromClient(client))
}

// AddDevice godoc
// @Summary  Add a device to a client
// @Tags     clientes
// @Accept   json
// @Produce  json
// @Param    id      path      string                 true  "Client id"
// @Param    device  body      request.DeviceRequest  true  "Device"
// @Success  201     {object}  response.ClientResponse
// @Failure  400     {object}  pkg.HTTPError
// @Failure  403     {object}  pkg.HTTPError
// @Failure  404     {object}  pkg.HTTPError
// @Security Bearer
// @Router   /clientes/{id}/equipos [post]
func (h *ClientHandler) AddDevice(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}

	var payload request.DeviceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondAppError(c, errInvalidPayload)
		return
	}

	client, err := h.usecase.AddDevice(c.Request.Context(), id.UID, c.Param("id"), payload.ToDevice())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromClient(client))
}

// DeleteClient godoc
// @Summary  Delete a client
// @Tags     clientes
// @Param    id  path  string  true  "Client id"
// @Success  204
// @Failure  403  {object}  pkg.HTTPError
// @Failure  404  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /clientes/{id} [delete]
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}

	if err := h.usecase.DeleteClient(c.Request.Context(), id.UID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
