package handlers

import (
	"errors"
	"net/http"

	"tecnicontrol/internal/adapter/http/middleware"
	"tecnicontrol/internal/domain/entities"
	"tecnicontrol/internal/usecase"
	"tecnicontrol/internal/usecase/interfaces"
	"tecnicontrol/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload   = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errUnauthenticated  = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Authentication required", http.StatusUnauthorized)
	errInvalidOrderType = pkg.NewDomainErrorSimple("INVALID_ORDER_TYPE", "Unknown order type", http.StatusBadRequest)
)

func mapError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrInvalidOrderType):
		return errInvalidOrderType
	case errors.Is(err, entities.ErrInvalidOrder):
		return pkg.NewDomainErrorSimple("INVALID_ORDER", "Order details do not match the order type", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidUserID),
		errors.Is(err, entities.ErrReservedKey),
		errors.Is(err, usecase.ErrInvalidClientID),
		errors.Is(err, usecase.ErrInvalidDeviceID),
		errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrInvalidPage),
		errors.Is(err, usecase.ErrInvalidClientName),
		errors.Is(err, usecase.ErrInvalidDeviceFields),
		errors.Is(err, usecase.ErrEmptyClientUpdate),
		errors.Is(err, usecase.ErrInvalidNegocioName),
		errors.Is(err, usecase.ErrEmptyNegocioUpdate):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, interfaces.ErrInvalidCredentials):
		return errUnauthenticated
	case errors.Is(err, entities.ErrOwnershipViolation):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Resource belongs to another user", http.StatusForbidden)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDeviceNotFound):
		return pkg.NewDomainErrorSimple("DEVICE_NOT_FOUND", "Device not found for this client", http.StatusNotFound)
	case errors.Is(err, entities.ErrNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrOrderIDConflict):
		return pkg.NewDomainError("ORDER_ID_CONFLICT", "Order id generation conflict, retry the request", err, http.StatusConflict)
	case errors.Is(err, entities.ErrAllocationFailure):
		return pkg.NewDomainError("ORDER_NUMBER_UNAVAILABLE", "Could not generate order number, retry the request", err, http.StatusServiceUnavailable)
	case errors.Is(err, entities.ErrQueryFailed):
		return pkg.NewDomainError("QUERY_FAILED", "Could not load data, retry the request", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func respondError(c *gin.Context, err error) {
	appErr := mapError(err)
	// recorded for the request logger
	_ = c.Error(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func respondAppError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// caller returns the authenticated identity or answers 401.
func caller(c *gin.Context) (entities.Identity, bool) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		respondAppError(c, errUnauthenticated)
		return entities.Identity{}, false
	}
	return id, true
}
