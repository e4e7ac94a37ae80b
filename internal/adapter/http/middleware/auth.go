package middleware

import (
	"net/http"
	"strings"

	"tecnicontrol/internal/domain/entities"
	"tecnicontrol/internal/usecase/interfaces"
	"tecnicontrol/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const identityKey = "identity"

var (
	errMissingToken = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing bearer token", http.StatusUnauthorized)
	errInvalidToken = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Invalid or expired token", http.StatusUnauthorized)
)

// Auth requires an "Authorization: Bearer <token>" header and stores the
// verified identity in the gin context. Every tenant-scoped route sits behind it.
func Auth(provider interfaces.IIdentityProvider, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}

		scheme, token, ok := strings.Cut(header, " ")
		token = strings.TrimSpace(token)
		if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}

		id, err := provider.Verify(c.Request.Context(), token)
		if err != nil {
			logger.Warn("token rejected",
				zap.String("request_id", c.GetString(requestIDKey)),
				zap.Error(err),
			)
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}

		c.Set(identityKey, id)
		c.Next()
	}
}

// IdentityFrom returns the identity stored by Auth.
func IdentityFrom(c *gin.Context) (entities.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return entities.Identity{}, false
	}
	id, ok := v.(entities.Identity)
	return id, ok && id.UID != ""
}

// SetIdentity stores id as the authenticated caller. Handler tests use it in
// place of Auth.
func SetIdentity(id entities.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(identityKey, id)
		c.Next()
	}
}
