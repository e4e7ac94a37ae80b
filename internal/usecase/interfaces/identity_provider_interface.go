package interfaces

import (
	"context"
	"errors"
	"tecnicontrol/internal/domain/entities"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// IIdentityProvider resolves a bearer token into the authenticated user.
type IIdentityProvider interface {
	Verify(ctx context.Context, token string) (entities.Identity, error)
}
