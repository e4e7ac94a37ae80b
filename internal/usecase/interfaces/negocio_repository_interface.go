package interfaces

import (
	"context"
	"tecnicontrol/internal/domain/entities"
)

// INegocioRepository abstracts the per-user business profile (negocios/{userId}).

type INegocioRepository interface {
	Get(ctx context.Context, userID string) (entities.Negocio, bool, error)
	GetOrCreate(ctx context.Context, id entities.Identity) (entities.Negocio, error)
	Update(ctx context.Context, userID string, u entities.NegocioUpdate) (entities.Negocio, error)
}
