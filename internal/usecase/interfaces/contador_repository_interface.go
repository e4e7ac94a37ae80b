package interfaces

import (
	"context"
	"tecnicontrol/internal/domain/entities"
)

// IContadorRepository abstracts the per-user sequence (contadores/{userId}).
//
// Increment returns the number it issued together with the updated counter.

type IContadorRepository interface {
	Get(ctx context.Context, userID string) (entities.Contador, bool, error)
	Increment(ctx context.Context, userID string) (int64, entities.Contador, error)
}
