package interfaces

import (
	"context"
	"tecnicontrol/internal/domain/entities"
)

// IOrderSequenceCounter allocates per-category order numbers.
//
// Next returns the value it just committed: 1 on the first call for a category,
// N+1 when the stored value is N. Numbers are unique and increasing per
// category but not necessarily contiguous.

type IOrderSequenceCounter interface {
	Next(ctx context.Context, t entities.OrderType) (int64, error)
	Current(ctx context.Context, t entities.OrderType) (entities.OrderSequence, error)
}

// IOrderIDValidator confirms a display ID is not yet used as an order key.
type IOrderIDValidator interface {
	IsUnique(ctx context.Context, id string) (bool, error)
}
