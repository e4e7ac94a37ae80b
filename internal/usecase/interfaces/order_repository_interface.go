package interfaces

import (
	"context"
	"tecnicontrol/internal/domain/entities"
)

// IOrderRepository abstracts persistence for tenant-owned orders.
//
// Create stores the order under its display ID and fails with
// entities.ErrOrderIDConflict when that key already exists. GetByID returns a
// zero Order when the key is absent. Update and Delete verify the caller owns
// the order before writing.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	ListByUser(ctx context.Context, userID string) ([]entities.Order, error)
	UpdateDetails(ctx context.Context, userID string, o entities.Order) (entities.Order, error)
	Delete(ctx context.Context, userID, id string) error
}
