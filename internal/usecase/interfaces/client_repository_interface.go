package interfaces

import (
	"context"
	"tecnicontrol/internal/domain/entities"
)

// IClientRepository abstracts persistence for tenant-owned clients.

type IClientRepository interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	ListByUser(ctx context.Context, userID string) ([]entities.Client, error)
	Update(ctx context.Context, userID, id string, u entities.ClientUpdate) (entities.Client, error)
	AddDevice(ctx context.Context, userID, id string, d entities.Device) (entities.Client, error)
	Delete(ctx context.Context, userID, id string) error
}
