package repository

import (
	"context"
	"time"

	"tecnicontrol/internal/domain/entities"
	"tecnicontrol/internal/usecase/interfaces"

	"go.uber.org/zap"
)

type clientItem struct {
	ID         string            `dynamodbav:"id"`
	UserID     string            `dynamodbav:"userId"`
	Name       string            `dynamodbav:"nombre"`
	NationalID string            `dynamodbav:"cedula"`
	Email      string            `dynamodbav:"email"`
	Phone      string            `dynamodbav:"telefono"`
	Address    string            `dynamodbav:"direccion"`
	Devices    []entities.Device `dynamodbav:"equipos"`
	CreatedAt  string            `dynamodbav:"fechaCreacion"`
	UpdatedAt  string            `dynamodbav:"fechaActualizacion"`
}

func (it *clientItem) owner() string { return it.UserID }

func (it *clientItem) restamp(userID, updatedAt string) {
	it.UserID = userID
	it.UpdatedAt = updatedAt
}

// ClientRepository persists clients (clientes) with their embedded devices.

type ClientRepository struct {
	store interfaces.IDocumentStore
	col   tenantCollection[clientItem, *clientItem]
	now   func() time.Time
}

var _ interfaces.IClientRepository = (*ClientRepository)(nil)

func NewClientRepository(store interfaces.IDocumentStore, metrics interfaces.IOrderMetrics, logger *zap.Logger) *ClientRepository {
	return &ClientRepository{
		store: store,
		col:   newTenantCollection[clientItem, *clientItem](store, CollectionClientes, metrics, logger),
		now:   time.Now,
	}
}

func (r *ClientRepository) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	now := r.now().UTC()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now
	if c.Devices == nil {
		c.Devices = []entities.Device{}
	}

	id, err := r.store.Add(ctx, CollectionClientes, toClientItem(c))
	if err != nil {
		return entities.Client{}, writeError("create", CollectionClientes, "", err)
	}
	c.ID = id
	return c, nil
}

// GetByID returns a zero Client when the document does not exist.
func (r *ClientRepository) GetByID(ctx context.Context, id string) (entities.Client, error) {
	it, found, err := r.col.get(ctx, id)
	if err != nil || !found {
		return entities.Client{}, err
	}
	return fromClientItem(it), nil
}

func (r *ClientRepository) ListByUser(ctx context.Context, userID string) ([]entities.Client, error) {
	items, err := r.col.list(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Client, 0, len(items))
	for _, it := range items {
		out = append(out, fromClientItem(it))
	}
	return out, nil
}

func (r *ClientRepository) Update(ctx context.Context, userID, id string, u entities.ClientUpdate) (entities.Client, error) {
	it, err := r.col.update(ctx, userID, id, formatTime(r.now()), func(it *clientItem) error {
		if u.Name != nil {
			it.Name = *u.Name
		}
		if u.NationalID != nil {
			it.NationalID = *u.NationalID
		}
		if u.Email != nil {
			it.Email = *u.Email
		}
		if u.Phone != nil {
			it.Phone = *u.Phone
		}
		if u.Address != nil {
			it.Address = *u.Address
		}
		if u.Devices != nil {
			it.Devices = append([]entities.Device{}, *u.Devices...)
		}
		return nil
	})
	if err != nil {
		return entities.Client{}, err
	}
	return fromClientItem(it), nil
}

func (r *ClientRepository) AddDevice(ctx context.Context, userID, id string, d entities.Device) (entities.Client, error) {
	it, err := r.col.update(ctx, userID, id, formatTime(r.now()), func(it *clientItem) error {
		it.Devices = append(it.Devices, d)
		return nil
	})
	if err != nil {
		return entities.Client{}, err
	}
	return fromClientItem(it), nil
}

func (r *ClientRepository) Delete(ctx context.Context, userID, id string) error {
	return r.col.delete(ctx, userID, id)
}

func toClientItem(c entities.Client) clientItem {
	return clientItem{
		ID:         c.ID,
		UserID:     c.UserID,
		Name:       c.Name,
		NationalID: c.NationalID,
		Email:      c.Email,
		Phone:      c.Phone,
		Address:    c.Address,
		Devices:    c.Devices,
		CreatedAt:  formatTime(c.CreatedAt),
		UpdatedAt:  formatTime(c.UpdatedAt),
	}
}

func fromClientItem(it clientItem) entities.Client {
	devices := it.Devices
	if devices == nil {
		devices = []entities.Device{}
	}
	return entities.Client{
		ID:         it.ID,
		UserID:     it.UserID,
		Name:       it.Name,
		NationalID: it.NationalID,
		Email:      it.Email,
		Phone:      it.Phone,
		Address:    it.Address,
		Devices:    devices,
		CreatedAt:  parseTime(it.CreatedAt),
		UpdatedAt:  parseTime(it.UpdatedAt),
	}
}
