package repository

import (
	"context"
	"fmt"
	"time"

	"tecnicontrol/internal/domain/entities"
	"tecnicontrol/internal/usecase/interfaces"

	"go.uber.org/zap"
)

type orderItem struct {
	ID        string                  `dynamodbav:"id"`
	UserID    string                  `dynamodbav:"userId"`
	Number    int64                   `dynamodbav:"numero"`
	Type      string                  `dynamodbav:"tipo"`
	Client    entities.ClientSnapshot `dynamodbav:"cliente"`
	Device    entities.Device         `dynamodbav:"equipo"`
	CreatedAt string                  `dynamodbav:"fechaCreacion"`
	UpdatedAt string                  `dynamodbav:"fechaActualizacion"`

	Garantia      *entities.WarrantyDetails    `dynamodbav:"garantia,omitempty"`
	Mantenimiento *entities.MaintenanceDetails `dynamodbav:"mantenimiento,omitempty"`
	Diagnostico   *entities.DiagnosticDetails  `dynamodbav:"diagnostico,omitempty"`
	Entrega       *entities.DeliveryDetails    `dynamodbav:"entrega,omitempty"`
}

func (it *orderItem) owner() string { return it.UserID }

func (it *orderItem) restamp(userID, updatedAt string) {
	it.UserID = userID
	it.UpdatedAt = updatedAt
}

// OrderRepository persists orders (ordenes) keyed by their display ID.

type OrderRepository struct {
	store  interfaces.IDocumentStore
	col    tenantCollection[orderItem, *orderItem]
	logger *zap.Logger
	now    func() time.Time
}

var _ interfaces.IOrderRepository = (*OrderRepository)(nil)

func NewOrderRepository(store interfaces.IDocumentStore, metrics interfaces.IOrderMetrics, logger *zap.Logger) *OrderRepository {
	return &OrderRepository{
		store:  store,
		col:    newTenantCollection[orderItem, *orderItem](store, CollectionOrdenes, metrics, logger),
		logger: orNop(logger),
		now:    time.Now,
	}
}

// Create stores o under o.ID. The absence of the key is re-checked inside the
// write transaction; an existing document yields entities.ErrOrderIDConflict
// and is left untouched.
func (r *OrderRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	if o.ID == "" {
		return entities.Order{}, fmt.Errorf("%w: missing id", entities.ErrInvalidOrder)
	}
	if err := o.Validate(); err != nil {
		return entities.Order{}, err
	}
	now := r.now().UTC()
	if o.CreatedAt.IsZero() {
		o.CreatedAt = now
	}
	o.UpdatedAt = now
	it := toOrderItem(o)

	err := r.store.RunTransaction(ctx, func(ctx context.Context, tx interfaces.ITransaction) error {
		exists, err := tx.Get(ctx, CollectionOrdenes, o.ID, nil)
		if err != nil {
			return err
		}
		if exists {
			r.logger.Error("order id already stored",
				zap.String("order_id", o.ID),
				zap.String("tipo", string(o.Type)),
				zap.Int64("numero", o.Number),
			)
			return fmt.Errorf("%s/%s: %w", CollectionOrdenes, o.ID, entities.ErrOrderIDConflict)
		}
		return tx.Set(CollectionOrdenes, o.ID, it)
	})
	if err != nil {
		return entities.Order{}, writeError("create", CollectionOrdenes, o.ID, err)
	}
	return fromOrderItem(it), nil
}

// GetByID returns a zero Order when the document does not exist.
func (r *OrderRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	it, found, err := r.col.get(ctx, id)
	if err != nil || !found {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderRepository) ListByUser(ctx context.Context, userID string) ([]entities.Order, error) {
	items, err := r.col.list(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Order, 0, len(items))
	for _, it := range items {
		out = append(out, fromOrderItem(it))
	}
	return out, nil
}

// UpdateDetails replaces the details of o's type on the stored order. The type
// of a stored order never changes.
func (r *OrderRepository) UpdateDetails(ctx context.Context, userID string, o entities.Order) (entities.Order, error) {
	if err := o.Validate(); err != nil {
		return entities.Order{}, err
	}
	it, err := r.col.update(ctx, userID, o.ID, formatTime(r.now()), func(it *orderItem) error {
		if it.Type != string(o.Type) {
			return fmt.Errorf("%w: order %s is %s, got %s details", entities.ErrInvalidOrder, o.ID, it.Type, o.Type)
		}
		it.Garantia = o.Garantia
		it.Mantenimiento = o.Mantenimiento
		it.Diagnostico = o.Diagnostico
		it.Entrega = o.Entrega
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderRepository) Delete(ctx context.Context, userID, id string) error {
	return r.col.delete(ctx, userID, id)
}

func toOrderItem(o entities.Order) orderItem {
	return orderItem{
		ID:            o.ID,
		UserID:        o.UserID,
		Number:        o.Number,
		Type:          string(o.Type),
		Client:        o.Client,
		Device:        o.Device,
		CreatedAt:     formatTime(o.CreatedAt),
		UpdatedAt:     formatTime(o.UpdatedAt),
		Garantia:      o.Garantia,
		Mantenimiento: o.Mantenimiento,
		Diagnostico:   o.Diagnostico,
		Entrega:       o.Entrega,
	}
}

func fromOrderItem(it orderItem) entities.Order {
	return entities.Order{
		ID:            it.ID,
		UserID:        it.UserID,
		Number:        it.Number,
		Type:          entities.OrderType(it.Type),
		Client:        it.Client,
		Device:        it.Device,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
		Garantia:      it.Garantia,
		Mantenimiento: it.Mantenimiento,
		Diagnostico:   it.Diagnostico,
		Entrega:       it.Entrega,
	}
}
