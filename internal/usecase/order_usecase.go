package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tecnicontrol/internal/domain/entities"
	"tecnicontrol/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrInvalidUserID   = errors.New("invalid user id")
	ErrInvalidClientID = errors.New("invalid client id")
	ErrInvalidDeviceID = errors.New("invalid device id")
	ErrInvalidOrderID  = errors.New("invalid order id")
	ErrClientNotFound  = errors.New("client not found")
	ErrDeviceNotFound  = errors.New("device not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrInvalidPage     = errors.New("invalid pagination")
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// CreateOrderCommand is what a caller submits to open an order. Exactly the
// details matching Type must be set.
type CreateOrderCommand struct {
	UserID   string
	ClientID string
	DeviceID string
	Type     entities.OrderType

	Garantia      *entities.WarrantyDetails
	Mantenimiento *entities.MaintenanceDetails
	Diagnostico   *entities.DiagnosticDetails
	Entrega       *entities.DeliveryDetails
}

// OrderFilter narrows a listing. Zero values mean no filter; Search matches
// the display ID, the client's name or national ID and the device's brand,
// model or serial, ignoring case. A zero Page or PageSize takes the default,
// a negative one is rejected and a page past the end yields no items.
type OrderFilter struct {
	Type     entities.OrderType
	ClientID string
	Search   string
	Page     int
	PageSize int
}

type OrderPage struct {
	Items    []entities.Order
	Total    int
	Page     int
	PageSize int
}

// IOrderUseCase exposes order numbering and the tenant-scoped order operations.
//
// CreateOrder runs the whole creation flow:
//   - load the caller's client and the chosen device
//   - allocate the next number of the order's category
//   - format the display ID and confirm no order uses it
//   - store the order under that ID
//
// A failed allocation writes nothing. A number allocated for an order that is
// then not stored is not reused.
type IOrderUseCase interface {
	CreateOrder(ctx context.Context, cmd CreateOrderCommand) (entities.Order, error)
	GetOrder(ctx context.Context, userID, id string) (entities.Order, error)
	ListOrders(ctx context.Context, userID string, f OrderFilter) (OrderPage, error)
	Stats(ctx context.Context, userID string) (OrderStats, error)
	UpdateOrderDetails(ctx context.Context, userID string, o entities.Order) (entities.Order, error)
	DeleteOrder(ctx context.Context, userID, id string) error
	Sequences(ctx context.Context) ([]entities.OrderSequence, error)
}

type OrderUseCase struct {
	orders    interfaces.IOrderRepository
	clients   interfaces.IClientRepository
	sequence  interfaces.IOrderSequenceCounter
	validator interfaces.IOrderIDValidator
	metrics   interfaces.IOrderMetrics
	logger    *zap.Logger
	now       func() time.Time
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(
	orders interfaces.IOrderRepository,
	clients interfaces.IClientRepository,
	sequence interfaces.IOrderSequenceCounter,
	validator interfaces.IOrderIDValidator,
	metrics interfaces.IOrderMetrics,
	logger *zap.Logger,
) *OrderUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderUseCase{
		orders:    orders,
		clients:   clients,
		sequence:  sequence,
		validator: validator,
		metrics:   metrics,
		logger:    logger,
		now:       time.Now,
	}
}

func (u *OrderUseCase) CreateOrder(ctx context.Context, cmd CreateOrderCommand) (entities.Order, error) {
	userID := strings.TrimSpace(cmd.UserID)
	if userID == "" {
		return entities.Order{}, ErrInvalidUserID
	}
	clientID := strings.TrimSpace(cmd.ClientID)
	if clientID == "" {
		return entities.Order{}, ErrInvalidClientID
	}
	deviceID := strings.TrimSpace(cmd.DeviceID)
	if deviceID == "" {
		return entities.Order{}, ErrInvalidDeviceID
	}

	o := entities.Order{
		UserID:        userID,
		Type:          cmd.Type,
		Garantia:      cmd.Garantia,
		Mantenimiento: cmd.Mantenimiento,
		Diagnostico:   cmd.Diagnostico,
		Entrega:       cmd.Entrega,
	}
	if err := o.Validate(); err != nil {
		return entities.Order{}, err
	}

	client, err := u.ownedClient(ctx, userID, clientID)
	if err != nil {
		return entities.Order{}, err
	}
	device, ok := client.FindDevice(deviceID)
	if !ok {
		return entities.Order{}, ErrDeviceNotFound
	}
	o.Client = client.Snapshot()
	o.Device = device

	number, err := u.sequence.Next(ctx, o.Type)
	if err != nil {
		return entities.Order{}, err
	}
	o.Number = number
	o.ID = entities.FormatOrderID(number, o.Type)

	unique, err := u.validator.IsUnique(ctx, o.ID)
	if err != nil {
		return entities.Order{}, fmt.Errorf("check order id %s: %w", o.ID, err)
	}
	if !unique {
		u.conflict(o)
		return entities.Order{}, fmt.Errorf("%w: %s", entities.ErrOrderIDConflict, o.ID)
	}

	now := u.now().UTC()
	o.CreatedAt = now
	o.UpdatedAt = now

	created, err := u.orders.Create(ctx, o)
	if err != nil {
		if errors.Is(err, entities.ErrOrderIDConflict) {
			u.conflict(o)
		} else {
			u.logger.Error("order write failed after allocation",
				zap.String("order_id", o.ID),
				zap.Int64("numero", o.Number),
				zap.String("user_id", userID),
				zap.Error(err),
			)
		}
		return entities.Order{}, err
	}

	u.metrics.IncOrderCreated(created.Type)
	u.logger.Info("order created",
		zap.String("order_id", created.ID),
		zap.String("tipo", string(created.Type)),
		zap.String("user_id", userID),
	)
	return created, nil
}

func (u *OrderUseCase) conflict(o entities.Order) {
	u.metrics.IncOrderIDConflict(o.Type)
	u.logger.Error("order id conflict: sequence counter is behind stored orders",
		zap.String("order_id", o.ID),
		zap.String("tipo", string(o.Type)),
		zap.Int64("numero", o.Number),
	)
}

func (u *OrderUseCase) ownedClient(ctx context.Context, userID, clientID string) (entities.Client, error) {
	c, err := u.clients.GetByID(ctx, clientID)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	if c.UserID != userID {
		return entities.Client{}, entities.ErrOwnershipViolation
	}
	return c, nil
}

func (u *OrderUseCase) GetOrder(ctx context.Context, userID, id string) (entities.Order, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Order{}, ErrInvalidUserID
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	if o.UserID != userID {
		return entities.Order{}, entities.ErrOwnershipViolation
	}
	return o, nil
}

func (u *OrderUseCase) ListOrders(ctx context.Context, userID string, f OrderFilter) (OrderPage, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return OrderPage{}, ErrInvalidUserID
	}
	if f.Type != "" && !f.Type.Valid() {
		return OrderPage{}, fmt.Errorf("%w: %q", entities.ErrInvalidOrderType, f.Type)
	}
	page, size, err := normalizePage(f.Page, f.PageSize)
	if err != nil {
		return OrderPage{}, err
	}

	all, err := u.orders.ListByUser(ctx, userID)
	if err != nil {
		return OrderPage{}, err
	}

	matched := make([]entities.Order, 0, len(all))
	search := strings.ToLower(strings.TrimSpace(f.Search))
	clientID := strings.TrimSpace(f.ClientID)
	for _, o := range all {
		if f.Type != "" && o.Type != f.Type {
			continue
		}
		if clientID != "" && o.Client.ID != clientID {
			continue
		}
		if search != "" && !matchesSearch(o, search) {
			continue
		}
		matched = append(matched, o)
	}

	out := OrderPage{Items: []entities.Order{}, Total: len(matched), Page: page, PageSize: size}
	// compared in pages so a huge page number cannot overflow the offset
	if pages := (len(matched) + size - 1) / size; page <= pages {
		start := (page - 1) * size
		out.Items = matched[start:min(start+size, len(matched))]
	}
	return out, nil
}

// normalizePage applies the paging defaults: a zero page means the first one,
// a zero size means DefaultPageSize and sizes above MaxPageSize are capped.
// Negative values are rejected with ErrInvalidPage.
func normalizePage(page, size int) (int, int, error) {
	if page < 0 || size < 0 {
		return 0, 0, ErrInvalidPage
	}
	if page == 0 {
		page = 1
	}
	if size == 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return page, size, nil
}

func matchesSearch(o entities.Order, term string) bool {
	for _, field := range []string{
		o.ID,
		o.Client.Name,
		o.Client.NationalID,
		o.Device.Brand,
		o.Device.Model,
		o.Device.Serial,
	} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

func (u *OrderUseCase) Stats(ctx context.Context, userID string) (OrderStats, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return OrderStats{}, ErrInvalidUserID
	}
	orders, err := u.orders.ListByUser(ctx, userID)
	if err != nil {
		return OrderStats{}, err
	}
	return SummarizeOrders(orders), nil
}

func (u *OrderUseCase) UpdateOrderDetails(ctx context.Context, userID string, o entities.Order) (entities.Order, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Order{}, ErrInvalidUserID
	}
	o.ID = strings.TrimSpace(o.ID)
	if o.ID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	if err := o.Validate(); err != nil {
		return entities.Order{}, err
	}

	updated, err := u.orders.UpdateDetails(ctx, userID, o)
	if err != nil {
		if errors.Is(err, entities.ErrNotFound) {
			return entities.Order{}, ErrOrderNotFound
		}
		return entities.Order{}, err
	}
	return updated, nil
}

func (u *OrderUseCase) DeleteOrder(ctx context.Context, userID, id string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ErrInvalidUserID
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidOrderID
	}

	if err := u.orders.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, entities.ErrNotFound) {
			return ErrOrderNotFound
		}
		return err
	}
	u.logger.Info("order deleted", zap.String("order_id", id), zap.String("user_id", userID))
	return nil
}

// Sequences reports the last number issued for each category.
func (u *OrderUseCase) Sequences(ctx context.Context) ([]entities.OrderSequence, error) {
	out := make([]entities.OrderSequence, 0, len(entities.OrderTypes()))
	for _, t := range entities.OrderTypes() {
		s, err := u.sequence.Current(ctx, t)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
