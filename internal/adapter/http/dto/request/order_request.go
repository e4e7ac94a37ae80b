package request

import (
	"strings"

	"tecnicontrol/internal/domain/entities"
	"tecnicontrol/internal/usecase"
)

// OrderCreateRequest opens an order for one of the caller's clients. Exactly
// the details block matching tipo must be sent.
type OrderCreateRequest struct {
	ClienteID string `json:"cliente_id" binding:"required"`
	EquipoID  string `json:"equipo_id" binding:"required"`
	Tipo      string `json:"tipo" binding:"required,order_type"`

	Garantia      *entities.WarrantyDetails    `json:"garantia,omitempty"`
	Mantenimiento *entities.MaintenanceDetails `json:"mantenimiento,omitempty"`
	Diagnostico   *entities.DiagnosticDetails  `json:"diagnostico,omitempty"`
	Entrega       *entities.DeliveryDetails    `json:"entrega,omitempty"`
}

func (r OrderCreateRequest) ToCommand(userID string) usecase.CreateOrderCommand {
	return usecase.CreateOrderCommand{
		UserID:        userID,
		ClientID:      strings.TrimSpace(r.ClienteID),
		DeviceID:      strings.TrimSpace(r.EquipoID),
		Type:          normalizeOrderType(r.Tipo),
		Garantia:      r.Garantia,
		Mantenimiento: r.Mantenimiento,
		Diagnostico:   r.Diagnostico,
		Entrega:       r.Entrega,
	}
}

// OrderDetailsUpdateRequest replaces the details of an order. The type cannot
// change, so tipo must repeat the order's current type.
type OrderDetailsUpdateRequest struct {
	Tipo string `json:"tipo" binding:"required,order_type"`

	Garantia      *entities.WarrantyDetails    `json:"garantia,omitempty"`
	Mantenimiento *entities.MaintenanceDetails `json:"mantenimiento,omitempty"`
	Diagnostico   *entities.DiagnosticDetails  `json:"diagnostico,omitempty"`
	Entrega       *entities.DeliveryDetails    `json:"entrega,omitempty"`
}

func (r OrderDetailsUpdateRequest) ToOrder(id string) entities.Order {
	return entities.Order{
		ID:            strings.TrimSpace(id),
		Type:          normalizeOrderType(r.Tipo),
		Garantia:      r.Garantia,
		Mantenimiento: r.Mantenimiento,
		Diagnostico:   r.Diagnostico,
		Entrega:       r.Entrega,
	}
}

// OrderListQuery is bound from the query string of GET /ordenes.
type OrderListQuery struct {
	Tipo      string `form:"tipo" binding:"omitempty,order_type"`
	ClienteID string `form:"cliente_id"`
	Q         string `form:"q"`
	Page      int    `form:"page" binding:"omitempty,min=1,max=100000"`
	PageSize  int    `form:"page_size" binding:"omitempty,min=1"`
}

func (q OrderListQuery) ToFilter() usecase.OrderFilter {
	return usecase.OrderFilter{
		Type:     normalizeOrderType(q.Tipo),
		ClientID: strings.TrimSpace(q.ClienteID),
		Search:   strings.TrimSpace(q.Q),
		Page:     q.Page,
		PageSize: q.PageSize,
	}
}

func normalizeOrderType(s string) entities.OrderType {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	t, err := entities.ParseOrderType(s)
	if err != nil {
		// left as sent so the use case reports it
		return entities.OrderType(s)
	}
	return t
}
