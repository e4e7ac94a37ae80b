package response

import (
	"time"

	"tecnicontrol/internal/domain/entities"
	"tecnicontrol/internal/usecase"
)

const (
	EstadoPendiente  = "pendiente"
	EstadoCompletada = "completada"
)

type OrderResponse struct {
	ID                 string                  `json:"id"`
	Numero             int64                   `json:"numero"`
	Tipo               string                  `json:"tipo"`
	Estado             string                  `json:"estado"`
	Cliente            entities.ClientSnapshot `json:"cliente"`
	Equipo             entities.Device         `json:"equipo"`
	FechaCreacion      time.Time               `json:"fecha_creacion"`
	FechaActualizacion time.Time               `json:"fecha_actualizacion"`

	Garantia      *entities.WarrantyDetails    `json:"garantia,omitempty"`
	Mantenimiento *entities.MaintenanceDetails `json:"mantenimiento,omitempty"`
	Diagnostico   *entities.DiagnosticDetails  `json:"diagnostico,omitempty"`
	Entrega       *entities.DeliveryDetails    `json:"entrega,omitempty"`
}

// orderDetails copies only the details of the order's own type.
type orderDetails struct {
	res *OrderResponse
}

var _ entities.OrderVisitor = orderDetails{}

func (v orderDetails) VisitGarantia(_ entities.Order, d *entities.WarrantyDetails) {
	v.res.Garantia = d
}

func (v orderDetails) VisitMantenimiento(_ entities.Order, d *entities.MaintenanceDetails) {
	v.res.Mantenimiento = d
}

func (v orderDetails) VisitDiagnostico(_ entities.Order, d *entities.DiagnosticDetails) {
	v.res.Diagnostico = d
}

func (v orderDetails) VisitEntrega(_ entities.Order, d *entities.DeliveryDetails) {
	v.res.Entrega = d
}

// FromOrder maps an order. A stored order that breaks the union invariant is
// returned without details.
func FromOrder(o entities.Order) OrderResponse {
	res := OrderResponse{
		ID:                 o.ID,
		Numero:             o.Number,
		Tipo:               string(o.Type),
		Estado:             EstadoPendiente,
		Cliente:            o.Client,
		Equipo:             o.Device,
		FechaCreacion:      o.CreatedAt,
		FechaActualizacion: o.UpdatedAt,
	}
	if o.Completed() {
		res.Estado = EstadoCompletada
	}
	_ = o.Accept(orderDetails{res: &res})
	return res
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}

type OrderPageResponse struct {
	Items      []OrderResponse `json:"items"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	TotalPages int             `json:"total_pages"`
}

func FromOrderPage(p usecase.OrderPage) OrderPageResponse {
	pages := 0
	if p.PageSize > 0 {
		pages = (p.Total + p.PageSize - 1) / p.PageSize
	}
	return OrderPageResponse{
		Items:      FromOrders(p.Items),
		Total:      p.Total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: pages,
	}
}

type SequenceResponse struct {
	Tipo         string `json:"tipo"`
	UltimoNumero int64  `json:"ultimo_numero"`
	UltimoID     string `json:"ultimo_id,omitempty"`
}

func FromSequences(seqs []entities.OrderSequence) []SequenceResponse {
	out := make([]SequenceResponse, 0, len(seqs))
	for _, s := range seqs {
		r := SequenceResponse{Tipo: string(s.Type), UltimoNumero: s.LastNumber}
		if s.LastNumber > 0 {
			r.UltimoID = entities.FormatOrderID(s.LastNumber, s.Type)
		}
		out = append(out, r)
	}
	return out
}

type StatsResponse struct {
	Total               int            `json:"total"`
	PorTipo             map[string]int `json:"por_tipo"`
	Completadas         int            `json:"completadas"`
	Pendientes          int            `json:"pendientes"`
	RepuestosUtilizados int            `json:"repuestos_utilizados"`
	Invalidas           int            `json:"invalidas,omitempty"`
}

func FromStats(s usecase.OrderStats) StatsResponse {
	byType := make(map[string]int, len(s.ByType))
	for t, n := range s.ByType {
		byType[string(t)] = n
	}
	return StatsResponse{
		Total:               s.Total,
		PorTipo:             byType,
		Completadas:         s.Completed,
		Pendientes:          s.Pending,
		RepuestosUtilizados: s.PartsUsed,
		Invalidas:           s.Invalid,
	}
}
