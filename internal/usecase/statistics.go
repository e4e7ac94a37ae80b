package usecase

import "tecnicontrol/internal/domain/entities"

// OrderStats summarizes a user's orders.
//
// An order is completed only when it is a delivery the client validated;
// every other order is pending, including orders whose details do not match
// their type. Those are also counted in Invalid.
type OrderStats struct {
	Total     int                        `json:"total"`
	ByType    map[entities.OrderType]int `json:"por_tipo"`
	Completed int                        `json:"completadas"`
	Pending   int                        `json:"pendientes"`
	PartsUsed int                        `json:"repuestos_utilizados"`
	Invalid   int                        `json:"invalidas,omitempty"`
}

// SummarizeOrders is pure: it only reads orders.
func SummarizeOrders(orders []entities.Order) OrderStats {
	v := &statsVisitor{stats: OrderStats{ByType: make(map[entities.OrderType]int, len(entities.OrderTypes()))}}
	for _, t := range entities.OrderTypes() {
		v.stats.ByType[t] = 0
	}
	for _, o := range orders {
		if err := o.Accept(v); err != nil {
			v.stats.Invalid++
			v.count(o, false)
		}
	}
	return v.stats
}

type statsVisitor struct {
	stats OrderStats
}

var _ entities.OrderVisitor = (*statsVisitor)(nil)

func (v *statsVisitor) count(o entities.Order, completed bool) {
	v.stats.Total++
	if o.Type.Valid() {
		v.stats.ByType[o.Type]++
	}
	if completed {
		v.stats.Completed++
	} else {
		v.stats.Pending++
	}
}

func (v *statsVisitor) VisitGarantia(o entities.Order, _ *entities.WarrantyDetails) {
	v.count(o, false)
}

func (v *statsVisitor) VisitMantenimiento(o entities.Order, d *entities.MaintenanceDetails) {
	v.count(o, false)
	for _, p := range d.PartsUsed {
		if p.Quantity > 0 {
			v.stats.PartsUsed += p.Quantity
		}
	}
}

func (v *statsVisitor) VisitDiagnostico(o entities.Order, _ *entities.DiagnosticDetails) {
	v.count(o, false)
}

func (v *statsVisitor) VisitEntrega(o entities.Order, d *entities.DeliveryDetails) {
	v.count(o, d.ClientValidated)
}
