package metrics

import (
	"tecnicontrol/internal/domain/entities"
	"tecnicontrol/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "tecnicontrol"

// OrderMetrics records order numbering and data access events.
type OrderMetrics struct {
	allocations  *prometheus.CounterVec
	conflicts    *prometheus.CounterVec
	created      *prometheus.CounterVec
	queryFailure *prometheus.CounterVec
}

var _ interfaces.IOrderMetrics = (*OrderMetrics)(nil)

// NewOrderMetrics registers the collectors on registerer. A nil registerer
// means the default one.
func NewOrderMetrics(registerer prometheus.Registerer) *OrderMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	m := &OrderMetrics{
		allocations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sequence_allocations_total",
			Help:      "Order number allocation attempts by order type and outcome.",
		}, []string{"tipo", "outcome"}),
		conflicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_id_conflicts_total",
			Help:      "Allocated order IDs that were already in use.",
		}, []string{"tipo"}),
		created: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_created_total",
			Help:      "Orders stored by order type.",
		}, []string{"tipo"}),
		queryFailure: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "query_failures_total",
			Help:      "Failed tenant-scoped list queries by collection.",
		}, []string{"collection"}),
	}

	registerer.MustRegister(m.allocations, m.conflicts, m.created, m.queryFailure)

	// pre-create series so dashboards show zeros before the first event
	for _, t := range entities.OrderTypes() {
		for _, outcome := range []string{
			interfaces.AllocationOutcomeSuccess,
			interfaces.AllocationOutcomeFailure,
			interfaces.AllocationOutcomeRetry,
		} {
			m.allocations.WithLabelValues(string(t), outcome)
		}
		m.conflicts.WithLabelValues(string(t))
		m.created.WithLabelValues(string(t))
	}
	return m
}

func (m *OrderMetrics) ObserveAllocation(t entities.OrderType, outcome string) {
	m.allocations.WithLabelValues(string(t), outcome).Inc()
}

func (m *OrderMetrics) IncOrderIDConflict(t entities.OrderType) {
	m.conflicts.WithLabelValues(string(t)).Inc()
}

func (m *OrderMetrics) IncOrderCreated(t entities.OrderType) {
	m.created.WithLabelValues(string(t)).Inc()
}

func (m *OrderMetrics) IncQueryFailure(collection string) {
	m.queryFailure.WithLabelValues(collection).Inc()
}
