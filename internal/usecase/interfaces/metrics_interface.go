package interfaces

import "tecnicontrol/internal/domain/entities"

const (
	AllocationOutcomeSuccess = "success"
	AllocationOutcomeFailure = "failure"
	AllocationOutcomeRetry   = "retry"
)

// IOrderMetrics records numbering and data access events.
type IOrderMetrics interface {
	ObserveAllocation(t entities.OrderType, outcome string)
	IncOrderIDConflict(t entities.OrderType)
	IncOrderCreated(t entities.OrderType)
	IncQueryFailure(collection string)
}
