package repository

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"tecnicontrol/internal/adapter/persistence/docstore"
	"tecnicontrol/internal/domain/entities"
	"tecnicontrol/internal/usecase/interfaces"
)

// flakyStore fails the first failures transactions and every query when
// failQuery is set.
type flakyStore struct {
	interfaces.IDocumentStore
	failures  int32
	calls     int32
	failQuery bool
}

var errUnavailable = errors.New("store unavailable")

func (s *flakyStore) RunTransaction(ctx context.Context, fn func(ctx context.Context, tx interfaces.ITransaction) error) error {
	n := atomic.AddInt32(&s.calls, 1)
	if n <= atomic.LoadInt32(&s.failures) {
		return errUnavailable
	}
	return s.IDocumentStore.RunTransaction(ctx, fn)
}

func (s *flakyStore) Query(ctx context.Context, collection string, q interfaces.Query, out any) error {
	if s.failQuery {
		return errUnavailable
	}
	return s.IDocumentStore.Query(ctx, collection, q, out)
}

type recordingMetrics struct {
	mu          sync.Mutex
	allocations map[string]int
	conflicts   int
	created     int
	queryFails  map[string]int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{allocations: map[string]int{}, queryFails: map[string]int{}}
}

func (m *recordingMetrics) ObserveAllocation(_ entities.OrderType, outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.allocations[outcome]++
}

func (m *recordingMetrics) IncOrderIDConflict(entities.OrderType) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.conflicts++
}

func (m *recordingMetrics) IncOrderCreated(entities.OrderType) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.created++
}

func (m *recordingMetrics) IncQueryFailure(collection string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queryFails[collection]++
}

func fastRetry() RetryPolicy {
	return RetryPolicy{MaxRetries: 2, InitialInterval: time.Millisecond, MaxInterval: 2 * time.Millisecond}
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newStore() *docstore.MemoryStore {
	return docstore.NewMemoryStore()
}

func maintenanceOrder(id, userID string, n int64) entities.Order {
	return entities.Order{
		ID:     id,
		UserID: userID,
		Number: n,
		Type:   entities.OrderTypeMantenimiento,
		Client: entities.ClientSnapshot{ID: "c-1", Name: "Ana"},
		Device: entities.Device{ID: "d-1", Brand: "Bosch"},
		Mantenimiento: &entities.MaintenanceDetails{
			Tasks:     []string{"limpieza"},
			PartsUsed: []entities.PartUsage{{Part: "filtro", Quantity: 2}},
		},
	}
}
