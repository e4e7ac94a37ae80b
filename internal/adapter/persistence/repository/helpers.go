package repository

import (
	"errors"
	"fmt"
	"time"

	"tecnicontrol/internal/domain/entities"
	"tecnicontrol/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const (
	CollectionOrdenes    = "ordenes"
	CollectionClientes   = "clientes"
	CollectionNegocios   = "negocios"
	CollectionContadores = "contadores"

	fieldUserID    = "userId"
	fieldCreatedAt = "fechaCreacion"
)

// Collections lists every collection the repositories use.
func Collections() []string {
	return []string{CollectionOrdenes, CollectionClientes, CollectionNegocios, CollectionContadores}
}

// IndexedFields returns the fields each collection is queried by.
func IndexedFields() map[string][]string {
	return map[string][]string{
		CollectionOrdenes:  {fieldUserID},
		CollectionClientes: {fieldUserID},
	}
}

// Timestamps are stored fixed-width in UTC so string order is time order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func orNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}

type nopMetrics struct{}

func (nopMetrics) ObserveAllocation(entities.OrderType, string) {}
func (nopMetrics) IncOrderIDConflict(entities.OrderType)        {}
func (nopMetrics) IncOrderCreated(entities.OrderType)           {}
func (nopMetrics) IncQueryFailure(string)                       {}

func orNopMetrics(m interfaces.IOrderMetrics) interfaces.IOrderMetrics {
	if m == nil {
		return nopMetrics{}
	}
	return m
}

// writeError keeps domain errors as they are and reports anything else from
// the store as a write failure.
func writeError(op, collection, key string, err error) error {
	switch {
	case errors.Is(err, entities.ErrNotFound),
		errors.Is(err, entities.ErrOwnershipViolation),
		errors.Is(err, entities.ErrInvalidOrder),
		errors.Is(err, entities.ErrInvalidOrderType),
		errors.Is(err, entities.ErrOrderIDConflict):
		return err
	}
	return fmt.Errorf("%w: %s %s/%s: %w", entities.ErrWriteFailure, op, collection, key, err)
}

func readError(op, collection, key string, err error) error {
	return fmt.Errorf("%s %s/%s: %w", op, collection, key, err)
}
