package entities

import (
	"fmt"
	"strings"
)

// OrderType is the service order category (tipo). It is the discriminant of the
// Order tagged union and selects the sequence counter used to number the order.

type OrderType string

const (
	OrderTypeGarantia      OrderType = "garantia"
	OrderTypeMantenimiento OrderType = "mantenimiento"
	OrderTypeDiagnostico   OrderType = "diagnostico"
	OrderTypeEntrega       OrderType = "entrega"
)

var orderTypePrefixes = map[OrderType]string{
	OrderTypeMantenimiento: "OMAN",
	OrderTypeDiagnostico:   "ODIA",
	OrderTypeGarantia:      "OGAR",
	OrderTypeEntrega:       "OENT",
}

// OrderTypes returns every known order type in a stable order.
func OrderTypes() []OrderType {
	return []OrderType{
		OrderTypeGarantia,
		OrderTypeMantenimiento,
		OrderTypeDiagnostico,
		OrderTypeEntrega,
	}
}

func ParseOrderType(s string) (OrderType, error) {
	t := OrderType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidOrderType, s)
	}
	return t, nil
}

func (t OrderType) Valid() bool {
	_, ok := orderTypePrefixes[t]
	return ok
}

// Prefix is the four-letter display ID prefix, empty for unknown types.
func (t OrderType) Prefix() string {
	return orderTypePrefixes[t]
}

const counterKeyPrefix = "ordenes"

// CounterKey is the key of the category counter document, e.g. "ordenesMantenimiento".
func (t OrderType) CounterKey() string {
	s := string(t)
	if s == "" {
		return counterKeyPrefix
	}
	return counterKeyPrefix + strings.ToUpper(s[:1]) + s[1:]
}

// IsCounterKey reports whether key falls in the namespace of the category
// counters. Per-user counters share their collection and must never use one.
func IsCounterKey(key string) bool {
	return len(key) >= len(counterKeyPrefix) && strings.EqualFold(key[:len(counterKeyPrefix)], counterKeyPrefix)
}

// FormatOrderID renders the display ID of an order: the type prefix followed by
// the sequence number left-padded with zeros to three digits. Numbers wider than
// three digits are rendered in full.
func FormatOrderID(number int64, t OrderType) string {
	return fmt.Sprintf("%s%03d", t.Prefix(), number)
}
