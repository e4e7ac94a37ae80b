package entities

import (
	"errors"
	"testing"
)

func TestFormatOrderID(t *testing.T) {
	cases := []struct {
		number int64
		typ    OrderType
		want   string
	}{
		{7, OrderTypeMantenimiento, "OMAN007"},
		{1000, OrderTypeGarantia, "OGAR1000"},
		{1, OrderTypeEntrega, "OENT001"},
		{42, OrderTypeDiagnostico, "ODIA042"},
		{999, OrderTypeMantenimiento, "OMAN999"},
	}
	for _, tc := range cases {
		if got := FormatOrderID(tc.number, tc.typ); got != tc.want {
			t.Fatalf("FormatOrderID(%d, %s) = %q, want %q", tc.number, tc.typ, got, tc.want)
		}
	}
}

func TestOrderType_CounterKey(t *testing.T) {
	want := map[OrderType]string{
		OrderTypeMantenimiento: "ordenesMantenimiento",
		OrderTypeDiagnostico:   "ordenesDiagnostico",
		OrderTypeGarantia:      "ordenesGarantia",
		OrderTypeEntrega:       "ordenesEntrega",
	}
	for typ, key := range want {
		if got := typ.CounterKey(); got != key {
			t.Fatalf("expected %s, got %s", key, got)
		}
	}
}

func TestIsCounterKey(t *testing.T) {
	for _, typ := range OrderTypes() {
		if !IsCounterKey(typ.CounterKey()) {
			t.Fatalf("expected %s to be a counter key", typ.CounterKey())
		}
	}
	for _, key := range []string{"ordenes", "ORDENESmantenimiento", "ordenesFuturo"} {
		if !IsCounterKey(key) {
			t.Fatalf("expected %s to be a counter key", key)
		}
	}
	for _, key := range []string{"", "orden", "user-ana", "mis-ordenes"} {
		if IsCounterKey(key) {
			t.Fatalf("expected %s not to be a counter key", key)
		}
	}
}

func TestParseOrderType(t *testing.T) {
	got, err := ParseOrderType(" Mantenimiento ")
	if err != nil || got != OrderTypeMantenimiento {
		t.Fatalf("unexpected result: %q %v", got, err)
	}
	if _, err := ParseOrderType("reparacion"); !errors.Is(err, ErrInvalidOrderType) {
		t.Fatalf("expected ErrInvalidOrderType, got %v", err)
	}
	if len(OrderTypes()) != 4 {
		t.Fatalf("expected four order types")
	}
}
