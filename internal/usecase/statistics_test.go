package usecase

import (
	"testing"

	"tecnicontrol/internal/domain/entities"
)

func TestSummarizeOrders_Empty(t *testing.T) {
	s := SummarizeOrders(nil)
	if s.Total != 0 || s.Completed != 0 || s.Pending != 0 || s.PartsUsed != 0 {
		t.Fatalf("expected zero stats, got %+v", s)
	}
	for _, typ := range entities.OrderTypes() {
		n, ok := s.ByType[typ]
		if !ok || n != 0 {
			t.Fatalf("expected zero entry for %s, got %d (present=%v)", typ, n, ok)
		}
	}
}

func TestSummarizeOrders(t *testing.T) {
	orders := []entities.Order{
		{Type: entities.OrderTypeMantenimiento, Mantenimiento: &entities.MaintenanceDetails{
			PartsUsed: []entities.PartUsage{{Part: "cadena", Quantity: 2}, {Part: "filtro", Quantity: 1}},
		}},
		{Type: entities.OrderTypeMantenimiento, Mantenimiento: &entities.MaintenanceDetails{
			PartsUsed: []entities.PartUsage{{Part: "bujia", Quantity: -3}},
		}},
		{Type: entities.OrderTypeEntrega, Entrega: &entities.DeliveryDetails{ClientValidated: true}},
		{Type: entities.OrderTypeEntrega, Entrega: &entities.DeliveryDetails{ClientValidated: false}},
		{Type: entities.OrderTypeDiagnostico, Diagnostico: &entities.DiagnosticDetails{}},
		{Type: entities.OrderTypeGarantia, Garantia: &entities.WarrantyDetails{}},
	}

	s := SummarizeOrders(orders)
	if s.Total != 6 {
		t.Fatalf("expected total 6, got %d", s.Total)
	}
	if s.Completed != 1 || s.Pending != 5 {
		t.Fatalf("expected 1 completed and 5 pending, got %d and %d", s.Completed, s.Pending)
	}
	if s.PartsUsed != 3 {
		t.Fatalf("expected 3 parts used, got %d", s.PartsUsed)
	}
	if s.ByType[entities.OrderTypeMantenimiento] != 2 || s.ByType[entities.OrderTypeEntrega] != 2 {
		t.Fatalf("unexpected per-type counts: %v", s.ByType)
	}
	if s.Invalid != 0 {
		t.Fatalf("expected no invalid orders, got %d", s.Invalid)
	}
}

func TestSummarizeOrders_MalformedCountsAsPending(t *testing.T) {
	orders := []entities.Order{
		// entrega flagged as validated but stored with the wrong details
		{Type: entities.OrderTypeEntrega, Garantia: &entities.WarrantyDetails{}},
		{Type: "reparacion"},
	}

	s := SummarizeOrders(orders)
	if s.Total != 2 || s.Pending != 2 || s.Completed != 0 {
		t.Fatalf("unexpected stats: %+v", s)
	}
	if s.Invalid != 2 {
		t.Fatalf("expected 2 invalid, got %d", s.Invalid)
	}
	if s.ByType[entities.OrderTypeEntrega] != 1 {
		t.Fatalf("expected entrega count 1, got %d", s.ByType[entities.OrderTypeEntrega])
	}
	if _, ok := s.ByType["reparacion"]; ok {
		t.Fatalf("unknown type must not get an entry")
	}
}
