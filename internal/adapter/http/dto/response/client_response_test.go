package response

import (
	"testing"
	"time"

	"tecnicontrol/internal/domain/entities"
)

func TestFromClient(t *testing.T) {
	now := time.Now().UTC()
	c := entities.Client{
		ID:         "c-1",
		UserID:     "u1",
		Name:       "Ana Torres",
		NationalID: "0912345678",
		Devices:    []entities.Device{{ID: "d-1", Brand: "Stihl", Serial: "SN-1"}},
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	res := FromClient(c)
	if res.ID != "c-1" || res.Nombre != "Ana Torres" || res.Cedula != "0912345678" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if len(res.Equipos) != 1 || res.Equipos[0].Marca != "Stihl" || res.Equipos[0].Serie != "SN-1" {
		t.Fatalf("unexpected devices: %+v", res.Equipos)
	}

	if got := FromClient(entities.Client{ID: "c-2"}); got.Equipos == nil {
		t.Fatalf("expected empty device list, got nil")
	}
	if got := FromClients(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty list, got %v", got)
	}
}

func TestFromNegocioAndContador(t *testing.T) {
	n := FromNegocio(entities.Negocio{UserID: "u1", Name: "Taller Ruiz", TaxID: "1790012345001"})
	if n.Nombre != "Taller Ruiz" || n.RUC != "1790012345001" {
		t.Fatalf("unexpected negocio: %+v", n)
	}

	c := FromContador(entities.Contador{UserID: "u1", Next: 1})
	if c.Siguiente != 1 || c.UltimaOrden != 0 || c.FechaActualizacion != nil {
		t.Fatalf("unexpected contador: %+v", c)
	}
	c = FromContador(entities.Contador{Next: 3, LastOrder: 2, UpdatedAt: time.Now()})
	if c.FechaActualizacion == nil {
		t.Fatalf("expected update time")
	}
}
