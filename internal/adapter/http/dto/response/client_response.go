package response

import (
	"time"

	"tecnicontrol/internal/domain/entities"
)

type DeviceResponse struct {
	ID            string `json:"id"`
	Tipo          string `json:"tipo"`
	Marca         string `json:"marca"`
	Modelo        string `json:"modelo"`
	Serie         string `json:"serie"`
	Observaciones string `json:"observaciones,omitempty"`
}

type ClientResponse struct {
	ID                 string           `json:"id"`
	Nombre             string           `json:"nombre"`
	Cedula             string           `json:"cedula"`
	Email              string           `json:"email"`
	Telefono           string           `json:"telefono"`
	Direccion          string           `json:"direccion"`
	Equipos            []DeviceResponse `json:"equipos"`
	FechaCreacion      time.Time        `json:"fecha_creacion"`
	FechaActualizacion time.Time        `json:"fecha_actualizacion"`
}

func FromClient(c entities.Client) ClientResponse {
	devices := make([]DeviceResponse, 0, len(c.Devices))
	for _, d := range c.Devices {
		devices = append(devices, DeviceResponse{
			ID:            d.ID,
			Tipo:          d.Type,
			Marca:         d.Brand,
			Modelo:        d.Model,
			Serie:         d.Serial,
			Observaciones: d.Notes,
		})
	}
	return ClientResponse{
		ID:                 c.ID,
		Nombre:             c.Name,
		Cedula:             c.NationalID,
		Email:              c.Email,
		Telefono:           c.Phone,
		Direccion:          c.Address,
		Equipos:            devices,
		FechaCreacion:      c.CreatedAt,
		FechaActualizacion: c.UpdatedAt,
	}
}

func FromClients(clients []entities.Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, FromClient(c))
	}
	return out
}
