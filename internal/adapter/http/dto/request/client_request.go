package request

import "tecnicontrol/internal/domain/entities"

type DeviceRequest struct {
	ID            string `json:"id"`
	Tipo          string `json:"tipo"`
	Marca         string `json:"marca"`
	Modelo        string `json:"modelo"`
	Serie         string `json:"serie"`
	Observaciones string `json:"observaciones"`
}

func (r DeviceRequest) ToDevice() entities.Device {
	return entities.Device{
		ID:     r.ID,
		Type:   r.Tipo,
		Brand:  r.Marca,
		Model:  r.Modelo,
		Serial: r.Serie,
		Notes:  r.Observaciones,
	}
}

type ClientCreateRequest struct {
	Nombre    string          `json:"nombre" binding:"required"`
	Cedula    string          `json:"cedula"`
	Email     string          `json:"email" binding:"omitempty,email"`
	Telefono  string          `json:"telefono"`
	Direccion string          `json:"direccion"`
	Equipos   []DeviceRequest `json:"equipos" binding:"omitempty,dive"`
}

func (r ClientCreateRequest) Devices() []entities.Device {
	return toDevices(r.Equipos)
}

// ClientUpdateRequest is a partial update: absent fields keep their value.
// equipos, when present, replaces the whole device list.
type ClientUpdateRequest struct {
	Nombre    *string          `json:"nombre"`
	Cedula    *string          `json:"cedula"`
	Email     *string          `json:"email" binding:"omitempty,email"`
	Telefono  *string          `json:"telefono"`
	Direccion *string          `json:"direccion"`
	Equipos   *[]DeviceRequest `json:"equipos"`
}

func (r ClientUpdateRequest) ToUpdate() entities.ClientUpdate {
	u := entities.ClientUpdate{
		Name:       r.Nombre,
		NationalID: r.Cedula,
		Email:      r.Email,
		Phone:      r.Telefono,
		Address:    r.Direccion,
	}
	if r.Equipos != nil {
		devices := toDevices(*r.Equipos)
		u.Devices = &devices
	}
	return u
}

func toDevices(in []DeviceRequest) []entities.Device {
	out := make([]entities.Device, 0, len(in))
	for _, d := range in {
		out = append(out, d.ToDevice())
	}
	return out
}
