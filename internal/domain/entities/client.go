package entities

import "time"

// Client is a customer of the shop (cliente). Devices are embedded in the client
// document and have no lifecycle outside it.
//
// Storage model:
//   - collection: clientes
//   - key: generated id
//   - GSI userId-index: userId

type Client struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Name       string    `json:"nombre"`
	NationalID string    `json:"cedula"`
	Email      string    `json:"email"`
	Phone      string    `json:"telefono"`
	Address    string    `json:"direccion"`
	Devices    []Device  `json:"equipos"`
	CreatedAt  time.Time `json:"fecha_creacion"`
	UpdatedAt  time.Time `json:"fecha_actualizacion"`
}

// Device is a client's machine (equipo).
type Device struct {
	ID     string `json:"id" dynamodbav:"id"`
	Type   string `json:"tipo" dynamodbav:"tipo"`
	Brand  string `json:"marca" dynamodbav:"marca"`
	Model  string `json:"modelo" dynamodbav:"modelo"`
	Serial string `json:"serie" dynamodbav:"serie"`
	Notes  string `json:"observaciones,omitempty" dynamodbav:"observaciones,omitempty"`
}

// FindDevice returns the device with the given id.
func (c Client) FindDevice(id string) (Device, bool) {
	for _, d := range c.Devices {
		if d.ID == id {
			return d, true
		}
	}
	return Device{}, false
}

// Snapshot copies the client data embedded into orders.
func (c Client) Snapshot() ClientSnapshot {
	return ClientSnapshot{
		ID:         c.ID,
		Name:       c.Name,
		NationalID: c.NationalID,
		Email:      c.Email,
		Phone:      c.Phone,
		Address:    c.Address,
	}
}

// ClientUpdate carries the fields of a partial client update. Nil fields are left untouched.
type ClientUpdate struct {
	Name       *string
	NationalID *string
	Email      *string
	Phone      *string
	Address    *string
	Devices    *[]Device
}

func (u ClientUpdate) Empty() bool {
	return u.Name == nil && u.NationalID == nil && u.Email == nil &&
		u.Phone == nil && u.Address == nil && u.Devices == nil
}
