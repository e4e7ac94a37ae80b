package entities

import (
	"strings"
	"time"
)

const DefaultBusinessName = "Mi Negocio"

// Negocio is the business profile of a tenant. There is one per user, keyed by
// the user id, created lazily from the authenticated identity.
type Negocio struct {
	UserID    string    `json:"user_id"`
	Name      string    `json:"nombre"`
	OwnerName string    `json:"propietario"`
	Email     string    `json:"email"`
	Phone     string    `json:"telefono"`
	Address   string    `json:"direccion"`
	TaxID     string    `json:"ruc"`
	CreatedAt time.Time `json:"fecha_creacion"`
	UpdatedAt time.Time `json:"fecha_actualizacion"`
}

// DefaultNegocio seeds a profile from the identity that first accesses it.
func DefaultNegocio(id Identity, now time.Time) Negocio {
	name := strings.TrimSpace(id.Name)
	business := DefaultBusinessName
	if name != "" {
		business = name
	}
	return Negocio{
		UserID:    id.UID,
		Name:      business,
		OwnerName: name,
		Email:     strings.TrimSpace(id.Email),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

type NegocioUpdate struct {
	Name      *string
	OwnerName *string
	Email     *string
	Phone     *string
	Address   *string
	TaxID     *string
}

func (u NegocioUpdate) Empty() bool {
	return u.Name == nil && u.OwnerName == nil && u.Email == nil &&
		u.Phone == nil && u.Address == nil && u.TaxID == nil
}
