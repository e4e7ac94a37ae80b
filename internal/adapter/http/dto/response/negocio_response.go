package response

import (
	"time"

	"tecnicontrol/internal/domain/entities"
)

type NegocioResponse struct {
	UserID             string    `json:"user_id"`
	Nombre             string    `json:"nombre"`
	Propietario        string    `json:"propietario"`
	Email              string    `json:"email"`
	Telefono           string    `json:"telefono"`
	Direccion          string    `json:"direccion"`
	RUC                string    `json:"ruc"`
	FechaCreacion      time.Time `json:"fecha_creacion"`
	FechaActualizacion time.Time `json:"fecha_actualizacion"`
}

func FromNegocio(n entities.Negocio) NegocioResponse {
	return NegocioResponse{
		UserID:             n.UserID,
		Nombre:             n.Name,
		Propietario:        n.OwnerName,
		Email:              n.Email,
		Telefono:           n.Phone,
		Direccion:          n.Address,
		RUC:                n.TaxID,
		FechaCreacion:      n.CreatedAt,
		FechaActualizacion: n.UpdatedAt,
	}
}

type ContadorResponse struct {
	Siguiente          int64      `json:"siguiente"`
	UltimaOrden        int64      `json:"ultima_orden"`
	FechaActualizacion *time.Time `json:"fecha_actualizacion,omitempty"`
}

func FromContador(c entities.Contador) ContadorResponse {
	res := ContadorResponse{Siguiente: c.Next, UltimaOrden: c.LastOrder}
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		res.FechaActualizacion = &t
	}
	return res
}

type NextNumberResponse struct {
	Numero   int64            `json:"numero"`
	Contador ContadorResponse `json:"contador"`
}
