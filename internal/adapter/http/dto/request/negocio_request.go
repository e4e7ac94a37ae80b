package request

import "tecnicontrol/internal/domain/entities"

type NegocioUpdateRequest struct {
	Nombre      *string `json:"nombre"`
	Propietario *string `json:"propietario"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Telefono    *string `json:"telefono"`
	Direccion   *string `json:"direccion"`
	RUC         *string `json:"ruc"`
}

func (r NegocioUpdateRequest) ToUpdate() entities.NegocioUpdate {
	return entities.NegocioUpdate{
		Name:      r.Nombre,
		OwnerName: r.Propietario,
		Email:     r.Email,
		Phone:     r.Telefono,
		Address:   r.Direccion,
		TaxID:     r.RUC,
	}
}
