package request

import (
	"tecnicontrol/internal/domain/entities"

	"github.com/go-playground/validator/v10"
)

// RegisterValidations adds the custom binding tags used by the request DTOs.
func RegisterValidations(v *validator.Validate) error {
	return v.RegisterValidation("order_type", isOrderType)
}

// isOrderType accepts the known order types, ignoring case and surrounding
// spaces.
func isOrderType(fl validator.FieldLevel) bool {
	_, err := entities.ParseOrderType(fl.Field().String())
	return err == nil
}
