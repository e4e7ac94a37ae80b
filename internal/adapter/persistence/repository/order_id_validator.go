package repository

import (
	"context"

	"tecnicontrol/internal/usecase/interfaces"
)

// OrderIDValidator checks display IDs against the keys of ordenes.
type OrderIDValidator struct {
	store interfaces.IDocumentStore
}

var _ interfaces.IOrderIDValidator = (*OrderIDValidator)(nil)

func NewOrderIDValidator(store interfaces.IDocumentStore) *OrderIDValidator {
	return &OrderIDValidator{store: store}
}

// IsUnique reports whether no order is stored under id.
func (v *OrderIDValidator) IsUnique(ctx context.Context, id string) (bool, error) {
	found, err := v.store.Get(ctx, CollectionOrdenes, id, nil)
	if err != nil {
		return false, readError("get", CollectionOrdenes, id, err)
	}
	return !found, nil
}
