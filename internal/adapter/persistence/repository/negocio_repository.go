package repository

import (
	"context"
	"fmt"
	"time"

	"tecnicontrol/internal/domain/entities"
	"tecnicontrol/internal/usecase/interfaces"

	"go.uber.org/zap"
)

type negocioItem struct {
	ID        string `dynamodbav:"id"`
	UserID    string `dynamodbav:"userId"`
	Name      string `dynamodbav:"nombre"`
	OwnerName string `dynamodbav:"propietario"`
	Email     string `dynamodbav:"email"`
	Phone     string `dynamodbav:"telefono"`
	Address   string `dynamodbav:"direccion"`
	TaxID     string `dynamodbav:"ruc"`
	CreatedAt string `dynamodbav:"fechaCreacion"`
	UpdatedAt string `dynamodbav:"fechaActualizacion"`
}

// NegocioRepository persists the business profile of each user under
// negocios/{userId}.

type NegocioRepository struct {
	store  interfaces.IDocumentStore
	logger *zap.Logger
	now    func() time.Time
}

var _ interfaces.INegocioRepository = (*NegocioRepository)(nil)

func NewNegocioRepository(store interfaces.IDocumentStore, logger *zap.Logger) *NegocioRepository {
	return &NegocioRepository{store: store, logger: orNop(logger), now: time.Now}
}

func (r *NegocioRepository) Get(ctx context.Context, userID string) (entities.Negocio, bool, error) {
	var it negocioItem
	found, err := r.store.Get(ctx, CollectionNegocios, userID, &it)
	if err != nil {
		return entities.Negocio{}, false, readError("get", CollectionNegocios, userID, err)
	}
	if !found {
		return entities.Negocio{}, false, nil
	}
	return fromNegocioItem(it), true, nil
}

// GetOrCreate returns the caller's profile, creating it from the identity the
// first time it is read.
func (r *NegocioRepository) GetOrCreate(ctx context.Context, id entities.Identity) (entities.Negocio, error) {
	if id.UID == "" {
		return entities.Negocio{}, fmt.Errorf("%w: missing user id", entities.ErrNotFound)
	}
	var result negocioItem
	created := false
	err := r.store.RunTransaction(ctx, func(ctx context.Context, tx interfaces.ITransaction) error {
		var it negocioItem
		found, err := tx.Get(ctx, CollectionNegocios, id.UID, &it)
		if err != nil {
			return err
		}
		if found {
			result, created = it, false
			return nil
		}
		result, created = toNegocioItem(entities.DefaultNegocio(id, r.now().UTC())), true
		return tx.Set(CollectionNegocios, id.UID, result)
	})
	if err != nil {
		return entities.Negocio{}, writeError("get or create", CollectionNegocios, id.UID, err)
	}
	if created {
		r.logger.Info("negocio created", zap.String("user_id", id.UID))
	}
	return fromNegocioItem(result), nil
}

func (r *NegocioRepository) Update(ctx context.Context, userID string, u entities.NegocioUpdate) (entities.Negocio, error) {
	var result negocioItem
	err := r.store.RunTransaction(ctx, func(ctx context.Context, tx interfaces.ITransaction) error {
		var it negocioItem
		found, err := tx.Get(ctx, CollectionNegocios, userID, &it)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("%s/%s: %w", CollectionNegocios, userID, entities.ErrNotFound)
		}
		applyNegocioUpdate(&it, u)
		it.UserID = userID
		it.UpdatedAt = formatTime(r.now())
		result = it
		return tx.Set(CollectionNegocios, userID, it)
	})
	if err != nil {
		return entities.Negocio{}, writeError("update", CollectionNegocios, userID, err)
	}
	return fromNegocioItem(result), nil
}

func applyNegocioUpdate(it *negocioItem, u entities.NegocioUpdate) {
	if u.Name != nil {
		it.Name = *u.Name
	}
	if u.OwnerName != nil {
		it.OwnerName = *u.OwnerName
	}
	if u.Email != nil {
		it.Email = *u.Email
	}
	if u.Phone != nil {
		it.Phone = *u.Phone
	}
	if u.Address != nil {
		it.Address = *u.Address
	}
	if u.TaxID != nil {
		it.TaxID = *u.TaxID
	}
}

func toNegocioItem(n entities.Negocio) negocioItem {
	return negocioItem{
		ID:        n.UserID,
		UserID:    n.UserID,
		Name:      n.Name,
		OwnerName: n.OwnerName,
		Email:     n.Email,
		Phone:     n.Phone,
		Address:   n.Address,
		TaxID:     n.TaxID,
		CreatedAt: formatTime(n.CreatedAt),
		UpdatedAt: formatTime(n.UpdatedAt),
	}
}

func fromNegocioItem(it negocioItem) entities.Negocio {
	return entities.Negocio{
		UserID:    it.UserID,
		Name:      it.Name,
		OwnerName: it.OwnerName,
		Email:     it.Email,
		Phone:     it.Phone,
		Address:   it.Address,
		TaxID:     it.TaxID,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
