package repository

import (
	"context"
	"fmt"
	"time"

	"tecnicontrol/internal/domain/entities"
	"tecnicontrol/internal/usecase/interfaces"

	"go.uber.org/zap"
)

type contadorItem struct {
	ID        string `dynamodbav:"id"`
	UserID    string `dynamodbav:"userId"`
	Next      int64  `dynamodbav:"siguiente"`
	LastOrder int64  `dynamodbav:"ultimaOrden"`
	UpdatedAt string `dynamodbav:"fechaActualizacion"`
}

// ContadorRepository keeps the per-user sequence under contadores/{userId}.
// It shares the collection with the per-category order counters and refuses
// user IDs that fall in their key namespace.
type ContadorRepository struct {
	store  interfaces.IDocumentStore
	logger *zap.Logger
	now    func() time.Time
}

var _ interfaces.IContadorRepository = (*ContadorRepository)(nil)

func NewContadorRepository(store interfaces.IDocumentStore, logger *zap.Logger) *ContadorRepository {
	return &ContadorRepository{store: store, logger: orNop(logger), now: time.Now}
}

func (r *ContadorRepository) Get(ctx context.Context, userID string) (entities.Contador, bool, error) {
	if entities.IsCounterKey(userID) {
		return entities.Contador{}, false, reservedKeyError(userID)
	}
	var it contadorItem
	found, err := r.store.Get(ctx, CollectionContadores, userID, &it)
	if err != nil {
		return entities.Contador{}, false, readError("get", CollectionContadores, userID, err)
	}
	if !found {
		return entities.Contador{}, false, nil
	}
	return fromContadorItem(it), true, nil
}

// Increment issues the next number of the user's sequence. The first call
// creates the counter and issues 1.
func (r *ContadorRepository) Increment(ctx context.Context, userID string) (int64, entities.Contador, error) {
	if entities.IsCounterKey(userID) {
		r.logger.Warn("contador key collides with a category counter", zap.String("user_id", userID))
		return 0, entities.Contador{}, reservedKeyError(userID)
	}
	var (
		issued int64
		result contadorItem
	)
	err := r.store.RunTransaction(ctx, func(ctx context.Context, tx interfaces.ITransaction) error {
		var cur contadorItem
		found, err := tx.Get(ctx, CollectionContadores, userID, &cur)
		if err != nil {
			return err
		}
		issued = 1
		if found && cur.Next > 0 {
			issued = cur.Next
		}
		result = contadorItem{
			UserID:    userID,
			Next:      issued + 1,
			LastOrder: issued,
			UpdatedAt: formatTime(r.now()),
		}
		return tx.Set(CollectionContadores, userID, result)
	})
	if err != nil {
		r.logger.Error("contador increment failed", zap.String("user_id", userID), zap.Error(err))
		return 0, entities.Contador{}, fmt.Errorf("%w: contador %s: %w", entities.ErrAllocationFailure, userID, err)
	}
	result.ID = userID
	return issued, fromContadorItem(result), nil
}

func reservedKeyError(userID string) error {
	return fmt.Errorf("%w: contador %s", entities.ErrReservedKey, userID)
}

func fromContadorItem(it contadorItem) entities.Contador {
	return entities.Contador{
		UserID:    it.UserID,
		Next:      it.Next,
		LastOrder: it.LastOrder,
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
