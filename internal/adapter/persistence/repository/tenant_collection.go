package repository

import (
	"context"
	"fmt"

	"tecnicontrol/internal/domain/entities"
	"tecnicontrol/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// tenantItem is implemented by the stored form of tenant-owned documents.
type tenantItem[I any] interface {
	*I
	owner() string
	restamp(userID, updatedAt string)
}

// tenantCollection holds the access rules shared by every collection whose
// documents belong to one user: lists are filtered by userId, writes check the
// stored owner before touching the document.
type tenantCollection[I any, P tenantItem[I]] struct {
	store   interfaces.IDocumentStore
	name    string
	metrics interfaces.IOrderMetrics
	logger  *zap.Logger
}

func newTenantCollection[I any, P tenantItem[I]](store interfaces.IDocumentStore, name string, metrics interfaces.IOrderMetrics, logger *zap.Logger) tenantCollection[I, P] {
	return tenantCollection[I, P]{
		store:   store,
		name:    name,
		metrics: orNopMetrics(metrics),
		logger:  orNop(logger),
	}
}

func (c tenantCollection[I, P]) get(ctx context.Context, id string) (I, bool, error) {
	var it I
	found, err := c.store.Get(ctx, c.name, id, &it)
	if err != nil {
		return it, false, readError("get", c.name, id, err)
	}
	return it, found, nil
}

// list returns the user's documents, newest first. A failed read is an error
// wrapping entities.ErrQueryFailed, never an empty list.
func (c tenantCollection[I, P]) list(ctx context.Context, userID string) ([]I, error) {
	items := []I{}
	err := c.store.Query(ctx, c.name, interfaces.Query{
		Field:     fieldUserID,
		Value:     userID,
		OrderBy:   fieldCreatedAt,
		Direction: interfaces.Descending,
	}, &items)
	if err != nil {
		c.logger.Error("tenant list query failed",
			zap.String("collection", c.name),
			zap.String("user_id", userID),
			zap.Error(err),
		)
		c.metrics.IncQueryFailure(c.name)
		return nil, fmt.Errorf("%w: list %s: %w", entities.ErrQueryFailed, c.name, err)
	}
	if items == nil {
		items = []I{}
	}
	return items, nil
}

func (c tenantCollection[I, P]) loadOwned(ctx context.Context, tx interfaces.ITransaction, userID, id string) (I, error) {
	var it I
	found, err := tx.Get(ctx, c.name, id, &it)
	if err != nil {
		return it, err
	}
	if !found {
		return it, fmt.Errorf("%s/%s: %w", c.name, id, entities.ErrNotFound)
	}
	if owner := P(&it).owner(); owner != userID {
		c.logger.Warn("ownership check failed",
			zap.String("collection", c.name),
			zap.String("id", id),
			zap.String("user_id", userID),
		)
		return it, fmt.Errorf("%s/%s: %w", c.name, id, entities.ErrOwnershipViolation)
	}
	return it, nil
}

// update applies mutate to the stored document inside a transaction. The owner
// and the update time are stamped after mutate runs, so neither can be
// overwritten by the caller.
func (c tenantCollection[I, P]) update(ctx context.Context, userID, id, now string, mutate func(P) error) (I, error) {
	var updated I
	err := c.store.RunTransaction(ctx, func(ctx context.Context, tx interfaces.ITransaction) error {
		it, err := c.loadOwned(ctx, tx, userID, id)
		if err != nil {
			return err
		}
		if err := mutate(&it); err != nil {
			return err
		}
		P(&it).restamp(userID, now)
		updated = it
		return tx.Set(c.name, id, it)
	})
	if err != nil {
		var zero I
		return zero, writeError("update", c.name, id, err)
	}
	return updated, nil
}

func (c tenantCollection[I, P]) delete(ctx context.Context, userID, id string) error {
	err := c.store.RunTransaction(ctx, func(ctx context.Context, tx interfaces.ITransaction) error {
		if _, err := c.loadOwned(ctx, tx, userID, id); err != nil {
			return err
		}
		return tx.Delete(c.name, id)
	})
	if err != nil {
		return writeError("delete", c.name, id, err)
	}
	return nil
}
