package repository

import (
	"context"
	"fmt"
	"time"

	"tecnicontrol/internal/domain/entities"
	"tecnicontrol/internal/usecase/interfaces"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

type sequenceItem struct {
	ID         string `dynamodbav:"id"`
	Type       string `dynamodbav:"tipo"`
	LastNumber int64  `dynamodbav:"ultimoNumero"`
	UpdatedAt  string `dynamodbav:"fechaActualizacion"`
}

// RetryPolicy bounds the retries of a sequence allocation.
type RetryPolicy struct {
	MaxRetries      uint64
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries:      3,
		InitialInterval: 50 * time.Millisecond,
		MaxInterval:     time.Second,
	}
}

// OrderSequenceRepository allocates order numbers from the per-category
// counters contadores/ordenes<Tipo>. Every allocation reads and writes the
// counter inside a store transaction; nothing is cached in process.

type OrderSequenceRepository struct {
	store   interfaces.IDocumentStore
	policy  RetryPolicy
	metrics interfaces.IOrderMetrics
	logger  *zap.Logger
	now     func() time.Time
}

var _ interfaces.IOrderSequenceCounter = (*OrderSequenceRepository)(nil)

func NewOrderSequenceRepository(store interfaces.IDocumentStore, policy RetryPolicy, metrics interfaces.IOrderMetrics, logger *zap.Logger) *OrderSequenceRepository {
	return &OrderSequenceRepository{
		store:   store,
		policy:  policy,
		metrics: orNopMetrics(metrics),
		logger:  orNop(logger),
		now:     time.Now,
	}
}

// Next commits and returns the next number for t: 1 when the counter does not
// exist yet, N+1 when it holds N. Once the retries are spent the error wraps
// entities.ErrAllocationFailure and the counter is unchanged.
func (r *OrderSequenceRepository) Next(ctx context.Context, t entities.OrderType) (int64, error) {
	if !t.Valid() {
		return 0, fmt.Errorf("%w: %q", entities.ErrInvalidOrderType, t)
	}
	key := t.CounterKey()

	var issued int64
	op := func() error {
		err := r.store.RunTransaction(ctx, func(ctx context.Context, tx interfaces.ITransaction) error {
			var cur sequenceItem
			found, err := tx.Get(ctx, CollectionContadores, key, &cur)
			if err != nil {
				return err
			}
			next := int64(1)
			if found {
				next = cur.LastNumber + 1
			}
			issued = next
			return tx.Set(CollectionContadores, key, sequenceItem{
				Type:       string(t),
				LastNumber: next,
				UpdatedAt:  formatTime(r.now()),
			})
		})
		if err != nil && ctx.Err() != nil {
			return backoff.Permanent(err)
		}
		return err
	}

	notify := func(err error, wait time.Duration) {
		r.metrics.ObserveAllocation(t, interfaces.AllocationOutcomeRetry)
		r.logger.Warn("order sequence allocation retry",
			zap.String("tipo", string(t)),
			zap.Duration("wait", wait),
			zap.Error(err),
		)
	}

	if err := backoff.RetryNotify(op, backoff.WithContext(r.backOff(), ctx), notify); err != nil {
		r.metrics.ObserveAllocation(t, interfaces.AllocationOutcomeFailure)
		r.logger.Error("order sequence allocation failed",
			zap.String("tipo", string(t)),
			zap.String("counter", key),
			zap.Error(err),
		)
		return 0, fmt.Errorf("%w: %s: %w", entities.ErrAllocationFailure, t, err)
	}

	r.metrics.ObserveAllocation(t, interfaces.AllocationOutcomeSuccess)
	r.logger.Debug("order sequence allocated", zap.String("tipo", string(t)), zap.Int64("numero", issued))
	return issued, nil
}

// Current returns the last number issued for t, 0 when none was.
func (r *OrderSequenceRepository) Current(ctx context.Context, t entities.OrderType) (entities.OrderSequence, error) {
	if !t.Valid() {
		return entities.OrderSequence{}, fmt.Errorf("%w: %q", entities.ErrInvalidOrderType, t)
	}
	var it sequenceItem
	if _, err := r.store.Get(ctx, CollectionContadores, t.CounterKey(), &it); err != nil {
		return entities.OrderSequence{}, readError("get", CollectionContadores, t.CounterKey(), err)
	}
	return entities.OrderSequence{Type: t, LastNumber: it.LastNumber}, nil
}

func (r *OrderSequenceRepository) backOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	if r.policy.InitialInterval > 0 {
		b.InitialInterval = r.policy.InitialInterval
	}
	if r.policy.MaxInterval > 0 {
		b.MaxInterval = r.policy.MaxInterval
	}
	b.MaxElapsedTime = 0
	return backoff.WithMaxRetries(b, r.policy.MaxRetries)
}
