package docstore

import (
	"context"
	"errors"
	"sync"
	"testing"

	"tecnicontrol/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	ID     string `dynamodbav:"id"`
	UserID string `dynamodbav:"userId"`
	Name   string `dynamodbav:"name"`
	Rank   int    `dynamodbav:"rank"`
}

type tally struct {
	N int64 `dynamodbav:"n"`
}

func TestMemoryStore_CRUD(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	key, err := s.Add(ctx, "widgets", widget{UserID: "u1", Name: "gear"})
	require.NoError(t, err)
	require.NotEmpty(t, key)

	var got widget
	found, err := s.Get(ctx, "widgets", key, &got)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, key, got.ID)
	assert.Equal(t, "gear", got.Name)

	require.NoError(t, s.Update(ctx, "widgets", key, map[string]any{"name": "cog", "rank": 3}))
	found, err = s.Get(ctx, "widgets", key, &got)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "cog", got.Name)
	assert.Equal(t, 3, got.Rank)
	assert.Equal(t, "u1", got.UserID)

	require.NoError(t, s.Delete(ctx, "widgets", key))
	found, err = s.Get(ctx, "widgets", key, nil)
	require.NoError(t, err)
	assert.False(t, found)

	// deleting twice is fine
	require.NoError(t, s.Delete(ctx, "widgets", key))
}

func TestMemoryStore_SetOverwritesAndStampsKey(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.Set(ctx, "widgets", "w-1", widget{ID: "ignored", Name: "a"}))
	require.NoError(t, s.Set(ctx, "widgets", "w-1", widget{Name: "b"}))

	var got widget
	found, err := s.Get(ctx, "widgets", "w-1", &got)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "w-1", got.ID)
	assert.Equal(t, "b", got.Name)
}

func TestMemoryStore_UpdateMissing(t *testing.T) {
	s := NewMemoryStore()
	err := s.Update(context.Background(), "widgets", "nope", map[string]any{"name": "x"})
	assert.ErrorIs(t, err, interfaces.ErrDocumentNotFound)
}

func TestMemoryStore_UpdateRejectsReservedFields(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.Set(ctx, "widgets", "w-1", widget{Name: "a"}))

	assert.Error(t, s.Update(ctx, "widgets", "w-1", map[string]any{KeyAttribute: "other"}))
	assert.Error(t, s.Update(ctx, "widgets", "w-1", map[string]any{RevisionAttribute: "r"}))
}

func TestMemoryStore_Query(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.Set(ctx, "widgets", "a", widget{UserID: "u1", Name: "a", Rank: 2}))
	require.NoError(t, s.Set(ctx, "widgets", "b", widget{UserID: "u1", Name: "b", Rank: 9}))
	require.NoError(t, s.Set(ctx, "widgets", "c", widget{UserID: "u2", Name: "c", Rank: 5}))
	require.NoError(t, s.Set(ctx, "widgets", "d", widget{UserID: "u1", Name: "d", Rank: 10}))

	t.Run("descending by number", func(t *testing.T) {
		var got []widget
		err := s.Query(ctx, "widgets", interfaces.Query{Field: "userId", Value: "u1", OrderBy: "rank", Direction: interfaces.Descending}, &got)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, []string{"d", "b", "a"}, []string{got[0].ID, got[1].ID, got[2].ID})
	})

	t.Run("ascending with limit", func(t *testing.T) {
		var got []widget
		err := s.Query(ctx, "widgets", interfaces.Query{Field: "userId", Value: "u1", OrderBy: "rank", Limit: 2}, &got)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "a", got[0].ID)
		assert.Equal(t, "b", got[1].ID)
	})

	t.Run("no match is empty not nil", func(t *testing.T) {
		var got []widget
		err := s.Query(ctx, "widgets", interfaces.Query{Field: "userId", Value: "nobody"}, &got)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("unknown collection", func(t *testing.T) {
		var got []widget
		err := s.Query(ctx, "gadgets", interfaces.Query{Field: "userId", Value: "u1"}, &got)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestMemoryStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := NewMemoryStore()

	_, err := s.Get(ctx, "widgets", "a", nil)
	assert.ErrorIs(t, err, context.Canceled)
	err = s.RunTransaction(ctx, func(context.Context, interfaces.ITransaction) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemoryStore_Transaction(t *testing.T) {
	ctx := context.Background()

	t.Run("commits all writes", func(t *testing.T) {
		s := NewMemoryStore()
		require.NoError(t, s.Set(ctx, "widgets", "a", widget{Name: "a", Rank: 1}))

		err := s.RunTransaction(ctx, func(ctx context.Context, tx interfaces.ITransaction) error {
			var w widget
			found, err := tx.Get(ctx, "widgets", "a", &w)
			if err != nil || !found {
				return errors.New("expected a")
			}
			if err := tx.Update("widgets", "a", map[string]any{"rank": w.Rank + 1}); err != nil {
				return err
			}
			return tx.Set("widgets", "b", widget{Name: "b"})
		})
		require.NoError(t, err)

		var a widget
		_, err = s.Get(ctx, "widgets", "a", &a)
		require.NoError(t, err)
		assert.Equal(t, 2, a.Rank)
		found, err := s.Get(ctx, "widgets", "b", nil)
		require.NoError(t, err)
		assert.True(t, found)
	})

	t.Run("function error discards writes", func(t *testing.T) {
		s := NewMemoryStore()
		boom := errors.New("boom")

		err := s.RunTransaction(ctx, func(ctx context.Context, tx interfaces.ITransaction) error {
			if err := tx.Set("widgets", "a", widget{Name: "a"}); err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, err, boom)

		found, err := s.Get(ctx, "widgets", "a", nil)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("failing update leaves store unchanged", func(t *testing.T) {
		s := NewMemoryStore()

		err := s.RunTransaction(ctx, func(ctx context.Context, tx interfaces.ITransaction) error {
			if err := tx.Set("widgets", "a", widget{Name: "a"}); err != nil {
				return err
			}
			return tx.Update("widgets", "missing", map[string]any{"name": "x"})
		})
		assert.ErrorIs(t, err, interfaces.ErrDocumentNotFound)

		found, err := s.Get(ctx, "widgets", "a", nil)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("read after write", func(t *testing.T) {
		s := NewMemoryStore()

		err := s.RunTransaction(ctx, func(ctx context.Context, tx interfaces.ITransaction) error {
			if err := tx.Set("widgets", "a", widget{Name: "a"}); err != nil {
				return err
			}
			_, err := tx.Get(ctx, "widgets", "a", nil)
			return err
		})
		assert.ErrorIs(t, err, interfaces.ErrReadAfterWrite)
	})

	t.Run("set then update then delete in order", func(t *testing.T) {
		s := NewMemoryStore()

		err := s.RunTransaction(ctx, func(ctx context.Context, tx interfaces.ITransaction) error {
			_ = tx.Set("widgets", "a", widget{Name: "a"})
			_ = tx.Update("widgets", "a", map[string]any{"rank": 7})
			_ = tx.Set("widgets", "b", widget{Name: "b"})
			return tx.Delete("widgets", "b")
		})
		require.NoError(t, err)

		var a widget
		found, err := s.Get(ctx, "widgets", "a", &a)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, 7, a.Rank)
		found, err = s.Get(ctx, "widgets", "b", nil)
		require.NoError(t, err)
		assert.False(t, found)
	})
}

func TestMemoryStore_ConcurrentTransactionsDoNotLoseUpdates(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	const workers = 50

	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- s.RunTransaction(ctx, func(ctx context.Context, tx interfaces.ITransaction) error {
				var cur tally
				if _, err := tx.Get(ctx, "counters", "c", &cur); err != nil {
					return err
				}
				return tx.Set("counters", "c", tally{N: cur.N + 1})
			})
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	var final tally
	_, err := s.Get(ctx, "counters", "c", &final)
	require.NoError(t, err)
	assert.Equal(t, int64(workers), final.N)
}
