package docstore

import (
	"context"
	"fmt"
	"maps"
	"sync"

	"tecnicontrol/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/google/uuid"
)

// MemoryStore is an in-process IDocumentStore with the same encoding, equality
// and ordering rules as DynamoDBStore.
//
// Transactions hold the store lock for their whole duration, so they are
// serializable and never conflict. The transaction function must only use the
// tx handle: calling the store itself from inside it deadlocks.

type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]map[string]document
	newID       func() string
}

var _ interfaces.IDocumentStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: map[string]map[string]document{},
		newID:       uuid.NewString,
	}
}

func (s *MemoryStore) Get(ctx context.Context, collection, key string, out any) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	s.mu.RLock()
	item, ok := s.collections[collection][key]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	return true, decodeDocument(item, out)
}

func (s *MemoryStore) Query(ctx context.Context, collection string, q interfaces.Query, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	want, err := attributevalue.Marshal(q.Value)
	if err != nil {
		return fmt.Errorf("encode query value: %w", err)
	}

	s.mu.RLock()
	items := make([]document, 0)
	for _, item := range s.collections[collection] {
		if attrEqual(item[q.Field], want) {
			items = append(items, item)
		}
	}
	s.mu.RUnlock()

	// Map iteration is random; order by key first so equal sort values stay stable.
	sortDocuments(items, KeyAttribute, false)
	sortDocuments(items, q.OrderBy, q.Direction == interfaces.Descending)
	return decodeDocuments(limitDocuments(items, q.Limit), out)
}

func (s *MemoryStore) Add(ctx context.Context, collection string, data any) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	key := s.newID()
	item, err := encodeDocument(key, data)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.collections[collection][key]; exists {
		return "", fmt.Errorf("generated key %q already exists in %s", key, collection)
	}
	s.put(collection, key, item)
	return key, nil
}

func (s *MemoryStore) Set(ctx context.Context, collection, key string, data any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	item, err := encodeDocument(key, data)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.put(collection, key, item)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Update(ctx context.Context, collection, key string, fields map[string]any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	encoded, err := encodeFields(fields)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.collections[collection][key]
	if !ok {
		return interfaces.ErrDocumentNotFound
	}
	s.put(collection, key, mergeDocument(existing, encoded))
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, collection, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	delete(s.collections[collection], key)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) RunTransaction(ctx context.Context, fn func(ctx context.Context, tx interfaces.ITransaction) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memoryTx{store: s}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return tx.commit()
}

// put must be called with the write lock held.
func (s *MemoryStore) put(collection, key string, item document) {
	c, ok := s.collections[collection]
	if !ok {
		c = map[string]document{}
		s.collections[collection] = c
	}
	c[key] = item
}

type memoryOpKind int

const (
	memorySet memoryOpKind = iota
	memoryUpdate
	memoryDelete
)

type memoryOp struct {
	kind       memoryOpKind
	collection string
	key        string
	item       document
}

type memoryTx struct {
	store *MemoryStore
	ops   []memoryOp
}

func (tx *memoryTx) Get(ctx context.Context, collection, key string, out any) (bool, error) {
	if len(tx.ops) > 0 {
		return false, interfaces.ErrReadAfterWrite
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}
	item, ok := tx.store.collections[collection][key]
	if !ok {
		return false, nil
	}
	return true, decodeDocument(item, out)
}

func (tx *memoryTx) Set(collection, key string, data any) error {
	item, err := encodeDocument(key, data)
	if err != nil {
		return err
	}
	tx.ops = append(tx.ops, memoryOp{kind: memorySet, collection: collection, key: key, item: item})
	return nil
}

func (tx *memoryTx) Update(collection, key string, fields map[string]any) error {
	encoded, err := encodeFields(fields)
	if err != nil {
		return err
	}
	tx.ops = append(tx.ops, memoryOp{kind: memoryUpdate, collection: collection, key: key, item: encoded})
	return nil
}

func (tx *memoryTx) Delete(collection, key string) error {
	tx.ops = append(tx.ops, memoryOp{kind: memoryDelete, collection: collection, key: key})
	return nil
}

// commit stages every op before touching the store so a failing op leaves the
// store unchanged.
func (tx *memoryTx) commit() error {
	type ref struct{ collection, key string }
	staged := map[ref]document{}
	order := make([]ref, 0, len(tx.ops))

	for _, op := range tx.ops {
		r := ref{op.collection, op.key}
		current, seen := staged[r]
		if !seen {
			if existing, ok := tx.store.collections[op.collection][op.key]; ok {
				current = maps.Clone(existing)
			}
			order = append(order, r)
		}
		switch op.kind {
		case memorySet:
			current = op.item
		case memoryUpdate:
			if current == nil {
				return fmt.Errorf("update %s/%s: %w", op.collection, op.key, interfaces.ErrDocumentNotFound)
			}
			current = mergeDocument(current, op.item)
		case memoryDelete:
			current = nil
		}
		staged[r] = current
	}

	for _, r := range order {
		if item := staged[r]; item != nil {
			tx.store.put(r.collection, r.key, item)
		} else {
			delete(tx.store.collections[r.collection], r.key)
		}
	}
	return nil
}
