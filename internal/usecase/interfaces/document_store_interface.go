package interfaces

import (
	"context"
	"errors"
)

var (
	ErrDocumentNotFound   = errors.New("document not found")
	ErrTransactionAborted = errors.New("transaction aborted after repeated conflicts")
	ErrReadAfterWrite     = errors.New("transaction reads must happen before writes")
)

type SortDirection int

const (
	Ascending SortDirection = iota
	Descending
)

// Query is an equality filter over one field with optional ordering.
type Query struct {
	Field     string
	Value     any
	OrderBy   string
	Direction SortDirection
	Limit     int
}

// IDocumentStore abstracts the keyed document database.
//
// Documents are encoded with the DynamoDB attributevalue rules (dynamodbav tags).
// Every stored document carries its key in the "id" attribute.

type IDocumentStore interface {
	// Get decodes the document into out (when out is not nil) and reports whether it exists.
	Get(ctx context.Context, collection, key string, out any) (bool, error)
	// Query decodes the matching documents into out, a pointer to a slice.
	Query(ctx context.Context, collection string, q Query, out any) error
	// Add stores data under a generated key and returns it.
	Add(ctx context.Context, collection string, data any) (string, error)
	Set(ctx context.Context, collection, key string, data any) error
	// Update merges fields into an existing document. ErrDocumentNotFound if absent.
	Update(ctx context.Context, collection, key string, fields map[string]any) error
	Delete(ctx context.Context, collection, key string) error
	// RunTransaction runs fn atomically. fn may be invoked more than once when the
	// commit conflicts, so it must not have side effects outside tx.
	RunTransaction(ctx context.Context, fn func(ctx context.Context, tx ITransaction) error) error
}

// ITransaction is the handle passed to RunTransaction. All reads must precede
// the first write. Writes are buffered until commit.
type ITransaction interface {
	Get(ctx context.Context, collection, key string, out any) (bool, error)
	Set(collection, key string, data any) error
	Update(collection, key string, fields map[string]any) error
	Delete(collection, key string) error
}
