package docstore

import (
	"context"
	"fmt"
	"sort"

	"tecnicontrol/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type docRef struct {
	collection string
	key        string
}

type readState struct {
	exists bool
	rev    string
	item   document
}

type writeKind int

const (
	writePut writeKind = iota
	writeUpdate
	writeDelete
)

type pendingWrite struct {
	ref    docRef
	kind   writeKind
	item   document
	fields document
}

type dynamoTx struct {
	store  *DynamoDBStore
	reads  map[docRef]readState
	writes []*pendingWrite
	index  map[docRef]*pendingWrite
}

var _ interfaces.ITransaction = (*dynamoTx)(nil)

func newDynamoTx(s *DynamoDBStore) *dynamoTx {
	return &dynamoTx{
		store: s,
		reads: map[docRef]readState{},
		index: map[docRef]*pendingWrite{},
	}
}

func (tx *dynamoTx) Get(ctx context.Context, collection, key string, out any) (bool, error) {
	if len(tx.writes) > 0 {
		return false, interfaces.ErrReadAfterWrite
	}
	ref := docRef{collection, key}
	st, ok := tx.reads[ref]
	if !ok {
		item, err := tx.store.getItem(ctx, collection, key)
		if err != nil {
			return false, err
		}
		st = readState{exists: len(item) > 0, rev: revisionOf(item), item: item}
		tx.reads[ref] = st
	}
	if !st.exists {
		return false, nil
	}
	return true, decodeDocument(st.item, out)
}

func (tx *dynamoTx) Set(collection, key string, data any) error {
	item, err := encodeDocument(key, data)
	if err != nil {
		return err
	}
	tx.stage(&pendingWrite{ref: docRef{collection, key}, kind: writePut, item: item})
	return nil
}

func (tx *dynamoTx) Update(collection, key string, fields map[string]any) error {
	encoded, err := encodeFields(fields)
	if err != nil {
		return err
	}
	ref := docRef{collection, key}

	if w, ok := tx.index[ref]; ok {
		switch w.kind {
		case writePut:
			w.item = mergeDocument(w.item, encoded)
		case writeUpdate:
			for k, v := range encoded {
				w.fields[k] = v
			}
		case writeDelete:
			return fmt.Errorf("update %s/%s: %w", collection, key, interfaces.ErrDocumentNotFound)
		}
		return nil
	}

	// A document read in this transaction is rewritten in full so the commit
	// can be conditioned on the revision that was read.
	if st, ok := tx.reads[ref]; ok {
		if !st.exists {
			return fmt.Errorf("update %s/%s: %w", collection, key, interfaces.ErrDocumentNotFound)
		}
		tx.stage(&pendingWrite{ref: ref, kind: writePut, item: mergeDocument(st.item, encoded)})
		return nil
	}

	tx.stage(&pendingWrite{ref: ref, kind: writeUpdate, fields: encoded})
	return nil
}

func (tx *dynamoTx) Delete(collection, key string) error {
	tx.stage(&pendingWrite{ref: docRef{collection, key}, kind: writeDelete})
	return nil
}

func (tx *dynamoTx) stage(w *pendingWrite) {
	if prev, ok := tx.index[w.ref]; ok {
		*prev = *w
		return
	}
	tx.index[w.ref] = w
	tx.writes = append(tx.writes, w)
}

type condition struct {
	expr   string
	names  map[string]string
	values map[string]types.AttributeValue
}

// conditionFor guards a document against changes since it was read.
func (tx *dynamoTx) conditionFor(ref docRef) (condition, bool) {
	st, ok := tx.reads[ref]
	if !ok {
		return condition{}, false
	}
	switch {
	case !st.exists:
		return condition{
			expr:  "attribute_not_exists(#id)",
			names: map[string]string{"#id": KeyAttribute},
		}, true
	case st.rev == "":
		return condition{
			expr:  "attribute_exists(#id) AND attribute_not_exists(#rev)",
			names: map[string]string{"#id": KeyAttribute, "#rev": RevisionAttribute},
		}, true
	default:
		return condition{
			expr:   "#rev = :rev",
			names:  map[string]string{"#rev": RevisionAttribute},
			values: map[string]types.AttributeValue{":rev": &types.AttributeValueMemberS{Value: st.rev}},
		}, true
	}
}

// build returns nil for read-only transactions.
func (tx *dynamoTx) build() *dynamodb.TransactWriteItemsInput {
	if len(tx.writes) == 0 {
		return nil
	}

	items := make([]types.TransactWriteItem, 0, len(tx.writes)+len(tx.reads))
	for _, w := range tx.writes {
		table := aws.String(tx.store.tables.resolve(w.ref.collection))
		cond, guarded := tx.conditionFor(w.ref)

		switch w.kind {
		case writePut:
			put := &types.Put{TableName: table, Item: w.item}
			if guarded {
				put.ConditionExpression = aws.String(cond.expr)
				put.ExpressionAttributeNames = cond.names
				put.ExpressionAttributeValues = cond.values
			}
			items = append(items, types.TransactWriteItem{Put: put})
		case writeUpdate:
			expr := buildUpdate(w.fields)
			items = append(items, types.TransactWriteItem{Update: &types.Update{
				TableName:                 table,
				Key:                       keyOf(w.ref.key),
				UpdateExpression:          aws.String(expr.update),
				ConditionExpression:       aws.String("attribute_exists(#id)"),
				ExpressionAttributeNames:  mergeNames(expr.names, map[string]string{"#id": KeyAttribute}),
				ExpressionAttributeValues: expr.values,
			}})
		case writeDelete:
			del := &types.Delete{TableName: table, Key: keyOf(w.ref.key)}
			if guarded {
				del.ConditionExpression = aws.String(cond.expr)
				del.ExpressionAttributeNames = cond.names
				del.ExpressionAttributeValues = cond.values
			}
			items = append(items, types.TransactWriteItem{Delete: del})
		}
	}

	// Documents that were read but not written still take part in the commit.
	unwritten := make([]docRef, 0)
	for ref := range tx.reads {
		if _, written := tx.index[ref]; !written {
			unwritten = append(unwritten, ref)
		}
	}
	sort.Slice(unwritten, func(i, j int) bool {
		if unwritten[i].collection != unwritten[j].collection {
			return unwritten[i].collection < unwritten[j].collection
		}
		return unwritten[i].key < unwritten[j].key
	})
	for _, ref := range unwritten {
		cond, _ := tx.conditionFor(ref)
		items = append(items, types.TransactWriteItem{ConditionCheck: &types.ConditionCheck{
			TableName:                 aws.String(tx.store.tables.resolve(ref.collection)),
			Key:                       keyOf(ref.key),
			ConditionExpression:       aws.String(cond.expr),
			ExpressionAttributeNames:  cond.names,
			ExpressionAttributeValues: cond.values,
		}})
	}

	return &dynamodb.TransactWriteItemsInput{TransactItems: items}
}
