package docstore

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"tecnicontrol/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultTransactionAttempts = 5

// DynamoDBAPI is the subset of *dynamodb.Client used by DynamoDBStore.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

var _ DynamoDBAPI = (*dynamodb.Client)(nil)

// TableNames maps a collection to its DynamoDB table. Unmapped collections use
// the collection name as table name.
type TableNames map[string]string

func (t TableNames) resolve(collection string) string {
	if name := t[collection]; name != "" {
		return name
	}
	return collection
}

// IndexName is the GSI queried for equality on field, e.g. "userId-index".
func IndexName(field string) string {
	return field + "-index"
}

// DynamoDBStore implements IDocumentStore on DynamoDB.
//
// Table requirements (per collection):
//   - PK: id (string)
//   - GSI <field>-index (PK: field) for every field used in Query
//
// Transactions are optimistic: reads record the _rev token of each document and
// the buffered writes are committed with TransactWriteItems conditioned on those
// tokens. A cancelled commit re-runs the transaction function.

type DynamoDBStore struct {
	api         DynamoDBAPI
	tables      TableNames
	maxAttempts int
	logger      *zap.Logger
	newID       func() string
}

var _ interfaces.IDocumentStore = (*DynamoDBStore)(nil)

type Option func(*DynamoDBStore)

func WithMaxAttempts(n int) Option {
	return func(s *DynamoDBStore) {
		if n > 0 {
			s.maxAttempts = n
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(s *DynamoDBStore) {
		if l != nil {
			s.logger = l
		}
	}
}

func NewDynamoDBStore(api DynamoDBAPI, tables TableNames, opts ...Option) *DynamoDBStore {
	s := &DynamoDBStore{
		api:         api,
		tables:      tables,
		maxAttempts: defaultTransactionAttempts,
		logger:      zap.NewNop(),
		newID:       uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func keyOf(key string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		KeyAttribute: &types.AttributeValueMemberS{Value: key},
	}
}

func (s *DynamoDBStore) Get(ctx context.Context, collection, key string, out any) (bool, error) {
	item, err := s.getItem(ctx, collection, key)
	if err != nil {
		return false, err
	}
	if len(item) == 0 {
		return false, nil
	}
	return true, decodeDocument(item, out)
}

func (s *DynamoDBStore) getItem(ctx context.Context, collection, key string) (document, error) {
	out, err := s.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.tables.resolve(collection)),
		Key:            keyOf(key),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	return out.Item, nil
}

func (s *DynamoDBStore) Query(ctx context.Context, collection string, q interfaces.Query, out any) error {
	val, err := attributevalue.Marshal(q.Value)
	if err != nil {
		return fmt.Errorf("encode query value: %w", err)
	}

	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.tables.resolve(collection)),
		IndexName:              aws.String(IndexName(q.Field)),
		KeyConditionExpression: aws.String("#field = :value"),
		ExpressionAttributeNames: map[string]string{
			"#field": q.Field,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":value": val,
		},
	}

	// Ordering is applied over the full result set, so every page is read
	// before sorting and limiting.
	items := make([]document, 0)
	p := dynamodb.NewQueryPaginator(s.api, input)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return err
		}
		items = append(items, page.Items...)
	}

	sortDocuments(items, q.OrderBy, q.Direction == interfaces.Descending)
	return decodeDocuments(limitDocuments(items, q.Limit), out)
}

func (s *DynamoDBStore) Add(ctx context.Context, collection string, data any) (string, error) {
	key := s.newID()
	item, err := encodeDocument(key, data)
	if err != nil {
		return "", err
	}
	_, err = s.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.tables.resolve(collection)),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": KeyAttribute,
		},
	})
	if err != nil {
		return "", err
	}
	return key, nil
}

func (s *DynamoDBStore) Set(ctx context.Context, collection, key string, data any) error {
	item, err := encodeDocument(key, data)
	if err != nil {
		return err
	}
	_, err = s.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tables.resolve(collection)),
		Item:      item,
	})
	return err
}

func (s *DynamoDBStore) Update(ctx context.Context, collection, key string, fields map[string]any) error {
	encoded, err := encodeFields(fields)
	if err != nil {
		return err
	}
	expr := buildUpdate(encoded)

	_, err = s.api.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(s.tables.resolve(collection)),
		Key:                       keyOf(key),
		UpdateExpression:          aws.String(expr.update),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames:  mergeNames(expr.names, map[string]string{"#id": KeyAttribute}),
		ExpressionAttributeValues: expr.values,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return interfaces.ErrDocumentNotFound
		}
		return err
	}
	return nil
}

func (s *DynamoDBStore) Delete(ctx context.Context, collection, key string) error {
	_, err := s.api.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.tables.resolve(collection)),
		Key:       keyOf(key),
	})
	return err
}

func (s *DynamoDBStore) RunTransaction(ctx context.Context, fn func(ctx context.Context, tx interfaces.ITransaction) error) error {
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		tx := newDynamoTx(s)
		if err := fn(ctx, tx); err != nil {
			return err
		}

		input := tx.build()
		if input == nil {
			return nil
		}
		_, err := s.api.TransactWriteItems(ctx, input)
		if err == nil {
			return nil
		}
		if !isTransactionConflict(err) {
			return err
		}
		s.logger.Debug("dynamodb transaction conflict",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", s.maxAttempts),
			zap.Error(err),
		)
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	return interfaces.ErrTransactionAborted
}

func isTransactionConflict(err error) bool {
	var tce *types.TransactionCanceledException
	if errors.As(err, &tce) {
		for _, r := range tce.CancellationReasons {
			code := aws.ToString(r.Code)
			if code == "ConditionalCheckFailed" || code == "TransactionConflict" {
				return true
			}
		}
		return false
	}
	var conflict *types.TransactionConflictException
	return errors.As(err, &conflict)
}

type updateExpression struct {
	update string
	names  map[string]string
	values map[string]types.AttributeValue
}

// buildUpdate renders a SET expression over fields (sorted by name) that also
// refreshes the revision token.
func buildUpdate(fields document) updateExpression {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	expr := updateExpression{
		update: "SET #rev = :nextRev",
		names:  map[string]string{"#rev": RevisionAttribute},
		values: map[string]types.AttributeValue{
			":nextRev": &types.AttributeValueMemberS{Value: newRevision()},
		},
	}
	for i, name := range names {
		n := "#f" + strconv.Itoa(i)
		v := ":v" + strconv.Itoa(i)
		expr.update += ", " + n + " = " + v
		expr.names[n] = name
		expr.values[v] = fields[name]
	}
	return expr
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
