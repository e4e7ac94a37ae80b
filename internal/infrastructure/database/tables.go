package database

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"tecnicontrol/internal/adapter/persistence/docstore"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

const tableActiveTimeout = 2 * time.Minute

// TableAdminAPI is the subset of *dynamodb.Client used to bootstrap tables.
type TableAdminAPI interface {
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

var _ TableAdminAPI = (*dynamodb.Client)(nil)

// EnsureTables creates the missing tables of tables (collection -> table name)
// with the GSIs listed in indexed (collection -> queried fields) and waits for
// them to become active. Existing tables are left untouched.
func EnsureTables(ctx context.Context, api TableAdminAPI, tables map[string]string, indexed map[string][]string, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	collections := make([]string, 0, len(tables))
	for c := range tables {
		collections = append(collections, c)
	}
	sort.Strings(collections)

	for _, collection := range collections {
		name := tables[collection]
		_, err := api.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(name)})
		if err == nil {
			logger.Debug("table exists", zap.String("table", name))
			continue
		}
		var notFound *types.ResourceNotFoundException
		if !errors.As(err, &notFound) {
			return fmt.Errorf("describe table %s: %w", name, err)
		}

		if _, err := api.CreateTable(ctx, createTableInput(name, indexed[collection])); err != nil {
			return fmt.Errorf("create table %s: %w", name, err)
		}
		waiter := dynamodb.NewTableExistsWaiter(api, func(o *dynamodb.TableExistsWaiterOptions) {
			o.MinDelay = 500 * time.Millisecond
			o.MaxDelay = 5 * time.Second
		})
		if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(name)}, tableActiveTimeout); err != nil {
			return fmt.Errorf("wait for table %s: %w", name, err)
		}
		logger.Info("table created", zap.String("table", name), zap.Strings("indexes", indexed[collection]))
	}
	return nil
}

func createTableInput(name string, fields []string) *dynamodb.CreateTableInput {
	in := &dynamodb.CreateTableInput{
		TableName:   aws.String(name),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
		},
	}
	for _, f := range fields {
		in.AttributeDefinitions = append(in.AttributeDefinitions, types.AttributeDefinition{
			AttributeName: aws.String(f),
			AttributeType: types.ScalarAttributeTypeS,
		})
		in.GlobalSecondaryIndexes = append(in.GlobalSecondaryIndexes, types.GlobalSecondaryIndex{
			IndexName: aws.String(docstore.IndexName(f)),
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String(f), KeyType: types.KeyTypeHash},
			},
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		})
	}
	return in
}
