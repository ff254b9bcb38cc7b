package repository

import (
	"context"
	"fmt"

	"comercio_b2b/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultStockTableName = "stock"

type stockItem struct {
	ItemRef   string `dynamodbav:"item_ref"`
	Stocked   int    `dynamodbav:"stocked"`
	Reserved  int    `dynamodbav:"reserved"`
	Available int    `dynamodbav:"available"`
}

// StockDynamoRepository is the read side of the availability oracle.
//
// Table requirements:
//   - PK: item_ref (string)
//   - available is maintained transactionally by conversion commits as
//     stocked minus reserved, so a single consistent read answers the
//     oracle contract.
//
// An unknown item or a failed read is an error, never zero availability.

type StockDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAvailabilityOracle = (*StockDynamoRepository)(nil)

func NewStockDynamoRepository(ddb *dynamodb.Client) *StockDynamoRepository {
	return &StockDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("STOCK_TABLE", defaultStockTableName),
	}
}

func (r *StockDynamoRepository) Available(ctx context.Context, itemRef string) (int, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"item_ref": &types.AttributeValueMemberS{Value: itemRef},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return 0, err
	}
	if len(out.Item) == 0 {
		return 0, fmt.Errorf("availability unknown for item %s", itemRef)
	}

	var it stockItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return 0, err
	}
	if it.Available < 0 {
		return 0, nil
	}
	return it.Available, nil
}
