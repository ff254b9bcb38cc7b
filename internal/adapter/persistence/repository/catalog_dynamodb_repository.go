package repository

import (
	"context"

	"comercio_b2b/internal/domain/entities"
	"comercio_b2b/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCatalogTableName = "catalog"

type catalogItem struct {
	ItemRef   string `dynamodbav:"item_ref"`
	Name      string `dynamodbav:"name"`
	UnitPrice string `dynamodbav:"unit_price"`
}

// CatalogDynamoRepository resolves catalog pricing snapshots.
//
// Table requirements:
//   - PK: item_ref (string)
//
// Unknown items return the zero snapshot so the usecase can report the
// proper domain error.

type CatalogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPricingProvider = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb *dynamodb.Client) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CATALOG_TABLE", defaultCatalogTableName),
	}
}

func (r *CatalogDynamoRepository) Snapshot(ctx context.Context, itemRef string) (entities.CatalogSnapshot, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"item_ref": &types.AttributeValueMemberS{Value: itemRef},
		},
	})
	if err != nil {
		return entities.CatalogSnapshot{}, err
	}
	if len(out.Item) == 0 {
		return entities.CatalogSnapshot{}, nil
	}

	var it catalogItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CatalogSnapshot{}, err
	}
	return entities.CatalogSnapshot{
		ItemRef:   it.ItemRef,
		Name:      it.Name,
		UnitPrice: stringToFloat(it.UnitPrice),
	}, nil
}
