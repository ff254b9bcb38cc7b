package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"comercio_b2b/internal/domain/entities"
	"comercio_b2b/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultQuotationsTableName = "quotations"

type quotationItem struct {
	Reference     string `dynamodbav:"reference"`
	AccountID     string `dynamodbav:"account_id"`
	ItemsJSON     string `dynamodbav:"items"`
	Status        string `dynamodbav:"status"`
	Subtotal      string `dynamodbav:"subtotal"`
	Tax           string `dynamodbav:"tax"`
	Shipping      string `dynamodbav:"shipping"`
	Discount      string `dynamodbav:"discount"`
	GrandTotal    string `dynamodbav:"grand_total"`
	ValidFrom     string `dynamodbav:"valid_from"`
	ValidUntil    string `dynamodbav:"valid_until"`
	DecisionJSON  string `dynamodbav:"decision,omitempty"`
	StaffComment  string `dynamodbav:"staff_comment,omitempty"`
	LinkedOrderID string `dynamodbav:"linked_order_id,omitempty"`
	Version       int64  `dynamodbav:"version"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// QuotationDynamoRepository persists Quotation documents in DynamoDB.
//
// Table requirements:
//   - PK: reference (string)
//
// Concurrency model: every transition is a conditional full-document write
// asserting the expected status and version together, so two racing writers
// can never both commit. A failed condition is reported as the zero value
// with a nil error; the usecase re-reads and classifies the conflict.

type QuotationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuotationRepository = (*QuotationDynamoRepository)(nil)

func NewQuotationDynamoRepository(ddb *dynamodb.Client) *QuotationDynamoRepository {
	return &QuotationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTATIONS_TABLE", defaultQuotationsTableName),
	}
}

func (r *QuotationDynamoRepository) Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error) {
	it, err := toQuotationItem(q)
	if err != nil {
		return entities.Quotation{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Quotation{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#reference)"),
		ExpressionAttributeNames: map[string]string{
			"#reference": "reference",
		},
	})
	if err != nil {
		return entities.Quotation{}, err
	}
	return q, nil
}

func (r *QuotationDynamoRepository) GetByReference(ctx context.Context, reference string) (entities.Quotation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"reference": &types.AttributeValueMemberS{Value: reference},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quotation{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quotation{}, nil
	}

	var it quotationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quotation{}, err
	}
	return fromQuotationItem(it)
}

func (r *QuotationDynamoRepository) UpdateTransition(ctx context.Context, q entities.Quotation, expectedStatus entities.QuotationStatus, expectedVersion int64) (entities.Quotation, error) {
	stored := q
	stored.Version = expectedVersion + 1

	it, err := toQuotationItem(stored)
	if err != nil {
		return entities.Quotation{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Quotation{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#reference) AND #status = :expected_status AND #version = :expected_version"),
		ExpressionAttributeNames: map[string]string{
			"#reference": "reference",
			"#status":    "status",
			"#version":   "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected_status":  &types.AttributeValueMemberS{Value: string(expectedStatus)},
			":expected_version": &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quotation{}, nil
		}
		return entities.Quotation{}, err
	}
	return stored, nil
}

func toQuotationItem(q entities.Quotation) (quotationItem, error) {
	itemsJSON, err := json.Marshal(q.Items)
	if err != nil {
		return quotationItem{}, err
	}
	decisionJSON := ""
	if q.Decision != nil {
		b, err := json.Marshal(q.Decision)
		if err != nil {
			return quotationItem{}, err
		}
		decisionJSON = string(b)
	}
	return quotationItem{
		Reference:     q.Reference,
		AccountID:     q.AccountID,
		ItemsJSON:     string(itemsJSON),
		Status:        string(q.Status),
		Subtotal:      floatToString(q.Subtotal),
		Tax:           floatToString(q.Tax),
		Shipping:      floatToString(q.Shipping),
		Discount:      floatToString(q.Discount),
		GrandTotal:    floatToString(q.GrandTotal),
		ValidFrom:     q.ValidFrom.UTC().Format(time.RFC3339Nano),
		ValidUntil:    q.ValidUntil.UTC().Format(time.RFC3339Nano),
		DecisionJSON:  decisionJSON,
		StaffComment:  q.StaffComment,
		LinkedOrderID: q.LinkedOrderID,
		Version:       q.Version,
		CreatedAt:     q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     q.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromQuotationItem(it quotationItem) (entities.Quotation, error) {
	var items []entities.LineItem
	if it.ItemsJSON != "" {
		if err := json.Unmarshal([]byte(it.ItemsJSON), &items); err != nil {
			return entities.Quotation{}, err
		}
	}
	var decision *entities.Decision
	if it.DecisionJSON != "" {
		decision = &entities.Decision{}
		if err := json.Unmarshal([]byte(it.DecisionJSON), decision); err != nil {
			return entities.Quotation{}, err
		}
	}
	validFrom, _ := time.Parse(time.RFC3339Nano, it.ValidFrom)
	validUntil, _ := time.Parse(time.RFC3339Nano, it.ValidUntil)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Quotation{
		Reference:     it.Reference,
		AccountID:     it.AccountID,
		Items:         items,
		Status:        entities.QuotationStatus(it.Status),
		Subtotal:      stringToFloat(it.Subtotal),
		Tax:           stringToFloat(it.Tax),
		Shipping:      stringToFloat(it.Shipping),
		Discount:      stringToFloat(it.Discount),
		GrandTotal:    stringToFloat(it.GrandTotal),
		ValidFrom:     validFrom,
		ValidUntil:    validUntil,
		Decision:      decision,
		StaffComment:  it.StaffComment,
		LinkedOrderID: it.LinkedOrderID,
		Version:       it.Version,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}, nil
}
