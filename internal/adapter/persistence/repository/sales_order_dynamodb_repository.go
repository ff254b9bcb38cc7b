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

const defaultOrdersTableName = "sales_orders"

type salesOrderItem struct {
	OrderNumber        string `dynamodbav:"order_number"`
	QuotationID        string `dynamodbav:"quotation_id"`
	AccountID          string `dynamodbav:"account_id"`
	ItemsJSON          string `dynamodbav:"items"`
	Subtotal           string `dynamodbav:"subtotal"`
	Tax                string `dynamodbav:"tax"`
	Shipping           string `dynamodbav:"shipping"`
	Discount           string `dynamodbav:"discount"`
	GrandTotal         string `dynamodbav:"grand_total"`
	OutstandingBalance string `dynamodbav:"outstanding_balance"`
	PaymentProofsJSON  string `dynamodbav:"payment_proofs,omitempty"`
	Version            int64  `dynamodbav:"version"`
	CreatedAt          string `dynamodbav:"created_at"`
}

// SalesOrderDynamoRepository persists SalesOrder documents in DynamoDB.
//
// Table requirements:
//   - PK: order_number (string)
//
// ConvertQuotation commits the conversion as one TransactWriteItems call:
// the order put, the quotation CAS to approved with its linked order
// reference, and the stock reservation per line. Any failed condition
// cancels the whole transaction and surfaces as the zero value with a nil
// error.

type SalesOrderDynamoRepository struct {
	ddb             *dynamodb.Client
	tableName       string
	quotationsTable string
	stockTable      string
}

var _ interfaces.ISalesOrderRepository = (*SalesOrderDynamoRepository)(nil)

func NewSalesOrderDynamoRepository(ddb *dynamodb.Client) *SalesOrderDynamoRepository {
	return &SalesOrderDynamoRepository{
		ddb:             ddb,
		tableName:       getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
		quotationsTable: getenvDefault("QUOTATIONS_TABLE", defaultQuotationsTableName),
		stockTable:      getenvDefault("STOCK_TABLE", defaultStockTableName),
	}
}

func (r *SalesOrderDynamoRepository) ConvertQuotation(ctx context.Context, order entities.SalesOrder, q entities.Quotation) (entities.SalesOrder, error) {
	orderIt, err := toSalesOrderItem(order)
	if err != nil {
		return entities.SalesOrder{}, err
	}
	orderAV, err := attributevalue.MarshalMap(orderIt)
	if err != nil {
		return entities.SalesOrder{}, err
	}

	// The quotation arrives already mutated to its approved form but still
	// carrying the pre-transition version; the condition pins the stored
	// document to the issued, unlinked state the caller observed.
	expectedVersion := q.Version
	approved := q
	approved.Version = expectedVersion + 1
	quotationIt, err := toQuotationItem(approved)
	if err != nil {
		return entities.SalesOrder{}, err
	}
	quotationAV, err := attributevalue.MarshalMap(quotationIt)
	if err != nil {
		return entities.SalesOrder{}, err
	}

	writes := []types.TransactWriteItem{
		{
			Put: &types.Put{
				TableName:           aws.String(r.tableName),
				Item:                orderAV,
				ConditionExpression: aws.String("attribute_not_exists(#order_number)"),
				ExpressionAttributeNames: map[string]string{
					"#order_number": "order_number",
				},
			},
		},
		{
			Put: &types.Put{
				TableName: aws.String(r.quotationsTable),
				Item:      quotationAV,
				ConditionExpression: aws.String(
					"attribute_exists(#reference) AND #status = :issued AND #version = :expected_version AND attribute_not_exists(#linked_order_id)",
				),
				ExpressionAttributeNames: map[string]string{
					"#reference":       "reference",
					"#status":          "status",
					"#version":         "version",
					"#linked_order_id": "linked_order_id",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":issued":           &types.AttributeValueMemberS{Value: string(entities.QuotationStatusIssued)},
					":expected_version": &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
				},
			},
		},
	}

	for _, line := range order.Items {
		qty := strconv.Itoa(line.Quantity)
		writes = append(writes, types.TransactWriteItem{
			Update: &types.Update{
				TableName: aws.String(r.stockTable),
				Key: map[string]types.AttributeValue{
					"item_ref": &types.AttributeValueMemberS{Value: line.ItemRef},
				},
				UpdateExpression:    aws.String("SET #reserved = if_not_exists(#reserved, :zero) + :qty, #available = #available - :qty"),
				ConditionExpression: aws.String("attribute_exists(#item_ref) AND #available >= :qty"),
				ExpressionAttributeNames: map[string]string{
					"#item_ref":  "item_ref",
					"#reserved":  "reserved",
					"#available": "available",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":qty":  &types.AttributeValueMemberN{Value: qty},
					":zero": &types.AttributeValueMemberN{Value: "0"},
				},
			},
		})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: writes})
	if err != nil {
		var canceled *types.TransactionCanceledException
		if errors.As(err, &canceled) && hasConditionalFailure(canceled) {
			return entities.SalesOrder{}, nil
		}
		return entities.SalesOrder{}, err
	}
	return order, nil
}

func (r *SalesOrderDynamoRepository) GetByOrderNumber(ctx context.Context, orderNumber string) (entities.SalesOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"order_number": &types.AttributeValueMemberS{Value: orderNumber},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.SalesOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.SalesOrder{}, nil
	}

	var it salesOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.SalesOrder{}, err
	}
	return fromSalesOrderItem(it)
}

func (r *SalesOrderDynamoRepository) AppendPaymentProof(ctx context.Context, orderNumber string, proof entities.PaymentProof, expectedVersion int64) (entities.SalesOrder, error) {
	order, err := r.GetByOrderNumber(ctx, orderNumber)
	if err != nil {
		return entities.SalesOrder{}, err
	}
	if order.OrderNumber == "" || order.Version != expectedVersion {
		return entities.SalesOrder{}, nil
	}

	proofs := append(append([]entities.PaymentProof(nil), order.PaymentProofs...), proof)
	proofsJSON, err := json.Marshal(proofs)
	if err != nil {
		return entities.SalesOrder{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"order_number": &types.AttributeValueMemberS{Value: orderNumber},
		},
		UpdateExpression:    aws.String("SET #payment_proofs = :proofs, #version = :next_version"),
		ConditionExpression: aws.String("attribute_exists(#order_number) AND #version = :expected_version"),
		ExpressionAttributeNames: map[string]string{
			"#order_number":   "order_number",
			"#payment_proofs": "payment_proofs",
			"#version":        "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":proofs":           &types.AttributeValueMemberS{Value: string(proofsJSON)},
			":next_version":     &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion+1, 10)},
			":expected_version": &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.SalesOrder{}, nil
		}
		return entities.SalesOrder{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.SalesOrder{}, nil
	}
	var it salesOrderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.SalesOrder{}, err
	}
	return fromSalesOrderItem(it)
}

func hasConditionalFailure(canceled *types.TransactionCanceledException) bool {
	for _, reason := range canceled.CancellationReasons {
		if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
			return true
		}
	}
	return false
}

func toSalesOrderItem(o entities.SalesOrder) (salesOrderItem, error) {
	itemsJSON, err := json.Marshal(o.Items)
	if err != nil {
		return salesOrderItem{}, err
	}
	proofsJSON := ""
	if len(o.PaymentProofs) > 0 {
		b, err := json.Marshal(o.PaymentProofs)
		if err != nil {
			return salesOrderItem{}, err
		}
		proofsJSON = string(b)
	}
	return salesOrderItem{
		OrderNumber:        o.OrderNumber,
		QuotationID:        o.QuotationID,
		AccountID:          o.AccountID,
		ItemsJSON:          string(itemsJSON),
		Subtotal:           floatToString(o.Subtotal),
		Tax:                floatToString(o.Tax),
		Shipping:           floatToString(o.Shipping),
		Discount:           floatToString(o.Discount),
		GrandTotal:         floatToString(o.GrandTotal),
		OutstandingBalance: floatToString(o.OutstandingBalance),
		PaymentProofsJSON:  proofsJSON,
		Version:            o.Version,
		CreatedAt:          o.CreatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromSalesOrderItem(it salesOrderItem) (entities.SalesOrder, error) {
	var items []entities.LineItem
	if it.ItemsJSON != "" {
		if err := json.Unmarshal([]byte(it.ItemsJSON), &items); err != nil {
			return entities.SalesOrder{}, err
		}
	}
	var proofs []entities.PaymentProof
	if it.PaymentProofsJSON != "" {
		if err := json.Unmarshal([]byte(it.PaymentProofsJSON), &proofs); err != nil {
			return entities.SalesOrder{}, err
		}
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.SalesOrder{
		OrderNumber:        it.OrderNumber,
		QuotationID:        it.QuotationID,
		AccountID:          it.AccountID,
		Items:              items,
		Subtotal:           stringToFloat(it.Subtotal),
		Tax:                stringToFloat(it.Tax),
		Shipping:           stringToFloat(it.Shipping),
		Discount:           stringToFloat(it.Discount),
		GrandTotal:         stringToFloat(it.GrandTotal),
		OutstandingBalance: stringToFloat(it.OutstandingBalance),
		PaymentProofs:      proofs,
		Version:            it.Version,
		CreatedAt:          createdAt,
	}, nil
}
