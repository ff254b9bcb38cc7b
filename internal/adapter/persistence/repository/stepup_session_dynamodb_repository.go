package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"comercio_b2b/internal/domain/entities"
	"comercio_b2b/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSessionsTableName = "stepup_sessions"

type stepUpSessionItem struct {
	ID             string `dynamodbav:"id"`
	ActorID        string `dynamodbav:"actor_id"`
	Action         string `dynamodbav:"action"`
	DocumentRef    string `dynamodbav:"document_ref"`
	RequiredJSON   string `dynamodbav:"required"`
	Payload        string `dynamodbav:"payload,omitempty"`
	FailedAttempts int    `dynamodbav:"failed_attempts"`
	Consumed       bool   `dynamodbav:"consumed"`
	ExpiresAt      string `dynamodbav:"expires_at"`
	CreatedAt      string `dynamodbav:"created_at"`
}

// StepUpSessionDynamoRepository persists StepUpSession documents in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Consume claims the session with consumed=false as the condition, so only
// one caller can ever spend a given proof.

type StepUpSessionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IStepUpSessionRepository = (*StepUpSessionDynamoRepository)(nil)

func NewStepUpSessionDynamoRepository(ddb *dynamodb.Client) *StepUpSessionDynamoRepository {
	return &StepUpSessionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("STEPUP_SESSIONS_TABLE", defaultSessionsTableName),
	}
}

func (r *StepUpSessionDynamoRepository) Create(ctx context.Context, s entities.StepUpSession) (entities.StepUpSession, error) {
	it, err := toStepUpSessionItem(s)
	if err != nil {
		return entities.StepUpSession{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.StepUpSession{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.StepUpSession{}, err
	}
	return s, nil
}

func (r *StepUpSessionDynamoRepository) GetByID(ctx context.Context, id string) (entities.StepUpSession, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.StepUpSession{}, err
	}
	if len(out.Item) == 0 {
		return entities.StepUpSession{}, nil
	}

	var it stepUpSessionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.StepUpSession{}, err
	}
	return fromStepUpSessionItem(it)
}

func (r *StepUpSessionDynamoRepository) Consume(ctx context.Context, id string) (entities.StepUpSession, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET #consumed = :true"),
		ConditionExpression: aws.String("attribute_exists(#id) AND #consumed = :false"),
		ExpressionAttributeNames: map[string]string{
			"#id":       "id",
			"#consumed": "consumed",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":true":  &types.AttributeValueMemberBOOL{Value: true},
			":false": &types.AttributeValueMemberBOOL{Value: false},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.StepUpSession{}, nil
		}
		return entities.StepUpSession{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.StepUpSession{}, nil
	}
	var it stepUpSessionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.StepUpSession{}, err
	}
	return fromStepUpSessionItem(it)
}

func (r *StepUpSessionDynamoRepository) RecordFailedAttempt(ctx context.Context, id string) (entities.StepUpSession, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET #failed_attempts = if_not_exists(#failed_attempts, :zero) + :one"),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id":              "id",
			"#failed_attempts": "failed_attempts",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":zero": &types.AttributeValueMemberN{Value: "0"},
			":one":  &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.StepUpSession{}, nil
		}
		return entities.StepUpSession{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.StepUpSession{}, nil
	}
	var it stepUpSessionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.StepUpSession{}, err
	}
	return fromStepUpSessionItem(it)
}

func (r *StepUpSessionDynamoRepository) SetRequirements(ctx context.Context, id string, required []entities.VerificationKind) (entities.StepUpSession, error) {
	requiredJSON, err := json.Marshal(required)
	if err != nil {
		return entities.StepUpSession{}, err
	}
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET #required = :required"),
		ConditionExpression: aws.String("attribute_exists(#id) AND #consumed = :false"),
		ExpressionAttributeNames: map[string]string{
			"#id":       "id",
			"#required": "required",
			"#consumed": "consumed",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":required": &types.AttributeValueMemberS{Value: string(requiredJSON)},
			":false":    &types.AttributeValueMemberBOOL{Value: false},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.StepUpSession{}, nil
		}
		return entities.StepUpSession{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.StepUpSession{}, nil
	}
	var it stepUpSessionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.StepUpSession{}, err
	}
	return fromStepUpSessionItem(it)
}

func (r *StepUpSessionDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toStepUpSessionItem(s entities.StepUpSession) (stepUpSessionItem, error) {
	requiredJSON, err := json.Marshal(s.Required)
	if err != nil {
		return stepUpSessionItem{}, err
	}
	return stepUpSessionItem{
		ID:             s.ID,
		ActorID:        s.ActorID,
		Action:         string(s.Action),
		DocumentRef:    s.DocumentRef,
		RequiredJSON:   string(requiredJSON),
		Payload:        string(s.Payload),
		FailedAttempts: s.FailedAttempts,
		Consumed:       s.Consumed,
		ExpiresAt:      s.ExpiresAt.UTC().Format(time.RFC3339Nano),
		CreatedAt:      s.CreatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromStepUpSessionItem(it stepUpSessionItem) (entities.StepUpSession, error) {
	var required []entities.VerificationKind
	if it.RequiredJSON != "" {
		if err := json.Unmarshal([]byte(it.RequiredJSON), &required); err != nil {
			return entities.StepUpSession{}, err
		}
	}
	expiresAt, _ := time.Parse(time.RFC3339Nano, it.ExpiresAt)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	var payload json.RawMessage
	if it.Payload != "" {
		payload = json.RawMessage(it.Payload)
	}
	return entities.StepUpSession{
		ID:             it.ID,
		ActorID:        it.ActorID,
		Action:         entities.ActionType(it.Action),
		DocumentRef:    it.DocumentRef,
		Required:       required,
		Payload:        payload,
		FailedAttempts: it.FailedAttempts,
		Consumed:       it.Consumed,
		ExpiresAt:      expiresAt,
		CreatedAt:      createdAt,
	}, nil
}
