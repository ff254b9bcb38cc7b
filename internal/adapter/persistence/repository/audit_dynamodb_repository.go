package repository

import (
	"context"
	"time"

	"comercio_b2b/internal/domain/entities"
	"comercio_b2b/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultAuditTableName = "audit_events"

type auditEventItem struct {
	ID          string `dynamodbav:"id"`
	ActorID     string `dynamodbav:"actor_id"`
	Action      string `dynamodbav:"action"`
	DocumentRef string `dynamodbav:"document_ref"`
	Outcome     string `dynamodbav:"outcome"`
	Detail      string `dynamodbav:"detail,omitempty"`
	OccurredAt  string `dynamodbav:"occurred_at"`
}

// AuditDynamoRepository appends compliance records to the audit table.
// Callers treat Record as fire-and-forget; a write failure is theirs to log
// and swallow, never to propagate into the gated operation.

type AuditDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAuditSink = (*AuditDynamoRepository)(nil)

func NewAuditDynamoRepository(ddb *dynamodb.Client) *AuditDynamoRepository {
	return &AuditDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("AUDIT_TABLE", defaultAuditTableName),
	}
}

func (r *AuditDynamoRepository) Record(ctx context.Context, ev entities.AuditEvent) error {
	it := auditEventItem{
		ID:          ev.ID,
		ActorID:     ev.ActorID,
		Action:      ev.Action,
		DocumentRef: ev.DocumentRef,
		Outcome:     string(ev.Outcome),
		Detail:      ev.Detail,
		OccurredAt:  ev.OccurredAt.UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}
