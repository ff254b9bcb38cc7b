package verify

import (
	"context"
	"errors"
	"log"
	"os"

	"comercio_b2b/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"golang.org/x/crypto/bcrypt"
)

const defaultAccountsTableName = "accounts"

type accountItem struct {
	AccountID    string `dynamodbav:"account_id"`
	PasswordHash string `dynamodbav:"password_hash"`
}

// AccountCredentialVerifier re-confirms an actor's password against the
// bcrypt hash stored with the business account.
//
// Table requirements:
//   - PK: account_id (string)
//
// A missing account or wrong secret is a no-match, not an error; errors are
// reserved for infrastructure failures so the gate never downgrades them.

type AccountCredentialVerifier struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICredentialVerifier = (*AccountCredentialVerifier)(nil)

func NewAccountCredentialVerifier(ddb *dynamodb.Client) *AccountCredentialVerifier {
	tableName := os.Getenv("ACCOUNTS_TABLE")
	if tableName == "" {
		tableName = defaultAccountsTableName
	}
	return &AccountCredentialVerifier{ddb: ddb, tableName: tableName}
}

func (v *AccountCredentialVerifier) Verify(ctx context.Context, actorID, secret string) (bool, error) {
	if actorID == "" || secret == "" {
		return false, nil
	}

	out, err := v.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(v.tableName),
		Key: map[string]types.AttributeValue{
			"account_id": &types.AttributeValueMemberS{Value: actorID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		log.Printf("[verify][credential] account lookup failed actor=%s err=%v", actorID, err)
		return false, err
	}
	if len(out.Item) == 0 {
		return false, nil
	}

	var it accountItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return false, err
	}
	if it.PasswordHash == "" {
		return false, nil
	}

	err = bcrypt.CompareHashAndPassword([]byte(it.PasswordHash), []byte(secret))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
