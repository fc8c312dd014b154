package repository

import (
	"context"
	"errors"
	"time"

	"bengkel_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultDocumentNumbersTableName = "document_numbers"

type documentNumberItem struct {
	Number    string  `dynamodbav:"number"`
	JobID     string  `dynamodbav:"job_id"`
	ClaimedAt ddbTime `dynamodbav:"claimed_at"`
}

// DocumentNumberDynamoClaimer reserves WO and estimation numbers.
//
// Table requirements:
//   - PK: number (string)
//
// A number belongs to the first job that claims it; a repeated claim by the
// same job succeeds so a retried save does not skip a number.
type DocumentNumberDynamoClaimer struct {
	ddb       DynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IDocumentNumberClaimer = (*DocumentNumberDynamoClaimer)(nil)

func NewDocumentNumberDynamoClaimer(ddb DynamoAPI, tableName string) *DocumentNumberDynamoClaimer {
	if tableName == "" {
		tableName = defaultDocumentNumbersTableName
	}
	return &DocumentNumberDynamoClaimer{ddb: ddb, tableName: tableName, now: time.Now}
}

func (c *DocumentNumberDynamoClaimer) Claim(ctx context.Context, number, jobID string) (bool, error) {
	av, err := attributevalue.MarshalMap(documentNumberItem{
		Number:    number,
		JobID:     jobID,
		ClaimedAt: tm(c.now()),
	})
	if err != nil {
		return false, err
	}

	_, err = c.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(c.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#number) OR #job_id = :job_id"),
		ExpressionAttributeNames: map[string]string{
			"#number": "number",
			"#job_id": "job_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":job_id": &types.AttributeValueMemberS{Value: jobID},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
