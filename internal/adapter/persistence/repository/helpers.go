package repository

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

// DynamoAPI is the subset of *dynamodb.Client the repositories use.
type DynamoAPI interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, in *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

var _ DynamoAPI = (*dynamodb.Client)(nil)

// ddbDecimal stores money as a DynamoDB number. Reads also accept numeric
// strings; anything unparseable decodes as zero.
type ddbDecimal struct {
	v decimal.Decimal
}

func dec(v decimal.Decimal) ddbDecimal { return ddbDecimal{v: v} }

func (d ddbDecimal) MarshalDynamoDBAttributeValue() (types.AttributeValue, error) {
	return &types.AttributeValueMemberN{Value: d.v.String()}, nil
}

func (d *ddbDecimal) UnmarshalDynamoDBAttributeValue(av types.AttributeValue) error {
	switch v := av.(type) {
	case *types.AttributeValueMemberN:
		d.v = parseDecimal(v.Value)
	case *types.AttributeValueMemberS:
		d.v = parseDecimal(v.Value)
	default:
		d.v = decimal.Zero
	}
	return nil
}

func parseDecimal(s string) decimal.Decimal {
	v, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return v
}

// ddbTime stores timestamps as RFC3339 strings in UTC. Reads also accept
// plain dates and epoch milliseconds; anything else decodes as the zero time.
type ddbTime struct {
	t time.Time
}

func tm(t time.Time) ddbTime { return ddbTime{t: t} }

func tmPtr(t *time.Time) ddbTime {
	if t == nil {
		return ddbTime{}
	}
	return ddbTime{t: *t}
}

func (d ddbTime) ptr() *time.Time {
	if d.t.IsZero() {
		return nil
	}
	t := d.t
	return &t
}

var timeLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

func (d ddbTime) MarshalDynamoDBAttributeValue() (types.AttributeValue, error) {
	if d.t.IsZero() {
		return &types.AttributeValueMemberNULL{Value: true}, nil
	}
	return &types.AttributeValueMemberS{Value: d.t.UTC().Format(time.RFC3339Nano)}, nil
}

func (d *ddbTime) UnmarshalDynamoDBAttributeValue(av types.AttributeValue) error {
	d.t = time.Time{}
	switch v := av.(type) {
	case *types.AttributeValueMemberS:
		s := strings.TrimSpace(v.Value)
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				d.t = t
				return nil
			}
		}
	case *types.AttributeValueMemberN:
		if ms, err := strconv.ParseInt(v.Value, 10, 64); err == nil {
			d.t = time.UnixMilli(ms).UTC()
		}
	}
	return nil
}

func idKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

// scanAll reads every item of table, following pagination.
func scanAll[T any](ctx context.Context, ddb DynamoAPI, table string) ([]T, error) {
	out := make([]T, 0)
	p := dynamodb.NewScanPaginator(ddb, &dynamodb.ScanInput{
		TableName: aws.String(table),
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []T
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		out = append(out, items...)
	}
	return out, nil
}
