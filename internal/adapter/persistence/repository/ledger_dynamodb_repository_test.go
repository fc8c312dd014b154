package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"bengkel_service/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/require"
)

func TestCashierTransactionDynamoRepository_List(t *testing.T) {
	ddb := newFakeDynamo()
	ddb.items["tx-1"] = map[string]types.AttributeValue{
		"id":         &types.AttributeValueMemberS{Value: "tx-1"},
		"type":       &types.AttributeValueMemberS{Value: " in "},
		"amount":     &types.AttributeValueMemberN{Value: "400000"},
		"date":       &types.AttributeValueMemberS{Value: "2025-05-24T02:00:00Z"},
		"category":   &types.AttributeValueMemberS{Value: "DP"},
		"ref_job_id": &types.AttributeValueMemberS{Value: "job-1"},
	}
	repo := NewCashierTransactionDynamoRepository(ddb, "")

	txs, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, txs, 1)
	require.Equal(t, entities.TransactionIn, txs[0].Type)
	require.True(t, money(400_000).Equal(txs[0].Amount))
	require.True(t, time.Date(2025, time.May, 24, 2, 0, 0, 0, time.UTC).Equal(txs[0].Date))
	require.Equal(t, "job-1", txs[0].RefJobID)
}

func TestAssetDynamoRepository_List(t *testing.T) {
	ddb := newFakeDynamo()
	ddb.items["a-1"] = map[string]types.AttributeValue{
		"id":                   &types.AttributeValueMemberS{Value: "a-1"},
		"name":                 &types.AttributeValueMemberS{Value: "Kompresor"},
		"purchase_date":        &types.AttributeValueMemberS{Value: "2024-01-10"},
		"monthly_depreciation": &types.AttributeValueMemberS{Value: "250000"},
		"status":               &types.AttributeValueMemberS{Value: "Active"},
	}
	assets, err := NewAssetDynamoRepository(ddb, "").List(context.Background())
	require.NoError(t, err)
	require.Len(t, assets, 1)
	require.Equal(t, entities.AssetStatusActive, assets[0].Status)
	require.True(t, money(250_000).Equal(assets[0].MonthlyDepreciation))
	require.True(t, assets[0].PurchasePrice.IsZero())
}

func TestSettingsDynamoRepository_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("missing singleton", func(t *testing.T) {
		settings, err := NewSettingsDynamoRepository(newFakeDynamo(), "", "").Get(ctx)
		require.NoError(t, err)
		require.True(t, settings.MonthlyTarget.IsZero())
		require.Empty(t, settings.MechanicNames)
	})

	t.Run("stored singleton", func(t *testing.T) {
		ddb := newFakeDynamo()
		ddb.items["global"] = map[string]types.AttributeValue{
			"id":             &types.AttributeValueMemberS{Value: "global"},
			"monthly_target": &types.AttributeValueMemberN{Value: "600000000"},
			"mechanic_names": &types.AttributeValueMemberL{Value: []types.AttributeValue{
				&types.AttributeValueMemberS{Value: "Andi"},
				&types.AttributeValueMemberS{Value: "Budi"},
			}},
		}
		settings, err := NewSettingsDynamoRepository(ddb, "settings", "global").Get(ctx)
		require.NoError(t, err)
		require.True(t, money(600_000_000).Equal(settings.MonthlyTarget))
		require.Equal(t, []string{"Andi", "Budi"}, settings.MechanicNames)
	})
}

func TestDocumentNumberDynamoClaimer_Claim(t *testing.T) {
	ctx := context.Background()

	t.Run("free number", func(t *testing.T) {
		ddb := newFakeDynamo()
		ok, err := NewDocumentNumberDynamoClaimer(ddb, "").Claim(ctx, "WO25050001", "job-1")
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, "document_numbers", *ddb.lastPut.TableName)
		require.Equal(t, "attribute_not_exists(#number) OR #job_id = :job_id", *ddb.lastPut.ConditionExpression)
		require.Contains(t, ddb.items, "WO25050001")
	})

	t.Run("taken number", func(t *testing.T) {
		ddb := newFakeDynamo()
		ddb.putErr = &types.ConditionalCheckFailedException{}
		ok, err := NewDocumentNumberDynamoClaimer(ddb, "").Claim(ctx, "WO25050001", "job-2")
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("store failure", func(t *testing.T) {
		ddb := newFakeDynamo()
		ddb.putErr = errors.New("unavailable")
		_, err := NewDocumentNumberDynamoClaimer(ddb, "").Claim(ctx, "WO25050001", "job-2")
		require.EqualError(t, err, "unavailable")
	})
}
