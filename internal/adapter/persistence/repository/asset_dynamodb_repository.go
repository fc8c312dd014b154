package repository

import (
	"context"

	"bengkel_service/internal/domain/entities"
	"bengkel_service/internal/usecase/interfaces"
)

const defaultAssetsTableName = "assets"

type assetItem struct {
	ID                  string     `dynamodbav:"id"`
	Name                string     `dynamodbav:"name"`
	PurchaseDate        ddbTime    `dynamodbav:"purchase_date"`
	PurchasePrice       ddbDecimal `dynamodbav:"purchase_price"`
	MonthlyDepreciation ddbDecimal `dynamodbav:"monthly_depreciation"`
	Status              string     `dynamodbav:"status"`
}

type AssetDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IAssetRepository = (*AssetDynamoRepository)(nil)

func NewAssetDynamoRepository(ddb DynamoAPI, tableName string) *AssetDynamoRepository {
	if tableName == "" {
		tableName = defaultAssetsTableName
	}
	return &AssetDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *AssetDynamoRepository) List(ctx context.Context) ([]entities.Asset, error) {
	items, err := scanAll[assetItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Asset, 0, len(items))
	for _, it := range items {
		out = append(out, entities.Asset{
			ID:                  it.ID,
			Name:                it.Name,
			PurchaseDate:        it.PurchaseDate.t,
			PurchasePrice:       it.PurchasePrice.v,
			MonthlyDepreciation: it.MonthlyDepreciation.v,
			Status:              entities.AssetStatus(it.Status),
		})
	}
	return out, nil
}
