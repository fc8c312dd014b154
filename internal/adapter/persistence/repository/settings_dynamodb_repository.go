package repository

import (
	"context"

	"bengkel_service/internal/domain/entities"
	"bengkel_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const (
	defaultSettingsTableName = "settings"
	defaultSettingsKey       = "global"
)

type settingsItem struct {
	ID                string     `dynamodbav:"id"`
	MonthlyTarget     ddbDecimal `dynamodbav:"monthly_target"`
	MechanicNames     []string   `dynamodbav:"mechanic_names"`
	VehicleStatusList []string   `dynamodbav:"vehicle_status_options"`
	WorkStatusList    []string   `dynamodbav:"work_status_options"`
}

// SettingsDynamoRepository reads the settings singleton stored under a fixed key.
type SettingsDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	key       string
}

var _ interfaces.ISettingsRepository = (*SettingsDynamoRepository)(nil)

func NewSettingsDynamoRepository(ddb DynamoAPI, tableName, key string) *SettingsDynamoRepository {
	if tableName == "" {
		tableName = defaultSettingsTableName
	}
	if key == "" {
		key = defaultSettingsKey
	}
	return &SettingsDynamoRepository{ddb: ddb, tableName: tableName, key: key}
}

func (r *SettingsDynamoRepository) Get(ctx context.Context) (entities.Settings, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(r.key),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Settings{}, err
	}
	if len(out.Item) == 0 {
		return entities.Settings{}, nil
	}

	var it settingsItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Settings{}, err
	}
	return entities.Settings{
		MonthlyTarget:     it.MonthlyTarget.v,
		MechanicNames:     it.MechanicNames,
		VehicleStatusList: it.VehicleStatusList,
		WorkStatusList:    it.WorkStatusList,
	}, nil
}
