package interfaces

import (
	"context"

	"bengkel_service/internal/domain/entities"
)

// Read-only views of the collections maintained by other modules.

type ICashierTransactionRepository interface {
	List(ctx context.Context) ([]entities.CashierTransaction, error)
}

type IAssetRepository interface {
	List(ctx context.Context) ([]entities.Asset, error)
}

// ISettingsRepository returns the settings singleton; a missing document
// yields zero settings.
type ISettingsRepository interface {
	Get(ctx context.Context) (entities.Settings, error)
}
