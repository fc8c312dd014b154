package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Collection names of the ledger store.
const (
	CollectionJobs         = "jobs"
	CollectionTransactions = "cashier_transactions"
	CollectionAssets       = "assets"
	CollectionSettings     = "settings"
)

type TransactionType string

const (
	TransactionIn  TransactionType = "IN"
	TransactionOut TransactionType = "OUT"
)

// CashierTransaction is an immutable cash movement created by the cashier module.
type CashierTransaction struct {
	ID          string          `json:"id"`
	Type        TransactionType `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
	RefJobID    string          `json:"ref_job_id,omitempty"`
	RefPOID     string          `json:"ref_po_id,omitempty"`
}

type AssetStatus string

const (
	AssetStatusActive   AssetStatus = "Active"
	AssetStatusInactive AssetStatus = "Inactive"
)

// Asset is a depreciable fixed asset.
type Asset struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	PurchaseDate        time.Time       `json:"purchase_date"`
	PurchasePrice       decimal.Decimal `json:"purchase_price"`
	MonthlyDepreciation decimal.Decimal `json:"monthly_depreciation"`
	Status              AssetStatus     `json:"status"`
}

// Settings is the process-wide configuration singleton.
type Settings struct {
	MonthlyTarget     decimal.Decimal `json:"monthly_target"`
	MechanicNames     []string        `json:"mechanic_names"`
	VehicleStatusList []string        `json:"vehicle_status_options,omitempty"`
	WorkStatusList    []string        `json:"work_status_options,omitempty"`
}
