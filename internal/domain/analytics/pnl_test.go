package analytics

import (
	"testing"
	"time"

	"bengkel_service/internal/domain/entities"

	"github.com/stretchr/testify/require"
)

func TestClassifyTransaction(t *testing.T) {
	cases := []struct {
		name string
		tx   entities.CashierTransaction
		want ExpenseCategory
	}{
		{name: "purchase order reference", tx: entities.CashierTransaction{Category: "Lain-lain", RefPOID: "po-1"}, want: CategoryCOGSVendor},
		{name: "vendor category", tx: entities.CashierTransaction{Category: "Pembayaran Vendor"}, want: CategoryCOGSVendor},
		{name: "description keyword", tx: entities.CashierTransaction{Category: "Kas Keluar", Description: "beli BAHAN cat"}, want: CategoryCOGSVendor},
		{name: "payroll", tx: entities.CashierTransaction{Category: "Gaji Karyawan"}, want: CategoryPayroll},
		{name: "tax", tx: entities.CashierTransaction{Category: "Setor PPN"}, want: CategoryTax},
		{name: "asset purchase", tx: entities.CashierTransaction{Category: "Pembelian Peralatan"}, want: CategoryAssetPurchase},
		{name: "fallback", tx: entities.CashierTransaction{Category: "Listrik"}, want: CategoryOperational},
		{name: "first rule wins", tx: entities.CashierTransaction{Category: "Bonus supplier"}, want: CategoryCOGSVendor},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ClassifyTransaction(tc.tx, DefaultClassificationRules))
		})
	}
}

func TestClassifyTransactionRuleOrder(t *testing.T) {
	tx := entities.CashierTransaction{Category: "gaji pajak"}
	payrollFirst := []ClassificationRule{
		KeywordRule("payroll", CategoryPayroll, "gaji"),
		KeywordRule("tax", CategoryTax, "pajak"),
	}
	taxFirst := []ClassificationRule{payrollFirst[1], payrollFirst[0]}

	require.Equal(t, CategoryPayroll, ClassifyTransaction(tx, payrollFirst))
	require.Equal(t, CategoryTax, ClassifyTransaction(tx, taxFirst))
	require.Equal(t, CategoryOperational, ClassifyTransaction(tx, nil))
}

func TestComputeProfitAndLoss(t *testing.T) {
	now := at(2025, time.June, 3, 10)
	p := Period{Month: time.May, Year: 2025}
	txs := []entities.CashierTransaction{
		{Type: entities.TransactionIn, Amount: d(10_000_000), Date: at(2025, time.May, 2, 9), Category: "Pelunasan"},
		{Type: entities.TransactionIn, Amount: d(5_000_000), Date: at(2025, time.May, 15, 9), Category: "DP"},
		{Type: entities.TransactionIn, Amount: d(9_999_999), Date: at(2025, time.April, 30, 9), Category: "Pelunasan"},
		{Type: entities.TransactionOut, Amount: d(4_000_000), Date: at(2025, time.May, 3, 9), Category: "Pembayaran Vendor"},
		{Type: entities.TransactionOut, Amount: d(3_000_000), Date: at(2025, time.May, 25, 9), Category: "Gaji"},
		{Type: entities.TransactionOut, Amount: d(500_000), Date: at(2025, time.May, 26, 9), Category: "Pajak"},
		{Type: entities.TransactionOut, Amount: d(2_000_000), Date: at(2025, time.May, 27, 9), Category: "Aset", Description: "kompresor"},
		{Type: entities.TransactionOut, Amount: d(700_000), Date: at(2025, time.May, 28, 9), Category: "Listrik"},
	}
	assets := []entities.Asset{
		{Status: entities.AssetStatusActive, PurchaseDate: at(2024, time.January, 1, 9), MonthlyDepreciation: d(250_000)},
		{Status: entities.AssetStatusActive, PurchaseDate: at(2025, time.May, 31, 9), MonthlyDepreciation: d(100_000)},
		{Status: entities.AssetStatusActive, PurchaseDate: at(2025, time.June, 1, 0), MonthlyDepreciation: d(999_000)},
		{Status: entities.AssetStatusInactive, PurchaseDate: at(2024, time.January, 1, 9), MonthlyDepreciation: d(999_000)},
	}

	pl := ComputeProfitAndLoss(txs, assets, p, now, nil)

	require.True(t, d(15_000_000).Equal(pl.Revenue))
	require.True(t, d(4_000_000).Equal(pl.COGSVendor))
	require.True(t, d(11_000_000).Equal(pl.GrossProfit))
	require.True(t, d(3_000_000).Equal(pl.Payroll))
	require.True(t, d(500_000).Equal(pl.Tax))
	require.True(t, d(2_000_000).Equal(pl.AssetPurchase))
	require.True(t, d(700_000).Equal(pl.Operational))
	require.True(t, d(350_000).Equal(pl.Depreciation), "got %s", pl.Depreciation)
	// 11,000,000 - (3,000,000 + 700,000 + 500,000 + 350,000)
	require.True(t, d(6_450_000).Equal(pl.NetProfit), "got %s", pl.NetProfit)
	require.True(t, d(15_000_000).Equal(pl.CashIn))
	require.True(t, d(10_200_000).Equal(pl.CashOut))
	require.True(t, d(4_800_000).Equal(pl.NetCashFlow))
}
