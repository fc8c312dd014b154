package analytics

import (
	"time"

	"bengkel_service/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// ProfitAndLoss is the cash-basis statement of a period.
//
// Depreciation is a non-cash expense: it reduces NetProfit but not
// NetCashFlow. Asset purchases are the opposite.
type ProfitAndLoss struct {
	Period        Period          `json:"period"`
	Revenue       decimal.Decimal `json:"revenue"`
	COGSVendor    decimal.Decimal `json:"cogs_vendor"`
	GrossProfit   decimal.Decimal `json:"gross_profit"`
	Payroll       decimal.Decimal `json:"payroll"`
	Operational   decimal.Decimal `json:"operational"`
	Tax           decimal.Decimal `json:"tax"`
	Depreciation  decimal.Decimal `json:"depreciation"`
	AssetPurchase decimal.Decimal `json:"asset_purchase"`
	NetProfit     decimal.Decimal `json:"net_profit"`
	CashIn        decimal.Decimal `json:"cash_in"`
	CashOut       decimal.Decimal `json:"cash_out"`
	NetCashFlow   decimal.Decimal `json:"net_cash_flow"`
}

// Depreciation sums the monthly depreciation of assets that are active and
// already purchased at the end of p.
func Depreciation(assets []entities.Asset, p Period, now time.Time) decimal.Decimal {
	_, end := p.Bounds(now.Location())
	total := decimal.Zero
	for _, a := range assets {
		if a.Status != entities.AssetStatusActive {
			continue
		}
		if !timeOrNow(a.PurchaseDate, now).Before(end) {
			continue
		}
		total = total.Add(a.MonthlyDepreciation)
	}
	return total
}

// ComputeProfitAndLoss folds the period's transactions into a P&L using rules
// to classify outgoing cash. A nil rules slice uses DefaultClassificationRules.
func ComputeProfitAndLoss(txs []entities.CashierTransaction, assets []entities.Asset, p Period, now time.Time, rules []ClassificationRule) ProfitAndLoss {
	if rules == nil {
		rules = DefaultClassificationRules
	}
	pl := ProfitAndLoss{
		Period:        p,
		Revenue:       decimal.Zero,
		COGSVendor:    decimal.Zero,
		Payroll:       decimal.Zero,
		Operational:   decimal.Zero,
		Tax:           decimal.Zero,
		AssetPurchase: decimal.Zero,
		CashIn:        decimal.Zero,
		CashOut:       decimal.Zero,
	}
	for _, tx := range txs {
		if !p.Contains(timeOrNow(tx.Date, now)) {
			continue
		}
		switch tx.Type {
		case entities.TransactionIn:
			pl.CashIn = pl.CashIn.Add(tx.Amount)
			pl.Revenue = pl.Revenue.Add(tx.Amount)
		case entities.TransactionOut:
			pl.CashOut = pl.CashOut.Add(tx.Amount)
			switch ClassifyTransaction(tx, rules) {
			case CategoryCOGSVendor:
				pl.COGSVendor = pl.COGSVendor.Add(tx.Amount)
			case CategoryPayroll:
				pl.Payroll = pl.Payroll.Add(tx.Amount)
			case CategoryTax:
				pl.Tax = pl.Tax.Add(tx.Amount)
			case CategoryAssetPurchase:
				pl.AssetPurchase = pl.AssetPurchase.Add(tx.Amount)
			default:
				pl.Operational = pl.Operational.Add(tx.Amount)
			}
		}
	}
	pl.Depreciation = Depreciation(assets, p, now)
	pl.GrossProfit = pl.Revenue.Sub(pl.COGSVendor)
	pl.NetProfit = pl.GrossProfit.Sub(pl.Payroll.Add(pl.Operational).Add(pl.Tax).Add(pl.Depreciation))
	pl.NetCashFlow = pl.CashIn.Sub(pl.CashOut)
	return pl
}
