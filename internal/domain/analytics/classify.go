package analytics

import (
	"strings"

	"bengkel_service/internal/domain/entities"
)

// ExpenseCategory is the accounting class of an outgoing transaction.
type ExpenseCategory string

const (
	CategoryCOGSVendor    ExpenseCategory = "cogsVendor"
	CategoryPayroll       ExpenseCategory = "payroll"
	CategoryTax           ExpenseCategory = "tax"
	CategoryAssetPurchase ExpenseCategory = "assetPurchase"
	CategoryOperational   ExpenseCategory = "operational"
)

// ClassificationRule tags a transaction with Category when Match holds.
type ClassificationRule struct {
	Name     string
	Category ExpenseCategory
	Match    func(tx entities.CashierTransaction) bool
}

// KeywordRule matches when the lower-cased category or description contains
// any of the keywords.
func KeywordRule(name string, category ExpenseCategory, keywords ...string) ClassificationRule {
	return ClassificationRule{
		Name:     name,
		Category: category,
		Match: func(tx entities.CashierTransaction) bool {
			return containsAny(tx.Category, keywords) || containsAny(tx.Description, keywords)
		},
	}
}

func containsAny(s string, keywords []string) bool {
	s = strings.ToLower(s)
	if s == "" {
		return false
	}
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

// DefaultClassificationRules is evaluated top to bottom; the first match wins.
// Anything unmatched is operational.
var DefaultClassificationRules = []ClassificationRule{
	{
		Name:     "purchase-order-payment",
		Category: CategoryCOGSVendor,
		Match:    func(tx entities.CashierTransaction) bool { return strings.TrimSpace(tx.RefPOID) != "" },
	},
	KeywordRule("vendor", CategoryCOGSVendor, "vendor", "supplier", "sparepart", "spare part", "bahan", "material", "sublet"),
	KeywordRule("payroll", CategoryPayroll, "gaji", "salary", "payroll", "upah", "bonus", "insentif"),
	KeywordRule("tax", CategoryTax, "pajak", "tax", "ppn", "pph"),
	KeywordRule("asset", CategoryAssetPurchase, "aset", "asset", "peralatan", "equipment", "inventaris"),
}

// ClassifyTransaction returns the category of the first matching rule.
func ClassifyTransaction(tx entities.CashierTransaction, rules []ClassificationRule) ExpenseCategory {
	for _, r := range rules {
		if r.Match != nil && r.Match(tx) {
			return r.Category
		}
	}
	return CategoryOperational
}
