// Package tax computes per-line and aggregate tax amounts for project costs.
//
// All functions are pure. Amounts are integer VND; rates are percentages.
// Callers are responsible for passing non-negative amounts and rates — the
// engine does not clamp or reject out-of-range inputs.
package tax

import (
	"math"

	"github.com/dnguyen-vn/costflow/internal/model"
)

// Statutory rates for well-known category names. This table is consulted
// before any user-defined category list, so a user category reusing one of
// these literal names can never shadow the statutory rate. The set of
// literals is fixed; both Vietnamese and English spellings are listed where
// the product historically used both.
var statutoryRates = map[string]float64{
	"Hosting":               10,
	"HOSTING":               10,
	"Domain":                10,
	"Tên miền":              10,
	"Nâng cấp tính năng":    10,
	"Thu nhập doanh nghiệp": 25,
}

// Result is the tax breakdown for a single amount.
type Result struct {
	OriginalAmount int64
	Rate           float64
	TaxAmount      int64
	TotalWithTax   int64
}

// Outcome is the result of applying tax to a cost line. When no tax applies
// (effective rate is zero) Applied is false and the remaining fields are
// zero; callers must not read them as "tax of zero was computed".
type Outcome struct {
	Rate         float64
	TaxAmount    int64
	TotalWithTax int64
	Applied      bool
}

// Totals aggregates tax across a collection of cost lines.
type Totals struct {
	Original int64
	Tax      int64
	WithTax  int64
}

// Calculate computes the tax breakdown for amount at the given percent rate.
// The tax amount is rounded half-up to the nearest currency unit.
func Calculate(amount int64, rate float64) Result {
	taxAmount := int64(math.Round(float64(amount) * rate / 100))
	return Result{
		OriginalAmount: amount,
		Rate:           rate,
		TaxAmount:      taxAmount,
		TotalWithTax:   amount + taxAmount,
	}
}

// DefaultRate resolves the tax rate for a category name. Statutory rates win
// over user-defined categories; a name found in neither yields zero.
func DefaultRate(categoryName string, categories []model.Category) float64 {
	if rate, ok := statutoryRates[categoryName]; ok {
		return rate
	}
	for i := range categories {
		if categories[i].Name == categoryName && categories[i].TaxRate != nil {
			return *categories[i].TaxRate
		}
	}
	return 0
}

// IsTaxable reports whether costs in the named category attract tax, either
// statutorily or through a user-defined positive rate.
func IsTaxable(categoryName string, categories []model.Category) bool {
	if _, ok := statutoryRates[categoryName]; ok {
		return true
	}
	for i := range categories {
		if categories[i].Name == categoryName && categories[i].TaxRate != nil {
			return *categories[i].TaxRate > 0
		}
	}
	return false
}

// Apply resolves the effective rate for a cost line and computes tax on its
// spent amount. A per-item rate override takes precedence over category
// resolution. A zero effective rate yields Outcome{Applied: false}.
func Apply(cost model.CostItem, categories []model.Category) Outcome {
	rate := DefaultRate(cost.Category, categories)
	if cost.TaxRate != nil {
		rate = *cost.TaxRate
	}
	if rate <= 0 {
		return Outcome{}
	}

	result := Calculate(cost.SpentAmount, rate)
	return Outcome{
		Applied:      true,
		Rate:         rate,
		TaxAmount:    result.TaxAmount,
		TotalWithTax: result.TotalWithTax,
	}
}

// Sum folds Apply over a collection. Untaxed lines contribute their spent
// amount to WithTax, so WithTax is always the effective grand total.
func Sum(costs []model.CostItem, categories []model.Category) Totals {
	var totals Totals
	for i := range costs {
		totals.Original += costs[i].SpentAmount

		outcome := Apply(costs[i], categories)
		if outcome.Applied {
			totals.Tax += outcome.TaxAmount
			totals.WithTax += outcome.TotalWithTax
		} else {
			totals.WithTax += costs[i].SpentAmount
		}
	}
	return totals
}
