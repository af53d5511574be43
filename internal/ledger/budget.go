package ledger

import (
	"math"

	"github.com/dnguyen-vn/costflow/internal/model"
)

// BudgetStatus classifies budget usage against the fixed thresholds.
type BudgetStatus string

const (
	// BudgetOK means usage is at or below 70%.
	BudgetOK BudgetStatus = "ok"
	// BudgetWarning means usage is above 70% and at or below 90%.
	BudgetWarning BudgetStatus = "warning"
	// BudgetOver means usage is above 90%.
	BudgetOver BudgetStatus = "over budget"
)

const (
	warningThreshold = 70
	overThreshold    = 90
)

// Summary is the derived budget position for the whole collection.
type Summary struct {
	Status       BudgetStatus
	TotalSpent   int64
	BudgetLimit  int64
	UsagePercent int
}

// TotalSpent sums spent amounts over the full collection, ignoring any
// active search filter.
func TotalSpent(costs []model.CostItem) int64 {
	var total int64
	for i := range costs {
		total += costs[i].SpentAmount
	}
	return total
}

// Summarize derives the budget position from a collection and a project
// budget limit. A non-positive limit yields zero usage.
func Summarize(costs []model.CostItem, budgetLimit int64) Summary {
	total := TotalSpent(costs)

	usage := 0
	if budgetLimit > 0 {
		usage = int(math.Round(float64(total) / float64(budgetLimit) * 100))
	}

	status := BudgetOK
	switch {
	case usage > overThreshold:
		status = BudgetOver
	case usage > warningThreshold:
		status = BudgetWarning
	}

	return Summary{
		TotalSpent:   total,
		BudgetLimit:  budgetLimit,
		UsagePercent: usage,
		Status:       status,
	}
}

// Summary derives the budget position for this ledger.
func (l *Ledger) Summary() Summary {
	return Summarize(l.costs, l.budgetLimit)
}
