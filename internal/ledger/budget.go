package ledger

import (
	"github.com/shopspring/decimal"
)

// CategorySpend is the expense total of one budget category.
type CategorySpend struct {
	Category   string
	TotalSpent decimal.Decimal
}

// BudgetStatus compares a category's ceiling with what was spent against it.
type BudgetStatus struct {
	Name   string
	Budget decimal.Decimal
	Spent  decimal.Decimal
	// IsOverBudget uses the unclamped comparison spent > budget.
	IsOverBudget bool
	// Percentage is round(spent/budget*100), not clamped.
	Percentage int64
	// DisplayPercentage is Percentage clamped to 100 for progress bars.
	DisplayPercentage int64
	// Overage is spent-budget when over budget, zero otherwise.
	Overage decimal.Decimal
	// Unbounded marks a zero budget with a non-zero spend, where the ratio has
	// no finite value.
	Unbounded bool
}

// ComputeCategoryBreakdown sums expense transactions per category. Matching is
// exact, case-sensitive string equality between the category name and the
// transaction category. Every category yields an entry, in input order.
func ComputeCategoryBreakdown(txs []Transaction, categories []BudgetCategory) []CategorySpend {
	spent := make(map[string]decimal.Decimal, len(categories))
	for _, tx := range txs {
		if tx.Type != TransactionTypeExpense {
			continue
		}
		spent[tx.Category] = spent[tx.Category].Add(tx.Amount)
	}

	breakdown := make([]CategorySpend, len(categories))
	for i, category := range categories {
		total, ok := spent[category.Name]
		if !ok {
			total = decimal.Zero
		}
		breakdown[i] = CategorySpend{
			Category:   category.Name,
			TotalSpent: total,
		}
	}
	return breakdown
}

// ComputeBudgetStatus pairs each category with its entry in breakdown (by name)
// and derives the over-budget flag and percentages.
func ComputeBudgetStatus(categories []BudgetCategory, breakdown []CategorySpend) []BudgetStatus {
	spentByName := make(map[string]decimal.Decimal, len(breakdown))
	for _, entry := range breakdown {
		spentByName[entry.Category] = entry.TotalSpent
	}

	statuses := make([]BudgetStatus, len(categories))
	for i, category := range categories {
		spent, ok := spentByName[category.Name]
		if !ok {
			spent = decimal.Zero
		}
		statuses[i] = budgetStatus(category, spent)
	}
	return statuses
}

func budgetStatus(category BudgetCategory, spent decimal.Decimal) BudgetStatus {
	status := BudgetStatus{
		Name:         category.Name,
		Budget:       category.Budget,
		Spent:        spent,
		IsOverBudget: spent.GreaterThan(category.Budget),
		Overage:      decimal.Zero,
	}
	if status.IsOverBudget {
		status.Overage = spent.Sub(category.Budget)
	}

	switch {
	case category.Budget.IsZero() && spent.IsZero():
		// nothing budgeted, nothing spent
	case category.Budget.IsZero():
		status.Percentage = 100
		status.Unbounded = true
	default:
		status.Percentage = spent.Div(category.Budget).Mul(hundred).Round(0).IntPart()
	}

	status.DisplayPercentage = status.Percentage
	if status.DisplayPercentage > 100 {
		status.DisplayPercentage = 100
	}
	return status
}
