package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

var now = time.Now

// FinancialSummary is the headline of the dashboard.
type FinancialSummary struct {
	// TotalBalance is the signed sum of every transaction regardless of month.
	TotalBalance decimal.Decimal
	// Income and Expenses only cover the reference month.
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

// ComputeFinancialSummary folds txs into the running balance and the reference
// month's income and expense totals. A zero referenceMonth means the current month.
// Currency tags are ignored: amounts of different currencies are summed as-is.
func ComputeFinancialSummary(txs []Transaction, referenceMonth time.Time) FinancialSummary {
	if referenceMonth.IsZero() {
		referenceMonth = now()
	}

	summary := FinancialSummary{
		TotalBalance: decimal.Zero,
		Income:       decimal.Zero,
		Expenses:     decimal.Zero,
	}
	for _, tx := range txs {
		summary.TotalBalance = summary.TotalBalance.Add(tx.Signed())

		if !InMonth(tx.Date, referenceMonth) {
			continue
		}
		switch tx.Type {
		case TransactionTypeIncome:
			summary.Income = summary.Income.Add(tx.Amount)
		case TransactionTypeExpense:
			summary.Expenses = summary.Expenses.Add(tx.Amount)
		}
	}
	return summary
}

// ComputeSavingsRate returns (income-expenses)/income*100 rounded to one decimal
// place, or 0 when there is no income. The result may be negative.
func ComputeSavingsRate(income, expenses decimal.Decimal) decimal.Decimal {
	if income.IsZero() {
		return decimal.Zero
	}
	return income.Sub(expenses).Div(income).Mul(hundred).Round(1)
}

// InMonth reports whether date falls in the same calendar month (and year) as ref.
func InMonth(date, ref time.Time) bool {
	date = date.UTC()
	ref = ref.UTC()
	return date.Year() == ref.Year() && date.Month() == ref.Month()
}

// MonthStart returns the first instant of ref's month in UTC.
func MonthStart(ref time.Time) time.Time {
	ref = ref.UTC()
	return time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
}
