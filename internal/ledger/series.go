package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultMonthLabels are used when no labels are supplied.
var DefaultMonthLabels = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// MonthlyPoint is one bucket of the income/expense chart.
type MonthlyPoint struct {
	Month    string
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

// SeriesOptions selects which transactions are bucketed.
type SeriesOptions struct {
	// Year restricts the series to one calendar year. Zero buckets every
	// transaction by month alone, mixing years together.
	Year int
}

// GenerateMonthlySeries returns exactly 12 points, one per month, labelled from
// labels. Missing labels fall back to DefaultMonthLabels.
func GenerateMonthlySeries(txs []Transaction, labels []string, opts SeriesOptions) []MonthlyPoint {
	points := make([]MonthlyPoint, 12)
	for i := range points {
		label := DefaultMonthLabels[i]
		if i < len(labels) && labels[i] != "" {
			label = labels[i]
		}
		points[i] = MonthlyPoint{
			Month:    label,
			Income:   decimal.Zero,
			Expenses: decimal.Zero,
		}
	}

	for _, tx := range txs {
		date := tx.Date.UTC()
		if opts.Year != 0 && date.Year() != opts.Year {
			continue
		}
		point := &points[date.Month()-time.January]
		switch tx.Type {
		case TransactionTypeIncome:
			point.Income = point.Income.Add(tx.Amount)
		case TransactionTypeExpense:
			point.Expenses = point.Expenses.Add(tx.Amount)
		}
	}
	return points
}
