package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func income(amount string, date time.Time, category string) Transaction {
	return Transaction{Type: TransactionTypeIncome, Amount: dec(amount), Date: date, Category: category, Currency: CurrencyIDR}
}

func expense(amount string, date time.Time, category string) Transaction {
	return Transaction{Type: TransactionTypeExpense, Amount: dec(amount), Date: date, Category: category, Currency: CurrencyIDR}
}

// -- ComputeFinancialSummary tests --

func TestComputeFinancialSummary_Empty(t *testing.T) {
	summary := ComputeFinancialSummary(nil, day(2025, time.March, 1))

	assert.True(t, summary.TotalBalance.IsZero())
	assert.True(t, summary.Income.IsZero())
	assert.True(t, summary.Expenses.IsZero())
}

func TestComputeFinancialSummary_SalaryAndFood(t *testing.T) {
	m1 := day(2025, time.March, 1)
	txs := []Transaction{
		income("1000000", day(2025, time.March, 3), "Salary"),
		expense("85750", day(2025, time.March, 5), "Food"),
	}

	summary := ComputeFinancialSummary(txs, m1)

	assert.True(t, summary.TotalBalance.Equal(dec("914250")), summary.TotalBalance.String())
	assert.True(t, summary.Income.Equal(dec("1000000")))
	assert.True(t, summary.Expenses.Equal(dec("85750")))
	assert.Equal(t, "91.4", ComputeSavingsRate(summary.Income, summary.Expenses).String())
}

func TestComputeFinancialSummary_BalanceIgnoresMonth(t *testing.T) {
	txs := []Transaction{
		income("500", day(2024, time.January, 10), "Salary"),
		expense("200", day(2024, time.June, 10), "Rent"),
		income("300", day(2025, time.March, 10), "Bonus"),
		expense("50", day(2025, time.March, 12), "Food"),
	}

	summary := ComputeFinancialSummary(txs, day(2025, time.March, 1))

	assert.True(t, summary.TotalBalance.Equal(dec("550")))
	assert.True(t, summary.Income.Equal(dec("300")))
	assert.True(t, summary.Expenses.Equal(dec("50")))
}

func TestComputeFinancialSummary_SameMonthOtherYearExcluded(t *testing.T) {
	txs := []Transaction{
		income("100", day(2024, time.March, 10), "Salary"),
	}

	summary := ComputeFinancialSummary(txs, day(2025, time.March, 1))

	assert.True(t, summary.Income.IsZero())
	assert.True(t, summary.TotalBalance.Equal(dec("100")))
}

func TestComputeFinancialSummary_MixedCurrenciesSummedRaw(t *testing.T) {
	usd := income("10", day(2025, time.March, 2), "Salary")
	usd.Currency = CurrencyUSD
	txs := []Transaction{usd, income("15000", day(2025, time.March, 2), "Salary")}

	summary := ComputeFinancialSummary(txs, day(2025, time.March, 1))

	assert.True(t, summary.Income.Equal(dec("15010")))
}

func TestComputeFinancialSummary_ZeroReferenceMonthUsesNow(t *testing.T) {
	prev := now
	now = func() time.Time { return day(2025, time.August, 20) }
	t.Cleanup(func() { now = prev })

	txs := []Transaction{
		income("70", day(2025, time.August, 1), "Salary"),
		income("30", day(2025, time.July, 31), "Salary"),
	}

	summary := ComputeFinancialSummary(txs, time.Time{})

	assert.True(t, summary.Income.Equal(dec("70")))
}

func TestComputeFinancialSummary_BalanceIsIncomeMinusExpense(t *testing.T) {
	txs := []Transaction{
		income("12.5", day(2023, time.February, 1), "A"),
		expense("2.25", day(2024, time.December, 31), "B"),
		income("100", day(2025, time.May, 1), "C"),
		expense("200", day(2025, time.May, 2), "D"),
	}
	incomeSum, expenseSum := decimal.Zero, decimal.Zero
	for _, tx := range txs {
		if tx.Type == TransactionTypeIncome {
			incomeSum = incomeSum.Add(tx.Amount)
		} else {
			expenseSum = expenseSum.Add(tx.Amount)
		}
	}

	summary := ComputeFinancialSummary(txs, day(2020, time.January, 1))

	assert.True(t, summary.TotalBalance.Equal(incomeSum.Sub(expenseSum)))
	assert.True(t, summary.TotalBalance.IsNegative())
}

// -- ComputeSavingsRate tests --

func TestComputeSavingsRate(t *testing.T) {
	tests := []struct {
		name     string
		income   string
		expenses string
		want     string
	}{
		{name: "no income", income: "0", expenses: "500", want: "0"},
		{name: "break even", income: "100", expenses: "100", want: "0"},
		{name: "half saved", income: "100", expenses: "50", want: "50"},
		{name: "one decimal place", income: "1000000", expenses: "85750", want: "91.4"},
		{name: "overspent", income: "100", expenses: "150", want: "-50"},
		{name: "rounds half up", income: "3", expenses: "2", want: "33.3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeSavingsRate(dec(tt.income), dec(tt.expenses))
			assert.True(t, got.Equal(dec(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

// -- InMonth tests --

func TestInMonth_UsesUTC(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*60*60)
	// 2025-04-01 03:00 WIB is still March in UTC.
	date := time.Date(2025, time.April, 1, 3, 0, 0, 0, jakarta)

	assert.True(t, InMonth(date, day(2025, time.March, 15)))
	assert.False(t, InMonth(date, day(2025, time.April, 15)))
}

func TestMonthStart(t *testing.T) {
	assert.Equal(t, day(2025, time.March, 1), MonthStart(time.Date(2025, time.March, 17, 22, 4, 0, 0, time.UTC)))
}
