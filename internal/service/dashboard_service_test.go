package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/household-server/internal/storage/sqlconfig"
)

func newTestDashboardService(t *testing.T) (*DashboardService, tableMocks) {
	t.Helper()
	store, _, m := newTableMocks(t)
	return NewDashboardService(store), m
}

func dashboardRows() []*sqlconfig.Transaction {
	return []*sqlconfig.Transaction{
		{ID: newID(), Date: day(2025, time.March, 1), Amount: dec("5000000"), Type: "income", Category: "Salary", CreatedAt: day(2025, time.March, 1)},
		{ID: newID(), Date: day(2025, time.March, 10), Amount: dec("430000"), Type: "expense", Category: "Food", CreatedAt: day(2025, time.March, 10)},
		{ID: newID(), Date: day(2025, time.February, 3), Amount: dec("200000"), Type: "expense", Category: "Food", CreatedAt: day(2025, time.February, 3)},
		{ID: newID(), Date: day(2024, time.March, 5), Amount: dec("1000000"), Type: "income", Category: "Salary", CreatedAt: day(2024, time.March, 5)},
	}
}

func TestDashboardGet(t *testing.T) {
	svc, m := newTestDashboardService(t)
	userID := newID()

	m.transactions.EXPECT().List(mock.Anything, mock.MatchedBy(func(f *sqlconfig.TransactionFilter) bool {
		return f.UserID == userID && f.Limit == 0 && f.DateFrom == nil
	})).Return(dashboardRows(), nil)
	m.categories.EXPECT().List(mock.Anything, userID).Return([]*sqlconfig.BudgetCategory{
		{ID: newID(), Name: "Food", Budget: dec("400000")},
	}, nil)

	dashboard, err := svc.Get(context.Background(), userID, DashboardQuery{Month: day(2025, time.March, 20)})

	require.NoError(t, err)
	assert.Equal(t, day(2025, time.March, 1), dashboard.Month)
	assert.True(t, dashboard.Summary.TotalBalance.Equal(dec("5370000")))
	assert.True(t, dashboard.Summary.Income.Equal(dec("5000000")))
	assert.True(t, dashboard.Summary.Expenses.Equal(dec("430000")))
	assert.Equal(t, "91.4", dashboard.SavingsRate.String())

	require.Len(t, dashboard.Breakdown, 1)
	assert.True(t, dashboard.Breakdown[0].TotalSpent.Equal(dec("430000")), "only the reference month")
	require.Len(t, dashboard.BudgetStatus, 1)
	assert.True(t, dashboard.BudgetStatus[0].IsOverBudget)
	assert.Equal(t, int64(108), dashboard.BudgetStatus[0].Percentage)

	require.Len(t, dashboard.Series, 12)
	assert.True(t, dashboard.Series[2].Income.Equal(dec("5000000")), "2024 excluded")
	assert.True(t, dashboard.Series[1].Expenses.Equal(dec("200000")))

	require.Len(t, dashboard.RecentTransactions, 4)
	assert.Equal(t, day(2025, time.March, 10), dashboard.RecentTransactions[0].Date)
}

func TestDashboardGet_Seasonal(t *testing.T) {
	svc, m := newTestDashboardService(t)
	userID := newID()

	m.transactions.EXPECT().List(mock.Anything, mock.Anything).Return(dashboardRows(), nil)
	m.categories.EXPECT().List(mock.Anything, userID).Return(nil, nil)

	dashboard, err := svc.Get(context.Background(), userID, DashboardQuery{
		Month:       day(2025, time.March, 20),
		Seasonal:    true,
		MonthLabels: []string{"Januari", "Februari", "Maret"},
	})

	require.NoError(t, err)
	assert.Equal(t, "Maret", dashboard.Series[2].Month)
	assert.Equal(t, "Apr", dashboard.Series[3].Month)
	assert.True(t, dashboard.Series[2].Income.Equal(dec("6000000")), "years mixed together")
}

func TestDashboardGet_FetchError(t *testing.T) {
	svc, m := newTestDashboardService(t)
	userID := newID()

	m.transactions.EXPECT().List(mock.Anything, mock.Anything).Return(nil, errors.New("db down"))
	m.categories.EXPECT().List(mock.Anything, userID).Return(nil, nil).Maybe()

	_, err := svc.Get(context.Background(), userID, DashboardQuery{Month: day(2025, time.March, 1)})

	assert.EqualError(t, err, "db down")
}

func TestRecentTransactions_LimitAndOrder(t *testing.T) {
	txs := toLedgerTransactions(dashboardRows())

	recent := recentTransactions(txs, 2)

	require.Len(t, recent, 2)
	assert.Equal(t, day(2025, time.March, 10), recent[0].Date)
	assert.Equal(t, day(2025, time.March, 1), recent[1].Date)
	assert.Equal(t, day(2025, time.March, 1), txs[0].Date, "input untouched")
}
