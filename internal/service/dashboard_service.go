package service

import (
	"context"
	"sort"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/household-server/internal/ledger"
	"github.com/carson-networks/household-server/internal/logging"
	"github.com/carson-networks/household-server/internal/storage"
	"github.com/carson-networks/household-server/internal/storage/sqlconfig"
)

const recentTransactionCount = 5

// DashboardQuery selects the period a dashboard is computed for.
type DashboardQuery struct {
	// Month is the reference month. Zero means the current month.
	Month time.Time
	// Seasonal buckets the monthly series across all years instead of the
	// reference year only.
	Seasonal bool
	// MonthLabels overrides the series labels.
	MonthLabels []string
}

// Dashboard is every aggregate shown on the overview page.
type Dashboard struct {
	Month              time.Time
	Summary            ledger.FinancialSummary
	SavingsRate        decimal.Decimal
	Breakdown          []ledger.CategorySpend
	BudgetStatus       []ledger.BudgetStatus
	Series             []ledger.MonthlyPoint
	RecentTransactions []ledger.Transaction
}

// DashboardService computes the overview aggregates from the full transaction
// history. It only reads.
type DashboardService struct {
	storage *storage.Storage
}

func NewDashboardService(store *storage.Storage) *DashboardService {
	return &DashboardService{storage: store}
}

func (s *DashboardService) Get(ctx context.Context, userID uuid.UUID, query DashboardQuery) (Dashboard, error) {
	month, _ := monthRange(query.Month)

	var transactionRows []*sqlconfig.Transaction
	var categoryRows []*sqlconfig.BudgetCategory

	fetchDone := logging.GetLogData(ctx).AddTiming("dashboardFetch")
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		rows, err := s.storage.Transactions.List(groupCtx, &sqlconfig.TransactionFilter{UserID: userID})
		transactionRows = rows
		return err
	})
	group.Go(func() error {
		rows, err := s.storage.BudgetCategories.List(groupCtx, userID)
		categoryRows = rows
		return err
	})
	err := group.Wait()
	fetchDone()
	if err != nil {
		return Dashboard{}, err
	}

	txs := toLedgerTransactions(transactionRows)
	categories := toLedgerCategories(categoryRows)

	monthTxs := make([]ledger.Transaction, 0, len(txs))
	for _, tx := range txs {
		if ledger.InMonth(tx.Date, month) {
			monthTxs = append(monthTxs, tx)
		}
	}

	summary := ledger.ComputeFinancialSummary(txs, month)
	breakdown := ledger.ComputeCategoryBreakdown(monthTxs, categories)

	seriesOpts := ledger.SeriesOptions{Year: month.Year()}
	if query.Seasonal {
		seriesOpts.Year = 0
	}

	return Dashboard{
		Month:              month,
		Summary:            summary,
		SavingsRate:        ledger.ComputeSavingsRate(summary.Income, summary.Expenses),
		Breakdown:          breakdown,
		BudgetStatus:       ledger.ComputeBudgetStatus(categories, breakdown),
		Series:             ledger.GenerateMonthlySeries(txs, query.MonthLabels, seriesOpts),
		RecentTransactions: recentTransactions(txs, recentTransactionCount),
	}, nil
}

// recentTransactions returns the n latest transactions by date, newest
// created first on ties.
func recentTransactions(txs []ledger.Transaction, n int) []ledger.Transaction {
	recent := make([]ledger.Transaction, len(txs))
	copy(recent, txs)
	sort.SliceStable(recent, func(i, j int) bool {
		if !recent[i].Date.Equal(recent[j].Date) {
			return recent[i].Date.After(recent[j].Date)
		}
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > n {
		recent = recent[:n]
	}
	return recent
}
