package dashboard

import (
	"github.com/carson-networks/household-server/internal/handlers"
	"github.com/carson-networks/household-server/internal/ledger"
	"github.com/carson-networks/household-server/internal/service"
)

type Summary struct {
	TotalBalance string `json:"totalBalance" doc:"Signed sum of every transaction"`
	Income       string `json:"income" doc:"Income in the month"`
	Expenses     string `json:"expenses" doc:"Expenses in the month"`
}

type CategorySpend struct {
	Category   string `json:"category"`
	TotalSpent string `json:"totalSpent"`
}

type BudgetStatus struct {
	Name              string `json:"name"`
	Budget            string `json:"budget"`
	Spent             string `json:"spent"`
	IsOverBudget      bool   `json:"isOverBudget"`
	Percentage        int64  `json:"percentage"`
	DisplayPercentage int64  `json:"displayPercentage"`
	Overage           string `json:"overage"`
	Unbounded         bool   `json:"unbounded"`
}

type MonthlyPoint struct {
	Month    string `json:"month" doc:"Bucket label"`
	Income   string `json:"income"`
	Expenses string `json:"expenses"`
}

type RecentTransaction struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Amount      string `json:"amount"`
	Type        string `json:"type"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Currency    string `json:"currency"`
}

// Dashboard is the API response model of the overview page.
type Dashboard struct {
	Month              string              `json:"month" doc:"Reference month, YYYY-MM"`
	Summary            Summary             `json:"summary"`
	SavingsRate        string              `json:"savingsRate" doc:"Percentage of the month's income kept, one decimal place"`
	Breakdown          []CategorySpend     `json:"breakdown"`
	BudgetStatus       []BudgetStatus      `json:"budgetStatus"`
	Series             []MonthlyPoint      `json:"series" doc:"Twelve monthly income and expense buckets"`
	RecentTransactions []RecentTransaction `json:"recentTransactions"`
}

func toDashboard(d service.Dashboard) Dashboard {
	out := Dashboard{
		Month: d.Month.Format(handlers.MonthLayout),
		Summary: Summary{
			TotalBalance: d.Summary.TotalBalance.String(),
			Income:       d.Summary.Income.String(),
			Expenses:     d.Summary.Expenses.String(),
		},
		SavingsRate:        d.SavingsRate.String(),
		Breakdown:          make([]CategorySpend, len(d.Breakdown)),
		BudgetStatus:       make([]BudgetStatus, len(d.BudgetStatus)),
		Series:             make([]MonthlyPoint, len(d.Series)),
		RecentTransactions: make([]RecentTransaction, len(d.RecentTransactions)),
	}
	for i, spend := range d.Breakdown {
		out.Breakdown[i] = CategorySpend{Category: spend.Category, TotalSpent: spend.TotalSpent.String()}
	}
	for i, status := range d.BudgetStatus {
		out.BudgetStatus[i] = toBudgetStatus(status)
	}
	for i, point := range d.Series {
		out.Series[i] = MonthlyPoint{Month: point.Month, Income: point.Income.String(), Expenses: point.Expenses.String()}
	}
	for i, tx := range d.RecentTransactions {
		out.RecentTransactions[i] = toRecentTransaction(tx)
	}
	return out
}

func toBudgetStatus(status ledger.BudgetStatus) BudgetStatus {
	return BudgetStatus{
		Name:              status.Name,
		Budget:            status.Budget.String(),
		Spent:             status.Spent.String(),
		IsOverBudget:      status.IsOverBudget,
		Percentage:        status.Percentage,
		DisplayPercentage: status.DisplayPercentage,
		Overage:           status.Overage.String(),
		Unbounded:         status.Unbounded,
	}
}

func toRecentTransaction(tx ledger.Transaction) RecentTransaction {
	return RecentTransaction{
		ID:          tx.ID.String(),
		Date:        tx.Date.UTC().Format(handlers.DateLayout),
		Amount:      tx.Amount.String(),
		Type:        string(tx.Type),
		Category:    tx.Category,
		Description: tx.Description,
		Currency:    string(tx.Currency),
	}
}

