package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/household-server/internal/storage/sqlconfig"
)

// Transactor ends a database transaction.
type Transactor interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Writer holds the tables bound to a single database transaction.
type Writer struct {
	Tx               Transactor
	Transactions     sqlconfig.ITransactionTable
	BudgetCategories sqlconfig.IBudgetCategoryTable
	SavingsGoals     sqlconfig.ISavingsGoalTable
	Profiles         sqlconfig.IProfileTable
	Users            sqlconfig.IUserTable
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		Tx:               tx,
		Transactions:     sqlconfig.NewTransactionsTable(tx),
		BudgetCategories: sqlconfig.NewBudgetCategoriesTable(tx),
		SavingsGoals:     sqlconfig.NewSavingsGoalsTable(tx),
		Profiles:         sqlconfig.NewProfilesTable(tx),
		Users:            sqlconfig.NewUsersTable(tx),
	}
}

func (w *Writer) Commit(ctx context.Context) error {
	return w.Tx.Commit(ctx)
}

func (w *Writer) Rollback(ctx context.Context) error {
	return w.Tx.Rollback(ctx)
}
