package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/household-server/internal/config"
	"github.com/carson-networks/household-server/internal/storage/sqlconfig"
)

// Storage reads straight from the connection pool. Writes go through Write,
// which binds a fresh set of tables to one database transaction.
type Storage struct {
	DB               *sql.DB
	db               bob.DB
	Transactions     sqlconfig.ITransactionTable
	BudgetCategories sqlconfig.IBudgetCategoryTable
	SavingsGoals     sqlconfig.ISavingsGoalTable
	Profiles         sqlconfig.IProfileTable
	Users            sqlconfig.IUserTable
}

func NewStorage(env *config.Config) (*Storage, error) {
	sqlDB, err := sql.Open("pgx", env.PostgresURL())
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return New(sqlDB), nil
}

// New wraps an already opened database.
func New(sqlDB *sql.DB) *Storage {
	db := bob.NewDB(sqlDB)
	return &Storage{
		DB:               sqlDB,
		db:               db,
		Transactions:     sqlconfig.NewTransactionsTable(db),
		BudgetCategories: sqlconfig.NewBudgetCategoriesTable(db),
		SavingsGoals:     sqlconfig.NewSavingsGoalsTable(db),
		Profiles:         sqlconfig.NewProfilesTable(db),
		Users:            sqlconfig.NewUsersTable(db),
	}
}

// Write begins a database transaction. The caller must Commit or Rollback
// the returned Writer.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	return NewWriter(tx), nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
