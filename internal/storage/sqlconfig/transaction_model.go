package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Transaction represents a transaction record.
type Transaction struct {
	ID            uuid.UUID       `db:"id"`
	UserID        uuid.UUID       `db:"user_id"`
	Date          time.Time       `db:"date"`
	Amount        decimal.Decimal `db:"amount"`
	Type          string          `db:"type"`
	Category      string          `db:"category"`
	Description   string          `db:"description"`
	Currency      string          `db:"currency"`
	SavingsGoalID uuid.NullUUID   `db:"savings_goal_id"`
	CreatedAt     time.Time       `db:"created_at"`
}

// TransactionCreate is the input for creating or replacing a transaction.
type TransactionCreate struct {
	UserID        uuid.UUID
	Date          time.Time
	Amount        decimal.Decimal
	Type          string
	Category      string
	Description   string
	Currency      string
	SavingsGoalID uuid.NullUUID
}

// TransactionFilter specifies filters for listing transactions. UserID is required.
type TransactionFilter struct {
	UserID uuid.UUID
	// DateFrom is inclusive, DateTo exclusive.
	DateFrom        *time.Time
	DateTo          *time.Time
	Limit           int
	Offset          int
	MaxCreationTime *time.Time
}

// ITransactionTable defines the interface for transaction storage operations.
// Every lookup is scoped to the owning user.
//
//go:generate mockery --name ITransactionTable --inpackage --with-expecter --filename mock_ITransactionTable.go
type ITransactionTable interface {
	FindByID(ctx context.Context, userID, id uuid.UUID) (*Transaction, error)
	Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error)
	Replace(ctx context.Context, id uuid.UUID, replacement *TransactionCreate) (*Transaction, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
}
