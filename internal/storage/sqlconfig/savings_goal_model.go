package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/aarondl/opt/omitnull"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// SavingsGoal represents a savings_goals record.
type SavingsGoal struct {
	ID            uuid.UUID       `db:"id"`
	UserID        uuid.UUID       `db:"user_id"`
	Title         string          `db:"title"`
	TargetAmount  decimal.Decimal `db:"target_amount"`
	CurrentAmount decimal.Decimal `db:"current_amount"`
	DueDate       *time.Time      `db:"due_date"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

// SavingsGoalCreate is the input for creating a new goal.
type SavingsGoalCreate struct {
	UserID        uuid.UUID
	Title         string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	DueDate       *time.Time
}

// SavingsGoalUpdate only writes the fields that are set. A null DueDate clears it.
type SavingsGoalUpdate struct {
	Title         omit.Val[string]
	TargetAmount  omit.Val[decimal.Decimal]
	CurrentAmount omit.Val[decimal.Decimal]
	DueDate       omitnull.Val[time.Time]
}

//go:generate mockery --name ISavingsGoalTable --inpackage --with-expecter --filename mock_ISavingsGoalTable.go
type ISavingsGoalTable interface {
	FindByID(ctx context.Context, userID, id uuid.UUID) (*SavingsGoal, error)
	Insert(ctx context.Context, create *SavingsGoalCreate) (*SavingsGoal, error)
	Update(ctx context.Context, userID, id uuid.UUID, update *SavingsGoalUpdate) (*SavingsGoal, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID) ([]*SavingsGoal, error)
}
