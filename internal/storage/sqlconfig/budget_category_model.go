package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// BudgetCategory represents a budget_categories record.
type BudgetCategory struct {
	ID        uuid.UUID       `db:"id"`
	UserID    uuid.UUID       `db:"user_id"`
	Name      string          `db:"name"`
	Budget    decimal.Decimal `db:"budget"`
	Color     string          `db:"color"`
	CreatedAt time.Time       `db:"created_at"`
}

// BudgetCategoryCreate is the input for creating a new category.
type BudgetCategoryCreate struct {
	UserID uuid.UUID
	Name   string
	Budget decimal.Decimal
	Color  string
}

// BudgetCategoryUpdate only writes the fields that are set.
type BudgetCategoryUpdate struct {
	Name   omit.Val[string]
	Budget omit.Val[decimal.Decimal]
	Color  omit.Val[string]
}

//go:generate mockery --name IBudgetCategoryTable --inpackage --with-expecter --filename mock_IBudgetCategoryTable.go
type IBudgetCategoryTable interface {
	FindByID(ctx context.Context, userID, id uuid.UUID) (*BudgetCategory, error)
	Insert(ctx context.Context, create *BudgetCategoryCreate) (*BudgetCategory, error)
	Update(ctx context.Context, userID, id uuid.UUID, update *BudgetCategoryUpdate) (*BudgetCategory, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID) ([]*BudgetCategory, error)
}
