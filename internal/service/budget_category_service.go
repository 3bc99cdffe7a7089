package service

import (
	"context"
	"strings"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/household-server/internal/ledger"
	"github.com/carson-networks/household-server/internal/operator/actions"
	"github.com/carson-networks/household-server/internal/storage"
	"github.com/carson-networks/household-server/internal/storage/sqlconfig"
)

// BudgetCategoryPatch changes only the fields that are set.
type BudgetCategoryPatch struct {
	Name   omit.Val[string]
	Budget omit.Val[decimal.Decimal]
	Color  omit.Val[string]
}

// CategoryUsage is a category with its spending in one month.
type CategoryUsage struct {
	Category ledger.BudgetCategory
	Status   ledger.BudgetStatus
}

// BudgetCategoryService handles budget category business logic.
type BudgetCategoryService struct {
	storage   *storage.Storage
	processor ActionProcessor
}

func NewBudgetCategoryService(store *storage.Storage, processor ActionProcessor) *BudgetCategoryService {
	return &BudgetCategoryService{
		storage:   store,
		processor: processor,
	}
}

// Create stores a new category. A name already used by the user is
// sqlconfig.ErrConflict.
func (s *BudgetCategoryService) Create(ctx context.Context, category ledger.BudgetCategory) (ledger.BudgetCategory, error) {
	category.Name = strings.TrimSpace(category.Name)
	if err := category.Validate(); err != nil {
		return ledger.BudgetCategory{}, err
	}

	action := &actions.CreateBudgetCategory{Create: sqlconfig.BudgetCategoryCreate{
		UserID: category.UserID,
		Name:   category.Name,
		Budget: category.Budget,
		Color:  category.Color,
	}}
	if err := s.processor.Process(ctx, action); err != nil {
		return ledger.BudgetCategory{}, err
	}
	return toLedgerCategory(action.Created), nil
}

func (s *BudgetCategoryService) Update(ctx context.Context, userID, id uuid.UUID, patch BudgetCategoryPatch) (ledger.BudgetCategory, error) {
	ve := &ledger.ValidationErrors{}
	if name, ok := patch.Name.Get(); ok {
		name = strings.TrimSpace(name)
		if name == "" {
			ve.Add("name", "is required")
		}
		patch.Name = omit.From(name)
	}
	if budget, ok := patch.Budget.Get(); ok {
		switch {
		case budget.IsNegative():
			ve.Add("budget", "must not be negative")
		case ledger.TooPrecise(budget):
			ve.Add("budget", ledger.TooPreciseMsg)
		}
	}
	if err := ve.Err(); err != nil {
		return ledger.BudgetCategory{}, err
	}

	action := &actions.UpdateBudgetCategory{
		UserID: userID,
		ID:     id,
		Update: sqlconfig.BudgetCategoryUpdate{
			Name:   patch.Name,
			Budget: patch.Budget,
			Color:  patch.Color,
		},
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return ledger.BudgetCategory{}, err
	}
	return toLedgerCategory(action.Updated), nil
}

func (s *BudgetCategoryService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.processor.Process(ctx, &actions.DeleteBudgetCategory{UserID: userID, ID: id})
}

// List returns the user's categories with the expenses dated in month. A zero
// month means the current one.
func (s *BudgetCategoryService) List(ctx context.Context, userID uuid.UUID, month time.Time) ([]CategoryUsage, error) {
	from, to := monthRange(month)

	var categoryRows []*sqlconfig.BudgetCategory
	var transactionRows []*sqlconfig.Transaction

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		rows, err := s.storage.BudgetCategories.List(groupCtx, userID)
		categoryRows = rows
		return err
	})
	group.Go(func() error {
		rows, err := s.storage.Transactions.List(groupCtx, &sqlconfig.TransactionFilter{
			UserID:   userID,
			DateFrom: &from,
			DateTo:   &to,
		})
		transactionRows = rows
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	categories := toLedgerCategories(categoryRows)
	breakdown := ledger.ComputeCategoryBreakdown(toLedgerTransactions(transactionRows), categories)
	statuses := ledger.ComputeBudgetStatus(categories, breakdown)

	usage := make([]CategoryUsage, len(categories))
	for i, category := range categories {
		usage[i] = CategoryUsage{Category: category, Status: statuses[i]}
	}
	return usage, nil
}

var now = time.Now

// monthRange returns the UTC bounds [first day of month, first day of next month).
func monthRange(month time.Time) (time.Time, time.Time) {
	if month.IsZero() {
		month = now()
	}
	from := ledger.MonthStart(month)
	return from, from.AddDate(0, 1, 0)
}
