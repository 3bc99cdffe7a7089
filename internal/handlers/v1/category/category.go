package category

import (
	"net/http"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/household-server/internal/ledger"
	"github.com/carson-networks/household-server/internal/service"
)

// Category is the API response model for a budget category.
type Category struct {
	ID        string `json:"id" doc:"Category UUID"`
	Name      string `json:"name" doc:"Category name, matched exactly against transaction categories"`
	Budget    string `json:"budget" doc:"Monthly ceiling"`
	Color     string `json:"color" doc:"Display color"`
	CreatedAt string `json:"createdAt" doc:"RFC3339 creation time"`
}

// Usage is a category's spending in the requested month.
type Usage struct {
	Spent             string `json:"spent" doc:"Expenses in the month"`
	IsOverBudget      bool   `json:"isOverBudget" doc:"Spent is greater than budget"`
	Percentage        int64  `json:"percentage" doc:"round(spent/budget*100), unclamped"`
	DisplayPercentage int64  `json:"displayPercentage" doc:"Percentage clamped to 100"`
	Overage           string `json:"overage" doc:"Amount over budget, 0 when within"`
	Unbounded         bool   `json:"unbounded" doc:"Zero budget with spending"`
}

type CategoryWithUsage struct {
	Category
	Usage Usage `json:"usage"`
}

func toCategory(category ledger.BudgetCategory) Category {
	return Category{
		ID:        category.ID.String(),
		Name:      category.Name,
		Budget:    category.Budget.String(),
		Color:     category.Color,
		CreatedAt: category.CreatedAt.Format(time.RFC3339),
	}
}

func toCategoryWithUsage(usage service.CategoryUsage) CategoryWithUsage {
	return CategoryWithUsage{
		Category: toCategory(usage.Category),
		Usage: Usage{
			Spent:             usage.Status.Spent.String(),
			IsOverBudget:      usage.Status.IsOverBudget,
			Percentage:        usage.Status.Percentage,
			DisplayPercentage: usage.Status.DisplayPercentage,
			Overage:           usage.Status.Overage.String(),
			Unbounded:         usage.Status.Unbounded,
		},
	}
}

func parseBudget(value string) (decimal.Decimal, error) {
	budget, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Decimal{}, huma.NewError(http.StatusBadRequest, "invalid budget", err)
	}
	return budget, nil
}
