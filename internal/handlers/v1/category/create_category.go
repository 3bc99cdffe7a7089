package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/household-server/internal/auth"
	"github.com/carson-networks/household-server/internal/handlers"
	"github.com/carson-networks/household-server/internal/ledger"
)

type CreateCategoryBody struct {
	Name   string `json:"name" required:"true" minLength:"1" maxLength:"100" doc:"Unique category name"`
	Budget string `json:"budget" required:"true" doc:"Monthly ceiling, 0 or more"`
	Color  string `json:"color,omitempty" maxLength:"32" doc:"Display color"`
}

type CreateCategoryInput struct {
	Body CreateCategoryBody
}

type CreateCategoryOutput struct {
	Body Category
}

type categoryCreator interface {
	Create(ctx context.Context, category ledger.BudgetCategory) (ledger.BudgetCategory, error)
}

// CreateCategoryHandler handles POST /v1/categories.
type CreateCategoryHandler struct {
	CategoryService categoryCreator
}

func NewCreateCategoryHandler(svc categoryCreator) *CreateCategoryHandler {
	return &CreateCategoryHandler{CategoryService: svc}
}

func (h *CreateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-category",
		Method:        http.MethodPost,
		Path:          "/v1/categories",
		Summary:       "Create budget category",
		Tags:          []string{"Categories"},
		DefaultStatus: http.StatusCreated,
		Security:      auth.BearerSecurity,
	}, h.handle)
}

func (h *CreateCategoryHandler) handle(ctx context.Context, input *CreateCategoryInput) (*CreateCategoryOutput, error) {
	userID, err := handlers.CallerID(ctx)
	if err != nil {
		return nil, err
	}
	budget, err := parseBudget(input.Body.Budget)
	if err != nil {
		return nil, err
	}

	category, err := h.CategoryService.Create(ctx, ledger.BudgetCategory{
		UserID: userID,
		Name:   input.Body.Name,
		Budget: budget,
		Color:  input.Body.Color,
	})
	if err != nil {
		return nil, handlers.Error(ctx, err, "failed to create category")
	}
	return &CreateCategoryOutput{Body: toCategory(category)}, nil
}
