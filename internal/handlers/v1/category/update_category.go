package category

import (
	"context"
	"net/http"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/household-server/internal/auth"
	"github.com/carson-networks/household-server/internal/handlers"
	"github.com/carson-networks/household-server/internal/ledger"
	"github.com/carson-networks/household-server/internal/service"
)

// UpdateCategoryBody only changes the fields present.
type UpdateCategoryBody struct {
	Name   *string `json:"name,omitempty" maxLength:"100" doc:"New name"`
	Budget *string `json:"budget,omitempty" doc:"New monthly ceiling"`
	Color  *string `json:"color,omitempty" maxLength:"32" doc:"New display color"`
}

type UpdateCategoryInput struct {
	ID   string `path:"id" doc:"Category UUID"`
	Body UpdateCategoryBody
}

type UpdateCategoryOutput struct {
	Body Category
}

type categoryUpdater interface {
	Update(ctx context.Context, userID, id uuid.UUID, patch service.BudgetCategoryPatch) (ledger.BudgetCategory, error)
}

// UpdateCategoryHandler handles PUT /v1/categories/{id}.
type UpdateCategoryHandler struct {
	CategoryService categoryUpdater
}

func NewUpdateCategoryHandler(svc categoryUpdater) *UpdateCategoryHandler {
	return &UpdateCategoryHandler{CategoryService: svc}
}

func (h *UpdateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-category",
		Method:      http.MethodPut,
		Path:        "/v1/categories/{id}",
		Summary:     "Update budget category",
		Tags:        []string{"Categories"},
		Security:    auth.BearerSecurity,
	}, h.handle)
}

func (h *UpdateCategoryHandler) handle(ctx context.Context, input *UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	userID, err := handlers.CallerID(ctx)
	if err != nil {
		return nil, err
	}
	id, err := handlers.ParseID(input.ID)
	if err != nil {
		return nil, err
	}

	var patch service.BudgetCategoryPatch
	if input.Body.Name != nil {
		patch.Name = omit.From(*input.Body.Name)
	}
	if input.Body.Budget != nil {
		budget, err := parseBudget(*input.Body.Budget)
		if err != nil {
			return nil, err
		}
		patch.Budget = omit.From(budget)
	}
	if input.Body.Color != nil {
		patch.Color = omit.From(*input.Body.Color)
	}

	category, err := h.CategoryService.Update(ctx, userID, id, patch)
	if err != nil {
		return nil, handlers.Error(ctx, err, "failed to update category")
	}
	return &UpdateCategoryOutput{Body: toCategory(category)}, nil
}
