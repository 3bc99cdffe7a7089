package category

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/household-server/internal/auth"
	"github.com/carson-networks/household-server/internal/handlers"
	"github.com/carson-networks/household-server/internal/service"
)

type ListCategoriesInput struct {
	Month string `query:"month" doc:"Reference month YYYY-MM, defaults to the current month"`
}

type ListCategoriesOutput struct {
	Body struct {
		Categories []CategoryWithUsage `json:"categories"`
	}
}

type categoryLister interface {
	List(ctx context.Context, userID uuid.UUID, month time.Time) ([]service.CategoryUsage, error)
}

// ListCategoriesHandler handles GET /v1/categories.
type ListCategoriesHandler struct {
	CategoryService categoryLister
}

func NewListCategoriesHandler(svc categoryLister) *ListCategoriesHandler {
	return &ListCategoriesHandler{CategoryService: svc}
}

func (h *ListCategoriesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/v1/categories",
		Summary:     "List budget categories",
		Description: "Returns the caller's categories with what was spent against each in the month.",
		Tags:        []string{"Categories"},
		Security:    auth.BearerSecurity,
	}, h.handle)
}

func (h *ListCategoriesHandler) handle(ctx context.Context, input *ListCategoriesInput) (*ListCategoriesOutput, error) {
	userID, err := handlers.CallerID(ctx)
	if err != nil {
		return nil, err
	}
	month, err := handlers.ParseMonth(input.Month)
	if err != nil {
		return nil, err
	}

	usage, err := h.CategoryService.List(ctx, userID, month)
	if err != nil {
		return nil, handlers.Error(ctx, err, "failed to list categories")
	}

	out := &ListCategoriesOutput{}
	out.Body.Categories = make([]CategoryWithUsage, len(usage))
	for i, u := range usage {
		out.Body.Categories[i] = toCategoryWithUsage(u)
	}
	return out, nil
}
