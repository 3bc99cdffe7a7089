package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/household-server/internal/auth"
	"github.com/carson-networks/household-server/internal/handlers"
)

type DeleteCategoryInput struct {
	ID string `path:"id" doc:"Category UUID"`
}

type categoryDeleter interface {
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// DeleteCategoryHandler handles DELETE /v1/categories/{id}. Transactions
// keep their category text.
type DeleteCategoryHandler struct {
	CategoryService categoryDeleter
}

func NewDeleteCategoryHandler(svc categoryDeleter) *DeleteCategoryHandler {
	return &DeleteCategoryHandler{CategoryService: svc}
}

func (h *DeleteCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-category",
		Method:        http.MethodDelete,
		Path:          "/v1/categories/{id}",
		Summary:       "Delete budget category",
		Tags:          []string{"Categories"},
		DefaultStatus: http.StatusNoContent,
		Security:      auth.BearerSecurity,
	}, h.handle)
}

func (h *DeleteCategoryHandler) handle(ctx context.Context, input *DeleteCategoryInput) (*struct{}, error) {
	userID, err := handlers.CallerID(ctx)
	if err != nil {
		return nil, err
	}
	id, err := handlers.ParseID(input.ID)
	if err != nil {
		return nil, err
	}

	if err := h.CategoryService.Delete(ctx, userID, id); err != nil {
		return nil, handlers.Error(ctx, err, "failed to delete category")
	}
	return nil, nil
}
