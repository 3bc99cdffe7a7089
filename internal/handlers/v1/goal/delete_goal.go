package goal

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/household-server/internal/auth"
	"github.com/carson-networks/household-server/internal/handlers"
)

type DeleteGoalInput struct {
	ID string `path:"id" doc:"Goal UUID"`
}

type goalDeleter interface {
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// DeleteGoalHandler handles DELETE /v1/goals/{id}. Transactions pinned to the
// goal are unpinned.
type DeleteGoalHandler struct {
	GoalService goalDeleter
}

func NewDeleteGoalHandler(svc goalDeleter) *DeleteGoalHandler {
	return &DeleteGoalHandler{GoalService: svc}
}

func (h *DeleteGoalHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-goal",
		Method:        http.MethodDelete,
		Path:          "/v1/goals/{id}",
		Summary:       "Delete savings goal",
		Tags:          []string{"Goals"},
		DefaultStatus: http.StatusNoContent,
		Security:      auth.BearerSecurity,
	}, h.handle)
}

func (h *DeleteGoalHandler) handle(ctx context.Context, input *DeleteGoalInput) (*struct{}, error) {
	userID, err := handlers.CallerID(ctx)
	if err != nil {
		return nil, err
	}
	id, err := handlers.ParseID(input.ID)
	if err != nil {
		return nil, err
	}

	if err := h.GoalService.Delete(ctx, userID, id); err != nil {
		return nil, handlers.Error(ctx, err, "failed to delete goal")
	}
	return nil, nil
}
