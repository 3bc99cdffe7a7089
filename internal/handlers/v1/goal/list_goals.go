package goal

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/household-server/internal/auth"
	"github.com/carson-networks/household-server/internal/handlers"
	"github.com/carson-networks/household-server/internal/service"
)

type ListGoalsOutput struct {
	Body struct {
		Goals []Goal `json:"goals"`
	}
}

type goalLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]service.GoalProgress, error)
}

// ListGoalsHandler handles GET /v1/goals.
type ListGoalsHandler struct {
	GoalService goalLister
}

func NewListGoalsHandler(svc goalLister) *ListGoalsHandler {
	return &ListGoalsHandler{GoalService: svc}
}

func (h *ListGoalsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-goals",
		Method:      http.MethodGet,
		Path:        "/v1/goals",
		Summary:     "List savings goals",
		Tags:        []string{"Goals"},
		Security:    auth.BearerSecurity,
	}, h.handle)
}

func (h *ListGoalsHandler) handle(ctx context.Context, _ *struct{}) (*ListGoalsOutput, error) {
	userID, err := handlers.CallerID(ctx)
	if err != nil {
		return nil, err
	}

	progress, err := h.GoalService.List(ctx, userID)
	if err != nil {
		return nil, handlers.Error(ctx, err, "failed to list goals")
	}

	out := &ListGoalsOutput{}
	out.Body.Goals = make([]Goal, len(progress))
	for i, p := range progress {
		out.Body.Goals[i] = fromProgress(p)
	}
	return out, nil
}
