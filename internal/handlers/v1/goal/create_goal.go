package goal

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/household-server/internal/auth"
	"github.com/carson-networks/household-server/internal/handlers"
	"github.com/carson-networks/household-server/internal/ledger"
)

type CreateGoalInput struct {
	Body GoalBody
}

type CreateGoalOutput struct {
	Body Goal
}

type goalCreator interface {
	Create(ctx context.Context, goal ledger.SavingsGoal) (ledger.SavingsGoal, error)
}

// CreateGoalHandler handles POST /v1/goals.
type CreateGoalHandler struct {
	GoalService goalCreator
}

func NewCreateGoalHandler(svc goalCreator) *CreateGoalHandler {
	return &CreateGoalHandler{GoalService: svc}
}

func (h *CreateGoalHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-goal",
		Method:        http.MethodPost,
		Path:          "/v1/goals",
		Summary:       "Create savings goal",
		Tags:          []string{"Goals"},
		DefaultStatus: http.StatusCreated,
		Security:      auth.BearerSecurity,
	}, h.handle)
}

func (h *CreateGoalHandler) handle(ctx context.Context, input *CreateGoalInput) (*CreateGoalOutput, error) {
	userID, err := handlers.CallerID(ctx)
	if err != nil {
		return nil, err
	}
	goal, err := parseGoalBody(userID, input.Body)
	if err != nil {
		return nil, err
	}

	created, err := h.GoalService.Create(ctx, goal)
	if err != nil {
		return nil, handlers.Error(ctx, err, "failed to create goal")
	}
	return &CreateGoalOutput{Body: toGoal(created)}, nil
}
