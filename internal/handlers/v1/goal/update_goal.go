package goal

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/household-server/internal/auth"
	"github.com/carson-networks/household-server/internal/handlers"
	"github.com/carson-networks/household-server/internal/ledger"
)

type UpdateGoalInput struct {
	ID   string `path:"id" doc:"Goal UUID"`
	Body GoalBody
}

type UpdateGoalOutput struct {
	Body Goal
}

type goalUpdater interface {
	Update(ctx context.Context, goal ledger.SavingsGoal) (ledger.SavingsGoal, error)
}

// UpdateGoalHandler handles PUT /v1/goals/{id}. An absent dueDate clears it.
type UpdateGoalHandler struct {
	GoalService goalUpdater
}

func NewUpdateGoalHandler(svc goalUpdater) *UpdateGoalHandler {
	return &UpdateGoalHandler{GoalService: svc}
}

func (h *UpdateGoalHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-goal",
		Method:      http.MethodPut,
		Path:        "/v1/goals/{id}",
		Summary:     "Edit savings goal",
		Tags:        []string{"Goals"},
		Security:    auth.BearerSecurity,
	}, h.handle)
}

func (h *UpdateGoalHandler) handle(ctx context.Context, input *UpdateGoalInput) (*UpdateGoalOutput, error) {
	userID, err := handlers.CallerID(ctx)
	if err != nil {
		return nil, err
	}
	id, err := handlers.ParseID(input.ID)
	if err != nil {
		return nil, err
	}
	goal, err := parseGoalBody(userID, input.Body)
	if err != nil {
		return nil, err
	}
	goal.ID = id

	updated, err := h.GoalService.Update(ctx, goal)
	if err != nil {
		return nil, handlers.Error(ctx, err, "failed to update goal")
	}
	return &UpdateGoalOutput{Body: toGoal(updated)}, nil
}
