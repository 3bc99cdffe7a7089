package goal

import (
	"net/http"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/household-server/internal/handlers"
	"github.com/carson-networks/household-server/internal/ledger"
	"github.com/carson-networks/household-server/internal/service"
)

// Goal is the API response model for a savings goal.
type Goal struct {
	ID                string `json:"id" doc:"Goal UUID"`
	Title             string `json:"title" doc:"Goal title, matched against transaction descriptions"`
	TargetAmount      string `json:"targetAmount" doc:"Amount to reach"`
	CurrentAmount     string `json:"currentAmount" doc:"Amount saved so far"`
	DueDate           string `json:"dueDate,omitempty" doc:"Optional deadline, YYYY-MM-DD"`
	Percentage        int64  `json:"percentage" doc:"round(current/target*100), unclamped"`
	DisplayPercentage int64  `json:"displayPercentage" doc:"Percentage clamped to 100"`
	UpdatedAt         string `json:"updatedAt" doc:"RFC3339 time of the last change"`
}

// GoalBody is the request body for creating or editing a goal. Edits
// replace every field.
type GoalBody struct {
	Title         string `json:"title" required:"true" minLength:"1" maxLength:"200" doc:"Goal title"`
	TargetAmount  string `json:"targetAmount" required:"true" doc:"Amount to reach, greater than 0"`
	CurrentAmount string `json:"currentAmount,omitempty" doc:"Amount already saved, defaults to 0"`
	DueDate       string `json:"dueDate,omitempty" doc:"Optional deadline, YYYY-MM-DD"`
}

func parseGoalBody(userID uuid.UUID, body GoalBody) (ledger.SavingsGoal, error) {
	target, err := decimal.NewFromString(strings.TrimSpace(body.TargetAmount))
	if err != nil {
		return ledger.SavingsGoal{}, huma.NewError(http.StatusBadRequest, "invalid targetAmount", err)
	}

	current := decimal.Zero
	if body.CurrentAmount != "" {
		current, err = decimal.NewFromString(strings.TrimSpace(body.CurrentAmount))
		if err != nil {
			return ledger.SavingsGoal{}, huma.NewError(http.StatusBadRequest, "invalid currentAmount", err)
		}
	}

	var due *time.Time
	if body.DueDate != "" {
		date, err := time.Parse(handlers.DateLayout, body.DueDate)
		if err != nil {
			return ledger.SavingsGoal{}, huma.NewError(http.StatusBadRequest, "invalid dueDate", err)
		}
		due = &date
	}

	return ledger.SavingsGoal{
		UserID:        userID,
		Title:         body.Title,
		TargetAmount:  target,
		CurrentAmount: current,
		DueDate:       due,
	}, nil
}

func toGoal(goal ledger.SavingsGoal) Goal {
	percentage, display := goal.Progress()
	resp := Goal{
		ID:                goal.ID.String(),
		Title:             goal.Title,
		TargetAmount:      goal.TargetAmount.String(),
		CurrentAmount:     goal.CurrentAmount.String(),
		Percentage:        percentage,
		DisplayPercentage: display,
		UpdatedAt:         goal.UpdatedAt.Format(time.RFC3339),
	}
	if goal.DueDate != nil {
		resp.DueDate = goal.DueDate.Format(handlers.DateLayout)
	}
	return resp
}

func fromProgress(progress service.GoalProgress) Goal {
	resp := toGoal(progress.Goal)
	resp.Percentage = progress.Percentage
	resp.DisplayPercentage = progress.DisplayPercentage
	return resp
}
