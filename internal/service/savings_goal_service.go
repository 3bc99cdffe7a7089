package service

import (
	"context"
	"strings"

	"github.com/aarondl/opt/omit"
	"github.com/aarondl/opt/omitnull"
	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/household-server/internal/ledger"
	"github.com/carson-networks/household-server/internal/logging"
	"github.com/carson-networks/household-server/internal/notify"
	"github.com/carson-networks/household-server/internal/operator/actions"
	"github.com/carson-networks/household-server/internal/storage"
	"github.com/carson-networks/household-server/internal/storage/sqlconfig"
)

// GoalProgress is a goal with its completion percentages.
type GoalProgress struct {
	Goal              ledger.SavingsGoal
	Percentage        int64
	DisplayPercentage int64
}

// SavingsGoalService handles savings goal business logic.
type SavingsGoalService struct {
	storage   *storage.Storage
	processor ActionProcessor
	publisher notify.Publisher
}

func NewSavingsGoalService(store *storage.Storage, processor ActionProcessor, publisher notify.Publisher) *SavingsGoalService {
	return &SavingsGoalService{
		storage:   store,
		processor: processor,
		publisher: publisher,
	}
}

func (s *SavingsGoalService) Create(ctx context.Context, goal ledger.SavingsGoal) (ledger.SavingsGoal, error) {
	goal.Title = strings.TrimSpace(goal.Title)
	if err := goal.Validate(); err != nil {
		return ledger.SavingsGoal{}, err
	}

	action := &actions.CreateSavingsGoal{Create: sqlconfig.SavingsGoalCreate{
		UserID:        goal.UserID,
		Title:         goal.Title,
		TargetAmount:  goal.TargetAmount,
		CurrentAmount: goal.CurrentAmount,
		DueDate:       goal.DueDate,
	}}
	if err := s.processor.Process(ctx, action); err != nil {
		return ledger.SavingsGoal{}, err
	}
	return toLedgerGoal(action.Created), nil
}

// Update replaces the editable fields of goal.ID. A nil DueDate clears it.
func (s *SavingsGoalService) Update(ctx context.Context, goal ledger.SavingsGoal) (ledger.SavingsGoal, error) {
	goal.Title = strings.TrimSpace(goal.Title)
	if err := goal.Validate(); err != nil {
		return ledger.SavingsGoal{}, err
	}

	action := &actions.UpdateSavingsGoal{
		UserID: goal.UserID,
		ID:     goal.ID,
		Update: sqlconfig.SavingsGoalUpdate{
			Title:         omit.From(goal.Title),
			TargetAmount:  omit.From(goal.TargetAmount),
			CurrentAmount: omit.From(goal.CurrentAmount),
			DueDate:       omitnull.FromPtr(goal.DueDate),
		},
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return ledger.SavingsGoal{}, err
	}
	return toLedgerGoal(action.Updated), nil
}

func (s *SavingsGoalService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.processor.Process(ctx, &actions.DeleteSavingsGoal{UserID: userID, ID: id})
}

func (s *SavingsGoalService) List(ctx context.Context, userID uuid.UUID) ([]GoalProgress, error) {
	rows, err := s.storage.SavingsGoals.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	progress := make([]GoalProgress, len(rows))
	for i, row := range rows {
		goal := toLedgerGoal(row)
		percentage, display := goal.Progress()
		progress[i] = GoalProgress{
			Goal:              goal,
			Percentage:        percentage,
			DisplayPercentage: display,
		}
	}
	return progress, nil
}

// ApplyTransaction moves the goals matched by tx and writes each one
// separately. Transactions that neither name a goal nor count as savings
// activity leave the goals alone.
func (s *SavingsGoalService) ApplyTransaction(ctx context.Context, tx ledger.Transaction) GoalSync {
	var sync GoalSync
	if !tx.SavingsGoalID.Valid && !ledger.IsSavingsActivity(tx) {
		return sync
	}

	logData := logging.GetLogData(ctx)
	defer logData.AddTiming("goalSync")()

	rows, err := s.storage.SavingsGoals.List(ctx, tx.UserID)
	if err != nil {
		s.syncFailed(ctx, tx, GoalSyncFailure{Err: err}, &sync)
		return sync
	}

	goals := toLedgerGoals(rows)
	if tx.SavingsGoalID.Valid && !hasGoal(goals, tx.SavingsGoalID.UUID) {
		s.syncFailed(ctx, tx, GoalSyncFailure{GoalID: tx.SavingsGoalID.UUID, Err: sqlconfig.ErrNotFound}, &sync)
		return sync
	}

	for _, goal := range ledger.ApplyTransactionToGoals(tx, goals) {
		action := &actions.UpdateSavingsGoal{
			UserID: tx.UserID,
			ID:     goal.ID,
			Update: sqlconfig.SavingsGoalUpdate{CurrentAmount: omit.From(goal.CurrentAmount)},
		}
		if err := s.processor.Process(ctx, action); err != nil {
			s.syncFailed(ctx, tx, GoalSyncFailure{GoalID: goal.ID, Title: goal.Title, Err: err}, &sync)
			continue
		}

		updated := toLedgerGoal(action.Updated)
		sync.Updated = append(sync.Updated, updated)

		event := notify.NewEvent(notify.EventSavingsGoalSynced, tx.UserID)
		event.Transaction = transactionPayload(tx)
		event.Goal = goalPayload(updated)
		publish(ctx, s.publisher, event)
	}

	logData.AddData("goalsSynced", len(sync.Updated))
	if len(sync.Failed) > 0 {
		logData.AddData("goalsFailed", len(sync.Failed))
	}
	return sync
}

func (s *SavingsGoalService) syncFailed(ctx context.Context, tx ledger.Transaction, failure GoalSyncFailure, sync *GoalSync) {
	sync.Failed = append(sync.Failed, failure)

	logrus.WithError(failure.Err).
		WithField("transactionID", tx.ID.String()).
		WithField("goalID", failure.GoalID.String()).
		Warn("SavingsGoalService.ApplyTransaction")

	event := notify.NewEvent(notify.EventSavingsGoalSyncError, tx.UserID)
	event.Transaction = transactionPayload(tx)
	if failure.GoalID != uuid.Nil {
		event.Goal = &notify.GoalPayload{ID: failure.GoalID, Title: failure.Title}
	}
	event.Error = failure.Err.Error()
	publish(ctx, s.publisher, event)
}

func hasGoal(goals []ledger.SavingsGoal, id uuid.UUID) bool {
	for _, goal := range goals {
		if goal.ID == id {
			return true
		}
	}
	return false
}

func goalPayload(goal ledger.SavingsGoal) *notify.GoalPayload {
	return &notify.GoalPayload{
		ID:            goal.ID,
		Title:         goal.Title,
		CurrentAmount: goal.CurrentAmount,
		TargetAmount:  goal.TargetAmount,
	}
}
