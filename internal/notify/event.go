package notify

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type EventType string

const (
	EventTransactionSaved     EventType = "transaction.saved"
	EventTransactionDeleted   EventType = "transaction.deleted"
	EventSavingsGoalSynced    EventType = "savings_goal.synced"
	EventSavingsGoalSyncError EventType = "savings_goal.sync_failed"
)

// Event is a ledger change as published to subscribers.
type Event struct {
	ID          string              `json:"id"`
	Type        EventType           `json:"type"`
	UserID      uuid.UUID           `json:"userId"`
	OccurredAt  time.Time           `json:"occurredAt"`
	Transaction *TransactionPayload `json:"transaction,omitempty"`
	Goal        *GoalPayload        `json:"goal,omitempty"`
	Error       string              `json:"error,omitempty"`
}

type TransactionPayload struct {
	ID       uuid.UUID       `json:"id"`
	Type     string          `json:"type"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	Category string          `json:"category"`
	Date     time.Time       `json:"date"`
}

type GoalPayload struct {
	ID            uuid.UUID       `json:"id"`
	Title         string          `json:"title"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
}

// NewEvent stamps an event with a fresh id and the current time.
func NewEvent(eventType EventType, userID uuid.UUID) Event {
	return Event{
		ID:         uuid.Must(uuid.NewV4()).String(),
		Type:       eventType,
		UserID:     userID,
		OccurredAt: time.Now().UTC(),
	}
}

// Publisher delivers events. Callers treat failures as non-fatal.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}
