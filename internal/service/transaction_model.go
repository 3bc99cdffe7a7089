package service

import (
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/household-server/internal/ledger"
)

// TransactionCursor carries pagination state for listing transactions.
type TransactionCursor struct {
	Position        int
	Limit           int
	MaxCreationTime time.Time
}

// SavedTransaction is a committed transaction write together with the goal
// progress writes that followed it.
type SavedTransaction struct {
	Transaction ledger.Transaction
	GoalSync    GoalSync
}

// GoalSync reports the outcome of applying one transaction to the user's
// savings goals. Failed writes never undo the transaction or the other goals.
type GoalSync struct {
	Updated []ledger.SavingsGoal
	Failed  []GoalSyncFailure
}

type GoalSyncFailure struct {
	GoalID uuid.UUID
	Title  string
	Err    error
}
