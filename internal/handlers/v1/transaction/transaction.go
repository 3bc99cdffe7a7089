package transaction

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

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID            string `json:"id" doc:"Transaction UUID"`
	Date          string `json:"date" doc:"Calendar date, YYYY-MM-DD"`
	Amount        string `json:"amount" doc:"Decimal amount, always positive"`
	Type          string `json:"type" enum:"income,expense" doc:"Direction of the money movement"`
	Category      string `json:"category" doc:"Category name"`
	Description   string `json:"description" doc:"Free text, also used to match savings goals"`
	Currency      string `json:"currency" enum:"IDR,USD" doc:"Currency tag"`
	SavingsGoalID string `json:"savingsGoalID,omitempty" doc:"Goal this transaction is pinned to"`
	CreatedAt     string `json:"createdAt" doc:"RFC3339 creation time"`
}

// TransactionBody is the request body for creating or replacing a transaction.
type TransactionBody struct {
	Date          string `json:"date,omitempty" doc:"YYYY-MM-DD or RFC3339 date, defaults to today"`
	Amount        string `json:"amount" required:"true" doc:"Decimal amount greater than 0"`
	Type          string `json:"type" required:"true" enum:"income,expense" doc:"Direction of the money movement"`
	Category      string `json:"category" required:"true" minLength:"1" doc:"Category name"`
	Description   string `json:"description,omitempty" maxLength:"500" doc:"Free text"`
	Currency      string `json:"currency,omitempty" enum:"IDR,USD" doc:"Currency tag, defaults to the server currency"`
	SavingsGoalID string `json:"savingsGoalID,omitempty" doc:"Pin the transaction to one savings goal"`
}

// GoalUpdate is a savings goal moved by a transaction write.
type GoalUpdate struct {
	ID            string `json:"id" doc:"Goal UUID"`
	Title         string `json:"title" doc:"Goal title"`
	CurrentAmount string `json:"currentAmount" doc:"Amount saved after the write"`
	TargetAmount  string `json:"targetAmount" doc:"Goal target"`
}

// GoalFailure is a goal write that did not go through. The transaction is
// saved regardless.
type GoalFailure struct {
	GoalID string `json:"goalID,omitempty" doc:"Goal UUID, absent when the goals could not be read"`
	Title  string `json:"title,omitempty" doc:"Goal title"`
	Error  string `json:"error" doc:"Why the goal was not updated"`
}

type GoalSync struct {
	Updated []GoalUpdate  `json:"updated" doc:"Goals whose progress changed"`
	Failed  []GoalFailure `json:"failed" doc:"Goals that could not be updated"`
}

// SavedTransactionBody is the response of every transaction write.
type SavedTransactionBody struct {
	Transaction Transaction `json:"transaction"`
	GoalSync    GoalSync    `json:"goalSync"`
}

// today is replaced in tests.
var today = func() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// parseTransactionBody turns a request body into a ledger transaction owned
// by userID. Field rules beyond parsing are left to the service.
func parseTransactionBody(userID uuid.UUID, body TransactionBody) (ledger.Transaction, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(body.Amount))
	if err != nil {
		return ledger.Transaction{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	date, err := parseDate(body.Date)
	if err != nil {
		return ledger.Transaction{}, huma.NewError(http.StatusBadRequest, "invalid date", err)
	}

	var goalID uuid.NullUUID
	if body.SavingsGoalID != "" {
		id, err := uuid.FromString(body.SavingsGoalID)
		if err != nil {
			return ledger.Transaction{}, huma.NewError(http.StatusBadRequest, "invalid savingsGoalID", err)
		}
		goalID = uuid.NullUUID{UUID: id, Valid: true}
	}

	return ledger.Transaction{
		UserID:        userID,
		Date:          date,
		Amount:        amount,
		Type:          ledger.TransactionType(body.Type),
		Category:      strings.TrimSpace(body.Category),
		Description:   body.Description,
		Currency:      ledger.Currency(body.Currency),
		SavingsGoalID: goalID,
	}, nil
}

func parseDate(value string) (time.Time, error) {
	if value == "" {
		return today(), nil
	}
	if date, err := time.Parse(handlers.DateLayout, value); err == nil {
		return date, nil
	}
	date, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}
	date = date.UTC()
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC), nil
}

func toTransaction(tx ledger.Transaction) Transaction {
	resp := Transaction{
		ID:          tx.ID.String(),
		Date:        tx.Date.UTC().Format(handlers.DateLayout),
		Amount:      tx.Amount.String(),
		Type:        string(tx.Type),
		Category:    tx.Category,
		Description: tx.Description,
		Currency:    string(tx.Currency),
		CreatedAt:   tx.CreatedAt.Format(time.RFC3339),
	}
	if tx.SavingsGoalID.Valid {
		resp.SavingsGoalID = tx.SavingsGoalID.UUID.String()
	}
	return resp
}

func toSavedTransactionBody(saved service.SavedTransaction) SavedTransactionBody {
	sync := GoalSync{
		Updated: make([]GoalUpdate, len(saved.GoalSync.Updated)),
		Failed:  make([]GoalFailure, len(saved.GoalSync.Failed)),
	}
	for i, goal := range saved.GoalSync.Updated {
		sync.Updated[i] = GoalUpdate{
			ID:            goal.ID.String(),
			Title:         goal.Title,
			CurrentAmount: goal.CurrentAmount.String(),
			TargetAmount:  goal.TargetAmount.String(),
		}
	}
	for i, failure := range saved.GoalSync.Failed {
		sync.Failed[i] = GoalFailure{Title: failure.Title, Error: failure.Err.Error()}
		if failure.GoalID != uuid.Nil {
			sync.Failed[i].GoalID = failure.GoalID.String()
		}
	}
	return SavedTransactionBody{Transaction: toTransaction(saved.Transaction), GoalSync: sync}
}
