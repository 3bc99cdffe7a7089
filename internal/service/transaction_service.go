package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/household-server/internal/ledger"
	"github.com/carson-networks/household-server/internal/notify"
	"github.com/carson-networks/household-server/internal/operator/actions"
	"github.com/carson-networks/household-server/internal/storage"
	"github.com/carson-networks/household-server/internal/storage/sqlconfig"
)

const defaultLimit = 20

// TransactionService handles transaction business logic.
type TransactionService struct {
	storage         *storage.Storage
	processor       ActionProcessor
	publisher       notify.Publisher
	goals           *SavingsGoalService
	defaultCurrency ledger.Currency
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage, processor ActionProcessor, publisher notify.Publisher, goals *SavingsGoalService, defaultCurrency ledger.Currency) *TransactionService {
	return &TransactionService{
		storage:         store,
		processor:       processor,
		publisher:       publisher,
		goals:           goals,
		defaultCurrency: defaultCurrency,
	}
}

// Create validates and stores tx, then folds it into the user's savings goals.
func (s *TransactionService) Create(ctx context.Context, tx ledger.Transaction) (SavedTransaction, error) {
	tx = s.withDefaults(tx)
	if err := tx.Validate(); err != nil {
		return SavedTransaction{}, err
	}

	action := &actions.CreateTransaction{Create: toTransactionCreate(tx)}
	if err := s.processor.Process(ctx, action); err != nil {
		return SavedTransaction{}, err
	}

	return s.afterSave(ctx, toLedgerTransaction(action.Created)), nil
}

// Replace overwrites every field of the transaction id. The replacement is
// applied to the savings goals like a new transaction; the previous version
// is not reversed.
func (s *TransactionService) Replace(ctx context.Context, id uuid.UUID, tx ledger.Transaction) (SavedTransaction, error) {
	tx = s.withDefaults(tx)
	if err := tx.Validate(); err != nil {
		return SavedTransaction{}, err
	}

	action := &actions.ReplaceTransaction{ID: id, Replacement: toTransactionCreate(tx)}
	if err := s.processor.Process(ctx, action); err != nil {
		return SavedTransaction{}, err
	}

	return s.afterSave(ctx, toLedgerTransaction(action.Replaced)), nil
}

func (s *TransactionService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.processor.Process(ctx, &actions.DeleteTransaction{UserID: userID, ID: id}); err != nil {
		return err
	}

	event := notify.NewEvent(notify.EventTransactionDeleted, userID)
	event.Transaction = &notify.TransactionPayload{ID: id}
	publish(ctx, s.publisher, event)
	return nil
}

func (s *TransactionService) Get(ctx context.Context, userID, id uuid.UUID) (ledger.Transaction, error) {
	row, err := s.storage.Transactions.FindByID(ctx, userID, id)
	if err != nil {
		return ledger.Transaction{}, err
	}
	return toLedgerTransaction(row), nil
}

// List returns a page of the user's transactions using cursor-based pagination.
func (s *TransactionService) List(ctx context.Context, userID uuid.UUID, cursor *TransactionCursor) ([]ledger.Transaction, *TransactionCursor, error) {
	limit := defaultLimit
	offset := 0
	var maxCreationTime *time.Time
	if cursor != nil {
		limit = cursor.Limit
		offset = cursor.Position
		maxCreationTime = &cursor.MaxCreationTime
	}

	filter := &sqlconfig.TransactionFilter{
		UserID:          userID,
		Limit:           limit,
		Offset:          offset,
		MaxCreationTime: maxCreationTime,
	}

	rows, err := s.storage.Transactions.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	if len(rows) == 0 {
		return nil, nil, nil
	}

	var nextCursor *TransactionCursor
	if len(rows) > limit {
		rows = rows[:limit]

		cursorMaxCreationTime := rows[0].CreatedAt
		if maxCreationTime != nil {
			cursorMaxCreationTime = *maxCreationTime
		}

		nextCursor = &TransactionCursor{
			Position:        offset + limit,
			Limit:           limit,
			MaxCreationTime: cursorMaxCreationTime,
		}
	}

	return toLedgerTransactions(rows), nextCursor, nil
}

func (s *TransactionService) withDefaults(tx ledger.Transaction) ledger.Transaction {
	if tx.Currency == "" {
		tx.Currency = s.defaultCurrency
	}
	return tx
}

func (s *TransactionService) afterSave(ctx context.Context, saved ledger.Transaction) SavedTransaction {
	event := notify.NewEvent(notify.EventTransactionSaved, saved.UserID)
	event.Transaction = transactionPayload(saved)
	publish(ctx, s.publisher, event)

	return SavedTransaction{
		Transaction: saved,
		GoalSync:    s.goals.ApplyTransaction(ctx, saved),
	}
}

func transactionPayload(tx ledger.Transaction) *notify.TransactionPayload {
	return &notify.TransactionPayload{
		ID:       tx.ID,
		Type:     string(tx.Type),
		Amount:   tx.Amount,
		Currency: string(tx.Currency),
		Category: tx.Category,
		Date:     tx.Date,
	}
}
