package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/household-server/internal/ledger"
	"github.com/carson-networks/household-server/internal/notify"
	"github.com/carson-networks/household-server/internal/storage/sqlconfig"
)

func newTestTransactionService(t *testing.T) (*TransactionService, tableMocks, *recordingPublisher) {
	t.Helper()
	store, writer, m := newTableMocks(t)
	processor := &fakeProcessor{writer: writer}
	publisher := &recordingPublisher{}
	goals := NewSavingsGoalService(store, processor, publisher)
	return NewTransactionService(store, processor, publisher, goals, ledger.CurrencyIDR), m, publisher
}

func storedTransaction(userID uuid.UUID, tx ledger.Transaction) *sqlconfig.Transaction {
	return &sqlconfig.Transaction{
		ID:            newID(),
		UserID:        userID,
		Date:          tx.Date,
		Amount:        tx.Amount,
		Type:          string(tx.Type),
		Category:      tx.Category,
		Description:   tx.Description,
		Currency:      string(tx.Currency),
		SavingsGoalID: tx.SavingsGoalID,
		CreatedAt:     time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC),
	}
}

// -- Create tests --

func TestCreate_Success(t *testing.T) {
	svc, m, publisher := newTestTransactionService(t)
	userID := newID()
	tx := ledger.Transaction{
		UserID:      userID,
		Date:        day(2025, time.March, 5),
		Amount:      dec("45000"),
		Type:        ledger.TransactionTypeExpense,
		Category:    "Food",
		Description: "Lunch",
	}
	row := storedTransaction(userID, ledger.Transaction{
		Date: tx.Date, Amount: tx.Amount, Type: tx.Type, Category: tx.Category,
		Description: tx.Description, Currency: ledger.CurrencyIDR,
	})

	m.transactions.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *sqlconfig.TransactionCreate) bool {
		return c.UserID == userID &&
			c.Amount.Equal(dec("45000")) &&
			c.Type == "expense" &&
			c.Category == "Food" &&
			c.Currency == "IDR"
	})).Return(row, nil)

	saved, err := svc.Create(context.Background(), tx)

	require.NoError(t, err)
	assert.Equal(t, row.ID, saved.Transaction.ID)
	assert.Equal(t, ledger.CurrencyIDR, saved.Transaction.Currency)
	assert.Empty(t, saved.GoalSync.Updated)
	assert.Empty(t, saved.GoalSync.Failed)
	assert.Equal(t, []notify.EventType{notify.EventTransactionSaved}, publisher.types())
}

func TestCreate_ValidationError(t *testing.T) {
	svc, _, publisher := newTestTransactionService(t)

	_, err := svc.Create(context.Background(), ledger.Transaction{
		UserID:   newID(),
		Date:     day(2025, time.March, 5),
		Amount:   dec("0"),
		Type:     ledger.TransactionTypeExpense,
		Category: "Food",
	})

	require.Error(t, err)
	assert.True(t, ledger.IsValidationError(err))
	assert.Empty(t, publisher.types())
}

func TestCreate_StorageError(t *testing.T) {
	svc, m, publisher := newTestTransactionService(t)

	m.transactions.EXPECT().Insert(mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused"))

	_, err := svc.Create(context.Background(), ledger.Transaction{
		UserID:   newID(),
		Date:     day(2025, time.March, 5),
		Amount:   dec("10"),
		Type:     ledger.TransactionTypeIncome,
		Category: "Salary",
	})

	assert.EqualError(t, err, "connection refused")
	assert.Empty(t, publisher.types())
}

func TestCreate_SavingsTransactionSyncsMatchingGoal(t *testing.T) {
	svc, m, publisher := newTestTransactionService(t)
	userID := newID()
	vacationID, carID := newID(), newID()
	tx := ledger.Transaction{
		UserID:      userID,
		Date:        day(2025, time.March, 5),
		Amount:      dec("500000"),
		Type:        ledger.TransactionTypeIncome,
		Category:    "Savings",
		Description: "Deposit for Vacation",
		Currency:    ledger.CurrencyIDR,
	}
	row := storedTransaction(userID, tx)

	m.transactions.EXPECT().Insert(mock.Anything, mock.Anything).Return(row, nil)
	m.goals.EXPECT().List(mock.Anything, userID).Return([]*sqlconfig.SavingsGoal{
		{ID: vacationID, UserID: userID, Title: "vacation", TargetAmount: dec("5000000"), CurrentAmount: dec("1000000")},
		{ID: carID, UserID: userID, Title: "Car", TargetAmount: dec("90000000"), CurrentAmount: dec("0")},
	}, nil)
	m.goals.EXPECT().Update(mock.Anything, userID, vacationID, mock.MatchedBy(func(u *sqlconfig.SavingsGoalUpdate) bool {
		amount, ok := u.CurrentAmount.Get()
		return ok && amount.Equal(dec("1500000")) && !u.Title.IsSet() && !u.TargetAmount.IsSet()
	})).Return(&sqlconfig.SavingsGoal{
		ID: vacationID, UserID: userID, Title: "vacation", TargetAmount: dec("5000000"), CurrentAmount: dec("1500000"),
	}, nil)

	saved, err := svc.Create(context.Background(), tx)

	require.NoError(t, err)
	require.Len(t, saved.GoalSync.Updated, 1)
	assert.Equal(t, vacationID, saved.GoalSync.Updated[0].ID)
	assert.True(t, saved.GoalSync.Updated[0].CurrentAmount.Equal(dec("1500000")))
	assert.Empty(t, saved.GoalSync.Failed)
	assert.Equal(t, []notify.EventType{notify.EventTransactionSaved, notify.EventSavingsGoalSynced}, publisher.types())
}

func TestCreate_GoalWriteFailureIsReportedNotReturned(t *testing.T) {
	svc, m, publisher := newTestTransactionService(t)
	userID := newID()
	goalID := newID()
	tx := ledger.Transaction{
		UserID:      userID,
		Date:        day(2025, time.March, 5),
		Amount:      dec("100"),
		Type:        ledger.TransactionTypeExpense,
		Category:    "saving",
		Description: "withdraw from emergency fund",
		Currency:    ledger.CurrencyUSD,
	}

	m.transactions.EXPECT().Insert(mock.Anything, mock.Anything).Return(storedTransaction(userID, tx), nil)
	m.goals.EXPECT().List(mock.Anything, userID).Return([]*sqlconfig.SavingsGoal{
		{ID: goalID, UserID: userID, Title: "Emergency Fund", TargetAmount: dec("1000"), CurrentAmount: dec("400")},
	}, nil)
	m.goals.EXPECT().Update(mock.Anything, userID, goalID, mock.Anything).Return(nil, errors.New("deadlock"))

	saved, err := svc.Create(context.Background(), tx)

	require.NoError(t, err)
	assert.Empty(t, saved.GoalSync.Updated)
	require.Len(t, saved.GoalSync.Failed, 1)
	assert.Equal(t, goalID, saved.GoalSync.Failed[0].GoalID)
	assert.EqualError(t, saved.GoalSync.Failed[0].Err, "deadlock")
	assert.Equal(t, []notify.EventType{notify.EventTransactionSaved, notify.EventSavingsGoalSyncError}, publisher.types())
}

func TestCreate_ExplicitGoalSyncsWithoutSavingsCategory(t *testing.T) {
	svc, m, _ := newTestTransactionService(t)
	userID := newID()
	goalID := newID()
	tx := ledger.Transaction{
		UserID:        userID,
		Date:          day(2025, time.March, 5),
		Amount:        dec("250"),
		Type:          ledger.TransactionTypeIncome,
		Category:      "Bonus",
		Currency:      ledger.CurrencyUSD,
		SavingsGoalID: uuid.NullUUID{UUID: goalID, Valid: true},
	}

	m.goals.EXPECT().FindByID(mock.Anything, userID, goalID).Return(&sqlconfig.SavingsGoal{ID: goalID, UserID: userID}, nil)
	m.transactions.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *sqlconfig.TransactionCreate) bool {
		return c.SavingsGoalID.Valid && c.SavingsGoalID.UUID == goalID
	})).Return(storedTransaction(userID, tx), nil)
	m.goals.EXPECT().List(mock.Anything, userID).Return([]*sqlconfig.SavingsGoal{
		{ID: goalID, UserID: userID, Title: "House", TargetAmount: dec("1000"), CurrentAmount: dec("0")},
	}, nil)
	m.goals.EXPECT().Update(mock.Anything, userID, goalID, mock.Anything).Return(&sqlconfig.SavingsGoal{
		ID: goalID, UserID: userID, Title: "House", TargetAmount: dec("1000"), CurrentAmount: dec("250"),
	}, nil)

	saved, err := svc.Create(context.Background(), tx)

	require.NoError(t, err)
	require.Len(t, saved.GoalSync.Updated, 1)
}

func TestCreate_GoalOfAnotherUserRejected(t *testing.T) {
	svc, m, publisher := newTestTransactionService(t)
	userID := newID()
	goalID := newID()

	m.goals.EXPECT().FindByID(mock.Anything, userID, goalID).Return(nil, sqlconfig.ErrNotFound)

	_, err := svc.Create(context.Background(), ledger.Transaction{
		UserID:        userID,
		Date:          day(2025, time.March, 5),
		Amount:        dec("250"),
		Type:          ledger.TransactionTypeIncome,
		Category:      "Bonus",
		SavingsGoalID: uuid.NullUUID{UUID: goalID, Valid: true},
	})

	assert.ErrorIs(t, err, sqlconfig.ErrInvalidReference)
	m.transactions.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	assert.Empty(t, publisher.types())
}

// -- Replace tests --

func TestReplace_SyncsReplacementAmount(t *testing.T) {
	svc, m, publisher := newTestTransactionService(t)
	userID := newID()
	id := newID()
	goalID := newID()
	tx := ledger.Transaction{
		UserID:      userID,
		Date:        day(2025, time.April, 1),
		Amount:      dec("300"),
		Type:        ledger.TransactionTypeIncome,
		Category:    "Savings",
		Description: "laptop",
		Currency:    ledger.CurrencyUSD,
	}
	replaced := storedTransaction(userID, tx)
	replaced.ID = id

	m.transactions.EXPECT().Replace(mock.Anything, id, mock.MatchedBy(func(c *sqlconfig.TransactionCreate) bool {
		return c.UserID == userID && c.Amount.Equal(dec("300"))
	})).Return(replaced, nil)
	m.goals.EXPECT().List(mock.Anything, userID).Return([]*sqlconfig.SavingsGoal{
		{ID: goalID, UserID: userID, Title: "Laptop", TargetAmount: dec("1500"), CurrentAmount: dec("300")},
	}, nil)
	m.goals.EXPECT().Update(mock.Anything, userID, goalID, mock.MatchedBy(func(u *sqlconfig.SavingsGoalUpdate) bool {
		amount, ok := u.CurrentAmount.Get()
		return ok && amount.Equal(dec("600"))
	})).Return(&sqlconfig.SavingsGoal{ID: goalID, UserID: userID, Title: "Laptop", TargetAmount: dec("1500"), CurrentAmount: dec("600")}, nil)

	saved, err := svc.Replace(context.Background(), id, tx)

	require.NoError(t, err)
	assert.Equal(t, id, saved.Transaction.ID)
	require.Len(t, saved.GoalSync.Updated, 1)
	assert.Equal(t, []notify.EventType{notify.EventTransactionSaved, notify.EventSavingsGoalSynced}, publisher.types())
}

func TestReplace_NotFound(t *testing.T) {
	svc, m, _ := newTestTransactionService(t)
	userID := newID()
	id := newID()

	m.transactions.EXPECT().Replace(mock.Anything, id, mock.Anything).Return(nil, sqlconfig.ErrNotFound)

	_, err := svc.Replace(context.Background(), id, ledger.Transaction{
		UserID:   userID,
		Date:     day(2025, time.April, 1),
		Amount:   dec("1"),
		Type:     ledger.TransactionTypeIncome,
		Category: "Salary",
	})

	assert.ErrorIs(t, err, sqlconfig.ErrNotFound)
}

// -- Delete tests --

func TestDelete_PublishesEvent(t *testing.T) {
	svc, m, publisher := newTestTransactionService(t)
	userID := newID()
	id := newID()

	m.transactions.EXPECT().Delete(mock.Anything, userID, id).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), userID, id))
	assert.Equal(t, []notify.EventType{notify.EventTransactionDeleted}, publisher.types())
}

func TestDelete_NotFound(t *testing.T) {
	svc, m, publisher := newTestTransactionService(t)
	userID := newID()
	id := newID()

	m.transactions.EXPECT().Delete(mock.Anything, userID, id).Return(sqlconfig.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), userID, id), sqlconfig.ErrNotFound)
	assert.Empty(t, publisher.types())
}

// -- Get tests --

func TestGet_ConvertsRow(t *testing.T) {
	svc, m, _ := newTestTransactionService(t)
	userID := newID()
	row := storedTransaction(userID, ledger.Transaction{
		Date: day(2025, time.May, 2), Amount: dec("12.50"), Type: ledger.TransactionTypeExpense,
		Category: "Transport", Currency: ledger.CurrencyUSD,
	})

	m.transactions.EXPECT().FindByID(mock.Anything, userID, row.ID).Return(row, nil)

	tx, err := svc.Get(context.Background(), userID, row.ID)

	require.NoError(t, err)
	assert.Equal(t, ledger.TransactionTypeExpense, tx.Type)
	assert.Equal(t, ledger.CurrencyUSD, tx.Currency)
	assert.True(t, tx.Amount.Equal(dec("12.50")))
}

// -- List tests --

func makeStorageRows(n int, userID uuid.UUID, createdAt time.Time) []*sqlconfig.Transaction {
	rows := make([]*sqlconfig.Transaction, n)
	for i := range rows {
		rows[i] = &sqlconfig.Transaction{
			ID:        newID(),
			UserID:    userID,
			Date:      createdAt,
			Amount:    dec("5.00"),
			Type:      "expense",
			Category:  "Item",
			Currency:  "USD",
			CreatedAt: createdAt,
		}
	}
	return rows
}

func TestList_NoResults(t *testing.T) {
	svc, m, _ := newTestTransactionService(t)

	m.transactions.EXPECT().List(mock.Anything, mock.Anything).
		Return([]*sqlconfig.Transaction{}, nil)

	txs, nextCursor, err := svc.List(context.Background(), newID(), nil)

	assert.NoError(t, err)
	assert.Nil(t, txs)
	assert.Nil(t, nextCursor)
}

func TestList_SinglePage(t *testing.T) {
	svc, m, _ := newTestTransactionService(t)
	userID := newID()
	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	rows := makeStorageRows(2, userID, now)

	m.transactions.EXPECT().List(mock.Anything, mock.MatchedBy(func(f *sqlconfig.TransactionFilter) bool {
		return f.UserID == userID && f.Limit == defaultLimit && f.Offset == 0 && f.MaxCreationTime == nil
	})).Return(rows, nil)

	txs, nextCursor, err := svc.List(context.Background(), userID, nil)

	assert.NoError(t, err)
	assert.Len(t, txs, 2)
	assert.Nil(t, nextCursor)
	assert.Equal(t, rows[0].ID, txs[0].ID)
	assert.Equal(t, rows[0].CreatedAt, txs[0].CreatedAt)
}

func TestList_HasNextPage(t *testing.T) {
	svc, m, _ := newTestTransactionService(t)
	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	rows := makeStorageRows(defaultLimit+1, newID(), now)

	m.transactions.EXPECT().List(mock.Anything, mock.Anything).Return(rows, nil)

	txs, nextCursor, err := svc.List(context.Background(), newID(), nil)

	assert.NoError(t, err)
	assert.Len(t, txs, defaultLimit, "truncated to default limit")

	require.NotNil(t, nextCursor)
	assert.Equal(t, defaultLimit, nextCursor.Position)
	assert.Equal(t, defaultLimit, nextCursor.Limit)
	assert.Equal(t, now, nextCursor.MaxCreationTime, "derived from first row")
}

func TestList_WithCursor(t *testing.T) {
	svc, m, _ := newTestTransactionService(t)
	cursorTime := time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC)
	rows := makeStorageRows(3, newID(), time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC))

	m.transactions.EXPECT().List(mock.Anything, mock.MatchedBy(func(f *sqlconfig.TransactionFilter) bool {
		return f.Limit == 2 &&
			f.Offset == 20 &&
			f.MaxCreationTime != nil &&
			f.MaxCreationTime.Equal(cursorTime)
	})).Return(rows, nil)

	txs, nextCursor, err := svc.List(context.Background(), newID(), &TransactionCursor{
		Position:        20,
		Limit:           2,
		MaxCreationTime: cursorTime,
	})

	assert.NoError(t, err)
	assert.Len(t, txs, 2)

	require.NotNil(t, nextCursor)
	assert.Equal(t, 22, nextCursor.Position)
	assert.Equal(t, 2, nextCursor.Limit)
	assert.Equal(t, cursorTime, nextCursor.MaxCreationTime, "echoed from cursor, not overridden by row data")
}

func TestList_StorageError(t *testing.T) {
	svc, m, _ := newTestTransactionService(t)

	m.transactions.EXPECT().List(mock.Anything, mock.Anything).
		Return(nil, errors.New("database unavailable"))

	txs, nextCursor, err := svc.List(context.Background(), newID(), nil)

	assert.EqualError(t, err, "database unavailable")
	assert.Nil(t, txs)
	assert.Nil(t, nextCursor)
}
