package ledger

import (
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func goal(title, current string) SavingsGoal {
	return SavingsGoal{
		ID:            uuid.Must(uuid.NewV4()),
		Title:         title,
		TargetAmount:  dec("10000000"),
		CurrentAmount: dec(current),
	}
}

func savingTx(typ TransactionType, amount, description string) Transaction {
	return Transaction{
		Type:        typ,
		Amount:      dec(amount),
		Category:    "Saving",
		Description: description,
		Date:        day(2025, time.March, 1),
		Currency:    CurrencyIDR,
	}
}

// -- IsSavingsActivity tests --

func TestIsSavingsActivity(t *testing.T) {
	for _, c := range []string{"Saving", "Savings", "saving-car", "Tabungan SAVING"} {
		assert.True(t, IsSavingsActivity(Transaction{Category: c}), c)
	}
	for _, c := range []string{"Food", "", "Save"} {
		assert.False(t, IsSavingsActivity(Transaction{Category: c}), c)
	}
}

// -- ApplyTransactionToGoals tests --

func TestApplyTransactionToGoals_ExpenseFromNewCar(t *testing.T) {
	car := goal("New Car", "4500000")

	updated := ApplyTransactionToGoals(savingTx(TransactionTypeExpense, "500000", "New Car fund deposit"), []SavingsGoal{car})

	require.Len(t, updated, 1)
	assert.Equal(t, car.ID, updated[0].ID)
	assert.True(t, updated[0].CurrentAmount.Equal(dec("4000000")))
}

func TestApplyTransactionToGoals_IncomeAddsExactAmount(t *testing.T) {
	house := goal("House", "123.45")

	updated := ApplyTransactionToGoals(savingTx(TransactionTypeIncome, "1000.55", "monthly HOUSE transfer"), []SavingsGoal{house})

	require.Len(t, updated, 1)
	assert.True(t, updated[0].CurrentAmount.Equal(dec("1124")))
}

func TestApplyTransactionToGoals_ExpenseFloorsAtZero(t *testing.T) {
	trip := goal("Trip", "100")

	updated := ApplyTransactionToGoals(savingTx(TransactionTypeExpense, "250", "trip refund"), []SavingsGoal{trip})

	require.Len(t, updated, 1)
	assert.True(t, updated[0].CurrentAmount.IsZero())
}

func TestApplyTransactionToGoals_ExpenseOnEmptyGoalIsNoChange(t *testing.T) {
	trip := goal("Trip", "0")

	updated := ApplyTransactionToGoals(savingTx(TransactionTypeExpense, "250", "trip refund"), []SavingsGoal{trip})

	assert.Empty(t, updated)
}

func TestApplyTransactionToGoals_FansOutToEveryMatchingTitle(t *testing.T) {
	car := goal("Car", "0")
	newCar := goal("New Car", "10")
	house := goal("House", "0")

	updated := ApplyTransactionToGoals(savingTx(TransactionTypeIncome, "5", "new car deposit"), []SavingsGoal{car, newCar, house})

	require.Len(t, updated, 2)
	assert.Equal(t, car.ID, updated[0].ID)
	assert.True(t, updated[0].CurrentAmount.Equal(dec("5")))
	assert.Equal(t, newCar.ID, updated[1].ID)
	assert.True(t, updated[1].CurrentAmount.Equal(dec("15")))
}

func TestApplyTransactionToGoals_NoMatch(t *testing.T) {
	updated := ApplyTransactionToGoals(savingTx(TransactionTypeIncome, "5", "groceries"), []SavingsGoal{goal("Car", "0")})

	assert.Empty(t, updated)
}

func TestApplyTransactionToGoals_BlankTitleNeverMatches(t *testing.T) {
	updated := ApplyTransactionToGoals(savingTx(TransactionTypeIncome, "5", "anything"), []SavingsGoal{goal("  ", "0")})

	assert.Empty(t, updated)
}

func TestApplyTransactionToGoals_ExplicitGoalWins(t *testing.T) {
	car := goal("Car", "0")
	house := goal("House", "0")
	tx := savingTx(TransactionTypeIncome, "7", "car money")
	tx.SavingsGoalID = uuid.NullUUID{UUID: house.ID, Valid: true}

	updated := ApplyTransactionToGoals(tx, []SavingsGoal{car, house})

	require.Len(t, updated, 1)
	assert.Equal(t, house.ID, updated[0].ID)
	assert.True(t, updated[0].CurrentAmount.Equal(dec("7")))
}

func TestApplyTransactionToGoals_DoesNotMutateInput(t *testing.T) {
	goals := []SavingsGoal{goal("Car", "10")}

	ApplyTransactionToGoals(savingTx(TransactionTypeIncome, "5", "car"), goals)

	assert.True(t, goals[0].CurrentAmount.Equal(dec("10")))
}

// -- Progress tests --

func TestSavingsGoalProgress(t *testing.T) {
	g := SavingsGoal{TargetAmount: dec("200"), CurrentAmount: dec("250")}
	percentage, display := g.Progress()
	assert.Equal(t, int64(125), percentage)
	assert.Equal(t, int64(100), display)

	g = SavingsGoal{TargetAmount: dec("3"), CurrentAmount: dec("1")}
	percentage, display = g.Progress()
	assert.Equal(t, int64(33), percentage)
	assert.Equal(t, int64(33), display)
}
