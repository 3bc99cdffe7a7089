package ledger

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionValidate_Valid(t *testing.T) {
	tx := income("10", day(2025, time.March, 1), "Salary")

	assert.NoError(t, tx.Validate())
}

func TestTransactionValidate_CollectsEveryField(t *testing.T) {
	tx := Transaction{
		Amount:      dec("0"),
		Type:        "transfer",
		Category:    " ",
		Currency:    "EUR",
		Description: strings.Repeat("x", 501),
	}

	err := tx.Validate()

	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	var ve *ValidationErrors
	require.True(t, errors.As(err, &ve))
	assert.Len(t, ve.Errors, 6)

	var field *ValidationError
	require.True(t, errors.As(err, &field))
	assert.Equal(t, "date", field.Field)
}

func TestTransactionValidate_NegativeAmount(t *testing.T) {
	tx := expense("-5", day(2025, time.March, 1), "Food")

	err := tx.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "amount: must be greater than 0")
}

func TestTransactionValidate_AmountScale(t *testing.T) {
	tests := []struct {
		amount string
		valid  bool
	}{
		{amount: "10.01", valid: true},
		{amount: "10.000", valid: true},
		{amount: "10.005", valid: false},
		{amount: "0.001", valid: false},
	}
	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			err := expense(tt.amount, day(2025, time.March, 1), "Food").Validate()

			if tt.valid {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, IsValidationError(err))
			assert.Contains(t, err.Error(), "amount: must have at most 2 decimal places")
		})
	}
}

func TestBudgetCategoryValidate(t *testing.T) {
	assert.NoError(t, category("Food", "0").Validate())
	assert.Error(t, category("", "10").Validate())
	assert.Error(t, category("Food", "-1").Validate())
	assert.Error(t, category("Food", "0.005").Validate())
}

func TestSavingsGoalValidate(t *testing.T) {
	assert.NoError(t, SavingsGoal{Title: "Car", TargetAmount: dec("1"), CurrentAmount: dec("0")}.Validate())
	assert.Error(t, SavingsGoal{Title: "Car", TargetAmount: dec("0")}.Validate())
	assert.Error(t, SavingsGoal{Title: "", TargetAmount: dec("1")}.Validate())
	assert.Error(t, SavingsGoal{Title: "Car", TargetAmount: dec("1"), CurrentAmount: dec("-1")}.Validate())
	assert.Error(t, SavingsGoal{Title: "Car", TargetAmount: dec("0.001")}.Validate())
	assert.Error(t, SavingsGoal{Title: "Car", TargetAmount: dec("1"), CurrentAmount: dec("0.125")}.Validate())
}

func TestProfileValidate(t *testing.T) {
	assert.NoError(t, Profile{Name: "Ayu", Role: RoleMember, Status: StatusOffline}.Validate())
	assert.Error(t, Profile{Name: "Ayu", Role: "Owner", Status: StatusOffline}.Validate())
	assert.Error(t, Profile{Name: "Ayu", Role: RoleViewer, Status: "away"}.Validate())
}

func TestIsValidationError_Plain(t *testing.T) {
	assert.False(t, IsValidationError(errors.New("boom")))
	assert.True(t, IsValidationError(NewValidationError("x", "bad")))
}
