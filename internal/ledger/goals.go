package ledger

import (
	"strings"

	"github.com/shopspring/decimal"
)

const savingsToken = "saving"

// IsSavingsActivity reports whether tx's category marks it as savings-related.
// The check is a case-insensitive substring match, so "Savings", "Tabungan Saving"
// and "saving" all qualify.
func IsSavingsActivity(tx Transaction) bool {
	return strings.Contains(strings.ToLower(tx.Category), savingsToken)
}

// ApplyTransactionToGoals folds tx into goals and returns the goals whose
// CurrentAmount changed, in input order. The input slice is not modified.
//
// A transaction pinned to a goal through SavingsGoalID adjusts only that goal.
// Otherwise every goal whose title appears (case-insensitively) in the
// description is adjusted, so one transaction may move several goals. Income
// adds to the goal; expense subtracts and never takes it below zero.
//
// The caller decides whether tx is savings activity; see IsSavingsActivity.
func ApplyTransactionToGoals(tx Transaction, goals []SavingsGoal) []SavingsGoal {
	var changed []SavingsGoal
	description := strings.ToLower(tx.Description)

	for _, goal := range goals {
		if !goalMatches(tx, goal, description) {
			continue
		}
		updated, ok := applyToGoal(tx, goal)
		if !ok {
			continue
		}
		changed = append(changed, updated)
	}
	return changed
}

func goalMatches(tx Transaction, goal SavingsGoal, description string) bool {
	if tx.SavingsGoalID.Valid {
		return goal.ID == tx.SavingsGoalID.UUID
	}
	title := strings.ToLower(strings.TrimSpace(goal.Title))
	if title == "" {
		return false
	}
	return strings.Contains(description, title)
}

func applyToGoal(tx Transaction, goal SavingsGoal) (SavingsGoal, bool) {
	next := goal.CurrentAmount
	switch tx.Type {
	case TransactionTypeIncome:
		next = next.Add(tx.Amount)
	case TransactionTypeExpense:
		next = next.Sub(tx.Amount)
		if next.IsNegative() {
			next = decimal.Zero
		}
	default:
		return goal, false
	}

	if next.Equal(goal.CurrentAmount) {
		return goal, false
	}
	goal.CurrentAmount = next
	return goal, true
}
