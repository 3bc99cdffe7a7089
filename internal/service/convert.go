package service

import (
	"github.com/carson-networks/household-server/internal/ledger"
	"github.com/carson-networks/household-server/internal/storage/sqlconfig"
)

func toLedgerTransaction(row *sqlconfig.Transaction) ledger.Transaction {
	return ledger.Transaction{
		ID:            row.ID,
		UserID:        row.UserID,
		Date:          row.Date,
		Amount:        row.Amount,
		Type:          ledger.TransactionType(row.Type),
		Category:      row.Category,
		Description:   row.Description,
		Currency:      ledger.Currency(row.Currency),
		SavingsGoalID: row.SavingsGoalID,
		CreatedAt:     row.CreatedAt,
	}
}

func toLedgerTransactions(rows []*sqlconfig.Transaction) []ledger.Transaction {
	txs := make([]ledger.Transaction, len(rows))
	for i, row := range rows {
		txs[i] = toLedgerTransaction(row)
	}
	return txs
}

func toTransactionCreate(tx ledger.Transaction) sqlconfig.TransactionCreate {
	return sqlconfig.TransactionCreate{
		UserID:        tx.UserID,
		Date:          tx.Date,
		Amount:        tx.Amount,
		Type:          string(tx.Type),
		Category:      tx.Category,
		Description:   tx.Description,
		Currency:      string(tx.Currency),
		SavingsGoalID: tx.SavingsGoalID,
	}
}

func toLedgerCategory(row *sqlconfig.BudgetCategory) ledger.BudgetCategory {
	return ledger.BudgetCategory{
		ID:        row.ID,
		UserID:    row.UserID,
		Name:      row.Name,
		Budget:    row.Budget,
		Color:     row.Color,
		CreatedAt: row.CreatedAt,
	}
}

func toLedgerCategories(rows []*sqlconfig.BudgetCategory) []ledger.BudgetCategory {
	categories := make([]ledger.BudgetCategory, len(rows))
	for i, row := range rows {
		categories[i] = toLedgerCategory(row)
	}
	return categories
}

func toLedgerGoal(row *sqlconfig.SavingsGoal) ledger.SavingsGoal {
	return ledger.SavingsGoal{
		ID:            row.ID,
		UserID:        row.UserID,
		Title:         row.Title,
		TargetAmount:  row.TargetAmount,
		CurrentAmount: row.CurrentAmount,
		DueDate:       row.DueDate,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}

func toLedgerGoals(rows []*sqlconfig.SavingsGoal) []ledger.SavingsGoal {
	goals := make([]ledger.SavingsGoal, len(rows))
	for i, row := range rows {
		goals[i] = toLedgerGoal(row)
	}
	return goals
}

func toLedgerProfile(row *sqlconfig.Profile) ledger.Profile {
	return ledger.Profile{
		ID:        row.ID,
		OwnerID:   row.OwnerID,
		Name:      row.Name,
		Role:      ledger.Role(row.Role),
		Status:    ledger.Status(row.Status),
		AvatarURL: row.AvatarURL,
	}
}
