package actions

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/household-server/internal/storage"
	"github.com/carson-networks/household-server/internal/storage/sqlconfig"
)

type CreateTransaction struct {
	Create sqlconfig.TransactionCreate

	Created *sqlconfig.Transaction
}

func (t *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := checkGoalOwner(ctx, writer, &t.Create); err != nil {
		return err
	}

	row, err := writer.Transactions.Insert(ctx, &t.Create)
	if err != nil {
		return err
	}

	t.Created = row
	return nil
}

// ReplaceTransaction overwrites every field of a transaction owned by
// Replacement.UserID.
type ReplaceTransaction struct {
	ID          uuid.UUID
	Replacement sqlconfig.TransactionCreate

	Replaced *sqlconfig.Transaction
}

func (t *ReplaceTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := checkGoalOwner(ctx, writer, &t.Replacement); err != nil {
		return err
	}

	row, err := writer.Transactions.Replace(ctx, t.ID, &t.Replacement)
	if err != nil {
		return err
	}

	t.Replaced = row
	return nil
}

// checkGoalOwner refuses a savings goal link unless the goal belongs to the
// transaction's user.
func checkGoalOwner(ctx context.Context, writer *storage.Writer, create *sqlconfig.TransactionCreate) error {
	if !create.SavingsGoalID.Valid {
		return nil
	}
	_, err := writer.SavingsGoals.FindByID(ctx, create.UserID, create.SavingsGoalID.UUID)
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return sqlconfig.ErrInvalidReference
	}
	return err
}

type DeleteTransaction struct {
	UserID uuid.UUID
	ID     uuid.UUID
}

func (t *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Transactions.Delete(ctx, t.UserID, t.ID)
}
