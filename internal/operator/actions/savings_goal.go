package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/household-server/internal/storage"
	"github.com/carson-networks/household-server/internal/storage/sqlconfig"
)

type CreateSavingsGoal struct {
	Create sqlconfig.SavingsGoalCreate

	Created *sqlconfig.SavingsGoal
}

func (g *CreateSavingsGoal) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.SavingsGoals.Insert(ctx, &g.Create)
	if err != nil {
		return err
	}

	g.Created = row
	return nil
}

// UpdateSavingsGoal is used both for user edits and for the progress writes
// that follow a savings transaction.
type UpdateSavingsGoal struct {
	UserID uuid.UUID
	ID     uuid.UUID
	Update sqlconfig.SavingsGoalUpdate

	Updated *sqlconfig.SavingsGoal
}

func (g *UpdateSavingsGoal) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.SavingsGoals.Update(ctx, g.UserID, g.ID, &g.Update)
	if err != nil {
		return err
	}

	g.Updated = row
	return nil
}

type DeleteSavingsGoal struct {
	UserID uuid.UUID
	ID     uuid.UUID
}

func (g *DeleteSavingsGoal) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.SavingsGoals.Delete(ctx, g.UserID, g.ID)
}
