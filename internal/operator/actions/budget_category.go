package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/household-server/internal/storage"
	"github.com/carson-networks/household-server/internal/storage/sqlconfig"
)

type CreateBudgetCategory struct {
	Create sqlconfig.BudgetCategoryCreate

	Created *sqlconfig.BudgetCategory
}

func (c *CreateBudgetCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.BudgetCategories.Insert(ctx, &c.Create)
	if err != nil {
		return err
	}

	c.Created = row
	return nil
}

type UpdateBudgetCategory struct {
	UserID uuid.UUID
	ID     uuid.UUID
	Update sqlconfig.BudgetCategoryUpdate

	Updated *sqlconfig.BudgetCategory
}

func (c *UpdateBudgetCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.BudgetCategories.Update(ctx, c.UserID, c.ID, &c.Update)
	if err != nil {
		return err
	}

	c.Updated = row
	return nil
}

type DeleteBudgetCategory struct {
	UserID uuid.UUID
	ID     uuid.UUID
}

func (c *DeleteBudgetCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.BudgetCategories.Delete(ctx, c.UserID, c.ID)
}
