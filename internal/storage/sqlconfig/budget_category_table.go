package sqlconfig

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

const budgetCategoriesTableName = "budget_categories"

var budgetCategoryColumns = []any{"id", "user_id", "name", "budget", "color", "created_at"}

var _ IBudgetCategoryTable = (*BudgetCategoriesTable)(nil)

// BudgetCategoriesTable provides access to the budget_categories table.
type BudgetCategoriesTable struct {
	exec bob.Executor
}

func NewBudgetCategoriesTable(exec bob.Executor) *BudgetCategoriesTable {
	return &BudgetCategoriesTable{exec: exec}
}

func (t *BudgetCategoriesTable) FindByID(ctx context.Context, userID, id uuid.UUID) (*BudgetCategory, error) {
	q := psql.Select(
		sm.Columns(budgetCategoryColumns...),
		sm.From(budgetCategoriesTableName),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*BudgetCategory]())
	if err != nil {
		return nil, translateError(err)
	}
	return row, nil
}

// Insert fails with ErrConflict when the user already has a category of that name.
func (t *BudgetCategoriesTable) Insert(ctx context.Context, create *BudgetCategoryCreate) (*BudgetCategory, error) {
	q := psql.Insert(
		im.Into(budgetCategoriesTableName, "user_id", "name", "budget", "color"),
		im.Values(
			psql.Arg(create.UserID),
			psql.Arg(create.Name),
			psql.Arg(create.Budget),
			psql.Arg(create.Color),
		),
		im.Returning(budgetCategoryColumns...),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*BudgetCategory]())
	if err != nil {
		return nil, translateError(err)
	}
	return row, nil
}

func (t *BudgetCategoriesTable) Update(ctx context.Context, userID, id uuid.UUID, update *BudgetCategoryUpdate) (*BudgetCategory, error) {
	var setMods []bob.Mod[*dialect.UpdateQuery]
	if v, ok := update.Name.Get(); ok {
		setMods = append(setMods, um.SetCol("name").ToArg(v))
	}
	if v, ok := update.Budget.Get(); ok {
		setMods = append(setMods, um.SetCol("budget").ToArg(v))
	}
	if v, ok := update.Color.Get(); ok {
		setMods = append(setMods, um.SetCol("color").ToArg(v))
	}
	if len(setMods) == 0 {
		return t.FindByID(ctx, userID, id)
	}

	queryMods := append([]bob.Mod[*dialect.UpdateQuery]{um.Table(budgetCategoriesTableName)}, setMods...)
	queryMods = append(queryMods,
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		um.Returning(budgetCategoryColumns...),
	)
	row, err := bob.One(ctx, t.exec, psql.Update(queryMods...), scan.StructMapper[*BudgetCategory]())
	if err != nil {
		return nil, translateError(err)
	}
	return row, nil
}

func (t *BudgetCategoriesTable) Delete(ctx context.Context, userID, id uuid.UUID) error {
	q := psql.Delete(
		dm.From(budgetCategoriesTableName),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		dm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)
	res, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return translateError(err)
	}
	return expectAffected(res)
}

// List returns the user's categories in creation order.
func (t *BudgetCategoriesTable) List(ctx context.Context, userID uuid.UUID) ([]*BudgetCategory, error) {
	q := psql.Select(
		sm.Columns(budgetCategoryColumns...),
		sm.From(budgetCategoriesTableName),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.OrderBy(psql.Quote("created_at")).Asc(),
		sm.OrderBy(psql.Quote("id")).Asc(),
	)
	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[*BudgetCategory]())
	if err != nil {
		return nil, translateError(err)
	}
	return rows, nil
}
