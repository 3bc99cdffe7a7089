package sqlconfig

import (
	"context"
	"time"

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

const savingsGoalsTableName = "savings_goals"

var savingsGoalColumns = []any{
	"id", "user_id", "title", "target_amount", "current_amount",
	"due_date", "created_at", "updated_at",
}

var _ ISavingsGoalTable = (*SavingsGoalsTable)(nil)

// SavingsGoalsTable provides access to the savings_goals table.
type SavingsGoalsTable struct {
	exec bob.Executor
}

func NewSavingsGoalsTable(exec bob.Executor) *SavingsGoalsTable {
	return &SavingsGoalsTable{exec: exec}
}

func (t *SavingsGoalsTable) FindByID(ctx context.Context, userID, id uuid.UUID) (*SavingsGoal, error) {
	q := psql.Select(
		sm.Columns(savingsGoalColumns...),
		sm.From(savingsGoalsTableName),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*SavingsGoal]())
	if err != nil {
		return nil, translateError(err)
	}
	return row, nil
}

func (t *SavingsGoalsTable) Insert(ctx context.Context, create *SavingsGoalCreate) (*SavingsGoal, error) {
	q := psql.Insert(
		im.Into(savingsGoalsTableName, "user_id", "title", "target_amount", "current_amount", "due_date"),
		im.Values(
			psql.Arg(create.UserID),
			psql.Arg(create.Title),
			psql.Arg(create.TargetAmount),
			psql.Arg(create.CurrentAmount),
			psql.Arg(create.DueDate),
		),
		im.Returning(savingsGoalColumns...),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*SavingsGoal]())
	if err != nil {
		return nil, translateError(err)
	}
	return row, nil
}

// Update writes the set fields and bumps updated_at.
func (t *SavingsGoalsTable) Update(ctx context.Context, userID, id uuid.UUID, update *SavingsGoalUpdate) (*SavingsGoal, error) {
	var setMods []bob.Mod[*dialect.UpdateQuery]
	if v, ok := update.Title.Get(); ok {
		setMods = append(setMods, um.SetCol("title").ToArg(v))
	}
	if v, ok := update.TargetAmount.Get(); ok {
		setMods = append(setMods, um.SetCol("target_amount").ToArg(v))
	}
	if v, ok := update.CurrentAmount.Get(); ok {
		setMods = append(setMods, um.SetCol("current_amount").ToArg(v))
	}
	if !update.DueDate.IsUnset() {
		var due *time.Time
		if v, ok := update.DueDate.Get(); ok {
			due = &v
		}
		setMods = append(setMods, um.SetCol("due_date").ToArg(due))
	}
	if len(setMods) == 0 {
		return t.FindByID(ctx, userID, id)
	}

	queryMods := append([]bob.Mod[*dialect.UpdateQuery]{um.Table(savingsGoalsTableName)}, setMods...)
	queryMods = append(queryMods,
		um.SetCol("updated_at").To(psql.Raw("now()")),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		um.Returning(savingsGoalColumns...),
	)
	row, err := bob.One(ctx, t.exec, psql.Update(queryMods...), scan.StructMapper[*SavingsGoal]())
	if err != nil {
		return nil, translateError(err)
	}
	return row, nil
}

func (t *SavingsGoalsTable) Delete(ctx context.Context, userID, id uuid.UUID) error {
	q := psql.Delete(
		dm.From(savingsGoalsTableName),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		dm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)
	res, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return translateError(err)
	}
	return expectAffected(res)
}

// List returns the user's goals in creation order.
func (t *SavingsGoalsTable) List(ctx context.Context, userID uuid.UUID) ([]*SavingsGoal, error) {
	q := psql.Select(
		sm.Columns(savingsGoalColumns...),
		sm.From(savingsGoalsTableName),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.OrderBy(psql.Quote("created_at")).Asc(),
		sm.OrderBy(psql.Quote("id")).Asc(),
	)
	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[*SavingsGoal]())
	if err != nil {
		return nil, translateError(err)
	}
	return rows, nil
}
