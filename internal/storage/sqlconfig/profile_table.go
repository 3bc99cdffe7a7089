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

const profilesTableName = "profiles"

var profileColumns = []any{"id", "owner_id", "name", "role", "status", "avatar_url"}

var _ IProfileTable = (*ProfilesTable)(nil)

// ProfilesTable provides access to the profiles table. Every query is
// scoped by owner_id.
type ProfilesTable struct {
	exec bob.Executor
}

func NewProfilesTable(exec bob.Executor) *ProfilesTable {
	return &ProfilesTable{exec: exec}
}

func (t *ProfilesTable) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*Profile, error) {
	q := psql.Select(
		sm.Columns(profileColumns...),
		sm.From(profilesTableName),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*Profile]())
	if err != nil {
		return nil, translateError(err)
	}
	return row, nil
}

func (t *ProfilesTable) Insert(ctx context.Context, create *ProfileCreate) (*Profile, error) {
	columns := []string{"owner_id", "name", "role", "status", "avatar_url"}
	values := []bob.Expression{
		psql.Arg(create.OwnerID),
		psql.Arg(create.Name),
		psql.Arg(create.Role),
		psql.Arg(create.Status),
		psql.Arg(create.AvatarURL),
	}
	if !create.ID.IsNil() {
		columns = append(columns, "id")
		values = append(values, psql.Arg(create.ID))
	}

	q := psql.Insert(
		im.Into(profilesTableName, columns...),
		im.Values(values...),
		im.Returning(profileColumns...),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*Profile]())
	if err != nil {
		return nil, translateError(err)
	}
	return row, nil
}

func (t *ProfilesTable) Update(ctx context.Context, ownerID, id uuid.UUID, update *ProfileUpdate) (*Profile, error) {
	var setMods []bob.Mod[*dialect.UpdateQuery]
	if v, ok := update.Name.Get(); ok {
		setMods = append(setMods, um.SetCol("name").ToArg(v))
	}
	if v, ok := update.Role.Get(); ok {
		setMods = append(setMods, um.SetCol("role").ToArg(v))
	}
	if v, ok := update.Status.Get(); ok {
		setMods = append(setMods, um.SetCol("status").ToArg(v))
	}
	if v, ok := update.AvatarURL.Get(); ok {
		setMods = append(setMods, um.SetCol("avatar_url").ToArg(v))
	}
	if len(setMods) == 0 {
		return t.FindByID(ctx, ownerID, id)
	}

	queryMods := append([]bob.Mod[*dialect.UpdateQuery]{um.Table(profilesTableName)}, setMods...)
	queryMods = append(queryMods,
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
		um.Returning(profileColumns...),
	)
	row, err := bob.One(ctx, t.exec, psql.Update(queryMods...), scan.StructMapper[*Profile]())
	if err != nil {
		return nil, translateError(err)
	}
	return row, nil
}

func (t *ProfilesTable) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	q := psql.Delete(
		dm.From(profilesTableName),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		dm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
	)
	res, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return translateError(err)
	}
	return expectAffected(res)
}

// List returns the household managed by ownerID, the account holder first.
func (t *ProfilesTable) List(ctx context.Context, ownerID uuid.UUID) ([]*Profile, error) {
	q := psql.Select(
		sm.Columns(profileColumns...),
		sm.From(profilesTableName),
		sm.Where(psql.Quote("owner_id").EQ(psql.Arg(ownerID))),
		sm.OrderBy(psql.Raw("id = owner_id")).Desc(),
		sm.OrderBy(psql.Quote("name")).Asc(),
	)
	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[*Profile]())
	if err != nil {
		return nil, translateError(err)
	}
	return rows, nil
}
