package sqlconfig

import (
	"context"
	"strings"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

const usersTableName = "users"

var userColumns = []any{"id", "email", "password_hash", "created_at"}

var _ IUserTable = (*UsersTable)(nil)

// UsersTable provides access to the users table. Emails are stored lower-cased.
type UsersTable struct {
	exec bob.Executor
}

func NewUsersTable(exec bob.Executor) *UsersTable {
	return &UsersTable{exec: exec}
}

func (t *UsersTable) FindByID(ctx context.Context, id uuid.UUID) (*User, error) {
	q := psql.Select(
		sm.Columns(userColumns...),
		sm.From(usersTableName),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*User]())
	if err != nil {
		return nil, translateError(err)
	}
	return row, nil
}

func (t *UsersTable) FindByEmail(ctx context.Context, email string) (*User, error) {
	q := psql.Select(
		sm.Columns(userColumns...),
		sm.From(usersTableName),
		sm.Where(psql.Quote("email").EQ(psql.Arg(strings.ToLower(email)))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*User]())
	if err != nil {
		return nil, translateError(err)
	}
	return row, nil
}

// Insert fails with ErrConflict when the email is already registered.
func (t *UsersTable) Insert(ctx context.Context, create *UserCreate) (*User, error) {
	q := psql.Insert(
		im.Into(usersTableName, "email", "password_hash"),
		im.Values(psql.Arg(strings.ToLower(create.Email)), psql.Arg(create.PasswordHash)),
		im.Returning(userColumns...),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*User]())
	if err != nil {
		return nil, translateError(err)
	}
	return row, nil
}

func (t *UsersTable) UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error {
	q := psql.Update(
		um.Table(usersTableName),
		um.SetCol("password_hash").ToArg(passwordHash),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	res, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return translateError(err)
	}
	return expectAffected(res)
}
