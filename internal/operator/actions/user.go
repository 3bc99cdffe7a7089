package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/household-server/internal/storage"
	"github.com/carson-networks/household-server/internal/storage/sqlconfig"
)

const (
	accountHolderRole   = "Admin"
	accountHolderStatus = "online"
)

// RegisterUser creates the account and the account holder's own profile in
// the same transaction.
type RegisterUser struct {
	Email        string
	PasswordHash string
	Name         string

	User    *sqlconfig.User
	Profile *sqlconfig.Profile
}

func (r *RegisterUser) Perform(ctx context.Context, writer *storage.Writer) error {
	user, err := writer.Users.Insert(ctx, &sqlconfig.UserCreate{
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
	})
	if err != nil {
		return err
	}

	profile, err := writer.Profiles.Insert(ctx, &sqlconfig.ProfileCreate{
		ID:      user.ID,
		OwnerID: user.ID,
		Name:    r.Name,
		Role:    accountHolderRole,
		Status:  accountHolderStatus,
	})
	if err != nil {
		return err
	}

	r.User = user
	r.Profile = profile
	return nil
}

type ChangePassword struct {
	UserID       uuid.UUID
	PasswordHash string
}

func (c *ChangePassword) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Users.UpdatePasswordHash(ctx, c.UserID, c.PasswordHash)
}
