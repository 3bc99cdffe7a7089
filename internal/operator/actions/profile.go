package actions

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/household-server/internal/storage"
	"github.com/carson-networks/household-server/internal/storage/sqlconfig"
)

// ErrAccountHolderProfile is returned when removing the profile that
// represents the signed-in account itself.
var ErrAccountHolderProfile = errors.New("the account holder's profile cannot be removed")

type CreateProfile struct {
	Create sqlconfig.ProfileCreate

	Created *sqlconfig.Profile
}

func (p *CreateProfile) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Profiles.Insert(ctx, &p.Create)
	if err != nil {
		return err
	}

	p.Created = row
	return nil
}

type UpdateProfile struct {
	OwnerID uuid.UUID
	ID      uuid.UUID
	Update  sqlconfig.ProfileUpdate

	Updated *sqlconfig.Profile
}

func (p *UpdateProfile) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Profiles.Update(ctx, p.OwnerID, p.ID, &p.Update)
	if err != nil {
		return err
	}

	p.Updated = row
	return nil
}

type DeleteProfile struct {
	OwnerID uuid.UUID
	ID      uuid.UUID
}

func (p *DeleteProfile) Perform(ctx context.Context, writer *storage.Writer) error {
	if p.ID == p.OwnerID {
		return ErrAccountHolderProfile
	}
	return writer.Profiles.Delete(ctx, p.OwnerID, p.ID)
}
