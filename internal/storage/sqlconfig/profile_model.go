package sqlconfig

import (
	"context"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
)

// Profile represents a profiles record. The account holder's own profile
// shares its id with the owning user.
type Profile struct {
	ID        uuid.UUID `db:"id"`
	OwnerID   uuid.UUID `db:"owner_id"`
	Name      string    `db:"name"`
	Role      string    `db:"role"`
	Status    string    `db:"status"`
	AvatarURL string    `db:"avatar_url"`
}

// ProfileCreate is the input for creating a profile. A nil ID lets the
// database generate one.
type ProfileCreate struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Name      string
	Role      string
	Status    string
	AvatarURL string
}

type ProfileUpdate struct {
	Name      omit.Val[string]
	Role      omit.Val[string]
	Status    omit.Val[string]
	AvatarURL omit.Val[string]
}

//go:generate mockery --name IProfileTable --inpackage --with-expecter --filename mock_IProfileTable.go
type IProfileTable interface {
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*Profile, error)
	Insert(ctx context.Context, create *ProfileCreate) (*Profile, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, update *ProfileUpdate) (*Profile, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	List(ctx context.Context, ownerID uuid.UUID) ([]*Profile, error)
}
