package service

import (
	"context"
	"strings"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/household-server/internal/ledger"
	"github.com/carson-networks/household-server/internal/operator/actions"
	"github.com/carson-networks/household-server/internal/storage"
	"github.com/carson-networks/household-server/internal/storage/sqlconfig"
)

// ProfilePatch changes only the fields that are set.
type ProfilePatch struct {
	Name      omit.Val[string]
	Role      omit.Val[ledger.Role]
	Status    omit.Val[ledger.Status]
	AvatarURL omit.Val[string]
}

// ProfileService manages the household members of an account. Every profile
// is owned by exactly one account.
type ProfileService struct {
	storage   *storage.Storage
	processor ActionProcessor
}

func NewProfileService(store *storage.Storage, processor ActionProcessor) *ProfileService {
	return &ProfileService{
		storage:   store,
		processor: processor,
	}
}

// Me returns the account holder's own profile.
func (s *ProfileService) Me(ctx context.Context, userID uuid.UUID) (ledger.Profile, error) {
	row, err := s.storage.Profiles.FindByID(ctx, userID, userID)
	if err != nil {
		return ledger.Profile{}, err
	}
	return toLedgerProfile(row), nil
}

// ListHousehold returns the account holder first, then members by name.
func (s *ProfileService) ListHousehold(ctx context.Context, userID uuid.UUID) ([]ledger.Profile, error) {
	rows, err := s.storage.Profiles.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	profiles := make([]ledger.Profile, len(rows))
	for i, row := range rows {
		profiles[i] = toLedgerProfile(row)
	}
	return profiles, nil
}

// AddMember creates a profile owned by profile.OwnerID. Role defaults to
// Member and status to offline.
func (s *ProfileService) AddMember(ctx context.Context, profile ledger.Profile) (ledger.Profile, error) {
	profile.Name = strings.TrimSpace(profile.Name)
	if profile.Role == "" {
		profile.Role = ledger.RoleMember
	}
	if profile.Status == "" {
		profile.Status = ledger.StatusOffline
	}
	if err := profile.Validate(); err != nil {
		return ledger.Profile{}, err
	}

	action := &actions.CreateProfile{Create: sqlconfig.ProfileCreate{
		OwnerID:   profile.OwnerID,
		Name:      profile.Name,
		Role:      string(profile.Role),
		Status:    string(profile.Status),
		AvatarURL: profile.AvatarURL,
	}}
	if err := s.processor.Process(ctx, action); err != nil {
		return ledger.Profile{}, err
	}
	return toLedgerProfile(action.Created), nil
}

func (s *ProfileService) UpdateMember(ctx context.Context, ownerID, id uuid.UUID, patch ProfilePatch) (ledger.Profile, error) {
	ve := &ledger.ValidationErrors{}
	update := sqlconfig.ProfileUpdate{AvatarURL: patch.AvatarURL}
	if name, ok := patch.Name.Get(); ok {
		name = strings.TrimSpace(name)
		if name == "" {
			ve.Add("name", "is required")
		}
		update.Name = omit.From(name)
	}
	if role, ok := patch.Role.Get(); ok {
		if !role.Valid() {
			ve.Add("role", "must be Admin, Member or Viewer")
		}
		update.Role = omit.From(string(role))
	}
	if status, ok := patch.Status.Get(); ok {
		if !status.Valid() {
			ve.Add("status", "must be online or offline")
		}
		update.Status = omit.From(string(status))
	}
	if err := ve.Err(); err != nil {
		return ledger.Profile{}, err
	}

	action := &actions.UpdateProfile{OwnerID: ownerID, ID: id, Update: update}
	if err := s.processor.Process(ctx, action); err != nil {
		return ledger.Profile{}, err
	}
	return toLedgerProfile(action.Updated), nil
}

// RemoveMember deletes a member profile. The account holder's own profile is
// actions.ErrAccountHolderProfile.
func (s *ProfileService) RemoveMember(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.processor.Process(ctx, &actions.DeleteProfile{OwnerID: ownerID, ID: id})
}
