package profile

import (
	"github.com/carson-networks/household-server/internal/ledger"
)

// Profile is the API response model for a household member.
type Profile struct {
	ID            string `json:"id" doc:"Profile UUID"`
	Name          string `json:"name" doc:"Display name"`
	Role          string `json:"role" enum:"Admin,Member,Viewer" doc:"Advisory role"`
	Status        string `json:"status" enum:"online,offline" doc:"Advisory presence"`
	AvatarURL     string `json:"avatarUrl,omitempty" doc:"Avatar image URL"`
	AccountHolder bool   `json:"accountHolder" doc:"Whether this is the signed-in account's own profile"`
}

// ToProfile converts a ledger profile to its API model.
func ToProfile(profile ledger.Profile) Profile {
	return Profile{
		ID:            profile.ID.String(),
		Name:          profile.Name,
		Role:          string(profile.Role),
		Status:        string(profile.Status),
		AvatarURL:     profile.AvatarURL,
		AccountHolder: profile.IsAccountHolder(),
	}
}

func toProfiles(profiles []ledger.Profile) []Profile {
	out := make([]Profile, len(profiles))
	for i, p := range profiles {
		out[i] = ToProfile(p)
	}
	return out
}
