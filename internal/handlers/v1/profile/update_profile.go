package profile

import (
	"context"
	"net/http"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/household-server/internal/auth"
	"github.com/carson-networks/household-server/internal/handlers"
	"github.com/carson-networks/household-server/internal/ledger"
	"github.com/carson-networks/household-server/internal/service"
)

// UpdateProfileBody only changes the fields present.
type UpdateProfileBody struct {
	Name      *string `json:"name,omitempty" maxLength:"100" doc:"New display name"`
	Role      *string `json:"role,omitempty" enum:"Admin,Member,Viewer" doc:"New role"`
	Status    *string `json:"status,omitempty" enum:"online,offline" doc:"New presence"`
	AvatarURL *string `json:"avatarUrl,omitempty" doc:"New avatar URL, empty to clear"`
}

type UpdateProfileInput struct {
	ID   string `path:"id" doc:"Profile UUID"`
	Body UpdateProfileBody
}

type UpdateProfileOutput struct {
	Body Profile
}

type memberUpdater interface {
	UpdateMember(ctx context.Context, ownerID, id uuid.UUID, patch service.ProfilePatch) (ledger.Profile, error)
}

// UpdateProfileHandler handles PUT /v1/profiles/{id}.
type UpdateProfileHandler struct {
	ProfileService memberUpdater
}

func NewUpdateProfileHandler(svc memberUpdater) *UpdateProfileHandler {
	return &UpdateProfileHandler{ProfileService: svc}
}

func (h *UpdateProfileHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-profile",
		Method:      http.MethodPut,
		Path:        "/v1/profiles/{id}",
		Summary:     "Update household member",
		Tags:        []string{"Profiles"},
		Security:    auth.BearerSecurity,
	}, h.handle)
}

func (h *UpdateProfileHandler) handle(ctx context.Context, input *UpdateProfileInput) (*UpdateProfileOutput, error) {
	userID, err := handlers.CallerID(ctx)
	if err != nil {
		return nil, err
	}
	id, err := handlers.ParseID(input.ID)
	if err != nil {
		return nil, err
	}

	body := input.Body
	var patch service.ProfilePatch
	if body.Name != nil {
		patch.Name = omit.From(*body.Name)
	}
	if body.Role != nil {
		patch.Role = omit.From(ledger.Role(*body.Role))
	}
	if body.Status != nil {
		patch.Status = omit.From(ledger.Status(*body.Status))
	}
	if body.AvatarURL != nil {
		patch.AvatarURL = omit.From(*body.AvatarURL)
	}

	profile, err := h.ProfileService.UpdateMember(ctx, userID, id, patch)
	if err != nil {
		return nil, handlers.Error(ctx, err, "failed to update profile")
	}
	return &UpdateProfileOutput{Body: ToProfile(profile)}, nil
}
