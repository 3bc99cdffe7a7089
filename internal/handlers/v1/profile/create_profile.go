package profile

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/household-server/internal/auth"
	"github.com/carson-networks/household-server/internal/handlers"
	"github.com/carson-networks/household-server/internal/ledger"
)

type CreateProfileBody struct {
	Name      string `json:"name" required:"true" minLength:"1" maxLength:"100" doc:"Display name"`
	Role      string `json:"role,omitempty" enum:"Admin,Member,Viewer" doc:"Defaults to Member"`
	Status    string `json:"status,omitempty" enum:"online,offline" doc:"Defaults to offline"`
	AvatarURL string `json:"avatarUrl,omitempty" format:"uri" doc:"Avatar image URL"`
}

type CreateProfileInput struct {
	Body CreateProfileBody
}

type CreateProfileOutput struct {
	Body Profile
}

type memberAdder interface {
	AddMember(ctx context.Context, profile ledger.Profile) (ledger.Profile, error)
}

// CreateProfileHandler handles POST /v1/profiles.
type CreateProfileHandler struct {
	ProfileService memberAdder
}

func NewCreateProfileHandler(svc memberAdder) *CreateProfileHandler {
	return &CreateProfileHandler{ProfileService: svc}
}

func (h *CreateProfileHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-profile",
		Method:        http.MethodPost,
		Path:          "/v1/profiles",
		Summary:       "Add household member",
		Tags:          []string{"Profiles"},
		DefaultStatus: http.StatusCreated,
		Security:      auth.BearerSecurity,
	}, h.handle)
}

func (h *CreateProfileHandler) handle(ctx context.Context, input *CreateProfileInput) (*CreateProfileOutput, error) {
	userID, err := handlers.CallerID(ctx)
	if err != nil {
		return nil, err
	}

	profile, err := h.ProfileService.AddMember(ctx, ledger.Profile{
		OwnerID:   userID,
		Name:      input.Body.Name,
		Role:      ledger.Role(input.Body.Role),
		Status:    ledger.Status(input.Body.Status),
		AvatarURL: input.Body.AvatarURL,
	})
	if err != nil {
		return nil, handlers.Error(ctx, err, "failed to add profile")
	}
	return &CreateProfileOutput{Body: ToProfile(profile)}, nil
}
