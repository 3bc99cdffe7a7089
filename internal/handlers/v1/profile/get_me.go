package profile

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/household-server/internal/auth"
	"github.com/carson-networks/household-server/internal/handlers"
	"github.com/carson-networks/household-server/internal/ledger"
)

type GetMeOutput struct {
	Body Profile
}

type meGetter interface {
	Me(ctx context.Context, userID uuid.UUID) (ledger.Profile, error)
}

// GetMeHandler handles GET /v1/profiles/me.
type GetMeHandler struct {
	ProfileService meGetter
}

func NewGetMeHandler(svc meGetter) *GetMeHandler {
	return &GetMeHandler{ProfileService: svc}
}

func (h *GetMeHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-my-profile",
		Method:      http.MethodGet,
		Path:        "/v1/profiles/me",
		Summary:     "Get own profile",
		Tags:        []string{"Profiles"},
		Security:    auth.BearerSecurity,
	}, h.handle)
}

func (h *GetMeHandler) handle(ctx context.Context, _ *struct{}) (*GetMeOutput, error) {
	userID, err := handlers.CallerID(ctx)
	if err != nil {
		return nil, err
	}

	profile, err := h.ProfileService.Me(ctx, userID)
	if err != nil {
		return nil, handlers.Error(ctx, err, "failed to get profile")
	}
	return &GetMeOutput{Body: ToProfile(profile)}, nil
}
