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

type ListProfilesOutput struct {
	Body struct {
		Profiles []Profile `json:"profiles"`
	}
}

type householdLister interface {
	ListHousehold(ctx context.Context, userID uuid.UUID) ([]ledger.Profile, error)
}

// ListProfilesHandler handles GET /v1/profiles.
type ListProfilesHandler struct {
	ProfileService householdLister
}

func NewListProfilesHandler(svc householdLister) *ListProfilesHandler {
	return &ListProfilesHandler{ProfileService: svc}
}

func (h *ListProfilesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-profiles",
		Method:      http.MethodGet,
		Path:        "/v1/profiles",
		Summary:     "List household profiles",
		Tags:        []string{"Profiles"},
		Security:    auth.BearerSecurity,
	}, h.handle)
}

func (h *ListProfilesHandler) handle(ctx context.Context, _ *struct{}) (*ListProfilesOutput, error) {
	userID, err := handlers.CallerID(ctx)
	if err != nil {
		return nil, err
	}

	profiles, err := h.ProfileService.ListHousehold(ctx, userID)
	if err != nil {
		return nil, handlers.Error(ctx, err, "failed to list profiles")
	}

	out := &ListProfilesOutput{}
	out.Body.Profiles = toProfiles(profiles)
	return out, nil
}
