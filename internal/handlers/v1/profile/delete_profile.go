package profile

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/household-server/internal/auth"
	"github.com/carson-networks/household-server/internal/handlers"
)

type DeleteProfileInput struct {
	ID string `path:"id" doc:"Profile UUID"`
}

type memberRemover interface {
	RemoveMember(ctx context.Context, ownerID, id uuid.UUID) error
}

// DeleteProfileHandler handles DELETE /v1/profiles/{id}. The account holder's
// own profile cannot be removed.
type DeleteProfileHandler struct {
	ProfileService memberRemover
}

func NewDeleteProfileHandler(svc memberRemover) *DeleteProfileHandler {
	return &DeleteProfileHandler{ProfileService: svc}
}

func (h *DeleteProfileHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-profile",
		Method:        http.MethodDelete,
		Path:          "/v1/profiles/{id}",
		Summary:       "Remove household member",
		Tags:          []string{"Profiles"},
		DefaultStatus: http.StatusNoContent,
		Security:      auth.BearerSecurity,
	}, h.handle)
}

func (h *DeleteProfileHandler) handle(ctx context.Context, input *DeleteProfileInput) (*struct{}, error) {
	userID, err := handlers.CallerID(ctx)
	if err != nil {
		return nil, err
	}
	id, err := handlers.ParseID(input.ID)
	if err != nil {
		return nil, err
	}

	if err := h.ProfileService.RemoveMember(ctx, userID, id); err != nil {
		return nil, handlers.Error(ctx, err, "failed to remove profile")
	}
	return nil, nil
}
