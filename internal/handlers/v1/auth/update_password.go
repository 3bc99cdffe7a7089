package auth

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/household-server/internal/auth"
	"github.com/carson-networks/household-server/internal/handlers"
)

type UpdatePasswordBody struct {
	CurrentPassword string `json:"currentPassword" required:"true" doc:"Password in use"`
	NewPassword     string `json:"newPassword" required:"true" doc:"Replacement password"`
}

type UpdatePasswordInput struct {
	Body UpdatePasswordBody
}

type passwordUpdater interface {
	UpdatePassword(ctx context.Context, userID uuid.UUID, current, next string) error
}

// UpdatePasswordHandler handles PUT /v1/auth/password. Issued tokens stay valid.
type UpdatePasswordHandler struct {
	AuthService passwordUpdater
}

func NewUpdatePasswordHandler(svc passwordUpdater) *UpdatePasswordHandler {
	return &UpdatePasswordHandler{AuthService: svc}
}

func (h *UpdatePasswordHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "update-password",
		Method:        http.MethodPut,
		Path:          "/v1/auth/password",
		Summary:       "Change password",
		Tags:          []string{"Auth"},
		DefaultStatus: http.StatusNoContent,
		Security:      auth.BearerSecurity,
	}, h.handle)
}

func (h *UpdatePasswordHandler) handle(ctx context.Context, input *UpdatePasswordInput) (*struct{}, error) {
	userID, err := handlers.CallerID(ctx)
	if err != nil {
		return nil, err
	}

	if err := h.AuthService.UpdatePassword(ctx, userID, input.Body.CurrentPassword, input.Body.NewPassword); err != nil {
		return nil, handlers.Error(ctx, err, "failed to update password")
	}
	return nil, nil
}
