package auth

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/household-server/internal/auth"
	"github.com/carson-networks/household-server/internal/handlers"
)

type signOuter interface {
	SignOut(ctx context.Context, identity auth.Identity)
}

// SignOutHandler handles POST /v1/auth/signout by revoking the caller's token.
type SignOutHandler struct {
	AuthService signOuter
}

func NewSignOutHandler(svc signOuter) *SignOutHandler {
	return &SignOutHandler{AuthService: svc}
}

func (h *SignOutHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "sign-out",
		Method:        http.MethodPost,
		Path:          "/v1/auth/signout",
		Summary:       "Sign out",
		Tags:          []string{"Auth"},
		DefaultStatus: http.StatusNoContent,
		Security:      auth.BearerSecurity,
	}, h.handle)
}

func (h *SignOutHandler) handle(ctx context.Context, _ *struct{}) (*struct{}, error) {
	identity, err := handlers.Caller(ctx)
	if err != nil {
		return nil, err
	}
	h.AuthService.SignOut(ctx, identity)
	return nil, nil
}
