package auth

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/household-server/internal/auth"
	"github.com/carson-networks/household-server/internal/handlers"
	"github.com/carson-networks/household-server/internal/service"
)

type CurrentUserOutput struct {
	Body Account
}

type currentUserGetter interface {
	CurrentUser(ctx context.Context, userID uuid.UUID) (service.Account, error)
}

// CurrentUserHandler handles GET /v1/auth/me.
type CurrentUserHandler struct {
	AuthService currentUserGetter
}

func NewCurrentUserHandler(svc currentUserGetter) *CurrentUserHandler {
	return &CurrentUserHandler{AuthService: svc}
}

func (h *CurrentUserHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "current-user",
		Method:      http.MethodGet,
		Path:        "/v1/auth/me",
		Summary:     "Get signed-in account",
		Tags:        []string{"Auth"},
		Security:    auth.BearerSecurity,
	}, h.handle)
}

func (h *CurrentUserHandler) handle(ctx context.Context, _ *struct{}) (*CurrentUserOutput, error) {
	userID, err := handlers.CallerID(ctx)
	if err != nil {
		return nil, err
	}

	account, err := h.AuthService.CurrentUser(ctx, userID)
	if err != nil {
		return nil, handlers.Error(ctx, err, "failed to get account")
	}
	return &CurrentUserOutput{Body: toAccount(account)}, nil
}
