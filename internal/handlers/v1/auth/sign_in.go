package auth

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/household-server/internal/handlers"
	"github.com/carson-networks/household-server/internal/service"
)

type SignInInput struct {
	Body Credentials
}

type signInner interface {
	SignIn(ctx context.Context, email, password string) (service.Session, error)
}

// SignInHandler handles POST /v1/auth/signin. It needs no token.
type SignInHandler struct {
	AuthService signInner
}

func NewSignInHandler(svc signInner) *SignInHandler {
	return &SignInHandler{AuthService: svc}
}

func (h *SignInHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "sign-in",
		Method:      http.MethodPost,
		Path:        "/v1/auth/signin",
		Summary:     "Sign in",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func (h *SignInHandler) handle(ctx context.Context, input *SignInInput) (*SessionOutput, error) {
	session, err := h.AuthService.SignIn(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		return nil, handlers.Error(ctx, err, "failed to sign in")
	}
	return &SessionOutput{Body: toSession(session)}, nil
}
