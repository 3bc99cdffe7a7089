package auth

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/household-server/internal/handlers"
	"github.com/carson-networks/household-server/internal/service"
)

type SignUpBody struct {
	Credentials
	Name string `json:"name,omitempty" maxLength:"100" doc:"Display name, defaults to the email's local part"`
}

type SignUpInput struct {
	Body SignUpBody
}

type SessionOutput struct {
	Body Session
}

type signUpper interface {
	SignUp(ctx context.Context, email, password, name string) (service.Session, error)
}

// SignUpHandler handles POST /v1/auth/signup. It needs no token.
type SignUpHandler struct {
	AuthService signUpper
}

func NewSignUpHandler(svc signUpper) *SignUpHandler {
	return &SignUpHandler{AuthService: svc}
}

func (h *SignUpHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "sign-up",
		Method:        http.MethodPost,
		Path:          "/v1/auth/signup",
		Summary:       "Create account",
		Tags:          []string{"Auth"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *SignUpHandler) handle(ctx context.Context, input *SignUpInput) (*SessionOutput, error) {
	session, err := h.AuthService.SignUp(ctx, input.Body.Email, input.Body.Password, input.Body.Name)
	if err != nil {
		return nil, handlers.Error(ctx, err, "failed to sign up")
	}
	return &SessionOutput{Body: toSession(session)}, nil
}
