package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/household-server/internal/auth"
	"github.com/carson-networks/household-server/internal/handlers/handlertest"
	"github.com/carson-networks/household-server/internal/ledger"
	"github.com/carson-networks/household-server/internal/service"
	"github.com/carson-networks/household-server/internal/storage/sqlconfig"
)

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) SignUp(ctx context.Context, email, password, name string) (service.Session, error) {
	args := m.Called(ctx, email, password, name)
	session, _ := args.Get(0).(service.Session)
	return session, args.Error(1)
}

func (m *mockAuthService) SignIn(ctx context.Context, email, password string) (service.Session, error) {
	args := m.Called(ctx, email, password)
	session, _ := args.Get(0).(service.Session)
	return session, args.Error(1)
}

func (m *mockAuthService) SignOut(ctx context.Context, identity auth.Identity) {
	m.Called(ctx, identity)
}

func (m *mockAuthService) CurrentUser(ctx context.Context, userID uuid.UUID) (service.Account, error) {
	args := m.Called(ctx, userID)
	account, _ := args.Get(0).(service.Account)
	return account, args.Error(1)
}

func (m *mockAuthService) UpdatePassword(ctx context.Context, userID uuid.UUID, current, next string) error {
	return m.Called(ctx, userID, current, next).Error(0)
}

func newTestAPI(t *testing.T, svc *mockAuthService, userID uuid.UUID) humatest.TestAPI {
	t.Helper()
	api := handlertest.NewAPI(t, userID)
	NewSignUpHandler(svc).Register(api)
	NewSignInHandler(svc).Register(api)
	NewSignOutHandler(svc).Register(api)
	NewCurrentUserHandler(svc).Register(api)
	NewUpdatePasswordHandler(svc).Register(api)
	return api
}

func testSession(userID uuid.UUID) service.Session {
	return service.Session{
		Token:   auth.Token{Value: "signed.jwt.value", ID: "tok-1", ExpiresAt: time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)},
		Account: service.Account{ID: userID, Email: "rina@example.com"},
		Profile: &ledger.Profile{ID: userID, OwnerID: userID, Name: "rina", Role: ledger.RoleAdmin, Status: ledger.StatusOnline},
	}
}

// -- sign up --

func TestHTTP_SignUp(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	mockSvc := new(mockAuthService)
	mockSvc.On("SignUp", mock.Anything, "rina@example.com", "secret123", "").Return(testSession(userID), nil)

	resp := newTestAPI(t, mockSvc, uuid.Nil).Post("/v1/auth/signup", map[string]any{
		"email": "rina@example.com", "password": "secret123",
	})

	require.Equal(t, http.StatusCreated, resp.Code)
	var body Session
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "signed.jwt.value", body.Token)
	assert.Equal(t, "2025-03-02T00:00:00Z", body.ExpiresAt)
	assert.Equal(t, userID.String(), body.Account.ID)
	require.NotNil(t, body.Profile)
	assert.True(t, body.Profile.AccountHolder)
}

func TestHTTP_SignUp_EmailTaken(t *testing.T) {
	mockSvc := new(mockAuthService)
	mockSvc.On("SignUp", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, auth.ErrEmailTaken)

	resp := newTestAPI(t, mockSvc, uuid.Nil).Post("/v1/auth/signup", map[string]any{
		"email": "rina@example.com", "password": "secret123",
	})

	assert.Equal(t, http.StatusConflict, resp.Code)
}

func TestHTTP_SignUp_Invalid(t *testing.T) {
	mockSvc := new(mockAuthService)
	mockSvc.On("SignUp", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, ledger.NewValidationError("email", "is not a valid address"))

	resp := newTestAPI(t, mockSvc, uuid.Nil).Post("/v1/auth/signup", map[string]any{
		"email": "nope", "password": "secret123",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "body.email")
}

// -- sign in --

func TestHTTP_SignIn_WithoutProfile(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	session := testSession(userID)
	session.Profile = nil
	mockSvc := new(mockAuthService)
	mockSvc.On("SignIn", mock.Anything, "rina@example.com", "secret123").Return(session, nil)

	resp := newTestAPI(t, mockSvc, uuid.Nil).Post("/v1/auth/signin", Credentials{Email: "rina@example.com", Password: "secret123"})

	require.Equal(t, http.StatusOK, resp.Code)
	var body Session
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Nil(t, body.Profile)
}

func TestHTTP_SignIn_WrongPassword(t *testing.T) {
	mockSvc := new(mockAuthService)
	mockSvc.On("SignIn", mock.Anything, mock.Anything, mock.Anything).Return(nil, auth.ErrInvalidCredentials)

	resp := newTestAPI(t, mockSvc, uuid.Nil).Post("/v1/auth/signin", Credentials{Email: "rina@example.com", Password: "wrong"})

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

// -- signed in --

func TestHTTP_SignOut_RevokesCallerToken(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	mockSvc := new(mockAuthService)
	mockSvc.On("SignOut", mock.Anything, mock.MatchedBy(func(identity auth.Identity) bool {
		return identity.UserID == userID && identity.TokenID == "test-token"
	})).Return()

	resp := newTestAPI(t, mockSvc, userID).Post("/v1/auth/signout")

	assert.Equal(t, http.StatusNoContent, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_SignOut_Anonymous(t *testing.T) {
	resp := newTestAPI(t, new(mockAuthService), uuid.Nil).Post("/v1/auth/signout")

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestHTTP_CurrentUser(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	mockSvc := new(mockAuthService)
	mockSvc.On("CurrentUser", mock.Anything, userID).Return(service.Account{ID: userID, Email: "rina@example.com"}, nil)

	resp := newTestAPI(t, mockSvc, userID).Get("/v1/auth/me")

	require.Equal(t, http.StatusOK, resp.Code)
	var body Account
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "rina@example.com", body.Email)
}

func TestHTTP_CurrentUser_Deleted(t *testing.T) {
	mockSvc := new(mockAuthService)
	mockSvc.On("CurrentUser", mock.Anything, mock.Anything).Return(nil, sqlconfig.ErrNotFound)

	resp := newTestAPI(t, mockSvc, uuid.Must(uuid.NewV4())).Get("/v1/auth/me")

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_UpdatePassword(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	mockSvc := new(mockAuthService)
	mockSvc.On("UpdatePassword", mock.Anything, userID, "secret123", "secret456").Return(nil)

	resp := newTestAPI(t, mockSvc, userID).Put("/v1/auth/password", UpdatePasswordBody{
		CurrentPassword: "secret123", NewPassword: "secret456",
	})

	assert.Equal(t, http.StatusNoContent, resp.Code)
}

func TestHTTP_UpdatePassword_WrongCurrent(t *testing.T) {
	mockSvc := new(mockAuthService)
	mockSvc.On("UpdatePassword", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(auth.ErrInvalidCredentials)

	resp := newTestAPI(t, mockSvc, uuid.Must(uuid.NewV4())).Put("/v1/auth/password", UpdatePasswordBody{
		CurrentPassword: "nope", NewPassword: "secret456",
	})

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}
