package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/household-server/internal/auth"
	"github.com/carson-networks/household-server/internal/service"
)

type fakePinger struct {
	err error
}

func (f fakePinger) Ping(context.Context) error {
	return f.err
}

func newTestRouter(t *testing.T, db Pinger) http.Handler {
	t.Helper()
	logger, _ := test.NewNullLogger()
	issuer, err := auth.NewTokenIssuer("test-secret", time.Hour)
	require.NoError(t, err)
	t.Cleanup(issuer.Close)

	rest := &Rest{
		Logger:   logger,
		Port:     "0",
		Database: db,
		Service:  &service.Service{},
		Tokens:   issuer,
	}
	return rest.Router()
}

func serve(handler http.Handler, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestRouter_Status(t *testing.T) {
	router := newTestRouter(t, fakePinger{})

	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/status").Code)
}

func TestRouter_StatusDatabaseDown(t *testing.T) {
	router := newTestRouter(t, fakePinger{err: errors.New("down")})

	assert.Equal(t, http.StatusServiceUnavailable, serve(router, http.MethodGet, "/status").Code)
}

func TestRouter_OpenAPIListsOperations(t *testing.T) {
	router := newTestRouter(t, fakePinger{})

	resp := serve(router, http.MethodGet, "/openapi.json")

	require.Equal(t, http.StatusOK, resp.Code)
	body := resp.Body.String()
	for _, path := range []string{
		"/v1/auth/signup", "/v1/transaction/{id}", "/v1/categories", "/v1/goals/{id}",
		"/v1/profiles/me", "/v1/dashboard",
	} {
		assert.Contains(t, body, path)
	}
	assert.Contains(t, body, `"bearer"`)
}

func TestRouter_ProtectedOperationNeedsToken(t *testing.T) {
	router := newTestRouter(t, fakePinger{})

	for _, path := range []string{"/v1/goals", "/v1/categories", "/v1/profiles", "/v1/dashboard", "/v1/auth/me"} {
		assert.Equal(t, http.StatusUnauthorized, serve(router, http.MethodGet, path).Code, path)
	}
}
