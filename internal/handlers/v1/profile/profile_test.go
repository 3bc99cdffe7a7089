package profile

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/household-server/internal/handlers/handlertest"
	"github.com/carson-networks/household-server/internal/ledger"
	"github.com/carson-networks/household-server/internal/operator/actions"
	"github.com/carson-networks/household-server/internal/service"
)

type mockProfileService struct {
	mock.Mock
}

func (m *mockProfileService) Me(ctx context.Context, userID uuid.UUID) (ledger.Profile, error) {
	args := m.Called(ctx, userID)
	profile, _ := args.Get(0).(ledger.Profile)
	return profile, args.Error(1)
}

func (m *mockProfileService) ListHousehold(ctx context.Context, userID uuid.UUID) ([]ledger.Profile, error) {
	args := m.Called(ctx, userID)
	profiles, _ := args.Get(0).([]ledger.Profile)
	return profiles, args.Error(1)
}

func (m *mockProfileService) AddMember(ctx context.Context, profile ledger.Profile) (ledger.Profile, error) {
	args := m.Called(ctx, profile)
	created, _ := args.Get(0).(ledger.Profile)
	return created, args.Error(1)
}

func (m *mockProfileService) UpdateMember(ctx context.Context, ownerID, id uuid.UUID, patch service.ProfilePatch) (ledger.Profile, error) {
	args := m.Called(ctx, ownerID, id, patch)
	updated, _ := args.Get(0).(ledger.Profile)
	return updated, args.Error(1)
}

func (m *mockProfileService) RemoveMember(ctx context.Context, ownerID, id uuid.UUID) error {
	return m.Called(ctx, ownerID, id).Error(0)
}

func newTestAPI(t *testing.T, svc *mockProfileService, userID uuid.UUID) humatest.TestAPI {
	t.Helper()
	api := handlertest.NewAPI(t, userID)
	NewGetMeHandler(svc).Register(api)
	NewListProfilesHandler(svc).Register(api)
	NewCreateProfileHandler(svc).Register(api)
	NewUpdateProfileHandler(svc).Register(api)
	NewDeleteProfileHandler(svc).Register(api)
	return api
}

func TestHTTP_GetMe(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	mockSvc := new(mockProfileService)
	mockSvc.On("Me", mock.Anything, userID).Return(ledger.Profile{
		ID: userID, OwnerID: userID, Name: "Rina", Role: ledger.RoleAdmin, Status: ledger.StatusOnline,
	}, nil)

	resp := newTestAPI(t, mockSvc, userID).Get("/v1/profiles/me")

	require.Equal(t, http.StatusOK, resp.Code)
	var body Profile
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Rina", body.Name)
	assert.True(t, body.AccountHolder)
}

func TestHTTP_GetMe_Anonymous(t *testing.T) {
	resp := newTestAPI(t, new(mockProfileService), uuid.Nil).Get("/v1/profiles/me")

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestHTTP_ListProfiles(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	mockSvc := new(mockProfileService)
	mockSvc.On("ListHousehold", mock.Anything, userID).Return([]ledger.Profile{
		{ID: userID, OwnerID: userID, Name: "Rina", Role: ledger.RoleAdmin, Status: ledger.StatusOnline},
		{ID: uuid.Must(uuid.NewV4()), OwnerID: userID, Name: "Adi", Role: ledger.RoleMember, Status: ledger.StatusOffline},
	}, nil)

	resp := newTestAPI(t, mockSvc, userID).Get("/v1/profiles")

	require.Equal(t, http.StatusOK, resp.Code)
	var body struct {
		Profiles []Profile `json:"profiles"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Profiles, 2)
	assert.True(t, body.Profiles[0].AccountHolder)
	assert.False(t, body.Profiles[1].AccountHolder)
}

func TestHTTP_CreateProfile_OwnedByCaller(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	mockSvc := new(mockProfileService)
	mockSvc.On("AddMember", mock.Anything, mock.MatchedBy(func(p ledger.Profile) bool {
		return p.OwnerID == userID && p.Name == "Adi" && p.Role == ""
	})).Return(ledger.Profile{
		ID: uuid.Must(uuid.NewV4()), OwnerID: userID, Name: "Adi", Role: ledger.RoleMember, Status: ledger.StatusOffline,
	}, nil)

	resp := newTestAPI(t, mockSvc, userID).Post("/v1/profiles", CreateProfileBody{Name: "Adi"})

	require.Equal(t, http.StatusCreated, resp.Code)
	var body Profile
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Member", body.Role)
}

func TestHTTP_CreateProfile_BadRole(t *testing.T) {
	resp := newTestAPI(t, new(mockProfileService), uuid.Must(uuid.NewV4())).
		Post("/v1/profiles", map[string]any{"name": "Adi", "role": "Owner"})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestHTTP_UpdateProfile_PartialPatch(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	id := uuid.Must(uuid.NewV4())
	mockSvc := new(mockProfileService)
	mockSvc.On("UpdateMember", mock.Anything, userID, id, mock.MatchedBy(func(p service.ProfilePatch) bool {
		status, ok := p.Status.Get()
		return ok && status == ledger.StatusOnline && !p.Name.IsSet() && !p.Role.IsSet() && !p.AvatarURL.IsSet()
	})).Return(ledger.Profile{ID: id, OwnerID: userID, Name: "Adi", Role: ledger.RoleMember, Status: ledger.StatusOnline}, nil)

	resp := newTestAPI(t, mockSvc, userID).Put("/v1/profiles/"+id.String(), map[string]any{"status": "online"})

	assert.Equal(t, http.StatusOK, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_DeleteProfile_AccountHolder(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	mockSvc := new(mockProfileService)
	mockSvc.On("RemoveMember", mock.Anything, userID, userID).Return(actions.ErrAccountHolderProfile)

	resp := newTestAPI(t, mockSvc, userID).Delete("/v1/profiles/" + userID.String())

	assert.Equal(t, http.StatusConflict, resp.Code)
}

func TestHTTP_DeleteProfile(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	id := uuid.Must(uuid.NewV4())
	mockSvc := new(mockProfileService)
	mockSvc.On("RemoveMember", mock.Anything, userID, id).Return(nil)

	resp := newTestAPI(t, mockSvc, userID).Delete("/v1/profiles/" + id.String())

	assert.Equal(t, http.StatusNoContent, resp.Code)
}
