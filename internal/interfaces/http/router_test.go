package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	purchasedto "privstore/internal/application/purchase/dto"
	userdto "privstore/internal/application/user/dto"
	"privstore/internal/domain/user"
	"privstore/internal/infrastructure/auth"
	"privstore/internal/infrastructure/config"
	"privstore/internal/infrastructure/database/testdb"
	"privstore/internal/infrastructure/persistence/models"
	"privstore/internal/infrastructure/repository"
	httpRouter "privstore/internal/interfaces/http"
	"privstore/internal/interfaces/http/handlers/testutil"
	sharedConfig "privstore/internal/shared/config"
	"privstore/internal/shared/utils"
)

const (
	testSecret = "router-test-secret"
	testIssuer = "privstore-test"
)

type testServer struct {
	engine *httptest.Server
	db     *gorm.DB
	jwt    *auth.JWTService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	require.NoError(t, utils.RegisterBindingValidators())

	database := testdb.Open(t)
	cfg := &config.Config{
		Server: sharedConfig.ServerConfig{BaseURL: "http://localhost:8080"},
		Auth: sharedConfig.AuthConfig{JWT: sharedConfig.JWTConfig{
			Secret:     testSecret,
			Issuer:     testIssuer,
			ExpMinutes: 60,
		}},
		Steam: sharedConfig.SteamConfig{CallbackURL: "http://localhost:8080/api/auth/steam/callback"},
	}

	router, err := httpRouter.NewRouter(database, nil, cfg, testutil.NewMockLogger())
	require.NoError(t, err)
	router.SetupRoutes()

	srv := httptest.NewServer(router.GetEngine())
	t.Cleanup(srv.Close)

	return &testServer{
		engine: srv,
		db:     database,
		jwt:    auth.NewJWTService(testSecret, testIssuer, time.Hour),
	}
}

// createUser stores a user and returns it with a bearer token for it.
func (s *testServer) createUser(t *testing.T, steamID string, admin bool) (*user.User, string) {
	t.Helper()
	repo := repository.NewUserRepository(s.db, testutil.NewMockLogger())

	u, err := user.NewUser(user.SteamID(steamID), "", "", time.Now().UTC())
	require.NoError(t, err)
	stored, err := repo.Upsert(context.Background(), u)
	require.NoError(t, err)

	if admin {
		require.NoError(t, s.db.Model(&models.UserModel{}).
			Where("id = ?", stored.ID()).
			Update("is_admin", true).Error)
	}

	token, _, err := s.jwt.Issue(stored.ID(), steamID)
	require.NoError(t, err)
	return stored, token
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) (int, testutil.APIResponse) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, s.engine.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.engine.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out testutil.APIResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestRouter_PurchaseLifecycle(t *testing.T) {
	s := newTestServer(t)
	player, playerToken := s.createUser(t, "76561198000000001", false)
	_, adminToken := s.createUser(t, "76561198000000002", true)

	status, resp := s.do(t, http.MethodPost, "/api/purchases", playerToken, map[string]any{
		"privilege_type": "Nice",
		"duration_type":  "1month",
		"payment_proof":  "paypal 7XK",
		"price":          1,
	})
	require.Equal(t, http.StatusCreated, status)
	var submitted purchasedto.SubmitResultDTO
	require.NoError(t, json.Unmarshal(resp.Data, &submitted))
	assert.Equal(t, 100, submitted.Price)

	status, resp = s.do(t, http.MethodGet, "/api/admin/requests", adminToken, nil)
	require.Equal(t, http.StatusOK, status)
	var pending []purchasedto.PurchaseRequestDTO
	require.NoError(t, json.Unmarshal(resp.Data, &pending))
	require.Len(t, pending, 1)
	assert.Equal(t, submitted.RequestID, pending[0].ID)
	require.NotNil(t, pending[0].User)
	assert.Equal(t, player.SteamID().String(), pending[0].User.SteamID)

	approvePath := fmt.Sprintf("/api/admin/requests/%d/approve", submitted.RequestID)
	status, _ = s.do(t, http.MethodPost, approvePath, adminToken, nil)
	require.Equal(t, http.StatusOK, status)

	status, resp = s.do(t, http.MethodPost, approvePath, adminToken, nil)
	assert.Equal(t, http.StatusNotFound, status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "not_found", resp.Error.Type)

	status, resp = s.do(t, http.MethodGet, "/api/users/"+player.SteamID().String(), "", nil)
	require.Equal(t, http.StatusOK, status)
	var profile userdto.UserWithPrivilegesDTO
	require.NoError(t, json.Unmarshal(resp.Data, &profile))
	require.Len(t, profile.Privileges, 1)
	assert.Equal(t, "Nice", profile.Privileges[0].Type)
	assert.Equal(t, 100, profile.Privileges[0].Price)
	assert.NotNil(t, profile.Privileges[0].ExpiresAt)
	assert.True(t, profile.Privileges[0].PaymentConfirmed)

	status, resp = s.do(t, http.MethodGet, "/api/admin/requests", adminToken, nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(resp.Data, &pending))
	assert.Empty(t, pending)
}

func TestRouter_RejectThenApproveFails(t *testing.T) {
	s := newTestServer(t)
	_, playerToken := s.createUser(t, "76561198000000001", false)
	_, adminToken := s.createUser(t, "76561198000000002", true)

	status, resp := s.do(t, http.MethodPost, "/api/purchases", playerToken, map[string]any{
		"privilege_type": "Low",
		"duration_type":  "forever",
		"payment_proof":  "proof",
	})
	require.Equal(t, http.StatusCreated, status)
	var submitted purchasedto.SubmitResultDTO
	require.NoError(t, json.Unmarshal(resp.Data, &submitted))

	status, _ = s.do(t, http.MethodPost, fmt.Sprintf("/api/admin/requests/%d/reject", submitted.RequestID), adminToken, nil)
	require.Equal(t, http.StatusOK, status)

	status, _ = s.do(t, http.MethodPost, fmt.Sprintf("/api/admin/requests/%d/approve", submitted.RequestID), adminToken, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, resp = s.do(t, http.MethodGet, "/api/me", playerToken, nil)
	require.Equal(t, http.StatusOK, status)
	var me userdto.UserWithPrivilegesDTO
	require.NoError(t, json.Unmarshal(resp.Data, &me))
	assert.Empty(t, me.Privileges)
}

func TestRouter_AccessControl(t *testing.T) {
	s := newTestServer(t)
	_, playerToken := s.createUser(t, "76561198000000001", false)
	_, adminToken := s.createUser(t, "76561198000000002", true)

	tests := []struct {
		name       string
		method     string
		path       string
		token      string
		wantStatus int
	}{
		{"admin list without token", http.MethodGet, "/api/admin/requests", "", http.StatusUnauthorized},
		{"admin list with garbage token", http.MethodGet, "/api/admin/requests", "not-a-jwt", http.StatusUnauthorized},
		{"admin list as player", http.MethodGet, "/api/admin/requests", playerToken, http.StatusForbidden},
		{"approve as player", http.MethodPost, "/api/admin/requests/1/approve", playerToken, http.StatusForbidden},
		{"reject as player", http.MethodPost, "/api/admin/requests/1/reject", playerToken, http.StatusForbidden},
		{"user list as player", http.MethodGet, "/api/admin/users", playerToken, http.StatusForbidden},
		{"user list as admin", http.MethodGet, "/api/admin/users", adminToken, http.StatusOK},
		{"approve unknown request", http.MethodPost, "/api/admin/requests/999/approve", adminToken, http.StatusNotFound},
		{"me without token", http.MethodGet, "/api/me", "", http.StatusUnauthorized},
		{"admin can use player routes", http.MethodGet, "/api/me", adminToken, http.StatusOK},
		{"submit without token", http.MethodPost, "/api/purchases", "", http.StatusUnauthorized},
		{"unknown steam id", http.MethodGet, "/api/users/76561198000000099", "", http.StatusNotFound},
		{"catalog is public", http.MethodGet, "/api/catalog", "", http.StatusOK},
		{"health", http.MethodGet, "/health", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, _ := s.do(t, tt.method, tt.path, tt.token, nil)
			assert.Equal(t, tt.wantStatus, status)
		})
	}
}

func TestRouter_TokenForDeletedUser(t *testing.T) {
	s := newTestServer(t)
	token, _, err := s.jwt.Issue(4242, "76561198000004242")
	require.NoError(t, err)

	status, _ := s.do(t, http.MethodGet, "/api/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestRouter_SubmitValidation(t *testing.T) {
	s := newTestServer(t)
	_, playerToken := s.createUser(t, "76561198000000001", false)

	status, resp := s.do(t, http.MethodPost, "/api/purchases", playerToken, map[string]any{
		"privilege_type": "Low",
		"duration_type":  "1month",
		"payment_proof":  "proof",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "validation_error", resp.Error.Type)
	assert.Equal(t, "invalid price combination", resp.Error.Message)
}
