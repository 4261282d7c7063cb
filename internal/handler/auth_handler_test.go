package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"go-cms-auth/internal/config"
	"go-cms-auth/internal/handler"
	"go-cms-auth/internal/middleware"
	"go-cms-auth/internal/model"
	"go-cms-auth/internal/router"
	"go-cms-auth/internal/service"
	"go-cms-auth/internal/token"
)

type memoryStore struct {
	users  map[string]model.User
	nextID int64
}

func newMemoryStore() *memoryStore {
	return &memoryStore{users: map[string]model.User{}, nextID: 1}
}

func (s *memoryStore) FindByUsername(_ context.Context, username string) (model.User, error) {
	user, ok := s.users[username]
	if !ok {
		return model.User{}, model.ErrUserNotFound
	}
	return user, nil
}

func (s *memoryStore) FindByID(_ context.Context, id int64) (model.User, error) {
	for _, user := range s.users {
		if user.ID == id {
			return user, nil
		}
	}
	return model.User{}, model.ErrUserNotFound
}

func (s *memoryStore) Insert(_ context.Context, username string, passwordHash string) (int64, error) {
	if _, exists := s.users[username]; exists {
		return 0, model.ErrUsernameTaken
	}
	s.users[username] = model.User{ID: s.nextID, Username: username, PasswordHash: passwordHash}
	s.nextID++
	return 1, nil
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := &config.Config{
		ServerPort:       "3007",
		RequestTimeout:   30 * time.Second,
		JWTSecret:        "test-secret",
		JWTTTL:           time.Hour,
		CORSOrigins:      []string{"*"},
		RateLimitRPM:     1000,
		AuthRateLimitRPM: 1000,
	}

	issuer := token.NewIssuer(cfg.JWTSecret, cfg.JWTTTL)
	authService := service.NewAuthService(newMemoryStore(), issuer)
	authMiddleware := middleware.NewAuthMiddleware(issuer)
	authHandler := handler.NewAuthHandler(authService)
	userinfoHandler := handler.NewUserinfoHandler(authService)

	server := httptest.NewServer(router.New(cfg, authMiddleware, authHandler, userinfoHandler))
	t.Cleanup(server.Close)
	return server
}

func postJSON(t *testing.T, url string, payload any) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response) model.Response {
	t.Helper()
	defer resp.Body.Close()

	var body model.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestRegisterLoginScenario(t *testing.T) {
	server := newTestServer(t)
	creds := map[string]string{"username": "alice", "password": "s3cret1"}

	// Register succeeds once.
	resp := postJSON(t, server.URL+"/api/register", creds)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode(t, resp)
	require.Equal(t, 0, body.Status)
	require.Equal(t, "registration succeeded", body.Message)

	// Login with the same credentials yields a Bearer-prefixed token.
	resp = postJSON(t, server.URL+"/api/login", creds)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = decode(t, resp)
	require.Equal(t, 0, body.Status)
	payload, ok := body.Payload.(map[string]any)
	require.True(t, ok)
	tokenString, _ := payload["token"].(string)
	require.True(t, strings.HasPrefix(tokenString, token.BearerPrefix))
	require.Greater(t, len(tokenString), len(token.BearerPrefix))

	// Wrong password fails with the generic message.
	resp = postJSON(t, server.URL+"/api/login", map[string]string{"username": "alice", "password": "wrong-1"})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body = decode(t, resp)
	require.Equal(t, 1, body.Status)
	require.Equal(t, model.ErrLoginFailed.Error(), body.Message)

	// Registering the same username again is rejected.
	resp = postJSON(t, server.URL+"/api/register", map[string]string{"username": "alice", "password": "anything"})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	body = decode(t, resp)
	require.Equal(t, 1, body.Status)
	require.Equal(t, model.ErrUsernameTaken.Error(), body.Message)
}

func TestLoginDoesNotLeakUserExistence(t *testing.T) {
	server := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/register", map[string]string{"username": "alice", "password": "s3cret1"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	unknown := decode(t, postJSON(t, server.URL+"/api/login", map[string]string{"username": "nobody", "password": "s3cret1"}))
	wrong := decode(t, postJSON(t, server.URL+"/api/login", map[string]string{"username": "alice", "password": "wrong-1"}))

	require.Equal(t, unknown, wrong)
}

func TestRegisterValidation(t *testing.T) {
	server := newTestServer(t)

	cases := []map[string]string{
		{"username": "", "password": "s3cret1"},
		{"username": "alice", "password": ""},
		{"username": "alice", "password": "short"},
		{"username": "bad name!", "password": "s3cret1"},
		{"username": strings.Repeat("a", 33), "password": "s3cret1"},
	}

	for _, creds := range cases {
		resp := postJSON(t, server.URL+"/api/register", creds)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		body := decode(t, resp)
		require.Equal(t, 1, body.Status)
		require.NotEmpty(t, body.Message)
	}
}

func TestRegisterRejectsInvalidJSON(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Post(server.URL+"/api/register", "application/json", strings.NewReader("{"))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode(t, resp)
	require.Equal(t, 1, body.Status)
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/my/userinfo")
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body := decode(t, resp)
	require.Equal(t, 1, body.Status)
}

func TestProtectedRouteExposesIdentity(t *testing.T) {
	server := newTestServer(t)
	creds := map[string]string{"username": "alice", "password": "s3cret1"}

	resp := postJSON(t, server.URL+"/api/register", creds)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	login := decode(t, postJSON(t, server.URL+"/api/login", creds))
	payload, ok := login.Payload.(map[string]any)
	require.True(t, ok)
	bearer, _ := payload["token"].(string)

	req, err := http.NewRequest(http.MethodGet, server.URL+"/my/userinfo", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", bearer)

	infoResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, infoResp.StatusCode)

	info := decode(t, infoResp)
	require.Equal(t, 0, info.Status)
	profile, ok := info.Payload.(map[string]any)
	require.True(t, ok)
	require.Equal(t, "alice", profile["username"])
	_, hasHash := profile["password_hash"]
	require.False(t, hasHash)
	_, hasAvatar := profile["avatar"]
	require.False(t, hasAvatar)
}
