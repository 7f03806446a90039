package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	httptransport "github.com/internhub/internship-service/internal/api/http"
	"github.com/internhub/internship-service/internal/api/http/handlers"
	"github.com/internhub/internship-service/internal/auth"
	"github.com/internhub/internship-service/internal/config"
	"github.com/internhub/internship-service/internal/domain"
	"github.com/internhub/internship-service/internal/events"
	"github.com/internhub/internship-service/internal/observability"
	"github.com/internhub/internship-service/internal/repository/repotest"
	"github.com/internhub/internship-service/internal/service"
)

type testServer struct {
	app    *fiber.App
	store  *repotest.Store
	tokens *auth.TokenManager
}

func newTestServer(t *testing.T, enforce bool) *testServer {
	t.Helper()
	return newTestServerWithTimeout(t, enforce, 5*time.Second)
}

func newTestServerWithTimeout(t *testing.T, enforce bool, timeout time.Duration) *testServer {
	t.Helper()

	store := repotest.NewStore()
	logger := zap.NewNop()
	dispatcher := events.NewInMemoryDispatcher()
	metrics := observability.NewMetrics()

	authService := service.NewAuthService(
		config.AuthConfig{JWTSecret: "router-secret", TokenTTLMinutes: 60, BcryptCost: 4},
		service.AuthDependencies{UserRepo: store.Users(), Dispatcher: dispatcher, Logger: logger},
	)
	catalog := service.NewCatalogService(service.CatalogDependencies{InternshipRepo: store.Internships(), Dispatcher: dispatcher, Logger: logger})
	applications := service.NewApplicationService(service.ApplicationDependencies{ApplicationRepo: store.Applications(), Dispatcher: dispatcher, Logger: logger})

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, timeout)
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler("internship-service", "test", nil),
		Auth:           handlers.NewAuthHandler(authService),
		Internships:    handlers.NewInternshipsHandler(catalog),
		Applications:   handlers.NewApplicationsHandler(applications),
		AuthMiddleware: auth.NewAuthMiddleware(authService.TokenManager(), store.Users()),
		Metrics:        metrics,
		EnforceAuth:    enforce,
	})

	return &testServer{app: app, store: store, tokens: authService.TokenManager()}
}

func (s *testServer) do(t *testing.T, method, path string, body any, token string) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v), string(raw))
	return v
}

func TestRootRoute(t *testing.T) {
	s := newTestServer(t, false)

	status, body := s.do(t, http.MethodGet, "/", nil, "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Server is running", string(body))
}

func TestInternshipApplicationScenario(t *testing.T) {
	s := newTestServer(t, false)

	status, body := s.do(t, http.MethodPost, "/api/register",
		map[string]string{"name": "A", "email": "a@x.com", "password": "pw", "role": "student"}, "")
	require.Equal(t, http.StatusCreated, status, string(body))
	registered := decode[map[string]any](t, body)
	assert.Equal(t, "User registered successfully!", registered["message"])
	uid := int64(registered["user_id"].(float64))

	status, body = s.do(t, http.MethodPost, "/api/login", map[string]string{"email": "a@x.com", "password": "pw"}, "")
	require.Equal(t, http.StatusOK, status, string(body))
	login := decode[map[string]any](t, body)
	assert.Equal(t, "Login successful", login["message"])
	claims, err := s.tokens.ParseToken(login["token"].(string))
	require.NoError(t, err)
	assert.Equal(t, uid, claims.UserID)
	assert.Equal(t, domain.RoleStudent, claims.Role)

	posting := map[string]any{
		"title": "Intern1", "description": "Build APIs", "company": "Acme", "location": "Remote", "created_by": uid,
	}
	status, body = s.do(t, http.MethodPost, "/api/internships", posting, "")
	require.Equal(t, http.StatusCreated, status, string(body))
	iid := int64(decode[map[string]any](t, body)["internship_id"].(float64))

	status, body = s.do(t, http.MethodGet, fmt.Sprintf("/api/internships/%d", iid), nil, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, domain.Internship{
		ID: iid, Title: "Intern1", Description: "Build APIs", Company: "Acme", Location: "Remote", CreatedBy: uid,
	}, decode[domain.Internship](t, body))

	status, body = s.do(t, http.MethodPost, "/api/applications", map[string]any{"user_id": uid, "internship_id": iid}, "")
	require.Equal(t, http.StatusCreated, status, string(body))
	aid := int64(decode[map[string]any](t, body)["application_id"].(float64))

	appsPath := fmt.Sprintf("/api/applications/user/%d", uid)
	status, body = s.do(t, http.MethodGet, appsPath, nil, "")
	require.Equal(t, http.StatusOK, status)
	apps := decode[[]domain.UserApplication](t, body)
	require.Len(t, apps, 1)
	assert.Equal(t, "Intern1", apps[0].Title)
	assert.Equal(t, domain.ApplicationStatusPending, apps[0].Status)

	status, body = s.do(t, http.MethodPut, fmt.Sprintf("/api/applications/%d", aid), map[string]string{"status": "accepted"}, "")
	require.Equal(t, http.StatusOK, status, string(body))
	assert.Equal(t, "Application status updated successfully", decode[map[string]any](t, body)["message"])

	_, body = s.do(t, http.MethodGet, appsPath, nil, "")
	apps = decode[[]domain.UserApplication](t, body)
	require.Len(t, apps, 1)
	assert.Equal(t, domain.ApplicationStatusAccepted, apps[0].Status)
}

func TestRegisterDuplicateEmailReturns500(t *testing.T) {
	s := newTestServer(t, false)
	user := map[string]string{"name": "A", "email": "a@x.com", "password": "pw", "role": "student"}

	status, _ := s.do(t, http.MethodPost, "/api/register", user, "")
	require.Equal(t, http.StatusCreated, status)

	status, body := s.do(t, http.MethodPost, "/api/register", user, "")
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Contains(t, decode[map[string]any](t, body)["error"], "duplicate key")
}

func TestLoginFailuresShareResponse(t *testing.T) {
	s := newTestServer(t, false)
	status, _ := s.do(t, http.MethodPost, "/api/register",
		map[string]string{"name": "A", "email": "a@x.com", "password": "pw", "role": "student"}, "")
	require.Equal(t, http.StatusCreated, status)

	wrongStatus, wrongBody := s.do(t, http.MethodPost, "/api/login", map[string]string{"email": "a@x.com", "password": "bad"}, "")
	ghostStatus, ghostBody := s.do(t, http.MethodPost, "/api/login", map[string]string{"email": "ghost@x.com", "password": "pw"}, "")

	assert.Equal(t, http.StatusUnauthorized, wrongStatus)
	assert.Equal(t, http.StatusUnauthorized, ghostStatus)
	assert.JSONEq(t, string(wrongBody), string(ghostBody))
	assert.Equal(t, "Invalid credentials", decode[map[string]any](t, wrongBody)["message"])
}

func TestGetMissingInternshipReturns404(t *testing.T) {
	s := newTestServer(t, false)

	status, body := s.do(t, http.MethodGet, "/api/internships/999", nil, "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Internship not found", decode[map[string]any](t, body)["message"])

	status, _ = s.do(t, http.MethodGet, "/api/internships/abc", nil, "")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestListInternshipsEmptyArray(t *testing.T) {
	s := newTestServer(t, false)

	status, body := s.do(t, http.MethodGet, "/api/internships", nil, "")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, "[]", string(body))
}

func TestUpdateMissingApplicationReturns404(t *testing.T) {
	s := newTestServer(t, false)

	status, body := s.do(t, http.MethodPut, "/api/applications/4242", map[string]string{"status": "accepted"}, "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Application not found", decode[map[string]any](t, body)["message"])
}

func TestValidationFailuresReturn400(t *testing.T) {
	s := newTestServer(t, false)

	cases := []struct {
		method, path string
		body         any
	}{
		{http.MethodPost, "/api/register", map[string]string{"name": "A", "email": "a@x.com", "password": "pw", "role": "pirate"}},
		{http.MethodPost, "/api/register", map[string]string{"email": "a@x.com"}},
		{http.MethodPost, "/api/internships", map[string]any{"title": "No owner"}},
		{http.MethodPost, "/api/applications", map[string]any{"user_id": 1}},
		{http.MethodPut, "/api/applications/1", map[string]string{"status": "hired"}},
		{http.MethodGet, "/api/applications/user/zero", nil},
	}
	for _, tc := range cases {
		status, body := s.do(t, tc.method, tc.path, tc.body, "")
		assert.Equal(t, http.StatusBadRequest, status, "%s %s: %s", tc.method, tc.path, body)
	}
}

func TestStoreFailureReturns500(t *testing.T) {
	s := newTestServer(t, false)
	s.store.Err = errors.New("connection refused")

	status, body := s.do(t, http.MethodGet, "/api/internships", nil, "")
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Contains(t, decode[map[string]any](t, body)["error"], "connection refused")
}

func TestEnforcedAuthGuardsWrites(t *testing.T) {
	s := newTestServer(t, true)

	status, _ := s.do(t, http.MethodPost, "/api/register",
		map[string]string{"name": "Co", "email": "co@x.com", "password": "pw", "role": "company"}, "")
	require.Equal(t, http.StatusCreated, status)
	status, _ = s.do(t, http.MethodPost, "/api/register",
		map[string]string{"name": "St", "email": "st@x.com", "password": "pw", "role": "student"}, "")
	require.Equal(t, http.StatusCreated, status)

	login := func(email string) string {
		_, body := s.do(t, http.MethodPost, "/api/login", map[string]string{"email": email, "password": "pw"}, "")
		return decode[map[string]any](t, body)["token"].(string)
	}
	company, student := login("co@x.com"), login("st@x.com")

	posting := map[string]any{"title": "T", "description": "D", "company": "C", "location": "L", "created_by": 1}
	status, _ = s.do(t, http.MethodPost, "/api/internships", posting, "")
	assert.Equal(t, http.StatusUnauthorized, status)
	status, _ = s.do(t, http.MethodPost, "/api/internships", posting, student)
	assert.Equal(t, http.StatusForbidden, status)
	status, _ = s.do(t, http.MethodPost, "/api/internships", posting, company)
	assert.Equal(t, http.StatusCreated, status)

	status, _ = s.do(t, http.MethodGet, "/api/internships", nil, "")
	assert.Equal(t, http.StatusOK, status)
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t, false)
	s.do(t, http.MethodGet, "/api/internships", nil, "")

	status, body := s.do(t, http.MethodGet, "/metrics", nil, "")
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, strings.Contains(string(body), "internship_http_requests_total"))
}

func TestUnknownRouteReturnsJSON404(t *testing.T) {
	s := newTestServer(t, false)

	status, body := s.do(t, http.MethodGet, "/api/nope", nil, "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.NotEmpty(t, decode[map[string]any](t, body)["message"])
}

func TestInternshipFieldsStoredVerbatim(t *testing.T) {
	s := newTestServer(t, false)
	status, body := s.do(t, http.MethodPost, "/api/register",
		map[string]string{"name": "Co", "email": "co@x.com", "password": "pw", "role": "company"}, "")
	require.Equal(t, http.StatusCreated, status, string(body))
	uid := int64(decode[map[string]any](t, body)["user_id"].(float64))

	posting := map[string]any{
		"title": "  Intern1  ", "description": "d\n", "company": " Acme", "location": "Remote ", "created_by": uid,
	}
	status, body = s.do(t, http.MethodPost, "/api/internships", posting, "")
	require.Equal(t, http.StatusCreated, status, string(body))
	iid := int64(decode[map[string]any](t, body)["internship_id"].(float64))

	status, body = s.do(t, http.MethodGet, fmt.Sprintf("/api/internships/%d", iid), nil, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, domain.Internship{
		ID: iid, Title: "  Intern1  ", Description: "d\n", Company: " Acme", Location: "Remote ", CreatedBy: uid,
	}, decode[domain.Internship](t, body))

	posting["title"] = "   "
	status, body = s.do(t, http.MethodPost, "/api/internships", posting, "")
	assert.Equal(t, http.StatusBadRequest, status, string(body))

	_, body = s.do(t, http.MethodGet, "/api/internships", nil, "")
	assert.Len(t, decode[[]domain.Internship](t, body), 1)
}

func TestRegisterMultibytePasswordOverLimitReturns400(t *testing.T) {
	s := newTestServer(t, false)

	status, body := s.do(t, http.MethodPost, "/api/register", map[string]string{
		"name": "A", "email": "a@x.com", "password": strings.Repeat("é", 60), "role": "student",
	}, "")
	assert.Equal(t, http.StatusBadRequest, status, string(body))
	assert.Equal(t, "password must be at most 72 bytes", decode[map[string]any](t, body)["message"])
}

func TestRequestTimeoutReachesStore(t *testing.T) {
	s := newTestServerWithTimeout(t, false, 50*time.Millisecond)
	s.store.Block = true

	start := time.Now()
	resp, err := s.app.Test(httptest.NewRequest(http.MethodGet, "/api/internships", nil), 5000)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Less(t, time.Since(start), 5*time.Second)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body := decode[map[string]any](t, raw)
	assert.Equal(t, "STORE_ERROR", body["code"])
	assert.Contains(t, body["error"], context.DeadlineExceeded.Error())
}
