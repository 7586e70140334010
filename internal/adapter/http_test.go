// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/ecostats/internal/config"
	"github.com/MKhiriev/ecostats/internal/logger"
	"github.com/MKhiriev/ecostats/models"
)

// newTestAdapter creates an httpAPIAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpAPIAdapter {
	t.Helper()
	a, err := NewHTTPAPIAdapter(config.ClientConfig{ServerAddress: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpAPIAdapter)
}

func writeEnvelope(t *testing.T, w http.ResponseWriter, status int, env map[string]any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(env))
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "full url", raw: "http://localhost:5000/", want: "http://localhost:5000"},
		{name: "no scheme", raw: "localhost:5000", want: "http://localhost:5000"},
		{name: "https kept", raw: " https://api.example.com ", want: "https://api.example.com"},
		{name: "empty", raw: "  ", wantErr: true},
		{name: "no host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPAPIAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPAPIAdapter(config.ClientConfig{}, logger.Nop())
	assert.Error(t, err)
}

// ── Register / Login ────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/users/register", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body models.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ana@example.com", body.Email)

		writeEnvelope(t, w, http.StatusCreated, map[string]any{
			"success": true,
			"data": map[string]any{
				"user":  map[string]any{"id": "665f1c2e9b1e8a3d4c5b6a70", "name": "Ana", "email": "ana@example.com", "role": "user"},
				"token": "issued-token",
			},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Register(context.Background(), models.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "secret1", ConfirmPassword: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, "Ana", got.User.Name)
	assert.Equal(t, models.RoleUser, got.User.Role)
	assert.Equal(t, "issued-token", a.Token())
}

func TestRegister_EmailExists(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusBadRequest, map[string]any{
			"success": false,
			"error":   "Email already registered",
			"code":    "EMAIL_EXISTS",
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Register(context.Background(), models.RegisterRequest{Email: "ana@example.com"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "EMAIL_EXISTS", apiErr.Code)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Empty(t, a.Token())
}

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users/login", r.URL.Path)

		var body models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.True(t, body.RememberMe)

		writeEnvelope(t, w, http.StatusOK, map[string]any{
			"success": true,
			"data": map[string]any{
				"user":       map[string]any{"id": "665f1c2e9b1e8a3d4c5b6a70", "name": "Ana", "email": "ana@example.com", "role": "admin"},
				"token":      "login-token",
				"activities": []any{},
				"pagination": map[string]any{"page": 1, "pageSize": 10, "totalPages": 0, "totalItems": 0},
			},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), models.LoginRequest{Email: "ana@example.com", Password: "secret1", RememberMe: true})

	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, got.User.Role)
	assert.Equal(t, 10, got.Pagination.PageSize)
	assert.Equal(t, "login-token", a.Token())
}

func TestLogin_InvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusUnauthorized, map[string]any{
			"success": false,
			"error":   "Invalid credentials",
			"code":    "INVALID_CREDENTIALS",
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.LoginRequest{Email: "ana@example.com", Password: "wrong"})

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "INVALID_CREDENTIALS")
}

// ── Stats / Activity ────────────────────────────────────────────────────────

func TestGeneralStats_SendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/stats", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		writeEnvelope(t, w, http.StatusOK, map[string]any{
			"success": true,
			"data":    map[string]any{"totalUsers": 3, "totalProjects": 2, "totalActivities": 7},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("  tok ")
	got, err := a.GeneralStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.GeneralStats{TotalUsers: 3, TotalProjects: 2, TotalActivities: 7}, got)
}

func TestGeneralStats_NoToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		writeEnvelope(t, w, http.StatusForbidden, map[string]any{
			"success": false,
			"error":   "No token provided",
			"code":    "NO_TOKEN",
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GeneralStats(context.Background())

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestGroupedStats(t *testing.T) {
	tests := []struct {
		group    string
		wantPath string
	}{
		{group: "users", wantPath: "/api/stats/users"},
		{group: "projects", wantPath: "/api/stats/projects"},
		{group: "activity", wantPath: "/api/stats/activity"},
	}

	for _, tt := range tests {
		t.Run(tt.group, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.wantPath, r.URL.Path)
				writeEnvelope(t, w, http.StatusOK, map[string]any{
					"success": true,
					"data":    map[string]any{"a": 2, "b": 1},
				})
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			got, err := a.GroupedStats(context.Background(), tt.group)

			require.NoError(t, err)
			assert.Equal(t, models.GroupedStats{"a": 2, "b": 1}, got)
		})
	}
}

func TestGroupedStats_UnknownGroup(t *testing.T) {
	a := newTestAdapter(t, "http://127.0.0.1:1")
	_, err := a.GroupedStats(context.Background(), "weather")
	assert.ErrorIs(t, err, ErrGroupUnknown)
}

func TestListActivities_QueryParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/activity", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "5", r.URL.Query().Get("pageSize"))

		writeEnvelope(t, w, http.StatusOK, map[string]any{
			"success": true,
			"data": map[string]any{
				"activities": []any{
					map[string]any{"id": "665f1c2e9b1e8a3d4c5b6a71", "type": "project_created", "description": "created project", "timestamp": "2026-01-02T03:04:05.000Z"},
				},
				"pagination": map[string]any{"page": 2, "pageSize": 5, "totalPages": 2, "totalItems": 6},
			},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok")
	got, err := a.ListActivities(context.Background(), models.PageRequest{Page: 2, PageSize: 5})

	require.NoError(t, err)
	require.Len(t, got.Activities, 1)
	assert.Equal(t, "created project", got.Activities[0].Description)
	assert.Equal(t, int64(6), got.Pagination.TotalItems)
}

func TestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version", r.URL.Path)
		writeEnvelope(t, w, http.StatusOK, map[string]any{
			"success": true,
			"data":    map[string]any{"version": "1.2.3", "date": "N/A", "commit": "abc"},
		})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.VersionInfo{Version: "1.2.3", Date: "N/A", Commit: "abc"}, got)
}

// ── error mapping ───────────────────────────────────────────────────────────

func TestDecodeResponse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantErr  error
		wantCode string
	}{
		{name: "route not found", status: http.StatusNotFound, body: `{"success":false,"error":"Route not found","code":"ROUTE_NOT_FOUND"}`, wantErr: ErrNotFound, wantCode: "ROUTE_NOT_FOUND"},
		{name: "method not allowed", status: http.StatusMethodNotAllowed, body: `{"success":false,"error":"Method not allowed","code":"METHOD_NOT_ALLOWED"}`, wantErr: ErrMethodNotAllowed, wantCode: "METHOD_NOT_ALLOWED"},
		{name: "server error", status: http.StatusInternalServerError, body: `{"success":false,"error":"Server error","code":"SERVER_ERROR"}`, wantErr: ErrInternalServerError, wantCode: "SERVER_ERROR"},
		{name: "plain text gateway", status: http.StatusBadGateway, body: "upstream down", wantErr: ErrUnexpectedStatus},
		{name: "2xx without envelope", status: http.StatusOK, body: "not json", wantErr: ErrMalformedResponse},
		{name: "2xx with success false", status: http.StatusOK, body: `{"success":false,"error":"odd","code":"SERVER_ERROR"}`, wantErr: ErrUnexpectedStatus, wantCode: "SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).Version(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			if tt.wantCode != "" {
				var apiErr *APIError
				require.True(t, errors.As(err, &apiErr))
				assert.Equal(t, tt.wantCode, apiErr.Code)
			}
		})
	}
}

func TestAPIError_Error(t *testing.T) {
	err := &APIError{
		Status:  http.StatusBadRequest,
		Code:    "MISSING_FIELDS",
		Message: "Missing required fields",
		Details: []string{"email", "password"},
		kind:    ErrBadRequest,
	}

	assert.Equal(t, "bad request (400 MISSING_FIELDS): Missing required fields [email; password]", err.Error())
	assert.ErrorIs(t, err, ErrBadRequest)
}
