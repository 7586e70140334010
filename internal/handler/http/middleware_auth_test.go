// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/ecostats/internal/logger"
	"github.com/MKhiriev/ecostats/internal/service"
	"github.com/MKhiriev/ecostats/internal/utils"
	"github.com/MKhiriev/ecostats/models"
)

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/test", nil))
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rec, req)
	return rec
}

func TestAuth_TableTest(t *testing.T) {
	tests := []struct {
		name         string
		header       string
		wantStatus   int
		wantCode     string
		wantIdentity *models.Identity
	}{
		{
			name:       "missing header",
			header:     "",
			wantStatus: http.StatusForbidden,
			wantCode:   CodeNoToken,
		},
		{
			name:       "bearer without token",
			header:     "Bearer ",
			wantStatus: http.StatusForbidden,
			wantCode:   CodeNoToken,
		},
		{
			name:       "invalid token",
			header:     "Bearer garbage",
			wantStatus: http.StatusUnauthorized,
			wantCode:   CodeInvalidToken,
		},
		{
			name:         "valid bearer token",
			header:       "Bearer " + userToken,
			wantStatus:   http.StatusOK,
			wantIdentity: &models.Identity{ID: testUserID, Role: models.RoleUser},
		},
		{
			name:         "token without bearer prefix",
			header:       adminToken,
			wantStatus:   http.StatusOK,
			wantIdentity: &models.Identity{ID: testAdminID, Role: models.RoleAdmin},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{
				logger:   logger.Nop(),
				services: &service.Services{AuthService: &mockAuthService{}},
			}

			var gotIdentity *models.Identity
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				identity, ok := utils.GetIdentityFromContext(r.Context())
				require.True(t, ok)
				gotIdentity = &identity
				w.WriteHeader(http.StatusOK)
			})

			rec := executeAuth(h, tt.header, next)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				env := decodeEnvelope(t, rec)
				assert.False(t, env.Success)
				assert.Equal(t, tt.wantCode, env.Code)
				assert.Nil(t, gotIdentity, "next handler must not run")
				return
			}
			assert.Equal(t, tt.wantIdentity, gotIdentity)
		})
	}
}

func TestAuth_PassesRawTokenToService(t *testing.T) {
	var gotToken string
	h := &Handler{
		logger: logger.Nop(),
		services: &service.Services{AuthService: &mockAuthService{
			parseTokenFn: func(_ context.Context, tokenString string) (models.Identity, error) {
				gotToken = tokenString
				return models.Identity{ID: testUserID, Role: models.RoleEditor}, nil
			},
		}},
	}

	rec := executeAuth(h, "bearer  abc.def.ghi ", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "abc.def.ghi", gotToken)
}

func TestIdentityFromRequest_Missing(t *testing.T) {
	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/", nil))
	rec := httptest.NewRecorder()

	_, ok := identityFromRequest(rec, req)

	assert.False(t, ok)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, CodeInvalidToken, decodeEnvelope(t, rec).Code)
}
