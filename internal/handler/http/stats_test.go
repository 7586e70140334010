// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/ecostats/internal/service"
	"github.com/MKhiriev/ecostats/models"
)

func TestStats(t *testing.T) {
	stats := &mockStatsService{
		general: models.GeneralStats{TotalUsers: 3, TotalProjects: 2, TotalActivities: 9},
		grouped: map[string]models.GroupedStats{
			"users":    {"user": 2, "admin": 1},
			"projects": {"active": 1, "archived": 1},
			"activity": {"project_created": 2, "analysis_run": 7},
		},
	}
	router := newTestHandler(t, service.Services{StatsService: stats}, false).Init()

	t.Run("general", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodGet, "/api/stats", "", userToken)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, stats.general, decodeData[models.GeneralStats](t, decodeEnvelope(t, rec)))
	})

	grouped := []struct {
		path string
		key  string
	}{
		{path: "/api/stats/users", key: "users"},
		{path: "/api/stats/projects", key: "projects"},
		{path: "/api/stats/activity", key: "activity"},
	}
	for _, tt := range grouped {
		t.Run(tt.path, func(t *testing.T) {
			rec := doRequest(t, router, http.MethodGet, tt.path, "", userToken)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.key, stats.lastCall)
			assert.Equal(t, stats.grouped[tt.key], decodeData[models.GroupedStats](t, decodeEnvelope(t, rec)))
		})
	}
}

func TestStats_Error(t *testing.T) {
	stats := &mockStatsService{err: errors.New("aggregation failed")}
	router := newTestHandler(t, service.Services{StatsService: stats}, false).Init()

	for _, path := range []string{"/api/stats", "/api/stats/users", "/api/stats/projects", "/api/stats/activity"} {
		t.Run(path, func(t *testing.T) {
			rec := doRequest(t, router, http.MethodGet, path, "", userToken)

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			env := decodeEnvelope(t, rec)
			assert.Equal(t, CodeServerError, env.Code)
			assert.Equal(t, []string{"aggregation failed"}, env.Details)
		})
	}
}
