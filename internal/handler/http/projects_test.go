// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/MKhiriev/ecostats/internal/service"
	"github.com/MKhiriev/ecostats/models"
)

// projectData decodes the "project" object of a single-project response.
func projectData(t *testing.T, env testEnvelope) map[string]any {
	t.Helper()

	var resp struct {
		Project map[string]any `json:"project"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	return resp.Project
}

func TestCreateProject(t *testing.T) {
	projectID := primitive.NewObjectID()
	var gotReq models.ProjectRequest
	projects := &mockProjectService{
		createFn: func(_ context.Context, caller models.Identity, req models.ProjectRequest) (models.Project, error) {
			gotReq = req
			return models.Project{ID: projectID, Name: req.Name, Description: req.Description, Status: req.Status, Owner: caller.ID}, nil
		},
	}
	router := newTestHandler(t, service.Services{ProjectService: projects}, false).Init()

	rec := doRequest(t, router, http.MethodPost, "/api/projects", `{"name":"River","description":"Water quality survey"}`, userToken)

	require.Equal(t, http.StatusCreated, rec.Code, "body: %s", rec.Body.String())
	assert.Equal(t, models.ProjectActive, gotReq.Status)

	project := projectData(t, decodeEnvelope(t, rec))
	assert.Equal(t, projectID.Hex(), project["id"])
	assert.Equal(t, "owner", project["role"])
	assert.Equal(t, "active", project["status"])
}

func TestCreateProject_InvalidStatus(t *testing.T) {
	router := newTestHandler(t, service.Services{ProjectService: &mockProjectService{}}, false).Init()

	rec := doRequest(t, router, http.MethodPost, "/api/projects", `{"name":"River","description":"Water quality survey","status":"paused"}`, userToken)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ENUM", decodeEnvelope(t, rec).Code)
}

func TestListProjects(t *testing.T) {
	projects := &mockProjectService{
		listFn: func(_ context.Context, page models.PageRequest) (models.Page[models.Project], error) {
			return models.Page[models.Project]{
				Items: []models.Project{
					{ID: primitive.NewObjectID(), Name: "River", Status: models.ProjectActive},
					{ID: primitive.NewObjectID(), Name: "Forest", Status: models.ProjectArchived},
				},
				Pagination: models.NewPagination(page, 2),
			}, nil
		},
	}
	router := newTestHandler(t, service.Services{ProjectService: projects}, false).Init()

	rec := doRequest(t, router, http.MethodGet, "/api/projects", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeData[models.ProjectsResponse](t, decodeEnvelope(t, rec))
	require.Len(t, resp.Projects, 2)
	for _, project := range resp.Projects {
		assert.Equal(t, models.ProjectRoleOwner, project.Role)
	}
	assert.Equal(t, models.Pagination{Page: 1, PageSize: 10, TotalPages: 1, TotalItems: 2}, resp.Pagination)
}

func TestGetProject(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "found", wantStatus: http.StatusOK},
		{name: "not found", err: service.ErrProjectNotFound, wantStatus: http.StatusNotFound, wantCode: CodeProjectNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			projects := &mockProjectService{
				getFn: func(context.Context, string) (models.Project, error) {
					return models.Project{Name: "River"}, tt.err
				},
			}
			router := newTestHandler(t, service.Services{ProjectService: projects}, false).Init()

			rec := doRequest(t, router, http.MethodGet, "/api/projects/"+primitive.NewObjectID().Hex(), "", "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			env := decodeEnvelope(t, rec)
			assert.Equal(t, tt.wantCode, env.Code)
			if tt.wantCode == "" {
				assert.Equal(t, "River", projectData(t, env)["name"])
			}
		})
	}
}

func TestUpdateProject(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "success", body: `{"status":"completed"}`, wantStatus: http.StatusOK},
		{name: "not owner", body: `{"status":"completed"}`, err: service.ErrNotOwner, wantStatus: http.StatusForbidden, wantCode: CodeNotOwner},
		{name: "empty name", body: `{"name":""}`, wantStatus: http.StatusBadRequest, wantCode: "INVALID_FIELD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			projects := &mockProjectService{
				updateFn: func(_ context.Context, _ models.Identity, _ string, req models.ProjectUpdateRequest) (models.Project, error) {
					if tt.err != nil {
						return models.Project{}, tt.err
					}
					return models.Project{Name: "River", Status: *req.Status}, nil
				},
			}
			router := newTestHandler(t, service.Services{ProjectService: projects}, false).Init()

			rec := doRequest(t, router, http.MethodPut, "/api/projects/"+primitive.NewObjectID().Hex(), tt.body, userToken)

			assert.Equal(t, tt.wantStatus, rec.Code, "body: %s", rec.Body.String())
			env := decodeEnvelope(t, rec)
			assert.Equal(t, tt.wantCode, env.Code)
			if tt.wantCode == "" {
				assert.Equal(t, "completed", projectData(t, env)["status"])
			}
		})
	}
}

func TestDeleteProject(t *testing.T) {
	projects := &mockProjectService{
		deleteFn: func(_ context.Context, caller models.Identity, id string) error {
			if id == "missing" {
				return service.ErrProjectNotFound
			}
			return nil
		},
	}
	router := newTestHandler(t, service.Services{ProjectService: projects}, false).Init()

	rec := doRequest(t, router, http.MethodDelete, "/api/projects/"+primitive.NewObjectID().Hex(), "", userToken)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Project deleted successfully", decodeEnvelope(t, rec).Message)

	rec = doRequest(t, router, http.MethodDelete, "/api/projects/missing", "", userToken)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, CodeProjectNotFound, decodeEnvelope(t, rec).Code)
}
