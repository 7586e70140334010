// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/ecostats/internal/logger"
	"github.com/MKhiriev/ecostats/models"
)

func (h *Handler) createProject(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}
	req, ok := bodyFromContext[models.ProjectRequest](w, r)
	if !ok {
		return
	}

	project, err := h.services.ProjectService.CreateProject(r.Context(), identity, req)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.createProject").Msg("error creating project")
		writeServiceError(w, r, err)
		return
	}

	writeData(w, r, http.StatusCreated, models.ProjectResponse{Project: project.View()})
}

func (h *Handler) listProjects(w http.ResponseWriter, r *http.Request) {
	page, err := h.services.ProjectService.ListProjects(r.Context(), pageFromQuery(r))
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.listProjects").Msg("error listing projects")
		writeServiceError(w, r, err)
		return
	}

	projects := make([]models.ProjectView, 0, len(page.Items))
	for _, project := range page.Items {
		projects = append(projects, project.View())
	}

	writeData(w, r, http.StatusOK, models.ProjectsResponse{Projects: projects, Pagination: page.Pagination})
}

func (h *Handler) getProject(w http.ResponseWriter, r *http.Request) {
	project, err := h.services.ProjectService.GetProject(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getProject").Msg("error getting project")
		writeServiceError(w, r, err)
		return
	}

	writeData(w, r, http.StatusOK, models.ProjectResponse{Project: project.View()})
}

func (h *Handler) updateProject(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}
	req, ok := bodyFromContext[models.ProjectUpdateRequest](w, r)
	if !ok {
		return
	}

	project, err := h.services.ProjectService.UpdateProject(r.Context(), identity, chi.URLParam(r, "id"), req)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.updateProject").Msg("error updating project")
		writeServiceError(w, r, err)
		return
	}

	writeData(w, r, http.StatusOK, models.ProjectResponse{Project: project.View()})
}

func (h *Handler) deleteProject(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.ProjectService.DeleteProject(r.Context(), identity, chi.URLParam(r, "id")); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.deleteProject").Msg("error deleting project")
		writeServiceError(w, r, err)
		return
	}

	writeMessage(w, r, http.StatusOK, "Project deleted successfully", nil)
}
