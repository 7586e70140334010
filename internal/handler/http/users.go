// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/ecostats/internal/logger"
	"github.com/MKhiriev/ecostats/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	page, err := h.services.UserService.ListUsers(r.Context(), pageFromQuery(r))
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.listUsers").Msg("error listing users")
		writeServiceError(w, r, err)
		return
	}

	writeData(w, r, http.StatusOK, models.UsersResponse{Users: page.Items, Pagination: page.Pagination})
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.UserService.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getUser").Msg("error getting user")
		writeServiceError(w, r, err)
		return
	}

	writeData(w, r, http.StatusOK, user)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	req, ok := bodyFromContext[models.UserUpdateRequest](w, r)
	if !ok {
		return
	}

	user, err := h.services.UserService.UpdateUser(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.updateUser").Msg("error updating user")
		writeServiceError(w, r, err)
		return
	}

	writeMessage(w, r, http.StatusOK, "User updated successfully", models.UserUpdatedResponse{
		ID:        user.ID.Hex(),
		Name:      user.Name,
		Email:     user.Email,
		UpdatedAt: user.UpdatedAt,
	})
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.services.UserService.DeleteUser(r.Context(), chi.URLParam(r, "id")); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.deleteUser").Msg("error deleting user")
		writeServiceError(w, r, err)
		return
	}

	writeMessage(w, r, http.StatusOK, "User deleted successfully", nil)
}

// pageFromQuery reads the page and pageSize query parameters.
func pageFromQuery(r *http.Request) models.PageRequest {
	query := r.URL.Query()
	return models.ParsePageRequest(query.Get("page"), query.Get("pageSize"))
}
