// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/ecostats/internal/logger"
	"github.com/MKhiriev/ecostats/models"
)

func (h *Handler) listActivities(w http.ResponseWriter, r *http.Request) {
	page, err := h.services.ActivityService.ListActivities(r.Context(), pageFromQuery(r))
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.listActivities").Msg("error listing activities")
		writeServiceError(w, r, err)
		return
	}

	writeData(w, r, http.StatusOK, models.ActivitiesResponse{Activities: page.Items, Pagination: page.Pagination})
}

func (h *Handler) createActivity(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}
	req, ok := bodyFromContext[models.ActivityRequest](w, r)
	if !ok {
		return
	}

	activity, err := h.services.ActivityService.CreateActivity(r.Context(), identity, req)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.createActivity").Msg("error creating activity")
		writeServiceError(w, r, err)
		return
	}

	writeData(w, r, http.StatusCreated, activity)
}
