// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/ecostats/internal/logger"
	"github.com/MKhiriev/ecostats/models"
)

func (h *Handler) generalStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.services.StatsService.GeneralStats(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.generalStats").Msg("error computing stats")
		writeServiceError(w, r, err)
		return
	}

	writeData(w, r, http.StatusOK, stats)
}

func (h *Handler) userStats(w http.ResponseWriter, r *http.Request) {
	h.groupedStats(w, r, "*Handler.userStats", h.services.StatsService.UserStats)
}

func (h *Handler) projectStats(w http.ResponseWriter, r *http.Request) {
	h.groupedStats(w, r, "*Handler.projectStats", h.services.StatsService.ProjectStats)
}

func (h *Handler) activityStats(w http.ResponseWriter, r *http.Request) {
	h.groupedStats(w, r, "*Handler.activityStats", h.services.StatsService.ActivityStats)
}

func (h *Handler) groupedStats(w http.ResponseWriter, r *http.Request, fn string, count func(context.Context) (models.GroupedStats, error)) {
	stats, err := count(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", fn).Msg("error computing grouped stats")
		writeServiceError(w, r, err)
		return
	}

	writeData(w, r, http.StatusOK, stats)
}
