// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/ecostats/models"
)

const welcomeMessage = "Bienvenido a EcoStats API"

func (h *Handler) welcome(w http.ResponseWriter, r *http.Request) {
	writeData(w, r, http.StatusOK, models.WelcomeResponse{Message: welcomeMessage})
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	writeData(w, r, http.StatusOK, h.services.AppInfoService.GetVersionInfo(r.Context()))
}
