// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/ecostats/internal/logger"
	"github.com/MKhiriev/ecostats/internal/utils"
	"github.com/MKhiriev/ecostats/models"
)

func writeEnvelope(w http.ResponseWriter, r *http.Request, envelope models.Envelope, status int) {
	envelope.Timestamp = models.Now()
	if _, err := utils.WriteJSON(w, envelope, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "writeEnvelope").Msg("error writing response")
	}
}

// writeData writes a success envelope carrying data.
func writeData(w http.ResponseWriter, r *http.Request, status int, data any) {
	writeEnvelope(w, r, models.Envelope{Success: true, Data: data}, status)
}

// writeMessage writes a success envelope with an acknowledgement message and
// optional data.
func writeMessage(w http.ResponseWriter, r *http.Request, status int, message string, data any) {
	writeEnvelope(w, r, models.Envelope{Success: true, Message: message, Data: data}, status)
}

// writeError writes a failure envelope.
func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string, details ...string) {
	writeEnvelope(w, r, models.Envelope{
		Error:   message,
		Code:    code,
		Details: details,
	}, status)
}

// writeServiceError writes the envelope registered for err in
// errorStatusMap. Unmapped errors are reported as 500 with the error text in
// details.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	apiErr := apiErrorFrom(err)
	if apiErr.status == http.StatusInternalServerError {
		writeError(w, r, apiErr.status, apiErr.code, apiErr.message, err.Error())
		return
	}
	writeError(w, r, apiErr.status, apiErr.code, apiErr.message)
}
