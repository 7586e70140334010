// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/ecostats/internal/logger"
	"github.com/MKhiriev/ecostats/models"
)

func (h *Handler) createDataRecord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}
	req, ok := bodyFromContext[models.DataRecordRequest](w, r)
	if !ok {
		return
	}

	record, err := h.services.DataService.CreateDataRecord(r.Context(), identity, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createDataRecord").Msg("error creating data record")
		writeServiceError(w, r, err)
		return
	}

	writeData(w, r, http.StatusCreated, record)
}

func (h *Handler) listDataRecords(w http.ResponseWriter, r *http.Request) {
	page, err := h.services.DataService.ListDataRecords(r.Context(), pageFromQuery(r))
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.listDataRecords").Msg("error listing data records")
		writeServiceError(w, r, err)
		return
	}

	writeData(w, r, http.StatusOK, models.DataRecordsResponse{Records: page.Items, Pagination: page.Pagination})
}

func (h *Handler) getDataRecord(w http.ResponseWriter, r *http.Request) {
	record, err := h.services.DataService.GetDataRecord(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getDataRecord").Msg("error getting data record")
		writeServiceError(w, r, err)
		return
	}

	writeData(w, r, http.StatusOK, record)
}

func (h *Handler) updateDataRecord(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}
	req, ok := bodyFromContext[models.DataRecordUpdateRequest](w, r)
	if !ok {
		return
	}

	record, err := h.services.DataService.UpdateDataRecord(r.Context(), identity, chi.URLParam(r, "id"), req)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.updateDataRecord").Msg("error updating data record")
		writeServiceError(w, r, err)
		return
	}

	writeData(w, r, http.StatusOK, record)
}

func (h *Handler) deleteDataRecord(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.DataService.DeleteDataRecord(r.Context(), identity, chi.URLParam(r, "id")); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.deleteDataRecord").Msg("error deleting data record")
		writeServiceError(w, r, err)
		return
	}

	writeMessage(w, r, http.StatusOK, "Data record deleted successfully", nil)
}
