// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/ecostats/internal/logger"
)

// recoverer turns a panic in any later handler into a 500 SERVER_ERROR
// envelope. http.ErrAbortHandler is re-raised so net/http can abort the
// connection.
func (h *Handler) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.FromRequest(r).Error().
				Str("func", "*Handler.recoverer").
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic")
			writeError(w, r, http.StatusInternalServerError, CodeServerError, "Internal server error", fmt.Sprint(rec))
		}()

		next.ServeHTTP(w, r)
	})
}

func (h *Handler) routeNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, CodeRouteNotFound, "Route not found", r.Method+" "+r.URL.Path)
}
