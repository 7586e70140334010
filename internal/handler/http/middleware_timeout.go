// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// withTimeout bounds every request by timeout. When the deadline passes and
// the handler returns without writing, the client gets a 504
// REQUEST_TIMEOUT envelope.
func (h *Handler) withTimeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			rw := &responseWriter{ResponseWriter: w}
			next.ServeHTTP(rw, r.WithContext(ctx))

			if !rw.wroteHeader && errors.Is(ctx.Err(), context.DeadlineExceeded) {
				writeError(rw, r, http.StatusGatewayTimeout, CodeRequestTimeout, requestTimeoutMessage)
			}
		})
	}
}
