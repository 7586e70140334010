// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/ecostats/internal/logger"
	"github.com/MKhiriev/ecostats/models"
)

// requireRole lets the request through only when the caller has one of
// roles. It is a pass-through unless role enforcement is configured and must
// run after [Handler.auth].
func (h *Handler) requireRole(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !h.enforceRoles {
				next.ServeHTTP(w, r)
				return
			}

			identity, ok := identityFromRequest(w, r)
			if !ok {
				return
			}

			if !slices.Contains(roles, identity.Role) {
				logger.FromRequest(r).Warn().
					Str("user_id", identity.ID.Hex()).
					Str("role", string(identity.Role)).
					Msg("insufficient role")
				writeError(w, r, http.StatusForbidden, CodeInsufficientRole, "Insufficient permissions")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// requireSelfOrAdmin lets the request through only when the {id} URL
// parameter is the caller's own id or the caller is an admin. Like
// requireRole it is a pass-through unless role enforcement is configured.
func (h *Handler) requireSelfOrAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.enforceRoles {
			next.ServeHTTP(w, r)
			return
		}

		identity, ok := identityFromRequest(w, r)
		if !ok {
			return
		}

		if !identity.IsAdmin() && identity.ID.Hex() != chi.URLParam(r, "id") {
			logger.FromRequest(r).Warn().
				Str("user_id", identity.ID.Hex()).
				Str("target_id", chi.URLParam(r, "id")).
				Msg("user tried to modify another account")
			writeError(w, r, http.StatusForbidden, CodeInsufficientRole, "Insufficient permissions")
			return
		}

		next.ServeHTTP(w, r)
	})
}
