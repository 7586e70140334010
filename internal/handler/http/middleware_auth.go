// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/ecostats/internal/logger"
	"github.com/MKhiriev/ecostats/internal/utils"
	"github.com/MKhiriev/ecostats/models"
)

// auth is an HTTP middleware that enforces token-based authentication.
//
// It reads the "Authorization" header, strips an optional "Bearer " prefix,
// verifies the token via [service.AuthService.ParseToken] and on success
// stores the [models.Identity] in the request context with
// [utils.WithIdentity] before delegating to the next handler.
//
// Rejections:
//   - 403 NO_TOKEN when the header is absent or carries no token.
//   - 401 INVALID_TOKEN when the token cannot be verified or has expired.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			log.Err(err).Str("func", "*Handler.auth").Msg("no token provided")
			writeError(w, r, http.StatusForbidden, CodeNoToken, "Access denied, no token provided")
			return
		}

		ctx := r.Context()
		identity, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Str("func", "*Handler.auth").Msg("error occurred during parsing token")
			writeError(w, r, http.StatusUnauthorized, CodeInvalidToken, "Invalid or expired token")
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithIdentity(ctx, identity)))
	})
}

// identityFromRequest returns the identity stored by [Handler.auth]. When it
// is missing a 401 envelope is written and ok is false.
func identityFromRequest(w http.ResponseWriter, r *http.Request) (identity models.Identity, ok bool) {
	identity, ok = utils.GetIdentityFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Err(ErrNoIdentity).Send()
		writeError(w, r, http.StatusUnauthorized, CodeInvalidToken, "Invalid or expired token")
	}
	return identity, ok
}
