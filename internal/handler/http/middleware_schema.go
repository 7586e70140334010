// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/ecostats/internal/logger"
	"github.com/MKhiriev/ecostats/internal/utils"
	"github.com/MKhiriev/ecostats/internal/validators"
)

type bodyCtxKey struct{}

// withSchema decodes the JSON body into a T, applies its defaults and runs
// the validator before the controller is reached. The normalized body is
// stored in the request context and read back with bodyFromContext.
//
// An empty body is validated as an empty object, so it fails on the
// required fields rather than as malformed JSON.
//
// Rejections:
//   - 400 INVALID_JSON when the body is not a single JSON value of T.
//   - 400 with the validator's code, message and details when a rule fails.
func withSchema[T any](h *Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			var body T
			if err := utils.ReadJSON(r.Body, &body); err != nil && !errors.Is(err, utils.ErrEmptyBody) {
				log.Err(err).Str("func", "withSchema").Msg("invalid JSON was passed")
				writeError(w, r, http.StatusBadRequest, CodeInvalidJSON, "Invalid JSON body", err.Error())
				return
			}

			if defaulter, ok := any(&body).(validators.Defaulter); ok {
				defaulter.ApplyDefaults()
			}

			if err := h.validator.Validate(r.Context(), &body); err != nil {
				var validationErr *validators.ValidationError
				if errors.As(err, &validationErr) {
					log.Debug().Strs("details", validationErr.Details).Str("code", validationErr.Code).Msg("validation failed")
					writeError(w, r, http.StatusBadRequest, validationErr.Code, validationErr.Message, validationErr.Details...)
					return
				}
				log.Err(err).Str("func", "withSchema").Msg("validator failed")
				writeServiceError(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), bodyCtxKey{}, body)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bodyFromContext returns the body stored by withSchema[T]. When it is
// missing a 500 envelope is written and ok is false.
func bodyFromContext[T any](w http.ResponseWriter, r *http.Request) (body T, ok bool) {
	body, ok = r.Context().Value(bodyCtxKey{}).(T)
	if !ok {
		logger.FromRequest(r).Err(ErrNoBody).Send()
		writeServiceError(w, r, ErrNoBody)
	}
	return body, ok
}
