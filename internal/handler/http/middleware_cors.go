// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/cors"
)

const anyOrigin = "*"

// corsOptions allows frontendURL to call the API. Credentialed requests are
// only allowed for a concrete origin, never for the "*" wildcard.
func corsOptions(frontendURL string) cors.Options {
	return cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: frontendURL != anyOrigin,
	}
}
