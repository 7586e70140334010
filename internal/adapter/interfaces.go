// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client-side transport to the EcoStats API.
//
// The primary abstraction is [APIAdapter], which hides the REST routes and
// the response envelope from callers. Failed responses are mapped to
// [*APIError] values that wrap the sentinels in errors.go, so callers can use
// [errors.Is] (e.g. [ErrUnauthorized] for 401) and still read the API code.
package adapter

import (
	"context"

	"github.com/MKhiriev/ecostats/models"
)

// APIAdapter defines client communication with the EcoStats API.
// Implementations own serialisation, bearer token handling and the mapping
// of error envelopes to the sentinel values defined in this package.
type APIAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or an empty string.
	Token() string

	// Version fetches the server build information.
	Version(ctx context.Context) (models.VersionInfo, error)

	// Register creates an account. On success the returned token is stored
	// via SetToken.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)

	// Login authenticates with email and password. On success the returned
	// token is stored via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	// GeneralStats fetches the collection totals. Requires a token.
	GeneralStats(ctx context.Context) (models.GeneralStats, error)

	// GroupedStats fetches counts grouped by one of "users", "projects" or
	// "activity". Requires a token.
	GroupedStats(ctx context.Context, group string) (models.GroupedStats, error)

	// ListActivities fetches one page of the activity log. Requires a token.
	ListActivities(ctx context.Context, page models.PageRequest) (models.ActivitiesResponse, error)
}
