// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when the merged configuration is incomplete
// or invalid.
var (
	// ErrMissingTokenSecret indicates that no token signing secret was
	// configured. The server refuses to start without one.
	ErrMissingTokenSecret = errors.New("token secret is not configured")
	// ErrMissingMongoURI indicates that no MongoDB connection string was
	// configured.
	ErrMissingMongoURI = errors.New("mongo URI is not configured")
	// ErrInvalidAuthConfigs indicates invalid token settings.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP server settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidClientConfigs indicates invalid CLI client settings
	// (for example, a server address without scheme).
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
)
