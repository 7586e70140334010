// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// ecostats application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App

	// Auth holds token, password hashing and authorization policy settings.
	Auth Auth

	// Storage holds the MongoDB connection settings.
	Storage Storage

	// Server holds network address, CORS and timeout settings for the
	// HTTP server.
	Server Server

	// Log holds logging settings.
	Log Log

	// Client holds settings used by the command-line API client.
	Client Client `envPrefix:"ECOSTATS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level values.
type App struct {
	// Version is the version string reported by GET /api/version when no
	// linker-injected build version is present.
	// Env: APP_VERSION
	Version string `env:"APP_VERSION"`
}

// Auth holds authentication and authorization settings.
type Auth struct {
	// TokenSecret is the shared HMAC secret used to sign and verify access
	// tokens. Required: startup fails without it.
	// Env: TOKEN_SECRET
	TokenSecret string `env:"TOKEN_SECRET"`

	// TokenIssuer is the "iss" claim embedded in and required from every token.
	// Env: TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of a regular access token (e.g. "1h").
	// Env: TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// RememberMeTokenDuration is the lifetime of a token issued to a login
	// with rememberMe set (e.g. "168h").
	// Env: REMEMBER_ME_TOKEN_DURATION
	RememberMeTokenDuration time.Duration `env:"REMEMBER_ME_TOKEN_DURATION"`

	// BcryptCost is the bcrypt work factor used for password hashes.
	// Env: BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`

	// EnforceRoles restricts user listing and deletion to admins and user
	// updates to the user itself or an admin.
	// Env: AUTH_ENFORCE_ROLES
	EnforceRoles bool `env:"AUTH_ENFORCE_ROLES"`

	// EnforceOwnership restricts update and delete of data records and
	// projects to their owner or an admin.
	// Env: AUTH_ENFORCE_OWNERSHIP
	EnforceOwnership bool `env:"AUTH_ENFORCE_OWNERSHIP"`

	// AllowSelfAssignedRole lets the register body choose the new user's
	// role. When false every registration gets the "user" role.
	// Env: AUTH_ALLOW_SELF_ASSIGNED_ROLE
	AllowSelfAssignedRole bool `env:"AUTH_ALLOW_SELF_ASSIGNED_ROLE"`
}

// Storage holds the document store settings.
type Storage struct {
	// MongoURI is the MongoDB connection string
	// (e.g. "mongodb://localhost:27017").
	// Env: MONGO_URI
	MongoURI string `env:"MONGO_URI"`

	// Database is the MongoDB database name.
	// Env: MONGO_DB
	Database string `env:"MONGO_DB"`

	// ConnectTimeout bounds the initial connect and ping.
	// Env: MONGO_CONNECT_TIMEOUT
	ConnectTimeout time.Duration `env:"MONGO_CONNECT_TIMEOUT"`
}

// Server holds network and timeout settings for the inbound HTTP layer.
type Server struct {
	// Host is the interface the HTTP server binds to.
	// Env: HOST
	Host string `env:"HOST"`

	// Port is the TCP port the HTTP server listens on.
	// Env: PORT
	Port int `env:"PORT"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before its context is cancelled (e.g. "30s").
	// Env: REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// FrontendURL is the origin allowed by CORS. "*" allows any origin without credentials.
	// Env: FRONTEND_URL
	FrontendURL string `env:"FRONTEND_URL"`
}

// HTTPAddress returns the listen address in "host:port" form.
func (s Server) HTTPAddress() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// Log holds logging settings.
type Log struct {
	// Level is the minimum zerolog level ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LOG_LEVEL"`
}

// Client holds settings of the command-line API client.
type Client struct {
	// ServerAddress is the base URL of the API (e.g. "http://localhost:5000").
	// Env: ECOSTATS_SERVER_ADDRESS
	ServerAddress string `env:"SERVER_ADDRESS"`

	// RequestTimeout is the timeout of a single API call.
	// Env: ECOSTATS_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources. For every field the first source providing
// a non-zero value wins:
//  1. Environment variables
//  2. Command-line flags (os.Args)
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, err
	}

	if err = cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
