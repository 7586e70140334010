// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_VERSION": "2.1.0",

		"TOKEN_SECRET":                  "jwt_secret",
		"TOKEN_ISSUER":                  "test_issuer",
		"TOKEN_DURATION":                "1h",
		"REMEMBER_ME_TOKEN_DURATION":    "168h",
		"BCRYPT_COST":                   "12",
		"AUTH_ENFORCE_ROLES":            "true",
		"AUTH_ENFORCE_OWNERSHIP":        "true",
		"AUTH_ALLOW_SELF_ASSIGNED_ROLE": "true",

		"MONGO_URI":             "mongodb://localhost:27017",
		"MONGO_DB":              "eco",
		"MONGO_CONNECT_TIMEOUT": "5s",

		"HOST":             "127.0.0.1",
		"PORT":             "8080",
		"REQUEST_TIMEOUT":  "30s",
		"SHUTDOWN_TIMEOUT": "15s",
		"FRONTEND_URL":     "http://localhost:3000",

		"LOG_LEVEL": "info",

		"ECOSTATS_SERVER_ADDRESS":  "http://localhost:8080",
		"ECOSTATS_REQUEST_TIMEOUT": "2s",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "2.1.0", cfg.App.Version)

	assert.Equal(t, "jwt_secret", cfg.Auth.TokenSecret)
	assert.Equal(t, "test_issuer", cfg.Auth.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, 168*time.Hour, cfg.Auth.RememberMeTokenDuration)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.True(t, cfg.Auth.EnforceRoles)
	assert.True(t, cfg.Auth.EnforceOwnership)
	assert.True(t, cfg.Auth.AllowSelfAssignedRole)

	assert.Equal(t, "mongodb://localhost:27017", cfg.Storage.MongoURI)
	assert.Equal(t, "eco", cfg.Storage.Database)
	assert.Equal(t, 5*time.Second, cfg.Storage.ConnectTimeout)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 15*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "http://localhost:3000", cfg.Server.FrontendURL)

	assert.Equal(t, "info", cfg.Log.Level)

	assert.Equal(t, "http://localhost:8080", cfg.Client.ServerAddress)
	assert.Equal(t, 2*time.Second, cfg.Client.RequestTimeout)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	clearEnvVars(t)

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{"TOKEN_DURATION": "forever"})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	assert.Error(t, err)
}

func TestParseEnv_InvalidBool(t *testing.T) {
	setEnvVars(t, map[string]string{"AUTH_ENFORCE_ROLES": "maybe"})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	assert.Error(t, err)
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected time.Duration
	}{
		{"seconds", "45s", 45 * time.Second},
		{"minutes", "2m", 2 * time.Minute},
		{"composite", "1m30s", 90 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			setEnvVars(t, map[string]string{"REQUEST_TIMEOUT": tt.value})

			// Act
			cfg := &StructuredConfig{}
			err := parseEnv(cfg)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Server.RequestTimeout)
		})
	}
}

// Helpers

var knownEnvVars = []string{
	"CONFIG",
	"APP_VERSION",

	"TOKEN_SECRET",
	"TOKEN_ISSUER",
	"TOKEN_DURATION",
	"REMEMBER_ME_TOKEN_DURATION",
	"BCRYPT_COST",
	"AUTH_ENFORCE_ROLES",
	"AUTH_ENFORCE_OWNERSHIP",
	"AUTH_ALLOW_SELF_ASSIGNED_ROLE",

	"MONGO_URI",
	"MONGO_DB",
	"MONGO_CONNECT_TIMEOUT",

	"HOST",
	"PORT",
	"REQUEST_TIMEOUT",
	"SHUTDOWN_TIMEOUT",
	"FRONTEND_URL",

	"LOG_LEVEL",

	"ECOSTATS_SERVER_ADDRESS",
	"ECOSTATS_REQUEST_TIMEOUT",
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

// clearEnvVars unsets every known variable for the duration of the test.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range knownEnvVars {
		if old, ok := os.LookupEnv(k); ok {
			require.NoError(t, os.Unsetenv(k))
			t.Cleanup(func() { _ = os.Setenv(k, old) })
		}
	}
}
