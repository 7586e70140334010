// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientConfig is the configuration of the command-line API client,
// assembled from [StructuredConfig].
type ClientConfig struct {
	// ServerAddress is the base URL of the API.
	ServerAddress string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// GetClientConfig builds and validates the client configuration.
//
// Command-line flags are left to the CLI subcommands, so only environment
// variables, the JSON file and defaults are consulted. Server-side settings
// such as the token secret are not required here.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		ServerAddress:  cfg.Client.ServerAddress,
		RequestTimeout: cfg.Client.RequestTimeout,
	}

	return clientCfg, clientCfg.validate()
}
