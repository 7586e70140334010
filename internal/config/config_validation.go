// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// server invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Auth.TokenSecret == "" {
		return ErrMissingTokenSecret
	}

	if cfg.Storage.MongoURI == "" {
		return ErrMissingMongoURI
	}

	if cfg.Auth.TokenIssuer == "" || cfg.Auth.TokenDuration <= 0 || cfg.Auth.RememberMeTokenDuration <= 0 {
		return fmt.Errorf("%w: token issuer and durations are required", ErrInvalidAuthConfigs)
	}

	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidServerConfigs, cfg.Server.Port)
	}

	if cfg.Server.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidServerConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	u, err := url.Parse(cfg.ServerAddress)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: server address %q", ErrInvalidClientConfigs, cfg.ServerAddress)
	}

	if cfg.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidClientConfigs)
	}

	return nil
}
