// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	DefaultHost                    = "0.0.0.0"
	DefaultPort                    = 5000
	DefaultMongoDatabase           = "ecostats"
	DefaultMongoConnectTimeout     = 10 * time.Second
	DefaultTokenIssuer             = "ecostats"
	DefaultTokenDuration           = time.Hour
	DefaultRememberMeTokenDuration = 7 * 24 * time.Hour
	DefaultBcryptCost              = 10
	DefaultRequestTimeout          = 30 * time.Second
	DefaultShutdownTimeout         = 10 * time.Second
	DefaultFrontendURL             = "*"
	DefaultLogLevel                = "debug"
	DefaultVersion                 = "1.0.0"
	DefaultClientServerAddress     = "http://localhost:5000"
	DefaultClientRequestTimeout    = 10 * time.Second
)

// defaultConfig returns the lowest-priority source. Secrets and the Mongo
// URI have no default.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{Version: DefaultVersion},
		Auth: Auth{
			TokenIssuer:             DefaultTokenIssuer,
			TokenDuration:           DefaultTokenDuration,
			RememberMeTokenDuration: DefaultRememberMeTokenDuration,
			BcryptCost:              DefaultBcryptCost,
		},
		Storage: Storage{
			Database:       DefaultMongoDatabase,
			ConnectTimeout: DefaultMongoConnectTimeout,
		},
		Server: Server{
			Host:            DefaultHost,
			Port:            DefaultPort,
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
			FrontendURL:     DefaultFrontendURL,
		},
		Log: Log{Level: DefaultLogLevel},
		Client: Client{
			ServerAddress:  DefaultClientServerAddress,
			RequestTimeout: DefaultClientRequestTimeout,
		},
	}
}
