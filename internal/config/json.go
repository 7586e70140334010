// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Auth struct {
		TokenSecret             string   `json:"token_secret"`
		TokenIssuer             string   `json:"token_issuer"`
		TokenDuration           Duration `json:"token_duration"`
		RememberMeTokenDuration Duration `json:"remember_me_token_duration"`
		BcryptCost              int      `json:"bcrypt_cost"`
		EnforceRoles            bool     `json:"enforce_roles"`
		EnforceOwnership        bool     `json:"enforce_ownership"`
		AllowSelfAssignedRole   bool     `json:"allow_self_assigned_role"`
	} `json:"auth,omitempty"`

	Storage struct {
		MongoURI       string   `json:"mongo_uri"`
		Database       string   `json:"database"`
		ConnectTimeout Duration `json:"connect_timeout"`
	} `json:"storage,omitempty"`

	Server struct {
		Host            string   `json:"host"`
		Port            int      `json:"port"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
		FrontendURL     string   `json:"frontend_url"`
	} `json:"server,omitempty"`

	Log struct {
		Level string `json:"level"`
	} `json:"log,omitempty"`

	Client struct {
		ServerAddress  string   `json:"server_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"client,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{Version: jsonCfg.App.Version},
		Auth: Auth{
			TokenSecret:             jsonCfg.Auth.TokenSecret,
			TokenIssuer:             jsonCfg.Auth.TokenIssuer,
			TokenDuration:           time.Duration(jsonCfg.Auth.TokenDuration),
			RememberMeTokenDuration: time.Duration(jsonCfg.Auth.RememberMeTokenDuration),
			BcryptCost:              jsonCfg.Auth.BcryptCost,
			EnforceRoles:            jsonCfg.Auth.EnforceRoles,
			EnforceOwnership:        jsonCfg.Auth.EnforceOwnership,
			AllowSelfAssignedRole:   jsonCfg.Auth.AllowSelfAssignedRole,
		},
		Storage: Storage{
			MongoURI:       jsonCfg.Storage.MongoURI,
			Database:       jsonCfg.Storage.Database,
			ConnectTimeout: time.Duration(jsonCfg.Storage.ConnectTimeout),
		},
		Server: Server{
			Host:            jsonCfg.Server.Host,
			Port:            jsonCfg.Server.Port,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
			FrontendURL:     jsonCfg.Server.FrontendURL,
		},
		Log: Log{Level: jsonCfg.Log.Level},
		Client: Client{
			ServerAddress:  jsonCfg.Client.ServerAddress,
			RequestTimeout: time.Duration(jsonCfg.Client.RequestTimeout),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
