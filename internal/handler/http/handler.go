// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/ecostats/internal/config"
	"github.com/MKhiriev/ecostats/internal/logger"
	"github.com/MKhiriev/ecostats/internal/service"
	"github.com/MKhiriev/ecostats/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator

	// enforceRoles turns on the admin and self-or-admin route guards.
	enforceRoles bool

	// frontendURL is the origin allowed by CORS.
	frontendURL string

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, validator validators.Validator, serverCfg config.Server, authCfg config.Auth, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		validator:      validator,
		enforceRoles:   authCfg.EnforceRoles,
		frontendURL:    serverCfg.FrontendURL,
		requestTimeout: serverCfg.RequestTimeout,
		logger:         logger,
	}
}
