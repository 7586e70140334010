// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/ecostats/internal/config"
	"github.com/MKhiriev/ecostats/internal/handler/http"
	"github.com/MKhiriev/ecostats/internal/logger"
	"github.com/MKhiriev/ecostats/internal/service"
	"github.com/MKhiriev/ecostats/internal/validators"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers enabled by cfg. The HTTP handler
// is created when a listen port is configured.
func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.Port > 0 {
		handlers.HTTP = http.NewHandler(services, validators.NewRequestValidator(), cfg.Server, cfg.Auth, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
