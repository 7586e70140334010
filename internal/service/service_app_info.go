// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/ecostats/internal/config"
	"github.com/MKhiriev/ecostats/internal/logger"
	"github.com/MKhiriev/ecostats/models"
)

const notAvailable = "N/A"

// appInfoService reports the configured API version together with the
// linker-injected build metadata.
type appInfoService struct {
	appVersion string
	build      models.AppBuildInfo

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Debug().
		Str("version", cfg.Version).
		Str("build_version", build.BuildVersion()).
		Str("build_commit", build.BuildCommit()).
		Msg("creating app info service")

	return &appInfoService{
		appVersion: cfg.Version,
		build:      build,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

// GetVersionInfo returns the build metadata. When the binary was built
// without a version the configured one is reported instead.
func (s *appInfoService) GetVersionInfo(ctx context.Context) models.VersionInfo {
	info := s.build.VersionInfo()
	if info.Version == "" || info.Version == notAvailable {
		info.Version = s.appVersion
	}
	return info
}
