// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/ecostats/internal/config"
	"github.com/MKhiriev/ecostats/internal/logger"
	"github.com/MKhiriev/ecostats/internal/store"
	"github.com/MKhiriev/ecostats/models"
)

type Services struct {
	AuthService     AuthService
	UserService     UserService
	DataService     DataService
	ProjectService  ProjectService
	ActivityService ActivityService
	StatsService    StatsService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	activityService := NewActivityService(storages.ActivityRepository, logger)

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, activityService, cfg.Auth, logger),
		UserService:     NewUserService(storages.UserRepository, cfg.Auth, logger),
		DataService:     NewDataService(storages.DataRepository, storages.UserRepository, activityService, cfg.Auth, logger),
		ProjectService:  NewProjectService(storages.ProjectRepository, activityService, cfg.Auth, logger),
		ActivityService: activityService,
		StatsService:    NewStatsService(storages.StatsRepository, logger),
		AppInfoService:  appInfoService,
	}, nil
}
