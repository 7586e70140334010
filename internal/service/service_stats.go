// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/ecostats/internal/logger"
	"github.com/MKhiriev/ecostats/internal/store"
	"github.com/MKhiriev/ecostats/models"
)

type statsService struct {
	statsRepository store.StatsRepository
	logger          *logger.Logger
}

func NewStatsService(statsRepository store.StatsRepository, logger *logger.Logger) StatsService {
	return &statsService{
		statsRepository: statsRepository,
		logger:          logger,
	}
}

func (s *statsService) GeneralStats(ctx context.Context) (models.GeneralStats, error) {
	return s.statsRepository.CountAll(ctx)
}

// UserStats counts users per role.
func (s *statsService) UserStats(ctx context.Context) (models.GroupedStats, error) {
	return s.statsRepository.CountUsersByRole(ctx)
}

// ProjectStats counts projects per status.
func (s *statsService) ProjectStats(ctx context.Context) (models.GroupedStats, error) {
	return s.statsRepository.CountProjectsByStatus(ctx)
}

// ActivityStats counts activities per type.
func (s *statsService) ActivityStats(ctx context.Context) (models.GroupedStats, error) {
	return s.statsRepository.CountActivitiesByType(ctx)
}
