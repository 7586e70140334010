// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/MKhiriev/ecostats/internal/logger"
	"github.com/MKhiriev/ecostats/models"
)

// statsRepository computes counters with CountDocuments and $group
// aggregations. Documents are decoded as raw bson since only counts are read.
type statsRepository struct {
	users      baseRepository[bson.Raw]
	projects   baseRepository[bson.Raw]
	activities baseRepository[bson.Raw]
	logger     *logger.Logger
}

func NewStatsRepository(db *mongo.Database, logger *logger.Logger) StatsRepository {
	logger.Debug().Msg("creating stats repository")
	return &statsRepository{
		users:      newBaseRepository[bson.Raw](db.Collection(usersCollection)),
		projects:   newBaseRepository[bson.Raw](db.Collection(projectsCollection)),
		activities: newBaseRepository[bson.Raw](db.Collection(activitiesCollection)),
		logger:     logger,
	}
}

// CountAll returns the total number of users, projects and activities.
func (r *statsRepository) CountAll(ctx context.Context) (models.GeneralStats, error) {
	log := logger.FromContext(ctx)

	var (
		stats models.GeneralStats
		err   error
	)
	if stats.TotalUsers, err = r.users.count(ctx, bson.M{}); err != nil {
		log.Err(err).Str("func", "*statsRepository.CountAll").Msg("error counting users")
		return models.GeneralStats{}, err
	}
	if stats.TotalProjects, err = r.projects.count(ctx, bson.M{}); err != nil {
		log.Err(err).Str("func", "*statsRepository.CountAll").Msg("error counting projects")
		return models.GeneralStats{}, err
	}
	if stats.TotalActivities, err = r.activities.count(ctx, bson.M{}); err != nil {
		log.Err(err).Str("func", "*statsRepository.CountAll").Msg("error counting activities")
		return models.GeneralStats{}, err
	}
	return stats, nil
}

func (r *statsRepository) CountUsersByRole(ctx context.Context) (models.GroupedStats, error) {
	return r.group(ctx, "*statsRepository.CountUsersByRole", r.users, "role")
}

func (r *statsRepository) CountProjectsByStatus(ctx context.Context) (models.GroupedStats, error) {
	return r.group(ctx, "*statsRepository.CountProjectsByStatus", r.projects, "status")
}

func (r *statsRepository) CountActivitiesByType(ctx context.Context) (models.GroupedStats, error) {
	return r.group(ctx, "*statsRepository.CountActivitiesByType", r.activities, "type")
}

func (r *statsRepository) group(ctx context.Context, fn string, repo baseRepository[bson.Raw], field string) (models.GroupedStats, error) {
	counts, err := repo.groupCount(ctx, field)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("error aggregating")
		return nil, err
	}
	return models.GroupedStats(counts), nil
}
