// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/MKhiriev/ecostats/internal/logger"
	"github.com/MKhiriev/ecostats/models"
)

// activityRepository is the MongoDB-backed implementation of
// [ActivityRepository]. The log is append-only.
type activityRepository struct {
	baseRepository[models.Activity]
	logger *logger.Logger
}

func NewActivityRepository(db *mongo.Database, logger *logger.Logger) ActivityRepository {
	logger.Debug().Msg("creating activity repository")
	return &activityRepository{
		baseRepository: newBaseRepository[models.Activity](db.Collection(activitiesCollection)),
		logger:         logger,
	}
}

// CreateActivity appends activity. A zero Timestamp is replaced with the
// current time.
func (r *activityRepository) CreateActivity(ctx context.Context, activity models.Activity) (models.Activity, error) {
	activity.ID = primitive.NilObjectID
	if activity.Timestamp.IsZero() {
		activity.Timestamp = time.Now().UTC()
	}

	id, err := r.insert(ctx, activity)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*activityRepository.CreateActivity").Msg("error inserting activity")
		return models.Activity{}, err
	}

	activity.ID = id
	return activity, nil
}

// ListActivities returns one page of the whole log, newest first.
func (r *activityRepository) ListActivities(ctx context.Context, page models.PageRequest) ([]models.Activity, int64, error) {
	return r.listFiltered(ctx, "*activityRepository.ListActivities", bson.M{}, page)
}

// ListActivitiesByUser returns one page of the activities of userID, newest first.
func (r *activityRepository) ListActivitiesByUser(ctx context.Context, userID primitive.ObjectID, page models.PageRequest) ([]models.Activity, int64, error) {
	return r.listFiltered(ctx, "*activityRepository.ListActivitiesByUser", bson.M{"user": userID}, page)
}

func (r *activityRepository) listFiltered(ctx context.Context, fn string, filter bson.M, page models.PageRequest) ([]models.Activity, int64, error) {
	activities, total, err := r.list(ctx, filter, "timestamp", page)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("error listing activities")
		return nil, 0, err
	}
	return activities, total, nil
}
