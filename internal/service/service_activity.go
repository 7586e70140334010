// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/MKhiriev/ecostats/internal/logger"
	"github.com/MKhiriev/ecostats/internal/store"
	"github.com/MKhiriev/ecostats/models"
)

type activityService struct {
	activityRepository store.ActivityRepository
	logger             *logger.Logger
}

func NewActivityService(activityRepository store.ActivityRepository, logger *logger.Logger) ActivityService {
	return &activityService{
		activityRepository: activityRepository,
		logger:             logger,
	}
}

// CreateActivity records an activity reported directly by caller.
func (s *activityService) CreateActivity(ctx context.Context, caller models.Identity, req models.ActivityRequest) (models.Activity, error) {
	activity := models.Activity{
		User:        caller.ID,
		Type:        req.Type,
		ProjectName: req.ProjectName,
		Description: req.Description,
	}
	if req.ProjectID != nil {
		projectID, err := primitive.ObjectIDFromHex(*req.ProjectID)
		if err != nil {
			return models.Activity{}, ErrProjectNotFound
		}
		activity.ProjectID = &projectID
	}

	created, err := s.activityRepository.CreateActivity(ctx, activity)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*activityService.CreateActivity").Msg("creating activity failed")
		return models.Activity{}, err
	}
	return created, nil
}

func (s *activityService) LogActivity(ctx context.Context, activity models.Activity) {
	log := logger.FromContext(ctx)

	created, err := s.activityRepository.CreateActivity(ctx, activity)
	if err != nil {
		log.Err(err).
			Str("func", "*activityService.LogActivity").
			Str("type", string(activity.Type)).
			Str("user_id", activity.User.Hex()).
			Msg("activity was not recorded")
		return
	}
	log.Debug().Str("activity_id", created.ID.Hex()).Str("type", string(created.Type)).Msg("activity recorded")
}

// ListActivities returns one page of every user's activities, newest first.
func (s *activityService) ListActivities(ctx context.Context, page models.PageRequest) (models.Page[models.Activity], error) {
	activities, total, err := s.activityRepository.ListActivities(ctx, page)
	if err != nil {
		return models.Page[models.Activity]{}, err
	}
	return models.Page[models.Activity]{Items: activities, Pagination: models.NewPagination(page, total)}, nil
}

func (s *activityService) ListUserActivities(ctx context.Context, userID primitive.ObjectID, page models.PageRequest) (models.Page[models.Activity], error) {
	activities, total, err := s.activityRepository.ListActivitiesByUser(ctx, userID, page)
	if err != nil {
		return models.Page[models.Activity]{}, err
	}
	return models.Page[models.Activity]{Items: activities, Pagination: models.NewPagination(page, total)}, nil
}
