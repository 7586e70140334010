// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/MKhiriev/ecostats/internal/config"
	"github.com/MKhiriev/ecostats/internal/logger"
	"github.com/MKhiriev/ecostats/internal/store"
	"github.com/MKhiriev/ecostats/models"
)

type projectService struct {
	projectRepository store.ProjectRepository
	activityService   ActivityService
	enforceOwnership  bool
	logger            *logger.Logger
}

func NewProjectService(projectRepository store.ProjectRepository, activityService ActivityService, cfg config.Auth, logger *logger.Logger) ProjectService {
	return &projectService{
		projectRepository: projectRepository,
		activityService:   activityService,
		enforceOwnership:  cfg.EnforceOwnership,
		logger:            logger,
	}
}

// CreateProject stores a project owned by caller and logs a
// project_created activity.
func (s *projectService) CreateProject(ctx context.Context, caller models.Identity, req models.ProjectRequest) (models.Project, error) {
	status := req.Status
	if status == "" {
		status = models.ProjectActive
	}

	project, err := s.projectRepository.CreateProject(ctx, models.Project{
		Name:        req.Name,
		Description: req.Description,
		Status:      status,
		Owner:       caller.ID,
		Members:     []primitive.ObjectID{},
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*projectService.CreateProject").Msg("creating project failed")
		return models.Project{}, err
	}

	s.logProjectActivity(ctx, caller, models.ActivityProjectCreated, project, "Project created: ")
	return project, nil
}

func (s *projectService) GetProject(ctx context.Context, id string) (models.Project, error) {
	projectID, err := parseObjectID(id, ErrProjectNotFound)
	if err != nil {
		return models.Project{}, err
	}

	project, err := s.projectRepository.FindProjectByID(ctx, projectID)
	if err != nil {
		return models.Project{}, fromStore(err)
	}
	return project, nil
}

func (s *projectService) ListProjects(ctx context.Context, page models.PageRequest) (models.Page[models.Project], error) {
	projects, total, err := s.projectRepository.ListProjects(ctx, page)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*projectService.ListProjects").Msg("listing projects failed")
		return models.Page[models.Project]{}, err
	}
	return models.Page[models.Project]{Items: projects, Pagination: models.NewPagination(page, total)}, nil
}

// UpdateProject applies the non-nil fields of req and logs a
// project_updated activity.
func (s *projectService) UpdateProject(ctx context.Context, caller models.Identity, id string, req models.ProjectUpdateRequest) (models.Project, error) {
	projectID, err := s.authorize(ctx, caller, id)
	if err != nil {
		return models.Project{}, err
	}

	project, err := s.projectRepository.UpdateProject(ctx, projectID, models.ProjectUpdate{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		return models.Project{}, fromStore(err)
	}

	s.logProjectActivity(ctx, caller, models.ActivityProjectUpdated, project, "Project updated: ")
	return project, nil
}

func (s *projectService) DeleteProject(ctx context.Context, caller models.Identity, id string) error {
	projectID, err := s.authorize(ctx, caller, id)
	if err != nil {
		return err
	}
	return fromStore(s.projectRepository.DeleteProject(ctx, projectID))
}

func (s *projectService) authorize(ctx context.Context, caller models.Identity, id string) (primitive.ObjectID, error) {
	projectID, err := parseObjectID(id, ErrProjectNotFound)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if !s.enforceOwnership {
		return projectID, nil
	}

	project, err := s.projectRepository.FindProjectByID(ctx, projectID)
	if err != nil {
		return primitive.NilObjectID, fromStore(err)
	}
	if !caller.Owns(project.Owner) {
		logger.FromContext(ctx).Warn().
			Str("user_id", caller.ID.Hex()).
			Str("project_id", id).
			Msg("caller does not own project")
		return primitive.NilObjectID, ErrNotOwner
	}
	return projectID, nil
}

func (s *projectService) logProjectActivity(ctx context.Context, caller models.Identity, typ models.ActivityType, project models.Project, prefix string) {
	projectID := project.ID
	projectName := project.Name
	s.activityService.LogActivity(ctx, models.Activity{
		User:        caller.ID,
		Type:        typ,
		ProjectID:   &projectID,
		ProjectName: &projectName,
		Description: prefix + project.Name,
	})
}
