// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/MKhiriev/ecostats/internal/logger"
	"github.com/MKhiriev/ecostats/models"
)

// projectRepository is the MongoDB-backed implementation of [ProjectRepository].
type projectRepository struct {
	baseRepository[models.Project]
	logger *logger.Logger
}

func NewProjectRepository(db *mongo.Database, logger *logger.Logger) ProjectRepository {
	logger.Debug().Msg("creating project repository")
	return &projectRepository{
		baseRepository: newBaseRepository[models.Project](db.Collection(projectsCollection)),
		logger:         logger,
	}
}

func (r *projectRepository) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	now := time.Now().UTC()
	project.ID = primitive.NilObjectID
	project.CreatedAt = now
	project.UpdatedAt = now
	if project.Members == nil {
		project.Members = []primitive.ObjectID{}
	}

	id, err := r.insert(ctx, project)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*projectRepository.CreateProject").Msg("error inserting project")
		return models.Project{}, err
	}

	project.ID = id
	return project, nil
}

func (r *projectRepository) FindProjectByID(ctx context.Context, id primitive.ObjectID) (models.Project, error) {
	project, err := r.findByID(ctx, id)
	return project, r.mapError(ctx, "*projectRepository.FindProjectByID", err)
}

// ListProjects returns one page of projects, newest first.
func (r *projectRepository) ListProjects(ctx context.Context, page models.PageRequest) ([]models.Project, int64, error) {
	projects, total, err := r.list(ctx, bson.M{}, "createdAt", page)
	if err != nil {
		return nil, 0, r.mapError(ctx, "*projectRepository.ListProjects", err)
	}
	return projects, total, nil
}

func (r *projectRepository) UpdateProject(ctx context.Context, id primitive.ObjectID, update models.ProjectUpdate) (models.Project, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Status != nil {
		set["status"] = *update.Status
	}

	project, err := r.updateByID(ctx, id, set)
	return project, r.mapError(ctx, "*projectRepository.UpdateProject", err)
}

func (r *projectRepository) DeleteProject(ctx context.Context, id primitive.ObjectID) error {
	return r.mapError(ctx, "*projectRepository.DeleteProject", r.deleteByID(ctx, id))
}

func (r *projectRepository) mapError(ctx context.Context, fn string, err error) error {
	if err == nil {
		return nil
	}
	logger.FromContext(ctx).Err(err).Str("func", fn).Msg("project repository error")
	if errors.Is(err, ErrNotFound) {
		return ErrProjectNotFound
	}
	return err
}
