// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/MKhiriev/ecostats/models"
)

// UserRepository persists user accounts in the users collection.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, id primitive.ObjectID) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// FindUsersByIDs returns the users whose ids are listed. Unknown ids are
	// skipped silently.
	FindUsersByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error)
	ListUsers(ctx context.Context, page models.PageRequest) ([]models.User, int64, error)
	UpdateUser(ctx context.Context, id primitive.ObjectID, update models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, id primitive.ObjectID) error
}

// ProjectRepository persists projects.
type ProjectRepository interface {
	CreateProject(ctx context.Context, project models.Project) (models.Project, error)
	FindProjectByID(ctx context.Context, id primitive.ObjectID) (models.Project, error)
	ListProjects(ctx context.Context, page models.PageRequest) ([]models.Project, int64, error)
	UpdateProject(ctx context.Context, id primitive.ObjectID, update models.ProjectUpdate) (models.Project, error)
	DeleteProject(ctx context.Context, id primitive.ObjectID) error
}

// DataRepository persists environmental data records.
type DataRepository interface {
	CreateDataRecord(ctx context.Context, record models.DataRecord) (models.DataRecord, error)
	FindDataRecordByID(ctx context.Context, id primitive.ObjectID) (models.DataRecord, error)
	ListDataRecords(ctx context.Context, page models.PageRequest) ([]models.DataRecord, int64, error)
	UpdateDataRecord(ctx context.Context, id primitive.ObjectID, update models.DataRecordUpdate) (models.DataRecord, error)
	DeleteDataRecord(ctx context.Context, id primitive.ObjectID) error
}

// ActivityRepository appends to and reads the activity log. Activities are
// never updated or deleted.
type ActivityRepository interface {
	CreateActivity(ctx context.Context, activity models.Activity) (models.Activity, error)
	ListActivities(ctx context.Context, page models.PageRequest) ([]models.Activity, int64, error)
	ListActivitiesByUser(ctx context.Context, userID primitive.ObjectID, page models.PageRequest) ([]models.Activity, int64, error)
}

// StatsRepository computes aggregate counters over every collection.
type StatsRepository interface {
	CountAll(ctx context.Context) (models.GeneralStats, error)
	CountUsersByRole(ctx context.Context) (models.GroupedStats, error)
	CountProjectsByStatus(ctx context.Context) (models.GroupedStats, error)
	CountActivitiesByType(ctx context.Context) (models.GroupedStats, error)
}
