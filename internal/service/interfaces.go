// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/MKhiriev/ecostats/models"
)

// AuthService registers users, checks credentials and issues and verifies
// access tokens.
type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, models.Token, error)
	Login(ctx context.Context, req models.LoginRequest) (LoginResult, error)
	// ParseToken verifies a raw token. Every failure is reported as
	// ErrTokenIsExpiredOrInvalid.
	ParseToken(ctx context.Context, tokenString string) (models.Identity, error)
}

// UserService reads and modifies user accounts. Ids are hex ObjectIDs; a
// malformed id behaves like an unknown one.
type UserService interface {
	GetUser(ctx context.Context, id string) (models.User, error)
	ListUsers(ctx context.Context, page models.PageRequest) (models.Page[models.User], error)
	UpdateUser(ctx context.Context, id string, req models.UserUpdateRequest) (models.User, error)
	DeleteUser(ctx context.Context, id string) error
}

// DataService manages environmental data records.
type DataService interface {
	CreateDataRecord(ctx context.Context, caller models.Identity, req models.DataRecordRequest) (models.DataRecord, error)
	GetDataRecord(ctx context.Context, id string) (models.DataRecordView, error)
	ListDataRecords(ctx context.Context, page models.PageRequest) (models.Page[models.DataRecordView], error)
	UpdateDataRecord(ctx context.Context, caller models.Identity, id string, req models.DataRecordUpdateRequest) (models.DataRecord, error)
	DeleteDataRecord(ctx context.Context, caller models.Identity, id string) error
}

// ProjectService manages projects.
type ProjectService interface {
	CreateProject(ctx context.Context, caller models.Identity, req models.ProjectRequest) (models.Project, error)
	GetProject(ctx context.Context, id string) (models.Project, error)
	ListProjects(ctx context.Context, page models.PageRequest) (models.Page[models.Project], error)
	UpdateProject(ctx context.Context, caller models.Identity, id string, req models.ProjectUpdateRequest) (models.Project, error)
	DeleteProject(ctx context.Context, caller models.Identity, id string) error
}

// ActivityService records and lists activities.
type ActivityService interface {
	CreateActivity(ctx context.Context, caller models.Identity, req models.ActivityRequest) (models.Activity, error)
	// LogActivity records an activity on behalf of another operation.
	// Failures are logged and swallowed.
	LogActivity(ctx context.Context, activity models.Activity)
	ListActivities(ctx context.Context, page models.PageRequest) (models.Page[models.Activity], error)
	ListUserActivities(ctx context.Context, userID primitive.ObjectID, page models.PageRequest) (models.Page[models.Activity], error)
}

// StatsService reports aggregate counters.
type StatsService interface {
	GeneralStats(ctx context.Context) (models.GeneralStats, error)
	UserStats(ctx context.Context) (models.GroupedStats, error)
	ProjectStats(ctx context.Context) (models.GroupedStats, error)
	ActivityStats(ctx context.Context) (models.GroupedStats, error)
}

// AppInfoService exposes the running server's version.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetVersionInfo(ctx context.Context) models.VersionInfo
}

// LoginResult is everything returned by a successful login.
type LoginResult struct {
	User       models.User
	Token      models.Token
	Activities models.Page[models.Activity]
}
