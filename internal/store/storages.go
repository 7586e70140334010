// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/MKhiriev/ecostats/internal/logger"
)

// Storages groups every repository used by the service layer.
type Storages struct {
	UserRepository     UserRepository
	ProjectRepository  ProjectRepository
	DataRepository     DataRepository
	ActivityRepository ActivityRepository
	StatsRepository    StatsRepository
}

// NewStorages builds all repositories on top of db.
func NewStorages(db *mongo.Database, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, logger),
		ProjectRepository:  NewProjectRepository(db, logger),
		DataRepository:     NewDataRepository(db, logger),
		ActivityRepository: NewActivityRepository(db, logger),
		StatsRepository:    NewStatsRepository(db, logger),
	}
}
