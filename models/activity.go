// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ActivityType classifies an [Activity] log entry.
type ActivityType string

const (
	ActivityProjectCreated ActivityType = "project_created"
	ActivityProjectUpdated ActivityType = "project_updated"
	ActivityAnalysisRun    ActivityType = "analysis_run"
	ActivityDataImported   ActivityType = "data_imported"
)

// ActivityTypes lists every accepted [ActivityType].
var ActivityTypes = []ActivityType{
	ActivityProjectCreated,
	ActivityProjectUpdated,
	ActivityAnalysisRun,
	ActivityDataImported,
}

// Activity is an append-only entry of the "activities" collection.
type Activity struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	User        primitive.ObjectID  `bson:"user" json:"-"`
	Type        ActivityType        `bson:"type" json:"type"`
	ProjectID   *primitive.ObjectID `bson:"projectId,omitempty" json:"projectId"`
	ProjectName *string             `bson:"projectName,omitempty" json:"projectName"`
	Description string              `bson:"description" json:"description"`
	Timestamp   time.Time           `bson:"timestamp" json:"timestamp"`
}
