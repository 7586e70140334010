// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProjectStatus is the lifecycle state of a [Project].
type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectArchived  ProjectStatus = "archived"
	ProjectCompleted ProjectStatus = "completed"
)

// ProjectStatuses lists every accepted [ProjectStatus].
var ProjectStatuses = []ProjectStatus{ProjectActive, ProjectArchived, ProjectCompleted}

// Project is a document of the "projects" collection.
// Owner and Members are weak references to users.
type Project struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name        string               `bson:"name" json:"name"`
	Description string               `bson:"description" json:"description"`
	Status      ProjectStatus        `bson:"status" json:"status"`
	Owner       primitive.ObjectID   `bson:"owner" json:"owner"`
	Members     []primitive.ObjectID `bson:"members" json:"members"`
	CreatedAt   time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// ProjectUpdate carries the fields of a partial project update.
type ProjectUpdate struct {
	Name        *string
	Description *string
	Status      *ProjectStatus
}

// ProjectRoleOwner is the role reported for projects returned by the API.
const ProjectRoleOwner = "owner"

// ProjectView is the API representation of a project.
type ProjectView struct {
	Project
	Role string `json:"role"`
}

// View returns p as served by the API. A missing member list is reported
// as empty.
func (p Project) View() ProjectView {
	if p.Members == nil {
		p.Members = []primitive.ObjectID{}
	}
	return ProjectView{Project: p, Role: ProjectRoleOwner}
}
