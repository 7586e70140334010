// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DataRecord is an environmental data entry of the "data" collection.
type DataRecord struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Category    string             `bson:"category" json:"category"`
	Owner       primitive.ObjectID `bson:"owner" json:"-"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// DataRecordUpdate carries the fields of a partial data record update.
type DataRecordUpdate struct {
	Title       *string
	Description *string
	Category    *string
}

// DataRecordView is a [DataRecord] with its owner resolved. Owner is nil
// when the referenced user no longer exists.
type DataRecordView struct {
	DataRecord
	Owner *UserRef `json:"owner,omitempty"`
}
