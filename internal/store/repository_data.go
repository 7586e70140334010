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

// dataRepository is the MongoDB-backed implementation of [DataRepository].
type dataRepository struct {
	baseRepository[models.DataRecord]
	logger *logger.Logger
}

func NewDataRepository(db *mongo.Database, logger *logger.Logger) DataRepository {
	logger.Debug().Msg("creating data repository")
	return &dataRepository{
		baseRepository: newBaseRepository[models.DataRecord](db.Collection(dataCollection)),
		logger:         logger,
	}
}

func (r *dataRepository) CreateDataRecord(ctx context.Context, record models.DataRecord) (models.DataRecord, error) {
	now := time.Now().UTC()
	record.ID = primitive.NilObjectID
	record.CreatedAt = now
	record.UpdatedAt = now

	id, err := r.insert(ctx, record)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*dataRepository.CreateDataRecord").Msg("error inserting data record")
		return models.DataRecord{}, err
	}

	record.ID = id
	return record, nil
}

func (r *dataRepository) FindDataRecordByID(ctx context.Context, id primitive.ObjectID) (models.DataRecord, error) {
	record, err := r.findByID(ctx, id)
	return record, r.mapError(ctx, "*dataRepository.FindDataRecordByID", err)
}

// ListDataRecords returns one page of records, newest first.
func (r *dataRepository) ListDataRecords(ctx context.Context, page models.PageRequest) ([]models.DataRecord, int64, error) {
	records, total, err := r.list(ctx, bson.M{}, "createdAt", page)
	if err != nil {
		return nil, 0, r.mapError(ctx, "*dataRepository.ListDataRecords", err)
	}
	return records, total, nil
}

func (r *dataRepository) UpdateDataRecord(ctx context.Context, id primitive.ObjectID, update models.DataRecordUpdate) (models.DataRecord, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Category != nil {
		set["category"] = *update.Category
	}

	record, err := r.updateByID(ctx, id, set)
	return record, r.mapError(ctx, "*dataRepository.UpdateDataRecord", err)
}

func (r *dataRepository) DeleteDataRecord(ctx context.Context, id primitive.ObjectID) error {
	return r.mapError(ctx, "*dataRepository.DeleteDataRecord", r.deleteByID(ctx, id))
}

func (r *dataRepository) mapError(ctx context.Context, fn string, err error) error {
	if err == nil {
		return nil
	}
	logger.FromContext(ctx).Err(err).Str("func", fn).Msg("data repository error")
	if errors.Is(err, ErrNotFound) {
		return ErrDataNotFound
	}
	return err
}
