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

// dataService manages data records and resolves their owners for display.
type dataService struct {
	dataRepository   store.DataRepository
	userRepository   store.UserRepository
	activityService  ActivityService
	enforceOwnership bool
	logger           *logger.Logger
}

func NewDataService(dataRepository store.DataRepository, userRepository store.UserRepository, activityService ActivityService, cfg config.Auth, logger *logger.Logger) DataService {
	return &dataService{
		dataRepository:   dataRepository,
		userRepository:   userRepository,
		activityService:  activityService,
		enforceOwnership: cfg.EnforceOwnership,
		logger:           logger,
	}
}

// CreateDataRecord stores a record owned by caller and logs a
// data_imported activity.
func (s *dataService) CreateDataRecord(ctx context.Context, caller models.Identity, req models.DataRecordRequest) (models.DataRecord, error) {
	record, err := s.dataRepository.CreateDataRecord(ctx, models.DataRecord{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Owner:       caller.ID,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*dataService.CreateDataRecord").Msg("creating data record failed")
		return models.DataRecord{}, err
	}

	s.activityService.LogActivity(ctx, models.Activity{
		User:        caller.ID,
		Type:        models.ActivityDataImported,
		Description: "Data record created: " + record.Title,
	})
	return record, nil
}

func (s *dataService) GetDataRecord(ctx context.Context, id string) (models.DataRecordView, error) {
	recordID, err := parseObjectID(id, ErrDataNotFound)
	if err != nil {
		return models.DataRecordView{}, err
	}

	record, err := s.dataRepository.FindDataRecordByID(ctx, recordID)
	if err != nil {
		return models.DataRecordView{}, fromStore(err)
	}

	views, err := s.withOwners(ctx, []models.DataRecord{record})
	if err != nil {
		return models.DataRecordView{}, err
	}
	return views[0], nil
}

// ListDataRecords returns one page of records, each with its owner's
// id, name and email. Records whose owner no longer exists have no owner.
func (s *dataService) ListDataRecords(ctx context.Context, page models.PageRequest) (models.Page[models.DataRecordView], error) {
	records, total, err := s.dataRepository.ListDataRecords(ctx, page)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*dataService.ListDataRecords").Msg("listing data records failed")
		return models.Page[models.DataRecordView]{}, err
	}

	views, err := s.withOwners(ctx, records)
	if err != nil {
		return models.Page[models.DataRecordView]{}, err
	}
	return models.Page[models.DataRecordView]{Items: views, Pagination: models.NewPagination(page, total)}, nil
}

func (s *dataService) UpdateDataRecord(ctx context.Context, caller models.Identity, id string, req models.DataRecordUpdateRequest) (models.DataRecord, error) {
	recordID, err := s.authorize(ctx, caller, id)
	if err != nil {
		return models.DataRecord{}, err
	}

	record, err := s.dataRepository.UpdateDataRecord(ctx, recordID, models.DataRecordUpdate{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
	})
	if err != nil {
		return models.DataRecord{}, fromStore(err)
	}
	return record, nil
}

func (s *dataService) DeleteDataRecord(ctx context.Context, caller models.Identity, id string) error {
	recordID, err := s.authorize(ctx, caller, id)
	if err != nil {
		return err
	}
	return fromStore(s.dataRepository.DeleteDataRecord(ctx, recordID))
}

// authorize parses id and, when ownership is enforced, checks that caller
// owns the record or is an admin.
func (s *dataService) authorize(ctx context.Context, caller models.Identity, id string) (primitive.ObjectID, error) {
	recordID, err := parseObjectID(id, ErrDataNotFound)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if !s.enforceOwnership {
		return recordID, nil
	}

	record, err := s.dataRepository.FindDataRecordByID(ctx, recordID)
	if err != nil {
		return primitive.NilObjectID, fromStore(err)
	}
	if !caller.Owns(record.Owner) {
		logger.FromContext(ctx).Warn().
			Str("user_id", caller.ID.Hex()).
			Str("record_id", id).
			Msg("caller does not own data record")
		return primitive.NilObjectID, ErrNotOwner
	}
	return recordID, nil
}

func (s *dataService) withOwners(ctx context.Context, records []models.DataRecord) ([]models.DataRecordView, error) {
	ids := make([]primitive.ObjectID, 0, len(records))
	seen := make(map[primitive.ObjectID]struct{}, len(records))
	for _, r := range records {
		if _, ok := seen[r.Owner]; ok {
			continue
		}
		seen[r.Owner] = struct{}{}
		ids = append(ids, r.Owner)
	}

	owners, err := s.userRepository.FindUsersByIDs(ctx, ids)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*dataService.withOwners").Msg("resolving owners failed")
		return nil, err
	}
	byID := make(map[primitive.ObjectID]models.UserRef, len(owners))
	for _, u := range owners {
		byID[u.ID] = u.Ref()
	}

	views := make([]models.DataRecordView, 0, len(records))
	for _, r := range records {
		view := models.DataRecordView{DataRecord: r}
		if ref, ok := byID[r.Owner]; ok {
			view.Owner = &ref
		}
		views = append(views, view)
	}
	return views, nil
}
