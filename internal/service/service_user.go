// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/MKhiriev/ecostats/internal/config"
	"github.com/MKhiriev/ecostats/internal/logger"
	"github.com/MKhiriev/ecostats/internal/store"
	"github.com/MKhiriev/ecostats/internal/utils"
	"github.com/MKhiriev/ecostats/models"
)

type userService struct {
	userRepository store.UserRepository
	hasher         *utils.PasswordHasher
	logger         *logger.Logger
}

func NewUserService(userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		hasher:         utils.NewPasswordHasher(cfg.BcryptCost),
		logger:         logger,
	}
}

func (s *userService) GetUser(ctx context.Context, id string) (models.User, error) {
	userID, err := parseObjectID(id, ErrUserNotFound)
	if err != nil {
		return models.User{}, err
	}

	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fromStore(err)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, page models.PageRequest) (models.Page[models.User], error) {
	users, total, err := s.userRepository.ListUsers(ctx, page)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.ListUsers").Msg("listing users failed")
		return models.Page[models.User]{}, err
	}
	return models.Page[models.User]{Items: users, Pagination: models.NewPagination(page, total)}, nil
}

// UpdateUser applies the non-nil fields of req. A new password is hashed
// and preferences are merged into the stored ones.
func (s *userService) UpdateUser(ctx context.Context, id string, req models.UserUpdateRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	userID, err := parseObjectID(id, ErrUserNotFound)
	if err != nil {
		return models.User{}, err
	}

	update := models.UserUpdate{
		Organization: req.Organization,
		ProfileData:  req.ProfileData,
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		update.Name = &name
	}
	if req.Email != nil {
		email := normalizeEmail(*req.Email)
		update.Email = &email
	}
	if req.Password != nil {
		hash, err := s.hasher.Hash(*req.Password)
		if err != nil {
			log.Err(err).Str("func", "*userService.UpdateUser").Msg("password hashing failed")
			return models.User{}, fmt.Errorf("%w: %w", ErrHashingPassword, err)
		}
		update.PasswordHash = &hash
	}
	if req.Preferences != nil {
		current, err := s.userRepository.FindUserByID(ctx, userID)
		if err != nil {
			return models.User{}, fromStore(err)
		}
		merged := req.Preferences.Merge(current.Preferences)
		update.Preferences = &merged
	}

	user, err := s.userRepository.UpdateUser(ctx, userID, update)
	if err != nil {
		log.Err(err).Str("user_id", id).Msg("updating user failed")
		return models.User{}, fromStore(err)
	}
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, id string) error {
	userID, err := parseObjectID(id, ErrUserNotFound)
	if err != nil {
		return err
	}
	return fromStore(s.userRepository.DeleteUser(ctx, userID))
}

// parseObjectID parses a hex id. A malformed id yields notFound, the same
// as an id that matches no document.
func parseObjectID(id string, notFound error) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, notFound
	}
	return oid, nil
}
