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

// userRepository is the MongoDB-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" collection.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	baseRepository[models.User]
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database and logger.
func NewUserRepository(db *mongo.Database, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		baseRepository: newBaseRepository[models.User](db.Collection(usersCollection)),
		logger:         logger,
	}
}

// CreateUser inserts a new user and returns it with the server-assigned id.
// CreatedAt and UpdatedAt are set here.
//
// A violation of the unique email index yields [ErrEmailAlreadyExists].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	user.ID = primitive.NilObjectID
	user.CreatedAt = now
	user.UpdatedAt = now

	id, err := r.insert(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		if mongo.IsDuplicateKeyError(err) {
			return models.User{}, ErrEmailAlreadyExists
		}
		return models.User{}, err
	}

	user.ID = id
	return user, nil
}

func (r *userRepository) FindUserByID(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	user, err := r.findByID(ctx, id)
	return user, r.mapError(ctx, "*userRepository.FindUserByID", err)
}

func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	user, err := r.findOne(ctx, bson.M{"email": email})
	return user, r.mapError(ctx, "*userRepository.FindUserByEmail", err)
}

func (r *userRepository) FindUsersByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error) {
	if len(ids) == 0 {
		return []models.User{}, nil
	}

	users, err := r.find(ctx, bson.M{"_id": bson.M{"$in": ids}}, "", models.PageRequest{})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.FindUsersByIDs").Msg("error finding users")
		return nil, err
	}
	return users, nil
}

// ListUsers returns one page of users, newest first.
func (r *userRepository) ListUsers(ctx context.Context, page models.PageRequest) ([]models.User, int64, error) {
	users, total, err := r.list(ctx, bson.M{}, "createdAt", page)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.ListUsers").Msg("error listing users")
		return nil, 0, err
	}
	return users, total, nil
}

// UpdateUser sets every non-nil field of update and bumps UpdatedAt. An
// email clash with another account yields [ErrEmailAlreadyExists].
func (r *userRepository) UpdateUser(ctx context.Context, id primitive.ObjectID, update models.UserUpdate) (models.User, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Email != nil {
		set["email"] = *update.Email
	}
	if update.PasswordHash != nil {
		set["password"] = *update.PasswordHash
	}
	if update.Organization != nil {
		set["organization"] = *update.Organization
	}
	if update.ProfileData != nil {
		set["profileData"] = *update.ProfileData
	}
	if update.Preferences != nil {
		set["preferences"] = *update.Preferences
	}
	if update.LastLogin != nil {
		set["lastLogin"] = *update.LastLogin
	}

	user, err := r.updateByID(ctx, id, set)
	if mongo.IsDuplicateKeyError(err) {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.UpdateUser").Msg("email already taken")
		return models.User{}, ErrEmailAlreadyExists
	}
	return user, r.mapError(ctx, "*userRepository.UpdateUser", err)
}

func (r *userRepository) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	return r.mapError(ctx, "*userRepository.DeleteUser", r.deleteByID(ctx, id))
}

func (r *userRepository) mapError(ctx context.Context, fn string, err error) error {
	if err == nil {
		return nil
	}
	logger.FromContext(ctx).Err(err).Str("func", fn).Msg("user repository error")
	if errors.Is(err, ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}
