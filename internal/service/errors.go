// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/ecostats/internal/store"
)

var (
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrHashingPassword         = errors.New("failed to hash password")

	ErrUserNotFound    = errors.New("user not found")
	ErrProjectNotFound = errors.New("project not found")
	ErrDataNotFound    = errors.New("data record not found")

	// ErrNotOwner is returned when ownership enforcement is on and the caller
	// neither owns the document nor is an admin.
	ErrNotOwner = errors.New("caller does not own the resource")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// storeErrors translates repository sentinels into service sentinels.
var storeErrors = map[error]error{
	store.ErrEmailAlreadyExists: ErrEmailExists,
	store.ErrUserNotFound:       ErrUserNotFound,
	store.ErrProjectNotFound:    ErrProjectNotFound,
	store.ErrDataNotFound:       ErrDataNotFound,
}

// fromStore returns the service sentinel matching err, or err itself.
func fromStore(err error) error {
	for storeErr, serviceErr := range storeErrors {
		if errors.Is(err, storeErr) {
			return serviceErr
		}
	}
	return err
}
