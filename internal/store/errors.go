// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNotFound is returned by the generic base repository when no document
	// matches the given identifier. Typed repositories translate it into one
	// of the collection-specific errors below.
	ErrNotFound = errors.New("document not found")

	// ErrEmailAlreadyExists is returned when inserting or updating a user
	// violates the unique index on users.email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when no user document matches the query.
	ErrUserNotFound = errors.New("user was not found")

	// ErrProjectNotFound is returned when no project document matches the query.
	ErrProjectNotFound = errors.New("project was not found")

	// ErrDataNotFound is returned when no data record matches the query.
	ErrDataNotFound = errors.New("data record was not found")
)

// Low-level database operation errors. They wrap the driver error so the
// original cause stays reachable with [errors.Unwrap].
var (
	ErrConnecting      = errors.New("failed to connect to mongodb")
	ErrInsertingDoc    = errors.New("failed to insert document")
	ErrFindingDocs     = errors.New("failed to find documents")
	ErrDecodingDocs    = errors.New("failed to decode documents")
	ErrCountingDocs    = errors.New("failed to count documents")
	ErrUpdatingDoc     = errors.New("failed to update document")
	ErrDeletingDoc     = errors.New("failed to delete document")
	ErrAggregating     = errors.New("failed to aggregate documents")
	ErrCreatingIndexes = errors.New("failed to create indexes")
)
