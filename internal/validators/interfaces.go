// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides abstractions for input validation and
// enforcement of request schemas across the application.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - ValidationError: the normalized failure carrying a single error code
//     and every human readable message.
//
// Usage patterns:
//  1. Inject a Validator into the HTTP layer.
//  2. Call Validate with context, value, and optional field names to enforce rules.
//  3. Match failures with errors.As(err, *ValidationError).
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}

// Defaulter is implemented by request bodies that fill omitted optional
// fields before validation.
type Defaulter interface {
	ApplyDefaults()
}
