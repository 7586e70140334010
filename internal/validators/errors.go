// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrValidation      = errors.New("validation failed")
)

// Error codes attached to validation rules. When several fields fail, the
// reported code is the first of codePriority found among the failures.
const (
	CodeMissingFields    = "MISSING_FIELDS"
	CodeInvalidEmail     = "INVALID_EMAIL"
	CodeWeakPassword     = "WEAK_PASSWORD"
	CodePasswordMismatch = "PASSWORD_MISMATCH"
	CodeInvalidEnum      = "INVALID_ENUM"
	CodeInvalidField     = "INVALID_FIELD"
	CodeValidationError  = "VALIDATION_ERROR"
)

var codePriority = []string{
	CodeMissingFields,
	CodeInvalidEmail,
	CodeWeakPassword,
	CodePasswordMismatch,
	CodeInvalidEnum,
	CodeInvalidField,
}

// ValidationError is returned when a value breaks one or more rules.
//
// Message describes the winning Code; Details lists the message of every
// failing field, ordered by field name.
type ValidationError struct {
	Code    string
	Message string
	Details []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Details, "; ")
}

// Unwrap makes every *ValidationError match [ErrValidation].
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
