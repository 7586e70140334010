// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/MKhiriev/ecostats/models"
)

// RequestValidator implements the Validator interface for every request
// body accepted by the HTTP API.
//
// It supports both value and pointer forms of each request type and allows
// optional field-level scoping via variadic JSON field names.
type RequestValidator struct{}

// NewRequestValidator constructs a new RequestValidator and returns it as
// the Validator interface.
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches validation to the appropriate schema.
//
// On failure it returns a *[ValidationError]. Unknown types yield
// [ErrUnsupportedType].
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var err error

	switch value := obj.(type) {
	case models.RegisterRequest:
		err = validateRegister(ctx, &value)
	case *models.RegisterRequest:
		err = validateRegister(ctx, value)

	case models.LoginRequest:
		err = validateLogin(ctx, &value)
	case *models.LoginRequest:
		err = validateLogin(ctx, value)

	case models.UserUpdateRequest:
		err = validateUserUpdate(ctx, &value)
	case *models.UserUpdateRequest:
		err = validateUserUpdate(ctx, value)

	case models.DataRecordRequest:
		err = validateDataRecord(ctx, &value)
	case *models.DataRecordRequest:
		err = validateDataRecord(ctx, value)

	case models.DataRecordUpdateRequest:
		err = validateDataRecordUpdate(ctx, &value)
	case *models.DataRecordUpdateRequest:
		err = validateDataRecordUpdate(ctx, value)

	case models.ProjectRequest:
		err = validateProject(ctx, &value)
	case *models.ProjectRequest:
		err = validateProject(ctx, value)

	case models.ProjectUpdateRequest:
		err = validateProjectUpdate(ctx, &value)
	case *models.ProjectUpdateRequest:
		err = validateProjectUpdate(ctx, value)

	case models.ActivityRequest:
		err = validateActivity(ctx, &value)
	case *models.ActivityRequest:
		err = validateActivity(ctx, value)

	default:
		return ErrUnsupportedType
	}

	return normalize(err, fields...)
}

func validateRegister(ctx context.Context, r *models.RegisterRequest) error {
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.Name, required("name"), minLength("name", 3)),
		validation.Field(&r.Email, required("email"), email()),
		validation.Field(&r.Password, required("password"), password()),
		validation.Field(&r.ConfirmPassword, required("confirmPassword"), equalTo(r.Password)),
		validation.Field(&r.Role, oneOf("role", models.Roles...)),
	)
}

func validateLogin(ctx context.Context, r *models.LoginRequest) error {
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.Email, required("email")),
		validation.Field(&r.Password, required("password")),
	)
}

func validateUserUpdate(ctx context.Context, r *models.UserUpdateRequest) error {
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.Name, notEmpty("name"), minLength("name", 3)),
		validation.Field(&r.Email, notEmpty("email"), email()),
		validation.Field(&r.Password, notEmpty("password"), password()),
		validation.Field(&r.Preferences, validation.By(func(value any) error {
			p, _ := value.(*models.PreferencesRequest)
			if p == nil {
				return nil
			}
			return validation.ValidateStructWithContext(ctx, p,
				validation.Field(&p.Theme, notEmpty("theme"), oneOf("theme", models.ThemeLight, models.ThemeDark)),
			)
		})),
	)
}

func validateDataRecord(ctx context.Context, r *models.DataRecordRequest) error {
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.Title, required("title"), minLength("title", 3)),
		validation.Field(&r.Description, required("description"), minLength("description", 10)),
		validation.Field(&r.Category, required("category"), minLength("category", 3)),
	)
}

func validateDataRecordUpdate(ctx context.Context, r *models.DataRecordUpdateRequest) error {
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.Title, notEmpty("title"), minLength("title", 3)),
		validation.Field(&r.Description, notEmpty("description"), minLength("description", 10)),
		validation.Field(&r.Category, notEmpty("category"), minLength("category", 3)),
	)
}

func validateProject(ctx context.Context, r *models.ProjectRequest) error {
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.Name, required("name"), minLength("name", 3)),
		validation.Field(&r.Description, required("description"), minLength("description", 10)),
		validation.Field(&r.Status, oneOf("status", models.ProjectStatuses...)),
	)
}

func validateProjectUpdate(ctx context.Context, r *models.ProjectUpdateRequest) error {
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.Name, notEmpty("name"), minLength("name", 3)),
		validation.Field(&r.Description, notEmpty("description"), minLength("description", 10)),
		validation.Field(&r.Status, notEmpty("status"), oneOf("status", models.ProjectStatuses...)),
	)
}

func validateActivity(ctx context.Context, r *models.ActivityRequest) error {
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.Type, required("type"), oneOf("type", models.ActivityTypes...)),
		validation.Field(&r.Description, required("description"), minLength("description", 5)),
		validation.Field(&r.ProjectID, objectID("projectId")),
	)
}

type fieldError struct {
	field   string
	code    string
	message string
}

// normalize converts ozzo errors into a *ValidationError, keeping only the
// given fields when any are specified.
func normalize(err error, fields ...string) error {
	if err == nil {
		return nil
	}

	var errs validation.Errors
	if !errors.As(err, &errs) {
		var internal validation.InternalError
		if errors.As(err, &internal) {
			return internal.InternalError()
		}
		return &ValidationError{Code: CodeValidationError, Message: err.Error(), Details: []string{err.Error()}}
	}

	collected := flatten("", errs)
	if len(fields) > 0 {
		collected = filterFields(collected, fields)
	}
	if len(collected) == 0 {
		return nil
	}

	sort.SliceStable(collected, func(i, j int) bool {
		return collected[i].field < collected[j].field
	})

	result := &ValidationError{Code: CodeValidationError, Details: make([]string, 0, len(collected))}
	best := len(codePriority)
	for _, fe := range collected {
		result.Details = append(result.Details, fe.message)
		for rank, code := range codePriority {
			if code == fe.code && rank < best {
				best = rank
				result.Code = code
				result.Message = fe.message
			}
		}
	}
	if result.Message == "" {
		result.Message = result.Details[0]
	}

	return result
}

func flatten(prefix string, errs validation.Errors) []fieldError {
	var out []fieldError
	for field, err := range errs {
		if err == nil {
			continue
		}
		name := field
		if prefix != "" {
			name = prefix + "." + field
		}

		var nested validation.Errors
		if errors.As(err, &nested) {
			out = append(out, flatten(name, nested)...)
			continue
		}

		code := CodeInvalidField
		var ve validation.Error
		if errors.As(err, &ve) {
			code = ve.Code()
		}
		out = append(out, fieldError{field: name, code: code, message: err.Error()})
	}
	return out
}

func filterFields(in []fieldError, fields []string) []fieldError {
	allowed := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		allowed[f] = struct{}{}
	}

	out := in[:0]
	for _, fe := range in {
		if _, ok := allowed[fe.field]; ok {
			out = append(out, fe)
		}
	}
	return out
}
