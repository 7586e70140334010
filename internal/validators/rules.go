// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func required(field string) validation.RequiredRule {
	return validation.Required.ErrorObject(
		validation.NewError(CodeMissingFields, field+" is required"))
}

// notEmpty rejects an explicit empty value in a partial update while
// allowing the field to be omitted.
func notEmpty(field string) validation.RequiredRule {
	return validation.NilOrNotEmpty.ErrorObject(
		validation.NewError(CodeInvalidField, field+" cannot be empty"))
}

func minLength(field string, n int) validation.LengthRule {
	return validation.RuneLength(n, 0).ErrorObject(
		validation.NewError(CodeInvalidField, fmt.Sprintf("%s must be at least %d characters", field, n)))
}

func password() validation.LengthRule {
	return validation.RuneLength(6, 0).ErrorObject(
		validation.NewError(CodeWeakPassword, "password must be at least 6 characters"))
}

func email() validation.StringRule {
	return is.EmailFormat.ErrorObject(
		validation.NewError(CodeInvalidEmail, "email must be a valid email address"))
}

func oneOf[T any](field string, allowed ...T) validation.InRule {
	elements := make([]any, len(allowed))
	for i, v := range allowed {
		elements[i] = v
	}
	return validation.In(elements...).ErrorObject(
		validation.NewError(CodeInvalidEnum, fmt.Sprintf("%s must be one of %v", field, allowed)))
}

// equalTo checks a confirmation field against the value it confirms.
func equalTo(other string) validation.Rule {
	return validation.By(func(value any) error {
		s, _ := value.(string)
		if s != other {
			return validation.NewError(CodePasswordMismatch, "passwords do not match")
		}
		return nil
	})
}

// objectID accepts a nil pointer or the hex form of an ObjectID.
func objectID(field string) validation.Rule {
	return validation.By(func(value any) error {
		v, isNil := validation.Indirect(value)
		if isNil {
			return nil
		}
		s, _ := v.(string)
		if !primitive.IsValidObjectID(s) {
			return validation.NewError(CodeInvalidField, field+" must be a valid identifier")
		}
		return nil
	})
}
