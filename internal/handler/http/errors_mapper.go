// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/ecostats/internal/service"
)

// apiError is the status, code and message written for a known failure.
type apiError struct {
	status  int
	code    string
	message string
}

const requestTimeoutMessage = "Request timed out"

var errorStatusMap = map[error]apiError{
	service.ErrEmailExists:             {http.StatusBadRequest, CodeEmailExists, "Email is already registered"},
	service.ErrInvalidCredentials:      {http.StatusUnauthorized, CodeInvalidCredential, "Wrong password"},
	service.ErrTokenIsExpiredOrInvalid: {http.StatusUnauthorized, CodeInvalidToken, "Invalid or expired token"},
	service.ErrUserNotFound:            {http.StatusNotFound, CodeUserNotFound, "User not found"},
	service.ErrDataNotFound:            {http.StatusNotFound, CodeDataNotFound, "Data record not found"},
	service.ErrProjectNotFound:         {http.StatusNotFound, CodeProjectNotFound, "Project not found"},
	service.ErrNotOwner:                {http.StatusForbidden, CodeNotOwner, "Only the owner can modify this resource"},
	context.DeadlineExceeded:           {http.StatusGatewayTimeout, CodeRequestTimeout, requestTimeoutMessage},
}

// apiErrorFrom returns the apiError registered for err. Unknown errors
// become a 500 SERVER_ERROR.
func apiErrorFrom(err error) apiError {
	for target, apiErr := range errorStatusMap {
		if errors.Is(err, target) {
			return apiErr
		}
	}
	return apiError{http.StatusInternalServerError, CodeServerError, "Internal server error"}
}
