// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Error codes written to the "code" field of failure envelopes by this
// package. Codes of business failures live in errors_mapper.go, codes of
// schema failures in the validators package.
const (
	CodeNoToken           = "NO_TOKEN"
	CodeInvalidToken      = "INVALID_TOKEN"
	CodeInsufficientRole  = "INSUFFICIENT_ROLE"
	CodeInvalidJSON       = "INVALID_JSON"
	CodeRouteNotFound     = "ROUTE_NOT_FOUND"
	CodeMethodNotAllowed  = "METHOD_NOT_ALLOWED"
	CodeServerError       = "SERVER_ERROR"
	CodeRequestTimeout    = "REQUEST_TIMEOUT"
	CodeEmailExists       = "EMAIL_EXISTS"
	CodeInvalidCredential = "INVALID_CREDENTIALS"
	CodeUserNotFound      = "USER_NOT_FOUND"
	CodeDataNotFound      = "DATA_NOT_FOUND"
	CodeProjectNotFound   = "PROJECT_NOT_FOUND"
	CodeNotOwner          = "NOT_OWNER"
)

var (
	// ErrNoIdentity is reported when a protected controller runs without
	// the identity the auth middleware attaches to the request context.
	ErrNoIdentity = errors.New("no authenticated identity in request context")

	// ErrNoBody is reported when a controller runs without the decoded body
	// the schema middleware attaches to the request context.
	ErrNoBody = errors.New("no validated body in request context")
)
