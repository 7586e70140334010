// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// envelope mirrors the server response body with the payload left raw.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Code    string          `json:"code"`
	Details []string        `json:"details"`
}

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusMethodNotAllowed:    ErrMethodNotAllowed,
	http.StatusInternalServerError: ErrInternalServerError,
}

// decodeResponse unpacks the envelope of resp into out. A non-2xx status or
// an envelope with success=false yields an [*APIError]. out may be nil.
func decodeResponse(resp *resty.Response, out any) error {
	var env envelope
	decodeErr := json.Unmarshal(resp.Body(), &env)

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return mapHTTPError(resp, env, decodeErr == nil)
	}
	if decodeErr != nil {
		return fmt.Errorf("%w: %w", ErrMalformedResponse, decodeErr)
	}
	if !env.Success {
		return mapHTTPError(resp, env, true)
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return nil
}

func mapHTTPError(resp *resty.Response, env envelope, decoded bool) error {
	kind, ok := statusErrors[resp.StatusCode()]
	if !ok {
		kind = ErrUnexpectedStatus
	}

	apiErr := &APIError{Status: resp.StatusCode(), kind: kind}
	if decoded {
		apiErr.Code = env.Code
		apiErr.Message = env.Error
		apiErr.Details = env.Details
	}
	if apiErr.Message == "" {
		apiErr.Message = strings.TrimSpace(string(resp.Body()))
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode())
	}
	return apiErr
}
