// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// PageRequest selects one window of a list ordered newest first.
type PageRequest struct {
	Page     int
	PageSize int
}

// NewPageRequest returns a [PageRequest] where non-positive values are
// replaced with [DefaultPage] and [DefaultPageSize].
func NewPageRequest(page, pageSize int) PageRequest {
	if page <= 0 {
		page = DefaultPage
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return PageRequest{Page: page, PageSize: pageSize}
}

// ParsePageRequest builds a [PageRequest] from raw query values.
// Non-numeric values fall back to the defaults.
func ParsePageRequest(page, pageSize string) PageRequest {
	p, _ := strconv.Atoi(page)
	s, _ := strconv.Atoi(pageSize)
	return NewPageRequest(p, s)
}

// Skip returns how many items precede the window. It saturates at
// math.MaxInt64 when the product does not fit, see [PageRequest.OutOfRange].
func (p PageRequest) Skip() int64 {
	if p.OutOfRange() {
		return math.MaxInt64
	}
	if p.Page <= 1 || p.PageSize <= 0 {
		return 0
	}
	return int64(p.Page-1) * int64(p.PageSize)
}

// OutOfRange reports whether the window starts past any representable
// offset. Such a window is always empty.
func (p PageRequest) OutOfRange() bool {
	if p.Page <= 1 || p.PageSize <= 0 {
		return false
	}
	return int64(p.Page-1) > math.MaxInt64/int64(p.PageSize)
}

// Limit returns the window size.
func (p PageRequest) Limit() int64 {
	return int64(p.PageSize)
}

// Pagination describes the window returned to the client.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalPages int64 `json:"totalPages"`
	TotalItems int64 `json:"totalItems"`
}

// NewPagination computes the page metadata for totalItems. A page beyond
// TotalPages is valid and simply holds no items.
func NewPagination(req PageRequest, totalItems int64) Pagination {
	var totalPages int64
	if size := int64(req.PageSize); size > 0 && totalItems > 0 {
		totalPages = totalItems / size
		if totalItems%size != 0 {
			totalPages++
		}
	}

	return Pagination{
		Page:       req.Page,
		PageSize:   req.PageSize,
		TotalPages: totalPages,
		TotalItems: totalItems,
	}
}

// Page is one window of items together with its [Pagination].
type Page[T any] struct {
	Items      []T
	Pagination Pagination
}

// PageParam is a page number read from a JSON body. It accepts numbers and
// numeric strings; anything else decodes to zero so that
// [NewPageRequest] falls back to the default.
type PageParam int

// UnmarshalJSON implements [json.Unmarshaler].
func (p *PageParam) UnmarshalJSON(b []byte) error {
	*p = 0
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}

	var n json.Number
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return nil
		}
		n = json.Number(s)
	} else {
		n = json.Number(b)
	}

	if v, err := n.Int64(); err == nil {
		*p = PageParam(v)
	}
	return nil
}
