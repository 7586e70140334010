// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"
)

// TimestampLayout is ISO-8601 in UTC with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Timestamp marshals as [TimestampLayout].
type Timestamp time.Time

// Now returns the current time as a [Timestamp].
func Now() Timestamp {
	return Timestamp(time.Now())
}

// MarshalJSON implements [json.Marshaler].
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(t).UTC().Format(TimestampLayout) + `"`), nil
}

// UnmarshalJSON implements [json.Unmarshaler].
func (t *Timestamp) UnmarshalJSON(b []byte) error {
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return fmt.Errorf("invalid timestamp %s", b)
	}
	parsed, err := time.Parse(time.RFC3339Nano, string(b[1:len(b)-1]))
	if err != nil {
		return fmt.Errorf("invalid timestamp %s: %w", b, err)
	}
	*t = Timestamp(parsed)
	return nil
}

// Time returns t as a [time.Time].
func (t Timestamp) Time() time.Time {
	return time.Time(t)
}

// Envelope is the uniform body of every API response.
//
// Successful responses set Data and optionally Message; failures set
// Error, Code and optionally Details.
type Envelope struct {
	Success   bool      `json:"success"`
	Data      any       `json:"data,omitempty"`
	Message   string    `json:"message,omitempty"`
	Error     string    `json:"error,omitempty"`
	Code      string    `json:"code,omitempty"`
	Details   []string  `json:"details,omitempty"`
	Timestamp Timestamp `json:"timestamp"`
}

// UserSummary is the user block returned by register and login.
type UserSummary struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      Role       `json:"role"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

// AuthResponse is returned by a successful registration.
type AuthResponse struct {
	User  UserSummary `json:"user"`
	Token string      `json:"token"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	User       UserSummary `json:"user"`
	Token      string      `json:"token"`
	Activities []Activity  `json:"activities"`
	Pagination Pagination  `json:"pagination"`
}

// UserUpdatedResponse is returned after a user update.
type UserUpdatedResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UsersResponse is one page of users.
type UsersResponse struct {
	Users      []User     `json:"users"`
	Pagination Pagination `json:"pagination"`
}

// DataRecordsResponse is one page of data records.
type DataRecordsResponse struct {
	Records    []DataRecordView `json:"records"`
	Pagination Pagination       `json:"pagination"`
}

// ProjectResponse wraps a single project.
type ProjectResponse struct {
	Project ProjectView `json:"project"`
}

// ProjectsResponse is one page of projects.
type ProjectsResponse struct {
	Projects   []ProjectView `json:"projects"`
	Pagination Pagination    `json:"pagination"`
}

// ActivitiesResponse is one page of activities.
type ActivitiesResponse struct {
	Activities []Activity `json:"activities"`
	Pagination Pagination `json:"pagination"`
}

// GeneralStats holds the collection totals.
type GeneralStats struct {
	TotalUsers      int64 `json:"totalUsers"`
	TotalProjects   int64 `json:"totalProjects"`
	TotalActivities int64 `json:"totalActivities"`
}

// GroupedStats maps a grouping key (role, status or type) to its count.
type GroupedStats map[string]int64

// WelcomeResponse is the body of GET /.
type WelcomeResponse struct {
	Message string `json:"message"`
}
