// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RegisterRequest is the body of POST /api/users/register.
type RegisterRequest struct {
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Password        string  `json:"password"`
	ConfirmPassword string  `json:"confirmPassword"`
	Role            Role    `json:"role,omitempty"`
	Organization    *string `json:"organization,omitempty"`
}

// ApplyDefaults fills the role when the client omitted it.
func (r *RegisterRequest) ApplyDefaults() {
	if r.Role == "" {
		r.Role = RoleUser
	}
}

// LoginRequest is the body of POST /api/users/login.
//
// Page and PageSize select the window of the caller's activity log
// returned together with the token.
type LoginRequest struct {
	Email      string    `json:"email"`
	Password   string    `json:"password"`
	RememberMe bool      `json:"rememberMe,omitempty"`
	Page       PageParam `json:"page,omitempty"`
	PageSize   PageParam `json:"pageSize,omitempty"`
}

// PageRequest returns the activity window requested at login.
func (r *LoginRequest) PageRequest() PageRequest {
	return NewPageRequest(int(r.Page), int(r.PageSize))
}

// UserUpdateRequest is the body of PUT /api/users/:id. Every field is optional.
type UserUpdateRequest struct {
	Name         *string             `json:"name,omitempty"`
	Email        *string             `json:"email,omitempty"`
	Password     *string             `json:"password,omitempty"`
	Organization *string             `json:"organization,omitempty"`
	ProfileData  *ProfileData        `json:"profileData,omitempty"`
	Preferences  *PreferencesRequest `json:"preferences,omitempty"`
}

// PreferencesRequest is a partial update of [Preferences].
type PreferencesRequest struct {
	Language      *string                  `json:"language,omitempty"`
	Theme         *string                  `json:"theme,omitempty"`
	Notifications *NotificationPreferences `json:"notifications,omitempty"`
}

// Merge applies the non-nil fields of r on top of p.
func (r *PreferencesRequest) Merge(p Preferences) Preferences {
	if r == nil {
		return p
	}
	if r.Language != nil {
		p.Language = *r.Language
	}
	if r.Theme != nil {
		p.Theme = *r.Theme
	}
	if r.Notifications != nil {
		p.Notifications = *r.Notifications
	}
	return p
}

// DataRecordRequest is the body of POST /api/data.
type DataRecordRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// DataRecordUpdateRequest is the body of PUT /api/data/:id.
type DataRecordUpdateRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty"`
}

// ProjectRequest is the body of POST /api/projects.
type ProjectRequest struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Status      ProjectStatus `json:"status,omitempty"`
}

// ApplyDefaults marks new projects active unless a status was given.
func (r *ProjectRequest) ApplyDefaults() {
	if r.Status == "" {
		r.Status = ProjectActive
	}
}

// ProjectUpdateRequest is the body of PUT /api/projects/:id.
type ProjectUpdateRequest struct {
	Name        *string        `json:"name,omitempty"`
	Description *string        `json:"description,omitempty"`
	Status      *ProjectStatus `json:"status,omitempty"`
}

// ActivityRequest is the body of POST /api/activity.
type ActivityRequest struct {
	Type        ActivityType `json:"type"`
	Description string       `json:"description"`
	ProjectID   *string      `json:"projectId,omitempty"`
	ProjectName *string      `json:"projectName,omitempty"`
}
