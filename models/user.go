// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is the access level stored on a user and carried in issued tokens.
type Role string

const (
	RoleUser   Role = "user"
	RoleEditor Role = "editor"
	RoleAdmin  Role = "admin"
)

// Roles lists every accepted [Role] value.
var Roles = []Role{RoleUser, RoleEditor, RoleAdmin}

// IsValid reports whether r is one of [Roles].
func (r Role) IsValid() bool {
	for _, role := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// User is an account document of the "users" collection.
// PasswordHash never leaves the server: it is excluded from JSON.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password" json:"-"`
	Role         Role               `bson:"role" json:"role"`
	Organization *string            `bson:"organization" json:"organization"`
	ProfileData  ProfileData        `bson:"profileData" json:"profileData"`
	Preferences  Preferences        `bson:"preferences" json:"preferences"`
	LastLogin    *time.Time         `bson:"lastLogin,omitempty" json:"lastLogin,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ProfileData holds optional professional details of a user.
type ProfileData struct {
	Position   *string `bson:"position" json:"position"`
	Department *string `bson:"department" json:"department"`
	Phone      *string `bson:"phone" json:"phone"`
	Country    *string `bson:"country" json:"country"`
}

// Preferences holds UI settings of a user.
type Preferences struct {
	Language      string                  `bson:"language" json:"language"`
	Theme         string                  `bson:"theme" json:"theme"`
	Notifications NotificationPreferences `bson:"notifications" json:"notifications"`
}

// NotificationPreferences toggles notification channels.
type NotificationPreferences struct {
	Email bool `bson:"email" json:"email"`
	Push  bool `bson:"push" json:"push"`
}

// Theme values accepted in [Preferences].
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// DefaultPreferences returns the preferences assigned to a freshly
// registered user.
func DefaultPreferences() Preferences {
	return Preferences{
		Language: "es",
		Theme:    ThemeLight,
		Notifications: NotificationPreferences{
			Email: true,
			Push:  false,
		},
	}
}

// UserRef is the shape used when a user is embedded into another resource.
type UserRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Ref converts u into its embedded [UserRef] form.
func (u User) Ref() UserRef {
	return UserRef{ID: u.ID.Hex(), Name: u.Name, Email: u.Email}
}

// UserUpdate carries the fields of a partial user update. Nil fields are
// left untouched by the repository.
type UserUpdate struct {
	Name         *string
	Email        *string
	PasswordHash *string
	Organization *string
	ProfileData  *ProfileData
	Preferences  *Preferences
	LastLogin    *time.Time
}
