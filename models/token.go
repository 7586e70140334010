// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Identity is the authenticated principal extracted from a verified token.
type Identity struct {
	ID   primitive.ObjectID
	Role Role
}

// IsAdmin reports whether the identity carries the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// Owns reports whether the identity is the given owner or an admin.
func (i Identity) Owns(owner primitive.ObjectID) bool {
	return i.IsAdmin() || i.ID == owner
}

// TokenClaims is the claim set signed into every access token.
//
// The "sub" claim holds the hex form of the user ObjectID.
type TokenClaims struct {
	jwt.RegisteredClaims
	Role Role `json:"role"`
}

// Identity converts the claims into an [Identity].
//
// Returns an error if the subject is missing or is not a valid ObjectID.
func (c *TokenClaims) Identity() (Identity, error) {
	sub, err := c.GetSubject()
	if err != nil || sub == "" {
		return Identity{}, fmt.Errorf("error extracting subject from token: %w", jwt.ErrTokenInvalidSubject)
	}

	id, err := primitive.ObjectIDFromHex(sub)
	if err != nil {
		return Identity{}, fmt.Errorf("error converting subject %q to ObjectID: %w", sub, err)
	}

	return Identity{ID: id, Role: c.Role}, nil
}

// Token is an issued, signed access token.
type Token struct {
	// SignedString is the compact JWS representation (header.payload.signature).
	SignedString string
	Claims       TokenClaims
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
