// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/ecostats/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrMissingBearerToken is returned by [ParseBearerToken] when the header
// carries no token at all.
var ErrMissingBearerToken = errors.New("missing bearer token")

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token for identity.
//
// The token includes the following claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ObjectID in hex
//   - role           : the user role at issue time
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// issuer and signKey must be non-empty. A non-positive tokenDuration yields
// an already expired token, which is useful in tests.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("ecostats", identity, time.Hour, "secret")
func GenerateJWTToken(issuer string, identity models.Identity, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || signKey == "" || identity.ID.IsZero() {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   identity.ID.Hex(),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role: identity.Role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{SignedString: tokenString, Claims: claims}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts
// the identity it was issued for.
//
// Validation includes:
//   - Signing method restricted to HS256
//   - Signature verification using the provided sign key
//   - Issuer (iss) claim check against tokenIssuer
//   - Expiration (exp) claim presence and check
//   - Subject (sub) claim presence and conversion to an ObjectID
//
// Example usage:
//
//	identity, err := utils.ValidateAndParseJWTToken(rawToken, "secret", "ecostats")
//	if err != nil {
//	    // handle invalid or expired token
//	}
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Identity, error) {
	claims := &models.TokenClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.Identity{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	identity, err := claims.Identity()
	if err != nil {
		return models.Identity{}, fmt.Errorf("error occurred during getting identity from token: %w", err)
	}

	return identity, nil
}

// ParseBearerToken extracts the token from an Authorization header value.
// The "Bearer " prefix is optional and matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	value := strings.TrimSpace(authorizationHeader)
	if len(value) >= 7 && strings.EqualFold(value[:7], "bearer ") {
		value = strings.TrimSpace(value[7:])
	} else if strings.EqualFold(value, "bearer") {
		value = ""
	}

	if value == "" {
		return "", ErrMissingBearerToken
	}
	return value, nil
}
