// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/ecostats/models"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func testIdentity() models.Identity {
	return models.Identity{ID: primitive.NewObjectID(), Role: models.RoleEditor}
}

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	identity := testIdentity()
	duration := time.Hour
	key := "secret-key"

	token, err := GenerateJWTToken(issuer, identity, duration, key)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.String() != token.SignedString {
		t.Error("expected String() to return SignedString")
	}

	claims := token.Claims
	if claims.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, claims.Issuer)
	}
	if claims.Subject != identity.ID.Hex() {
		t.Errorf("expected subject %s, got %s", identity.ID.Hex(), claims.Subject)
	}
	if claims.Role != models.RoleEditor {
		t.Errorf("expected role editor, got %s", claims.Role)
	}

	ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	if ttl != duration {
		t.Errorf("expected ttl %v, got %v", duration, ttl)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		identity models.Identity
		key      string
	}{
		{"empty issuer", "", testIdentity(), "key"},
		{"empty key", "iss", testIdentity(), ""},
		{"zero identity", "iss", models.Identity{}, "key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.identity, time.Hour, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	issuer := "test-issuer"
	identity := testIdentity()
	key := "secret-key"

	genToken, err := GenerateJWTToken(issuer, identity, 5*time.Minute, key)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parsed, err := ValidateAndParseJWTToken(genToken.SignedString, key, issuer)
	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if parsed != identity {
		t.Errorf("expected identity %+v, got %+v", identity, parsed)
	}
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	genToken, _ := GenerateJWTToken("test-issuer", testIdentity(), time.Hour, "correct-key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "wrong-key", "test-issuer")
	if !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
		t.Errorf("expected signature error, got %v", err)
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	genToken, _ := GenerateJWTToken("test-issuer", testIdentity(), -time.Second, "key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "test-issuer")
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected expired error, got %v", err)
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	genToken, _ := GenerateJWTToken("real-issuer", testIdentity(), time.Hour, "key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "fake-issuer")
	if !errors.Is(err, jwt.ErrTokenInvalidIssuer) {
		t.Errorf("expected issuer error, got %v", err)
	}
}

func TestValidateAndParseJWTToken_WrongAlgorithm(t *testing.T) {
	claims := models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "iss",
			Subject:   primitive.NewObjectID().Hex(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Role: models.RoleAdmin,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("key"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = ValidateAndParseJWTToken(signed, "key", "iss")
	if err == nil {
		t.Error("expected error for HS512 token, got nil")
	}
}

func TestValidateAndParseJWTToken_NoneAlgorithm(t *testing.T) {
	claims := models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "iss",
			Subject:   primitive.NewObjectID().Hex(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err = ValidateAndParseJWTToken(signed, "key", "iss"); err == nil {
		t.Error("expected error for unsigned token, got nil")
	}
}

func TestValidateAndParseJWTToken_BadSubject(t *testing.T) {
	tests := []struct {
		name    string
		subject string
	}{
		{"empty subject", ""},
		{"not an object id", "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims := models.TokenClaims{
				RegisteredClaims: jwt.RegisteredClaims{
					Issuer:    "iss",
					Subject:   tt.subject,
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
				},
			}
			signed, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("key"))

			if _, err := ValidateAndParseJWTToken(signed, "key", "iss"); err == nil {
				t.Error("expected error for bad subject, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", "key", "iss")
	if err == nil {
		t.Error("expected error for malformed token string, got nil")
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"bearer prefix", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"lowercase prefix", "bearer abc", "abc", false},
		{"raw token", "abc.def.ghi", "abc.def.ghi", false},
		{"surrounding spaces", "  Bearer   abc  ", "abc", false},
		{"empty", "", "", true},
		{"only spaces", "   ", "", true},
		{"prefix only", "Bearer", "", true},
		{"prefix with space", "Bearer ", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if !errors.Is(err, ErrMissingBearerToken) {
					t.Errorf("expected ErrMissingBearerToken, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
