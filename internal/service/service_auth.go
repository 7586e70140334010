// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/ecostats/internal/config"
	"github.com/MKhiriev/ecostats/internal/logger"
	"github.com/MKhiriev/ecostats/internal/store"
	"github.com/MKhiriev/ecostats/internal/utils"
	"github.com/MKhiriev/ecostats/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// activityService supplies the caller's own activity page on login.
	activityService ActivityService

	hasher *utils.PasswordHasher

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	tokenDuration           time.Duration
	rememberMeTokenDuration time.Duration

	// allowSelfAssignedRole keeps the role sent at registration instead of
	// forcing models.RoleUser.
	allowSelfAssignedRole bool

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, activityService ActivityService, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:          userRepository,
		activityService:         activityService,
		hasher:                  utils.NewPasswordHasher(cfg.BcryptCost),
		tokenSignKey:            cfg.TokenSecret,
		tokenIssuer:             cfg.TokenIssuer,
		tokenDuration:           cfg.TokenDuration,
		rememberMeTokenDuration: cfg.RememberMeTokenDuration,
		allowSelfAssignedRole:   cfg.AllowSelfAssignedRole,
		logger:                  logger,
	}
}

// RegisterUser creates a new user account and issues a token for it.
//
// The password is hashed with bcrypt before persistence. The email is
// lower-cased so that the unique index catches case variants.
//
// Returns the persisted user and its token or:
//   - ErrEmailExists if the email is already registered.
//   - A wrapped hashing, storage or token error otherwise.
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	hash, err := a.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.RegisterUser").Msg("password hashing failed")
		return models.User{}, models.Token{}, fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}

	role := models.RoleUser
	if a.allowSelfAssignedRole && req.Role.IsValid() {
		role = req.Role
	}

	user := models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        normalizeEmail(req.Email),
		PasswordHash: hash,
		Role:         role,
		Organization: req.Organization,
		Preferences:  models.DefaultPreferences(),
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.User{}, models.Token{}, ErrEmailExists
		}
		return models.User{}, models.Token{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	token, err := a.createToken(registeredUser, a.tokenDuration)
	if err != nil {
		log.Err(err).Str("user_id", registeredUser.ID.Hex()).Msg("token creation failed")
		return models.User{}, models.Token{}, err
	}

	return registeredUser, token, nil
}

// Login authenticates an existing user.
//
// On success it records the login time, issues a token whose lifetime
// depends on RememberMe and loads the requested page of the user's own
// activities.
//
// Returns:
//   - ErrUserNotFound if no account has the email.
//   - ErrInvalidCredentials if the password does not match.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (LoginResult, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return LoginResult{}, fromStore(err)
	}

	if !a.hasher.Verify(req.Password, foundUser.PasswordHash) {
		log.Warn().Str("user_id", foundUser.ID.Hex()).Msg("wrong password")
		return LoginResult{}, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	updatedUser, err := a.userRepository.UpdateUser(ctx, foundUser.ID, models.UserUpdate{LastLogin: &now})
	if err != nil {
		log.Err(err).Str("user_id", foundUser.ID.Hex()).Msg("updating last login failed")
		return LoginResult{}, fromStore(err)
	}

	duration := a.tokenDuration
	if req.RememberMe {
		duration = a.rememberMeTokenDuration
	}
	token, err := a.createToken(updatedUser, duration)
	if err != nil {
		log.Err(err).Str("user_id", updatedUser.ID.Hex()).Msg("token creation failed")
		return LoginResult{}, err
	}

	activities, err := a.activityService.ListUserActivities(ctx, updatedUser.ID, req.PageRequest())
	if err != nil {
		log.Err(err).Str("user_id", updatedUser.ID.Hex()).Msg("listing user activities failed")
		return LoginResult{}, err
	}

	return LoginResult{User: updatedUser, Token: token, Activities: activities}, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, wrong algorithm, malformed,
// bad subject) is normalised to ErrTokenIsExpiredOrInvalid so that callers
// do not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Identity, error) {
	identity, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Identity{}, ErrTokenIsExpiredOrInvalid
	}

	return identity, nil
}

func (a *authService) createToken(user models.User, duration time.Duration) (models.Token, error) {
	identity := models.Identity{ID: user.ID, Role: user.Role}
	token, err := utils.GenerateJWTToken(a.tokenIssuer, identity, duration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
