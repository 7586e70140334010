// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/ecostats/internal/logger"
	"github.com/MKhiriev/ecostats/internal/service"
	"github.com/MKhiriev/ecostats/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	req, ok := bodyFromContext[models.RegisterRequest](w, r)
	if !ok {
		return
	}

	user, token, err := h.services.AuthService.RegisterUser(r.Context(), req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.register").Msg("error registering user")
		writeServiceError(w, r, err)
		return
	}

	log.Info().Str("user_id", user.ID.Hex()).Msg("user registered")

	createdAt := user.CreatedAt
	writeData(w, r, http.StatusCreated, models.AuthResponse{
		User: models.UserSummary{
			ID:        user.ID.Hex(),
			Name:      user.Name,
			Email:     user.Email,
			Role:      user.Role,
			CreatedAt: &createdAt,
		},
		Token: token.SignedString,
	})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	req, ok := bodyFromContext[models.LoginRequest](w, r)
	if !ok {
		return
	}

	result, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("error logging in")
		if errors.Is(err, service.ErrUserNotFound) {
			writeError(w, r, http.StatusBadRequest, CodeUserNotFound, "User not found")
			return
		}
		writeServiceError(w, r, err)
		return
	}

	log.Debug().Str("user_id", result.User.ID.Hex()).Msg("user successfully logged in")

	writeData(w, r, http.StatusOK, models.LoginResponse{
		User: models.UserSummary{
			ID:        result.User.ID.Hex(),
			Name:      result.User.Name,
			Email:     result.User.Email,
			Role:      result.User.Role,
			LastLogin: result.User.LastLogin,
		},
		Token:      result.Token.SignedString,
		Activities: result.Activities.Items,
		Pagination: result.Activities.Pagination,
	})
}
