// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/ecostats/internal/config"
	"github.com/MKhiriev/ecostats/internal/logger"
	"github.com/MKhiriev/ecostats/internal/utils"
	"github.com/MKhiriev/ecostats/models"
)

var statsGroupPaths = map[string]string{
	"users":    "/api/stats/users",
	"projects": "/api/stats/projects",
	"activity": "/api/stats/activity",
}

type httpAPIAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPAPIAdapter constructs the REST implementation of [APIAdapter].
// It normalises cfg.ServerAddress into a base URL and applies
// cfg.RequestTimeout to every request.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewHTTPAPIAdapter(cfg config.ClientConfig, logger *logger.Logger) (APIAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	return &httpAPIAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpAPIAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpAPIAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpAPIAdapter) Version(ctx context.Context) (models.VersionInfo, error) {
	var info models.VersionInfo

	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return info, fmt.Errorf("version request: %w", err)
	}
	if err = decodeResponse(resp, &info); err != nil {
		return models.VersionInfo{}, err
	}
	return info, nil
}

// Register POSTs req to /api/users/register and keeps the issued token.
func (h *httpAPIAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	var auth models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("/api/users/register")
	if err != nil {
		return auth, fmt.Errorf("register request: %w", err)
	}
	if err = decodeResponse(resp, &auth); err != nil {
		h.logger.Debug().Err(err).Msg("register rejected")
		return models.AuthResponse{}, err
	}

	h.SetToken(auth.Token)
	return auth, nil
}

// Login POSTs req to /api/users/login and keeps the issued token.
func (h *httpAPIAdapter) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	var login models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("/api/users/login")
	if err != nil {
		return login, fmt.Errorf("login request: %w", err)
	}
	if err = decodeResponse(resp, &login); err != nil {
		h.logger.Debug().Err(err).Msg("login rejected")
		return models.LoginResponse{}, err
	}

	h.SetToken(login.Token)
	return login, nil
}

func (h *httpAPIAdapter) GeneralStats(ctx context.Context) (models.GeneralStats, error) {
	var stats models.GeneralStats

	resp, err := h.authedRequest(ctx).Get("/api/stats")
	if err != nil {
		return stats, fmt.Errorf("stats request: %w", err)
	}
	if err = decodeResponse(resp, &stats); err != nil {
		return models.GeneralStats{}, err
	}
	return stats, nil
}

func (h *httpAPIAdapter) GroupedStats(ctx context.Context, group string) (models.GroupedStats, error) {
	path, ok := statsGroupPaths[group]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrGroupUnknown, group)
	}

	stats := models.GroupedStats{}
	resp, err := h.authedRequest(ctx).Get(path)
	if err != nil {
		return nil, fmt.Errorf("%s stats request: %w", group, err)
	}
	if err = decodeResponse(resp, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

func (h *httpAPIAdapter) ListActivities(ctx context.Context, page models.PageRequest) (models.ActivitiesResponse, error) {
	var activities models.ActivitiesResponse

	req := h.authedRequest(ctx)
	if page.Page > 0 {
		req.SetQueryParam("page", strconv.Itoa(page.Page))
	}
	if page.PageSize > 0 {
		req.SetQueryParam("pageSize", strconv.Itoa(page.PageSize))
	}

	resp, err := req.Get("/api/activity")
	if err != nil {
		return activities, fmt.Errorf("activity request: %w", err)
	}
	if err = decodeResponse(resp, &activities); err != nil {
		return models.ActivitiesResponse{}, err
	}
	return activities, nil
}

func (h *httpAPIAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
