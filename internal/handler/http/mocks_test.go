// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/MKhiriev/ecostats/internal/config"
	"github.com/MKhiriev/ecostats/internal/logger"
	"github.com/MKhiriev/ecostats/internal/service"
	"github.com/MKhiriev/ecostats/internal/validators"
	"github.com/MKhiriev/ecostats/models"
)

// ─────────────────────────────────────────────
// Service fakes
// ─────────────────────────────────────────────

// Each fake implements a service interface through per-method func fields
// that test cases override. An unset field panics, which the recoverer turns
// into a 500, so unexpected calls fail loudly.

type mockAuthService struct {
	registerUserFn func(ctx context.Context, req models.RegisterRequest) (models.User, models.Token, error)
	loginFn        func(ctx context.Context, req models.LoginRequest) (service.LoginResult, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Identity, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, models.Token, error) {
	return m.registerUserFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (service.LoginResult, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Identity, error) {
	if m.parseTokenFn == nil {
		return parseTestToken(tokenString)
	}
	return m.parseTokenFn(ctx, tokenString)
}

type mockUserService struct {
	getUserFn    func(ctx context.Context, id string) (models.User, error)
	listUsersFn  func(ctx context.Context, page models.PageRequest) (models.Page[models.User], error)
	updateUserFn func(ctx context.Context, id string, req models.UserUpdateRequest) (models.User, error)
	deleteUserFn func(ctx context.Context, id string) error
}

func (m *mockUserService) GetUser(ctx context.Context, id string) (models.User, error) {
	return m.getUserFn(ctx, id)
}

func (m *mockUserService) ListUsers(ctx context.Context, page models.PageRequest) (models.Page[models.User], error) {
	return m.listUsersFn(ctx, page)
}

func (m *mockUserService) UpdateUser(ctx context.Context, id string, req models.UserUpdateRequest) (models.User, error) {
	return m.updateUserFn(ctx, id, req)
}

func (m *mockUserService) DeleteUser(ctx context.Context, id string) error {
	return m.deleteUserFn(ctx, id)
}

type mockDataService struct {
	createFn func(ctx context.Context, caller models.Identity, req models.DataRecordRequest) (models.DataRecord, error)
	getFn    func(ctx context.Context, id string) (models.DataRecordView, error)
	listFn   func(ctx context.Context, page models.PageRequest) (models.Page[models.DataRecordView], error)
	updateFn func(ctx context.Context, caller models.Identity, id string, req models.DataRecordUpdateRequest) (models.DataRecord, error)
	deleteFn func(ctx context.Context, caller models.Identity, id string) error
}

func (m *mockDataService) CreateDataRecord(ctx context.Context, caller models.Identity, req models.DataRecordRequest) (models.DataRecord, error) {
	return m.createFn(ctx, caller, req)
}

func (m *mockDataService) GetDataRecord(ctx context.Context, id string) (models.DataRecordView, error) {
	return m.getFn(ctx, id)
}

func (m *mockDataService) ListDataRecords(ctx context.Context, page models.PageRequest) (models.Page[models.DataRecordView], error) {
	return m.listFn(ctx, page)
}

func (m *mockDataService) UpdateDataRecord(ctx context.Context, caller models.Identity, id string, req models.DataRecordUpdateRequest) (models.DataRecord, error) {
	return m.updateFn(ctx, caller, id, req)
}

func (m *mockDataService) DeleteDataRecord(ctx context.Context, caller models.Identity, id string) error {
	return m.deleteFn(ctx, caller, id)
}

type mockProjectService struct {
	createFn func(ctx context.Context, caller models.Identity, req models.ProjectRequest) (models.Project, error)
	getFn    func(ctx context.Context, id string) (models.Project, error)
	listFn   func(ctx context.Context, page models.PageRequest) (models.Page[models.Project], error)
	updateFn func(ctx context.Context, caller models.Identity, id string, req models.ProjectUpdateRequest) (models.Project, error)
	deleteFn func(ctx context.Context, caller models.Identity, id string) error
}

func (m *mockProjectService) CreateProject(ctx context.Context, caller models.Identity, req models.ProjectRequest) (models.Project, error) {
	return m.createFn(ctx, caller, req)
}

func (m *mockProjectService) GetProject(ctx context.Context, id string) (models.Project, error) {
	return m.getFn(ctx, id)
}

func (m *mockProjectService) ListProjects(ctx context.Context, page models.PageRequest) (models.Page[models.Project], error) {
	return m.listFn(ctx, page)
}

func (m *mockProjectService) UpdateProject(ctx context.Context, caller models.Identity, id string, req models.ProjectUpdateRequest) (models.Project, error) {
	return m.updateFn(ctx, caller, id, req)
}

func (m *mockProjectService) DeleteProject(ctx context.Context, caller models.Identity, id string) error {
	return m.deleteFn(ctx, caller, id)
}

type mockActivityService struct {
	createFn   func(ctx context.Context, caller models.Identity, req models.ActivityRequest) (models.Activity, error)
	listFn     func(ctx context.Context, page models.PageRequest) (models.Page[models.Activity], error)
	listUserFn func(ctx context.Context, userID primitive.ObjectID, page models.PageRequest) (models.Page[models.Activity], error)
}

func (m *mockActivityService) CreateActivity(ctx context.Context, caller models.Identity, req models.ActivityRequest) (models.Activity, error) {
	return m.createFn(ctx, caller, req)
}

func (m *mockActivityService) LogActivity(context.Context, models.Activity) {}

func (m *mockActivityService) ListActivities(ctx context.Context, page models.PageRequest) (models.Page[models.Activity], error) {
	return m.listFn(ctx, page)
}

func (m *mockActivityService) ListUserActivities(ctx context.Context, userID primitive.ObjectID, page models.PageRequest) (models.Page[models.Activity], error) {
	return m.listUserFn(ctx, userID, page)
}

type mockStatsService struct {
	general  models.GeneralStats
	grouped  map[string]models.GroupedStats
	err      error
	lastCall string
}

func (m *mockStatsService) GeneralStats(context.Context) (models.GeneralStats, error) {
	m.lastCall = "general"
	return m.general, m.err
}

func (m *mockStatsService) UserStats(context.Context) (models.GroupedStats, error) {
	m.lastCall = "users"
	return m.grouped["users"], m.err
}

func (m *mockStatsService) ProjectStats(context.Context) (models.GroupedStats, error) {
	m.lastCall = "projects"
	return m.grouped["projects"], m.err
}

func (m *mockStatsService) ActivityStats(context.Context) (models.GroupedStats, error) {
	m.lastCall = "activity"
	return m.grouped["activity"], m.err
}

type mockAppInfoService struct {
	info models.VersionInfo
}

func (m *mockAppInfoService) GetAppVersion(context.Context) string {
	return m.info.Version
}

func (m *mockAppInfoService) GetVersionInfo(context.Context) models.VersionInfo {
	return m.info
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

var (
	testUserID  = primitive.NewObjectID()
	testAdminID = primitive.NewObjectID()
)

// Tokens understood by the default ParseToken of mockAuthService.
const (
	userToken  = "user-token"
	adminToken = "admin-token"
)

func parseTestToken(tokenString string) (models.Identity, error) {
	switch tokenString {
	case userToken:
		return models.Identity{ID: testUserID, Role: models.RoleUser}, nil
	case adminToken:
		return models.Identity{ID: testAdminID, Role: models.RoleAdmin}, nil
	default:
		return models.Identity{}, service.ErrTokenIsExpiredOrInvalid
	}
}

// newTestHandler builds a Handler with the real request validator. Nil
// services in svcs are replaced with empty fakes.
func newTestHandler(t *testing.T, svcs service.Services, enforceRoles bool) *Handler {
	t.Helper()

	if svcs.AuthService == nil {
		svcs.AuthService = &mockAuthService{}
	}
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{info: models.VersionInfo{Version: "test"}}
	}

	serverCfg := config.Server{FrontendURL: "http://localhost:3000", RequestTimeout: 5 * time.Second}
	authCfg := config.Auth{EnforceRoles: enforceRoles}

	return NewHandler(&svcs, validators.NewRequestValidator(), serverCfg, authCfg, logger.Nop())
}

// doRequest sends a request through the full router. An empty token sends
// no Authorization header.
func doRequest(t *testing.T, router http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// testEnvelope mirrors models.Envelope with Data left raw for per-test
// decoding.
type testEnvelope struct {
	Success   bool            `json:"success"`
	Data      json.RawMessage `json:"data"`
	Message   string          `json:"message"`
	Error     string          `json:"error"`
	Code      string          `json:"code"`
	Details   []string        `json:"details"`
	Timestamp string          `json:"timestamp"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) testEnvelope {
	t.Helper()

	var env testEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), "body: %s", rec.Body.String())
	return env
}

func decodeData[T any](t *testing.T, env testEnvelope) T {
	t.Helper()

	var data T
	require.NoError(t, json.Unmarshal(env.Data, &data), "data: %s", env.Data)
	return data
}

func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	return r.WithContext(nop.Logger.WithContext(r.Context()))
}

func newPreflightRequest(origin string) *http.Request {
	req := httptest.NewRequest(http.MethodOptions, "/api/data", nil)
	req.Header.Set("Origin", origin)
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type, Authorization")
	return req
}

func serve(handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}
