// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MKhiriev/ecostats/models"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(cors.Handler(corsOptions(h.frontendURL)))
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.recoverer)
	if h.requestTimeout > 0 {
		router.Use(h.withTimeout(h.requestTimeout))
	}
	router.Use(middleware.Compress(5, "application/json"))

	router.NotFound(h.routeNotFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.welcome)
		r.Get("/api/version", h.getServerVersion)

		r.With(withSchema[models.RegisterRequest](h)).Post("/api/users/register", h.register)
		r.With(withSchema[models.LoginRequest](h)).Post("/api/users/login", h.login)

		r.Get("/api/data", h.listDataRecords)
		r.Get("/api/data/{id}", h.getDataRecord)

		r.Get("/api/projects", h.listProjects)
		r.Get("/api/projects/{id}", h.getProject)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.With(h.requireRole(models.RoleAdmin)).Get("/api/users", h.listUsers)
		r.Get("/api/users/{id}", h.getUser)
		r.With(h.requireSelfOrAdmin, withSchema[models.UserUpdateRequest](h)).Put("/api/users/{id}", h.updateUser)
		r.With(h.requireRole(models.RoleAdmin)).Delete("/api/users/{id}", h.deleteUser)

		r.With(withSchema[models.DataRecordRequest](h)).Post("/api/data", h.createDataRecord)
		r.With(withSchema[models.DataRecordUpdateRequest](h)).Put("/api/data/{id}", h.updateDataRecord)
		r.Delete("/api/data/{id}", h.deleteDataRecord)

		r.With(withSchema[models.ProjectRequest](h)).Post("/api/projects", h.createProject)
		r.With(withSchema[models.ProjectUpdateRequest](h)).Put("/api/projects/{id}", h.updateProject)
		r.Delete("/api/projects/{id}", h.deleteProject)

		r.Get("/api/activity", h.listActivities)
		r.With(withSchema[models.ActivityRequest](h)).Post("/api/activity", h.createActivity)

		r.Get("/api/stats", h.generalStats)
		r.Get("/api/stats/users", h.userStats)
		r.Get("/api/stats/projects", h.projectStats)
		r.Get("/api/stats/activity", h.activityStats)
	})

	return router
}
