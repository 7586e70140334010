// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/ecostats/internal/config"
	"github.com/MKhiriev/ecostats/internal/handler"
	"github.com/MKhiriev/ecostats/internal/logger"
	"github.com/MKhiriev/ecostats/internal/server"
	"github.com/MKhiriev/ecostats/internal/service"
	"github.com/MKhiriev/ecostats/internal/store"
	"github.com/MKhiriev/ecostats/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(build)

	log := logger.NewLogger("ecostats-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.Log.Level); err != nil {
		log.Warn().Err(err).Str("level", cfg.Log.Level).Msg("unknown log level, keeping default")
	}

	db, err := store.NewConnectMongo(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer closeDB(db, log)

	indexTimeout := cfg.Storage.ConnectTimeout
	if indexTimeout <= 0 {
		indexTimeout = config.DefaultMongoConnectTimeout
	}
	indexCtx, cancel := context.WithTimeout(context.Background(), indexTimeout)
	err = store.EnsureIndexes(indexCtx, db.Database)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("error creating indexes")
	}

	storages := store.NewStorages(db.Database, log)

	services, err := service.NewServices(storages, *cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
	log.Info().Msg("server stopped")
}

func closeDB(db *store.DB, log *logger.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Close(ctx); err != nil {
		log.Err(err).Msg("error closing database")
	}
}

func printBuildInfo(build models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", build.BuildVersion())
	fmt.Printf("Build date: %s\n", build.BuildDate())
	fmt.Printf("Build commit: %s\n", build.BuildCommit())
}
