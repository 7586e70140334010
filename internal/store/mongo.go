// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/MKhiriev/ecostats/internal/config"
	"github.com/MKhiriev/ecostats/internal/logger"
)

// Collection names.
const (
	usersCollection      = "users"
	projectsCollection   = "projects"
	dataCollection       = "data"
	activitiesCollection = "activities"
)

// DB bundles the MongoDB client with the application database.
type DB struct {
	*mongo.Database
	client *mongo.Client
	logger *logger.Logger
}

// NewConnectMongo connects to MongoDB, pings the primary and returns the
// configured database. Both steps share cfg.ConnectTimeout.
func NewConnectMongo(ctx context.Context, cfg config.Storage, log *logger.Logger) (*DB, error) {
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	// establish connection
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error occurred during database connection")
		return nil, fmt.Errorf("%w: %w", ErrConnecting, err)
	}

	// ping database
	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting database (ping)")
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("%w: %w", ErrConnecting, err)
	}
	log.Info().Str("func", "NewConnectMongo").Str("database", cfg.Database).Msg("connected to database successfully")

	return &DB{
		Database: client.Database(cfg.Database),
		client:   client,
		logger:   log,
	}, nil
}

// Close disconnects the underlying client.
func (db *DB) Close(ctx context.Context) error {
	if err := db.client.Disconnect(ctx); err != nil {
		db.logger.Err(err).Str("func", "*DB.Close").Msg("error disconnecting from database")
		return err
	}
	db.logger.Info().Str("func", "*DB.Close").Msg("disconnected from database")
	return nil
}

// EnsureIndexes creates the indexes the repositories rely on. Creating an
// index that already exists is a no-op on the server.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		usersCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		activitiesCollection: {
			{Keys: bson.D{{Key: "timestamp", Value: -1}}},
			{Keys: bson.D{{Key: "user", Value: 1}, {Key: "timestamp", Value: -1}}},
		},
	}

	for _, name := range []string{usersCollection, activitiesCollection} {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, indexes[name]); err != nil {
			return fmt.Errorf("%w on %s: %w", ErrCreatingIndexes, name, err)
		}
	}
	return nil
}
