// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/MKhiriev/ecostats/internal/logger"
	"github.com/MKhiriev/ecostats/models"
)

func groupRow(key any, count int32) bson.D {
	return bson.D{{Key: "_id", Value: key}, {Key: "count", Value: count}}
}

func TestStatsRepository_CountAll(t *testing.T) {
	mt := newMockT(t)

	mt.Run("success", func(mt *mtest.T) {
		repo := NewStatsRepository(mt.DB, logger.Nop())
		mt.AddMockResponses(countResponse(3), countResponse(7), countResponse(42))

		stats, err := repo.CountAll(context.Background())
		require.NoError(mt, err)
		assert.Equal(mt, models.GeneralStats{TotalUsers: 3, TotalProjects: 7, TotalActivities: 42}, stats)
	})

	mt.Run("projects error", func(mt *mtest.T) {
		repo := NewStatsRepository(mt.DB, logger.Nop())
		mt.AddMockResponses(countResponse(3), commandErrorResponse())

		_, err := repo.CountAll(context.Background())
		assert.ErrorIs(mt, err, ErrCountingDocs)
	})
}

func TestStatsRepository_Grouped(t *testing.T) {
	mt := newMockT(t)

	tests := []struct {
		name string
		call func(StatsRepository) (models.GroupedStats, error)
		rows []bson.D
		want models.GroupedStats
	}{
		{
			name: "users by role",
			call: func(r StatsRepository) (models.GroupedStats, error) { return r.CountUsersByRole(context.Background()) },
			rows: []bson.D{groupRow("user", 5), groupRow("admin", 1)},
			want: models.GroupedStats{"user": 5, "admin": 1},
		},
		{
			name: "projects by status",
			call: func(r StatsRepository) (models.GroupedStats, error) {
				return r.CountProjectsByStatus(context.Background())
			},
			rows: []bson.D{groupRow("active", 2), groupRow("archived", 4)},
			want: models.GroupedStats{"active": 2, "archived": 4},
		},
		{
			name: "activities by type with missing field",
			call: func(r StatsRepository) (models.GroupedStats, error) {
				return r.CountActivitiesByType(context.Background())
			},
			rows: []bson.D{groupRow("analysis_run", 9), groupRow(nil, 1)},
			want: models.GroupedStats{"analysis_run": 9, "null": 1},
		},
		{
			name: "empty collection",
			call: func(r StatsRepository) (models.GroupedStats, error) { return r.CountUsersByRole(context.Background()) },
			want: models.GroupedStats{},
		},
	}

	for _, tt := range tests {
		mt.Run(tt.name, func(mt *mtest.T) {
			repo := NewStatsRepository(mt.DB, logger.Nop())
			mt.AddMockResponses(mtest.CreateCursorResponse(0, testNS, mtest.FirstBatch, tt.rows...))

			got, err := tt.call(repo)
			require.NoError(mt, err)
			assert.Equal(mt, tt.want, got)
		})
	}

	mt.Run("aggregate error", func(mt *mtest.T) {
		repo := NewStatsRepository(mt.DB, logger.Nop())
		mt.AddMockResponses(commandErrorResponse())

		_, err := repo.CountProjectsByStatus(context.Background())
		assert.ErrorIs(mt, err, ErrAggregating)
	})
}
