// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-field-sync/internal/logger"
	"github.com/MKhiriev/go-field-sync/models"
)

var fixedNow = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestObservationRepo(t *testing.T) (*observationRepository, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock := newTestDB(t)
	repo := NewObservationRepository(newDBFromSQL(conn), logger.Nop()).(*observationRepository)
	repo.now = func() time.Time { return fixedNow }
	return repo, mock
}

func TestObservationRepository_Create(t *testing.T) {
	observation := models.Observation{
		ID:         "o1",
		Lat:        10,
		Lon:        20,
		Properties: map[string]any{"kind": "well"},
		CreatedAt:  fixedNow.Add(-time.Hour),
		Version:    1,
	}

	t.Run("inserts with updated_at set to now", func(t *testing.T) {
		repo, mock := newTestObservationRepo(t)

		mock.ExpectExec(`INSERT INTO observations \(id,lat,lon,properties,created_at,updated_at,version\)`).
			WithArgs("o1", 10.0, 20.0, `{"kind":"well"}`, fixedNow.Add(-time.Hour), fixedNow, int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Create(testContext(), observation))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate id", func(t *testing.T) {
		repo, mock := newTestObservationRepo(t)

		mock.ExpectExec(`INSERT INTO observations`).
			WillReturnError(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey})

		err := repo.Create(testContext(), observation)
		assert.ErrorIs(t, err, ErrObservationExists)
	})
}

func TestObservationRepository_Upsert(t *testing.T) {
	repo, mock := newTestObservationRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO observations (.+) ON CONFLICT \(id\) DO UPDATE`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	n, err := repo.Upsert(testContext(), []models.Observation{{ID: "a"}, {ID: "b"}})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestObservationRepository_ModifiedSince(t *testing.T) {
	repo, mock := newTestObservationRepo(t)

	since := fixedNow.Add(-24 * time.Hour)
	rows := sqlmock.NewRows(observationColumns).
		AddRow("o1", 1.0, 2.0, `{"note":"x"}`, since, fixedNow, int64(1))
	mock.ExpectQuery(`SELECT (.+) FROM observations WHERE updated_at > \? ORDER BY id`).
		WithArgs(since).
		WillReturnRows(rows)

	observations, err := repo.ModifiedSince(testContext(), since)
	require.NoError(t, err)
	require.Len(t, observations, 1)
	assert.Equal(t, "o1", observations[0].ID)
	assert.Equal(t, "x", observations[0].Properties["note"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestObservationRepository_QueryRegion(t *testing.T) {
	repo, mock := newTestObservationRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM observations WHERE \(lat >= \? AND lat <= \? AND lon >= \? AND lon <= \?\) ORDER BY created_at, id`).
		WillReturnRows(sqlmock.NewRows(observationColumns))

	observations, err := repo.QueryRegion(testContext(), models.Bounds{West: 0, South: 0, East: 1, North: 1})
	require.NoError(t, err)
	assert.Empty(t, observations)
	assert.NotNil(t, observations)
}
