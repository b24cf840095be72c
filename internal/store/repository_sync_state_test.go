// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-field-sync/internal/logger"
	"github.com/MKhiriev/go-field-sync/models"
)

func newTestSyncStateRepo(t *testing.T) (SyncStateRepository, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock := newTestDB(t)
	return NewSyncStateRepository(newDBFromSQL(conn), logger.Nop()), mock
}

func TestSyncStateRepository_Get(t *testing.T) {
	t.Run("absent key", func(t *testing.T) {
		repo, mock := newTestSyncStateRepo(t)

		mock.ExpectQuery(`SELECT value FROM sync_state WHERE key = \?`).
			WithArgs(KeyCoordinatorTarget).
			WillReturnRows(sqlmock.NewRows([]string{"value"}))

		target, err := repo.LoadCoordinatorTarget(testContext())
		require.NoError(t, err)
		assert.Nil(t, target)
	})

	t.Run("decodes stored json", func(t *testing.T) {
		repo, mock := newTestSyncStateRepo(t)

		mock.ExpectQuery(`SELECT value FROM sync_state`).
			WithArgs(KeyCoordinatorTarget).
			WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(`{"address":"10.0.0.5","port":3210}`))

		target, err := repo.LoadCoordinatorTarget(testContext())
		require.NoError(t, err)
		require.NotNil(t, target)
		assert.Equal(t, models.PeerTarget{Address: "10.0.0.5", Port: 3210}, *target)
	})

	t.Run("corrupt value", func(t *testing.T) {
		repo, mock := newTestSyncStateRepo(t)

		mock.ExpectQuery(`SELECT value FROM sync_state`).
			WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(`{not json`))

		_, err := repo.LoadAreaOfInterest(testContext())
		assert.ErrorIs(t, err, ErrEncodingColumn)
	})
}

func TestSyncStateRepository_SaveAreaOfInterest(t *testing.T) {
	t.Run("stores meta", func(t *testing.T) {
		repo, mock := newTestSyncStateRepo(t)

		mock.ExpectExec(`INSERT INTO sync_state \(key,value\) VALUES \(\?,\?\) ON CONFLICT \(key\) DO UPDATE SET value = excluded.value`).
			WithArgs(KeyAreaOfInterest, `{"meta":{"uuid":"u1"}}`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		aoi := models.NewAreaOfInterest(map[string]any{"uuid": "u1"})
		require.NoError(t, repo.SaveAreaOfInterest(testContext(), &aoi))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nil clears the key", func(t *testing.T) {
		repo, mock := newTestSyncStateRepo(t)

		mock.ExpectExec(`DELETE FROM sync_state WHERE key = \?`).
			WithArgs(KeyAreaOfInterest).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.SaveAreaOfInterest(testContext(), nil))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSyncStateRepository_ObservationsLastSynced(t *testing.T) {
	repo, mock := newTestSyncStateRepo(t)

	mock.ExpectExec(`INSERT INTO sync_state`).
		WithArgs(KeyObservationsLastSynced, `"2026-05-01T12:00:00Z"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT value FROM sync_state`).
		WithArgs(KeyObservationsLastSynced).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(`"2026-05-01T12:00:00Z"`))

	require.NoError(t, repo.SaveObservationsLastSynced(testContext(), fixedNow.In(time.FixedZone("X", 3600))))

	at, err := repo.LoadObservationsLastSynced(testContext())
	require.NoError(t, err)
	assert.True(t, at.Equal(fixedNow))
	assert.NoError(t, mock.ExpectationsWereMet())
}
