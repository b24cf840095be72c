// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-field-sync/internal/config"
	"github.com/MKhiriev/go-field-sync/internal/logger"
)

// Storages groups the repositories sharing one database handle.
type Storages struct {
	Features     FeatureRepository
	Observations ObservationRepository
	Surveys      SurveyRepository
	SyncState    SyncStateRepository

	db *DB
}

// NewStorages connects to the configured database, applies migrations and
// builds every repository over the connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := Connect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "store.NewStorages").Msg("error applying migrations")
		db.Close()
		return nil, fmt.Errorf("migrate %s database: %w", db.Dialect(), err)
	}

	return NewStoragesFromDB(db, log), nil
}

// NewStoragesFromDB builds the repositories over an already migrated db.
func NewStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		Features:     NewFeatureRepository(db, log),
		Observations: NewObservationRepository(db, log),
		Surveys:      NewSurveyRepository(db, log),
		SyncState:    NewSyncStateRepository(db, log),
		db:           db,
	}
}

// Close releases the database handle.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
