// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-field-sync/internal/logger"
	"github.com/MKhiriev/go-field-sync/models"
)

// Keys of the sync_state table.
const (
	KeyAreaOfInterest         = "area_of_interest"
	KeyObservationsLastSynced = "observations_last_synced"
	KeyCoordinatorTarget      = "coordinator_target"
	KeyDatasetMeta            = "dataset_meta"
)

type syncStateRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSyncStateRepository constructs a [SyncStateRepository] over db.
func NewSyncStateRepository(db *DB, logger *logger.Logger) SyncStateRepository {
	logger.Debug().Msg("creating sync state repository")
	return &syncStateRepository{db: db, logger: logger}
}

func (r *syncStateRepository) Get(ctx context.Context, key string, dst any) (bool, error) {
	query, args, err := r.db.builder.
		Select("value").
		From(syncStateTable).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*syncStateRepository.Get").Str("key", key).Msg("error reading sync state")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err = json.Unmarshal([]byte(value), dst); err != nil {
		return false, fmt.Errorf("%w: %s: %w", ErrEncodingColumn, key, err)
	}
	return true, nil
}

func (r *syncStateRepository) Put(ctx context.Context, key string, value any) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrEncodingColumn, key, err)
	}

	query, args, err := r.db.builder.
		Insert(syncStateTable).
		Columns("key", "value").
		Values(key, string(encoded)).
		Suffix(upsertSyncStateSuffix).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*syncStateRepository.Put").Str("key", key).Msg("error writing sync state")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *syncStateRepository) Delete(ctx context.Context, key string) error {
	query, args, err := r.db.builder.Delete(syncStateTable).Where(sq.Eq{"key": key}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// SaveAreaOfInterest stores aoi. A nil aoi removes the key.
func (r *syncStateRepository) SaveAreaOfInterest(ctx context.Context, aoi *models.AreaOfInterest) error {
	if aoi == nil {
		return r.Delete(ctx, KeyAreaOfInterest)
	}
	return r.Put(ctx, KeyAreaOfInterest, aoi)
}

func (r *syncStateRepository) SaveObservationsLastSynced(ctx context.Context, at time.Time) error {
	return r.Put(ctx, KeyObservationsLastSynced, at.UTC())
}

func (r *syncStateRepository) SaveCoordinatorTarget(ctx context.Context, target models.PeerTarget) error {
	return r.Put(ctx, KeyCoordinatorTarget, target)
}

func (r *syncStateRepository) LoadAreaOfInterest(ctx context.Context) (*models.AreaOfInterest, error) {
	var aoi models.AreaOfInterest
	ok, err := r.Get(ctx, KeyAreaOfInterest, &aoi)
	if err != nil || !ok {
		return nil, err
	}
	return &aoi, nil
}

// LoadObservationsLastSynced returns the zero time when observations were
// never synced.
func (r *syncStateRepository) LoadObservationsLastSynced(ctx context.Context) (time.Time, error) {
	var at time.Time
	if _, err := r.Get(ctx, KeyObservationsLastSynced, &at); err != nil {
		return time.Time{}, err
	}
	return at, nil
}

func (r *syncStateRepository) LoadCoordinatorTarget(ctx context.Context) (*models.PeerTarget, error) {
	var target models.PeerTarget
	ok, err := r.Get(ctx, KeyCoordinatorTarget, &target)
	if err != nil || !ok {
		return nil, err
	}
	return &target, nil
}
