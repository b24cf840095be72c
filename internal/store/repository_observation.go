// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-field-sync/internal/logger"
	"github.com/MKhiriev/go-field-sync/models"
)

// observationRepository is the SQL implementation of
// [ObservationRepository]. updated_at records when this store last wrote the
// row and drives ModifiedSince.
type observationRepository struct {
	db     *DB
	now    func() time.Time
	logger *logger.Logger
}

// NewObservationRepository constructs an [ObservationRepository] over db.
func NewObservationRepository(db *DB, logger *logger.Logger) ObservationRepository {
	logger.Debug().Msg("creating observation repository")
	return &observationRepository{db: db, now: time.Now, logger: logger}
}

func (r *observationRepository) Create(ctx context.Context, observation models.Observation) error {
	log := logger.FromContext(ctx)

	properties, err := encodeJSON(observation.Properties)
	if err != nil {
		return err
	}

	query, args, err := r.db.builder.
		Insert(observationsTable).
		Columns(observationColumns...).
		Values(observation.ID, observation.Lat, observation.Lon, properties, observation.CreatedAt.UTC(), r.now().UTC(), observation.Version).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if r.db.errorClassificator != nil && r.db.errorClassificator.IsUniqueViolation(err) {
			return fmt.Errorf("%w: %s", ErrObservationExists, observation.ID)
		}
		log.Err(err).Str("func", "*observationRepository.Create").Str("id", observation.ID).Msg("error inserting observation")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *observationRepository) Upsert(ctx context.Context, observations []models.Observation) (int, error) {
	log := logger.FromContext(ctx)

	if len(observations) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	now := r.now().UTC()
	written := 0
	for _, batch := range chunks(observations, upsertBatchSize) {
		insert := r.db.builder.Insert(observationsTable).Columns(observationColumns...)
		for _, o := range batch {
			properties, err := encodeJSON(o.Properties)
			if err != nil {
				return 0, err
			}
			insert = insert.Values(o.ID, o.Lat, o.Lon, properties, o.CreatedAt.UTC(), now, o.Version)
		}

		query, args, err := insert.Suffix(upsertObservationSuffix).ToSql()
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			log.Err(err).Str("func", "*observationRepository.Upsert").Int("batch", len(batch)).Msg("error writing observations")
			return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			written += int(n)
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return written, nil
}

func (r *observationRepository) QueryRegion(ctx context.Context, bounds models.Bounds) ([]models.Observation, error) {
	return r.query(ctx, "*observationRepository.QueryRegion", r.db.builder.
		Select(observationColumns...).
		From(observationsTable).
		Where(regionPredicate(bounds)).
		OrderBy("created_at", "id"))
}

func (r *observationRepository) Page(ctx context.Context, offset, limit int) ([]models.Observation, error) {
	return r.query(ctx, "*observationRepository.Page", r.db.builder.
		Select(observationColumns...).
		From(observationsTable).
		OrderBy("id").
		Limit(uint64(limit)).
		Offset(uint64(offset)))
}

func (r *observationRepository) Count(ctx context.Context) (int, error) {
	return count(ctx, r.db, observationsTable)
}

func (r *observationRepository) ModifiedSince(ctx context.Context, t time.Time) ([]models.Observation, error) {
	return r.query(ctx, "*observationRepository.ModifiedSince", r.db.builder.
		Select(observationColumns...).
		From(observationsTable).
		Where(sq.Gt{"updated_at": t.UTC()}).
		OrderBy("id"))
}

func (r *observationRepository) query(ctx context.Context, fn string, builder sq.SelectBuilder) ([]models.Observation, error) {
	log := logger.FromContext(ctx)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error querying observations")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	observations := make([]models.Observation, 0)
	for rows.Next() {
		var (
			o          models.Observation
			properties sql.NullString
			updatedAt  time.Time
		)
		if err = rows.Scan(&o.ID, &o.Lat, &o.Lon, &properties, &o.CreatedAt, &updatedAt, &o.Version); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if properties.Valid && properties.String != "" {
			if err = json.Unmarshal([]byte(properties.String), &o.Properties); err != nil {
				return nil, fmt.Errorf("%w: properties of %s: %w", ErrEncodingColumn, o.ID, err)
			}
		}
		observations = append(observations, o)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return observations, nil
}
