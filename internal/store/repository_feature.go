// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-field-sync/internal/logger"
	"github.com/MKhiriev/go-field-sync/models"
)

// featureRepository is the SQL implementation of [FeatureRepository]. Tags
// are stored as a JSON text column.
type featureRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewFeatureRepository constructs a [FeatureRepository] over db.
func NewFeatureRepository(db *DB, logger *logger.Logger) FeatureRepository {
	logger.Debug().Msg("creating feature repository")
	return &featureRepository{db: db, logger: logger}
}

func (r *featureRepository) Replace(ctx context.Context, features []models.Feature) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	query, args, err := r.db.builder.Delete(featuresTable).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*featureRepository.Replace").Msg("error deleting features")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if len(features) > 0 {
		if err = r.insert(ctx, tx, features); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *featureRepository) insert(ctx context.Context, tx *sql.Tx, features []models.Feature) error {
	log := logger.FromContext(ctx)

	for _, batch := range chunks(features, upsertBatchSize) {
		insert := r.db.builder.Insert(featuresTable).Columns(featureColumns...)
		for _, f := range batch {
			tags, err := encodeJSON(f.Tags)
			if err != nil {
				return err
			}
			insert = insert.Values(f.ID, f.Type, f.Lat, f.Lon, tags, f.Version)
		}

		query, args, err := insert.ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", "*featureRepository.insert").Int("batch", len(batch)).Msg("error writing features")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return nil
}

func (r *featureRepository) QueryRegion(ctx context.Context, bounds models.Bounds) ([]models.Feature, error) {
	query := r.db.builder.
		Select(featureColumns...).
		From(featuresTable).
		Where(regionPredicate(bounds)).
		OrderBy("id")

	return r.query(ctx, "*featureRepository.QueryRegion", query)
}

func (r *featureRepository) Page(ctx context.Context, offset, limit int) ([]models.Feature, error) {
	query := r.db.builder.
		Select(featureColumns...).
		From(featuresTable).
		OrderBy("id").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	return r.query(ctx, "*featureRepository.Page", query)
}

func (r *featureRepository) Count(ctx context.Context) (int, error) {
	return count(ctx, r.db, featuresTable)
}

func (r *featureRepository) Analyze(ctx context.Context) error {
	stmt := analyzeSQLite
	if r.db.dialect == DialectPostgres {
		stmt = analyzePostgres
	}

	if _, err := r.db.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *featureRepository) query(ctx context.Context, fn string, builder sq.SelectBuilder) ([]models.Feature, error) {
	log := logger.FromContext(ctx)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error querying features")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	features := make([]models.Feature, 0)
	for rows.Next() {
		var (
			f    models.Feature
			lat  sql.NullFloat64
			lon  sql.NullFloat64
			tags sql.NullString
		)
		if err = rows.Scan(&f.ID, &f.Type, &lat, &lon, &tags, &f.Version); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if lat.Valid {
			f.Lat = &lat.Float64
		}
		if lon.Valid {
			f.Lon = &lon.Float64
		}
		if tags.Valid && tags.String != "" {
			if err = json.Unmarshal([]byte(tags.String), &f.Tags); err != nil {
				return nil, fmt.Errorf("%w: tags of %s: %w", ErrEncodingColumn, f.ID, err)
			}
		}
		features = append(features, f)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return features, nil
}

func count(ctx context.Context, db *DB, table string) (int, error) {
	query, args, err := db.builder.Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var n int
	if err = db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return n, nil
}

func encodeJSON(v any) (string, error) {
	if v == nil {
		return "", nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingColumn, err)
	}
	return string(data), nil
}
