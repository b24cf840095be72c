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

// surveyRepository is the SQL implementation of [SurveyRepository]. The
// definition and icons are JSON text columns; attachments live in their own
// table keyed by (survey_id, name).
type surveyRepository struct {
	db     *DB
	now    func() time.Time
	logger *logger.Logger
}

// NewSurveyRepository constructs a [SurveyRepository] over db.
func NewSurveyRepository(db *DB, logger *logger.Logger) SurveyRepository {
	logger.Debug().Msg("creating survey repository")
	return &surveyRepository{db: db, now: time.Now, logger: logger}
}

func (r *surveyRepository) Save(ctx context.Context, bundle models.SurveyBundle) error {
	log := logger.FromContext(ctx)

	definition, err := encodeJSON(bundle.Definition)
	if err != nil {
		return err
	}
	icons, err := encodeJSON(bundle.Icons)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = r.deleteTx(ctx, tx, sq.Eq{"id": bundle.ID}, sq.Eq{"survey_id": bundle.ID}); err != nil {
		return err
	}

	query, args, err := r.db.builder.
		Insert(surveysTable).
		Columns("id", "definition", "icons", "created_at").
		Values(bundle.ID, definition, icons, r.now().UTC()).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*surveyRepository.Save").Str("id", bundle.ID).Msg("error inserting survey")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	for name, data := range bundle.Attachments {
		query, args, err = r.db.builder.
			Insert(surveyAttachmentsTable).
			Columns("survey_id", "name", "data").
			Values(bundle.ID, name, data).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", "*surveyRepository.Save").Str("id", bundle.ID).Str("attachment", name).Msg("error inserting attachment")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *surveyRepository) Get(ctx context.Context, id string) (models.SurveyBundle, error) {
	query, args, err := r.db.builder.
		Select("definition", "icons").
		From(surveysTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.SurveyBundle{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var definition, icons sql.NullString
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&definition, &icons)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SurveyBundle{}, fmt.Errorf("%w: %s", ErrSurveyNotFound, id)
	}
	if err != nil {
		return models.SurveyBundle{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	bundle := models.SurveyBundle{ID: id, Attachments: make(map[string][]byte)}
	if err = decodeJSON(definition, &bundle.Definition); err != nil {
		return models.SurveyBundle{}, err
	}
	if err = decodeJSON(icons, &bundle.Icons); err != nil {
		return models.SurveyBundle{}, err
	}

	query, args, err = r.db.builder.
		Select("name", "data").
		From(surveyAttachmentsTable).
		Where(sq.Eq{"survey_id": id}).
		OrderBy("name").
		ToSql()
	if err != nil {
		return models.SurveyBundle{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return models.SurveyBundle{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			name string
			data []byte
		)
		if err = rows.Scan(&name, &data); err != nil {
			return models.SurveyBundle{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if data == nil {
			data = []byte{}
		}
		bundle.Attachments[name] = data
	}
	if err = rows.Err(); err != nil {
		return models.SurveyBundle{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return bundle, nil
}

func (r *surveyRepository) List(ctx context.Context) ([]models.LocalSurvey, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("s.id", "s.definition", "s.created_at", "a.name").
		From(surveysTable + " s").
		LeftJoin(surveyAttachmentsTable + " a ON a.survey_id = s.id").
		OrderBy("s.id", "a.name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*surveyRepository.List").Msg("error listing surveys")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	surveys := make([]models.LocalSurvey, 0)
	for rows.Next() {
		var (
			id         string
			definition sql.NullString
			createdAt  time.Time
			attachment sql.NullString
		)
		if err = rows.Scan(&id, &definition, &createdAt, &attachment); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		if len(surveys) == 0 || surveys[len(surveys)-1].ID != id {
			survey := models.LocalSurvey{ID: id, CreatedAt: createdAt, Attachments: make([]string, 0)}
			if err = decodeJSON(definition, &survey.Definition); err != nil {
				return nil, err
			}
			surveys = append(surveys, survey)
		}
		if attachment.Valid {
			last := &surveys[len(surveys)-1]
			last.Attachments = append(last.Attachments, attachment.String)
		}
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return surveys, nil
}

func (r *surveyRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	query, args, err := r.db.builder.Delete(surveysTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrSurveyNotFound, id)
	}

	query, args, err = r.db.builder.Delete(surveyAttachmentsTable).Where(sq.Eq{"survey_id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}

func (r *surveyRepository) Clear(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = r.deleteTx(ctx, tx, nil, nil); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}

// deleteTx removes matching attachments then surveys. A nil predicate
// matches every row.
func (r *surveyRepository) deleteTx(ctx context.Context, tx *sql.Tx, surveyPred, attachmentPred sq.Sqlizer) error {
	attachments := r.db.builder.Delete(surveyAttachmentsTable)
	if attachmentPred != nil {
		attachments = attachments.Where(attachmentPred)
	}
	surveys := r.db.builder.Delete(surveysTable)
	if surveyPred != nil {
		surveys = surveys.Where(surveyPred)
	}

	for _, stmt := range []sq.DeleteBuilder{attachments, surveys} {
		query, args, err := stmt.ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}
	return nil
}

func decodeJSON(column sql.NullString, dst any) error {
	if !column.Valid || column.String == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(column.String), dst); err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingColumn, err)
	}
	return nil
}
