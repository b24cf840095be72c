// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-field-sync/internal/bundle"
	"github.com/MKhiriev/go-field-sync/internal/logger"
	"github.com/MKhiriev/go-field-sync/internal/store"
	"github.com/MKhiriev/go-field-sync/models"
)

type surveyCatalogService struct {
	surveys store.SurveyRepository
	logger  *logger.Logger
}

func NewSurveyCatalogService(surveys store.SurveyRepository, logger *logger.Logger) SurveyCatalogService {
	return &surveyCatalogService{surveys: surveys, logger: logger}
}

func (s *surveyCatalogService) ListSurveys(ctx context.Context) ([]map[string]any, error) {
	surveys, err := s.surveys.List(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]map[string]any, 0, len(surveys))
	for _, survey := range surveys {
		entry := make(map[string]any, len(survey.Definition)+1)
		for k, v := range survey.Definition {
			entry[k] = v
		}
		entry["id"] = survey.ID
		entries = append(entries, entry)
	}

	return entries, nil
}

// WriteBundle loads the whole survey before writing so that a missing
// survey is reported before any byte reaches w.
func (s *surveyCatalogService) WriteBundle(ctx context.Context, id string, w io.Writer) error {
	survey, err := s.surveys.Get(ctx, id)
	if err != nil {
		return err
	}

	if err = bundle.Write(w, survey); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*surveyCatalogService.WriteBundle").Str("survey", id).Msg("error writing bundle")
		return err
	}
	return nil
}

func (s *surveyCatalogService) ImportSurvey(ctx context.Context, id string, r io.Reader) (models.SurveyBundle, error) {
	if id == "" {
		return models.SurveyBundle{}, fmt.Errorf("%w: empty survey id", ErrInvalidDataProvided)
	}

	survey, err := bundle.Extract(ctx, id, r)
	if err != nil {
		return models.SurveyBundle{}, fmt.Errorf("%w: %w", ErrBundleExtraction, err)
	}
	if !survey.HasDefinition() {
		return models.SurveyBundle{}, fmt.Errorf("%w: %s", ErrSurveyDefinitionMissing, id)
	}

	if err = s.surveys.Save(ctx, survey); err != nil {
		return models.SurveyBundle{}, fmt.Errorf("%w: %w", ErrSurveyStore, err)
	}

	logger.FromContext(ctx).Info().Str("func", "*surveyCatalogService.ImportSurvey").
		Str("survey", id).
		Int("attachments", len(survey.Attachments)).
		Msg("survey imported")

	return survey, nil
}
