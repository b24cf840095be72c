// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"net/url"

	"github.com/MKhiriev/go-field-sync/internal/adapter"
	"github.com/MKhiriev/go-field-sync/internal/bundle"
	"github.com/MKhiriev/go-field-sync/internal/events"
	"github.com/MKhiriev/go-field-sync/internal/logger"
	"github.com/MKhiriev/go-field-sync/internal/store"
	"github.com/MKhiriev/go-field-sync/models"
)

type surveyService struct {
	peers   PeerService
	adapter adapter.PeerAdapter
	surveys store.SurveyRepository
	emitter events.Emitter
	logger  *logger.Logger
}

// NewSurveyService builds a [SurveyService] storing bundles in surveys.
func NewSurveyService(peers PeerService, peerAdapter adapter.PeerAdapter, surveys store.SurveyRepository, emitter events.Emitter, log *logger.Logger) SurveyService {
	return &surveyService{peers: peers, adapter: peerAdapter, surveys: surveys, emitter: emitter, logger: log}
}

// SurveyURL renders the URL a survey is fetched from: {peer}/surveys/{id}.
func SurveyURL(target models.PeerTarget, id string) string {
	return target.BaseURL() + "/surveys/" + url.PathEscape(id)
}

func (s *surveyService) ListRemoteSurveys(ctx context.Context) ([]models.RemoteSurvey, error) {
	target, err := s.peers.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	s.emitter.Emit(models.Event{Type: models.FetchingRemoteSurveyList, Target: &target})

	entries, err := s.adapter.ListSurveys(ctx, target)
	if err != nil {
		err = fmt.Errorf("%w from %s: %w", ErrSurveyListFetch, target, err)
		s.logger.Err(err).Str("func", "*surveyService.ListRemoteSurveys").Msg("error listing surveys")
		s.emitter.Emit(models.Event{Type: models.FetchingRemoteSurveyListFailed, Err: err, Target: &target})
		return nil, err
	}

	surveys := make([]models.RemoteSurvey, 0, len(entries))
	for _, entry := range entries {
		id := surveyID(entry["id"])
		surveys = append(surveys, models.RemoteSurvey{
			ID:     id,
			Fields: entry,
			URL:    SurveyURL(target, id),
			Target: target,
		})
	}

	s.emitter.Emit(models.Event{Type: models.ReceivedRemoteSurveyList, RemoteSurveys: surveys, Target: &target})
	return surveys, nil
}

func surveyID(v any) string {
	switch id := v.(type) {
	case nil:
		return ""
	case string:
		return id
	default:
		return fmt.Sprint(id)
	}
}

func (s *surveyService) FetchRemoteSurvey(ctx context.Context, id, surveyURL string) (models.SurveyBundle, error) {
	s.emitter.Emit(models.Event{Type: models.FetchingRemoteSurvey, SurveyID: id})

	result, err := s.fetch(ctx, id, surveyURL)
	if err != nil {
		s.logger.Err(err).Str("func", "*surveyService.FetchRemoteSurvey").Str("survey", id).Msg("error fetching survey")
		s.emitter.Emit(models.Event{Type: models.FetchingRemoteSurveyFailed, SurveyID: id, Err: err})
		return models.SurveyBundle{}, err
	}

	s.emitter.Emit(models.Event{Type: models.ReceivedRemoteSurvey, SurveyID: id, Survey: &result})
	return result, nil
}

func (s *surveyService) fetch(ctx context.Context, id, surveyURL string) (models.SurveyBundle, error) {
	body, err := s.adapter.FetchBundle(ctx, surveyURL)
	if err != nil {
		return models.SurveyBundle{}, fmt.Errorf("%w: %s: %w", ErrBundleFetch, id, err)
	}
	defer body.Close()

	result, err := bundle.Extract(ctx, id, body)
	if err != nil {
		return models.SurveyBundle{}, fmt.Errorf("%w: %s: %w", ErrBundleExtraction, id, err)
	}
	if !result.HasDefinition() {
		return models.SurveyBundle{}, fmt.Errorf("%w: %s", ErrSurveyDefinitionMissing, id)
	}

	if err = s.surveys.Save(ctx, result); err != nil {
		return models.SurveyBundle{}, fmt.Errorf("%w: %s: %w", ErrSurveyStore, id, err)
	}

	return result, nil
}

func (s *surveyService) ClearRemoteSurveys() {
	s.emitter.Emit(models.Event{Type: models.RemoteSurveysCleared})
}

func (s *surveyService) LocalSurveys(ctx context.Context) ([]models.LocalSurvey, error) {
	surveys, err := s.surveys.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSurveyStore, err)
	}
	return surveys, nil
}

func (s *surveyService) DeleteLocalSurvey(ctx context.Context, id string) error {
	if err := s.surveys.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w: %w", ErrSurveyStore, err)
	}

	s.emitter.Emit(models.Event{Type: models.LocalSurveyDeleted, SurveyID: id})
	return nil
}

func (s *surveyService) ClearLocalSurveys(ctx context.Context) error {
	if err := s.surveys.Clear(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrSurveyStore, err)
	}

	s.emitter.Emit(models.Event{Type: models.LocalSurveysCleared})
	return nil
}
