// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-field-sync/internal/logger"
	"github.com/MKhiriev/go-field-sync/internal/store"
	"github.com/MKhiriev/go-field-sync/internal/validators"
	"github.com/MKhiriev/go-field-sync/models"
)

type observationExchangeService struct {
	observations store.ObservationRepository
	logger       *logger.Logger
}

func NewObservationExchangeService(observations store.ObservationRepository, logger *logger.Logger) ObservationExchangeService {
	return &observationExchangeService{observations: observations, logger: logger}
}

func (s *observationExchangeService) ObservationsPage(ctx context.Context, req models.PageRequest) (models.ObservationPage, error) {
	total, err := s.observations.Count(ctx)
	if err != nil {
		return models.ObservationPage{}, err
	}
	observations, err := s.observations.Page(ctx, req.Offset, req.Limit)
	if err != nil {
		return models.ObservationPage{}, err
	}

	return models.ObservationPage{Total: total, Observations: observations}, nil
}

func (s *observationExchangeService) AcceptObservations(ctx context.Context, observations []models.Observation) (int, error) {
	n, err := s.observations.Upsert(ctx, observations)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*observationExchangeService.AcceptObservations").Msg("error merging observations")
		return 0, err
	}
	return n, nil
}

// ObservationValidationService validates requests before they reach the
// wrapped service.
type ObservationValidationService struct {
	inner     ObservationExchangeService
	validator validators.Validator
}

func NewObservationValidationService() ObservationExchangeServiceWrapper {
	return &ObservationValidationService{validator: validators.NewRecordValidator()}
}

func (v *ObservationValidationService) Wrap(inner ObservationExchangeService) ObservationExchangeService {
	v.inner = inner
	return v
}

func (v *ObservationValidationService) ObservationsPage(ctx context.Context, req models.PageRequest) (models.ObservationPage, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.ObservationPage{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.ObservationsPage(ctx, req)
}

func (v *ObservationValidationService) AcceptObservations(ctx context.Context, observations []models.Observation) (int, error) {
	if err := v.validator.Validate(ctx, observations); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.AcceptObservations(ctx, observations)
}
