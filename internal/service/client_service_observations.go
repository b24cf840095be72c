// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-field-sync/internal/events"
	"github.com/MKhiriev/go-field-sync/internal/logger"
	"github.com/MKhiriev/go-field-sync/internal/osm"
	"github.com/MKhiriev/go-field-sync/internal/utils"
	"github.com/MKhiriev/go-field-sync/internal/validators"
	"github.com/MKhiriev/go-field-sync/models"
)

type observationService struct {
	store     osm.DataStore
	tiles     TileService
	validator validators.Validator
	emitter   events.Emitter
	now       func() time.Time
	logger    *logger.Logger
}

// NewObservationService builds an [ObservationService]. Saved observations
// invalidate their tile in tileService.
func NewObservationService(dataStore osm.DataStore, tileService TileService, emitter events.Emitter, log *logger.Logger) ObservationService {
	return &observationService{
		store:     dataStore,
		tiles:     tileService,
		validator: validators.NewRecordValidator(),
		emitter:   emitter,
		now:       time.Now,
		logger:    log,
	}
}

func (s *observationService) Initialize(observation models.Observation) {
	s.emitter.Emit(models.Event{Type: models.ObservationInitialized, Observation: &observation})
}

// SetActive selects the observation being edited; nil clears it.
func (s *observationService) SetActive(observation *models.Observation) {
	if observation != nil {
		copied := *observation
		observation = &copied
	}
	s.emitter.Emit(models.Event{Type: models.ActiveObservationSet, Observation: observation})
}

func (s *observationService) Update(observation models.Observation) {
	s.emitter.Emit(models.Event{Type: models.ObservationUpdated, Observation: &observation})
}

func (s *observationService) Save(ctx context.Context, observation models.Observation) (models.Observation, error) {
	if observation.ID == "" {
		observation.ID = utils.NewUUID()
	}
	if observation.CreatedAt.IsZero() {
		observation.CreatedAt = s.now().UTC()
	}
	if observation.Version == 0 {
		observation.Version = 1
	}

	s.emitter.Emit(models.Event{Type: models.SavingObservation, Observation: &observation})

	if err := s.validator.Validate(ctx, observation); err != nil {
		return models.Observation{}, s.fail(fmt.Errorf("%w: %w", ErrObservationSave, err))
	}
	if err := s.store.CreateObservation(ctx, observation); err != nil {
		return models.Observation{}, s.fail(fmt.Errorf("%w: %w", ErrObservationSave, err))
	}

	s.emitter.Emit(models.Event{Type: models.ObservationSaved, Observation: &observation})
	if s.tiles != nil {
		s.tiles.InvalidatePoint(models.QueryObservations, observation.Lat, observation.Lon)
	}

	return observation, nil
}

func (s *observationService) fail(err error) error {
	s.logger.Err(err).Str("func", "*observationService.Save").Msg("error saving observation")
	s.emitter.Emit(models.Event{Type: models.SavingObservationFailed, Err: err})
	return err
}
