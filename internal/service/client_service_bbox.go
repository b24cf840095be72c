// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-field-sync/internal/events"
	"github.com/MKhiriev/go-field-sync/internal/logger"
	"github.com/MKhiriev/go-field-sync/internal/osm"
	"github.com/MKhiriev/go-field-sync/models"
)

type bboxService struct {
	store   osm.DataStore
	emitter events.Emitter
	logger  *logger.Logger
}

// NewBboxService builds a [BboxService] querying dataStore directly, outside
// the tile cache.
func NewBboxService(dataStore osm.DataStore, emitter events.Emitter, log *logger.Logger) BboxService {
	return &bboxService{store: dataStore, emitter: emitter, logger: log}
}

// SelectBbox never fails as a whole: a failed branch reports its own event
// and contributes an empty set.
func (s *bboxService) SelectBbox(ctx context.Context, bounds models.Bounds) models.BboxSelection {
	s.emitter.Emit(models.Event{Type: models.SelectBbox, Bounds: &bounds})

	selection := models.BboxSelection{
		Bounds:       bounds,
		Features:     []models.Feature{},
		Observations: []models.Observation{},
	}

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()

		features, err := s.store.QueryFeatures(ctx, bounds)
		if err != nil {
			s.branchFailed(models.BboxFeatureSelectionFailed, models.QueryFeatures, err)
			return
		}
		for _, f := range features {
			if f.Queryable() {
				selection.Features = append(selection.Features, f)
			}
		}
	}()

	go func() {
		defer wg.Done()

		observations, err := s.store.QueryObservations(ctx, bounds)
		if err != nil {
			s.branchFailed(models.BboxObservationSelectionFailed, models.QueryObservations, err)
			return
		}
		if observations != nil {
			selection.Observations = observations
		}
	}()

	wg.Wait()

	s.emitter.Emit(models.Event{
		Type:         models.BboxSelected,
		Bounds:       &bounds,
		Features:     selection.Features,
		Observations: selection.Observations,
	})

	return selection
}

func (s *bboxService) branchFailed(t models.EventType, kind models.QueryKind, err error) {
	err = fmt.Errorf("%w: %s: %w", ErrBboxQuery, kind, err)
	s.logger.Err(err).Str("func", "*bboxService.SelectBbox").Msg("bbox branch failed")
	s.emitter.Emit(models.Event{Type: t, Kind: kind, Err: err})
}

func (s *bboxService) ClearBbox() {
	s.emitter.Emit(models.Event{Type: models.BboxCleared})
}
