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
	"github.com/MKhiriev/go-field-sync/models"
)

type syncService struct {
	meta    MetaService
	store   osm.DataStore
	state   StateReader
	emitter events.Emitter
	now     func() time.Time
	logger  *logger.Logger
}

// NewSyncService builds the replication coordinator. state supplies the
// local area of interest and the last observation sync time.
func NewSyncService(meta MetaService, dataStore osm.DataStore, state StateReader, emitter events.Emitter, log *logger.Logger) SyncService {
	return &syncService{
		meta:    meta,
		store:   dataStore,
		state:   state,
		emitter: emitter,
		now:     time.Now,
		logger:  log,
	}
}

func (s *syncService) Replicate(ctx context.Context, target *models.PeerTarget) error {
	cmp, err := s.meta.Compare(ctx, target, s.state.AreaOfInterest())
	if err != nil {
		s.logger.Err(err).Str("func", "*syncService.Replicate").Msg("meta comparison failed, replication not started")
		return err
	}

	s.emitter.Emit(models.Event{Type: models.SyncingSurveyData, Target: &cmp.Target})

	if cmp.ShouldImportFull {
		return s.replicateFull(ctx, cmp)
	}
	return s.replicateObservations(ctx, cmp.Target)
}

// replicateFull commits the compared meta only after the pinned transfer
// succeeded, so the stored fingerprint names the transferred data.
func (s *syncService) replicateFull(ctx context.Context, cmp models.MetaComparison) error {
	log := s.logger.With().Str("func", "*syncService.replicateFull").Str("target", cmp.Target.String()).Logger()

	startedAt := s.now()
	progress := newProgressReporter(s.emitter)
	err := s.store.Replicate(ctx, cmp.Target, osm.ReplicateOptions{
		DatasetUUID: models.MetaUUID(cmp.RemoteMeta),
		Progress:    progress.report,
	})
	if err != nil {
		return s.fail(fmt.Errorf("%w: full import: %w", ErrReplication, err))
	}

	s.emitter.Emit(models.Event{Type: models.FinishedSyncingSurveyData, Target: &cmp.Target})

	aoi := models.NewAreaOfInterest(cmp.RemoteMeta)
	s.emitter.Emit(models.Event{Type: models.AreaOfInterestSet, AreaOfInterest: &aoi})
	s.emitter.Emit(models.Event{Type: models.ObservationsLastSyncedSet, At: startedAt})
	log.Info().Str("dataset", aoi.UUID()).Msg("full import finished")

	return nil
}

// replicateObservations stamps the sync with its start time so that
// observations written during the transfer are pushed next time.
func (s *syncService) replicateObservations(ctx context.Context, target models.PeerTarget) error {
	startedAt := s.now()
	progress := newProgressReporter(s.emitter)
	progress.report(models.Progress{Done: 0, Total: 1})

	err := s.store.ReplicateObservations(ctx, target, s.state.ObservationsLastSynced())
	progress.report(models.Progress{Done: 1, Total: 1})
	if err != nil {
		return s.fail(fmt.Errorf("%w: observations: %w", ErrReplication, err))
	}

	s.emitter.Emit(models.Event{Type: models.FinishedSyncingSurveyData, Target: &target})
	s.emitter.Emit(models.Event{Type: models.ObservationsLastSyncedSet, At: startedAt})

	return nil
}

func (s *syncService) fail(err error) error {
	s.logger.Err(err).Str("func", "*syncService.fail").Msg("replication failed")
	s.emitter.Emit(models.Event{Type: models.SyncingSurveyDataFailed, Err: err})
	return err
}

// progressReporter turns store ticks into progress events and drops ticks
// that would move the indicator backwards.
type progressReporter struct {
	emitter events.Emitter
	last    float64
	started bool
}

func newProgressReporter(emitter events.Emitter) *progressReporter {
	return &progressReporter{emitter: emitter}
}

func (p *progressReporter) report(progress models.Progress) {
	f := progress.Fraction()
	if p.started && f < p.last {
		return
	}
	p.started, p.last = true, f

	p.emitter.Emit(models.Event{Type: models.SyncingSurveyDataProgress, Progress: &progress})
}
