// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package osm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-field-sync/internal/adapter"
	"github.com/MKhiriev/go-field-sync/internal/events"
	"github.com/MKhiriev/go-field-sync/internal/logger"
	"github.com/MKhiriev/go-field-sync/internal/store"
	"github.com/MKhiriev/go-field-sync/models"
)

// DefaultPageSize is used when the configured page size is not positive.
const DefaultPageSize = 500

var (
	// ErrReplicate wraps failures of a replication pass.
	ErrReplicate = errors.New("replication failed")
	// ErrQuery wraps failures of region queries.
	ErrQuery = errors.New("region query failed")
)

type dataStore struct {
	features     store.FeatureRepository
	observations store.ObservationRepository
	peer         adapter.PeerAdapter
	emitter      events.Emitter
	pageSize     int
	logger       *logger.Logger
}

// NewDataStore builds the [DataStore] over the local repositories. Records
// are transferred from peers through the adapter pageSize rows at a time.
func NewDataStore(
	storages *store.Storages,
	peer adapter.PeerAdapter,
	emitter events.Emitter,
	pageSize int,
	log *logger.Logger,
) DataStore {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if emitter == nil {
		emitter = events.Nop{}
	}

	return &dataStore{
		features:     storages.Features,
		observations: storages.Observations,
		peer:         peer,
		emitter:      emitter,
		pageSize:     pageSize,
		logger:       log.WithComponent("osm"),
	}
}

func (d *dataStore) Replicate(ctx context.Context, target models.PeerTarget, opts ReplicateOptions) error {
	log := d.logger.With().Str("func", "*dataStore.Replicate").Str("target", target.String()).Logger()

	d.emitter.Emit(models.Event{Type: models.ReplicationStarted, Target: &target})
	log.Info().Str("dataset", opts.DatasetUUID).Msg("replication started")

	staged, err := d.pullFeatures(ctx, target, opts)
	if err != nil {
		log.Err(err).Msg("feature transfer failed")
		return fmt.Errorf("%w: features: %w", ErrReplicate, err)
	}

	stored, err := d.features.Count(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("error counting stored features")
		stored = -1
	}
	if err = d.features.Replace(ctx, staged); err != nil {
		log.Err(err).Msg("error storing features")
		return fmt.Errorf("%w: features: %w", ErrReplicate, err)
	}

	if err = d.syncObservations(ctx, target, time.Time{}); err != nil {
		log.Err(err).Msg("observation transfer failed")
		return fmt.Errorf("%w: observations: %w", ErrReplicate, err)
	}

	d.emitter.Emit(models.Event{Type: models.IndexingStarted})
	if err = d.features.Analyze(ctx); err != nil {
		// stale planner statistics only slow queries down
		log.Warn().Err(err).Msg("error analyzing features")
	}
	d.emitter.Emit(models.Event{Type: models.IndexingCompleted})

	d.emitter.Emit(models.Event{Type: models.ReplicationCompleted, Target: &target})
	if len(staged) > 0 || stored != 0 {
		d.emitter.Emit(models.Event{Type: models.OSMDataChanged})
	}
	log.Info().Int("features", len(staged)).Int("replaced", stored).Msg("replication completed")

	return nil
}

// pullFeatures collects every page of the pinned dataset in memory so the
// store is swapped in one step.
func (d *dataStore) pullFeatures(ctx context.Context, target models.PeerTarget, opts ReplicateOptions) ([]models.Feature, error) {
	var staged []models.Feature
	for {
		page, err := d.peer.FetchFeatures(ctx, target, models.PageRequest{
			Offset:      len(staged),
			Limit:       d.pageSize,
			DatasetUUID: opts.DatasetUUID,
		})
		if err != nil {
			return nil, err
		}
		staged = append(staged, page.Features...)

		if opts.Progress != nil {
			opts.Progress(models.Progress{Done: len(staged), Total: page.Total})
		}

		if len(page.Features) == 0 || len(staged) >= page.Total {
			return staged, nil
		}
	}
}

func (d *dataStore) ReplicateObservations(ctx context.Context, target models.PeerTarget, since time.Time) error {
	if err := d.syncObservations(ctx, target, since); err != nil {
		d.logger.Err(err).Str("func", "*dataStore.ReplicateObservations").Str("target", target.String()).Msg("observation sync failed")
		return fmt.Errorf("%w: observations: %w", ErrReplicate, err)
	}
	return nil
}

// syncObservations pushes local changes before pulling so that the pulled
// pages already reflect them.
func (d *dataStore) syncObservations(ctx context.Context, target models.PeerTarget, since time.Time) error {
	local, err := d.observations.ModifiedSince(ctx, since)
	if err != nil {
		return err
	}
	if len(local) > 0 {
		if err = d.peer.PushObservations(ctx, target, local); err != nil {
			return err
		}
	}

	offset := 0
	for {
		page, err := d.peer.FetchObservations(ctx, target, models.PageRequest{Offset: offset, Limit: d.pageSize})
		if err != nil {
			return err
		}
		if _, err = d.observations.Upsert(ctx, page.Observations); err != nil {
			return err
		}
		offset += len(page.Observations)

		if len(page.Observations) == 0 || offset >= page.Total {
			return nil
		}
	}
}

func (d *dataStore) QueryFeatures(ctx context.Context, bounds models.Bounds) ([]models.Feature, error) {
	features, err := d.features.QueryRegion(ctx, bounds)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	return features, nil
}

func (d *dataStore) QueryObservations(ctx context.Context, bounds models.Bounds) ([]models.Observation, error) {
	observations, err := d.observations.QueryRegion(ctx, bounds)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	return observations, nil
}

func (d *dataStore) CreateObservation(ctx context.Context, observation models.Observation) error {
	return d.observations.Create(ctx, observation)
}
