// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/paulmach/orb/maptile"

	"github.com/MKhiriev/go-field-sync/internal/events"
	"github.com/MKhiriev/go-field-sync/internal/logger"
	"github.com/MKhiriev/go-field-sync/internal/osm"
	"github.com/MKhiriev/go-field-sync/internal/tiles"
	"github.com/MKhiriev/go-field-sync/models"
)

// tileEngine runs region queries for one record kind. The registry holds
// the only shared state: a key is queried when it moves from absent to in
// flight and never again until a failure or an invalidation releases it.
type tileEngine[T any] struct {
	kind     models.QueryKind
	registry *tiles.Registry
	query    func(ctx context.Context, bounds models.Bounds) ([]T, error)
	filter   func(T) bool

	querying models.EventType
	queried  models.EventType
	failed   models.EventType
	payload  func(e *models.Event, records []T)
}

func (e *tileEngine[T]) issue(ctx context.Context, s *tileService, tile maptile.Tile) bool {
	key := tiles.KeyFor(tile)
	if !e.registry.Acquire(key) {
		return false
	}

	s.emitter.Emit(models.Event{Type: e.querying, Tile: key, Kind: e.kind})

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		records, err := e.query(ctx, tiles.BoundsOf(tile))
		if err != nil {
			e.registry.Release(key)
			err = fmt.Errorf("%w: %s %s: %w", ErrTileQuery, e.kind, key, err)
			s.logger.Err(err).Str("func", "*tileEngine.issue").Msg("tile query failed")
			s.emitter.Emit(models.Event{Type: e.failed, Tile: key, Kind: e.kind, Err: err})
			return
		}

		if e.filter != nil {
			kept := records[:0:0]
			for _, r := range records {
				if e.filter(r) {
					kept = append(kept, r)
				}
			}
			records = kept
		}

		e.registry.MarkPresent(key)
		event := models.Event{Type: e.queried, Tile: key, Kind: e.kind}
		e.payload(&event, records)
		s.emitter.Emit(event)
	}()

	return true
}

type tileService struct {
	features     *tileEngine[models.Feature]
	observations *tileEngine[models.Observation]

	zoom     maptile.Zoom
	maxTiles int
	emitter  events.Emitter
	wg       sync.WaitGroup
	logger   *logger.Logger
}

// NewTileService builds the viewport query engines over dataStore. Viewport
// passes tile at zoom and cover at most maxTiles tiles.
func NewTileService(dataStore osm.DataStore, zoom, maxTiles int, emitter events.Emitter, log *logger.Logger) TileService {
	return &tileService{
		features: &tileEngine[models.Feature]{
			kind:     models.QueryFeatures,
			registry: tiles.NewRegistry(),
			query:    dataStore.QueryFeatures,
			filter:   models.Feature.Queryable,
			querying: models.QueryingTileForFeatures,
			queried:  models.TileQueriedForFeatures,
			failed:   models.FeatureTileQueryFailed,
			payload:  func(e *models.Event, records []models.Feature) { e.Features = records },
		},
		observations: &tileEngine[models.Observation]{
			kind:     models.QueryObservations,
			registry: tiles.NewRegistry(),
			query:    dataStore.QueryObservations,
			querying: models.QueryingTileForObservations,
			queried:  models.TileQueriedForObservations,
			failed:   models.ObservationTileQueryFailed,
			payload:  func(e *models.Event, records []models.Observation) { e.Observations = records },
		},
		zoom:     maptile.Zoom(zoom),
		maxTiles: maxTiles,
		emitter:  emitter,
		logger:   log,
	}
}

// QueryTile detaches the query from ctx cancellation: an issued query always
// runs to completion so its key cannot stay in flight forever.
func (s *tileService) QueryTile(ctx context.Context, kind models.QueryKind, tile maptile.Tile) bool {
	ctx = context.WithoutCancel(ctx)

	switch kind {
	case models.QueryFeatures:
		return s.features.issue(ctx, s, tile)
	case models.QueryObservations:
		return s.observations.issue(ctx, s, tile)
	default:
		return false
	}
}

func (s *tileService) UpdateVisibleBounds(ctx context.Context, bounds models.Bounds) error {
	cover, err := tiles.Cover(bounds, s.zoom, s.maxTiles)
	if err != nil {
		s.logger.Err(err).Str("func", "*tileService.UpdateVisibleBounds").Str("bounds", bounds.String()).Msg("error covering bounds")
		return err
	}

	s.emitter.Emit(models.Event{Type: models.VisibleBoundsUpdated, Bounds: &bounds})

	issued := 0
	for _, tile := range cover {
		if s.QueryTile(ctx, models.QueryFeatures, tile) {
			issued++
		}
		if s.QueryTile(ctx, models.QueryObservations, tile) {
			issued++
		}
	}
	s.logger.Debug().Str("func", "*tileService.UpdateVisibleBounds").
		Int("tiles", len(cover)).
		Int("issued", issued).
		Msg("viewport pass")

	return nil
}

func (s *tileService) registry(kind models.QueryKind) *tiles.Registry {
	switch kind {
	case models.QueryFeatures:
		return s.features.registry
	case models.QueryObservations:
		return s.observations.registry
	default:
		return nil
	}
}

func (s *tileService) Invalidate(kind models.QueryKind, key models.TileKey) bool {
	r := s.registry(kind)
	if r == nil {
		return false
	}
	return r.Invalidate(key)
}

func (s *tileService) InvalidatePoint(kind models.QueryKind, lat, lon float64) bool {
	return s.Invalidate(kind, tiles.KeyFor(tiles.At(lat, lon, s.zoom)))
}

func (s *tileService) Reset(kind models.QueryKind) {
	if r := s.registry(kind); r != nil {
		r.InvalidateAll()
	}
}

func (s *tileService) State(kind models.QueryKind, key models.TileKey) models.TileQueryState {
	r := s.registry(kind)
	if r == nil {
		return models.TileAbsent
	}
	return r.State(key)
}

func (s *tileService) Count(kind models.QueryKind, st models.TileQueryState) int {
	r := s.registry(kind)
	if r == nil {
		return 0
	}
	return r.Count(st)
}

func (s *tileService) Zoom() maptile.Zoom {
	return s.zoom
}

func (s *tileService) Wait() {
	s.wg.Wait()
}
