// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"testing"

	"github.com/paulmach/orb/maptile"

	"github.com/MKhiriev/go-field-sync/internal/events"
	"github.com/MKhiriev/go-field-sync/internal/logger"
	"github.com/MKhiriev/go-field-sync/internal/service"
	"github.com/MKhiriev/go-field-sync/internal/state"
	"github.com/MKhiriev/go-field-sync/models"
)

// ---- Stub: SyncService ----

type stubSync struct {
	replicate func(ctx context.Context, target *models.PeerTarget) error
}

func (s *stubSync) Replicate(ctx context.Context, target *models.PeerTarget) error {
	return s.replicate(ctx, target)
}

// ---- Stub: SurveyService ----

type stubSurveys struct {
	remote    []models.RemoteSurvey
	remoteErr error
	local     []models.LocalSurvey

	fetched   [][2]string
	fetchErr  error
	deleted   []string
	cleared   bool
	clearErr  error
	deleteErr error
}

func (s *stubSurveys) ListRemoteSurveys(context.Context) ([]models.RemoteSurvey, error) {
	return s.remote, s.remoteErr
}

func (s *stubSurveys) FetchRemoteSurvey(_ context.Context, id, surveyURL string) (models.SurveyBundle, error) {
	s.fetched = append(s.fetched, [2]string{id, surveyURL})
	if s.fetchErr != nil {
		return models.SurveyBundle{}, s.fetchErr
	}
	return models.SurveyBundle{ID: id, Attachments: map[string][]byte{"a.png": {1}, "b.png": {2}}}, nil
}

func (s *stubSurveys) ClearRemoteSurveys() {}

func (s *stubSurveys) LocalSurveys(context.Context) ([]models.LocalSurvey, error) {
	return s.local, nil
}

func (s *stubSurveys) DeleteLocalSurvey(_ context.Context, id string) error {
	s.deleted = append(s.deleted, id)
	return s.deleteErr
}

func (s *stubSurveys) ClearLocalSurveys(context.Context) error {
	s.cleared = true
	return s.clearErr
}

// ---- Stub: ObservationService ----

type stubObservations struct {
	initialized []models.Observation
	saved       []models.Observation
	saveErr     error
}

func (s *stubObservations) Initialize(o models.Observation) { s.initialized = append(s.initialized, o) }
func (s *stubObservations) SetActive(*models.Observation) {}
func (s *stubObservations) Update(models.Observation) {}

func (s *stubObservations) Save(_ context.Context, o models.Observation) (models.Observation, error) {
	if s.saveErr != nil {
		return models.Observation{}, s.saveErr
	}
	o.ID = "obs-1"
	s.saved = append(s.saved, o)
	return o, nil
}

// ---- Stub: TileService ----

type stubTiles struct {
	update  func(ctx context.Context, bounds models.Bounds) error
	present map[models.QueryKind]int
	resets  []models.QueryKind
	waits   int
}

func (s *stubTiles) QueryTile(context.Context, models.QueryKind, maptile.Tile) bool { return false }

func (s *stubTiles) UpdateVisibleBounds(ctx context.Context, bounds models.Bounds) error {
	return s.update(ctx, bounds)
}

func (s *stubTiles) Invalidate(models.QueryKind, models.TileKey) bool { return false }
func (s *stubTiles) InvalidatePoint(models.QueryKind, float64, float64) bool { return false }
func (s *stubTiles) Reset(kind models.QueryKind) { s.resets = append(s.resets, kind) }

func (s *stubTiles) State(models.QueryKind, models.TileKey) models.TileQueryState {
	return models.TileAbsent
}

func (s *stubTiles) Count(kind models.QueryKind, st models.TileQueryState) int {
	if st != models.TilePresent {
		return 0
	}
	return s.present[kind]
}

func (s *stubTiles) Zoom() maptile.Zoom { return 16 }
func (s *stubTiles) Wait() { s.waits++ }

// ---- Stub: BboxService ----

type stubBbox struct {
	selection models.BboxSelection
	got       models.Bounds
}

func (s *stubBbox) SelectBbox(_ context.Context, bounds models.Bounds) models.BboxSelection {
	s.got = bounds
	sel := s.selection
	sel.Bounds = bounds
	return sel
}

func (s *stubBbox) ClearBbox() {}

// ---- Helper ----

type testApp struct {
	app          *App
	bus          *events.Bus
	state        *state.Store
	out          *bytes.Buffer
	sync         *stubSync
	surveys      *stubSurveys
	observations *stubObservations
	tiles        *stubTiles
	bbox         *stubBbox
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	ta := &testApp{
		bus:          events.NewBus(),
		state:        state.NewStore(nil, logger.Nop()),
		out:          &bytes.Buffer{},
		sync:         &stubSync{},
		surveys:      &stubSurveys{},
		observations: &stubObservations{},
		tiles:        &stubTiles{},
		bbox:         &stubBbox{},
	}
	ta.app = newApp(&service.ClientServices{
		Sync:         ta.sync,
		Surveys:      ta.surveys,
		Observations: ta.observations,
		Tiles:        ta.tiles,
		Bbox:         ta.bbox,
	}, ta.state, ta.bus, ta.out, logger.Nop())

	return ta
}
