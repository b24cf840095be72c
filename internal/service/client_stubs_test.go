// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/paulmach/orb/maptile"

	"github.com/MKhiriev/go-field-sync/models"
)

// Hand-written stubs for the service interfaces; the generated mocks live in
// internal/mock, which cannot import this package.

var testTarget = models.PeerTarget{Address: "192.168.1.20", Port: 8080}

var fixedNow = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

type stubPeers struct {
	target models.PeerTarget
	err    error
	calls  int
}

func (s *stubPeers) Resolve(context.Context) (models.PeerTarget, error) {
	s.calls++
	return s.target, s.err
}

type stubMeta struct {
	cmp   models.MetaComparison
	err   error
	local *models.AreaOfInterest
}

func (s *stubMeta) Compare(_ context.Context, _ *models.PeerTarget, local *models.AreaOfInterest) (models.MetaComparison, error) {
	s.local = local
	return s.cmp, s.err
}

type stubState struct {
	aoi        *models.AreaOfInterest
	lastSynced time.Time
}

func (s stubState) AreaOfInterest() *models.AreaOfInterest { return s.aoi }
func (s stubState) ObservationsLastSynced() time.Time      { return s.lastSynced }

type invalidation struct {
	kind     models.QueryKind
	lat, lon float64
}

type stubTiles struct {
	mu            sync.Mutex
	invalidations []invalidation
}

func (s *stubTiles) QueryTile(context.Context, models.QueryKind, maptile.Tile) bool { return false }
func (s *stubTiles) UpdateVisibleBounds(context.Context, models.Bounds) error      { return nil }
func (s *stubTiles) Invalidate(models.QueryKind, models.TileKey) bool              { return false }
func (s *stubTiles) Reset(models.QueryKind)                                        {}
func (s *stubTiles) Count(models.QueryKind, models.TileQueryState) int             { return 0 }
func (s *stubTiles) Zoom() maptile.Zoom                                            { return 16 }
func (s *stubTiles) Wait()                                                         {}

func (s *stubTiles) State(models.QueryKind, models.TileKey) models.TileQueryState {
	return models.TileAbsent
}

func (s *stubTiles) InvalidatePoint(kind models.QueryKind, lat, lon float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invalidations = append(s.invalidations, invalidation{kind: kind, lat: lat, lon: lon})
	return true
}

func ptr[T any](v T) *T { return &v }
