// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/paulmach/orb/maptile"

	"github.com/MKhiriev/go-field-sync/models"
)

// PeerService resolves the sync target.
type PeerService interface {
	// Resolve asks the peer finder for reachable peers and returns the first
	// one, or the configured fallback when there are none. A finder error is
	// returned wrapped in [ErrDiscovery]; there are no retries.
	Resolve(ctx context.Context) (models.PeerTarget, error)
}

// MetaService decides whether the local dataset is stale.
type MetaService interface {
	// Compare fetches the peer's meta and compares its uuid with local.
	// A nil or incomplete target is resolved first. A nil local area always
	// requires a full import.
	Compare(ctx context.Context, target *models.PeerTarget, local *models.AreaOfInterest) (models.MetaComparison, error)
}

// SyncService drives replication.
type SyncService interface {
	// Replicate runs a full or observations-only replication against
	// target and blocks until it finishes. The terminal outcome is also
	// reported through events.
	Replicate(ctx context.Context, target *models.PeerTarget) error
}

// SurveyService manages remote and local survey bundles.
type SurveyService interface {
	ListRemoteSurveys(ctx context.Context) ([]models.RemoteSurvey, error)
	// FetchRemoteSurvey downloads the bundle at surveyURL, extracts it and
	// stores it locally under id.
	FetchRemoteSurvey(ctx context.Context, id, surveyURL string) (models.SurveyBundle, error)
	ClearRemoteSurveys()

	LocalSurveys(ctx context.Context) ([]models.LocalSurvey, error)
	DeleteLocalSurvey(ctx context.Context, id string) error
	ClearLocalSurveys(ctx context.Context) error
}

// ObservationService edits and stores observations.
type ObservationService interface {
	Initialize(observation models.Observation)
	SetActive(observation *models.Observation)
	Update(observation models.Observation)

	// Save assigns an id and creation time when missing, validates and
	// stores the observation. On success the observation tile containing it
	// is invalidated.
	Save(ctx context.Context, observation models.Observation) (models.Observation, error)
}

// TileService answers viewport queries tile by tile, at most one query per
// tile and kind at a time.
type TileService interface {
	// QueryTile issues a query for tile unless one is in flight or its
	// results are resident. It reports whether a query was issued.
	QueryTile(ctx context.Context, kind models.QueryKind, tile maptile.Tile) bool
	// UpdateVisibleBounds queries both kinds for every tile covering bounds
	// at the active zoom.
	UpdateVisibleBounds(ctx context.Context, bounds models.Bounds) error
	// Invalidate reverts a present tile to absent.
	Invalidate(kind models.QueryKind, key models.TileKey) bool
	// InvalidatePoint reverts the tile containing lat/lon at the active zoom.
	InvalidatePoint(kind models.QueryKind, lat, lon float64) bool
	// Reset reverts every present tile of kind.
	Reset(kind models.QueryKind)
	State(kind models.QueryKind, key models.TileKey) models.TileQueryState
	// Count returns how many tiles of kind are in state st. Absent tiles
	// are not tracked and always count as zero.
	Count(kind models.QueryKind, st models.TileQueryState) int
	Zoom() maptile.Zoom
	// Wait blocks until every issued query has completed.
	Wait()
}

// BboxService runs one-shot selections over arbitrary bounds.
type BboxService interface {
	SelectBbox(ctx context.Context, bounds models.Bounds) models.BboxSelection
	ClearBbox()
}

// StateReader is the part of the caller-owned state the sync service reads.
type StateReader interface {
	AreaOfInterest() *models.AreaOfInterest
	ObservationsLastSynced() time.Time
}
