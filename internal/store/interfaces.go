// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-field-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// FeatureRepository stores map features.
type FeatureRepository interface {
	// QueryRegion returns the positioned features inside bounds.
	QueryRegion(ctx context.Context, bounds models.Bounds) ([]models.Feature, error)
	// Page returns features ordered by id.
	Page(ctx context.Context, offset, limit int) ([]models.Feature, error)
	Count(ctx context.Context) (int, error)
	// Replace drops every stored feature and inserts features in one
	// transaction.
	Replace(ctx context.Context, features []models.Feature) error
	// Analyze refreshes the planner statistics after bulk writes.
	Analyze(ctx context.Context) error
}

// ObservationRepository stores field observations.
type ObservationRepository interface {
	// Create inserts a new observation. A duplicate id yields
	// [ErrObservationExists].
	Create(ctx context.Context, observation models.Observation) error
	// Upsert inserts observations or replaces stored ones with a higher
	// version. It returns the number of rows written.
	Upsert(ctx context.Context, observations []models.Observation) (int, error)
	QueryRegion(ctx context.Context, bounds models.Bounds) ([]models.Observation, error)
	Page(ctx context.Context, offset, limit int) ([]models.Observation, error)
	Count(ctx context.Context) (int, error)
	// ModifiedSince returns observations written locally after t.
	ModifiedSince(ctx context.Context, t time.Time) ([]models.Observation, error)
}

// SurveyRepository stores survey bundles.
type SurveyRepository interface {
	// Save stores bundle, replacing a stored survey with the same id.
	Save(ctx context.Context, bundle models.SurveyBundle) error
	// Get returns the stored bundle or [ErrSurveyNotFound].
	Get(ctx context.Context, id string) (models.SurveyBundle, error)
	List(ctx context.Context) ([]models.LocalSurvey, error)
	// Delete removes the survey or returns [ErrSurveyNotFound].
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) error
}

// SyncStateRepository is a small JSON key/value table holding the client's
// durable sync state and the peer's dataset meta.
type SyncStateRepository interface {
	// Get decodes the value stored under key into dst. It reports false when
	// the key is absent.
	Get(ctx context.Context, key string, dst any) (bool, error)
	Put(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, key string) error

	SaveAreaOfInterest(ctx context.Context, aoi *models.AreaOfInterest) error
	SaveObservationsLastSynced(ctx context.Context, at time.Time) error
	SaveCoordinatorTarget(ctx context.Context, target models.PeerTarget) error
	LoadAreaOfInterest(ctx context.Context) (*models.AreaOfInterest, error)
	LoadObservationsLastSynced(ctx context.Context) (time.Time, error)
	LoadCoordinatorTarget(ctx context.Context) (*models.PeerTarget, error)
}
