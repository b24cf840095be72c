// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-field-sync/models"
)

// AppInfoService reports build information of the peer.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// DatasetService serves and replaces the peer's feature dataset.
type DatasetService interface {
	// Meta returns the fingerprint of the current dataset, or
	// [ErrNoDataset] when nothing was imported yet.
	Meta(ctx context.Context) (map[string]any, error)

	// FeaturesPage returns a window of features. A non-empty
	// req.DatasetUUID that no longer names the current dataset yields
	// [ErrDatasetMismatch].
	FeaturesPage(ctx context.Context, req models.PageRequest) (models.FeaturePage, error)

	// ImportFeatures replaces the dataset with the features of a GeoJSON
	// FeatureCollection and mints a new dataset uuid.
	ImportFeatures(ctx context.Context, r io.Reader, source string) (map[string]any, error)
}

// ObservationExchangeService exchanges observations with field devices.
type ObservationExchangeService interface {
	ObservationsPage(ctx context.Context, req models.PageRequest) (models.ObservationPage, error)
	// AcceptObservations merges pushed observations and returns how many
	// rows changed.
	AcceptObservations(ctx context.Context, observations []models.Observation) (int, error)
}

// ObservationExchangeServiceWrapper decorates an ObservationExchangeService,
// e.g. with input validation.
type ObservationExchangeServiceWrapper interface {
	Wrap(ObservationExchangeService) ObservationExchangeService
}

// SurveyCatalogService serves survey bundles.
type SurveyCatalogService interface {
	// ListSurveys returns one entry per stored survey: its definition
	// fields plus "id".
	ListSurveys(ctx context.Context) ([]map[string]any, error)

	// WriteBundle streams the stored survey as a tar bundle to w.
	WriteBundle(ctx context.Context, id string, w io.Writer) error

	// ImportSurvey extracts a tar bundle and stores it under id.
	ImportSurvey(ctx context.Context, id string, r io.Reader) (models.SurveyBundle, error)
}
