// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/MKhiriev/go-field-sync/internal/logger"
	"github.com/MKhiriev/go-field-sync/internal/store"
	"github.com/MKhiriev/go-field-sync/internal/utils"
	"github.com/MKhiriev/go-field-sync/internal/validators"
	"github.com/MKhiriev/go-field-sync/models"
)

// Meta fields written on import besides the uuid.
const (
	MetaImportedAtField = "imported_at"
	MetaFeaturesField   = "features"
	MetaSourceField     = "source"
)

type datasetService struct {
	features  store.FeatureRepository
	syncState store.SyncStateRepository
	validator validators.Validator
	now       func() time.Time
	logger    *logger.Logger
}

// NewDatasetService builds the peer's [DatasetService]. The dataset meta is
// kept in syncState under store.KeyDatasetMeta.
func NewDatasetService(features store.FeatureRepository, syncState store.SyncStateRepository, logger *logger.Logger) DatasetService {
	return &datasetService{
		features:  features,
		syncState: syncState,
		validator: validators.NewRecordValidator(),
		now:       time.Now,
		logger:    logger,
	}
}

func (s *datasetService) Meta(ctx context.Context) (map[string]any, error) {
	var meta map[string]any
	ok, err := s.syncState.Get(ctx, store.KeyDatasetMeta, &meta)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNoDataset
	}
	return meta, nil
}

func (s *datasetService) FeaturesPage(ctx context.Context, req models.PageRequest) (models.FeaturePage, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		return models.FeaturePage{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	meta, err := s.Meta(ctx)
	if err != nil && !errors.Is(err, ErrNoDataset) {
		return models.FeaturePage{}, err
	}
	current := models.MetaUUID(meta)
	if req.DatasetUUID != "" && req.DatasetUUID != current {
		log.Info().Str("func", "*datasetService.FeaturesPage").
			Str("requested", req.DatasetUUID).
			Str("current", current).
			Msg("dataset changed during transfer")
		return models.FeaturePage{}, fmt.Errorf("%w: requested %s, serving %s", ErrDatasetMismatch, req.DatasetUUID, current)
	}

	total, err := s.features.Count(ctx)
	if err != nil {
		return models.FeaturePage{}, err
	}
	features, err := s.features.Page(ctx, req.Offset, req.Limit)
	if err != nil {
		return models.FeaturePage{}, err
	}

	return models.FeaturePage{Total: total, UUID: current, Features: features}, nil
}

func (s *datasetService) ImportFeatures(ctx context.Context, r io.Reader, source string) (map[string]any, error) {
	log := logger.FromContext(ctx)

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidImport, err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidImport, err)
	}

	features := make([]models.Feature, 0, len(fc.Features))
	for i, f := range fc.Features {
		feature := featureFromGeoJSON(f)
		if err = s.validator.Validate(ctx, feature); err != nil {
			return nil, fmt.Errorf("%w: feature %d: %w", ErrInvalidImport, i, err)
		}
		features = append(features, feature)
	}

	if err = s.features.Replace(ctx, features); err != nil {
		log.Err(err).Str("func", "*datasetService.ImportFeatures").Msg("error replacing features")
		return nil, err
	}
	if err = s.features.Analyze(ctx); err != nil {
		log.Warn().Err(err).Str("func", "*datasetService.ImportFeatures").Msg("error analyzing features")
	}

	meta := map[string]any{
		models.MetaUUIDField: utils.NewUUID(),
		MetaImportedAtField:  s.now().UTC().Format(time.RFC3339),
		MetaFeaturesField:    len(features),
		MetaSourceField:      source,
	}
	if err = s.syncState.Put(ctx, store.KeyDatasetMeta, meta); err != nil {
		return nil, err
	}

	log.Info().Str("func", "*datasetService.ImportFeatures").
		Str("dataset", models.MetaUUID(meta)).
		Int("features", len(features)).
		Msg("dataset imported")

	return meta, nil
}

// featureFromGeoJSON maps a GeoJSON feature onto a record. Points become
// nodes; any other geometry becomes a way positioned at its bound center.
// Properties are flattened into string tags, except "version".
func featureFromGeoJSON(f *geojson.Feature) models.Feature {
	feature := models.Feature{
		ID:      geoJSONID(f),
		Type:    "way",
		Tags:    make(map[string]string, len(f.Properties)),
		Version: 1,
	}

	if f.Geometry != nil {
		var p orb.Point
		if point, ok := f.Geometry.(orb.Point); ok {
			feature.Type = models.FeatureTypeNode
			p = point
		} else {
			p = f.Geometry.Bound().Center()
		}
		lat, lon := p.Lat(), p.Lon()
		feature.Lat, feature.Lon = &lat, &lon
	}

	for k, v := range f.Properties {
		switch {
		case v == nil:
		case k == "version":
			if n, ok := v.(float64); ok && n >= 1 && n == math.Trunc(n) {
				feature.Version = int64(n)
			}
		case k == "id":
		default:
			if s, ok := v.(string); ok {
				feature.Tags[k] = s
			} else {
				feature.Tags[k] = fmt.Sprint(v)
			}
		}
	}

	return feature
}

func geoJSONID(f *geojson.Feature) string {
	switch id := f.ID.(type) {
	case string:
		if id != "" {
			return id
		}
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	}

	if id, ok := f.Properties["id"].(string); ok && id != "" {
		return id
	}
	return utils.NewUUID()
}
