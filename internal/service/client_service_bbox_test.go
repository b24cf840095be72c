// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-field-sync/internal/events"
	"github.com/MKhiriev/go-field-sync/internal/logger"
	"github.com/MKhiriev/go-field-sync/internal/mock"
	"github.com/MKhiriev/go-field-sync/models"
)

var bbox = models.Bounds{West: 37.60, South: 55.74, East: 37.63, North: 55.76}

func TestBboxService_SelectBbox(t *testing.T) {
	tests := []struct {
		name         string
		features     []models.Feature
		featuresErr  error
		observations []models.Observation
		obsErr       error
		wantFeatures []string
		wantObs      int
		wantFailures []models.EventType
	}{
		{
			name: "both branches succeed",
			features: []models.Feature{
				namedNode("n1", "Oak", 55.75, 37.61),
				namedNode("n2", "", 55.75, 37.61),
			},
			observations: []models.Observation{{ID: "o1", Lat: 55.75, Lon: 37.61}},
			wantFeatures: []string{"n1"},
			wantObs:      1,
		},
		{
			name:         "feature branch fails",
			featuresErr:  errors.New("database is locked"),
			observations: []models.Observation{{ID: "o1"}, {ID: "o2"}},
			wantFeatures: []string{},
			wantObs:      2,
			wantFailures: []models.EventType{models.BboxFeatureSelectionFailed},
		},
		{
			name:         "observation branch fails",
			features:     []models.Feature{namedNode("n1", "Oak", 55.75, 37.61)},
			obsErr:       errors.New("database is locked"),
			wantFeatures: []string{"n1"},
			wantFailures: []models.EventType{models.BboxObservationSelectionFailed},
		},
		{
			name:         "both fail",
			featuresErr:  errors.New("boom"),
			obsErr:       errors.New("boom"),
			wantFeatures: []string{},
			wantFailures: []models.EventType{models.BboxFeatureSelectionFailed, models.BboxObservationSelectionFailed},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			dataStore := mock.NewMockDataStore(ctrl)
			rec := &events.Recorder{}
			svc := NewBboxService(dataStore, rec, logger.Nop())

			dataStore.EXPECT().QueryFeatures(gomock.Any(), bbox).Return(tt.features, tt.featuresErr)
			dataStore.EXPECT().QueryObservations(gomock.Any(), bbox).Return(tt.observations, tt.obsErr)

			got := svc.SelectBbox(context.Background(), bbox)

			ids := make([]string, 0, len(got.Features))
			for _, f := range got.Features {
				ids = append(ids, f.ID)
			}
			assert.Equal(t, tt.wantFeatures, ids)
			assert.NotNil(t, got.Observations)
			assert.Len(t, got.Observations, tt.wantObs)
			assert.Equal(t, bbox, got.Bounds)

			types := rec.Types()
			require.NotEmpty(t, types)
			assert.Equal(t, models.SelectBbox, types[0])
			assert.Equal(t, models.BboxSelected, types[len(types)-1])
			assert.Len(t, rec.Filter(models.BboxSelected), 1)
			assert.ElementsMatch(t, tt.wantFailures, types[1:len(types)-1])

			for _, failed := range rec.Filter(models.BboxFeatureSelectionFailed) {
				assert.ErrorIs(t, failed.Err, ErrBboxQuery)
			}
		})
	}
}

func TestBboxService_ClearBbox(t *testing.T) {
	rec := &events.Recorder{}
	svc := NewBboxService(mock.NewMockDataStore(gomock.NewController(t)), rec, logger.Nop())

	svc.ClearBbox()
	assert.Equal(t, []models.EventType{models.BboxCleared}, rec.Types())
}
