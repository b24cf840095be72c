// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-field-sync/internal/events"
	"github.com/MKhiriev/go-field-sync/internal/logger"
	"github.com/MKhiriev/go-field-sync/internal/mock"
	"github.com/MKhiriev/go-field-sync/internal/store"
	"github.com/MKhiriev/go-field-sync/internal/validators"
	"github.com/MKhiriev/go-field-sync/models"
)

func newTestObservationSvc(t *testing.T) (*observationService, *mock.MockDataStore, *stubTiles, *events.Recorder) {
	t.Helper()
	ctrl := gomock.NewController(t)
	dataStore := mock.NewMockDataStore(ctrl)
	tileSvc := &stubTiles{}
	rec := &events.Recorder{}

	svc := NewObservationService(dataStore, tileSvc, rec, logger.Nop()).(*observationService)
	svc.now = func() time.Time { return fixedNow }

	return svc, dataStore, tileSvc, rec
}

func TestObservationService_Drafts(t *testing.T) {
	svc, _, _, rec := newTestObservationSvc(t)

	draft := models.Observation{Lat: 55.75, Lon: 37.61, Properties: map[string]any{"species": "oak"}}
	svc.Initialize(draft)
	svc.SetActive(&draft)
	draft.Properties = map[string]any{"species": "birch"}
	svc.Update(draft)
	svc.SetActive(nil)

	assert.Equal(t, []models.EventType{
		models.ObservationInitialized,
		models.ActiveObservationSet,
		models.ObservationUpdated,
		models.ActiveObservationSet,
	}, rec.Types())

	set := rec.Filter(models.ActiveObservationSet)
	assert.Equal(t, "oak", set[0].Observation.Properties["species"])
	assert.Nil(t, set[1].Observation)
}

func TestObservationService_Save(t *testing.T) {
	svc, dataStore, tileSvc, rec := newTestObservationSvc(t)
	ctx := context.Background()

	var stored models.Observation
	dataStore.EXPECT().CreateObservation(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, o models.Observation) error {
		stored = o
		return nil
	})

	got, err := svc.Save(ctx, models.Observation{Lat: 55.75, Lon: 37.61})
	require.NoError(t, err)

	assert.NotEmpty(t, got.ID)
	assert.Equal(t, fixedNow, got.CreatedAt)
	assert.Equal(t, int64(1), got.Version)
	assert.Equal(t, got, stored)

	assert.Equal(t, []models.EventType{models.SavingObservation, models.ObservationSaved}, rec.Types())
	assert.Equal(t, []invalidation{{kind: models.QueryObservations, lat: 55.75, lon: 37.61}}, tileSvc.invalidations)
}

func TestObservationService_Save_KeepsProvidedFields(t *testing.T) {
	svc, dataStore, _, _ := newTestObservationSvc(t)
	created := fixedNow.Add(-time.Hour)
	obs := models.Observation{ID: "obs-1", Lat: 1, Lon: 2, CreatedAt: created, Version: 4}

	dataStore.EXPECT().CreateObservation(gomock.Any(), obs).Return(nil)

	got, err := svc.Save(context.Background(), obs)
	require.NoError(t, err)
	assert.Equal(t, obs, got)
}

func TestObservationService_Save_InvalidPosition(t *testing.T) {
	svc, _, tileSvc, rec := newTestObservationSvc(t)

	_, err := svc.Save(context.Background(), models.Observation{Lat: 91, Lon: 0})
	require.ErrorIs(t, err, ErrObservationSave)
	assert.ErrorIs(t, err, validators.ErrInvalidLatitude)

	assert.Equal(t, []models.EventType{models.SavingObservation, models.SavingObservationFailed}, rec.Types())
	assert.Empty(t, tileSvc.invalidations)
}

func TestObservationService_Save_Duplicate(t *testing.T) {
	svc, dataStore, tileSvc, rec := newTestObservationSvc(t)

	dataStore.EXPECT().CreateObservation(gomock.Any(), gomock.Any()).Return(store.ErrObservationExists)

	_, err := svc.Save(context.Background(), models.Observation{ID: "obs-1", Lat: 1, Lon: 1})
	require.ErrorIs(t, err, store.ErrObservationExists)
	assert.ErrorIs(t, err, ErrObservationSave)

	failed, ok := rec.Last(models.SavingObservationFailed)
	require.True(t, ok)
	assert.ErrorIs(t, failed.Err, store.ErrObservationExists)
	assert.Empty(t, tileSvc.invalidations)
}
