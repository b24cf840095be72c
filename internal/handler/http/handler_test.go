// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-field-sync/internal/metrics"
	"github.com/MKhiriev/go-field-sync/internal/service"
	"github.com/MKhiriev/go-field-sync/internal/store"
	"github.com/MKhiriev/go-field-sync/internal/validators"
	"github.com/MKhiriev/go-field-sync/models"
)

func serve(router http.Handler, method, target string, body io.Reader, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// ── Meta ─────────────────────────────────────────────────────────────────────

func TestGetMeta(t *testing.T) {
	tests := []struct {
		name       string
		meta       map[string]any
		err        error
		wantStatus int
	}{
		{name: "imported dataset", meta: map[string]any{"uuid": "ds-1", "features": 2}, wantStatus: http.StatusOK},
		{name: "nothing imported", err: service.ErrNoDataset, wantStatus: http.StatusNotFound},
		{name: "store failure", err: fmt.Errorf("%w: boom", store.ErrExecutingQuery), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, ts := newTestRouter(t, nil)
			ts.dataset.meta = func(context.Context) (map[string]any, error) { return tt.meta, tt.err }

			rr := serve(router, http.MethodGet, "/osm/meta", nil, nil)
			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.err != nil {
				return
			}

			var got map[string]any
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			assert.Equal(t, "ds-1", got["uuid"])
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
		})
	}
}

// ── Features ─────────────────────────────────────────────────────────────────

func TestGetFeatures_PassesPageAndPin(t *testing.T) {
	router, ts := newTestRouter(t, nil)

	var gotReq models.PageRequest
	lat, lon := 55.75, 37.61
	ts.dataset.page = func(_ context.Context, req models.PageRequest) (models.FeaturePage, error) {
		gotReq = req
		return models.FeaturePage{
			Total:    3,
			UUID:     "ds-1",
			Features: []models.Feature{{ID: "n1", Type: models.FeatureTypeNode, Lat: &lat, Lon: &lon, Version: 1}},
		}, nil
	}

	rr := serve(router, http.MethodGet, "/osm/features?offset=2&limit=1", nil,
		map[string]string{models.DatasetUUIDHeader: "ds-1"})
	require.Equal(t, http.StatusOK, rr.Code)

	assert.Equal(t, models.PageRequest{Offset: 2, Limit: 1, DatasetUUID: "ds-1"}, gotReq)

	var page models.FeaturePage
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &page))
	assert.Equal(t, 3, page.Total)
	require.Len(t, page.Features, 1)
	assert.Equal(t, "n1", page.Features[0].ID)
}

func TestGetFeatures_DefaultLimit(t *testing.T) {
	router, ts := newTestRouter(t, nil)

	var gotReq models.PageRequest
	ts.dataset.page = func(_ context.Context, req models.PageRequest) (models.FeaturePage, error) {
		gotReq = req
		return models.FeaturePage{}, nil
	}

	rr := serve(router, http.MethodGet, "/osm/features", nil, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, models.PageRequest{Limit: DefaultPageLimit}, gotReq)
}

func TestGetFeatures_Errors(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		err        error
		wantStatus int
	}{
		{name: "offset not a number", target: "/osm/features?offset=abc", wantStatus: http.StatusBadRequest},
		{name: "limit not a number", target: "/osm/features?limit=1.5", wantStatus: http.StatusBadRequest},
		{
			name:       "limit out of range",
			target:     "/osm/features?limit=999999",
			err:        fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidLimit),
			wantStatus: http.StatusBadRequest,
		},
		{name: "dataset replaced", target: "/osm/features", err: service.ErrDatasetMismatch, wantStatus: http.StatusConflict},
		{name: "store failure", target: "/osm/features", err: store.ErrScanningRows, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, ts := newTestRouter(t, nil)
			ts.dataset.page = func(context.Context, models.PageRequest) (models.FeaturePage, error) {
				return models.FeaturePage{}, tt.err
			}

			rr := serve(router, http.MethodGet, tt.target, nil, nil)
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

// ── Observations ─────────────────────────────────────────────────────────────

func TestGetObservations(t *testing.T) {
	router, ts := newTestRouter(t, nil)

	ts.observations.page = func(_ context.Context, req models.PageRequest) (models.ObservationPage, error) {
		assert.Equal(t, models.PageRequest{Offset: 10, Limit: 5}, req)
		return models.ObservationPage{Total: 11, Observations: []models.Observation{{ID: "o11", Version: 2}}}, nil
	}

	rr := serve(router, http.MethodGet, "/observations?offset=10&limit=5", nil, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var page models.ObservationPage
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &page))
	assert.Equal(t, 11, page.Total)
	assert.Equal(t, "o11", page.Observations[0].ID)
}

func TestPostObservations(t *testing.T) {
	router, ts := newTestRouter(t, nil)

	var got []models.Observation
	ts.observations.accept = func(_ context.Context, observations []models.Observation) (int, error) {
		got = observations
		return 1, nil
	}

	body := `[{"id":"o1","lat":55.75,"lon":37.61,"created_at":"2026-05-01T12:00:00Z","version":2}]`
	rr := serve(router, http.MethodPost, "/observations", strings.NewReader(body), nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"accepted":1}`, rr.Body.String())

	require.Len(t, got, 1)
	assert.Equal(t, "o1", got[0].ID)
	assert.Equal(t, int64(2), got[0].Version)
}

func TestPostObservations_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{name: "malformed json", body: `[{"id":`, wantStatus: http.StatusBadRequest},
		{name: "unknown field", body: `[{"id":"o1","colour":"red"}]`, wantStatus: http.StatusBadRequest},
		{name: "trailing data", body: `[] []`, wantStatus: http.StatusBadRequest},
		{
			name:       "rejected by validation",
			body:       `[]`,
			err:        fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrEmptyRecords),
			wantStatus: http.StatusBadRequest,
		},
		{name: "duplicate", body: `[]`, err: store.ErrObservationExists, wantStatus: http.StatusConflict},
		{name: "store failure", body: `[]`, err: store.ErrBeginningTransaction, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, ts := newTestRouter(t, nil)
			ts.observations.accept = func(context.Context, []models.Observation) (int, error) {
				return 0, tt.err
			}

			rr := serve(router, http.MethodPost, "/observations", strings.NewReader(tt.body), nil)
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

// ── Surveys ──────────────────────────────────────────────────────────────────

func TestListSurveys(t *testing.T) {
	router, ts := newTestRouter(t, nil)
	ts.surveys.list = func(context.Context) ([]map[string]any, error) {
		return []map[string]any{{"id": "trees", "name": "Trees"}}, nil
	}

	rr := serve(router, http.MethodGet, "/surveys/list", nil, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[{"id":"trees","name":"Trees"}]`, rr.Body.String())
}

func TestGetSurveyBundle(t *testing.T) {
	router, ts := newTestRouter(t, nil)

	var gotID string
	ts.surveys.write = func(_ context.Context, id string, w io.Writer) error {
		gotID = id
		_, err := w.Write([]byte("tar-bytes"))
		return err
	}

	rr := serve(router, http.MethodGet, "/surveys/trees/bundle", nil, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "trees", gotID)
	assert.Equal(t, BundleContentType, rr.Header().Get("Content-Type"))
	assert.Equal(t, "tar-bytes", rr.Body.String())
}

func TestGetSurveyBundle_NotFound(t *testing.T) {
	router, ts := newTestRouter(t, nil)
	ts.surveys.write = func(context.Context, string, io.Writer) error {
		return store.ErrSurveyNotFound
	}

	rr := serve(router, http.MethodGet, "/surveys/ghost/bundle", nil, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.NotEqual(t, BundleContentType, rr.Header().Get("Content-Type"))
}

func TestGetSurveyBundle_FailureAfterStreamStarted(t *testing.T) {
	router, ts := newTestRouter(t, nil)
	ts.surveys.write = func(_ context.Context, _ string, w io.Writer) error {
		_, _ = w.Write([]byte("partial"))
		return errors.New("disk gone")
	}

	rr := serve(router, http.MethodGet, "/surveys/trees/bundle", nil, nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "partial", rr.Body.String())
}

// ── Version ──────────────────────────────────────────────────────────────────

func TestVersionEndpoints(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	rr := serve(router, http.MethodGet, "/api/version/", nil, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "1.2.0", rr.Body.String())
	assert.Equal(t, "text/plain", rr.Header().Get("Content-Type"))

	rr = serve(router, http.MethodGet, "/api/version/build", nil, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"version":"v1.2.0","date":"2026-05-01","commit":"abc123"}`, rr.Body.String())
}

// ── Metrics ──────────────────────────────────────────────────────────────────

func TestMetrics_RecordsRoutesAndTransfers(t *testing.T) {
	m := metrics.NewHTTP()
	router, ts := newTestRouter(t, m)

	ts.dataset.page = func(context.Context, models.PageRequest) (models.FeaturePage, error) {
		return models.FeaturePage{Total: 2, Features: make([]models.Feature, 2)}, nil
	}
	ts.surveys.write = func(context.Context, string, io.Writer) error { return store.ErrSurveyNotFound }

	serve(router, http.MethodGet, "/osm/features", nil, nil)
	serve(router, http.MethodGet, "/surveys/a/bundle", nil, nil)
	serve(router, http.MethodGet, "/surveys/b/bundle", nil, nil)

	rr := serve(router, http.MethodGet, "/metrics", nil, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	text := rr.Body.String()

	assert.Contains(t, text, `field_sync_http_requests_total{method="GET",route="/osm/features",status="200"} 1`)
	assert.Contains(t, text, `field_sync_http_requests_total{method="GET",route="/surveys/{id}/bundle",status="404"} 2`)
	assert.InDelta(t, 2, counterFor(t, m, "features"), 0)
}

func counterFor(t *testing.T, m *metrics.HTTP, kind string) float64 {
	t.Helper()
	families, err := m.Registry().Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != "field_sync_records_transferred_total" {
			continue
		}
		for _, metric := range mf.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == "kind" && label.GetValue() == kind {
					return metric.GetCounter().GetValue()
				}
			}
		}
	}
	return 0
}

func TestMetrics_DisabledWithoutCollector(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	rr := serve(router, http.MethodGet, "/metrics", nil, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
