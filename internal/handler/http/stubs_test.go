// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-field-sync/internal/logger"
	"github.com/MKhiriev/go-field-sync/internal/metrics"
	"github.com/MKhiriev/go-field-sync/internal/service"
	"github.com/MKhiriev/go-field-sync/models"
)

// ---- Stub: AppInfoService ----

type stubAppInfo struct{}

func (stubAppInfo) GetAppVersion(context.Context) string { return "1.2.0" }

func (stubAppInfo) GetBuildInfo(context.Context) models.AppBuildInfo {
	return models.NewAppBuildInfo("v1.2.0", "2026-05-01", "abc123")
}

// ---- Stub: DatasetService ----

type stubDataset struct {
	meta     func(ctx context.Context) (map[string]any, error)
	page     func(ctx context.Context, req models.PageRequest) (models.FeaturePage, error)
	importFn func(ctx context.Context, r io.Reader, source string) (map[string]any, error)
}

func (s *stubDataset) Meta(ctx context.Context) (map[string]any, error) {
	return s.meta(ctx)
}

func (s *stubDataset) FeaturesPage(ctx context.Context, req models.PageRequest) (models.FeaturePage, error) {
	return s.page(ctx, req)
}

func (s *stubDataset) ImportFeatures(ctx context.Context, r io.Reader, source string) (map[string]any, error) {
	return s.importFn(ctx, r, source)
}

// ---- Stub: ObservationExchangeService ----

type stubObservations struct {
	page   func(ctx context.Context, req models.PageRequest) (models.ObservationPage, error)
	accept func(ctx context.Context, observations []models.Observation) (int, error)
}

func (s *stubObservations) ObservationsPage(ctx context.Context, req models.PageRequest) (models.ObservationPage, error) {
	return s.page(ctx, req)
}

func (s *stubObservations) AcceptObservations(ctx context.Context, observations []models.Observation) (int, error) {
	return s.accept(ctx, observations)
}

// ---- Stub: SurveyCatalogService ----

type stubSurveys struct {
	list     func(ctx context.Context) ([]map[string]any, error)
	write    func(ctx context.Context, id string, w io.Writer) error
	importFn func(ctx context.Context, id string, r io.Reader) (models.SurveyBundle, error)
}

func (s *stubSurveys) ListSurveys(ctx context.Context) ([]map[string]any, error) {
	return s.list(ctx)
}

func (s *stubSurveys) WriteBundle(ctx context.Context, id string, w io.Writer) error {
	return s.write(ctx, id, w)
}

func (s *stubSurveys) ImportSurvey(ctx context.Context, id string, r io.Reader) (models.SurveyBundle, error) {
	return s.importFn(ctx, id, r)
}

// ---- Helper ----

type testServices struct {
	dataset      *stubDataset
	observations *stubObservations
	surveys      *stubSurveys
}

// newTestRouter builds the full router over stubs. Every stub method panics
// unless the test sets it, which Recoverer turns into a 500.
func newTestRouter(t *testing.T, m *metrics.HTTP) (http.Handler, *testServices) {
	t.Helper()
	ts := &testServices{
		dataset:      &stubDataset{},
		observations: &stubObservations{},
		surveys:      &stubSurveys{},
	}
	h := NewHandler(&service.Services{
		AppInfo:      stubAppInfo{},
		Dataset:      ts.dataset,
		Observations: ts.observations,
		Surveys:      ts.surveys,
	}, m, 0, logger.Nop())

	return h.Init(), ts
}
