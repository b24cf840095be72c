// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveRequest(t *testing.T) {
	m := NewHTTP()

	m.ObserveRequest("/osm/features", http.MethodGet, http.StatusOK, 20*time.Millisecond)
	m.ObserveRequest("/osm/features", http.MethodGet, http.StatusOK, 30*time.Millisecond)
	m.ObserveRequest("/osm/features", http.MethodGet, http.StatusConflict, time.Millisecond)
	m.ObserveRequest("", http.MethodGet, http.StatusNotFound, time.Millisecond)

	assert.InDelta(t, 2, testutil.ToFloat64(m.requests.WithLabelValues("/osm/features", "GET", "200")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.requests.WithLabelValues("/osm/features", "GET", "409")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.requests.WithLabelValues("unmatched", "GET", "404")), 0)
}

func TestAddRecords(t *testing.T) {
	m := NewHTTP()

	m.AddRecords("features", Served, 500)
	m.AddRecords("features", Served, 20)
	m.AddRecords("observations", Accepted, 0)

	assert.InDelta(t, 520, testutil.ToFloat64(m.records.WithLabelValues("features", Served)), 0)
	assert.Equal(t, 1, testutil.CollectAndCount(m.records))
}

func TestHandler_ExposesCollectors(t *testing.T) {
	m := NewHTTP()
	m.ObserveRequest("/osm/meta", http.MethodGet, http.StatusOK, time.Millisecond)

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	text := string(body)
	assert.True(t, strings.Contains(text, `field_sync_http_requests_total{method="GET",route="/osm/meta",status="200"} 1`))
	assert.Contains(t, text, "go_goroutines")
}

func TestNewHTTP_IndependentRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		_ = NewHTTP()
		_ = NewHTTP()
	})
	assert.NotSame(t, NewHTTP().Registry(), NewHTTP().Registry())
}
