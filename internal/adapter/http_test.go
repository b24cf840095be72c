// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/MKhiriev/go-field-sync/internal/config"
	"github.com/MKhiriev/go-field-sync/internal/logger"
	"github.com/MKhiriev/go-field-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, timeout time.Duration) PeerAdapter {
	t.Helper()
	a, err := NewHTTPPeerAdapter(config.ClientAdapter{RequestTimeout: timeout, PageSize: 10}, logger.Nop())
	require.NoError(t, err)
	return a
}

func targetOf(t *testing.T, srv *httptest.Server) models.PeerTarget {
	t.Helper()
	host, portStr, err := net.SplitHostPort(srv.Listener.Addr().String())
	require.NoError(t, err)
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)
	return models.PeerTarget{Address: host, Port: port}
}

func TestNewHTTPPeerAdapter_RejectsZeroTimeout(t *testing.T) {
	_, err := NewHTTPPeerAdapter(config.ClientAdapter{}, logger.Nop())

	assert.ErrorIs(t, err, config.ErrInvalidAdapterConfigs)
}

// ── FetchMeta ────────────────────────────────────────────────────────────────

func TestFetchMeta_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/osm/meta", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"uuid":"abc","name":"area"}`))
	}))
	defer srv.Close()

	meta, err := newTestAdapter(t, time.Second).FetchMeta(context.Background(), targetOf(t, srv))

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"uuid": "abc", "name": "area"}, meta)
}

func TestFetchMeta_Non200IsEmptyMeta(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusInternalServerError, http.StatusNoContent} {
		t.Run(strconv.Itoa(status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
			}))
			defer srv.Close()

			meta, err := newTestAdapter(t, time.Second).FetchMeta(context.Background(), targetOf(t, srv))

			require.NoError(t, err)
			assert.NotNil(t, meta)
			assert.Empty(t, meta)
		})
	}
}

func TestFetchMeta_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	start := time.Now()
	_, err := newTestAdapter(t, 50*time.Millisecond).FetchMeta(context.Background(), targetOf(t, srv))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTimeout)
	assert.NotErrorIs(t, err, ErrPeerUnreachable)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestFetchMeta_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	target := targetOf(t, srv)
	srv.Close()

	_, err := newTestAdapter(t, time.Second).FetchMeta(context.Background(), target)

	assert.ErrorIs(t, err, ErrPeerUnreachable)
	assert.NotErrorIs(t, err, ErrTimeout)
}

func TestFetchMeta_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, time.Second).FetchMeta(context.Background(), targetOf(t, srv))

	assert.ErrorIs(t, err, ErrMalformedResponse)
}

// ── ListSurveys ──────────────────────────────────────────────────────────────

func TestListSurveys_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/surveys/list", r.URL.Path)
		_, _ = w.Write([]byte(`[{"id":"a","name":"A"},{"id":"b"}]`))
	}))
	defer srv.Close()

	list, err := newTestAdapter(t, time.Second).ListSurveys(context.Background(), targetOf(t, srv))

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0]["id"])
	assert.Equal(t, "A", list[0]["name"])
}

func TestListSurveys_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, time.Second).ListSurveys(context.Background(), targetOf(t, srv))

	assert.ErrorIs(t, err, ErrInternalServerError)
}

// ── FetchBundle ──────────────────────────────────────────────────────────────

func TestFetchBundle_StreamsPastTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/surveys/s1/bundle", r.URL.Path)
		w.Header().Set("Content-Type", "application/x-tar")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("first-"))
		w.(http.Flusher).Flush()
		time.Sleep(150 * time.Millisecond)
		_, _ = w.Write([]byte("second"))
	}))
	defer srv.Close()

	body, err := newTestAdapter(t, 50*time.Millisecond).
		FetchBundle(context.Background(), srv.URL+"/surveys/s1/")
	require.NoError(t, err)
	defer body.Close()

	data, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, "first-second", string(data))
}

func TestFetchBundle_HeaderTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	_, err := newTestAdapter(t, 50*time.Millisecond).FetchBundle(context.Background(), srv.URL+"/surveys/s1")

	assert.ErrorIs(t, err, ErrTimeout)
}

func TestFetchBundle_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such survey", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, time.Second).FetchBundle(context.Background(), srv.URL+"/surveys/x")

	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "no such survey")
}

// ── replication transport ────────────────────────────────────────────────────

func TestFetchFeatures_PinsDataset(t *testing.T) {
	lat, lon := 1.5, 2.5
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/osm/features", r.URL.Path)
		assert.Equal(t, "20", r.URL.Query().Get("offset"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		assert.Equal(t, "ds-1", r.Header.Get(DatasetHeader))
		_ = json.NewEncoder(w).Encode(models.FeaturePage{
			Total:    21,
			UUID:     "ds-1",
			Features: []models.Feature{{ID: "n1", Type: "node", Lat: &lat, Lon: &lon, Version: 2}},
		})
	}))
	defer srv.Close()

	page, err := newTestAdapter(t, time.Second).FetchFeatures(context.Background(), targetOf(t, srv),
		models.PageRequest{Offset: 20, Limit: 10, DatasetUUID: "ds-1"})

	require.NoError(t, err)
	assert.Equal(t, 21, page.Total)
	require.Len(t, page.Features, 1)
	assert.Equal(t, "n1", page.Features[0].ID)
}

func TestFetchFeatures_DatasetChanged(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "dataset changed", http.StatusConflict)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, time.Second).FetchFeatures(context.Background(), targetOf(t, srv),
		models.PageRequest{Limit: 10, DatasetUUID: "old"})

	assert.ErrorIs(t, err, ErrDatasetChanged)
}

func TestFetchFeatures_NoRequestTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(120 * time.Millisecond)
		_, _ = w.Write([]byte(`{"total":0,"features":[]}`))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, 20*time.Millisecond).FetchFeatures(context.Background(), targetOf(t, srv),
		models.PageRequest{Limit: 10})

	assert.NoError(t, err)
}

func TestFetchObservations_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/observations", r.URL.Path)
		_, _ = w.Write([]byte(`{"total":1,"observations":[{"id":"o1","lat":1,"lon":2,"version":1}]}`))
	}))
	defer srv.Close()

	page, err := newTestAdapter(t, time.Second).FetchObservations(context.Background(), targetOf(t, srv),
		models.PageRequest{Limit: 10})

	require.NoError(t, err)
	require.Len(t, page.Observations, 1)
	assert.Equal(t, "o1", page.Observations[0].ID)
}

func TestPushObservations(t *testing.T) {
	var got []models.Observation
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdapter(t, time.Second)
	err := a.PushObservations(context.Background(), targetOf(t, srv), []models.Observation{{ID: "o1"}})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "o1", got[0].ID)
}

func TestPushObservations_EmptyIsNoop(t *testing.T) {
	err := newTestAdapter(t, time.Second).PushObservations(context.Background(),
		models.PeerTarget{Address: "127.0.0.1", Port: 1}, nil)

	assert.NoError(t, err)
}

func TestMapTransportError_Canceled(t *testing.T) {
	err := mapTransportError("op", context.Canceled)

	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrTimeout)
	assert.NotErrorIs(t, err, ErrPeerUnreachable)
}
