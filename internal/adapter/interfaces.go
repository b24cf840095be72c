// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client's transport to a sync peer.
//
// The primary abstraction is [PeerAdapter], which decouples the service layer
// from HTTP. Error values defined in errors.go are mapped from HTTP status
// codes and transport failures so that callers can use [errors.Is] to tell a
// timeout ([ErrTimeout]) from an unreachable peer ([ErrPeerUnreachable]).
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/go-field-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/peer_adapter_mock.go -package=mock

// PeerAdapter talks to the HTTP endpoints of a sync peer.
type PeerAdapter interface {
	// FetchMeta fetches GET /osm/meta. Any non-200 response yields an empty
	// meta object and no error. Bounded by the request timeout.
	FetchMeta(ctx context.Context, target models.PeerTarget) (map[string]any, error)

	// ListSurveys fetches GET /surveys/list. Bounded by the request timeout.
	ListSurveys(ctx context.Context, target models.PeerTarget) ([]map[string]any, error)

	// FetchBundle opens GET {surveyURL}/bundle and returns the archive body
	// for streaming. The request timeout bounds the wait for the response
	// headers, not the body. The caller closes the returned reader.
	FetchBundle(ctx context.Context, surveyURL string) (io.ReadCloser, error)

	// FetchFeatures fetches one page of GET /osm/features. Not bounded by
	// the request timeout. Returns [ErrDatasetChanged] when the peer's
	// dataset no longer matches req.DatasetUUID.
	FetchFeatures(ctx context.Context, target models.PeerTarget, req models.PageRequest) (models.FeaturePage, error)

	// FetchObservations fetches one page of GET /observations. Not bounded
	// by the request timeout.
	FetchObservations(ctx context.Context, target models.PeerTarget, req models.PageRequest) (models.ObservationPage, error)

	// PushObservations posts observations to POST /observations. Not
	// bounded by the request timeout.
	PushObservations(ctx context.Context, target models.PeerTarget, observations []models.Observation) error
}
