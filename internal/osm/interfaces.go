// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package osm is the client's local record store: map features replicated
// from a peer and field observations. The services see it only through
// [DataStore]; the shipped implementation merges by "highest version wins"
// on the record id.
package osm

import (
	"context"
	"time"

	"github.com/MKhiriev/go-field-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/data_store_mock.go -package=mock

// ReplicateOptions tunes a full replication.
type ReplicateOptions struct {
	// DatasetUUID pins the transfer to the dataset the caller compared
	// against. Empty disables pinning.
	DatasetUUID string

	// Progress receives a tick after every transferred page. May be nil.
	Progress models.ProgressFunc
}

// DataStore is the handle the client services hold on the local store.
type DataStore interface {
	// Replicate pulls the peer's whole dataset and syncs observations both
	// ways. The pulled features replace the stored ones only once every page
	// has arrived; a failed transfer leaves the previous features in place.
	// It blocks until the transfer completes or fails.
	Replicate(ctx context.Context, target models.PeerTarget, opts ReplicateOptions) error

	// ReplicateObservations pushes observations written locally after since
	// and pulls the peer's observations.
	ReplicateObservations(ctx context.Context, target models.PeerTarget, since time.Time) error

	QueryFeatures(ctx context.Context, bounds models.Bounds) ([]models.Feature, error)
	QueryObservations(ctx context.Context, bounds models.Bounds) ([]models.Observation, error)

	// CreateObservation stores a new observation.
	CreateObservation(ctx context.Context, observation models.Observation) error
}
