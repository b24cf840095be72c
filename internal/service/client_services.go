// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-field-sync/internal/adapter"
	"github.com/MKhiriev/go-field-sync/internal/config"
	"github.com/MKhiriev/go-field-sync/internal/discovery"
	"github.com/MKhiriev/go-field-sync/internal/events"
	"github.com/MKhiriev/go-field-sync/internal/logger"
	"github.com/MKhiriev/go-field-sync/internal/osm"
	"github.com/MKhiriev/go-field-sync/internal/store"
)

// ClientServices groups the field device services. Every service shares the
// same data store handle, adapter and emitter.
type ClientServices struct {
	Peers        PeerService
	Meta         MetaService
	Sync         SyncService
	Surveys      SurveyService
	Observations ObservationService
	Tiles        TileService
	Bbox         BboxService
}

// ClientDeps are the handles the client services are built over.
type ClientDeps struct {
	Finder    discovery.PeerFinder
	Adapter   adapter.PeerAdapter
	DataStore osm.DataStore
	Surveys   store.SurveyRepository
	State     StateReader
	Emitter   events.Emitter
}

func NewClientServices(deps ClientDeps, cfg *config.ClientConfig, log *logger.Logger) *ClientServices {
	peers := NewPeerService(deps.Finder, cfg.Discovery.Fallback, deps.Emitter, log.WithComponent("peers"))
	meta := NewMetaService(peers, deps.Adapter, deps.Emitter, log.WithComponent("meta"))
	tiles := NewTileService(deps.DataStore, cfg.Map.TileZoom, cfg.Map.MaxTilesPerPass, deps.Emitter, log.WithComponent("tiles"))

	return &ClientServices{
		Peers:        peers,
		Meta:         meta,
		Sync:         NewSyncService(meta, deps.DataStore, deps.State, deps.Emitter, log.WithComponent("sync")),
		Surveys:      NewSurveyService(peers, deps.Adapter, deps.Surveys, deps.Emitter, log.WithComponent("surveys")),
		Observations: NewObservationService(deps.DataStore, tiles, deps.Emitter, log.WithComponent("observations")),
		Tiles:        tiles,
		Bbox:         NewBboxService(deps.DataStore, deps.Emitter, log.WithComponent("bbox")),
	}
}
