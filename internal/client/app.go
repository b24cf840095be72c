// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-field-sync/internal/adapter"
	"github.com/MKhiriev/go-field-sync/internal/config"
	"github.com/MKhiriev/go-field-sync/internal/discovery"
	"github.com/MKhiriev/go-field-sync/internal/events"
	"github.com/MKhiriev/go-field-sync/internal/logger"
	"github.com/MKhiriev/go-field-sync/internal/osm"
	"github.com/MKhiriev/go-field-sync/internal/service"
	"github.com/MKhiriev/go-field-sync/internal/state"
	"github.com/MKhiriev/go-field-sync/internal/store"
	"github.com/MKhiriev/go-field-sync/internal/utils"
	"github.com/MKhiriev/go-field-sync/models"
)

type App struct {
	services *service.ClientServices
	state    *state.Store
	bus      *events.Bus
	storages *store.Storages
	build    models.AppBuildInfo

	out    io.Writer
	logger *logger.Logger
}

// NewApp opens the local store, restores the persisted client state and
// builds the client services around a shared event bus.
func NewApp(ctx context.Context, cfg *config.ClientConfig, build models.AppBuildInfo, log *logger.Logger) (*App, error) {
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	peerAdapter, err := adapter.NewHTTPPeerAdapter(cfg.Adapter, log.WithComponent("adapter"))
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("create peer adapter: %w", err)
	}

	bus := events.NewBus()
	st := state.NewStore(storages.SyncState, log)
	if err = st.Load(ctx); err != nil {
		storages.Close()
		return nil, fmt.Errorf("restore client state: %w", err)
	}

	services := service.NewClientServices(service.ClientDeps{
		Finder:    discovery.NewDialingFinder(cfg.Discovery.Peers, cfg.Adapter.RequestTimeout, log.WithComponent("discovery")),
		Adapter:   peerAdapter,
		DataStore: osm.NewDataStore(storages, peerAdapter, bus, cfg.Adapter.PageSize, log),
		Surveys:   storages.Surveys,
		State:     st,
		Emitter:   bus,
	}, cfg, log)

	app := newApp(services, st, bus, os.Stdout, log)
	app.storages = storages
	app.build = build

	return app, nil
}

// newApp subscribes the state and the tile cache to bus.
func newApp(services *service.ClientServices, st *state.Store, bus *events.Bus, out io.Writer, log *logger.Logger) *App {
	a := &App{
		services: services,
		state:    st,
		bus:      bus,
		out:      out,
		logger:   log,
	}

	bus.Subscribe(st.Apply)
	bus.Subscribe(a.onDataChanged)

	return a
}

// onDataChanged drops cached feature tiles after the local dataset was
// replaced, so the next viewport pass queries them again.
func (a *App) onDataChanged(event models.Event) {
	if event.Type == models.OSMDataChanged {
		a.services.Tiles.Reset(models.QueryFeatures)
	}
}

// Run executes one command. Every invocation carries its own trace id,
// which is logged and forwarded to the peer.
func (a *App) Run(ctx context.Context, args []string) error {
	traceID := uuid.NewString()
	log := a.logger.With().Str("trace_id", traceID).Logger()
	ctx = utils.WithTraceID(log.WithContext(ctx), traceID)

	root := a.rootCommand()
	root.SetArgs(args)
	root.SetOut(a.out)
	root.SetErr(a.out)

	log.Info().Strs("args", args).Msg("running command")
	if err := root.ExecuteContext(ctx); err != nil {
		log.Err(err).Str("func", "*App.Run").Msg("command failed")
		return err
	}

	// tile queries outlive the command context
	a.services.Tiles.Wait()
	return nil
}

func (a *App) Close() error {
	return a.storages.Close()
}
