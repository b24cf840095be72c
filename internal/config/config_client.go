// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-field-sync/models"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// Version is the client version string.
	Version string
	// LogFile is the file the client logs to.
	LogFile string
}

// ClientAdapter holds settings of the client's peer transport.
type ClientAdapter struct {
	// RequestTimeout bounds meta, survey list and bundle requests.
	RequestTimeout time.Duration
	// PageSize is the replication page size.
	PageSize int
}

// ClientDiscovery holds the known peers in priority order and the fallback
// target used when none is reachable.
type ClientDiscovery struct {
	Peers    []models.PeerTarget
	Fallback models.PeerTarget
}

// ClientMap holds viewport tiling settings.
type ClientMap struct {
	TileZoom        int
	MaxTilesPerPass int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App       ClientApp
	Adapter   ClientAdapter
	Storage   Storage
	Discovery ClientDiscovery
	Map       ClientMap

	// Args are the positional arguments left after flag parsing: the
	// command and its operands.
	Args []string
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, rest, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg, rest)
}

func newClientConfig(cfg *StructuredConfig, rest []string) (*ClientConfig, error) {
	peers := make([]models.PeerTarget, 0, len(cfg.Discovery.Peers))
	for _, entry := range cfg.Discovery.Peers {
		addr, err := ParsePeerAddress(entry)
		if err != nil {
			return nil, err
		}
		peers = append(peers, models.PeerTarget{Address: addr.Host, Port: addr.Port})
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Version: cfg.App.Version,
			LogFile: cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			RequestTimeout: cfg.Adapter.RequestTimeout,
			PageSize:       cfg.Adapter.PageSize,
		},
		Storage: cfg.Storage,
		Discovery: ClientDiscovery{
			Peers: peers,
			Fallback: models.PeerTarget{
				Address: cfg.Discovery.FallbackAddress,
				Port:    cfg.Discovery.FallbackPort,
			},
		},
		Map: ClientMap{
			TileZoom:        cfg.Map.TileZoom,
			MaxTilesPerPass: cfg.Map.MaxTilesPerPass,
		},
		Args: rest,
	}

	return clientCfg, clientCfg.validate()
}
