// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
)

// MaxTileZoom is the deepest zoom accepted for viewport passes.
const MaxTileZoom = 22

// validate checks the invariants shared by both binaries on the final merged
// [StructuredConfig].
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	for _, peer := range cfg.Discovery.Peers {
		if _, err := ParsePeerAddress(peer); err != nil {
			return err
		}
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.PageSize <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if !cfg.Discovery.Fallback.Complete() {
		return ErrInvalidDiscoveryConfigs
	}

	if cfg.Map.TileZoom < 0 || cfg.Map.TileZoom > MaxTileZoom || cfg.Map.MaxTilesPerPass <= 0 {
		return fmt.Errorf("%w: zoom %d, max tiles %d", ErrInvalidMapConfigs, cfg.Map.TileZoom, cfg.Map.MaxTilesPerPass)
	}

	return nil
}

func (cfg *PeerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Adapter.PageSize <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
