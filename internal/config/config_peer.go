// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
)

// PeerConfig is the configuration of the peer server binary.
type PeerConfig struct {
	App     App
	Storage Storage
	Server  Server
	Adapter Adapter

	// Args are the positional arguments left after flag parsing. A leading
	// "import-features" or "import-survey" runs an import instead of serving.
	Args []string
}

// GetPeerConfig builds and validates the peer server config view.
func GetPeerConfig(args []string) (*PeerConfig, error) {
	cfg, rest, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	peerCfg := &PeerConfig{
		App:     cfg.App,
		Storage: cfg.Storage,
		Server:  cfg.Server,
		Adapter: cfg.Adapter,
		Args:    rest,
	}

	return peerCfg, peerCfg.validate()
}
