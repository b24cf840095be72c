// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// field device client and the peer server. It is populated by merging
// defaults, environment variables, command-line flags and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string and
	// the client log file.
	App App `envPrefix:"APP_"`

	// Storage holds the local record database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the peer server's listen address and timeouts.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client's outbound peer transport settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Discovery holds the known peers and the fallback target.
	Discovery Discovery `envPrefix:"DISCOVERY_"`

	// Map holds tile query settings.
	Map Map `envPrefix:"MAP_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string exposed via /api/version/.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogFile is the client log file path. Relative paths are resolved
	// next to the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the storage backend settings.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the record database. A DSN starting with
// "postgres://" or "postgresql://" selects PostgreSQL; anything else is
// treated as a SQLite file path.
type DB struct {
	// DSN is the database connection string or SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings of the peer server.
type Server struct {
	// HTTPAddress is the TCP address the peer server listens on, in
	// "host:port" format (e.g. "0.0.0.0:3210").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every inbound request except bundle and record
	// streaming.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the client's peer transport settings.
type Adapter struct {
	// RequestTimeout bounds meta, survey-list and bundle requests. Replication
	// transfers are not bounded.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// PageSize is the number of records requested per replication page.
	// Env: ADAPTER_PAGE_SIZE
	PageSize int `env:"PAGE_SIZE"`
}

// Discovery holds peer discovery settings.
type Discovery struct {
	// Peers lists known peers as "host:port" entries; the first reachable
	// entry wins.
	// Env: DISCOVERY_PEERS (comma separated)
	Peers []string `env:"PEERS" envSeparator:","`

	// FallbackAddress is used when no peer is found.
	// Env: DISCOVERY_FALLBACK_ADDRESS
	FallbackAddress string `env:"FALLBACK_ADDRESS"`

	// FallbackPort is used when no peer is found.
	// Env: DISCOVERY_FALLBACK_PORT
	FallbackPort int `env:"FALLBACK_PORT"`
}

// Map holds tile query settings.
type Map struct {
	// TileZoom is the zoom level viewport passes are tiled at.
	// Env: MAP_TILE_ZOOM
	TileZoom int `env:"TILE_ZOOM"`

	// MaxTilesPerPass caps the number of tiles one viewport pass may cover.
	// Env: MAP_MAX_TILES_PER_PASS
	MaxTilesPerPass int `env:"MAX_TILES_PER_PASS"`
}

// Defaults applied before any other source.
const (
	DefaultRequestTimeout  = time.Second
	DefaultServerTimeout   = 30 * time.Second
	DefaultPageSize        = 500
	DefaultFallbackAddress = "10.0.2.2"
	DefaultFallbackPort    = 3210
	DefaultTileZoom        = 16
	DefaultMaxTilesPerPass = 1024
	DefaultDSN             = "field-sync.db"
	DefaultHTTPAddress     = "0.0.0.0:3210"
	DefaultVersion         = "0.1.0"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App:     App{Version: DefaultVersion},
		Storage: Storage{DB: DB{DSN: DefaultDSN}},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultServerTimeout,
		},
		Adapter: Adapter{
			RequestTimeout: DefaultRequestTimeout,
			PageSize:       DefaultPageSize,
		},
		Discovery: Discovery{
			FallbackAddress: DefaultFallbackAddress,
			FallbackPort:    DefaultFallbackPort,
		},
		Map: Map{
			TileZoom:        DefaultTileZoom,
			MaxTilesPerPass: DefaultMaxTilesPerPass,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all sources in priority order (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags (args, without the program name)
//  4. JSON file (path resolved from sources 2 and 3)
//
// The positional arguments left after flag parsing are returned as well.
func GetStructuredConfig(args []string) (*StructuredConfig, []string, error) {
	b := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON()

	cfg, err := b.build()
	return cfg, b.rest, err
}
