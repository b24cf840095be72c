// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid peer transport settings
	// (for example, a zero request timeout or page size).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidDiscoveryConfigs indicates an incomplete fallback target.
	ErrInvalidDiscoveryConfigs = errors.New("invalid discovery configuration")
	// ErrInvalidMapConfigs indicates an out-of-range tile zoom or tile cap.
	ErrInvalidMapConfigs = errors.New("invalid map configuration")
	// ErrInvalidServerConfigs indicates a missing listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidPeerAddress is returned for a peer entry that is not
	// "host:port".
	ErrInvalidPeerAddress = errors.New("invalid peer address")
)
