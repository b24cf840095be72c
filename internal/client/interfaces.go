// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client is the lifecycle contract of the field device application.
type Client interface {
	// Run executes the command in args and returns when it completes.
	Run(ctx context.Context, args []string) error

	// Close releases the local store.
	Close() error
}
