// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server is the lifecycle contract of the peer server.
type Server interface {
	// RunServer serves until SIGTERM, SIGINT or SIGQUIT and then shuts
	// down gracefully.
	RunServer()

	// Shutdown gracefully stops the server.
	Shutdown()
}
