// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the field device command runtime.
//
// [App] wires peer discovery, the peer adapter, the local record store and
// the client services around one event bus, feeds every event into the
// client state, and runs one command per invocation.
package client
