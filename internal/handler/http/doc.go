// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the peer's HTTP transport.
//
// It serves the dataset meta, replication pages of features and
// observations, the survey catalog and survey bundles to field devices.
// Request tracing, access logging, metrics and response compression are
// handled by middleware before requests reach the service layer.
package http
