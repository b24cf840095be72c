// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-field-sync/internal/logger"
	"github.com/MKhiriev/go-field-sync/internal/metrics"
	"github.com/MKhiriev/go-field-sync/internal/service"
)

// MaxObservationsBody bounds the body of an observation push.
const MaxObservationsBody = 32 << 20

type Handler struct {
	services *service.Services
	metrics  *metrics.HTTP

	// requestTimeout bounds the small JSON endpoints; streaming endpoints
	// are not bounded.
	requestTimeout time.Duration

	logger *logger.Logger
}

// NewHandler builds the peer HTTP handler. A nil m disables the metrics
// middleware and the /metrics endpoint.
func NewHandler(services *service.Services, m *metrics.HTTP, requestTimeout time.Duration, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		metrics:        m,
		requestTimeout: requestTimeout,
		logger:         logger,
	}
}
