// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if h.metrics != nil {
		router.Use(h.withMetrics)
	}
	router.Use(withGZip)

	// small JSON endpoints
	router.Group(func(r chi.Router) {
		if h.requestTimeout > 0 {
			r.Use(middleware.Timeout(h.requestTimeout))
		}
		r.Get("/osm/meta", h.getMeta)
		r.Get("/surveys/list", h.listSurveys)
		r.Get("/api/version/", h.getServerVersion)
		r.Get("/api/version/build", h.getBuildInfo)
	})

	// replication and bundle streaming, no deadline
	router.Group(func(r chi.Router) {
		r.Get("/osm/features", h.getFeatures)
		r.Get("/observations", h.getObservations)
		r.Post("/observations", h.postObservations)
		r.Get("/surveys/{id}/bundle", h.getSurveyBundle)
	})

	if h.metrics != nil {
		router.Method("GET", "/metrics", h.metrics.Handler())
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
