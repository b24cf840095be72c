// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-field-sync/internal/logger"
	"github.com/MKhiriev/go-field-sync/internal/utils"
)

// BundleContentType is the media type of a survey bundle.
const BundleContentType = "application/x-tar"

func (h *Handler) listSurveys(w http.ResponseWriter, r *http.Request) {
	surveys, err := h.services.Surveys.ListSurveys(r.Context())
	if err != nil {
		h.writeError(w, r, err, "*Handler.listSurveys", "error listing surveys")
		return
	}

	utils.WriteJSON(w, surveys, http.StatusOK)
}

func (h *Handler) getSurveyBundle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	bw := &bundleWriter{w: w}
	err := h.services.Surveys.WriteBundle(r.Context(), id, bw)
	if err == nil {
		return
	}
	if bw.started {
		// headers are gone, the client sees a truncated archive
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getSurveyBundle").Str("survey", id).Msg("bundle stream aborted")
		return
	}
	h.writeError(w, r, err, "*Handler.getSurveyBundle", "error writing bundle")
}

// bundleWriter defers the bundle headers to the first byte so that errors
// raised before streaming starts still get a proper status.
type bundleWriter struct {
	w       http.ResponseWriter
	started bool
}

func (b *bundleWriter) Write(p []byte) (int, error) {
	if !b.started {
		b.started = true
		b.w.Header().Set("Content-Type", BundleContentType)
		b.w.WriteHeader(http.StatusOK)
	}
	return b.w.Write(p)
}
