// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-field-sync/internal/metrics"
	"github.com/MKhiriev/go-field-sync/internal/utils"
)

func (h *Handler) getMeta(w http.ResponseWriter, r *http.Request) {
	meta, err := h.services.Dataset.Meta(r.Context())
	if err != nil {
		h.writeError(w, r, err, "*Handler.getMeta", "error reading dataset meta")
		return
	}

	utils.WriteJSON(w, meta, http.StatusOK)
}

func (h *Handler) getFeatures(w http.ResponseWriter, r *http.Request) {
	req, err := pageRequestFromQuery(r)
	if err != nil {
		h.writeError(w, r, err, "*Handler.getFeatures", "invalid page request")
		return
	}

	page, err := h.services.Dataset.FeaturesPage(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err, "*Handler.getFeatures", "error reading features page")
		return
	}

	h.addRecords("features", metrics.Served, len(page.Features))
	utils.WriteJSON(w, page, http.StatusOK)
}

func (h *Handler) addRecords(kind, direction string, n int) {
	if h.metrics != nil {
		h.metrics.AddRecords(kind, direction, n)
	}
}
