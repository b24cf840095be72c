// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-field-sync/internal/metrics"
	"github.com/MKhiriev/go-field-sync/internal/utils"
	"github.com/MKhiriev/go-field-sync/models"
)

func (h *Handler) getObservations(w http.ResponseWriter, r *http.Request) {
	req, err := pageRequestFromQuery(r)
	if err != nil {
		h.writeError(w, r, err, "*Handler.getObservations", "invalid page request")
		return
	}

	page, err := h.services.Observations.ObservationsPage(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err, "*Handler.getObservations", "error reading observations page")
		return
	}

	h.addRecords("observations", metrics.Served, len(page.Observations))
	utils.WriteJSON(w, page, http.StatusOK)
}

func (h *Handler) postObservations(w http.ResponseWriter, r *http.Request) {
	var observations []models.Observation
	if err := utils.ReadJSON(w, r, &observations, MaxObservationsBody); err != nil {
		h.writeError(w, r, err, "*Handler.postObservations", "invalid observations body")
		return
	}

	accepted, err := h.services.Observations.AcceptObservations(r.Context(), observations)
	if err != nil {
		h.writeError(w, r, err, "*Handler.postObservations", "error accepting observations")
		return
	}

	h.addRecords("observations", metrics.Accepted, accepted)
	utils.WriteJSON(w, map[string]int{"accepted": accepted}, http.StatusOK)
}
