// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-field-sync/internal/logger"
	"github.com/MKhiriev/go-field-sync/models"
)

// DefaultPageLimit is used when a page request carries no limit.
const DefaultPageLimit = 500

// pageRequestFromQuery reads offset and limit query parameters and the
// dataset pin header. Range checks are left to the services.
func pageRequestFromQuery(r *http.Request) (models.PageRequest, error) {
	req := models.PageRequest{
		Limit:       DefaultPageLimit,
		DatasetUUID: r.Header.Get(models.DatasetUUIDHeader),
	}

	query := r.URL.Query()
	if v := query.Get("offset"); v != "" {
		offset, err := strconv.Atoi(v)
		if err != nil {
			return models.PageRequest{}, fmt.Errorf("%w: offset %q", ErrInvalidPageParameter, v)
		}
		req.Offset = offset
	}
	if v := query.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return models.PageRequest{}, fmt.Errorf("%w: limit %q", ErrInvalidPageParameter, v)
		}
		req.Limit = limit
	}

	return req, nil
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, fn, msg string) {
	status := statusFromError(err)
	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", fn).Msg(msg)
	} else {
		log.Warn().Err(err).Str("func", fn).Int("status", status).Msg(msg)
	}
	http.Error(w, err.Error(), status)
}
