// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-field-sync/internal/service"
	"github.com/MKhiriev/go-field-sync/internal/store"
	"github.com/MKhiriev/go-field-sync/internal/utils"
)

var errorStatusMap = map[error]int{
	ErrInvalidPageParameter:          http.StatusBadRequest,
	utils.ErrInvalidJSONBody:         http.StatusBadRequest,
	service.ErrInvalidDataProvided:   http.StatusBadRequest,
	service.ErrInvalidImport:         http.StatusBadRequest,
	service.ErrBundleExtraction:      http.StatusBadRequest,
	service.ErrDatasetMismatch:       http.StatusConflict,
	service.ErrNoDataset:             http.StatusNotFound,
	store.ErrSurveyNotFound:          http.StatusNotFound,
	store.ErrObservationExists:       http.StatusConflict,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
	store.ErrEncodingColumn:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
