// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrInvalidJSONBody is returned by ReadJSON for bodies that are not a
// single JSON value of the expected shape.
var ErrInvalidJSONBody = errors.New("invalid JSON body")

// WriteJSON serializes data and writes it with statusCode and an
// "application/json" content type. If marshaling fails it responds with 500
// instead and returns the wrapped error.
//
//	WriteJSON(w, page, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// ReadJSON decodes the request body into dst. Bodies larger than limit
// bytes, trailing data and unknown fields are rejected. A limit <= 0 leaves
// the body unbounded.
func ReadJSON(w http.ResponseWriter, r *http.Request, dst any, limit int64) error {
	body := r.Body
	if limit > 0 {
		body = http.MaxBytesReader(w, r.Body, limit)
	}

	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSONBody, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: trailing data after JSON value", ErrInvalidJSONBody)
	}

	return nil
}
