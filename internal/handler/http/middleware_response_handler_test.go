// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseWriter(t *testing.T) {
	tests := []struct {
		name       string
		write      func(w http.ResponseWriter)
		wantStatus int
		wantSize   int
	}{
		{
			name:       "nothing written",
			write:      func(http.ResponseWriter) {},
			wantStatus: http.StatusOK,
		},
		{
			name: "explicit status",
			write: func(w http.ResponseWriter) {
				w.WriteHeader(http.StatusConflict)
				_, _ = w.Write([]byte("dataset uuid does not match"))
			},
			wantStatus: http.StatusConflict,
			wantSize:   len("dataset uuid does not match"),
		},
		{
			name: "implicit 200 and accumulated size",
			write: func(w http.ResponseWriter) {
				_, _ = w.Write([]byte("abc"))
				_, _ = w.Write([]byte("defg"))
			},
			wantStatus: http.StatusOK,
			wantSize:   7,
		},
		{
			name: "second WriteHeader ignored",
			write: func(w http.ResponseWriter) {
				w.WriteHeader(http.StatusNotFound)
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			w := wrapResponseWriter(rr)

			tt.write(w)

			assert.Equal(t, tt.wantStatus, w.Status())
			assert.Equal(t, tt.wantSize, w.size)
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestWrapResponseWriter_ReusesWrapper(t *testing.T) {
	rr := httptest.NewRecorder()
	outer := wrapResponseWriter(rr)

	inner := wrapResponseWriter(outer)
	require.Same(t, outer, inner)

	inner.WriteHeader(http.StatusAccepted)
	assert.Equal(t, http.StatusAccepted, outer.Status())
}
