// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrTimeout is returned when a bounded request does not complete in
	// time.
	ErrTimeout = errors.New("peer request timed out")
	// ErrPeerUnreachable is returned for connection level failures.
	ErrPeerUnreachable = errors.New("peer unreachable")
	// ErrMalformedResponse is returned when a response body cannot be
	// decoded.
	ErrMalformedResponse = errors.New("malformed peer response")
	// ErrDatasetChanged is returned when the peer's dataset changed during a
	// pinned transfer.
	ErrDatasetChanged = errors.New("peer dataset changed")

	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
)
