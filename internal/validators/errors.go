// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidID        = errors.New("invalid id")
	ErrInvalidLatitude  = errors.New("latitude out of range")
	ErrInvalidLongitude = errors.New("longitude out of range")
	ErrInvalidVersion   = errors.New("invalid version")
	ErrMissingCreatedAt = errors.New("created_at is required")
	ErrInvalidType      = errors.New("invalid feature type")
	ErrInvalidBounds    = errors.New("invalid bounds")
	ErrInvalidOffset    = errors.New("invalid page offset")
	ErrInvalidLimit     = errors.New("invalid page limit")
	ErrEmptyRecords     = errors.New("records list cannot be empty")
)
