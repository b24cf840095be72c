// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

// Field name constants restrict validation to a subset of fields.
const (
	// FieldID targets the record identifier.
	FieldID = "id"

	// FieldPosition targets lat/lon of a record.
	FieldPosition = "position"

	// FieldVersion targets the record version, which must not be negative.
	FieldVersion = "version"

	// FieldCreatedAt targets the creation time of an observation.
	FieldCreatedAt = "created_at"

	// FieldType targets the feature type.
	FieldType = "type"

	// FieldOffset and FieldLimit target the window of a page request.
	FieldOffset = "offset"
	FieldLimit  = "limit"

	// FieldRecords targets every element of a record list.
	FieldRecords = "records"
)

// MaxPageLimit bounds the limit of a single page request.
const MaxPageLimit = 5000
