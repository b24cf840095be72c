// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bundle

import "errors"

var (
	// ErrMalformedArchive is returned when the stream is not a valid tar
	// archive.
	ErrMalformedArchive = errors.New("malformed bundle archive")
	// ErrMalformedDefinition is returned when survey.json is not a JSON
	// object.
	ErrMalformedDefinition = errors.New("malformed survey definition")
	// ErrDuplicateDefinition is returned when the archive carries more than
	// one survey.json entry.
	ErrDuplicateDefinition = errors.New("duplicate survey definition")
	// ErrAttachmentTooLarge is returned when an attachment exceeds
	// MaxAttachmentSize.
	ErrAttachmentTooLarge = errors.New("attachment too large")
)
