// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "github.com/google/uuid"

// NewUUID returns a time-ordered v7 uuid, falling back to a random v4 one.
// Observation ids and dataset fingerprints are minted with it.
func NewUUID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
