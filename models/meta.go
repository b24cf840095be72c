// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MetaUUIDField is the key of the dataset fingerprint inside a meta object.
const MetaUUIDField = "uuid"

// AreaOfInterest is the fingerprint of the dataset currently held locally
// for a geographic region. It is replaced wholesale after a successful full
// replication and never mutated in place.
type AreaOfInterest struct {
	Meta map[string]any `json:"meta"`
}

// NewAreaOfInterest copies meta into a new AreaOfInterest.
func NewAreaOfInterest(meta map[string]any) AreaOfInterest {
	copied := make(map[string]any, len(meta))
	for k, v := range meta {
		copied[k] = v
	}

	return AreaOfInterest{Meta: copied}
}

// UUID returns the dataset uuid of the area, or an empty string.
func (a AreaOfInterest) UUID() string {
	return MetaUUID(a.Meta)
}

// MetaUUID extracts the "uuid" field from a meta object. A missing or
// non-string value yields an empty string.
func MetaUUID(meta map[string]any) string {
	if meta == nil {
		return ""
	}

	id, _ := meta[MetaUUIDField].(string)
	return id
}

// MetaComparison is the outcome of comparing the local area of interest with
// the meta published by a peer.
type MetaComparison struct {
	// ShouldImportFull is true when the whole dataset must be replicated,
	// false when only observations need syncing.
	ShouldImportFull bool

	// RemoteMeta is the meta fetched from the peer. It is the candidate
	// new AreaOfInterest when ShouldImportFull is true and nil otherwise.
	RemoteMeta map[string]any

	// Target is the peer the meta was fetched from.
	Target PeerTarget
}
