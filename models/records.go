// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// FeatureTypeNode is the type of point features.
const FeatureTypeNode = "node"

// Feature is a map feature record held by the data store.
type Feature struct {
	// ID is the stable identifier of the feature.
	ID string `json:"id"`

	// Type is the record type, e.g. "node" for point features.
	Type string `json:"type"`

	// Lat and Lon are nil for records without a position.
	Lat *float64 `json:"lat,omitempty"`
	Lon *float64 `json:"lon,omitempty"`

	// Tags holds the feature's key/value tags.
	Tags map[string]string `json:"tags,omitempty"`

	// Version grows with every edit of the record.
	Version int64 `json:"version"`
}

// Queryable reports whether the feature passes the display filter: a point
// record with a position and a non-empty name tag.
func (f Feature) Queryable() bool {
	return f.Type == FeatureTypeNode &&
		f.Lat != nil && *f.Lat != 0 &&
		f.Lon != nil && *f.Lon != 0 &&
		f.Tags["name"] != ""
}

// Observation is a geotagged field observation.
type Observation struct {
	ID         string         `json:"id"`
	Lat        float64        `json:"lat"`
	Lon        float64        `json:"lon"`
	Properties map[string]any `json:"properties,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	Version    int64          `json:"version"`
}

// DatasetUUIDHeader is the HTTP header a pinned page request carries its
// dataset uuid in.
const DatasetUUIDHeader = "X-Dataset-UUID"

// PageRequest selects a window of records on a peer.
type PageRequest struct {
	Offset int
	Limit  int

	// DatasetUUID pins the request to a dataset; the peer rejects the
	// request when its dataset changed. Empty means unpinned.
	DatasetUUID string
}

// FeaturePage is a window of features returned by a peer.
type FeaturePage struct {
	Total    int       `json:"total"`
	UUID     string    `json:"uuid,omitempty"`
	Features []Feature `json:"features"`
}

// ObservationPage is a window of observations returned by a peer.
type ObservationPage struct {
	Total        int           `json:"total"`
	Observations []Observation `json:"observations"`
}

// BboxSelection is the joined result of a bbox selection.
type BboxSelection struct {
	Bounds       Bounds        `json:"bounds"`
	Features     []Feature     `json:"features"`
	Observations []Observation `json:"observations"`
}
