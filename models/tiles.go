// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TileKey identifies a map tile as "zoom/x/y". It is the dedup and cache key
// for both feature and observation tile queries.
type TileKey string

// TileQueryState is the lifecycle state of a tile query.
type TileQueryState int

const (
	// TileAbsent means the tile was never queried or its query failed.
	TileAbsent TileQueryState = iota
	// TileInFlight means a query for the tile is running.
	TileInFlight
	// TilePresent means the tile's results are resident.
	TilePresent
)

// String implements fmt.Stringer.
func (s TileQueryState) String() string {
	switch s {
	case TileInFlight:
		return "in-flight"
	case TilePresent:
		return "present"
	default:
		return "absent"
	}
}

// QueryKind distinguishes the two record kinds queried per tile.
type QueryKind string

const (
	QueryFeatures     QueryKind = "features"
	QueryObservations QueryKind = "observations"
)
