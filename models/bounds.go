// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

// ErrInvalidBounds is returned when a bounds string cannot be parsed.
var ErrInvalidBounds = errors.New("invalid bounds")

// Bounds is a geographic bounding box in WGS 84 degrees.
type Bounds struct {
	West  float64 `json:"west"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	North float64 `json:"north"`
}

// BoundsFromOrb converts an orb.Bound into Bounds.
func BoundsFromOrb(b orb.Bound) Bounds {
	return Bounds{
		West:  b.Min.Lon(),
		South: b.Min.Lat(),
		East:  b.Max.Lon(),
		North: b.Max.Lat(),
	}
}

// Bound converts the bounds into an orb.Bound.
func (b Bounds) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{b.West, b.South},
		Max: orb.Point{b.East, b.North},
	}
}

// Contains reports whether the point lies inside the bounds, edges included.
func (b Bounds) Contains(lat, lon float64) bool {
	return b.Bound().Contains(orb.Point{lon, lat})
}

// Valid reports whether the bounds are ordered and within WGS 84 ranges.
func (b Bounds) Valid() bool {
	return b.West <= b.East && b.South <= b.North &&
		b.West >= -180 && b.East <= 180 &&
		b.South >= -90 && b.North <= 90
}

// String renders the bounds as "west,south,east,north".
func (b Bounds) String() string {
	return fmt.Sprintf("%g,%g,%g,%g", b.West, b.South, b.East, b.North)
}

// ParseBounds parses "west,south,east,north".
func ParseBounds(s string) (Bounds, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return Bounds{}, fmt.Errorf("%w: need west,south,east,north", ErrInvalidBounds)
	}

	values := make([]float64, 4)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Bounds{}, fmt.Errorf("%w: %w", ErrInvalidBounds, err)
		}
		values[i] = v
	}

	b := Bounds{West: values[0], South: values[1], East: values[2], North: values[3]}
	if !b.Valid() {
		return Bounds{}, fmt.Errorf("%w: %s", ErrInvalidBounds, s)
	}

	return b, nil
}
