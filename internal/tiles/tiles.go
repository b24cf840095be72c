// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tiles addresses slippy-map tiles and tracks the query state of
// each tile.
package tiles

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-field-sync/models"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/maptile"
)

const (
	// MaxLatitude is the northern edge of the web mercator projection.
	MaxLatitude = 85.05112877980659
	// MaxZoom is the deepest zoom a key may carry.
	MaxZoom = 30
)

var (
	// ErrInvalidKey is returned by ParseKey for keys not shaped "z/x/y".
	ErrInvalidKey = errors.New("invalid tile key")
	// ErrTooManyTiles is returned by Cover when the bounds span more tiles
	// than allowed.
	ErrTooManyTiles = errors.New("too many tiles")
)

// KeyFor renders the tile as "z/x/y".
func KeyFor(t maptile.Tile) models.TileKey {
	return models.TileKey(fmt.Sprintf("%d/%d/%d", t.Z, t.X, t.Y))
}

// ParseKey is the inverse of KeyFor.
func ParseKey(key models.TileKey) (maptile.Tile, error) {
	parts := strings.Split(string(key), "/")
	if len(parts) != 3 {
		return maptile.Tile{}, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}

	values := make([]uint32, 3)
	for i, p := range parts {
		v, err := strconv.ParseUint(p, 10, 32)
		if err != nil {
			return maptile.Tile{}, fmt.Errorf("%w: %q", ErrInvalidKey, key)
		}
		values[i] = uint32(v)
	}

	z, x, y := values[0], values[1], values[2]
	if z > MaxZoom || x >= 1<<z || y >= 1<<z {
		return maptile.Tile{}, fmt.Errorf("%w: %q out of range", ErrInvalidKey, key)
	}
	return maptile.New(x, y, maptile.Zoom(z)), nil
}

// BoundsOf returns the geographic bounds of the tile.
func BoundsOf(t maptile.Tile) models.Bounds {
	return models.BoundsFromOrb(t.Bound())
}

// At returns the tile containing the point at zoom z.
func At(lat, lon float64, z maptile.Zoom) maptile.Tile {
	return clamp(maptile.At(orb.Point{clampLon(lon), clampLat(lat)}, z))
}

// Cover returns the tiles at zoom z that intersect bounds, row by row from
// the north-west corner. It fails with ErrTooManyTiles when more than limit
// tiles would be returned; limit <= 0 disables the check.
func Cover(bounds models.Bounds, z maptile.Zoom, limit int) ([]maptile.Tile, error) {
	if !bounds.Valid() {
		return nil, fmt.Errorf("%w: %s", models.ErrInvalidBounds, bounds)
	}

	nw := At(bounds.North, bounds.West, z)
	se := At(bounds.South, bounds.East, z)

	width := int64(se.X) - int64(nw.X) + 1
	height := int64(se.Y) - int64(nw.Y) + 1
	if limit > 0 && width*height > int64(limit) {
		return nil, fmt.Errorf("%w: %d tiles at zoom %d, limit %d", ErrTooManyTiles, width*height, z, limit)
	}

	out := make([]maptile.Tile, 0, width*height)
	for y := nw.Y; y <= se.Y; y++ {
		for x := nw.X; x <= se.X; x++ {
			out = append(out, maptile.New(x, y, z))
		}
	}
	return out, nil
}

func clampLat(lat float64) float64 {
	return math.Max(-MaxLatitude, math.Min(MaxLatitude, lat))
}

func clampLon(lon float64) float64 {
	return math.Max(-180, math.Min(180, lon))
}

func clamp(t maptile.Tile) maptile.Tile {
	maxIndex := uint32(1)<<uint32(t.Z) - 1
	if t.X > maxIndex {
		t.X = maxIndex
	}
	if t.Y > maxIndex {
		t.Y = maxIndex
	}
	return t
}
