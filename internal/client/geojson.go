// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/MKhiriev/go-field-sync/models"
)

// Values of the "kind" property of selection output.
const (
	kindFeature     = "feature"
	kindObservation = "observation"
)

// selectionGeoJSON renders a selection as a FeatureCollection of points.
// Features carry their tags as properties, observations their properties;
// both get "kind" and "version". Features without a position are skipped.
func selectionGeoJSON(selection models.BboxSelection) ([]byte, error) {
	fc := geojson.NewFeatureCollection()
	fc.BBox = geojson.NewBBox(selection.Bounds.Bound())

	for _, f := range selection.Features {
		if f.Lat == nil || f.Lon == nil {
			continue
		}

		gf := geojson.NewFeature(orb.Point{*f.Lon, *f.Lat})
		gf.ID = f.ID
		for k, v := range f.Tags {
			gf.Properties[k] = v
		}
		gf.Properties["kind"] = kindFeature
		gf.Properties["type"] = f.Type
		gf.Properties["version"] = f.Version
		fc.Append(gf)
	}

	for _, o := range selection.Observations {
		gf := geojson.NewFeature(orb.Point{o.Lon, o.Lat})
		gf.ID = o.ID
		for k, v := range o.Properties {
			gf.Properties[k] = v
		}
		gf.Properties["kind"] = kindObservation
		gf.Properties["version"] = o.Version
		gf.Properties["created_at"] = o.CreatedAt
		fc.Append(gf)
	}

	return fc.MarshalJSON()
}
