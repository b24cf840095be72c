// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-field-sync/models"
)

const (
	featuresTable          = "features"
	observationsTable      = "observations"
	surveysTable           = "surveys"
	surveyAttachmentsTable = "survey_attachments"
	syncStateTable         = "sync_state"

	// upsertBatchSize bounds the rows of one multi-row INSERT so that the
	// parameter count stays below SQLite's limit.
	upsertBatchSize = 100

	upsertObservationSuffix = `ON CONFLICT (id) DO UPDATE SET
		lat = excluded.lat,
		lon = excluded.lon,
		properties = excluded.properties,
		created_at = excluded.created_at,
		updated_at = excluded.updated_at,
		version = excluded.version
	WHERE excluded.version > observations.version`

	upsertSyncStateSuffix = `ON CONFLICT (key) DO UPDATE SET value = excluded.value`

	analyzeSQLite   = `ANALYZE`
	analyzePostgres = `ANALYZE features`
)

var (
	featureColumns     = []string{"id", "type", "lat", "lon", "tags", "version"}
	observationColumns = []string{"id", "lat", "lon", "properties", "created_at", "updated_at", "version"}
)

// regionPredicate selects rows whose lat/lon lie inside bounds, edges
// included. Rows without a position never match.
func regionPredicate(bounds models.Bounds) sq.And {
	return sq.And{
		sq.GtOrEq{"lat": bounds.South},
		sq.LtOrEq{"lat": bounds.North},
		sq.GtOrEq{"lon": bounds.West},
		sq.LtOrEq{"lon": bounds.East},
	}
}

func chunks[T any](items []T, size int) [][]T {
	var out [][]T
	for size < len(items) {
		items, out = items[size:], append(out, items[:size])
	}
	return append(out, items)
}
