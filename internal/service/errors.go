// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Failure kinds of the client operations. Each one surfaces through its own
// failure event; callers match them with errors.Is. Transport causes such as
// adapter.ErrTimeout stay reachable through the wrap chain.
var (
	ErrDiscovery               = errors.New("peer discovery failed")
	ErrMetaFetch               = errors.New("meta fetch failed")
	ErrReplication             = errors.New("replication failed")
	ErrBundleFetch             = errors.New("bundle fetch failed")
	ErrBundleExtraction        = errors.New("bundle extraction failed")
	ErrSurveyDefinitionMissing = errors.New("survey bundle has no survey.json")
	ErrSurveyListFetch         = errors.New("survey list fetch failed")
	ErrSurveyStore             = errors.New("survey store failed")
	ErrTileQuery               = errors.New("tile query failed")
	ErrBboxQuery               = errors.New("bbox query failed")
	ErrObservationSave         = errors.New("observation save failed")
)

// Peer-side errors.
var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrDatasetMismatch       = errors.New("dataset uuid does not match")
	ErrNoDataset             = errors.New("no dataset imported")
	ErrInvalidImport         = errors.New("invalid import file")
)
