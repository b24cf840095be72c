// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// EventType names a state transition emitted by the client services.
type EventType string

// Peer discovery.
const (
	DiscoveringPeers       EventType = "DISCOVERING_PEERS"
	DiscoveringPeersFailed EventType = "DISCOVERING_PEERS_FAILED"
	CoordinatorTargetSet   EventType = "SET_COORDINATOR_TARGET"
)

// Survey catalog.
const (
	FetchingRemoteSurvey           EventType = "FETCHING_REMOTE_SURVEY"
	FetchingRemoteSurveyFailed     EventType = "FETCHING_REMOTE_SURVEY_FAILED"
	ReceivedRemoteSurvey           EventType = "RECEIVED_REMOTE_SURVEY"
	FetchingRemoteSurveyList       EventType = "FETCHING_REMOTE_SURVEY_LIST"
	FetchingRemoteSurveyListFailed EventType = "FETCHING_REMOTE_SURVEY_LIST_FAILED"
	ReceivedRemoteSurveyList       EventType = "RECEIVED_REMOTE_SURVEY_LIST"
	RemoteSurveysCleared           EventType = "CLEAR_REMOTE_SURVEYS"
	LocalSurveysCleared            EventType = "CLEAR_LOCAL_SURVEYS"
	LocalSurveyDeleted             EventType = "DELETE_LOCAL_SURVEY"
)

// Observations.
const (
	ObservationInitialized  EventType = "INITIALIZE_OBSERVATION"
	ActiveObservationSet    EventType = "SET_ACTIVE_OBSERVATION"
	ObservationUpdated      EventType = "UPDATE_OBSERVATION"
	SavingObservation       EventType = "SAVING_OBSERVATION"
	SavingObservationFailed EventType = "SAVING_OBSERVATION_FAILED"
	ObservationSaved        EventType = "OBSERVATION_SAVED"
)

// Replication.
const (
	MetaFetchFailed           EventType = "META_FETCH_FAILED"
	SyncingSurveyData         EventType = "SYNCING_SURVEY_DATA"
	SyncingSurveyDataProgress EventType = "SYNCING_SURVEY_DATA_PROGRESS"
	SyncingSurveyDataFailed   EventType = "SYNCING_SURVEY_DATA_FAILED"
	FinishedSyncingSurveyData EventType = "FINISHED_SYNCING_SURVEY_DATA"
	AreaOfInterestSet         EventType = "SET_AREA_OF_INTEREST"
	AreaOfInterestCleared     EventType = "CLEAR_AREA_OF_INTEREST"
	ObservationsLastSyncedSet EventType = "SET_OBSERVATIONS_LAST_SYNCED"
)

// Data store lifecycle.
const (
	ReplicationStarted   EventType = "REPLICATION_STARTED"
	ReplicationCompleted EventType = "REPLICATION_COMPLETED"
	IndexingStarted      EventType = "INDEXING_STARTED"
	IndexingCompleted    EventType = "INDEXING_COMPLETED"
	OSMDataChanged       EventType = "OSM_DATA_CHANGED"
)

// Viewport and selection.
const (
	VisibleBoundsUpdated           EventType = "VISIBLE_BOUNDS_UPDATED"
	SelectBbox                     EventType = "SELECT_BBOX"
	BboxFeatureSelectionFailed     EventType = "BBOX_FEATURE_SELECTION_FAILED"
	BboxObservationSelectionFailed EventType = "BBOX_OBSERVATION_SELECTION_FAILED"
	BboxSelected                   EventType = "BBOX_SELECTED"
	BboxCleared                    EventType = "BBOX_CLEARED"

	QueryingTileForFeatures     EventType = "QUERYING_TILE_FOR_FEATURES"
	TileQueriedForFeatures      EventType = "TILE_QUERIED_FOR_FEATURES"
	FeatureTileQueryFailed      EventType = "FEATURE_TILE_QUERY_FAILED"
	QueryingTileForObservations EventType = "QUERYING_TILE_FOR_OBSERVATIONS"
	TileQueriedForObservations  EventType = "TILE_QUERIED_FOR_OBSERVATIONS"
	ObservationTileQueryFailed  EventType = "OBSERVATION_TILE_QUERY_FAILED"
)

// Event is a typed state transition. Only the payload fields relevant to
// Type are set.
type Event struct {
	Type EventType

	// Err carries the cause of every *_FAILED transition.
	Err error

	Target         *PeerTarget
	Progress       *Progress
	AreaOfInterest *AreaOfInterest
	At             time.Time

	Tile         TileKey
	Kind         QueryKind
	Features     []Feature
	Observations []Observation
	Bounds       *Bounds

	SurveyID      string
	Survey        *SurveyBundle
	RemoteSurveys []RemoteSurvey

	Observation *Observation
}

// Failed reports whether the event carries an error.
func (e Event) Failed() bool {
	return e.Err != nil
}
