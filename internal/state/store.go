// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package state holds the client's single source of truth. [Store] applies
// the events emitted by the client services and persists the fields that
// must survive a restart.
package state

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-field-sync/internal/logger"
	"github.com/MKhiriev/go-field-sync/models"
)

//go:generate mockgen -source=store.go -destination=../mock/persister_mock.go -package=mock

// Persister stores the durable part of the client state.
type Persister interface {
	SaveAreaOfInterest(ctx context.Context, aoi *models.AreaOfInterest) error
	SaveObservationsLastSynced(ctx context.Context, at time.Time) error
	SaveCoordinatorTarget(ctx context.Context, target models.PeerTarget) error

	LoadAreaOfInterest(ctx context.Context) (*models.AreaOfInterest, error)
	LoadObservationsLastSynced(ctx context.Context) (time.Time, error)
	LoadCoordinatorTarget(ctx context.Context) (*models.PeerTarget, error)
}

// SyncStatus describes the replication currently shown to the user.
type SyncStatus struct {
	Syncing  bool
	Progress models.Progress
	Err      error
}

// Store is the reducer over client events. All reads return copies.
type Store struct {
	mu sync.RWMutex

	target                 *models.PeerTarget
	areaOfInterest         *models.AreaOfInterest
	observationsLastSynced time.Time
	discovering            bool
	discoveryErr           error
	metaErr                error
	syncStatus             SyncStatus

	visibleBounds     *models.Bounds
	features          map[models.TileKey][]models.Feature
	observations      map[models.TileKey][]models.Observation
	tileErrors        map[tileRef]error
	selection         *models.BboxSelection
	selecting         bool
	selectionErrs     []error
	remoteSurveys     []models.RemoteSurvey
	remoteSurveysErr  error
	surveys           map[string]models.SurveyBundle
	surveyErrs        map[string]error
	activeObservation *models.Observation
	savingObservation bool
	observationErr    error
	osmDataVersion    int

	persister Persister
	logger    *logger.Logger
}

// tileRef names one tile query: failures of the feature and the observation
// query for the same key are tracked apart.
type tileRef struct {
	kind models.QueryKind
	key  models.TileKey
}

// NewStore creates an empty Store. persister may be nil.
func NewStore(persister Persister, log *logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}

	return &Store{
		features:     make(map[models.TileKey][]models.Feature),
		observations: make(map[models.TileKey][]models.Observation),
		tileErrors:   make(map[tileRef]error),
		surveys:      make(map[string]models.SurveyBundle),
		surveyErrs:   make(map[string]error),
		persister:    persister,
		logger:       log.WithComponent("state"),
	}
}

// Load restores the durable fields from the persister.
func (s *Store) Load(ctx context.Context) error {
	if s.persister == nil {
		return nil
	}

	aoi, err := s.persister.LoadAreaOfInterest(ctx)
	if err != nil {
		return err
	}
	lastSynced, err := s.persister.LoadObservationsLastSynced(ctx)
	if err != nil {
		return err
	}
	target, err := s.persister.LoadCoordinatorTarget(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.areaOfInterest = aoi
	s.observationsLastSynced = lastSynced
	s.target = target
	return nil
}

// Apply reduces event into the state. It has the signature of an
// events.Handler.
func (s *Store) Apply(event models.Event) {
	s.mu.Lock()
	persist := s.reduce(event)
	s.mu.Unlock()

	if persist != nil {
		if err := persist(context.Background()); err != nil {
			s.logger.Err(err).Str("func", "Store.Apply").Str("event", string(event.Type)).Msg("error persisting state")
		}
	}
}

// reduce mutates the state under the lock and returns the persistence
// action to run after unlocking, if any.
func (s *Store) reduce(e models.Event) func(context.Context) error {
	switch e.Type {
	case models.DiscoveringPeers:
		s.discovering = true
		s.discoveryErr = nil
	case models.DiscoveringPeersFailed:
		s.discovering = false
		s.discoveryErr = e.Err
	case models.CoordinatorTargetSet:
		s.discovering = false
		if e.Target != nil {
			target := *e.Target
			s.target = &target
			if s.persister != nil {
				return func(ctx context.Context) error { return s.persister.SaveCoordinatorTarget(ctx, target) }
			}
		}

	case models.MetaFetchFailed:
		s.metaErr = e.Err
	case models.SyncingSurveyData:
		s.metaErr = nil
		s.syncStatus = SyncStatus{Syncing: true}
	case models.SyncingSurveyDataProgress:
		if e.Progress != nil {
			s.syncStatus.Progress = *e.Progress
		}
	case models.SyncingSurveyDataFailed:
		s.syncStatus.Syncing = false
		s.syncStatus.Err = e.Err
	case models.FinishedSyncingSurveyData:
		s.syncStatus.Syncing = false
		s.syncStatus.Err = nil
	case models.AreaOfInterestSet:
		if e.AreaOfInterest != nil {
			aoi := models.NewAreaOfInterest(e.AreaOfInterest.Meta)
			s.areaOfInterest = &aoi
			if s.persister != nil {
				return func(ctx context.Context) error { return s.persister.SaveAreaOfInterest(ctx, &aoi) }
			}
		}
	case models.AreaOfInterestCleared:
		s.areaOfInterest = nil
		if s.persister != nil {
			return func(ctx context.Context) error { return s.persister.SaveAreaOfInterest(ctx, nil) }
		}
	case models.ObservationsLastSyncedSet:
		at := e.At
		s.observationsLastSynced = at
		if s.persister != nil {
			return func(ctx context.Context) error { return s.persister.SaveObservationsLastSynced(ctx, at) }
		}
	case models.OSMDataChanged:
		s.osmDataVersion++
		s.features = make(map[models.TileKey][]models.Feature)

	case models.VisibleBoundsUpdated:
		if e.Bounds != nil {
			b := *e.Bounds
			s.visibleBounds = &b
		}
	case models.TileQueriedForFeatures:
		s.features[e.Tile] = e.Features
		delete(s.tileErrors, tileRef{models.QueryFeatures, e.Tile})
	case models.TileQueriedForObservations:
		s.observations[e.Tile] = e.Observations
		delete(s.tileErrors, tileRef{models.QueryObservations, e.Tile})
	case models.FeatureTileQueryFailed:
		s.tileErrors[tileRef{models.QueryFeatures, e.Tile}] = e.Err
	case models.ObservationTileQueryFailed:
		s.tileErrors[tileRef{models.QueryObservations, e.Tile}] = e.Err

	case models.SelectBbox:
		s.selecting = true
		s.selectionErrs = nil
		s.selection = nil
	case models.BboxFeatureSelectionFailed, models.BboxObservationSelectionFailed:
		s.selectionErrs = append(s.selectionErrs, e.Err)
	case models.BboxSelected:
		s.selecting = false
		sel := models.BboxSelection{Features: e.Features, Observations: e.Observations}
		if e.Bounds != nil {
			sel.Bounds = *e.Bounds
		}
		s.selection = &sel
	case models.BboxCleared:
		s.selecting = false
		s.selection = nil
		s.selectionErrs = nil

	case models.FetchingRemoteSurveyList:
		s.remoteSurveysErr = nil
	case models.ReceivedRemoteSurveyList:
		s.remoteSurveys = e.RemoteSurveys
	case models.FetchingRemoteSurveyListFailed:
		s.remoteSurveysErr = e.Err
	case models.RemoteSurveysCleared:
		s.remoteSurveys = nil
		s.remoteSurveysErr = nil
	case models.FetchingRemoteSurvey:
		delete(s.surveyErrs, e.SurveyID)
	case models.ReceivedRemoteSurvey:
		if e.Survey != nil {
			s.surveys[e.Survey.ID] = *e.Survey
		}
	case models.FetchingRemoteSurveyFailed:
		s.surveyErrs[e.SurveyID] = e.Err
	case models.LocalSurveyDeleted:
		delete(s.surveys, e.SurveyID)
	case models.LocalSurveysCleared:
		s.surveys = make(map[string]models.SurveyBundle)

	case models.ObservationInitialized, models.ActiveObservationSet, models.ObservationUpdated:
		if e.Observation != nil {
			obs := *e.Observation
			s.activeObservation = &obs
		} else {
			s.activeObservation = nil
		}
		s.observationErr = nil
	case models.SavingObservation:
		s.savingObservation = true
		s.observationErr = nil
	case models.SavingObservationFailed:
		s.savingObservation = false
		s.observationErr = e.Err
	case models.ObservationSaved:
		s.savingObservation = false
		s.activeObservation = nil
	}

	return nil
}

// CoordinatorTarget returns the last resolved peer, or nil.
func (s *Store) CoordinatorTarget() *models.PeerTarget {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.target == nil {
		return nil
	}
	target := *s.target
	return &target
}

// AreaOfInterest returns the committed dataset fingerprint, or nil.
func (s *Store) AreaOfInterest() *models.AreaOfInterest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.areaOfInterest == nil {
		return nil
	}
	aoi := models.NewAreaOfInterest(s.areaOfInterest.Meta)
	return &aoi
}

// ObservationsLastSynced returns when observations were last synced.
func (s *Store) ObservationsLastSynced() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.observationsLastSynced
}

// Sync returns the replication status.
func (s *Store) Sync() SyncStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.syncStatus
}

// Discovering reports whether peer discovery is running.
func (s *Store) Discovering() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.discovering
}

// DiscoveryError returns the error of the last failed discovery.
func (s *Store) DiscoveryError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.discoveryErr
}

// MetaError returns the error of the last failed meta fetch.
func (s *Store) MetaError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.metaErr
}

// VisibleBounds returns the last viewport, or nil.
func (s *Store) VisibleBounds() *models.Bounds {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.visibleBounds == nil {
		return nil
	}
	b := *s.visibleBounds
	return &b
}

// Features returns all resident features across tiles.
func (s *Store) Features() []models.Feature {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Feature
	for _, fs := range s.features {
		out = append(out, fs...)
	}
	return out
}

// Observations returns all resident observations across tiles.
func (s *Store) Observations() []models.Observation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Observation
	for _, obs := range s.observations {
		out = append(out, obs...)
	}
	return out
}

// TileFeatures returns the features resident for key.
func (s *Store) TileFeatures(key models.TileKey) ([]models.Feature, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fs, ok := s.features[key]
	return fs, ok
}

// TileObservations returns the observations resident for key.
func (s *Store) TileObservations(key models.TileKey) ([]models.Observation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	obs, ok := s.observations[key]
	return obs, ok
}

// TileError returns the error of the last failed kind query for key. A later
// successful query of the same kind clears it.
func (s *Store) TileError(kind models.QueryKind, key models.TileKey) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.tileErrors[tileRef{kind, key}]
}

// TileErrors returns the failed kind queries by tile key.
func (s *Store) TileErrors(kind models.QueryKind) map[models.TileKey]error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[models.TileKey]error)
	for ref, err := range s.tileErrors {
		if ref.kind == kind {
			out[ref.key] = err
		}
	}
	return out
}

// Selection returns the last bbox selection and the errors of its failed
// branches.
func (s *Store) Selection() (*models.BboxSelection, []error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.selection == nil {
		return nil, s.selectionErrs
	}
	sel := *s.selection
	return &sel, s.selectionErrs
}

// Selecting reports whether a bbox selection is running.
func (s *Store) Selecting() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.selecting
}

// RemoteSurveys returns the last fetched survey list and its error.
func (s *Store) RemoteSurveys() ([]models.RemoteSurvey, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.remoteSurveys, s.remoteSurveysErr
}

// Survey returns a fetched survey bundle.
func (s *Store) Survey(id string) (models.SurveyBundle, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.surveys[id]
	return b, ok
}

// SurveyError returns the error of the last failed fetch of survey id.
func (s *Store) SurveyError(id string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.surveyErrs[id]
}

// ActiveObservation returns the draft observation, or nil.
func (s *Store) ActiveObservation() *models.Observation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.activeObservation == nil {
		return nil
	}
	obs := *s.activeObservation
	return &obs
}

// SavingObservation reports whether a save is in progress.
func (s *Store) SavingObservation() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.savingObservation
}

// ObservationError returns the error of the last failed save.
func (s *Store) ObservationError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.observationErr
}

// OSMDataVersion counts the dataset changes applied since start.
func (s *Store) OSMDataVersion() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.osmDataVersion
}
