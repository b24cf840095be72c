// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-field-sync/internal/adapter"
	"github.com/MKhiriev/go-field-sync/internal/events"
	"github.com/MKhiriev/go-field-sync/internal/logger"
	"github.com/MKhiriev/go-field-sync/models"
)

type metaService struct {
	peers   PeerService
	adapter adapter.PeerAdapter
	emitter events.Emitter
	logger  *logger.Logger
}

// NewMetaService builds a [MetaService]. Missing targets are resolved through
// peers.
func NewMetaService(peers PeerService, peerAdapter adapter.PeerAdapter, emitter events.Emitter, log *logger.Logger) MetaService {
	return &metaService{peers: peers, adapter: peerAdapter, emitter: emitter, logger: log}
}

func (s *metaService) Compare(ctx context.Context, target *models.PeerTarget, local *models.AreaOfInterest) (models.MetaComparison, error) {
	var resolved models.PeerTarget
	if target != nil && target.Complete() {
		resolved = *target
	} else {
		var err error
		if resolved, err = s.peers.Resolve(ctx); err != nil {
			return models.MetaComparison{}, err
		}
	}

	meta, err := s.adapter.FetchMeta(ctx, resolved)
	if err != nil {
		err = fmt.Errorf("%w from %s: %w", ErrMetaFetch, resolved, err)
		s.logger.Err(err).Str("func", "*metaService.Compare").Msg("error fetching meta")
		s.emitter.Emit(models.Event{Type: models.MetaFetchFailed, Err: err, Target: &resolved})
		return models.MetaComparison{}, err
	}
	if meta == nil {
		meta = map[string]any{}
	}

	if local == nil || local.UUID() != models.MetaUUID(meta) {
		return models.MetaComparison{ShouldImportFull: true, RemoteMeta: meta, Target: resolved}, nil
	}

	return models.MetaComparison{ShouldImportFull: false, Target: resolved}, nil
}
