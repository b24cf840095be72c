// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-field-sync/internal/discovery"
	"github.com/MKhiriev/go-field-sync/internal/events"
	"github.com/MKhiriev/go-field-sync/internal/logger"
	"github.com/MKhiriev/go-field-sync/models"
)

type peerService struct {
	finder   discovery.PeerFinder
	fallback models.PeerTarget
	emitter  events.Emitter
	logger   *logger.Logger
}

// NewPeerService builds a [PeerService] that falls back to fallback when the
// finder yields no peers.
func NewPeerService(finder discovery.PeerFinder, fallback models.PeerTarget, emitter events.Emitter, log *logger.Logger) PeerService {
	return &peerService{finder: finder, fallback: fallback, emitter: emitter, logger: log}
}

func (s *peerService) Resolve(ctx context.Context) (models.PeerTarget, error) {
	s.emitter.Emit(models.Event{Type: models.DiscoveringPeers})

	peers, err := s.finder.FindPeers(ctx)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrDiscovery, err)
		s.logger.Err(err).Str("func", "*peerService.Resolve").Msg("peer discovery failed")
		s.emitter.Emit(models.Event{Type: models.DiscoveringPeersFailed, Err: err})
		return models.PeerTarget{}, err
	}

	target := s.fallback
	if len(peers) > 0 {
		target = peers[0]
	}
	s.logger.Debug().Str("func", "*peerService.Resolve").
		Int("found", len(peers)).
		Str("target", target.String()).
		Msg("coordinator target resolved")

	s.emitter.Emit(models.Event{Type: models.CoordinatorTargetSet, Target: &target})
	return target, nil
}
