// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package discovery finds sync peers on the local network.
package discovery

import (
	"context"
	"net"
	"sync"
	"time"

	"github.com/MKhiriev/go-field-sync/internal/logger"
	"github.com/MKhiriev/go-field-sync/models"
)

//go:generate mockgen -source=discovery.go -destination=../mock/peer_finder_mock.go -package=mock

// PeerFinder returns the peers currently known, in preference order. An
// empty result is not an error.
type PeerFinder interface {
	FindPeers(ctx context.Context) ([]models.PeerTarget, error)
}

// StaticFinder returns a fixed list of peers.
type StaticFinder struct {
	peers []models.PeerTarget
}

// NewStaticFinder creates a finder over peers.
func NewStaticFinder(peers []models.PeerTarget) *StaticFinder {
	return &StaticFinder{peers: peers}
}

// FindPeers implements PeerFinder.
func (s *StaticFinder) FindPeers(ctx context.Context) ([]models.PeerTarget, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]models.PeerTarget, len(s.peers))
	copy(out, s.peers)
	return out, nil
}

// DialingFinder returns the peers of a candidate list that accept a TCP
// connection, keeping the list order. Candidates are dialed concurrently.
type DialingFinder struct {
	candidates []models.PeerTarget
	timeout    time.Duration
	dialer     func(ctx context.Context, network, address string) (net.Conn, error)
	logger     *logger.Logger
}

// NewDialingFinder creates a finder that dials each candidate for at most
// timeout.
func NewDialingFinder(candidates []models.PeerTarget, timeout time.Duration, log *logger.Logger) *DialingFinder {
	return &DialingFinder{
		candidates: candidates,
		timeout:    timeout,
		dialer:     (&net.Dialer{}).DialContext,
		logger:     log,
	}
}

// FindPeers implements PeerFinder.
func (p *DialingFinder) FindPeers(ctx context.Context) ([]models.PeerTarget, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reachable := make([]bool, len(p.candidates))
	var wg sync.WaitGroup
	for i, candidate := range p.candidates {
		wg.Add(1)
		go func() {
			defer wg.Done()
			reachable[i] = p.reachable(ctx, candidate)
		}()
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out []models.PeerTarget
	for i, ok := range reachable {
		if ok {
			out = append(out, p.candidates[i])
		}
	}
	return out, nil
}

func (p *DialingFinder) reachable(ctx context.Context, target models.PeerTarget) bool {
	dialCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	conn, err := p.dialer(dialCtx, "tcp", target.HostPort())
	if err != nil {
		p.logger.Debug().Str("func", "DialingFinder.reachable").Err(err).Str("target", target.String()).Msg("peer not reachable")
		return false
	}
	_ = conn.Close()
	return true
}
