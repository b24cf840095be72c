// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tiles

import (
	"sync"

	"github.com/MKhiriev/go-field-sync/models"
)

// Registry tracks the query state of each tile key. A key is absent until
// acquired, in flight until marked present or released, and present until
// invalidated.
type Registry struct {
	mu     sync.Mutex
	states map[models.TileKey]models.TileQueryState
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{states: make(map[models.TileKey]models.TileQueryState)}
}

// Acquire moves key from absent to in flight. It returns false, leaving the
// state unchanged, when key is already in flight or present.
func (r *Registry) Acquire(key models.TileKey) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.states[key] != models.TileAbsent {
		return false
	}
	r.states[key] = models.TileInFlight
	return true
}

// MarkPresent moves an in-flight key to present.
func (r *Registry) MarkPresent(key models.TileKey) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.states[key] == models.TileInFlight {
		r.states[key] = models.TilePresent
	}
}

// Release moves an in-flight key back to absent after a failed query.
func (r *Registry) Release(key models.TileKey) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.states[key] == models.TileInFlight {
		delete(r.states, key)
	}
}

// Invalidate moves a present key back to absent so the next pass re-queries
// it. In-flight keys are left alone. It reports whether the key changed.
func (r *Registry) Invalidate(key models.TileKey) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.states[key] != models.TilePresent {
		return false
	}
	delete(r.states, key)
	return true
}

// InvalidateAll moves every present key back to absent.
func (r *Registry) InvalidateAll() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key, st := range r.states {
		if st == models.TilePresent {
			delete(r.states, key)
		}
	}
}

// State returns the state of key.
func (r *Registry) State(key models.TileKey) models.TileQueryState {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.states[key]
}

// Count returns the number of keys in state st. Absent keys are not tracked.
func (r *Registry) Count(st models.TileQueryState) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, s := range r.states {
		if s == st {
			n++
		}
	}
	return n
}
