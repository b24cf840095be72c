// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package events

import (
	"sync"

	"github.com/MKhiriev/go-field-sync/models"
)

// Recorder is an Emitter that keeps every event it receives. It is used by
// the command line client to report outcomes and by tests to assert on the
// order of transitions.
type Recorder struct {
	mu     sync.Mutex
	events []models.Event
}

// Emit implements Emitter.
func (r *Recorder) Emit(event models.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, event)
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []models.Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Event, len(r.events))
	copy(out, r.events)
	return out
}

// Types returns the recorded event types in emission order.
func (r *Recorder) Types() []models.EventType {
	events := r.Events()
	types := make([]models.EventType, 0, len(events))
	for _, e := range events {
		types = append(types, e.Type)
	}
	return types
}

// Filter returns the recorded events of the given types.
func (r *Recorder) Filter(types ...models.EventType) []models.Event {
	want := make(map[models.EventType]struct{}, len(types))
	for _, t := range types {
		want[t] = struct{}{}
	}

	var out []models.Event
	for _, e := range r.Events() {
		if _, ok := want[e.Type]; ok {
			out = append(out, e)
		}
	}
	return out
}

// Last returns the most recent event of type t.
func (r *Recorder) Last(t models.EventType) (models.Event, bool) {
	events := r.Events()
	for i := len(events) - 1; i >= 0; i-- {
		if events[i].Type == t {
			return events[i], true
		}
	}
	return models.Event{}, false
}

// Reset drops all recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = nil
}
