// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package events carries typed state transitions from the client services to
// their subscribers.
package events

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-field-sync/models"
)

// Emitter publishes state transitions.
type Emitter interface {
	Emit(event models.Event)
}

// Handler receives emitted events.
type Handler func(event models.Event)

// Bus is a synchronous fan-out Emitter. Events are delivered to every
// subscriber in subscription order, one event at a time, so handlers observe
// a total order of transitions. Handlers must not emit on the same Bus.
type Bus struct {
	mu       sync.Mutex
	handlers []Handler
	now      func() time.Time
}

// NewBus creates an empty Bus.
func NewBus() *Bus {
	return &Bus{now: time.Now}
}

// Subscribe registers h for all subsequent events.
func (b *Bus) Subscribe(h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers = append(b.handlers, h)
}

// Emit delivers event to every subscriber. A zero At is stamped with the
// current time.
func (b *Bus) Emit(event models.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if event.At.IsZero() {
		event.At = b.now()
	}

	for _, h := range b.handlers {
		h(event)
	}
}

// Nop discards all events.
type Nop struct{}

// Emit implements Emitter.
func (Nop) Emit(models.Event) {}
