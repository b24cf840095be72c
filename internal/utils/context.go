// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared by the client and the peer:
// typed context keys, JSON request and response helpers, the resty-based
// HTTP client and id generation.
package utils

import (
	"context"
)

// TraceIDHeader carries the request trace id between client and peer.
const TraceIDHeader = "X-Trace-ID"

// contextKey is a private type for context keys, so keys of other packages
// cannot collide with ours.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// TraceIDCtxKey is the key the trace id is stored under.
var TraceIDCtxKey = contextKey("traceID")

// WithTraceID returns a copy of ctx carrying traceID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// TraceIDFromContext returns the trace id stored in ctx. ok is false when
// none is stored or it is empty.
func TraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok && traceID != ""
}
