// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"github.com/go-resty/resty/v2"
)

// UserAgent identifies field devices to peers.
const UserAgent = "go-field-sync"

// HTTPClient wraps resty.Client. It embeds the client so that all of its
// methods stay available.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client that sends [UserAgent] and
// forwards the trace id found in each request's context in [TraceIDHeader].
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().SetContext(ctx).Get(peer + "/osm/meta")
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("User-Agent", UserAgent).
		OnBeforeRequest(propagateTraceID)

	return &HTTPClient{Client: client}
}

func propagateTraceID(_ *resty.Client, r *resty.Request) error {
	if traceID, ok := TraceIDFromContext(r.Context()); ok {
		r.SetHeader(TraceIDHeader, traceID)
	}
	return nil
}
