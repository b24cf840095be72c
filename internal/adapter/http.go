// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-field-sync/internal/config"
	"github.com/MKhiriev/go-field-sync/internal/logger"
	"github.com/MKhiriev/go-field-sync/internal/utils"
	"github.com/MKhiriev/go-field-sync/models"
)

// DatasetHeader carries the dataset uuid a page request is pinned to.
const DatasetHeader = models.DatasetUUIDHeader

type httpPeerAdapter struct {
	// client serves meta and survey list requests with a whole-request
	// timeout.
	client *utils.HTTPClient
	// bundleClient bounds only the wait for response headers so that the
	// archive body can stream for as long as it takes.
	bundleClient *utils.HTTPClient
	// transferClient serves replication and has no timeout.
	transferClient *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPPeerAdapter constructs an HTTP implementation of [PeerAdapter].
func NewHTTPPeerAdapter(cfg config.ClientAdapter, log *logger.Logger) (PeerAdapter, error) {
	if cfg.RequestTimeout <= 0 {
		return nil, fmt.Errorf("%w: request timeout must be positive", config.ErrInvalidAdapterConfigs)
	}

	client := utils.NewHTTPClient()
	client.SetTimeout(cfg.RequestTimeout)

	bundleClient := utils.NewHTTPClient()
	bundleClient.SetTransport(headerTimeoutTransport(cfg.RequestTimeout))

	return &httpPeerAdapter{
		client:         client,
		bundleClient:   bundleClient,
		transferClient: utils.NewHTTPClient(),
		logger:         log,
	}, nil
}

func headerTimeoutTransport(timeout time.Duration) *http.Transport {
	return &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           (&net.Dialer{Timeout: timeout}).DialContext,
		ResponseHeaderTimeout: timeout,
		MaxIdleConns:          10,
		IdleConnTimeout:       30 * time.Second,
	}
}

// FetchMeta implements [PeerAdapter].
func (h *httpPeerAdapter) FetchMeta(ctx context.Context, target models.PeerTarget) (map[string]any, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(target.BaseURL() + "/osm/meta")
	if err != nil {
		return nil, mapTransportError("meta request", err)
	}

	if resp.StatusCode() != http.StatusOK {
		h.logger.Debug().Str("func", "httpPeerAdapter.FetchMeta").
			Int("status", resp.StatusCode()).
			Str("target", target.String()).
			Msg("non-200 meta response treated as empty meta")
		return map[string]any{}, nil
	}

	meta := map[string]any{}
	if err = json.Unmarshal(resp.Body(), &meta); err != nil {
		return nil, fmt.Errorf("%w: meta: %w", ErrMalformedResponse, err)
	}
	if meta == nil {
		meta = map[string]any{}
	}

	return meta, nil
}

// ListSurveys implements [PeerAdapter].
func (h *httpPeerAdapter) ListSurveys(ctx context.Context, target models.PeerTarget) ([]map[string]any, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(target.BaseURL() + "/surveys/list")
	if err != nil {
		return nil, mapTransportError("survey list request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var surveys []map[string]any
	if err = json.Unmarshal(resp.Body(), &surveys); err != nil {
		return nil, fmt.Errorf("%w: survey list: %w", ErrMalformedResponse, err)
	}

	return surveys, nil
}

// FetchBundle implements [PeerAdapter].
func (h *httpPeerAdapter) FetchBundle(ctx context.Context, surveyURL string) (io.ReadCloser, error) {
	resp, err := h.bundleClient.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(strings.TrimRight(surveyURL, "/") + "/bundle")
	if err != nil {
		return nil, mapTransportError("bundle request", err)
	}

	body := resp.RawBody()
	if resp.StatusCode() != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(body, 1024))
		_ = body.Close()
		return nil, mapStatus(resp.StatusCode(), strings.TrimSpace(string(msg)))
	}

	return body, nil
}

// FetchFeatures implements [PeerAdapter].
func (h *httpPeerAdapter) FetchFeatures(ctx context.Context, target models.PeerTarget, req models.PageRequest) (models.FeaturePage, error) {
	var page models.FeaturePage

	r := h.transferClient.R().
		SetContext(ctx).
		SetQueryParams(pageParams(req))
	if req.DatasetUUID != "" {
		r.SetHeader(DatasetHeader, req.DatasetUUID)
	}

	resp, err := r.Get(target.BaseURL() + "/osm/features")
	if err != nil {
		return page, mapTransportError("features request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return page, err
	}

	if err = json.Unmarshal(resp.Body(), &page); err != nil {
		return page, fmt.Errorf("%w: features: %w", ErrMalformedResponse, err)
	}

	return page, nil
}

// FetchObservations implements [PeerAdapter].
func (h *httpPeerAdapter) FetchObservations(ctx context.Context, target models.PeerTarget, req models.PageRequest) (models.ObservationPage, error) {
	var page models.ObservationPage

	resp, err := h.transferClient.R().
		SetContext(ctx).
		SetQueryParams(pageParams(req)).
		Get(target.BaseURL() + "/observations")
	if err != nil {
		return page, mapTransportError("observations request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return page, err
	}

	if err = json.Unmarshal(resp.Body(), &page); err != nil {
		return page, fmt.Errorf("%w: observations: %w", ErrMalformedResponse, err)
	}

	return page, nil
}

// PushObservations implements [PeerAdapter].
func (h *httpPeerAdapter) PushObservations(ctx context.Context, target models.PeerTarget, observations []models.Observation) error {
	if len(observations) == 0 {
		return nil
	}

	resp, err := h.transferClient.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(observations).
		Post(target.BaseURL() + "/observations")
	if err != nil {
		return mapTransportError("push observations request", err)
	}

	return mapHTTPError(resp)
}

func pageParams(req models.PageRequest) map[string]string {
	return map[string]string{
		"offset": strconv.Itoa(req.Offset),
		"limit":  strconv.Itoa(req.Limit),
	}
}
