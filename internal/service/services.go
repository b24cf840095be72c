// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-field-sync/internal/config"
	"github.com/MKhiriev/go-field-sync/internal/logger"
	"github.com/MKhiriev/go-field-sync/internal/store"
	"github.com/MKhiriev/go-field-sync/models"
)

// Services groups the peer server services.
type Services struct {
	AppInfo      AppInfoService
	Dataset      DatasetService
	Observations ObservationExchangeService
	Surveys      SurveyCatalogService
}

func NewServices(storages *store.Storages, cfg *config.PeerConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	observations := NewObservationExchangeService(storages.Observations, logger)

	return &Services{
		AppInfo:      appInfo,
		Dataset:      NewDatasetService(storages.Features, storages.SyncState, logger),
		Observations: NewObservationValidationService().Wrap(observations),
		Surveys:      NewSurveyCatalogService(storages.Surveys, logger),
	}, nil
}
