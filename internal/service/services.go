// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-pod-sync/internal/config"
	"github.com/MKhiriev/go-pod-sync/internal/logger"
	"github.com/MKhiriev/go-pod-sync/internal/store"
)

// Services groups the server-side services used by the transport handlers.
type Services struct {
	SyncService    SyncService
	CatalogService CatalogService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		SyncService:    NewSyncService(storages, logger),
		CatalogService: NewCatalogService(storages.Catalog, logger),
		AppInfoService: appInfo,
	}, nil
}
