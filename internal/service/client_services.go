// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pod-sync/internal/adapter"
	"github.com/MKhiriev/go-pod-sync/internal/codec"
	"github.com/MKhiriev/go-pod-sync/internal/config"
	"github.com/MKhiriev/go-pod-sync/internal/logger"
	"github.com/MKhiriev/go-pod-sync/internal/store"
	"github.com/MKhiriev/go-pod-sync/internal/utils"
	"github.com/MKhiriev/go-pod-sync/models"
)

// ClientServices is the assembled client-side sync engine.
type ClientServices struct {
	Device Device

	UpNext UpNextService
	Stars  StarService

	UpNextSync  SyncCoordinator
	StarredSync SyncCoordinator

	SyncJob       Job
	EnrichmentJob Job

	Broadcaster *Broadcaster
}

// NewClientServices wires the engine on top of the local storages and loads
// the persisted queue into the live cell.
func NewClientServices(
	ctx context.Context,
	storages *store.ClientStorages,
	transport adapter.SyncTransport,
	catalog adapter.CatalogAdapter,
	cfg config.ClientConfig,
	logger *logger.Logger,
) (*ClientServices, error) {
	return newClientServices(ctx, storages, transport, catalog, cfg, time.Now, logger)
}

func newClientServices(
	ctx context.Context,
	storages *store.ClientStorages,
	transport adapter.SyncTransport,
	catalog adapter.CatalogAdapter,
	cfg config.ClientConfig,
	now func() time.Time,
	logger *logger.Logger,
) (*ClientServices, error) {
	wireCodec, err := codec.New(cfg.Sync.Codec)
	if err != nil {
		return nil, err
	}

	device, err := resolveDevice(ctx, storages.Settings, cfg.App)
	if err != nil {
		return nil, err
	}

	broadcaster := NewBroadcaster()
	projector := newStateProjector(storages, broadcaster, broadcaster, now, logger)
	if err = projector.Load(ctx); err != nil {
		return nil, err
	}

	resolver := newConflictResolver(now, cfg.Sync.FlagRecencyWindow)
	importer := NewEntityImporter(storages.Episodes, storages.Podcasts, catalog, cfg.Sync.ImportConcurrency, logger)

	upNextSync := newSyncCoordinator(&queueStream{
		journal:    storages.Journal,
		watermarks: storages.Watermarks,
		episodes:   storages.Episodes,
		resolver:   resolver,
		importer:   importer,
		projector:  projector,
	}, wireCodec, transport, device, logger)

	starredSync := newSyncCoordinator(&flagStream{
		watermarks: storages.Watermarks,
		episodes:   storages.Episodes,
		resolver:   resolver,
		importer:   importer,
		projector:  projector,
	}, wireCodec, transport, device, logger)

	logger.Info().
		Str("device_id", device.ID).
		Str("codec", wireCodec.Name()).
		Msg("client services are ready")

	return &ClientServices{
		Device:        device,
		UpNext:        newUpNextService(projector, now),
		Stars:         newStarService(storages.Episodes, projector, now),
		UpNextSync:    upNextSync,
		StarredSync:   starredSync,
		SyncJob:       NewSyncJob([]SyncCoordinator{upNextSync, starredSync}, cfg.Workers, logger),
		EnrichmentJob: NewEnrichmentJob(storages.Episodes, catalog, cfg.Sync.ImportConcurrency, logger),
		Broadcaster:   broadcaster,
	}, nil
}

// resolveDevice returns the configured device id or the one persisted in
// settings, generating and storing a new one on first start.
func resolveDevice(ctx context.Context, settings store.SettingsRepository, cfg config.ClientApp) (Device, error) {
	device := Device{ID: cfg.DeviceID, Kind: models.DeviceKind(cfg.DeviceKind)}
	if device.ID != "" {
		return device, nil
	}

	stored, ok, err := settings.Get(ctx, store.SettingDeviceID)
	if err != nil {
		return Device{}, fmt.Errorf("read device id: %w", err)
	}
	if ok && stored != "" {
		device.ID = stored
		return device, nil
	}

	device.ID = utils.NewUUIDGenerator().Generate()
	if err = settings.Set(ctx, store.SettingDeviceID, device.ID); err != nil {
		return Device{}, fmt.Errorf("store device id: %w", err)
	}

	return device, nil
}
