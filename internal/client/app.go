// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-pod-sync/internal/adapter"
	"github.com/MKhiriev/go-pod-sync/internal/config"
	"github.com/MKhiriev/go-pod-sync/internal/logger"
	"github.com/MKhiriev/go-pod-sync/internal/service"
	"github.com/MKhiriev/go-pod-sync/internal/store"
	"github.com/MKhiriev/go-pod-sync/internal/workers"
)

type App struct {
	services *service.ClientServices
	upNext   service.UpNextService
	stars    service.StarService

	syncWorker *workers.Periodic
	workers    *workers.Workers

	closers []io.Closer
	logger  *logger.Logger
}

// NewApp opens the local database and the transports and assembles the
// client services on top of them.
func NewApp(ctx context.Context, cfg config.ClientConfig, logger *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	transport, err := adapter.NewSyncTransport(cfg.Adapter, logger)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create sync transport: %w", err)
	}

	catalog, err := adapter.NewHTTPCatalogAdapter(cfg.Adapter, logger)
	if err != nil {
		_ = transport.Close()
		_ = storages.Close()
		return nil, fmt.Errorf("create catalog adapter: %w", err)
	}

	services, err := service.NewClientServices(ctx, storages, transport, catalog, cfg, logger)
	if err != nil {
		_ = transport.Close()
		_ = storages.Close()
		return nil, fmt.Errorf("create client services: %w", err)
	}

	return newApp(services, cfg.Workers, logger, transport, storages), nil
}

func newApp(services *service.ClientServices, cfg config.ClientWorkers, logger *logger.Logger, closers ...io.Closer) *App {
	syncWorker := workers.NewPeriodic("sync", cfg.SyncInterval, services.SyncJob, logger)
	enrichWorker := workers.NewPeriodic("enrich", cfg.EnrichInterval, services.EnrichmentJob, logger)

	return &App{
		services:   services,
		upNext:     triggeringUpNext{UpNextService: services.UpNext, trigger: syncWorker.Trigger},
		stars:      triggeringStars{StarService: services.Stars, trigger: syncWorker.Trigger},
		syncWorker: syncWorker,
		workers:    workers.NewWorkers(syncWorker, enrichWorker, newStateWatcher(services.Broadcaster, logger)),
		closers:    closers,
		logger:     logger,
	}
}

// UpNext returns the queue editing service. Every successful edit requests
// an immediate sync from the running daemon.
func (a *App) UpNext() service.UpNextService {
	return a.upNext
}

// Stars returns the starred flag service. Every successful change requests
// an immediate sync from the running daemon.
func (a *App) Stars() service.StarService {
	return a.stars
}

// SyncNow runs one sync tick of both collections in the caller's goroutine.
func (a *App) SyncNow(ctx context.Context) error {
	return a.services.SyncJob.RunOnce(ctx)
}

// Run implements Client.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return a.run(ctx)
}

// run blocks until ctx ends or a worker fails.
func (a *App) run(ctx context.Context) error {
	a.logger.Info().Str("device_id", a.services.Device.ID).Msg("sync client started")
	err := a.workers.Run(ctx)
	a.logger.Info().Msg("sync client stopped")
	return err
}

// Close releases the transport and the local database.
func (a *App) Close() error {
	var errs []error
	for _, closer := range a.closers {
		if err := closer.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
