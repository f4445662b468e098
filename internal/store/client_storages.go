// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pod-sync/internal/config"
	"github.com/MKhiriev/go-pod-sync/internal/logger"
)

// ClientStorages groups the client-side repositories that share one SQLite
// database.
type ClientStorages struct {
	Transactor Transactor

	Journal    LocalJournalRepository
	Watermarks WatermarkRepository
	Episodes   LocalEpisodeRepository
	Podcasts   LocalPodcastRepository
	Queue      QueueRepository
	Settings   SettingsRepository

	db *DB
}

// NewClientStorages opens the SQLite file named by cfg.DB.DSN, creating it
// when missing, applies pending migrations and wires every repository to it.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newClientStorages(db, logger), nil
}

func newClientStorages(db *DB, logger *logger.Logger) *ClientStorages {
	// sqlite allows a single writer: one connection serialises journal appends
	// with the reconcile transaction instead of failing with SQLITE_BUSY
	db.SetMaxOpenConns(1)

	return &ClientStorages{
		Transactor: db,
		Journal:    NewLocalJournalRepository(db, logger),
		Watermarks: NewWatermarkRepository(db, logger),
		Episodes:   NewLocalEpisodeRepository(db, logger),
		Podcasts:   NewLocalPodcastRepository(db, logger),
		Queue:      NewQueueRepository(db, logger),
		Settings:   NewSettingsRepository(db, logger),
		db:         db,
	}
}

func (s *ClientStorages) Close() error {
	return s.db.Close()
}
