// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pod-sync/internal/config"
	"github.com/MKhiriev/go-pod-sync/internal/logger"
)

// Storages groups the server repositories that share one PostgreSQL pool.
type Storages struct {
	Transactor Transactor

	Catalog   CatalogRepository
	UpNext    UpNextRepository
	SyncState SyncStateRepository

	db *DB
}

func NewStorages(ctx context.Context, cfg config.DB, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Transactor: db,
		Catalog:    NewCatalogRepository(db, logger),
		UpNext:     NewUpNextRepository(db, logger),
		SyncState:  NewSyncStateRepository(db, logger),
		db:         db,
	}, nil
}

// IsRetryable reports whether a failed transaction may be run again: a
// concurrent insert won the race or the driver classified the error as
// transient.
func (s *Storages) IsRetryable(err error) bool {
	return errors.Is(err, ErrConflictingWrite) || s.db.IsRetryable(err)
}

func (s *Storages) Close() error {
	return s.db.Close()
}
