// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pod-sync/internal/logger"
	"github.com/MKhiriev/go-pod-sync/models"
)

type syncStateRepository struct {
	*DB
	logger *logger.Logger
}

func NewSyncStateRepository(db *DB, logger *logger.Logger) SyncStateRepository {
	logger.Debug().Msg("creating sync state repository")
	return &syncStateRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *syncStateRepository) LockVersion(ctx context.Context, collection models.Collection) (int64, error) {
	query, args, err := postgres.Select("server_modified_ms").
		From("sync_versions").
		Where(sq.Eq{"collection": string(collection)}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var version int64
	err = r.conn(ctx).QueryRowContext(ctx, query, args...).Scan(&version)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return 0, nil
	case err != nil:
		logger.FromContext(ctx).Err(err).
			Str("func", "syncStateRepository.LockVersion").
			Str("collection", string(collection)).
			Msg("failed to lock collection version")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return version, nil
}

func (r *syncStateRepository) SetVersion(ctx context.Context, collection models.Collection, version int64) error {
	query, args, err := postgres.Insert("sync_versions").
		Columns("collection", "server_modified_ms").
		Values(string(collection), version).
		Suffix("ON CONFLICT (collection) DO UPDATE SET server_modified_ms = GREATEST(sync_versions.server_modified_ms, EXCLUDED.server_modified_ms)").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.conn(ctx).ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "syncStateRepository.SetVersion").
			Str("collection", string(collection)).
			Int64("version", version).
			Msg("failed to set collection version")
		return classifyExecError(err)
	}

	return nil
}

func (r *syncStateRepository) AppliedCursor(ctx context.Context, deviceID string, collection models.Collection) (int64, error) {
	query, args, err := postgres.Select("modified_at_ms").
		From("applied_changes").
		Where(sq.Eq{"device_id": deviceID, "collection": string(collection)}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var cursor int64
	err = r.conn(ctx).QueryRowContext(ctx, query, args...).Scan(&cursor)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return 0, nil
	case err != nil:
		logger.FromContext(ctx).Err(err).
			Str("func", "syncStateRepository.AppliedCursor").
			Str("device_id", deviceID).
			Msg("failed to read applied cursor")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return cursor, nil
}

func (r *syncStateRepository) SetAppliedCursor(ctx context.Context, deviceID string, collection models.Collection, modifiedAtMs int64) error {
	query, args, err := postgres.Insert("applied_changes").
		Columns("device_id", "collection", "modified_at_ms").
		Values(deviceID, string(collection), modifiedAtMs).
		Suffix("ON CONFLICT (device_id, collection) DO UPDATE SET modified_at_ms = GREATEST(applied_changes.modified_at_ms, EXCLUDED.modified_at_ms)").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.conn(ctx).ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "syncStateRepository.SetAppliedCursor").
			Str("device_id", deviceID).
			Msg("failed to set applied cursor")
		return classifyExecError(err)
	}

	return nil
}
