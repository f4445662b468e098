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
)

type watermarkRepository struct {
	*DB
	logger *logger.Logger
}

func NewWatermarkRepository(db *DB, logger *logger.Logger) WatermarkRepository {
	logger.Debug().Msg("creating watermark repository")
	return &watermarkRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *watermarkRepository) Get(ctx context.Context, stream string) (int64, error) {
	query, args, err := sqlite.Select("server_modified_ms").
		From("sync_watermarks").
		Where(sq.Eq{"stream": stream}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value int64
	err = r.conn(ctx).QueryRowContext(ctx, query, args...).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return 0, nil
	case err != nil:
		logger.FromContext(ctx).Err(err).
			Str("func", "watermarkRepository.Get").
			Str("stream", stream).
			Msg("failed to read watermark")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return value, nil
}

// Set upserts the cursor only when it does not move backwards. A regression is
// detected by a zero row count and reported without touching the row.
func (r *watermarkRepository) Set(ctx context.Context, stream string, value int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSetWatermarkQuery(stream, value)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.conn(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "watermarkRepository.Set").
			Str("stream", stream).
			Int64("watermark", value).
			Msg("failed to set watermark")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		log.Warn().
			Str("func", "watermarkRepository.Set").
			Str("stream", stream).
			Int64("watermark", value).
			Msg("refusing to move watermark backwards")
		return fmt.Errorf("%w: stream %s to %d", ErrWatermarkRegression, stream, value)
	}

	return nil
}

func (r *watermarkRepository) Reset(ctx context.Context, stream string) error {
	query, args, err := sqlite.Delete("sync_watermarks").Where(sq.Eq{"stream": stream}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.conn(ctx).ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "watermarkRepository.Reset").
			Str("stream", stream).
			Msg("failed to reset watermark")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func buildSetWatermarkQuery(stream string, value int64) (string, []any, error) {
	return sqlite.Insert("sync_watermarks").
		Columns("stream", "server_modified_ms").
		Values(stream, value).
		Suffix("ON CONFLICT(stream) DO UPDATE SET server_modified_ms = excluded.server_modified_ms " +
			"WHERE excluded.server_modified_ms >= sync_watermarks.server_modified_ms").
		ToSql()
}
