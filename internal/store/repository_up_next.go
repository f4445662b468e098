// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pod-sync/internal/logger"
	"github.com/MKhiriev/go-pod-sync/models"
)

type upNextRepository struct {
	*DB
	logger *logger.Logger
}

func NewUpNextRepository(db *DB, logger *logger.Logger) UpNextRepository {
	logger.Debug().Msg("creating up next repository")
	return &upNextRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *upNextRepository) Load(ctx context.Context) (models.QueueState, error) {
	log := logger.FromContext(ctx)

	query, args, err := postgres.Select("identifier").From("up_next_entries").OrderBy("position ASC").ToSql()
	if err != nil {
		return models.QueueState{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "upNextRepository.Load").Msg("failed to query up next")
		return models.QueueState{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return models.QueueState{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return models.QueueState{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return models.QueueFromIdentifiers(ids), nil
}

func (r *upNextRepository) Save(ctx context.Context, queue models.QueueState) error {
	return r.WithinTx(ctx, func(ctx context.Context) error {
		log := logger.FromContext(ctx)

		query, args, err := postgres.Delete("up_next_entries").ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = r.conn(ctx).ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", "upNextRepository.Save").Msg("failed to clear up next")
			return classifyExecError(err)
		}

		ids := queue.Identifiers()
		if len(ids) == 0 {
			return nil
		}

		insert := postgres.Insert("up_next_entries").Columns("position", "identifier")
		for position, id := range ids {
			insert = insert.Values(position, id)
		}

		query, args, err = insert.ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = r.conn(ctx).ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", "upNextRepository.Save").Int("size", len(ids)).Msg("failed to write up next")
			return classifyExecError(err)
		}

		return nil
	})
}
