// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pod-sync/internal/logger"
	"github.com/MKhiriev/go-pod-sync/models"
)

// queueRepository stores the Up Next order in up_next. Position 0 is the
// current episode.
type queueRepository struct {
	*DB
	logger *logger.Logger
}

func NewQueueRepository(db *DB, logger *logger.Logger) QueueRepository {
	logger.Debug().Msg("creating queue repository")
	return &queueRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *queueRepository) Load(ctx context.Context) (models.QueueState, error) {
	log := logger.FromContext(ctx)

	query, args, err := sqlite.Select("identifier").From("up_next").OrderBy("position ASC").ToSql()
	if err != nil {
		return models.QueueState{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "queueRepository.Load").Msg("failed to query queue")
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

// Save replaces the stored order with queue in one transaction, joining the
// caller's transaction when there is one.
func (r *queueRepository) Save(ctx context.Context, queue models.QueueState) error {
	return r.WithinTx(ctx, func(ctx context.Context) error {
		log := logger.FromContext(ctx)

		query, args, err := sqlite.Delete("up_next").ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = r.conn(ctx).ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", "queueRepository.Save").Msg("failed to clear queue")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		ids := queue.Identifiers()
		if len(ids) == 0 {
			return nil
		}

		insert := sqlite.Insert("up_next").Columns("position", "identifier")
		for position, id := range ids {
			insert = insert.Values(position, id)
		}

		query, args, err = insert.ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = r.conn(ctx).ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "queueRepository.Save").
				Int("size", len(ids)).
				Msg("failed to write queue")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		return nil
	})
}
