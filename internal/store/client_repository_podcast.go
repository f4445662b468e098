// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pod-sync/internal/logger"
	"github.com/MKhiriev/go-pod-sync/models"
)

type localPodcastRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalPodcastRepository(db *DB, logger *logger.Logger) LocalPodcastRepository {
	logger.Debug().Msg("creating local podcast repository")
	return &localPodcastRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *localPodcastRepository) Exists(ctx context.Context, identifier string) (bool, error) {
	query, args, err := sqlite.Select("COUNT(*)").
		From("podcasts").
		Where(sq.Eq{"identifier": identifier}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = r.conn(ctx).QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localPodcastRepository.Exists").
			Str("identifier", identifier).
			Msg("failed to look up podcast")
		return false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return count > 0, nil
}

func (r *localPodcastRepository) Save(ctx context.Context, podcast models.Podcast) error {
	query, args, err := sqlite.Insert("podcasts").
		Columns("identifier", "title", "author", "skeleton").
		Values(podcast.Identifier, podcast.Title, podcast.Author, podcast.Skeleton).
		Suffix("ON CONFLICT(identifier) DO UPDATE SET " +
			"title = excluded.title, author = excluded.author, skeleton = excluded.skeleton").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.conn(ctx).ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localPodcastRepository.Save").
			Str("identifier", podcast.Identifier).
			Msg("failed to save podcast")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
