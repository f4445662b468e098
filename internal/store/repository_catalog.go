// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/go-pod-sync/internal/logger"
	"github.com/MKhiriev/go-pod-sync/models"
)

var serverEpisodeColumns = []string{
	"identifier",
	"parent_identifier",
	"title",
	"published_at_ms",
	"starred",
	"starred_modified_at_ms",
}

// catalogRepository is the PostgreSQL-backed implementation of
// [CatalogRepository] over the podcasts and episodes tables.
type catalogRepository struct {
	*DB
	logger *logger.Logger
}

func NewCatalogRepository(db *DB, logger *logger.Logger) CatalogRepository {
	logger.Debug().Msg("creating catalog repository")
	return &catalogRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *catalogRepository) FindPodcast(ctx context.Context, identifier string) (models.Podcast, error) {
	query, args, err := postgres.Select("identifier", "title", "author").
		From("podcasts").
		Where(sq.Eq{"identifier": identifier}).
		ToSql()
	if err != nil {
		return models.Podcast{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var podcast models.Podcast
	err = r.conn(ctx).QueryRowContext(ctx, query, args...).Scan(&podcast.Identifier, &podcast.Title, &podcast.Author)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Podcast{}, fmt.Errorf("%w: %s", ErrPodcastNotFound, identifier)
	case err != nil:
		logger.FromContext(ctx).Err(err).
			Str("func", "catalogRepository.FindPodcast").
			Str("identifier", identifier).
			Msg("failed to read podcast")
		return models.Podcast{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return podcast, nil
}

func (r *catalogRepository) FindEpisode(ctx context.Context, identifier string) (models.Episode, error) {
	query, args, err := postgres.Select(serverEpisodeColumns...).
		From("episodes").
		Where(sq.Eq{"identifier": identifier}).
		ToSql()
	if err != nil {
		return models.Episode{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	episode, err := scanServerEpisode(r.conn(ctx).QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Episode{}, fmt.Errorf("%w: %s", ErrEpisodeNotFound, identifier)
	case err != nil:
		logger.FromContext(ctx).Err(err).
			Str("func", "catalogRepository.FindEpisode").
			Str("identifier", identifier).
			Msg("failed to read episode")
		return models.Episode{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return episode, nil
}

func (r *catalogRepository) FindEpisodes(ctx context.Context, identifiers []string) (map[string]models.Episode, error) {
	found := make(map[string]models.Episode, len(identifiers))
	if len(identifiers) == 0 {
		return found, nil
	}

	query, args, err := postgres.Select(serverEpisodeColumns...).
		From("episodes").
		Where(sq.Eq{"identifier": identifiers}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	episodes, err := r.queryEpisodes(ctx, "catalogRepository.FindEpisodes", query, args)
	if err != nil {
		return nil, err
	}
	for _, episode := range episodes {
		found[episode.Identifier] = episode
	}

	return found, nil
}

func (r *catalogRepository) UpsertEpisodes(ctx context.Context, episodes ...models.EpisodeMeta) error {
	if len(episodes) == 0 {
		return nil
	}

	return r.WithinTx(ctx, func(ctx context.Context) error {
		log := logger.FromContext(ctx)

		query, args, err := buildUpsertPodcastPlaceholdersQuery(episodes)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if query != "" {
			if _, err = r.conn(ctx).ExecContext(ctx, query, args...); err != nil {
				log.Err(err).Str("func", "catalogRepository.UpsertEpisodes").Msg("failed to insert placeholder podcasts")
				return classifyExecError(err)
			}
		}

		query, args, err = buildUpsertEpisodesQuery(episodes)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = r.conn(ctx).ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "catalogRepository.UpsertEpisodes").
				Int("count", len(episodes)).
				Msg("failed to upsert episodes")
			return classifyExecError(err)
		}

		return nil
	})
}

func (r *catalogRepository) SetFlag(ctx context.Context, flag models.FlagState) (bool, error) {
	query, args, err := postgres.Update("episodes").
		Set("starred", flag.Value).
		Set("starred_modified_at_ms", flag.LastModifiedAtMs).
		Where(sq.And{
			sq.Eq{"identifier": flag.Identifier},
			sq.Lt{"starred_modified_at_ms": flag.LastModifiedAtMs},
		}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.conn(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "catalogRepository.SetFlag").
			Str("identifier", flag.Identifier).
			Msg("failed to update flag")
		return false, classifyExecError(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected > 0, nil
}

func (r *catalogRepository) StarredSince(ctx context.Context, afterMs int64) ([]models.Episode, error) {
	query, args, err := postgres.Select(serverEpisodeColumns...).
		From("episodes").
		Where(sq.Gt{"starred_modified_at_ms": afterMs}).
		OrderBy("starred_modified_at_ms ASC", "identifier ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryEpisodes(ctx, "catalogRepository.StarredSince", query, args)
}

func (r *catalogRepository) queryEpisodes(ctx context.Context, fn, query string, args []any) ([]models.Episode, error) {
	log := logger.FromContext(ctx)

	rows, err := r.conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to query episodes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	episodes := make([]models.Episode, 0)
	for rows.Next() {
		episode, scanErr := scanServerEpisode(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", fn).Msg("failed to scan episode row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		episodes = append(episodes, episode)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return episodes, nil
}

// buildUpsertPodcastPlaceholdersQuery returns an empty query when every
// episode is a user file.
func buildUpsertPodcastPlaceholdersQuery(episodes []models.EpisodeMeta) (string, []any, error) {
	seen := make(map[string]struct{})
	insert := postgres.Insert("podcasts").Columns("identifier")
	for _, episode := range episodes {
		parent := episode.ParentIdentifier
		if parent == "" || parent == models.NoPodcastIdentifier {
			continue
		}
		if _, ok := seen[parent]; ok {
			continue
		}
		seen[parent] = struct{}{}
		insert = insert.Values(parent)
	}

	if len(seen) == 0 {
		return "", nil, nil
	}

	return insert.Suffix("ON CONFLICT (identifier) DO NOTHING").ToSql()
}

func buildUpsertEpisodesQuery(episodes []models.EpisodeMeta) (string, []any, error) {
	insert := postgres.Insert("episodes").
		Columns("identifier", "parent_identifier", "title", "published_at_ms")

	// postgres rejects a statement that touches the same row twice
	seen := make(map[string]struct{}, len(episodes))
	for i := len(episodes) - 1; i >= 0; i-- {
		episode := episodes[i]
		if _, ok := seen[episode.Identifier]; ok {
			continue
		}
		seen[episode.Identifier] = struct{}{}
		insert = insert.Values(episode.Identifier, episode.ParentIdentifier, episode.Title, nullableInt64(episode.PublishedAtMs))
	}

	return insert.Suffix("ON CONFLICT (identifier) DO UPDATE SET " +
		"parent_identifier = EXCLUDED.parent_identifier, " +
		"title = COALESCE(NULLIF(EXCLUDED.title, ''), episodes.title), " +
		"published_at_ms = COALESCE(EXCLUDED.published_at_ms, episodes.published_at_ms)").
		ToSql()
}

func scanServerEpisode(row rowScanner) (models.Episode, error) {
	var (
		episode   models.Episode
		published sql.NullInt64
	)

	err := row.Scan(
		&episode.Identifier,
		&episode.ParentIdentifier,
		&episode.Title,
		&published,
		&episode.Starred,
		&episode.StarredModifiedAtMs,
	)
	if err != nil {
		return models.Episode{}, err
	}

	if published.Valid {
		episode.PublishedAtMs = &published.Int64
	}

	return episode, nil
}

func classifyExecError(err error) error {
	switch postgresError(err) {
	case pgerrcode.UniqueViolation:
		return fmt.Errorf("%w: %w", ErrConflictingWrite, err)
	default:
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
}
