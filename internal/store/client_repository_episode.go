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

var episodeColumns = []string{
	"identifier",
	"parent_identifier",
	"title",
	"published_at_ms",
	"starred",
	"starred_modified_at_ms",
	"skeleton",
}

// localEpisodeRepository keeps episodes in the episodes table. The starred
// flag lives on the episode row together with its modification time.
type localEpisodeRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalEpisodeRepository(db *DB, logger *logger.Logger) LocalEpisodeRepository {
	logger.Debug().Msg("creating local episode repository")
	return &localEpisodeRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *localEpisodeRepository) FindByIdentifier(ctx context.Context, identifier string) (models.Episode, error) {
	query, args, err := sqlite.Select(episodeColumns...).
		From("episodes").
		Where(sq.Eq{"identifier": identifier}).
		ToSql()
	if err != nil {
		return models.Episode{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	episode, err := scanEpisode(r.conn(ctx).QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Episode{}, fmt.Errorf("%w: %s", ErrEpisodeNotFound, identifier)
	case err != nil:
		logger.FromContext(ctx).Err(err).
			Str("func", "localEpisodeRepository.FindByIdentifier").
			Str("identifier", identifier).
			Msg("failed to read episode")
		return models.Episode{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return episode, nil
}

func (r *localEpisodeRepository) FindByIdentifiers(ctx context.Context, identifiers []string) (map[string]models.Episode, error) {
	found := make(map[string]models.Episode, len(identifiers))
	if len(identifiers) == 0 {
		return found, nil
	}

	log := logger.FromContext(ctx)

	query, args, err := sqlite.Select(episodeColumns...).
		From("episodes").
		Where(sq.Eq{"identifier": identifiers}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "localEpisodeRepository.FindByIdentifiers").Msg("failed to query episodes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		episode, scanErr := scanEpisode(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "localEpisodeRepository.FindByIdentifiers").Msg("failed to scan episode row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		found[episode.Identifier] = episode
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return found, nil
}

func (r *localEpisodeRepository) SaveSkeleton(ctx context.Context, episode models.Episode) error {
	episode.Skeleton = true
	query, args, err := buildInsertEpisodeQuery(episode).
		Suffix("ON CONFLICT(identifier) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.conn(ctx).ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localEpisodeRepository.SaveSkeleton").
			Str("identifier", episode.Identifier).
			Msg("failed to save skeleton episode")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *localEpisodeRepository) Upsert(ctx context.Context, episode models.Episode) error {
	query, args, err := buildInsertEpisodeQuery(episode).
		Suffix("ON CONFLICT(identifier) DO UPDATE SET " +
			"parent_identifier = excluded.parent_identifier, " +
			"title = excluded.title, " +
			"published_at_ms = excluded.published_at_ms, " +
			"skeleton = excluded.skeleton").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.conn(ctx).ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localEpisodeRepository.Upsert").
			Str("identifier", episode.Identifier).
			Msg("failed to upsert episode")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *localEpisodeRepository) ListSkeletons(ctx context.Context, limit uint64) ([]models.Episode, error) {
	log := logger.FromContext(ctx)

	query, args, err := sqlite.Select(episodeColumns...).
		From("episodes").
		Where(sq.Eq{"skeleton": true}).
		OrderBy("identifier ASC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "localEpisodeRepository.ListSkeletons").Msg("failed to query skeleton episodes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	episodes := make([]models.Episode, 0)
	for rows.Next() {
		episode, scanErr := scanEpisode(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		episodes = append(episodes, episode)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return episodes, nil
}

func (r *localEpisodeRepository) GetFlag(ctx context.Context, identifier string) (models.FlagState, error) {
	query, args, err := sqlite.Select("starred", "starred_modified_at_ms").
		From("episodes").
		Where(sq.Eq{"identifier": identifier}).
		ToSql()
	if err != nil {
		return models.FlagState{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	flag := models.FlagState{Identifier: identifier}
	err = r.conn(ctx).QueryRowContext(ctx, query, args...).Scan(&flag.Value, &flag.LastModifiedAtMs)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.FlagState{}, fmt.Errorf("%w: %s", ErrEpisodeNotFound, identifier)
	case err != nil:
		logger.FromContext(ctx).Err(err).
			Str("func", "localEpisodeRepository.GetFlag").
			Str("identifier", identifier).
			Msg("failed to read flag")
		return models.FlagState{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return flag, nil
}

// nextFlagSeq numbers local flag edits. The client database has a single
// connection, so the subquery and the update see the same state.
var nextFlagSeq = sq.Expr("(SELECT COALESCE(MAX(flag_seq), 0) + 1 FROM episodes)")

// SetFlag stores a local flag edit and gives it the next flag sequence, which
// queues it for the next push.
func (r *localEpisodeRepository) SetFlag(ctx context.Context, flag models.FlagState) error {
	log := logger.FromContext(ctx)

	query, args, err := sqlite.Update("episodes").
		Set("starred", flag.Value).
		Set("starred_modified_at_ms", flag.LastModifiedAtMs).
		Set("flag_seq", nextFlagSeq).
		Where(sq.Eq{"identifier": flag.Identifier}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := r.execFlag(ctx, query, args)
	if err != nil {
		log.Err(err).
			Str("func", "localEpisodeRepository.SetFlag").
			Str("identifier", flag.Identifier).
			Msg("failed to update flag")
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrEpisodeNotFound, flag.Identifier)
	}

	return nil
}

// MergeFlag stores a server flag only when it is newer than the stored one.
// The comparison runs in the UPDATE itself, so a local edit written after the
// merge was planned is never overwritten. Merged flags keep their sequence
// and are not pushed back.
func (r *localEpisodeRepository) MergeFlag(ctx context.Context, flag models.FlagState) (bool, error) {
	query, args, err := buildMergeFlagQuery(flag)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := r.execFlag(ctx, query, args)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localEpisodeRepository.MergeFlag").
			Str("identifier", flag.Identifier).
			Msg("failed to merge flag")
		return false, err
	}

	return affected > 0, nil
}

func buildMergeFlagQuery(flag models.FlagState) (string, []any, error) {
	return sqlite.Update("episodes").
		Set("starred", flag.Value).
		Set("starred_modified_at_ms", flag.LastModifiedAtMs).
		Where(sq.Eq{"identifier": flag.Identifier}).
		Where(sq.Lt{"starred_modified_at_ms": flag.LastModifiedAtMs}).
		ToSql()
}

func (r *localEpisodeRepository) execFlag(ctx context.Context, query string, args []any) (int64, error) {
	res, err := r.conn(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return affected, nil
}

func (r *localEpisodeRepository) PendingFlags(ctx context.Context, afterSeq int64) ([]models.FlagState, int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := sqlite.Select("identifier", "starred", "starred_modified_at_ms", "flag_seq").
		From("episodes").
		Where(sq.Gt{"flag_seq": afterSeq}).
		OrderBy("flag_seq ASC").
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "localEpisodeRepository.PendingFlags").Msg("failed to query pending flags")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var (
		flags  = make([]models.FlagState, 0)
		maxSeq = afterSeq
	)
	for rows.Next() {
		var (
			flag models.FlagState
			seq  int64
		)
		if err = rows.Scan(&flag.Identifier, &flag.Value, &flag.LastModifiedAtMs, &seq); err != nil {
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		flags = append(flags, flag)
		maxSeq = max(maxSeq, seq)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return flags, maxSeq, nil
}

func buildInsertEpisodeQuery(episode models.Episode) sq.InsertBuilder {
	return sqlite.Insert("episodes").
		Columns(episodeColumns...).
		Values(
			episode.Identifier,
			episode.ParentIdentifier,
			episode.Title,
			nullableInt64(episode.PublishedAtMs),
			episode.Starred,
			episode.StarredModifiedAtMs,
			episode.Skeleton,
		)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEpisode(row rowScanner) (models.Episode, error) {
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
		&episode.Skeleton,
	)
	if err != nil {
		return models.Episode{}, err
	}

	if published.Valid {
		episode.PublishedAtMs = &published.Int64
	}

	return episode, nil
}

func nullableInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}
