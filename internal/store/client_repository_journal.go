// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pod-sync/internal/logger"
	"github.com/MKhiriev/go-pod-sync/models"
)

// localJournalRepository keeps the change journal in the change_journal
// table. Multi subject entries store their identifiers as a JSON array.
type localJournalRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalJournalRepository(db *DB, logger *logger.Logger) LocalJournalRepository {
	logger.Debug().Msg("creating local journal repository")
	return &localJournalRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *localJournalRepository) Append(ctx context.Context, entry models.JournalEntry) (models.JournalEntry, error) {
	log := logger.FromContext(ctx)

	if err := entry.Validate(); err != nil {
		log.Err(err).Str("func", "localJournalRepository.Append").Msg("refusing to append invalid journal entry")
		return models.JournalEntry{}, err
	}

	query, args, err := buildAppendJournalQuery(entry)
	if err != nil {
		log.Err(err).Str("func", "localJournalRepository.Append").Msg("failed to build append query")
		return models.JournalEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.conn(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "localJournalRepository.Append").
			Str("kind", entry.Kind.String()).
			Int64("modified_at_ms", entry.ModifiedAtMs).
			Msg("failed to append journal entry")
		return models.JournalEntry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	id, err := res.LastInsertId()
	if err != nil || id == 0 {
		log.Error().Err(err).Str("func", "localJournalRepository.Append").Msg("journal entry got no id")
		return models.JournalEntry{}, fmt.Errorf("%w: %w", ErrJournalEntryNotSaved, err)
	}

	entry.ID = id
	log.Debug().
		Str("func", "localJournalRepository.Append").
		Int64("id", id).
		Str("kind", entry.Kind.String()).
		Msg("journal entry appended")

	return entry, nil
}

func (r *localJournalRepository) ReadAllPending(ctx context.Context) ([]models.JournalEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildReadJournalQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "localJournalRepository.ReadAllPending").Msg("failed to query journal")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.JournalEntry, 0)
	for rows.Next() {
		entry, scanErr := scanJournalEntry(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "localJournalRepository.ReadAllPending").Msg("failed to scan journal row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "localJournalRepository.ReadAllPending").Msg("error iterating journal rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

func (r *localJournalRepository) PruneUpTo(ctx context.Context, maxModifiedAtMs, maxID int64) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildPruneJournalQuery(maxModifiedAtMs, maxID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.conn(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "localJournalRepository.PruneUpTo").
			Int64("max_modified_at_ms", maxModifiedAtMs).
			Int64("max_id", maxID).
			Msg("failed to prune journal")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	pruned, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Debug().
		Str("func", "localJournalRepository.PruneUpTo").
		Int64("max_modified_at_ms", maxModifiedAtMs).
		Int64("pruned", pruned).
		Msg("journal pruned")

	return pruned, nil
}

func (r *localJournalRepository) Count(ctx context.Context) (int64, error) {
	query, args, err := sqlite.Select("COUNT(*)").From("change_journal").ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err = r.conn(ctx).QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localJournalRepository.Count").Msg("failed to count journal")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return count, nil
}

func buildAppendJournalQuery(entry models.JournalEntry) (string, []any, error) {
	subjects := ""
	if entry.Kind.IsMultiSubject() {
		ids := entry.Subjects
		if ids == nil {
			ids = []string{}
		}
		raw, err := json.Marshal(ids)
		if err != nil {
			return "", nil, err
		}
		subjects = string(raw)
	}

	return sqlite.Insert("change_journal").
		Columns("kind", "subject", "subjects", "modified_at_ms").
		Values(int(entry.Kind), entry.Subject, subjects, entry.ModifiedAtMs).
		ToSql()
}

func buildReadJournalQuery() (string, []any, error) {
	return sqlite.Select("id", "kind", "subject", "subjects", "modified_at_ms").
		From("change_journal").
		OrderBy("id ASC").
		ToSql()
}

func buildPruneJournalQuery(maxModifiedAtMs, maxID int64) (string, []any, error) {
	return sqlite.Delete("change_journal").
		Where(sq.And{
			sq.LtOrEq{"modified_at_ms": maxModifiedAtMs},
			sq.LtOrEq{"id": maxID},
		}).
		ToSql()
}

func scanJournalEntry(rows *sql.Rows) (models.JournalEntry, error) {
	var (
		entry    models.JournalEntry
		kind     int
		subjects string
	)

	if err := rows.Scan(&entry.ID, &kind, &entry.Subject, &subjects, &entry.ModifiedAtMs); err != nil {
		return models.JournalEntry{}, err
	}

	entry.Kind = models.ChangeKind(kind)
	if entry.Kind.IsMultiSubject() {
		entry.Subjects = make([]string, 0)
		if subjects != "" {
			if err := json.Unmarshal([]byte(subjects), &entry.Subjects); err != nil {
				return models.JournalEntry{}, fmt.Errorf("decoding subjects of entry %d: %w", entry.ID, err)
			}
		}
		entry.Subject = ""
	}

	return entry, entry.Validate()
}
