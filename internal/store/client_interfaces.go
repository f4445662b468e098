// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-pod-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// Transactor runs fn in one database transaction. Repositories called with
// the context handed to fn take part in it.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// LocalJournalRepository is the durable change journal of pending queue
// mutations.
type LocalJournalRepository interface {
	// Append stores entry and returns it with its assigned ID.
	Append(ctx context.Context, entry models.JournalEntry) (models.JournalEntry, error)
	// ReadAllPending returns every stored entry in ascending ID order.
	ReadAllPending(ctx context.Context) ([]models.JournalEntry, error)
	// PruneUpTo deletes entries with modified_at_ms <= maxModifiedAtMs and
	// id <= maxID and returns the number of deleted rows.
	PruneUpTo(ctx context.Context, maxModifiedAtMs, maxID int64) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// WatermarkRepository stores one monotonic cursor per sync stream.
type WatermarkRepository interface {
	// Get returns 0 for a stream that was never synced.
	Get(ctx context.Context, stream string) (int64, error)
	// Set fails with ErrWatermarkRegression when value is below the stored one.
	Set(ctx context.Context, stream string, value int64) error
	Reset(ctx context.Context, stream string) error
}

// LocalEpisodeRepository stores episodes and their starred flag.
type LocalEpisodeRepository interface {
	FindByIdentifier(ctx context.Context, identifier string) (models.Episode, error)
	FindByIdentifiers(ctx context.Context, identifiers []string) (map[string]models.Episode, error)
	// SaveSkeleton inserts the episode unless it already exists.
	SaveSkeleton(ctx context.Context, episode models.Episode) error
	// Upsert writes episode metadata and keeps the stored flag.
	Upsert(ctx context.Context, episode models.Episode) error
	ListSkeletons(ctx context.Context, limit uint64) ([]models.Episode, error)
	GetFlag(ctx context.Context, identifier string) (models.FlagState, error)
	// SetFlag stores a local edit and queues it for push.
	SetFlag(ctx context.Context, flag models.FlagState) error
	// MergeFlag stores a server flag if it is newer than the stored one and
	// reports whether it was applied.
	MergeFlag(ctx context.Context, flag models.FlagState) (bool, error)
	// PendingFlags returns local edits with a sequence above afterSeq, in
	// sequence order, and the highest sequence seen (afterSeq when none).
	PendingFlags(ctx context.Context, afterSeq int64) ([]models.FlagState, int64, error)
}

// LocalPodcastRepository stores podcasts known to the client.
type LocalPodcastRepository interface {
	Exists(ctx context.Context, identifier string) (bool, error)
	Save(ctx context.Context, podcast models.Podcast) error
}

// QueueRepository persists the Up Next order.
type QueueRepository interface {
	Load(ctx context.Context) (models.QueueState, error)
	Save(ctx context.Context, queue models.QueueState) error
}

// SettingsRepository is a small key/value store for client settings.
type SettingsRepository interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}
