// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-pod-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CatalogRepository is the server's podcast and episode catalogue.
type CatalogRepository interface {
	FindPodcast(ctx context.Context, identifier string) (models.Podcast, error)
	FindEpisode(ctx context.Context, identifier string) (models.Episode, error)
	FindEpisodes(ctx context.Context, identifiers []string) (map[string]models.Episode, error)
	// UpsertEpisodes stores metadata pushed by clients and creates placeholder
	// podcasts for unknown parents. Stored flags are kept.
	UpsertEpisodes(ctx context.Context, episodes ...models.EpisodeMeta) error
	// SetFlag applies flag when it is newer than the stored one and reports
	// whether it did.
	SetFlag(ctx context.Context, flag models.FlagState) (bool, error)
	StarredSince(ctx context.Context, afterMs int64) ([]models.Episode, error)
}

// UpNextRepository is the server's copy of the Up Next queue.
type UpNextRepository interface {
	Load(ctx context.Context) (models.QueueState, error)
	Save(ctx context.Context, queue models.QueueState) error
}

// SyncStateRepository keeps the version of each collection and the latest
// change applied from each device.
type SyncStateRepository interface {
	// LockVersion returns the current version and holds a row lock until the
	// surrounding transaction ends.
	LockVersion(ctx context.Context, collection models.Collection) (int64, error)
	SetVersion(ctx context.Context, collection models.Collection, version int64) error
	AppliedCursor(ctx context.Context, deviceID string, collection models.Collection) (int64, error)
	SetAppliedCursor(ctx context.Context, deviceID string, collection models.Collection, modifiedAtMs int64) error
}
