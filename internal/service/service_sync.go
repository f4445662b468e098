// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-pod-sync/internal/logger"
	"github.com/MKhiriev/go-pod-sync/internal/store"
	"github.com/MKhiriev/go-pod-sync/models"
)

const (
	txRetryBaseDelay = 20 * time.Millisecond
	txMaxRetries     = 3
)

// syncService is the server of record. Every exchange runs in one
// transaction holding a row lock on the collection version, so exchanges of
// the same collection are serialised.
type syncService struct {
	tx        store.Transactor
	catalog   store.CatalogRepository
	upNext    store.UpNextRepository
	syncState store.SyncStateRepository

	retryable func(error) bool
	now       func() time.Time

	logger *logger.Logger
}

func NewSyncService(storages *store.Storages, logger *logger.Logger) SyncService {
	return &syncService{
		tx:        storages.Transactor,
		catalog:   storages.Catalog,
		upNext:    storages.UpNext,
		syncState: storages.SyncState,
		retryable: storages.IsRetryable,
		now:       time.Now,
		logger:    logger,
	}
}

func (s *syncService) Exchange(ctx context.Context, collection models.Collection, req models.SyncRequest) (models.Snapshot, bool, error) {
	if err := validateRequest(req); err != nil {
		return models.Snapshot{}, false, err
	}

	var exchange func(ctx context.Context, req models.SyncRequest) (models.Snapshot, bool, error)
	switch collection {
	case models.CollectionUpNext:
		exchange = s.exchangeUpNext
	case models.CollectionStarred:
		exchange = s.exchangeStarred
	default:
		return models.Snapshot{}, false, fmt.Errorf("%w: %q", ErrUnknownCollection, collection)
	}

	var (
		snapshot    models.Snapshot
		notModified bool
	)
	backoff := retry.WithMaxRetries(txMaxRetries, retry.NewExponential(txRetryBaseDelay))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var err error
		snapshot, notModified, err = exchange(ctx, req)
		if err != nil && s.retryable != nil && s.retryable(err) {
			logger.FromContext(ctx).Warn().Err(err).
				Str("collection", string(collection)).
				Msg("sync transaction conflicted, retrying")
			return retry.RetryableError(err)
		}
		return err
	})
	if err != nil {
		return models.Snapshot{}, false, err
	}

	return snapshot, notModified, nil
}

func (s *syncService) exchangeUpNext(ctx context.Context, req models.SyncRequest) (models.Snapshot, bool, error) {
	var (
		snapshot    models.Snapshot
		notModified bool
	)

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		version, err := s.syncState.LockVersion(ctx, models.CollectionUpNext)
		if err != nil {
			return err
		}

		if len(req.Changes) == 0 && matches(req.LastWatermark, version) {
			notModified = true
			return nil
		}

		queue, err := s.upNext.Load(ctx)
		if err != nil {
			return err
		}

		if len(req.Changes) > 0 {
			if err = s.catalog.UpsertEpisodes(ctx, req.Episodes...); err != nil {
				return fmt.Errorf("store episode metadata: %w", err)
			}
			if queue, err = s.applyChanges(ctx, req, queue); err != nil {
				return err
			}

			// any push is acknowledged with a newer version so the client
			// can prune, even when every change was a duplicate
			version = max(version+1, s.now().UnixMilli())
			if err = s.syncState.SetVersion(ctx, models.CollectionUpNext, version); err != nil {
				return err
			}
		}

		snapshot, err = s.renderQueue(ctx, queue, version)
		return err
	})
	if err != nil {
		return models.Snapshot{}, false, err
	}

	return snapshot, notModified, nil
}

// applyChanges applies changes newer than the device cursor in
// modification order. Re-delivered changes are skipped.
func (s *syncService) applyChanges(ctx context.Context, req models.SyncRequest, queue models.QueueState) (models.QueueState, error) {
	cursor, err := s.syncState.AppliedCursor(ctx, req.DeviceID, models.CollectionUpNext)
	if err != nil {
		return queue, err
	}

	changes := slices.Clone(req.Changes)
	slices.SortStableFunc(changes, func(a, b models.SyncChange) int {
		return cmp.Compare(a.ModifiedAtMs, b.ModifiedAtMs)
	})

	latest, applied := cursor, 0
	for _, change := range changes {
		if change.ModifiedAtMs <= cursor {
			continue
		}
		queue = queue.Apply(change.Entry())
		latest = max(latest, change.ModifiedAtMs)
		applied++
	}

	logger.FromContext(ctx).Debug().
		Str("device_id", req.DeviceID).
		Int("received", len(changes)).
		Int("applied", applied).
		Msg("queue changes applied")

	if applied == 0 {
		return queue, nil
	}

	if err = s.upNext.Save(ctx, queue); err != nil {
		return queue, err
	}
	return queue, s.syncState.SetAppliedCursor(ctx, req.DeviceID, models.CollectionUpNext, latest)
}

func (s *syncService) renderQueue(ctx context.Context, queue models.QueueState, version int64) (models.Snapshot, error) {
	ids := queue.Identifiers()
	episodes, err := s.catalog.FindEpisodes(ctx, ids)
	if err != nil {
		return models.Snapshot{}, err
	}

	items := make([]models.SnapshotItem, 0, len(ids))
	for position, id := range ids {
		item := models.SnapshotItem{Identifier: id, Position: &position}
		if episode, ok := episodes[id]; ok {
			describe(&item, episode)
		}
		items = append(items, item)
	}

	return models.Snapshot{NewWatermark: version, Items: items}, nil
}

func (s *syncService) exchangeStarred(ctx context.Context, req models.SyncRequest) (models.Snapshot, bool, error) {
	var (
		snapshot    models.Snapshot
		notModified bool
	)

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		version, err := s.syncState.LockVersion(ctx, models.CollectionStarred)
		if err != nil {
			return err
		}

		if len(req.Flags) == 0 && matches(req.LastWatermark, version) {
			notModified = true
			return nil
		}

		if len(req.Flags) > 0 {
			if err = s.catalog.UpsertEpisodes(ctx, req.Episodes...); err != nil {
				return fmt.Errorf("store episode metadata: %w", err)
			}

			latest := version
			for _, flag := range req.Flags {
				applied, err := s.catalog.SetFlag(ctx, models.FlagState{
					Identifier:       flag.Identifier,
					Value:            flag.Value,
					LastModifiedAtMs: flag.ModifiedAtMs,
				})
				if err != nil {
					return err
				}
				if applied {
					latest = max(latest, flag.ModifiedAtMs)
				}
			}

			if latest > version {
				version = latest
				if err = s.syncState.SetVersion(ctx, models.CollectionStarred, version); err != nil {
					return err
				}
			}
		}

		var after int64
		if req.LastWatermark != nil {
			after = *req.LastWatermark
		}
		episodes, err := s.catalog.StarredSince(ctx, after)
		if err != nil {
			return err
		}

		items := make([]models.SnapshotItem, 0, len(episodes))
		for _, episode := range episodes {
			item := models.SnapshotItem{Identifier: episode.Identifier}
			describe(&item, episode)
			item.Starred = &episode.Starred
			item.StarredModifiedAtMs = &episode.StarredModifiedAtMs
			items = append(items, item)
		}

		snapshot = models.Snapshot{NewWatermark: version, Items: items}
		return nil
	})
	if err != nil {
		return models.Snapshot{}, false, err
	}

	return snapshot, notModified, nil
}

func validateRequest(req models.SyncRequest) error {
	if req.DeviceID == "" {
		return fmt.Errorf("%w: device id is required", ErrInvalidRequest)
	}
	for _, change := range req.Changes {
		if err := change.Entry().Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
		}
	}
	for _, flag := range req.Flags {
		if flag.Identifier == "" {
			return fmt.Errorf("%w: flag without identifier", ErrInvalidRequest)
		}
	}
	return nil
}

func matches(watermark *int64, version int64) bool {
	return watermark != nil && *watermark == version
}

func describe(item *models.SnapshotItem, episode models.Episode) {
	parent := episode.ParentIdentifier
	item.ParentIdentifier = &parent
	if episode.Title != "" {
		title := episode.Title
		item.Title = &title
	}
	item.PublishedAtMs = episode.PublishedAtMs
}
