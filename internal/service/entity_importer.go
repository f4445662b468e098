// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-pod-sync/internal/adapter"
	"github.com/MKhiriev/go-pod-sync/internal/logger"
	"github.com/MKhiriev/go-pod-sync/internal/store"
	"github.com/MKhiriev/go-pod-sync/models"
)

const defaultImportConcurrency = 4

// entityImporter warms the local entity cache. Episodes and podcasts are
// written outside the commit transaction of the cycle that found them, so a
// failed commit keeps them and the retry reuses them; they only become
// visible through a committed queue or flag.
type entityImporter struct {
	episodes store.LocalEpisodeRepository
	podcasts store.LocalPodcastRepository
	catalog  adapter.CatalogAdapter

	concurrency int
	logger      *logger.Logger
}

// NewEntityImporter returns an importer that fetches at most concurrency
// podcasts at once.
func NewEntityImporter(
	episodes store.LocalEpisodeRepository,
	podcasts store.LocalPodcastRepository,
	catalog adapter.CatalogAdapter,
	concurrency int,
	logger *logger.Logger,
) EntityImporter {
	if concurrency <= 0 {
		concurrency = defaultImportConcurrency
	}
	return &entityImporter{
		episodes:    episodes,
		podcasts:    podcasts,
		catalog:     catalog,
		concurrency: concurrency,
		logger:      logger,
	}
}

func (i *entityImporter) ResolveEntity(
	ctx context.Context,
	parent *string,
	identifier, placeholderTitle string,
	placeholderPublishedAtMs *int64,
) (*models.Episode, error) {
	if parent == nil {
		return nil, nil
	}
	if identifier == "" {
		return nil, ErrEmptyIdentifier
	}

	existing, err := i.episodes.FindByIdentifier(ctx, identifier)
	switch {
	case err == nil:
		return &existing, nil
	case !errors.Is(err, store.ErrEpisodeNotFound):
		return nil, fmt.Errorf("find episode %s: %w", identifier, err)
	}

	if *parent == models.NoPodcastIdentifier {
		return i.importStandalone(ctx, identifier, placeholderTitle, placeholderPublishedAtMs)
	}

	// show-scoped: store identifiers only, metadata comes from enrichment
	skeleton := models.Episode{Identifier: identifier, ParentIdentifier: *parent, Skeleton: true}
	if err = i.episodes.SaveSkeleton(ctx, skeleton); err != nil {
		return nil, fmt.Errorf("save skeleton %s: %w", identifier, err)
	}

	return &skeleton, nil
}

func (i *entityImporter) importStandalone(ctx context.Context, identifier, placeholderTitle string, placeholderPublishedAtMs *int64) (*models.Episode, error) {
	log := logger.FromContext(ctx)

	episode, err := i.catalog.FetchFile(ctx, identifier)
	if err != nil {
		log.Warn().Err(err).
			Str("func", "entityImporter.importStandalone").
			Str("identifier", identifier).
			Msg("file metadata unavailable, using placeholders")

		episode = models.Episode{
			Identifier:    identifier,
			Title:         placeholderTitle,
			PublishedAtMs: placeholderPublishedAtMs,
			Skeleton:      true,
		}
	}
	episode.Identifier = identifier
	episode.ParentIdentifier = models.NoPodcastIdentifier

	if err = i.episodes.Upsert(ctx, episode); err != nil {
		return nil, fmt.Errorf("save file %s: %w", identifier, err)
	}

	return &episode, nil
}

func (i *entityImporter) ResolveMissingParents(ctx context.Context, parents []string) error {
	var (
		mu   sync.Mutex
		errs []error
	)

	g := new(errgroup.Group)
	g.SetLimit(i.concurrency)

	for _, parent := range uniqueParents(parents) {
		g.Go(func() error {
			if err := i.fetchOrDownload(ctx, parent); err != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("podcast %s: %w", parent, err))
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrPartialImportFailure, errors.Join(errs...))
	}

	return nil
}

func (i *entityImporter) fetchOrDownload(ctx context.Context, identifier string) error {
	exists, err := i.podcasts.Exists(ctx, identifier)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	podcast, err := i.catalog.FetchPodcast(ctx, identifier)
	if err != nil {
		return err
	}
	podcast.Identifier = identifier

	return i.podcasts.Save(ctx, podcast)
}

// uniqueParents drops empty values, the standalone sentinel and duplicates
// while keeping the first-seen order.
func uniqueParents(parents []string) []string {
	seen := make(map[string]struct{}, len(parents))
	unique := make([]string, 0, len(parents))
	for _, p := range parents {
		if p == "" || p == models.NoPodcastIdentifier {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		unique = append(unique, p)
	}
	return unique
}
