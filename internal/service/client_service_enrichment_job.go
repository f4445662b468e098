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

const enrichmentBatchSize = 50

// enrichmentJob fills metadata of skeleton episodes created during merges.
type enrichmentJob struct {
	episodes store.LocalEpisodeRepository
	catalog  adapter.CatalogAdapter

	batch       uint64
	concurrency int
	logger      *logger.Logger
}

func NewEnrichmentJob(episodes store.LocalEpisodeRepository, catalog adapter.CatalogAdapter, concurrency int, logger *logger.Logger) Job {
	if concurrency <= 0 {
		concurrency = defaultImportConcurrency
	}
	return &enrichmentJob{
		episodes:    episodes,
		catalog:     catalog,
		batch:       enrichmentBatchSize,
		concurrency: concurrency,
		logger:      logger,
	}
}

func (j *enrichmentJob) RunOnce(ctx context.Context) error {
	skeletons, err := j.episodes.ListSkeletons(ctx, j.batch)
	if err != nil {
		return fmt.Errorf("list skeletons: %w", err)
	}
	if len(skeletons) == 0 {
		return nil
	}

	var (
		mu       sync.Mutex
		errs     []error
		enriched int
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(j.concurrency)

	for _, skeleton := range skeletons {
		g.Go(func() error {
			if err := j.enrich(gCtx, skeleton); err != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("episode %s: %w", skeleton.Identifier, err))
				mu.Unlock()
				return nil
			}
			mu.Lock()
			enriched++
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	j.logger.Info().Int("enriched", enriched).Int("failed", len(errs)).Msg("enrichment run finished")

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrPartialImportFailure, errors.Join(errs...))
	}
	return nil
}

func (j *enrichmentJob) enrich(ctx context.Context, skeleton models.Episode) error {
	var (
		episode models.Episode
		err     error
	)
	if skeleton.IsStandalone() {
		episode, err = j.catalog.FetchFile(ctx, skeleton.Identifier)
	} else {
		episode, err = j.catalog.FetchEpisode(ctx, skeleton.ParentIdentifier, skeleton.Identifier)
	}
	if err != nil {
		return err
	}

	episode.Identifier = skeleton.Identifier
	episode.ParentIdentifier = skeleton.ParentIdentifier
	episode.Skeleton = false

	return j.episodes.Upsert(ctx, episode)
}
