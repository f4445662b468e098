// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pod-sync/internal/logger"
	"github.com/MKhiriev/go-pod-sync/internal/store"
	"github.com/MKhiriev/go-pod-sync/models"
)

type catalogService struct {
	catalog store.CatalogRepository

	logger *logger.Logger
}

func NewCatalogService(catalog store.CatalogRepository, logger *logger.Logger) CatalogService {
	return &catalogService{catalog: catalog, logger: logger}
}

func (s *catalogService) Podcast(ctx context.Context, identifier string) (models.Podcast, error) {
	if identifier == "" || identifier == models.NoPodcastIdentifier {
		return models.Podcast{}, fmt.Errorf("%w: %q", store.ErrPodcastNotFound, identifier)
	}
	return s.catalog.FindPodcast(ctx, identifier)
}

// Episode returns the episode only when it belongs to podcast.
func (s *catalogService) Episode(ctx context.Context, podcast, identifier string) (models.Episode, error) {
	episode, err := s.catalog.FindEpisode(ctx, identifier)
	if err != nil {
		return models.Episode{}, err
	}
	if episode.ParentIdentifier != podcast {
		return models.Episode{}, fmt.Errorf("%w: %s in %s", store.ErrEpisodeNotFound, identifier, podcast)
	}
	return episode, nil
}

// File returns an episode stored under the standalone sentinel.
func (s *catalogService) File(ctx context.Context, identifier string) (models.Episode, error) {
	return s.Episode(ctx, models.NoPodcastIdentifier, identifier)
}
