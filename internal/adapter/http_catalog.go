// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pod-sync/internal/config"
	"github.com/MKhiriev/go-pod-sync/internal/logger"
	"github.com/MKhiriev/go-pod-sync/internal/utils"
	"github.com/MKhiriev/go-pod-sync/models"
)

type httpCatalogAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPCatalogAdapter returns a [CatalogAdapter] reading the JSON catalogue
// endpoints of the server.
func NewHTTPCatalogAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (CatalogAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpCatalogAdapter{
		client: utils.NewConfiguredHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func (h *httpCatalogAdapter) FetchPodcast(ctx context.Context, identifier string) (models.Podcast, error) {
	var podcast models.Podcast

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetPathParam("podcast", identifier).
		SetResult(&podcast).
		Get("/api/podcasts/{podcast}")
	if err != nil {
		return models.Podcast{}, fmt.Errorf("%w: fetch podcast: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Podcast{}, err
	}

	return podcast, nil
}

func (h *httpCatalogAdapter) FetchEpisode(ctx context.Context, podcast, identifier string) (models.Episode, error) {
	var episode models.Episode

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetPathParams(map[string]string{"podcast": podcast, "episode": identifier}).
		SetResult(&episode).
		Get("/api/podcasts/{podcast}/episodes/{episode}")
	if err != nil {
		return models.Episode{}, fmt.Errorf("%w: fetch episode: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Episode{}, err
	}

	return episode, nil
}

func (h *httpCatalogAdapter) FetchFile(ctx context.Context, identifier string) (models.Episode, error) {
	var file models.Episode

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetPathParam("file", identifier).
		SetResult(&file).
		Get("/api/files/{file}")
	if err != nil {
		return models.Episode{}, fmt.Errorf("%w: fetch file: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Episode{}, err
	}

	file.ParentIdentifier = models.NoPodcastIdentifier
	return file, nil
}
