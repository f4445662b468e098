// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-pod-sync/internal/config"
	"github.com/MKhiriev/go-pod-sync/internal/logger"
	"github.com/MKhiriev/go-pod-sync/internal/utils"
	"github.com/MKhiriev/go-pod-sync/models"
)

const syncPath = "/api/sync/{collection}"

type httpSyncTransport struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPSyncTransport returns a [SyncTransport] that POSTs payloads to
// /api/sync/{collection} on adapterCfg.HTTPAddress.
func NewHTTPSyncTransport(adapterCfg config.ClientAdapter, logger *logger.Logger) (SyncTransport, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpSyncTransport{
		client: utils.NewConfiguredHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func (h *httpSyncTransport) Exchange(ctx context.Context, collection models.Collection, contentType string, body []byte) (models.Exchange, error) {
	log := logger.FromContext(ctx)

	// resty rejects a typed nil slice as a body
	if body == nil {
		body = []byte{}
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetHeader("Accept", contentType).
		SetPathParam("collection", string(collection)).
		SetBody(body).
		Post(syncPath)
	if err != nil {
		log.Err(err).
			Str("func", "httpSyncTransport.Exchange").
			Str("collection", string(collection)).
			Msg("sync request failed")
		return models.Exchange{}, fmt.Errorf("%w: sync request: %w", ErrTransport, err)
	}

	if resp.StatusCode() == http.StatusNotModified {
		return models.Exchange{NotModified: true}, nil
	}
	if err = mapHTTPError(resp); err != nil {
		log.Warn().
			Str("func", "httpSyncTransport.Exchange").
			Str("collection", string(collection)).
			Int("status", resp.StatusCode()).
			Msg("sync request rejected")
		return models.Exchange{}, err
	}

	return models.Exchange{Body: resp.Body()}, nil
}

func (h *httpSyncTransport) Close() error {
	h.client.GetClient().CloseIdleConnections()
	return nil
}
