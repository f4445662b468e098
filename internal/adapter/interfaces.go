// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter connects the sync client to the server of record.
//
// [SyncTransport] moves already encoded sync payloads over HTTP or gRPC and
// reports the transport-level "not modified" signal. [CatalogAdapter] fetches
// podcast and episode metadata for the entity importer. Transport errors are
// mapped to the sentinels in errors.go so callers can match them with
// [errors.Is] regardless of the protocol.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-pod-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// SyncTransport performs one sync exchange for a collection. body is already
// encoded with the codec named by contentType.
type SyncTransport interface {
	Exchange(ctx context.Context, collection models.Collection, contentType string, body []byte) (models.Exchange, error)
	Close() error
}

// CatalogAdapter fetches entity metadata from the server catalogue.
type CatalogAdapter interface {
	FetchPodcast(ctx context.Context, identifier string) (models.Podcast, error)
	FetchEpisode(ctx context.Context, podcast, identifier string) (models.Episode, error)
	// FetchFile fetches a user file, an episode without a podcast.
	FetchFile(ctx context.Context, identifier string) (models.Episode, error)
}
