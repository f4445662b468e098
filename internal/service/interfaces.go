// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-pod-sync/models"
)

// SyncService is the server side of a sync exchange.
type SyncService interface {
	// Exchange applies the changes carried by req and returns the resulting
	// collection state. notModified is true when req carries no changes and
	// its watermark already matches the stored version; the snapshot is
	// empty then.
	Exchange(ctx context.Context, collection models.Collection, req models.SyncRequest) (snapshot models.Snapshot, notModified bool, err error)
}

// CatalogService serves podcast and episode metadata.
type CatalogService interface {
	Podcast(ctx context.Context, identifier string) (models.Podcast, error)
	Episode(ctx context.Context, podcast, identifier string) (models.Episode, error)
	File(ctx context.Context, identifier string) (models.Episode, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
