// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pod-sync/internal/logger"
	"github.com/MKhiriev/go-pod-sync/internal/mock"
	"github.com/MKhiriev/go-pod-sync/internal/store"
	"github.com/MKhiriev/go-pod-sync/models"
)

func newTestCatalogService(t *testing.T) (CatalogService, *mock.MockCatalogRepository) {
	t.Helper()
	repo := mock.NewMockCatalogRepository(gomock.NewController(t))
	return NewCatalogService(repo, logger.Nop()), repo
}

func TestCatalogService_Podcast(t *testing.T) {
	svc, repo := newTestCatalogService(t)
	ctx := testContext()

	repo.EXPECT().FindPodcast(ctx, "pod").Return(models.Podcast{Identifier: "pod", Title: "Show"}, nil)

	podcast, err := svc.Podcast(ctx, "pod")
	require.NoError(t, err)
	assert.Equal(t, "Show", podcast.Title)
}

func TestCatalogService_Podcast_SentinelIsNeverAPodcast(t *testing.T) {
	svc, _ := newTestCatalogService(t)

	_, err := svc.Podcast(testContext(), models.NoPodcastIdentifier)
	assert.ErrorIs(t, err, store.ErrPodcastNotFound)

	_, err = svc.Podcast(testContext(), "")
	assert.ErrorIs(t, err, store.ErrPodcastNotFound)
}

func TestCatalogService_Episode(t *testing.T) {
	svc, repo := newTestCatalogService(t)
	ctx := testContext()

	stored := models.Episode{Identifier: "ep", ParentIdentifier: "pod"}
	repo.EXPECT().FindEpisode(ctx, "ep").Return(stored, nil).Times(2)

	episode, err := svc.Episode(ctx, "pod", "ep")
	require.NoError(t, err)
	assert.Equal(t, stored, episode)

	_, err = svc.Episode(ctx, "other", "ep")
	assert.ErrorIs(t, err, store.ErrEpisodeNotFound)
}

func TestCatalogService_File(t *testing.T) {
	svc, repo := newTestCatalogService(t)
	ctx := testContext()

	repo.EXPECT().FindEpisode(ctx, "file").
		Return(models.Episode{Identifier: "file", ParentIdentifier: models.NoPodcastIdentifier}, nil)
	repo.EXPECT().FindEpisode(ctx, "ep").
		Return(models.Episode{Identifier: "ep", ParentIdentifier: "pod"}, nil)

	file, err := svc.File(ctx, "file")
	require.NoError(t, err)
	assert.True(t, file.IsStandalone())

	_, err = svc.File(ctx, "ep")
	assert.ErrorIs(t, err, store.ErrEpisodeNotFound)
}
