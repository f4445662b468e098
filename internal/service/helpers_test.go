// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pod-sync/internal/codec"
	"github.com/MKhiriev/go-pod-sync/internal/config"
	"github.com/MKhiriev/go-pod-sync/internal/logger"
	"github.com/MKhiriev/go-pod-sync/internal/mock"
	"github.com/MKhiriev/go-pod-sync/internal/store"
	"github.com/MKhiriev/go-pod-sync/models"
)

const (
	testDeviceID  = "device-1"
	testPodcastID = "pod-1"
	day           = 24 * time.Hour
)

func testContext() context.Context {
	return logger.Nop().WithContext(context.Background())
}

// fakeClock is a settable clock in unix milliseconds.
type fakeClock struct {
	mu sync.Mutex
	ms int64
}

func newFakeClock(ms int64) *fakeClock {
	return &fakeClock{ms: ms}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return time.UnixMilli(c.ms)
}

func (c *fakeClock) Set(ms int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ms = ms
}

func newClientStorages(t *testing.T) *store.ClientStorages {
	t.Helper()

	cfg := config.ClientStorage{DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "podsync.db")}}
	storages, err := store.NewClientStorages(testContext(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	return storages
}

// seedEpisodes stores fully described episodes of testPodcastID.
func seedEpisodes(t *testing.T, storages *store.ClientStorages, ids ...string) {
	t.Helper()

	ctx := testContext()
	require.NoError(t, storages.Podcasts.Save(ctx, models.Podcast{Identifier: testPodcastID, Title: "Podcast"}))
	for _, id := range ids {
		require.NoError(t, storages.Episodes.Upsert(ctx, models.Episode{
			Identifier:       id,
			ParentIdentifier: testPodcastID,
			Title:            "Episode " + id,
		}))
	}
}

func seedQueue(t *testing.T, storages *store.ClientStorages, ids ...string) {
	t.Helper()
	require.NoError(t, storages.Queue.Save(testContext(), models.QueueFromIdentifiers(ids)))
}

// testEngine is the client engine on a real SQLite file with a mocked
// network.
type testEngine struct {
	storages  *store.ClientStorages
	transport *mock.MockSyncTransport
	catalog   *mock.MockCatalogAdapter
	clock     *fakeClock
	codec     codec.Codec
	services  *ClientServices
}

// newTestEngine builds the engine over storages. Seed storages before calling
// it: the live queue is loaded at construction.
func newTestEngine(t *testing.T, ctrl *gomock.Controller, storages *store.ClientStorages, clock *fakeClock) *testEngine {
	t.Helper()

	cfg := config.ClientConfig{
		App:  config.ClientApp{DeviceID: testDeviceID, DeviceKind: int32(models.DeviceDesktop)},
		Sync: config.ClientSync{Codec: codec.JSON},
		Workers: config.ClientWorkers{
			RetryBaseDelay: time.Millisecond,
			RetryMaxDelay:  5 * time.Millisecond,
			MaxRetries:     2,
		},
	}

	transport := mock.NewMockSyncTransport(ctrl)
	catalog := mock.NewMockCatalogAdapter(ctrl)

	services, err := newClientServices(testContext(), storages, transport, catalog, cfg, clock.Now, logger.Nop())
	require.NoError(t, err)

	return &testEngine{
		storages:  storages,
		transport: transport,
		catalog:   catalog,
		clock:     clock,
		codec:     codec.NewJSONCodec(),
		services:  services,
	}
}

// respond returns a transport stub that decodes the request into captured,
// runs during (if set) while the exchange is in flight and answers with
// snapshot.
func (e *testEngine) respond(t *testing.T, snapshot models.Snapshot, captured *models.SyncRequest, during func()) func(context.Context, models.Collection, string, []byte) (models.Exchange, error) {
	return func(_ context.Context, _ models.Collection, contentType string, body []byte) (models.Exchange, error) {
		require.Equal(t, codec.ContentTypeJSON, contentType)

		req, err := e.codec.DecodeRequest(body)
		require.NoError(t, err)
		if captured != nil {
			*captured = req
		}
		if during != nil {
			during()
		}

		out, err := e.codec.EncodeSnapshot(snapshot)
		require.NoError(t, err)
		return models.Exchange{Body: out}, nil
	}
}

func (e *testEngine) watermark(t *testing.T, stream string) int64 {
	t.Helper()
	value, err := e.storages.Watermarks.Get(testContext(), stream)
	require.NoError(t, err)
	return value
}

func (e *testEngine) journal(t *testing.T) []models.JournalEntry {
	t.Helper()
	entries, err := e.storages.Journal.ReadAllPending(testContext())
	require.NoError(t, err)
	return entries
}

func (e *testEngine) storedQueue(t *testing.T) []string {
	t.Helper()
	queue, err := e.storages.Queue.Load(testContext())
	require.NoError(t, err)
	return queue.Identifiers()
}

// queueItems builds positioned snapshot items of testPodcastID.
func queueItems(ids ...string) []models.SnapshotItem {
	items := make([]models.SnapshotItem, 0, len(ids))
	for i, id := range ids {
		items = append(items, models.SnapshotItem{
			Identifier:       id,
			ParentIdentifier: ptr(testPodcastID),
			Position:         ptr(i),
		})
	}
	return items
}

func flagItem(id string, starred bool, modifiedAtMs int64) models.SnapshotItem {
	return models.SnapshotItem{
		Identifier:          id,
		ParentIdentifier:    ptr(testPodcastID),
		Starred:             ptr(starred),
		StarredModifiedAtMs: ptr(modifiedAtMs),
	}
}

func ptr[T any](v T) *T {
	return &v
}
