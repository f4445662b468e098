// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pod-sync/internal/codec"
	"github.com/MKhiriev/go-pod-sync/models"
)

// ── Up Next: journal pruning ─────────────────────────────────────────────────

func TestQueueSync_PrunesOnlyAcknowledgedEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := newClientStorages(t)
	seedEpisodes(t, storages, "a", "b", "c", "d")
	clock := newFakeClock(1000)
	e := newTestEngine(t, ctrl, storages, clock)
	ctx := testContext()

	_, err := e.services.UpNext.Replace(ctx, "a", "b")
	require.NoError(t, err)
	clock.Set(2000)
	_, err = e.services.UpNext.PlayLast(ctx, "c")
	require.NoError(t, err)

	var req models.SyncRequest
	snapshot := models.Snapshot{NewWatermark: 3000, Items: queueItems("a", "b", "c")}
	e.transport.EXPECT().
		Exchange(gomock.Any(), models.CollectionUpNext, codec.ContentTypeJSON, gomock.Any()).
		DoAndReturn(e.respond(t, snapshot, &req, func() {
			// user edit while the request is in flight
			clock.Set(2500)
			_, err := e.services.UpNext.PlayLast(ctx, "d")
			require.NoError(t, err)
		}))

	report, err := e.services.UpNextSync.Sync(ctx)
	require.NoError(t, err)

	assert.Equal(t, models.OutcomeMerged, report.Outcome)
	assert.Equal(t, int64(3000), report.Watermark)
	assert.Equal(t, 2, report.Pushed)
	assert.Equal(t, int64(2), report.Pruned)

	assert.Equal(t, testDeviceID, req.DeviceID)
	assert.Equal(t, models.DeviceDesktop, req.DeviceKind)
	assert.Nil(t, req.LastWatermark)
	require.Len(t, req.Changes, 2)
	assert.Equal(t, models.ChangeReplace, req.Changes[0].Kind)
	assert.Equal(t, []string{"a", "b"}, req.Changes[0].Identifiers)
	assert.Len(t, req.Episodes, 3)

	entries := e.journal(t)
	require.Len(t, entries, 1)
	assert.Equal(t, int64(2500), entries[0].ModifiedAtMs)
	assert.Equal(t, "d", entries[0].Subject)

	// the mid-cycle edit is replayed on top of the server order
	assert.Equal(t, []string{"a", "b", "c", "d"}, e.services.UpNext.Queue().Identifiers())
	assert.Equal(t, []string{"a", "b", "c", "d"}, e.storedQueue(t))
	assert.Equal(t, int64(3000), e.watermark(t, models.StreamUpNext))
}

func TestQueueSync_MidCycleEntryWithOlderClockSurvives(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := newClientStorages(t)
	seedEpisodes(t, storages, "a", "b")
	clock := newFakeClock(2000)
	e := newTestEngine(t, ctrl, storages, clock)
	ctx := testContext()

	_, err := e.services.UpNext.PlayLast(ctx, "a")
	require.NoError(t, err)

	snapshot := models.Snapshot{NewWatermark: 3000, Items: queueItems("a")}
	e.transport.EXPECT().
		Exchange(gomock.Any(), models.CollectionUpNext, gomock.Any(), gomock.Any()).
		DoAndReturn(e.respond(t, snapshot, nil, func() {
			// the wall clock stepped back, only the id bound protects it
			clock.Set(1500)
			_, err := e.services.UpNext.PlayLast(ctx, "b")
			require.NoError(t, err)
		}))

	report, err := e.services.UpNextSync.Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), report.Pruned)

	entries := e.journal(t)
	require.Len(t, entries, 1)
	assert.Equal(t, "b", entries[0].Subject)
	assert.Equal(t, []string{"a", "b"}, e.services.UpNext.Queue().Identifiers())
}

// ── Up Next: short-circuits ──────────────────────────────────────────────────

func TestQueueSync_RedeliveredVersionChangesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := newClientStorages(t)
	seedEpisodes(t, storages, "a", "b", "c")
	seedQueue(t, storages, "a", "b")
	require.NoError(t, storages.Watermarks.Set(testContext(), models.StreamUpNext, 1000))

	e := newTestEngine(t, ctrl, storages, newFakeClock(1500))
	ctx := testContext()

	_, err := e.services.UpNext.PlayLast(ctx, "c")
	require.NoError(t, err)

	updates, unsubscribe := e.services.Broadcaster.SubscribeQueue()
	defer unsubscribe()

	var req models.SyncRequest
	snapshot := models.Snapshot{NewWatermark: 1000, Items: queueItems("x")}
	e.transport.EXPECT().
		Exchange(gomock.Any(), models.CollectionUpNext, gomock.Any(), gomock.Any()).
		DoAndReturn(e.respond(t, snapshot, &req, nil))

	report, err := e.services.UpNextSync.Sync(ctx)
	require.NoError(t, err)

	assert.Equal(t, models.OutcomeAlreadyApplied, report.Outcome)
	require.NotNil(t, req.LastWatermark)
	assert.Equal(t, int64(1000), *req.LastWatermark)

	assert.Len(t, e.journal(t), 1, "nothing may be pruned")
	assert.Equal(t, []string{"a", "b", "c"}, e.services.UpNext.Queue().Identifiers())
	assert.Equal(t, []string{"a", "b", "c"}, e.storedQueue(t))
	assert.Equal(t, int64(1000), e.watermark(t, models.StreamUpNext))

	select {
	case q := <-updates:
		t.Fatalf("queue must not be republished, got %v", q.Identifiers())
	default:
	}
}

func TestQueueSync_StaleSnapshotKeepsWatermark(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := newClientStorages(t)
	seedEpisodes(t, storages, "a")
	seedQueue(t, storages, "a")
	require.NoError(t, storages.Watermarks.Set(testContext(), models.StreamUpNext, 5000))

	e := newTestEngine(t, ctrl, storages, newFakeClock(6000))
	ctx := testContext()

	_, err := e.services.UpNext.PlayLast(ctx, "b")
	require.NoError(t, err)

	snapshot := models.Snapshot{NewWatermark: 3000, Items: queueItems("z")}
	e.transport.EXPECT().
		Exchange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(e.respond(t, snapshot, nil, nil))

	report, err := e.services.UpNextSync.Sync(ctx)
	require.NoError(t, err)

	assert.Equal(t, models.OutcomeAlreadyApplied, report.Outcome)
	assert.Equal(t, int64(5000), report.Watermark)
	assert.Equal(t, int64(5000), e.watermark(t, models.StreamUpNext))
	assert.Len(t, e.journal(t), 1)
	assert.Equal(t, []string{"a", "b"}, e.services.UpNext.Queue().Identifiers())
}

func TestQueueSync_IdenticalOrderPrunesWithoutRewrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := newClientStorages(t)
	seedEpisodes(t, storages, "a", "b", "c")
	seedQueue(t, storages, "a", "b")
	require.NoError(t, storages.Watermarks.Set(testContext(), models.StreamUpNext, 1000))

	e := newTestEngine(t, ctrl, storages, newFakeClock(2000))
	ctx := testContext()

	_, err := e.services.UpNext.PlayLast(ctx, "c")
	require.NoError(t, err)

	updates, unsubscribe := e.services.Broadcaster.SubscribeQueue()
	defer unsubscribe()

	snapshot := models.Snapshot{NewWatermark: 2100, Items: queueItems("a", "b", "c")}
	e.transport.EXPECT().
		Exchange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(e.respond(t, snapshot, nil, nil))

	report, err := e.services.UpNextSync.Sync(ctx)
	require.NoError(t, err)

	assert.Equal(t, models.OutcomeUnchanged, report.Outcome)
	assert.Equal(t, int64(2100), report.Watermark)
	assert.Equal(t, int64(1), report.Pruned)
	assert.Empty(t, e.journal(t))
	assert.Equal(t, int64(2100), e.watermark(t, models.StreamUpNext))

	select {
	case q := <-updates:
		t.Fatalf("unchanged queue must not be republished, got %v", q.Identifiers())
	default:
	}
}

func TestQueueSync_ServerOrderWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := newClientStorages(t)
	seedEpisodes(t, storages, "a", "b", "c")
	seedQueue(t, storages, "a", "b", "c")
	require.NoError(t, storages.Watermarks.Set(testContext(), models.StreamUpNext, 1000))

	e := newTestEngine(t, ctrl, storages, newFakeClock(2000))
	ctx := testContext()

	updates, unsubscribe := e.services.Broadcaster.SubscribeQueue()
	defer unsubscribe()

	// positions reorder the wire order
	items := []models.SnapshotItem{
		{Identifier: "a", ParentIdentifier: ptr(testPodcastID), Position: ptr(2)},
		{Identifier: "c", ParentIdentifier: ptr(testPodcastID), Position: ptr(0)},
		{Identifier: "b", ParentIdentifier: ptr(testPodcastID), Position: ptr(1)},
	}
	e.transport.EXPECT().
		Exchange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(e.respond(t, models.Snapshot{NewWatermark: 1500, Items: items}, nil, nil))

	report, err := e.services.UpNextSync.Sync(ctx)
	require.NoError(t, err)

	assert.Equal(t, models.OutcomeMerged, report.Outcome)
	assert.Equal(t, 3, report.Applied)
	assert.Equal(t, []string{"c", "b", "a"}, e.services.UpNext.Queue().Identifiers())
	assert.Equal(t, []string{"c", "b", "a"}, e.storedQueue(t))

	select {
	case q := <-updates:
		assert.Equal(t, []string{"c", "b", "a"}, q.Identifiers())
	default:
		t.Fatal("adopted queue was not published")
	}
}

// ── Up Next: first contact ───────────────────────────────────────────────────

func TestQueueSync_FirstContactKeepsLocalQueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := newClientStorages(t)
	seedEpisodes(t, storages, "current", "next")
	seedQueue(t, storages, "current", "next")

	e := newTestEngine(t, ctrl, storages, newFakeClock(900))
	ctx := testContext()

	e.transport.EXPECT().
		Exchange(gomock.Any(), models.CollectionUpNext, gomock.Any(), gomock.Any()).
		DoAndReturn(e.respond(t, models.Snapshot{NewWatermark: 1000}, nil, nil))

	report, err := e.services.UpNextSync.Sync(ctx)
	require.NoError(t, err)

	assert.Equal(t, models.OutcomeFirstContact, report.Outcome)
	assert.Equal(t, []string{"current", "next"}, e.services.UpNext.Queue().Identifiers())
	assert.Equal(t, int64(0), e.watermark(t, models.StreamUpNext))

	entries := e.journal(t)
	require.Len(t, entries, 1)
	assert.Equal(t, models.ChangeReplace, entries[0].Kind)
	assert.Equal(t, []string{"current", "next"}, entries[0].Subjects)

	// the next cycle pushes the local queue and converges
	var req models.SyncRequest
	e.transport.EXPECT().
		Exchange(gomock.Any(), models.CollectionUpNext, gomock.Any(), gomock.Any()).
		DoAndReturn(e.respond(t, models.Snapshot{NewWatermark: 1001, Items: queueItems("current", "next")}, &req, nil))

	report, err = e.services.UpNextSync.Sync(ctx)
	require.NoError(t, err)

	assert.Nil(t, req.LastWatermark)
	require.Len(t, req.Changes, 1)
	assert.Equal(t, []string{"current", "next"}, req.Changes[0].Identifiers)

	assert.Equal(t, models.OutcomeUnchanged, report.Outcome)
	assert.Empty(t, e.journal(t))
	assert.Equal(t, int64(1001), e.watermark(t, models.StreamUpNext))
}

func TestQueueSync_EmptyServerAtVersionZeroIsReDelivery(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := newClientStorages(t)
	seedQueue(t, storages, "current")

	e := newTestEngine(t, ctrl, storages, newFakeClock(900))

	e.transport.EXPECT().
		Exchange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(e.respond(t, models.Snapshot{}, nil, nil))

	queues, unsubscribe := e.services.Broadcaster.SubscribeQueue()
	defer unsubscribe()

	report, err := e.services.UpNextSync.Sync(testContext())
	require.NoError(t, err)

	assert.Equal(t, models.OutcomeAlreadyApplied, report.Outcome)
	assert.Empty(t, e.journal(t))
	assert.Equal(t, []string{"current"}, e.storedQueue(t))
	select {
	case <-queues:
		t.Fatal("queue was republished for an already held version")
	default:
	}
}

// ── Up Next: importing unknown episodes ──────────────────────────────────────

func TestQueueSync_ImportsUnknownEpisodes(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := newClientStorages(t)
	e := newTestEngine(t, ctrl, storages, newFakeClock(2000))
	ctx := testContext()

	items := []models.SnapshotItem{
		{Identifier: "remote", ParentIdentifier: ptr("pod-2"), Position: ptr(0)},
		{Identifier: "file", ParentIdentifier: ptr(models.NoPodcastIdentifier), Title: ptr("Voice memo"), Position: ptr(1)},
		{Identifier: "orphan", Position: ptr(2)},
	}
	e.transport.EXPECT().
		Exchange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(e.respond(t, models.Snapshot{NewWatermark: 1500, Items: items}, nil, nil))

	e.catalog.EXPECT().FetchFile(gomock.Any(), "file").
		Return(models.Episode{Identifier: "file", Title: "Recording"}, nil)
	e.catalog.EXPECT().FetchPodcast(gomock.Any(), "pod-2").
		Return(models.Podcast{Identifier: "pod-2", Title: "Second"}, nil)
	// the sentinel parent is never fetched: no FetchPodcast expectation for it

	report, err := e.services.UpNextSync.Sync(ctx)
	require.NoError(t, err)

	assert.Equal(t, models.OutcomeMerged, report.Outcome)
	assert.Equal(t, 2, report.Applied)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, []string{"remote", "file"}, e.services.UpNext.Queue().Identifiers())

	remote, err := storages.Episodes.FindByIdentifier(ctx, "remote")
	require.NoError(t, err)
	assert.True(t, remote.Skeleton)
	assert.Equal(t, "pod-2", remote.ParentIdentifier)

	file, err := storages.Episodes.FindByIdentifier(ctx, "file")
	require.NoError(t, err)
	assert.Equal(t, "Recording", file.Title)
	assert.Equal(t, models.NoPodcastIdentifier, file.ParentIdentifier)

	exists, err := storages.Podcasts.Exists(ctx, "pod-2")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestQueueSync_ImportedSkeletonOutlivesFailedCommit(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := newClientStorages(t)
	e := newTestEngine(t, ctrl, storages, newFakeClock(2000))

	items := []models.SnapshotItem{{Identifier: "remote", ParentIdentifier: ptr("pod-2"), Position: ptr(0)}}
	snapshot := models.Snapshot{NewWatermark: 1500, Items: items}

	ctx, cancel := context.WithCancel(testContext())
	defer cancel()

	e.transport.EXPECT().
		Exchange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(e.respond(t, snapshot, nil, nil)).
		Times(2)
	e.catalog.EXPECT().FetchPodcast(gomock.Any(), "pod-2").
		DoAndReturn(func(context.Context, string) (models.Podcast, error) {
			cancel()
			return models.Podcast{Identifier: "pod-2"}, nil
		})

	_, err := e.services.UpNextSync.Sync(ctx)
	require.ErrorIs(t, err, ErrSyncCancelled)

	// the entity cache keeps the skeleton while the queue and watermark stay put
	skeleton, err := storages.Episodes.FindByIdentifier(testContext(), "remote")
	require.NoError(t, err)
	assert.True(t, skeleton.Skeleton)
	assert.Empty(t, e.services.UpNext.Queue().Identifiers())
	assert.Equal(t, int64(0), e.watermark(t, models.StreamUpNext))

	// the retry finds the cached skeleton and imports nothing
	report, err := e.services.UpNextSync.Sync(testContext())
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeMerged, report.Outcome)
	assert.Equal(t, []string{"remote"}, e.services.UpNext.Queue().Identifiers())
	assert.Equal(t, int64(1500), e.watermark(t, models.StreamUpNext))
}

// ── Coordinator ──────────────────────────────────────────────────────────────

func TestSyncCoordinator_NotModified(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := newClientStorages(t)
	require.NoError(t, storages.Watermarks.Set(testContext(), models.StreamUpNext, 1000))
	e := newTestEngine(t, ctrl, storages, newFakeClock(2000))

	e.transport.EXPECT().
		Exchange(gomock.Any(), models.CollectionUpNext, gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, models.Collection, string, []byte) (models.Exchange, error) {
			assert.Equal(t, models.SyncAwaitingResponse, e.services.UpNextSync.State())
			return models.Exchange{NotModified: true}, nil
		})

	report, err := e.services.UpNextSync.Sync(testContext())
	require.NoError(t, err)

	assert.Equal(t, models.OutcomeNotModified, report.Outcome)
	assert.Equal(t, int64(1000), report.Watermark)
	assert.Equal(t, models.SyncIdle, e.services.UpNextSync.State())
	assert.Equal(t, int64(1000), e.watermark(t, models.StreamUpNext))
}

func TestSyncCoordinator_TransportFailureLeavesStateUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := newClientStorages(t)
	e := newTestEngine(t, ctrl, storages, newFakeClock(2000))
	ctx := testContext()

	_, err := e.services.UpNext.PlayLast(ctx, "a")
	require.NoError(t, err)

	e.transport.EXPECT().
		Exchange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.Exchange{}, errors.New("connection reset"))

	_, err = e.services.UpNextSync.Sync(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTransportFailure))

	assert.Len(t, e.journal(t), 1)
	assert.Equal(t, int64(0), e.watermark(t, models.StreamUpNext))
	assert.Equal(t, []string{"a"}, e.services.UpNext.Queue().Identifiers())
	assert.Equal(t, models.SyncIdle, e.services.UpNextSync.State())
}

func TestSyncCoordinator_MalformedResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := newClientStorages(t)
	e := newTestEngine(t, ctrl, storages, newFakeClock(2000))
	ctx := testContext()

	_, err := e.services.UpNext.PlayLast(ctx, "a")
	require.NoError(t, err)

	e.transport.EXPECT().
		Exchange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.Exchange{Body: []byte("{")}, nil)

	_, err = e.services.UpNextSync.Sync(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedResponse))
	assert.True(t, errors.Is(err, ErrTransportFailure))
	assert.True(t, errors.Is(err, codec.ErrMalformedPayload))

	assert.Len(t, e.journal(t), 1)
	assert.Equal(t, int64(0), e.watermark(t, models.StreamUpNext))
}

func TestSyncCoordinator_CancelledDuringExchange(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := newClientStorages(t)
	e := newTestEngine(t, ctrl, storages, newFakeClock(2000))

	ctx, cancel := context.WithCancel(testContext())
	defer cancel()

	_, err := e.services.UpNext.PlayLast(ctx, "a")
	require.NoError(t, err)

	e.transport.EXPECT().
		Exchange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ models.Collection, _ string, _ []byte) (models.Exchange, error) {
			cancel()
			return models.Exchange{}, ctx.Err()
		})

	_, err = e.services.UpNextSync.Sync(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSyncCancelled))
	assert.False(t, errors.Is(err, ErrTransportFailure))
	assert.Len(t, e.journal(t), 1)
}

func TestSyncCoordinator_CancelledBeforeReconcile(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := newClientStorages(t)
	seedEpisodes(t, storages, "a")
	e := newTestEngine(t, ctrl, storages, newFakeClock(2000))

	ctx, cancel := context.WithCancel(testContext())
	defer cancel()

	_, err := e.services.UpNext.PlayLast(ctx, "a")
	require.NoError(t, err)

	e.transport.EXPECT().
		Exchange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(e.respond(t, models.Snapshot{NewWatermark: 3000, Items: queueItems("a")}, nil, cancel))

	_, err = e.services.UpNextSync.Sync(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSyncCancelled))
	assert.Len(t, e.journal(t), 1)
	assert.Equal(t, int64(0), e.watermark(t, models.StreamUpNext))
}

func TestSyncCoordinator_ConcurrentCallsShareOneCycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := newClientStorages(t)
	e := newTestEngine(t, ctrl, storages, newFakeClock(2000))
	ctx := testContext()

	entered := make(chan struct{})
	release := make(chan struct{})
	e.transport.EXPECT().
		Exchange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, models.Collection, string, []byte) (models.Exchange, error) {
			close(entered)
			<-release
			return models.Exchange{NotModified: true}, nil
		}).
		Times(1)

	var (
		wg      sync.WaitGroup
		reports [2]models.SyncReport
		errs    [2]error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		reports[0], errs[0] = e.services.UpNextSync.Sync(ctx)
	}()

	<-entered
	wg.Add(1)
	go func() {
		defer wg.Done()
		reports[1], errs[1] = e.services.UpNextSync.Sync(ctx)
	}()

	time.Sleep(100 * time.Millisecond)
	close(release)
	wg.Wait()

	for i := range errs {
		require.NoError(t, errs[i])
		assert.Equal(t, models.OutcomeNotModified, reports[i].Outcome)
	}
}

func TestSyncCoordinator_JoinedCallStopsWaitingWhenItsContextEnds(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := newClientStorages(t)
	e := newTestEngine(t, ctrl, storages, newFakeClock(2000))

	entered := make(chan struct{})
	release := make(chan struct{})
	e.transport.EXPECT().
		Exchange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, models.Collection, string, []byte) (models.Exchange, error) {
			close(entered)
			<-release
			return models.Exchange{NotModified: true}, nil
		}).
		Times(1)

	var (
		report models.SyncReport
		err    error
		done   = make(chan struct{})
	)
	go func() {
		defer close(done)
		report, err = e.services.UpNextSync.Sync(testContext())
	}()
	<-entered

	joinCtx, cancel := context.WithCancel(testContext())
	cancel()
	_, joinErr := e.services.UpNextSync.Sync(joinCtx)
	assert.ErrorIs(t, joinErr, ErrSyncCancelled)
	assert.ErrorIs(t, joinErr, context.Canceled)

	close(release)
	<-done
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeNotModified, report.Outcome)
	assert.Equal(t, models.SyncIdle, e.services.UpNextSync.State())
}

// ── Starred ──────────────────────────────────────────────────────────────────

func TestFlagSync_RecencyWindow(t *testing.T) {
	now := 100 * day.Milliseconds()

	ctrl := gomock.NewController(t)
	storages := newClientStorages(t)
	seedEpisodes(t, storages, "d1", "d2", "d3", "d14")
	e := newTestEngine(t, ctrl, storages, newFakeClock(now))
	ctx := testContext()

	var req models.SyncRequest
	snapshot := models.Snapshot{
		NewWatermark: now - day.Milliseconds(),
		Items: []models.SnapshotItem{
			flagItem("d1", true, now-1*day.Milliseconds()),
			flagItem("d2", true, now-2*day.Milliseconds()),
			flagItem("d3", true, now-3*day.Milliseconds()),
			flagItem("d14", true, now-14*day.Milliseconds()),
		},
	}
	e.transport.EXPECT().
		Exchange(gomock.Any(), models.CollectionStarred, gomock.Any(), gomock.Any()).
		DoAndReturn(e.respond(t, snapshot, &req, nil))

	report, err := e.services.StarredSync.Sync(ctx)
	require.NoError(t, err)

	assert.Empty(t, req.Flags)
	assert.Equal(t, models.OutcomeMerged, report.Outcome)
	assert.Equal(t, 3, report.Applied)
	assert.Equal(t, now-day.Milliseconds(), report.Watermark)
	assert.Equal(t, now-day.Milliseconds(), e.watermark(t, models.StreamStarred))

	for _, id := range []string{"d1", "d2", "d3"} {
		flag, err := e.services.Stars.Flag(ctx, id)
		require.NoError(t, err)
		assert.True(t, flag.Value, id)
	}

	old, err := e.services.Stars.Flag(ctx, "d14")
	require.NoError(t, err)
	assert.False(t, old.Value)
	assert.Zero(t, old.LastModifiedAtMs)
}

func TestFlagSync_LocalChangeWins(t *testing.T) {
	now := 100 * day.Milliseconds()

	ctrl := gomock.NewController(t)
	storages := newClientStorages(t)
	seedEpisodes(t, storages, "ep")
	e := newTestEngine(t, ctrl, storages, newFakeClock(now))
	ctx := testContext()

	_, err := e.services.Stars.SetStarred(ctx, "ep", true)
	require.NoError(t, err)

	var req models.SyncRequest
	snapshot := models.Snapshot{
		NewWatermark: now - 1000,
		Items:        []models.SnapshotItem{flagItem("ep", false, now-1000)},
	}
	e.transport.EXPECT().
		Exchange(gomock.Any(), models.CollectionStarred, gomock.Any(), gomock.Any()).
		DoAndReturn(e.respond(t, snapshot, &req, nil))

	report, err := e.services.StarredSync.Sync(ctx)
	require.NoError(t, err)

	require.Len(t, req.Flags, 1)
	assert.Equal(t, models.FlagChange{Identifier: "ep", Value: true, ModifiedAtMs: now}, req.Flags[0])
	require.Len(t, req.Episodes, 1)
	assert.Equal(t, testPodcastID, req.Episodes[0].ParentIdentifier)

	assert.Equal(t, models.OutcomeUnchanged, report.Outcome)
	assert.Equal(t, 1, report.Pushed)

	flag, err := e.services.Stars.Flag(ctx, "ep")
	require.NoError(t, err)
	assert.True(t, flag.Value)
	assert.Equal(t, now, flag.LastModifiedAtMs)

	assert.Equal(t, int64(1), e.watermark(t, models.StreamStarredPush), "push cursor is the flag sequence")
	assert.Equal(t, int64(0), e.watermark(t, models.StreamStarred))
}

func TestFlagSync_PushedFlagsAreNotResent(t *testing.T) {
	now := 100 * day.Milliseconds()

	ctrl := gomock.NewController(t)
	storages := newClientStorages(t)
	seedEpisodes(t, storages, "ep")
	e := newTestEngine(t, ctrl, storages, newFakeClock(now))
	ctx := testContext()

	_, err := e.services.Stars.SetStarred(ctx, "ep", true)
	require.NoError(t, err)

	// the server applied the push; its version is the flag time
	snapshot := models.Snapshot{
		NewWatermark: now,
		Items:        []models.SnapshotItem{flagItem("ep", true, now)},
	}
	e.transport.EXPECT().
		Exchange(gomock.Any(), models.CollectionStarred, gomock.Any(), gomock.Any()).
		DoAndReturn(e.respond(t, snapshot, nil, nil))

	_, err = e.services.StarredSync.Sync(ctx)
	require.NoError(t, err)

	var second models.SyncRequest
	e.transport.EXPECT().
		Exchange(gomock.Any(), models.CollectionStarred, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.Collection, _ string, body []byte) (models.Exchange, error) {
			var err error
			second, err = e.codec.DecodeRequest(body)
			require.NoError(t, err)
			return models.Exchange{NotModified: true}, nil
		})

	report, err := e.services.StarredSync.Sync(ctx)
	require.NoError(t, err)

	assert.Equal(t, models.OutcomeNotModified, report.Outcome)
	assert.Empty(t, second.Flags)
}

func TestFlagSync_ImportsUnknownFlaggedEpisode(t *testing.T) {
	now := 100 * day.Milliseconds()

	ctrl := gomock.NewController(t)
	storages := newClientStorages(t)
	e := newTestEngine(t, ctrl, storages, newFakeClock(now))
	ctx := testContext()

	item := flagItem("remote", true, now-day.Milliseconds())
	item.ParentIdentifier = ptr("pod-2")
	e.transport.EXPECT().
		Exchange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(e.respond(t, models.Snapshot{NewWatermark: now - day.Milliseconds(), Items: []models.SnapshotItem{item}}, nil, nil))
	e.catalog.EXPECT().FetchPodcast(gomock.Any(), "pod-2").Return(models.Podcast{Title: "Second"}, nil)

	flags, unsubscribe := e.services.Broadcaster.SubscribeFlags()
	defer unsubscribe()

	report, err := e.services.StarredSync.Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeMerged, report.Outcome)

	flag, err := e.services.Stars.Flag(ctx, "remote")
	require.NoError(t, err)
	assert.True(t, flag.Value)

	select {
	case published := <-flags:
		assert.Equal(t, "remote", published.Identifier)
	default:
		t.Fatal("merged flag was not published")
	}
}

func TestFlagSync_LocalEditDuringMergeWins(t *testing.T) {
	now := 100 * day.Milliseconds()

	ctrl := gomock.NewController(t)
	storages := newClientStorages(t)
	seedEpisodes(t, storages, "ep")
	clock := newFakeClock(now)
	e := newTestEngine(t, ctrl, storages, clock)
	ctx := testContext()

	remote := flagItem("remote", true, now-day.Milliseconds())
	remote.ParentIdentifier = ptr("pod-2")
	snapshot := models.Snapshot{
		NewWatermark: now - day.Milliseconds(),
		Items:        []models.SnapshotItem{flagItem("ep", true, now-day.Milliseconds()), remote},
	}
	e.transport.EXPECT().
		Exchange(gomock.Any(), models.CollectionStarred, gomock.Any(), gomock.Any()).
		DoAndReturn(e.respond(t, snapshot, nil, nil))

	// the user unstars "ep" while the merge is importing the unknown podcast
	e.catalog.EXPECT().FetchPodcast(gomock.Any(), "pod-2").
		DoAndReturn(func(ctx context.Context, _ string) (models.Podcast, error) {
			clock.Set(now + 10)
			_, err := e.services.Stars.SetStarred(ctx, "ep", false)
			require.NoError(t, err)
			return models.Podcast{Title: "Second"}, nil
		})

	report, err := e.services.StarredSync.Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Applied)

	flag, err := e.services.Stars.Flag(ctx, "ep")
	require.NoError(t, err)
	assert.Equal(t, models.FlagState{Identifier: "ep", Value: false, LastModifiedAtMs: now + 10}, flag)

	// the edit is still pushed by the next cycle
	var next models.SyncRequest
	e.transport.EXPECT().
		Exchange(gomock.Any(), models.CollectionStarred, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.Collection, _ string, body []byte) (models.Exchange, error) {
			var err error
			next, err = e.codec.DecodeRequest(body)
			require.NoError(t, err)
			return models.Exchange{NotModified: true}, nil
		})

	_, err = e.services.StarredSync.Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.FlagChange{{Identifier: "ep", Value: false, ModifiedAtMs: now + 10}}, next.Flags)
}

func TestFlagSync_EditDuringPushInSameMillisecondIsPushedNextCycle(t *testing.T) {
	now := 100 * day.Milliseconds()

	ctrl := gomock.NewController(t)
	storages := newClientStorages(t)
	seedEpisodes(t, storages, "a", "b")
	e := newTestEngine(t, ctrl, storages, newFakeClock(now))
	ctx := testContext()

	_, err := e.services.Stars.SetStarred(ctx, "a", true)
	require.NoError(t, err)

	var first models.SyncRequest
	snapshot := models.Snapshot{
		NewWatermark: now,
		Items:        []models.SnapshotItem{flagItem("a", true, now)},
	}
	e.transport.EXPECT().
		Exchange(gomock.Any(), models.CollectionStarred, gomock.Any(), gomock.Any()).
		DoAndReturn(e.respond(t, snapshot, &first, func() {
			_, err := e.services.Stars.SetStarred(ctx, "b", true)
			require.NoError(t, err)
		}))

	_, err = e.services.StarredSync.Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.FlagChange{{Identifier: "a", Value: true, ModifiedAtMs: now}}, first.Flags)

	var second models.SyncRequest
	e.transport.EXPECT().
		Exchange(gomock.Any(), models.CollectionStarred, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.Collection, _ string, body []byte) (models.Exchange, error) {
			var err error
			second, err = e.codec.DecodeRequest(body)
			require.NoError(t, err)
			return models.Exchange{NotModified: true}, nil
		})

	_, err = e.services.StarredSync.Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.FlagChange{{Identifier: "b", Value: true, ModifiedAtMs: now}}, second.Flags)
}
