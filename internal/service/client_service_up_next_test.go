// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pod-sync/internal/logger"
	"github.com/MKhiriev/go-pod-sync/internal/store"
	"github.com/MKhiriev/go-pod-sync/models"
)

func newTestUpNext(t *testing.T, clock *fakeClock) (UpNextService, *store.ClientStorages, *Broadcaster) {
	t.Helper()

	storages := newClientStorages(t)
	broadcaster := NewBroadcaster()
	projector := newStateProjector(storages, broadcaster, broadcaster, clock.Now, logger.Nop())
	require.NoError(t, projector.Load(testContext()))

	return newUpNextService(projector, clock.Now), storages, broadcaster
}

func TestUpNextService_EditsAreJournaled(t *testing.T) {
	clock := newFakeClock(1000)
	svc, storages, _ := newTestUpNext(t, clock)
	ctx := testContext()

	queue, err := svc.Replace(ctx, "a", "b", "c")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, queue.Identifiers())

	clock.Set(1001)
	queue, err = svc.PlayNext(ctx, "c")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c", "b"}, queue.Identifiers())

	clock.Set(1002)
	queue, err = svc.PlayLast(ctx, "d")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c", "b", "d"}, queue.Identifiers())

	clock.Set(1003)
	queue, err = svc.Remove(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b", "d"}, queue.Identifiers())

	clock.Set(1004)
	queue, err = svc.ClearAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, queue.Identifiers())

	entries, err := storages.Journal.ReadAllPending(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 5)

	kinds := make([]models.ChangeKind, 0, len(entries))
	for i, entry := range entries {
		kinds = append(kinds, entry.Kind)
		assert.Equal(t, int64(1000+i), entry.ModifiedAtMs)
	}
	assert.Equal(t, []models.ChangeKind{
		models.ChangeReplace,
		models.ChangeAppendNext,
		models.ChangeAppendLast,
		models.ChangeRemove,
		models.ChangeClearAll,
	}, kinds)

	stored, err := storages.Queue.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, stored.Identifiers())
	assert.Equal(t, []string{"c"}, svc.Queue().Identifiers())
}

func TestUpNextService_Replace_Deduplicates(t *testing.T) {
	svc, storages, _ := newTestUpNext(t, newFakeClock(1000))
	ctx := testContext()

	queue, err := svc.Replace(ctx, "a", " b ", "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, queue.Identifiers())

	entries, err := storages.Journal.ReadAllPending(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, []string{"a", "b"}, entries[0].Subjects)
}

func TestUpNextService_Replace_Empty(t *testing.T) {
	svc, storages, _ := newTestUpNext(t, newFakeClock(1000))
	ctx := testContext()

	_, err := svc.Replace(ctx, "a")
	require.NoError(t, err)

	queue, err := svc.Replace(ctx)
	require.NoError(t, err)
	assert.True(t, queue.IsEmpty())

	entries, err := storages.Journal.ReadAllPending(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Empty(t, entries[1].Subjects)
}

func TestUpNextService_RejectsEmptyIdentifiers(t *testing.T) {
	svc, storages, _ := newTestUpNext(t, newFakeClock(1000))
	ctx := testContext()

	_, err := svc.PlayNext(ctx, "  ")
	assert.ErrorIs(t, err, ErrEmptyIdentifier)
	_, err = svc.PlayLast(ctx, "")
	assert.ErrorIs(t, err, ErrEmptyIdentifier)
	_, err = svc.Remove(ctx, "")
	assert.ErrorIs(t, err, ErrEmptyIdentifier)
	_, err = svc.Replace(ctx, "a", "")
	assert.ErrorIs(t, err, ErrEmptyIdentifier)

	count, err := storages.Journal.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestUpNextService_PublishesEdits(t *testing.T) {
	svc, _, broadcaster := newTestUpNext(t, newFakeClock(1000))
	updates, unsubscribe := broadcaster.SubscribeQueue()
	defer unsubscribe()

	_, err := svc.PlayLast(testContext(), "a")
	require.NoError(t, err)

	assert.Equal(t, []string{"a"}, (<-updates).Identifiers())
}

// ── Stars ────────────────────────────────────────────────────────────────────

func TestStarService_SetStarred(t *testing.T) {
	clock := newFakeClock(5000)
	storages := newClientStorages(t)
	seedEpisodes(t, storages, "ep")
	broadcaster := NewBroadcaster()
	projector := newStateProjector(storages, broadcaster, broadcaster, clock.Now, logger.Nop())
	svc := newStarService(storages.Episodes, projector, clock.Now)
	ctx := testContext()

	flags, unsubscribe := broadcaster.SubscribeFlags()
	defer unsubscribe()

	flag, err := svc.SetStarred(ctx, "ep", true)
	require.NoError(t, err)
	assert.Equal(t, models.FlagState{Identifier: "ep", Value: true, LastModifiedAtMs: 5000}, flag)
	assert.Equal(t, flag, <-flags)

	// a clock that went backwards still moves the flag time forward
	clock.Set(4000)
	flag, err = svc.SetStarred(ctx, "ep", false)
	require.NoError(t, err)
	assert.Equal(t, int64(5001), flag.LastModifiedAtMs)

	stored, err := svc.Flag(ctx, "ep")
	require.NoError(t, err)
	assert.Equal(t, flag, stored)
}

func TestStarService_SetStarred_Errors(t *testing.T) {
	clock := newFakeClock(5000)
	storages := newClientStorages(t)
	broadcaster := NewBroadcaster()
	projector := newStateProjector(storages, broadcaster, broadcaster, clock.Now, logger.Nop())
	svc := newStarService(storages.Episodes, projector, clock.Now)

	_, err := svc.SetStarred(testContext(), "", true)
	assert.ErrorIs(t, err, ErrEmptyIdentifier)

	_, err = svc.SetStarred(testContext(), "missing", true)
	assert.ErrorIs(t, err, store.ErrEpisodeNotFound)
}
