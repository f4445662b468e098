// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-pod-sync/internal/logger"
	"github.com/MKhiriev/go-pod-sync/internal/store"
	"github.com/MKhiriev/go-pod-sync/models"
)

// QueueCommit is a fully resolved queue merge.
type QueueCommit struct {
	// Changed is false when the server order equals the local one; the
	// queue is then neither written nor published.
	Changed bool
	Queue   models.QueueState

	// Journal entries with modified_at_ms <= PruneModifiedAtMs and
	// id <= PruneMaxID are acknowledged by the server.
	PruneModifiedAtMs int64
	PruneMaxID        int64

	Watermark int64
}

// FlagCommit is a fully resolved flag merge. Zero cursors are left untouched.
type FlagCommit struct {
	Flags       []models.FlagState
	MergeCursor int64
	PushCursor  int64
}

// stateProjector owns the live queue. Writes go through a single SQLite
// transaction and are published only after commit. It is the only component
// that prunes the journal.
type stateProjector struct {
	tx         store.Transactor
	journal    store.LocalJournalRepository
	watermarks store.WatermarkRepository
	queue      store.QueueRepository
	episodes   store.LocalEpisodeRepository

	queueSink QueueSink
	flagSink  FlagSink
	now       func() time.Time

	mu      sync.RWMutex
	current models.QueueState

	logger *logger.Logger
}

func newStateProjector(storages *store.ClientStorages, queueSink QueueSink, flagSink FlagSink, now func() time.Time, logger *logger.Logger) *stateProjector {
	if now == nil {
		now = time.Now
	}
	return &stateProjector{
		tx:         storages.Transactor,
		journal:    storages.Journal,
		watermarks: storages.Watermarks,
		queue:      storages.Queue,
		episodes:   storages.Episodes,
		queueSink:  queueSink,
		flagSink:   flagSink,
		now:        now,
		current:    models.QueueFromIdentifiers(nil),
		logger:     logger,
	}
}

// Load reads the persisted queue into the live cell and publishes it.
func (p *stateProjector) Load(ctx context.Context) error {
	queue, err := p.queue.Load(ctx)
	if err != nil {
		return fmt.Errorf("load queue: %w", err)
	}

	p.mu.Lock()
	p.current = queue
	p.mu.Unlock()

	p.queueSink.PublishQueue(queue.Clone())
	return nil
}

// Queue returns a copy of the live queue.
func (p *stateProjector) Queue() models.QueueState {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current.Clone()
}

// ApplyLocal journals a user edit and applies it to the live queue.
func (p *stateProjector) ApplyLocal(ctx context.Context, entry models.JournalEntry) (models.QueueState, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	next := p.current.Apply(entry)
	err := p.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := p.journal.Append(ctx, entry); err != nil {
			return fmt.Errorf("append %s: %w", entry.Kind, err)
		}
		return p.queue.Save(ctx, next)
	})
	if err != nil {
		return p.current.Clone(), err
	}

	p.current = next
	p.queueSink.PublishQueue(next.Clone())

	return next.Clone(), nil
}

// CommitQueue writes a resolved merge, prunes acknowledged journal entries
// and advances the watermark in one transaction. Journal entries recorded
// after the cycle snapshot are replayed on top of the adopted order so a
// user edit made mid-cycle stays visible.
func (p *stateProjector) CommitQueue(ctx context.Context, commit QueueCommit) (int64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	var (
		pruned int64
		next   = p.current
	)
	err := p.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		if commit.PruneMaxID > 0 {
			if pruned, err = p.journal.PruneUpTo(ctx, commit.PruneModifiedAtMs, commit.PruneMaxID); err != nil {
				return fmt.Errorf("prune journal: %w", err)
			}
		}

		if commit.Changed {
			next = commit.Queue.Clone()
			pending, err := p.journal.ReadAllPending(ctx)
			if err != nil {
				return fmt.Errorf("read pending: %w", err)
			}
			for _, entry := range pending {
				if entry.ID > commit.PruneMaxID {
					next = next.Apply(entry)
				}
			}
			if err = p.queue.Save(ctx, next); err != nil {
				return fmt.Errorf("save queue: %w", err)
			}
		}

		if err = p.watermarks.Set(ctx, models.StreamUpNext, commit.Watermark); err != nil {
			return fmt.Errorf("set watermark: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if commit.Changed {
		p.current = next
		p.queueSink.PublishQueue(next.Clone())
	}

	return pruned, nil
}

// RepublishFirstContact publishes the live queue unchanged. When the cycle
// pushed nothing and the queue is not empty, a Replace entry carrying the
// current order is journaled so the next cycle pushes the local state.
func (p *stateProjector) RepublishFirstContact(ctx context.Context, journalEmpty bool) error {
	p.mu.RLock()
	current := p.current.Clone()
	p.mu.RUnlock()

	if journalEmpty && !current.IsEmpty() {
		entry := models.NewReplaceEntry(p.now().UnixMilli(), current.Identifiers()...)
		if _, err := p.journal.Append(ctx, entry); err != nil {
			return fmt.Errorf("journal local queue: %w", err)
		}
	}

	p.queueSink.PublishQueue(current)
	return nil
}

// CommitFlags merges server flags and moves the flag cursors in one
// transaction, then publishes the flags that were applied. A flag whose
// stored value was edited locally after the merge was resolved is left alone.
func (p *stateProjector) CommitFlags(ctx context.Context, commit FlagCommit) ([]models.FlagState, error) {
	var applied []models.FlagState
	err := p.tx.WithinTx(ctx, func(ctx context.Context) error {
		applied = applied[:0]
		for _, flag := range commit.Flags {
			ok, err := p.episodes.MergeFlag(ctx, flag)
			if err != nil {
				return fmt.Errorf("merge flag %s: %w", flag.Identifier, err)
			}
			if ok {
				applied = append(applied, flag)
			}
		}
		if commit.MergeCursor > 0 {
			if err := p.watermarks.Set(ctx, models.StreamStarred, commit.MergeCursor); err != nil {
				return fmt.Errorf("set merge cursor: %w", err)
			}
		}
		if commit.PushCursor > 0 {
			if err := p.watermarks.Set(ctx, models.StreamStarredPush, commit.PushCursor); err != nil {
				return fmt.Errorf("set push cursor: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, flag := range applied {
		p.flagSink.PublishFlag(flag)
	}
	return applied, nil
}

// PublishFlag forwards a user flag change.
func (p *stateProjector) PublishFlag(flag models.FlagState) {
	p.flagSink.PublishFlag(flag)
}
