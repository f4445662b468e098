// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-pod-sync/models"
)

type upNextService struct {
	projector *stateProjector
	now       func() time.Time
}

func newUpNextService(projector *stateProjector, now func() time.Time) UpNextService {
	if now == nil {
		now = time.Now
	}
	return &upNextService{projector: projector, now: now}
}

// Replace sets the whole queue. Duplicates keep their first position.
func (s *upNextService) Replace(ctx context.Context, identifiers ...string) (models.QueueState, error) {
	ids := make([]string, 0, len(identifiers))
	seen := make(map[string]struct{}, len(identifiers))
	for _, id := range identifiers {
		id = strings.TrimSpace(id)
		if id == "" {
			return s.Queue(), ErrEmptyIdentifier
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	return s.projector.ApplyLocal(ctx, models.NewReplaceEntry(s.nowMs(), ids...))
}

func (s *upNextService) PlayNext(ctx context.Context, identifier string) (models.QueueState, error) {
	return s.single(ctx, identifier, models.NewAppendNextEntry)
}

func (s *upNextService) PlayLast(ctx context.Context, identifier string) (models.QueueState, error) {
	return s.single(ctx, identifier, models.NewAppendLastEntry)
}

func (s *upNextService) Remove(ctx context.Context, identifier string) (models.QueueState, error) {
	return s.single(ctx, identifier, models.NewRemoveEntry)
}

func (s *upNextService) ClearAll(ctx context.Context) (models.QueueState, error) {
	return s.projector.ApplyLocal(ctx, models.NewClearAllEntry(s.nowMs()))
}

func (s *upNextService) Queue() models.QueueState {
	return s.projector.Queue()
}

func (s *upNextService) single(ctx context.Context, identifier string, entry func(int64, string) models.JournalEntry) (models.QueueState, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return s.Queue(), ErrEmptyIdentifier
	}
	return s.projector.ApplyLocal(ctx, entry(s.nowMs(), identifier))
}

func (s *upNextService) nowMs() int64 {
	return s.now().UnixMilli()
}
