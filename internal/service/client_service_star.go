// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pod-sync/internal/store"
	"github.com/MKhiriev/go-pod-sync/models"
)

type starService struct {
	episodes  store.LocalEpisodeRepository
	projector *stateProjector
	now       func() time.Time
}

func newStarService(episodes store.LocalEpisodeRepository, projector *stateProjector, now func() time.Time) StarService {
	if now == nil {
		now = time.Now
	}
	return &starService{episodes: episodes, projector: projector, now: now}
}

// SetStarred stores the flag with the current time. The time is bumped past
// the stored one so the local change always wins a later merge.
func (s *starService) SetStarred(ctx context.Context, identifier string, value bool) (models.FlagState, error) {
	if identifier == "" {
		return models.FlagState{}, ErrEmptyIdentifier
	}

	current, err := s.episodes.GetFlag(ctx, identifier)
	if err != nil {
		return models.FlagState{}, fmt.Errorf("read flag: %w", err)
	}

	flag := models.FlagState{
		Identifier:       identifier,
		Value:            value,
		LastModifiedAtMs: max(s.now().UnixMilli(), current.LastModifiedAtMs+1),
	}
	if err = s.episodes.SetFlag(ctx, flag); err != nil {
		return models.FlagState{}, fmt.Errorf("write flag: %w", err)
	}

	s.projector.PublishFlag(flag)
	return flag, nil
}

func (s *starService) Flag(ctx context.Context, identifier string) (models.FlagState, error) {
	return s.episodes.GetFlag(ctx, identifier)
}
