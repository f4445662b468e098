// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-pod-sync/internal/service"
	"github.com/MKhiriev/go-pod-sync/models"
)

// triggeringUpNext calls trigger after every successful queue edit.
type triggeringUpNext struct {
	service.UpNextService
	trigger func()
}

func (u triggeringUpNext) Replace(ctx context.Context, identifiers ...string) (models.QueueState, error) {
	return u.after(u.UpNextService.Replace(ctx, identifiers...))
}

func (u triggeringUpNext) PlayNext(ctx context.Context, identifier string) (models.QueueState, error) {
	return u.after(u.UpNextService.PlayNext(ctx, identifier))
}

func (u triggeringUpNext) PlayLast(ctx context.Context, identifier string) (models.QueueState, error) {
	return u.after(u.UpNextService.PlayLast(ctx, identifier))
}

func (u triggeringUpNext) Remove(ctx context.Context, identifier string) (models.QueueState, error) {
	return u.after(u.UpNextService.Remove(ctx, identifier))
}

func (u triggeringUpNext) ClearAll(ctx context.Context) (models.QueueState, error) {
	return u.after(u.UpNextService.ClearAll(ctx))
}

func (u triggeringUpNext) after(queue models.QueueState, err error) (models.QueueState, error) {
	if err == nil {
		u.trigger()
	}
	return queue, err
}

// triggeringStars calls trigger after every successful flag change.
type triggeringStars struct {
	service.StarService
	trigger func()
}

func (s triggeringStars) SetStarred(ctx context.Context, identifier string, value bool) (models.FlagState, error) {
	flag, err := s.StarService.SetStarred(ctx, identifier, value)
	if err == nil {
		s.trigger()
	}
	return flag, err
}
