// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-pod-sync/models"
)

// SyncCoordinator drives sync cycles of one collection. At most one cycle
// runs at a time; concurrent callers of Sync share the in-flight result.
type SyncCoordinator interface {
	Collection() models.Collection

	// Sync runs one cycle: push pending local changes, fetch the server
	// state and reconcile it. A not-modified answer is a success.
	Sync(ctx context.Context) (models.SyncReport, error)

	// State returns the current state of the cycle state machine.
	State() models.SyncState
}

// UpNextService records user edits of the Up Next queue. Every edit is
// appended to the change journal before the live queue is updated.
type UpNextService interface {
	Replace(ctx context.Context, identifiers ...string) (models.QueueState, error)
	PlayNext(ctx context.Context, identifier string) (models.QueueState, error)
	PlayLast(ctx context.Context, identifier string) (models.QueueState, error)
	Remove(ctx context.Context, identifier string) (models.QueueState, error)
	ClearAll(ctx context.Context) (models.QueueState, error)
	Queue() models.QueueState
}

// StarService records user changes of the starred flag.
type StarService interface {
	SetStarred(ctx context.Context, identifier string, value bool) (models.FlagState, error)
	Flag(ctx context.Context, identifier string) (models.FlagState, error)
}

// EntityImporter creates local records for identifiers the server refers to
// but the client has not cached yet.
type EntityImporter interface {
	// ResolveEntity returns nil without error when parent is nil.
	ResolveEntity(ctx context.Context, parent *string, identifier, placeholderTitle string, placeholderPublishedAtMs *int64) (*models.Episode, error)

	// ResolveMissingParents fetches every listed podcast that is not stored
	// yet. The standalone sentinel is never fetched.
	ResolveMissingParents(ctx context.Context, parents []string) error
}

// QueueSink receives every projected queue.
type QueueSink interface {
	PublishQueue(queue models.QueueState)
}

// FlagSink receives every projected flag change.
type FlagSink interface {
	PublishFlag(flag models.FlagState)
}

// Job is a unit of background work run by a periodic worker.
type Job interface {
	RunOnce(ctx context.Context) error
}
