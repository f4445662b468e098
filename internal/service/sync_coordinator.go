// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/go-pod-sync/internal/adapter"
	"github.com/MKhiriev/go-pod-sync/internal/codec"
	"github.com/MKhiriev/go-pod-sync/internal/logger"
	"github.com/MKhiriev/go-pod-sync/models"
)

// Device identifies the syncing client on the wire.
type Device struct {
	ID   string
	Kind models.DeviceKind
}

// preparedCycle is what a stream captured while building the request. The
// prune bounds cover the captured journal snapshot only.
type preparedCycle struct {
	Watermark int64

	Changes  []models.SyncChange
	Flags    []models.FlagChange
	Episodes []models.EpisodeMeta

	MaxModifiedAtMs int64
	MaxID           int64

	// PushSeq is the highest local flag sequence in Flags, zero when no
	// flag is pushed.
	PushSeq int64
}

// syncStream is the collection-specific half of a cycle.
type syncStream interface {
	Collection() models.Collection
	Prepare(ctx context.Context) (preparedCycle, error)
	Reconcile(ctx context.Context, cycle preparedCycle, snapshot models.Snapshot) (models.SyncReport, error)
}

type syncCoordinator struct {
	stream    syncStream
	codec     codec.Codec
	transport adapter.SyncTransport
	device    Device

	group singleflight.Group
	state atomic.Int32

	logger *logger.Logger
}

// newSyncCoordinator returns a coordinator for stream.
func newSyncCoordinator(stream syncStream, c codec.Codec, transport adapter.SyncTransport, device Device, logger *logger.Logger) *syncCoordinator {
	return &syncCoordinator{
		stream:    stream,
		codec:     c,
		transport: transport,
		device:    device,
		logger:    logger.WithCollection(string(stream.Collection())),
	}
}

func (c *syncCoordinator) Collection() models.Collection {
	return c.stream.Collection()
}

func (c *syncCoordinator) State() models.SyncState {
	return models.SyncState(c.state.Load())
}

// Sync runs one cycle. A call made while a cycle is in flight joins it and
// shares its report; the cycle runs under the ctx of the call that started
// it. A joining call whose own ctx ends stops waiting and returns
// [ErrSyncCancelled] while the cycle carries on.
func (c *syncCoordinator) Sync(ctx context.Context) (models.SyncReport, error) {
	var started atomic.Bool
	results := c.group.DoChan(string(c.Collection()), func() (any, error) {
		started.Store(true)
		return c.run(ctx)
	})

	select {
	case res := <-results:
		return c.report(res)
	case <-ctx.Done():
		if started.Load() {
			// the cycle runs under this ctx and fails on its own
			return c.report(<-results)
		}
		return models.SyncReport{Collection: c.Collection()}, fmt.Errorf("%w: %w", ErrSyncCancelled, ctx.Err())
	}
}

func (c *syncCoordinator) report(res singleflight.Result) (models.SyncReport, error) {
	if res.Shared {
		c.logger.Debug().Msg("joined in-flight sync cycle")
	}
	report, _ := res.Val.(models.SyncReport)
	return report, res.Err
}

func (c *syncCoordinator) run(ctx context.Context) (models.SyncReport, error) {
	ctx = c.logger.WithContext(ctx)
	collection := c.Collection()

	c.transition(models.SyncBuildingRequest)
	cycle, err := c.stream.Prepare(ctx)
	if err != nil {
		return c.fail(fmt.Errorf("prepare %s request: %w", collection, err))
	}

	req := models.SyncRequest{
		DeviceID:   c.device.ID,
		DeviceKind: c.device.Kind,
		Changes:    cycle.Changes,
		Flags:      cycle.Flags,
		Episodes:   cycle.Episodes,
	}
	if cycle.Watermark > 0 {
		watermark := cycle.Watermark
		req.LastWatermark = &watermark
	}

	body, err := c.codec.EncodeRequest(req)
	if err != nil {
		return c.fail(fmt.Errorf("encode %s request: %w", collection, err))
	}

	c.transition(models.SyncAwaitingResponse)
	exchange, err := c.transport.Exchange(ctx, collection, c.codec.ContentType(), body)
	if err != nil {
		if ctx.Err() != nil {
			return c.fail(fmt.Errorf("%w: %w", ErrSyncCancelled, err))
		}
		return c.fail(fmt.Errorf("%w: %w", ErrTransportFailure, err))
	}

	if exchange.NotModified {
		c.transition(models.SyncNotModified)
		c.transition(models.SyncIdle)
		return models.SyncReport{
			Collection: collection,
			Outcome:    models.OutcomeNotModified,
			Watermark:  cycle.Watermark,
		}, nil
	}

	c.transition(models.SyncResponseReceived)
	snapshot, err := c.codec.DecodeSnapshot(exchange.Body)
	if err != nil {
		return c.fail(fmt.Errorf("%w: %w", ErrMalformedResponse, err))
	}

	if err = ctx.Err(); err != nil {
		return c.fail(fmt.Errorf("%w: %w", ErrSyncCancelled, err))
	}

	c.transition(models.SyncReconciling)
	report, err := c.stream.Reconcile(ctx, cycle, snapshot)
	if err != nil {
		if ctx.Err() != nil {
			return c.fail(fmt.Errorf("%w: %w", ErrSyncCancelled, err))
		}
		return c.fail(fmt.Errorf("reconcile %s: %w", collection, err))
	}

	c.transition(models.SyncIdle)
	c.logger.Info().
		Str("outcome", string(report.Outcome)).
		Int64("watermark", report.Watermark).
		Int("pushed", report.Pushed).
		Int("applied", report.Applied).
		Int("skipped", report.Skipped).
		Int64("pruned", report.Pruned).
		Msg("sync cycle finished")

	return report, nil
}

func (c *syncCoordinator) fail(err error) (models.SyncReport, error) {
	c.transition(models.SyncFailed)
	c.logger.Err(err).Msg("sync cycle failed")
	c.transition(models.SyncIdle)
	return models.SyncReport{Collection: c.Collection()}, err
}

func (c *syncCoordinator) transition(state models.SyncState) {
	c.state.Store(int32(state))
	c.logger.Debug().Str("state", state.String()).Msg("sync state")
}
