// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-pod-sync/internal/config"
	"github.com/MKhiriev/go-pod-sync/internal/logger"
	"github.com/MKhiriev/go-pod-sync/internal/utils"
)

const defaultRetryBaseDelay = 500 * time.Millisecond

type syncJob struct {
	coordinators []SyncCoordinator
	retry        config.ClientWorkers

	logger *logger.Logger
}

// NewSyncJob returns a job that syncs every collection once per run. Transport
// failures are retried with capped exponential backoff; other errors end the
// collection's run immediately.
func NewSyncJob(coordinators []SyncCoordinator, cfg config.ClientWorkers, logger *logger.Logger) Job {
	return &syncJob{coordinators: coordinators, retry: cfg, logger: logger}
}

func (j *syncJob) RunOnce(ctx context.Context) error {
	var errs []error
	for _, coordinator := range j.coordinators {
		if err := j.syncWithRetry(ctx, coordinator); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// syncWithRetry tags the cycle with a fresh trace id so the attempts can be
// matched with the server's access log.
func (j *syncJob) syncWithRetry(ctx context.Context, coordinator SyncCoordinator) error {
	traceID := uuid.NewString()
	ctx = utils.WithTraceID(ctx, traceID)

	attempt := 0
	return retry.Do(ctx, j.backoff(), func(ctx context.Context) error {
		attempt++
		_, err := coordinator.Sync(ctx)
		if err == nil {
			return nil
		}

		if errors.Is(err, ErrTransportFailure) {
			j.logger.Warn().Err(err).
				Str("collection", string(coordinator.Collection())).
				Str("trace_id", traceID).
				Int("attempt", attempt).
				Msg("sync attempt failed, retrying")
			return retry.RetryableError(err)
		}
		return err
	})
}

func (j *syncJob) backoff() retry.Backoff {
	base := j.retry.RetryBaseDelay
	if base <= 0 {
		base = defaultRetryBaseDelay
	}

	b := retry.NewExponential(base)
	if j.retry.RetryMaxDelay > 0 {
		b = retry.WithCappedDuration(j.retry.RetryMaxDelay, b)
	}
	return retry.WithMaxRetries(j.retry.MaxRetries, b)
}
