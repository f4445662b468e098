// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pod-sync/internal/logger"
)

const defaultInterval = 5 * time.Minute

// Periodic runs a job once at start and then every interval until its context
// ends. Job errors are logged and do not stop the worker.
type Periodic struct {
	name     string
	interval time.Duration
	job      Job

	trigger chan struct{}
	logger  *logger.Logger
}

// NewPeriodic creates an idle worker. If interval is zero or negative it
// defaults to 5 minutes.
func NewPeriodic(name string, interval time.Duration, job Job, logger *logger.Logger) *Periodic {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Periodic{
		name:     name,
		interval: interval,
		job:      job,
		trigger:  make(chan struct{}, 1),
		logger:   logger,
	}
}

// Trigger asks for a run without waiting for the next tick. Triggers that
// arrive while one is already pending are merged.
func (p *Periodic) Trigger() {
	select {
	case p.trigger <- struct{}{}:
	default:
	}
}

// Run implements Worker.
func (p *Periodic) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.logger.Info().Str("worker", p.name).Dur("interval", p.interval).Msg("worker started")
	p.runOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			p.logger.Info().Str("worker", p.name).Msg("worker stopped")
			return nil
		case <-ticker.C:
			p.runOnce(ctx)
		case <-p.trigger:
			p.runOnce(ctx)
			ticker.Reset(p.interval)
		}
	}
}

func (p *Periodic) runOnce(ctx context.Context) {
	started := time.Now()
	if err := p.job.RunOnce(ctx); err != nil {
		if ctx.Err() != nil {
			return
		}
		p.logger.Err(err).Str("worker", p.name).Msg("worker run failed")
		return
	}
	p.logger.Debug().Str("worker", p.name).Dur("took", time.Since(started)).Msg("worker run finished")
}
