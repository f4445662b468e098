// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-pod-sync/internal/logger"
	"github.com/MKhiriev/go-pod-sync/internal/service"
)

// stateWatcher logs every queue and flag the engine publishes.
type stateWatcher struct {
	broadcaster *service.Broadcaster
	logger      *logger.Logger
}

func newStateWatcher(broadcaster *service.Broadcaster, logger *logger.Logger) *stateWatcher {
	return &stateWatcher{broadcaster: broadcaster, logger: logger}
}

func (w *stateWatcher) Run(ctx context.Context) error {
	if w.broadcaster == nil {
		<-ctx.Done()
		return nil
	}

	queues, unsubscribeQueue := w.broadcaster.SubscribeQueue()
	defer unsubscribeQueue()
	flags, unsubscribeFlags := w.broadcaster.SubscribeFlags()
	defer unsubscribeFlags()

	for {
		select {
		case <-ctx.Done():
			return nil
		case queue := <-queues:
			w.logger.Debug().Strs("queue", queue.Identifiers()).Msg("up next updated")
		case flag := <-flags:
			w.logger.Debug().
				Str("episode", flag.Identifier).
				Bool("starred", flag.Value).
				Int64("modified_at_ms", flag.LastModifiedAtMs).
				Msg("starred flag updated")
		}
	}
}
