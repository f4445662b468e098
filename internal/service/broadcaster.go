// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sync"

	"github.com/MKhiriev/go-pod-sync/models"
)

const defaultSubscriberBuffer = 16

// Broadcaster fans projected state out to subscribers. Publishing never
// blocks: a subscriber whose buffer is full misses the update. Queue
// subscribers always get the newest queue because a stale pending one is
// replaced.
type Broadcaster struct {
	mu     sync.RWMutex
	queues map[int]chan models.QueueState
	flags  map[int]chan models.FlagState
	nextID int
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		queues: make(map[int]chan models.QueueState),
		flags:  make(map[int]chan models.FlagState),
	}
}

// SubscribeQueue returns a channel of projected queues and a function that
// unsubscribes and closes the channel.
func (b *Broadcaster) SubscribeQueue() (<-chan models.QueueState, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	ch := make(chan models.QueueState, 1)
	b.queues[id] = ch

	return ch, func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if c, ok := b.queues[id]; ok {
			delete(b.queues, id)
			close(c)
		}
	}
}

// SubscribeFlags returns a channel of flag changes and a function that
// unsubscribes and closes the channel.
func (b *Broadcaster) SubscribeFlags() (<-chan models.FlagState, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	ch := make(chan models.FlagState, defaultSubscriberBuffer)
	b.flags[id] = ch

	return ch, func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if c, ok := b.flags[id]; ok {
			delete(b.flags, id)
			close(c)
		}
	}
}

func (b *Broadcaster) PublishQueue(queue models.QueueState) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.queues {
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- queue.Clone():
		default:
		}
	}
}

func (b *Broadcaster) PublishFlag(flag models.FlagState) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.flags {
		select {
		case ch <- flag:
		default:
		}
	}
}
