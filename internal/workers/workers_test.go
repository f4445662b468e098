// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-pod-sync/internal/logger"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount atomic.Int32
	err      error
}

func (m *mockWorker) Run(ctx context.Context) error {
	m.runCount.Add(1)
	if m.err != nil {
		return m.err
	}
	<-ctx.Done()
	return nil
}

// countingJob counts RunOnce calls and reports each one on ran.
type countingJob struct {
	calls atomic.Int32
	err   error
	ran   chan struct{}
}

func newCountingJob() *countingJob {
	return &countingJob{ran: make(chan struct{}, 64)}
}

func (j *countingJob) RunOnce(context.Context) error {
	j.calls.Add(1)
	select {
	case j.ran <- struct{}{}:
	default:
	}
	return j.err
}

func waitRun(t *testing.T, j *countingJob) {
	t.Helper()
	select {
	case <-j.ran:
	case <-time.After(time.Second):
		t.Fatal("job did not run")
	}
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	ws := NewWorkers(w1, w2, w3)
	if err := ws.Run(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, w := range []*mockWorker{w1, w2, w3} {
		if got := w.runCount.Load(); got != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, got)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not block or panic on empty workers list
	if err := ws.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	if err := ws.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestWorkers_Run_FailureStopsOthers(t *testing.T) {
	boom := errors.New("boom")
	healthy := &mockWorker{}
	failing := &mockWorker{err: boom}

	done := make(chan error, 1)
	go func() { done <- NewWorkers(healthy, failing).Run(context.Background()) }()

	select {
	case err := <-done:
		if !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("workers did not stop after a failure")
	}
}

func TestPeriodic_RunsImmediatelyAndOnTicks(t *testing.T) {
	job := newCountingJob()
	p := NewPeriodic("sync", 10*time.Millisecond, job, logger.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 55*time.Millisecond)
	defer cancel()

	if err := p.Run(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := job.calls.Load(); got < 3 {
		t.Errorf("expected at least 3 runs, got %d", got)
	}
}

func TestPeriodic_Trigger(t *testing.T) {
	job := newCountingJob()
	p := NewPeriodic("sync", time.Hour, job, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = p.Run(ctx)
	}()

	waitRun(t, job) // initial run
	p.Trigger()
	waitRun(t, job)

	cancel()
	wg.Wait()

	if got := job.calls.Load(); got != 2 {
		t.Errorf("expected 2 runs, got %d", got)
	}
}

func TestPeriodic_TriggerDoesNotBlock(t *testing.T) {
	p := NewPeriodic("sync", time.Hour, newCountingJob(), logger.Nop())

	// nobody is running the worker: extra triggers are merged
	for i := 0; i < 10; i++ {
		p.Trigger()
	}

	if len(p.trigger) != 1 {
		t.Errorf("expected one pending trigger, got %d", len(p.trigger))
	}
}

func TestPeriodic_JobErrorsDoNotStopWorker(t *testing.T) {
	job := newCountingJob()
	job.err = errors.New("offline")
	p := NewPeriodic("sync", 5*time.Millisecond, job, logger.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 40*time.Millisecond)
	defer cancel()

	if err := p.Run(ctx); err != nil {
		t.Fatalf("job errors must not end the worker, got %v", err)
	}
	if got := job.calls.Load(); got < 2 {
		t.Errorf("expected the job to keep running, got %d runs", got)
	}
}

func TestNewPeriodic_DefaultInterval(t *testing.T) {
	p := NewPeriodic("enrich", 0, newCountingJob(), logger.Nop())

	if p.interval != defaultInterval {
		t.Errorf("expected %v, got %v", defaultInterval, p.interval)
	}
}
