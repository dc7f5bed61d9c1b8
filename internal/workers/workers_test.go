// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/lara-connect/internal/config"
	"github.com/MKhiriev/lara-connect/internal/logger"
	"github.com/MKhiriev/lara-connect/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingWorker records its runs and returns when ctx is done.
type countingWorker struct {
	runs atomic.Int32
}

func (w *countingWorker) Run(ctx context.Context) {
	w.runs.Add(1)
	<-ctx.Done()
}

type stubSweeper struct {
	mu     sync.Mutex
	calls  int
	err    error
	result service.SweepResult
}

func (s *stubSweeper) Sweep(context.Context) (service.SweepResult, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	return s.result, s.err
}

func (s *stubSweeper) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func TestWorkers_Run_AllWorkersRunUntilCancelled(t *testing.T) {
	w1, w2 := &countingWorker{}, &countingWorker{}
	ws := &Workers{workers: []Worker{w1, w2}}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		ws.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return w1.runs.Load() == 1 && w2.runs.Load() == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Workers.Run did not return after cancel")
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := &Workers{}

	// returns immediately with nothing to wait for
	ws.Run(context.Background())
}

func TestNewWorkers_BuildsJanitor(t *testing.T) {
	services := &service.Services{JanitorService: &stubSweeper{}}

	ws := NewWorkers(services, config.Workers{JanitorInterval: time.Minute}, logger.Nop())

	require.Len(t, ws.workers, 1)
	assert.IsType(t, &Janitor{}, ws.workers[0])
}

func TestJanitor_SweepsImmediatelyAndOnTick(t *testing.T) {
	sweeper := &stubSweeper{
		result: service.SweepResult{UnverifiedAccounts: 2, ExpiredResets: 1},
	}
	j := NewJanitor(sweeper, 10*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		j.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return sweeper.Calls() >= 3 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop after cancel")
	}
}

func TestJanitor_KeepsRunningAfterFailure(t *testing.T) {
	sweeper := &stubSweeper{err: errors.New("database unavailable")}
	j := NewJanitor(sweeper, 10*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go j.Run(ctx)

	require.Eventually(t, func() bool { return sweeper.Calls() >= 2 }, time.Second, 5*time.Millisecond)
}

func TestJanitor_StopsOnCancelledContext(t *testing.T) {
	sweeper := &stubSweeper{}
	j := NewJanitor(sweeper, time.Hour, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		j.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not return on a cancelled context")
	}
	assert.Equal(t, 1, sweeper.Calls())
}

func TestJanitor_TransientFailureLogsWarning(t *testing.T) {
	var buf bytes.Buffer
	sweeper := &stubSweeper{err: fmt.Errorf("deleting expired resets: %w", service.ErrStorageUnavailable)}
	j := NewJanitor(sweeper, time.Hour, logger.New("server", &buf))

	j.sweep(context.Background())

	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), "retrying on next tick")
}
