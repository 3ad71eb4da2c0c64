// SPDX-License-Identifier: MIT
package engine_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/katalvlaran/cellmul/engine"
	"github.com/katalvlaran/cellmul/matrix"
	"github.com/stretchr/testify/require"
)

var errNoThreads = errors.New("resource temporarily unavailable")

func mustDense(tb testing.TB, rows [][]int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(tb, err)

	return m
}

// stateLog records state transitions in order.
type stateLog struct {
	mu     sync.Mutex
	states []engine.State
}

func (l *stateLog) record(s engine.State) {
	l.mu.Lock()
	l.states = append(l.states, s)
	l.mu.Unlock()
}

func (l *stateLog) get() []engine.State {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]engine.State(nil), l.states...)
}

// failingSpawner starts workers that block until cancelled and refuses the
// spawn at index failAt. It records Cancel and Join calls by index.
type failingSpawner struct {
	failAt int
	inner  engine.GoroutineSpawner

	mu        sync.Mutex
	spawned   []int
	cancelled []int
	joined    []int
}

func (s *failingSpawner) Spawn(ctx context.Context, req engine.SpawnRequest) (engine.Handle, error) {
	if req.Index == s.failAt {
		return nil, errNoThreads
	}
	req.Task = func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}
	h, err := s.inner.Spawn(ctx, req)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.spawned = append(s.spawned, req.Index)
	s.mu.Unlock()

	return &recordingHandle{Handle: h, idx: req.Index, s: s}, nil
}

type recordingHandle struct {
	engine.Handle
	idx int
	s   *failingSpawner
}

func (h *recordingHandle) Cancel() {
	h.s.mu.Lock()
	h.s.cancelled = append(h.s.cancelled, h.idx)
	h.s.mu.Unlock()
	h.Handle.Cancel()
}

func (h *recordingHandle) Join() error {
	err := h.Handle.Join()
	h.s.mu.Lock()
	h.s.joined = append(h.s.joined, h.idx)
	h.s.mu.Unlock()

	return err
}

// countingSpawner counts Spawn calls and delegates to the goroutine spawner.
type countingSpawner struct {
	mu    sync.Mutex
	calls int
	inner engine.GoroutineSpawner
}

func (s *countingSpawner) Spawn(ctx context.Context, req engine.SpawnRequest) (engine.Handle, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()

	return s.inner.Spawn(ctx, req)
}

func descending(n int) []int {
	var out []int
	for i := n - 1; i >= 0; i-- {
		out = append(out, i)
	}

	return out
}
