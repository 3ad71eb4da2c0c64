// SPDX-License-Identifier: MIT
package engine

import (
	"context"
	"io"
	"log/slog"
	"runtime"

	"github.com/katalvlaran/cellmul/sched"
)

// Handle controls one started worker.
type Handle interface {
	// Cancel asks the worker to stop at its next cancellation point.
	// It does not wait; it is safe to call more than once.
	Cancel()
	// Join blocks until the worker has terminated and returns its error.
	Join() error
}

// SpawnRequest describes one worker to start.
type SpawnRequest struct {
	Index   int                             // spawn index, ascending from 0
	Profile sched.Profile                   // scheduling profile, identical for every request
	Task    func(ctx context.Context) error // worker body
}

// Spawner starts workers. A non-nil error means the worker was not started
// and its Task will never run.
type Spawner interface {
	Spawn(ctx context.Context, req SpawnRequest) (Handle, error)
}

// SpawnerFunc adapts a function to Spawner.
type SpawnerFunc func(ctx context.Context, req SpawnRequest) (Handle, error)

// Spawn calls f.
func (f SpawnerFunc) Spawn(ctx context.Context, req SpawnRequest) (Handle, error) { return f(ctx, req) }

// GoroutineSpawner runs each worker on its own goroutine. The zero value is
// ready to use.
//
// Explicit profiles are applied by the new goroutine to its own OS thread
// after runtime.LockOSThread. Spawn waits for that handshake, so a refused
// profile surfaces as a Spawn error unless BestEffort is set, in which case
// it is logged and the worker runs with inherited scheduling.
type GoroutineSpawner struct {
	BestEffort bool
	Logger     *slog.Logger
}

// Spawn implements Spawner.
func (s *GoroutineSpawner) Spawn(ctx context.Context, req SpawnRequest) (Handle, error) {
	wctx, cancel := context.WithCancel(ctx)
	h := &goHandle{cancel: cancel, done: make(chan struct{})}
	started := make(chan error, 1)

	go func() {
		defer close(h.done)
		if req.Profile.IsExplicit() {
			// Never unlocked: the thread carries the profile and is
			// discarded by the runtime when this goroutine exits.
			runtime.LockOSThread()
			if err := req.Profile.ApplyToCurrentThread(); err != nil {
				if !s.BestEffort {
					started <- err
					return
				}
				s.logger().Warn("scheduling profile not applied",
					slog.Int("worker", req.Index),
					slog.String("profile", req.Profile.String()),
					slog.Any("err", err))
			}
		}
		started <- nil
		h.err = req.Task(wctx)
	}()

	if err := <-started; err != nil {
		cancel()
		<-h.done

		return nil, err
	}

	return h, nil
}

func (s *GoroutineSpawner) logger() *slog.Logger {
	if s.Logger == nil {
		return discardLogger
	}

	return s.Logger
}

// goHandle is the Handle of a GoroutineSpawner worker.
type goHandle struct {
	cancel context.CancelFunc
	done   chan struct{}
	err    error // written before done is closed
}

func (h *goHandle) Cancel() { h.cancel() }

func (h *goHandle) Join() error {
	<-h.done
	h.cancel()

	return h.err
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
