// SPDX-License-Identifier: MIT
// Package engine: functional options for the Orchestrator.
//
// Policy:
//   • Nil programmer inputs (factory, spawner) panic at option construction.
//   • Invalid values a caller may compute at runtime (negative worker count,
//     inverted value range, failed profile build) are recorded and surfaced
//     from Multiply/Run before anything is allocated or spawned.
//   • Nil hooks and loggers are ignored.

package engine

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/cellmul/matrix"
	"github.com/katalvlaran/cellmul/sched"
)

// Defaults for Orchestrator options.
const (
	// DefaultStrategy is the bounded pool.
	DefaultStrategy = StrategyPool
	// DefaultWorkers of 0 means runtime.GOMAXPROCS(0), clamped to the cell count.
	DefaultWorkers = 0
	// DefaultExclusiveWrites serialises result writes through the lock.
	DefaultExclusiveWrites = true
)

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithLogger sets the structured logger. Nil keeps the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Orchestrator) {
		if l != nil {
			o.log = l
		}
	}
}

// WithFactory sets the factory used for C and for Run's random operands.
// Panics on nil.
func WithFactory(f *matrix.Factory) Option {
	if f == nil {
		panic("engine: WithFactory(nil)")
	}

	return func(o *Orchestrator) { o.factory = f }
}

// WithValueRange sets the inclusive range of Run's random operand values.
//
//	lo <= hi: accepted
//	lo > hi:  recorded → ErrOptionViolation
func WithValueRange(lo, hi int) Option {
	return func(o *Orchestrator) {
		if lo > hi {
			o.err = fmt.Errorf("%w: value range [%d,%d] is inverted", ErrOptionViolation, lo, hi)
			return
		}
		o.minValue, o.maxValue = lo, hi
	}
}

// WithProfile sets the scheduling profile passed to every spawn.
func WithProfile(p sched.Profile) Option {
	return func(o *Orchestrator) {
		o.profile = p
		o.profileErr = nil
	}
}

// WithProfileOptions builds the profile with sched.NewProfile. A failing
// configuration step aborts Multiply/Run before any worker is spawned with
// the *sched.ConfigError.
func WithProfileOptions(opts ...sched.Option) Option {
	return func(o *Orchestrator) {
		o.profile, o.profileErr = sched.NewProfile(opts...)
	}
}

// WithBestEffort logs a refused profile instead of failing the spawn.
// Only affects the default spawner.
func WithBestEffort() Option {
	return func(o *Orchestrator) { o.bestEffort = true }
}

// WithStrategy selects per-cell or pool execution.
func WithStrategy(s Strategy) Option {
	return func(o *Orchestrator) {
		switch s {
		case StrategyPool, StrategyPerCell:
			o.strategy = s
		default:
			o.err = fmt.Errorf("%w: unknown strategy %d", ErrOptionViolation, int(s))
		}
	}
}

// WithWorkers bounds the pool size.
//
//	n > 0:  at most n workers
//	n == 0: runtime.GOMAXPROCS(0)
//	n < 0:  recorded → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Orchestrator) {
		if n < 0 {
			o.err = fmt.Errorf("%w: workers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.workers = n
	}
}

// WithSpawner replaces the goroutine spawner. Panics on nil.
func WithSpawner(s Spawner) Option {
	if s == nil {
		panic("engine: WithSpawner(nil)")
	}

	return func(o *Orchestrator) { o.spawner = s }
}

// WithExclusiveWrites toggles the write lock. With false, distinct-cell writes
// proceed without mutual exclusion and workers check cancellation directly.
func WithExclusiveWrites(on bool) Option {
	return func(o *Orchestrator) { o.exclusive = on }
}

// WithOnWrite registers a hook called for every cell write, inside the
// critical section when writes are exclusive.
func WithOnWrite(fn func(row, col, value int)) Option {
	return func(o *Orchestrator) {
		if fn != nil {
			o.onWrite = fn
		}
	}
}

// WithOnState registers a hook called on every state transition, from the
// goroutine running Multiply/Run.
func WithOnState(fn func(State)) Option {
	return func(o *Orchestrator) {
		if fn != nil {
			o.onState = fn
		}
	}
}
