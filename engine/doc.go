// SPDX-License-Identifier: MIT

// Package engine multiplies integer matrices with concurrent workers.
//
// An Orchestrator binds A and B into a ComputeContext, which owns the result C
// and an exclusive write lock, and then starts workers through a Spawner:
//
//   - StrategyPool (default): min(GOMAXPROCS, cells) workers drain a FIFO
//     queue of (row, col) cells.
//   - StrategyPerCell: one worker per output cell, spawned in linear order.
//
// Each WorkerTask computes one dot product without synchronisation, then takes
// the lock to store it. Waiting for the lock is the cancellation point.
//
// If a worker cannot be started, every worker started before it is cancelled
// (newest first) and joined before the error is returned as a
// *ThreadCreationError. A scheduling profile from package sched may be applied
// to every worker thread:
//
//	p, _ := sched.Realtime()
//	res, err := engine.New(engine.WithProfile(p)).Multiply(ctx, a, b)
//
// Hooks (WithOnState, WithOnWrite) expose the lifecycle and every cell write
// for instrumentation and tests.
package engine
