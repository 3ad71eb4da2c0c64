// SPDX-License-Identifier: MIT
// Package engine: sentinel errors and the typed spawn failure.
//
// Every message is prefixed with "engine: ...". Wrap with engineErrorf at the
// detection site; callers match with errors.Is / errors.As.

package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrThreadCreation classifies a worker that could not be started.
	// The concrete error is always a *ThreadCreationError.
	ErrThreadCreation = errors.New("engine: worker could not be started")

	// ErrOptionViolation is returned when an invalid Option was supplied.
	ErrOptionViolation = errors.New("engine: invalid option supplied")
)

// ThreadCreationError reports the worker whose spawn failed. Every worker
// spawned before it has been cancelled and joined by the time it is returned.
type ThreadCreationError struct {
	Index int   // spawn index (cell index per-cell, slot index in a pool)
	Row   int   // cell row, or -1 for pool slots
	Col   int   // cell column, or -1 for pool slots
	Err   error // cause reported by the Spawner
}

// Error implements error.
func (e *ThreadCreationError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("engine: spawn worker %d: %v", e.Index, e.Err)
	}

	return fmt.Sprintf("engine: spawn worker %d (cell %d,%d): %v", e.Index, e.Row, e.Col, e.Err)
}

// Unwrap exposes the spawn cause.
func (e *ThreadCreationError) Unwrap() error { return e.Err }

// Is matches ErrThreadCreation.
func (e *ThreadCreationError) Is(target error) bool { return target == ErrThreadCreation }

// engineErrorf wraps err with a call-site tag, preserving errors.Is.
func engineErrorf(tag string, err error) error {
	return fmt.Errorf("engine: %s: %w", tag, err)
}
