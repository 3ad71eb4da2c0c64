// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All constructors and kernels MUST return these sentinels and tests
// MUST check them via errors.Is. No kernel should panic on user-triggered
// error conditions; panics are reserved for option constructors.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Wrap with fmt.Errorf("ctx: %w", ErrX) at the
// detection site; callers still use errors.Is to match.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Mul where a.Cols != b.Rows, or ragged literal rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrAllocation indicates that storage for a matrix could not be obtained:
	// the element count overflows, exceeds the configured cell limit, or the
	// runtime refused the allocation. Populating a matrix that failed to
	// allocate reports the same sentinel.
	ErrAllocation = errors.New("matrix: allocation failed")

	// ErrInvalidBounds indicates a random range with min > max.
	ErrInvalidBounds = errors.New("matrix: invalid value bounds")
)
