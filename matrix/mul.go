// SPDX-License-Identifier: MIT
// Package matrix provides the integer kernels shared by the sequential
// reference product and the concurrent engine.
//
// Purpose:
//   - Dot computes one output cell; the engine's cell workers call it directly.
//   - Mul is the single-goroutine reference product used as an oracle and for
//     tiny inputs where spawning workers is not worth it.
//
// Notes:
//   - Both kernels only read their operands; they never mutate a or b.

package matrix

import "fmt"

const opMul = "Mul"

// Dot returns Σ_k a[row][k] * b[k][col].
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b) and bounds-check row/col.
//   - Stage 2: fixed k-ascending accumulation over the flat buffers.
//
// Behavior highlights:
//   - No allocation, no locking; safe to call from many goroutines while
//     a and b are not mutated.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrOutOfRange.
//
// Complexity:
//   - Time O(n) where n = a.Cols(), Space O(1).
func Dot(a, b *Dense, row, col int) (int, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return 0, matrixErrorf("Dot", err)
	}
	if row < 0 || row >= a.r || col < 0 || col >= b.c {
		return 0, matrixErrorf("Dot", fmt.Errorf("(%d,%d): %w", row, col, ErrOutOfRange))
	}

	return dot(a, b, row, col), nil
}

// dot is the unchecked kernel behind Dot. Callers guarantee shapes and indices.
func dot(a, b *Dense, row, col int) int {
	var (
		sum  int
		k    int
		rowA = row * a.c // offset of a[row][0]
	)
	for k = 0; k < a.c; k++ {
		sum += a.data[rowA+k] * b.data[k*b.c+col]
	}

	return sum
}

// DotUnchecked is dot without validation, for callers that validated shapes
// once up front (the engine validates in NewComputeContext).
// Passing out-of-range indices panics like any slice access.
func DotUnchecked(a, b *Dense, row, col int) int { return dot(a, b, row, col) }

// Mul performs standard matrix multiplication C = A × B on one goroutine.
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j loop over row-major strides, skipping zero A[i,k].
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch),
//     ErrAllocation (result storage).
//
// Determinism:
//   - Fixed loop order; integer arithmetic is exact (overflow wraps).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k    int
		av         int
		offA, offB int // row offsets into a and b
		offR       int // row offset into res
	)
	for i = 0; i < a.r; i++ {
		offA = i * a.c
		offR = i * b.c
		for k = 0; k < a.c; k++ {
			av = a.data[offA+k]
			if av == 0 {
				continue // skip zero row entries
			}
			offB = k * b.c
			for j = 0; j < b.c; j++ {
				res.data[offR+j] += av * b.data[offB+j]
			}
		}
	}

	return res, nil
}
