// SPDX-License-Identifier: MIT
package engine

import (
	"context"
	"sync/atomic"

	"github.com/katalvlaran/cellmul/matrix"
	"golang.org/x/sync/semaphore"
)

// ComputeContext binds the read-only operands, the result and the exclusive
// write lock for one multiplication. It spawns nothing.
//
// Contract:
//   - A is rA×cA, B is cA×cB, C is rA×cB and zero-filled at construction.
//   - A and B are never written; C is written only through write.
//   - The lock starts unlocked and outlives every worker that uses it.
type ComputeContext struct {
	a, b, c *matrix.Dense

	lock    *semaphore.Weighted // nil when exclusive writes are disabled
	onWrite func(row, col, value int)
	writes  atomic.Int64
}

// NewComputeContext validates the operand shapes and allocates a zeroed C
// guarded by an exclusive write lock.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch for bad operands.
//   - matrix.ErrAllocation when C cannot be allocated.
func NewComputeContext(a, b *matrix.Dense) (*ComputeContext, error) {
	return newComputeContext(nil, a, b, true, nil)
}

func newComputeContext(f *matrix.Factory, a, b *matrix.Dense, exclusive bool, onWrite func(row, col, value int)) (*ComputeContext, error) {
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return nil, engineErrorf("ComputeContext", err)
	}

	var (
		c   *matrix.Dense
		err error
	)
	if f != nil {
		c, err = f.Allocate(a.Rows(), b.Cols())
	} else {
		c, err = matrix.NewDense(a.Rows(), b.Cols())
	}
	if err != nil {
		return nil, engineErrorf("ComputeContext", err)
	}

	cc := &ComputeContext{a: a, b: b, c: c, onWrite: onWrite}
	if exclusive {
		cc.lock = semaphore.NewWeighted(1)
	}

	return cc, nil
}

// A returns the left operand.
func (cc *ComputeContext) A() *matrix.Dense { return cc.a }

// B returns the right operand.
func (cc *ComputeContext) B() *matrix.Dense { return cc.b }

// C returns the result matrix. It is complete only after every worker joined.
func (cc *ComputeContext) C() *matrix.Dense { return cc.c }

// Exclusive reports whether writes are serialised by the lock.
func (cc *ComputeContext) Exclusive() bool { return cc.lock != nil }

// Writes returns the number of cells written so far.
func (cc *ComputeContext) Writes() int64 { return cc.writes.Load() }

// Cells returns rows(C) * cols(C).
func (cc *ComputeContext) Cells() int { return cc.c.Rows() * cc.c.Cols() }

// write stores v into C[row][col].
// Acquiring the lock is the cancellation point: a cancelled ctx returns
// ctx.Err() and nothing is written. The lock is released on every exit path,
// including a panic in onWrite.
func (cc *ComputeContext) write(ctx context.Context, row, col, v int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if cc.lock != nil {
		if err := cc.lock.Acquire(ctx, 1); err != nil {
			return err
		}
		defer cc.lock.Release(1)
	}

	if err := cc.c.Set(row, col, v); err != nil {
		return err
	}
	cc.writes.Add(1)
	if cc.onWrite != nil {
		cc.onWrite(row, col, v)
	}

	return nil
}
