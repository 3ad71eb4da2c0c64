// SPDX-License-Identifier: MIT
package engine

import (
	"context"
	"sync"

	"github.com/eapache/queue"
	"github.com/katalvlaran/cellmul/matrix"
)

// WorkerTask is the unit of work for one output cell.
type WorkerTask struct {
	Row, Col int
	Compute  *ComputeContext
}

// Run computes the dot product of row Row of A and column Col of B and stores
// it into C[Row][Col].
//
// Implementation:
//   - Stage 1: dot product over the shared dimension; reads only A and B.
//   - Stage 2: exclusive write, cancellable while waiting for the lock.
//
// Returns ctx.Err() if cancelled before the write; never a computation error.
//
// Complexity: O(cols(A)).
func (t WorkerTask) Run(ctx context.Context) error {
	v := matrix.DotUnchecked(t.Compute.a, t.Compute.b, t.Row, t.Col)

	return t.Compute.write(ctx, t.Row, t.Col, v)
}

// cell is a queued (row, col) pair.
type cell struct{ row, col int }

// cellQueue is the FIFO of pending cells shared by pool workers.
type cellQueue struct {
	mu sync.Mutex
	q  *queue.Queue
}

// newCellQueue enqueues every cell of a rows×cols result in linear order.
func newCellQueue(rows, cols int) *cellQueue {
	q := queue.New()
	for idx := 0; idx < rows*cols; idx++ {
		q.Add(cell{row: idx / cols, col: idx % cols})
	}

	return &cellQueue{q: q}
}

// next pops the oldest cell; ok is false once the queue is drained.
func (cq *cellQueue) next() (c cell, ok bool) {
	cq.mu.Lock()
	defer cq.mu.Unlock()
	if cq.q.Length() == 0 {
		return cell{}, false
	}

	return cq.q.Remove().(cell), true
}

// pending reports the number of cells not yet taken.
func (cq *cellQueue) pending() int {
	cq.mu.Lock()
	defer cq.mu.Unlock()

	return cq.q.Length()
}

// drain returns a pool worker body: run queued cells until the queue is empty
// or a task is cancelled.
func (cq *cellQueue) drain(cc *ComputeContext) func(context.Context) error {
	return func(ctx context.Context) error {
		for {
			c, ok := cq.next()
			if !ok {
				return nil
			}
			if err := (WorkerTask{Row: c.row, Col: c.col, Compute: cc}).Run(ctx); err != nil {
				return err
			}
		}
	}
}
