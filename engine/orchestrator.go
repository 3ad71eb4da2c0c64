// SPDX-License-Identifier: MIT
package engine

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"github.com/katalvlaran/cellmul/matrix"
	"github.com/katalvlaran/cellmul/sched"
)

// Orchestrator drives one multiplication per call through the states
// Initializing → SpawningWorkers → {AwaitingCompletion | Aborting} → Done.
//
// An Orchestrator holds configuration only; concurrent Multiply/Run calls
// are independent.
type Orchestrator struct {
	log     *slog.Logger
	factory *matrix.Factory
	spawner Spawner // nil → GoroutineSpawner per call

	profile    sched.Profile
	profileErr error
	bestEffort bool

	strategy  Strategy
	workers   int
	exclusive bool

	minValue, maxValue int

	onWrite func(row, col, value int)
	onState func(State)

	err error // first option violation
}

// New returns an Orchestrator configured by opts.
// Option violations are reported by Multiply and Run.
func New(opts ...Option) *Orchestrator {
	o := &Orchestrator{
		log:       discardLogger,
		factory:   matrix.NewFactory(),
		profile:   sched.Default(),
		strategy:  DefaultStrategy,
		workers:   DefaultWorkers,
		exclusive: DefaultExclusiveWrites,
		minValue:  matrix.DefaultMinValue,
		maxValue:  matrix.DefaultMaxValue,
	}
	for _, opt := range opts {
		opt(o)
	}

	return o
}

// Run builds random operands A (d.Rows×d.Inner) and B (d.Inner×d.Cols) with
// the factory and multiplies them.
//
// Errors:
//   - ErrOptionViolation for invalid options.
//   - matrix.ErrInvalidDimensions / matrix.ErrAllocation from Initializing;
//     nothing is spawned.
//   - everything Multiply returns.
func (o *Orchestrator) Run(ctx context.Context, d Dims) (*Result, error) {
	if o.err != nil {
		return nil, o.err
	}
	r := o.begin()

	a, err := o.factory.CreateRandom(d.Rows, d.Inner, o.minValue, o.maxValue)
	if err != nil {
		r.enter(StateDone)
		return nil, engineErrorf("Run", err)
	}
	b, err := o.factory.CreateRandom(d.Inner, d.Cols, o.minValue, o.maxValue)
	if err != nil {
		r.enter(StateDone)
		return nil, engineErrorf("Run", err)
	}

	return r.execute(ctx, a, b)
}

// Multiply computes C = A×B concurrently.
//
// Implementation:
//   - Initializing: resolve the profile, build the ComputeContext (C + lock).
//   - SpawningWorkers: spawn in ascending index order. Per-cell: one worker
//     per cell, idx → (idx / cols(C), idx % cols(C)). Pool: min(workers,
//     cells) workers draining a FIFO of cells.
//   - On spawn failure at idx: Aborting cancels idx-1 … 0, joins them, and
//     returns *ThreadCreationError. AwaitingCompletion is never entered.
//   - AwaitingCompletion: join every worker in ascending order.
//   - Done.
//
// Errors:
//   - ErrOptionViolation, *sched.ConfigError (before any spawn).
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, matrix.ErrAllocation.
//   - *ThreadCreationError (errors.Is ErrThreadCreation).
//   - ctx.Err() if ctx is cancelled before all cells are written.
//
// Complexity: O(rA·cA·cB) work, O(rA·cB) extra memory.
func (o *Orchestrator) Multiply(ctx context.Context, a, b *matrix.Dense) (*Result, error) {
	if o.err != nil {
		return nil, o.err
	}

	return o.begin().execute(ctx, a, b)
}

// run carries the per-call state of one multiplication.
type run struct {
	o     *Orchestrator
	start time.Time
}

func (o *Orchestrator) begin() *run {
	r := &run{o: o, start: time.Now()}
	r.enter(StateInitializing)

	return r
}

func (r *run) enter(s State) {
	r.o.log.Debug("state", slog.String("state", s.String()))
	if r.o.onState != nil {
		r.o.onState(s)
	}
}

// plan is the worker layout for one ComputeContext.
type plan struct {
	workers int
	body    func(idx int) func(context.Context) error
	pending func() int
}

func (o *Orchestrator) plan(cc *ComputeContext) plan {
	rows, cols := cc.c.Shape()
	cells := rows * cols

	if o.strategy == StrategyPerCell {
		return plan{
			workers: cells,
			body: func(idx int) func(context.Context) error {
				return WorkerTask{Row: idx / cols, Col: idx % cols, Compute: cc}.Run
			},
			pending: func() int { return cells - int(cc.Writes()) },
		}
	}

	n := o.workers
	if n == 0 {
		n = runtime.GOMAXPROCS(0)
	}
	if n > cells {
		n = cells
	}
	q := newCellQueue(rows, cols)

	return plan{
		workers: n,
		body:    func(int) func(context.Context) error { return q.drain(cc) },
		pending: q.pending,
	}
}

func (r *run) execute(ctx context.Context, a, b *matrix.Dense) (*Result, error) {
	o := r.o
	if o.profileErr != nil {
		r.enter(StateDone)
		return nil, engineErrorf("profile", o.profileErr)
	}

	cc, err := newComputeContext(o.factory, a, b, o.exclusive, o.onWrite)
	if err != nil {
		r.enter(StateDone)
		return nil, err
	}
	p := o.plan(cc)
	spawner := o.spawner
	if spawner == nil {
		spawner = &GoroutineSpawner{BestEffort: o.bestEffort, Logger: o.log}
	}

	r.enter(StateSpawningWorkers)
	handles := make([]Handle, 0, p.workers)
	for idx := 0; idx < p.workers; idx++ {
		if err := ctx.Err(); err != nil {
			r.abort(handles, p)
			return nil, engineErrorf("spawn", err)
		}
		h, err := spawner.Spawn(ctx, SpawnRequest{Index: idx, Profile: o.profile, Task: p.body(idx)})
		if err != nil {
			tce := &ThreadCreationError{Index: idx, Row: -1, Col: -1, Err: err}
			if o.strategy == StrategyPerCell {
				tce.Row, tce.Col = idx/cc.c.Cols(), idx%cc.c.Cols()
			}
			o.log.Error("worker spawn failed",
				slog.Int("index", idx),
				slog.Int("row", tce.Row),
				slog.Int("col", tce.Col),
				slog.Any("err", err))
			r.abort(handles, p)

			return nil, tce
		}
		handles = append(handles, h)
	}

	r.enter(StateAwaitingCompletion)
	var joinErr error
	for _, h := range handles {
		if err := h.Join(); err != nil && joinErr == nil {
			joinErr = err
		}
	}
	stats := Stats{
		Strategy:  o.strategy,
		Profile:   o.profile,
		Exclusive: cc.Exclusive(),
		Cells:     cc.Cells(),
		Workers:   len(handles),
		Writes:    cc.Writes(),
		Elapsed:   time.Since(r.start),
	}
	r.enter(StateDone)

	if joinErr != nil {
		o.log.Warn("multiplication cancelled",
			slog.Int64("written", stats.Writes),
			slog.Int("cells", stats.Cells),
			slog.Any("err", joinErr))
		return nil, engineErrorf("await", joinErr)
	}
	o.log.Info("multiplication complete",
		slog.String("strategy", stats.Strategy.String()),
		slog.String("profile", stats.Profile.String()),
		slog.Int("cells", stats.Cells),
		slog.Int("workers", stats.Workers),
		slog.Duration("elapsed", stats.Elapsed))

	return &Result{A: cc.a, B: cc.b, C: cc.c, Stats: stats}, nil
}

// abort cancels every spawned worker newest first, then joins them in the
// same order. Only then is the context released.
func (r *run) abort(handles []Handle, p plan) {
	r.enter(StateAborting)
	for i := len(handles) - 1; i >= 0; i-- {
		handles[i].Cancel()
	}
	for i := len(handles) - 1; i >= 0; i-- {
		_ = handles[i].Join()
	}
	r.o.log.Warn("workers cancelled",
		slog.Int("spawned", len(handles)),
		slog.Int("cells_pending", p.pending()))
	r.enter(StateDone)
}
