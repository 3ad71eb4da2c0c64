// SPDX-License-Identifier: MIT

// Package matrix - Factory: allocation and bounded random population.
//
// Purpose:
//   - Allocate zeroed matrices with explicit, recoverable failure (ErrAllocation).
//   - Fill matrices with uniformly distributed integers in [min, max] (inclusive).
//   - Own the random source: seeded once from wall-clock time unless WithSeed/WithRand
//     makes it deterministic.
//
// Concurrency:
//   - A Factory is safe for concurrent use; the random source is guarded by a mutex.
//
// AI-Hints:
//   - Tests should always pass WithSeed to lock generated operands.
//   - Use WithMaxCells/WithAllocator to provoke ErrAllocation deterministically.

package matrix

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"
)

// Operation tags for uniform error wrapping.
const (
	opAllocate       = "Allocate"
	opPopulateRandom = "PopulateRandom"
	opCreateRandom   = "CreateRandom"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Factory allocates matrices and populates them from its random source.
type Factory struct {
	mu       sync.Mutex // guards rng
	rng      *rand.Rand
	maxCells int
	alloc    func(rows, cols int) ([]int, error)
}

// NewFactory resolves options into a ready Factory.
// Without WithSeed/WithRand the source is seeded once from the current time.
// Complexity: O(len(opts)).
func NewFactory(opts ...FactoryOption) *Factory {
	cfg := defaultFactoryConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Factory{rng: cfg.rng, maxCells: cfg.maxCells, alloc: cfg.alloc}
}

// Allocate reserves storage for a rows×cols zero matrix.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0 (ErrInvalidDimensions).
//   - Stage 2: enforce the factory cell limit without overflowing rows*cols.
//   - Stage 3: obtain one flat buffer from the allocator; any refusal is ErrAllocation.
//
// Behavior highlights:
//   - Storage is a single block, so a failure never leaves a partially built matrix.
//
// Errors:
//   - ErrInvalidDimensions, ErrAllocation (wrapped with "Allocate").
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (f *Factory) Allocate(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(opAllocate, ErrInvalidDimensions)
	}
	if cols > f.maxCells/rows {
		return nil, matrixErrorf(opAllocate,
			fmt.Errorf("%d×%d exceeds %d cells: %w", rows, cols, f.maxCells, ErrAllocation))
	}
	buf, err := f.alloc(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opAllocate, fmt.Errorf("%w: %v", ErrAllocation, err))
	}
	if len(buf) != rows*cols {
		return nil, matrixErrorf(opAllocate,
			fmt.Errorf("allocator returned %d cells, want %d: %w", len(buf), rows*cols, ErrAllocation))
	}

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// PopulateRandom fills every cell of m with a uniform integer in [minVal, maxVal].
// The matrix is mutated in place and returned for chaining.
//
// Errors:
//   - ErrAllocation when m is nil (a matrix that failed to allocate).
//   - ErrInvalidBounds when minVal > maxVal.
//
// Determinism:
//   - Row-major fill order; identical seeds give identical matrices.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (f *Factory) PopulateRandom(m *Dense, minVal, maxVal int) (*Dense, error) {
	if m == nil || len(m.data) != m.r*m.c {
		return nil, matrixErrorf(opPopulateRandom, ErrAllocation)
	}
	if minVal > maxVal {
		return nil, matrixErrorf(opPopulateRandom,
			fmt.Errorf("[%d,%d]: %w", minVal, maxVal, ErrInvalidBounds))
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range m.data {
		m.data[i] = nextInt(f.rng, minVal, maxVal)
	}

	return m, nil
}

// CreateRandom composes Allocate and PopulateRandom.
// Errors from either step are returned wrapped with "CreateRandom".
// Complexity: O(r*c).
func (f *Factory) CreateRandom(rows, cols, minVal, maxVal int) (*Dense, error) {
	m, err := f.Allocate(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opCreateRandom, err)
	}
	if m, err = f.PopulateRandom(m, minVal, maxVal); err != nil {
		return nil, matrixErrorf(opCreateRandom, err)
	}

	return m, nil
}

// NextInt draws one uniform integer in [minVal, maxVal] from the factory source.
// Returns minVal when minVal >= maxVal.
// Complexity: O(1).
func (f *Factory) NextInt(minVal, maxVal int) int {
	if minVal >= maxVal {
		return minVal
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	return nextInt(f.rng, minVal, maxVal)
}

// nextInt returns a uniform integer in [lo, hi]; caller guarantees lo <= hi.
// The span is computed in uint64 so extreme bounds do not overflow.
func nextInt(rng *rand.Rand, lo, hi int) int {
	span := uint64(hi-lo) + 1 // two's complement difference, then inclusive
	if span == 0 {
		return int(rng.Uint64()) // full 64-bit range
	}
	if span <= math.MaxInt64 {
		return lo + int(rng.Int63n(int64(span)))
	}

	return lo + int(rng.Uint64()%span)
}

// allocCells is the default storage provider: one zeroed flat buffer.
// It converts overflow, the global MaxCells ceiling and a runtime refusal
// (makeslice panic) into ErrAllocation.
func allocCells(rows, cols int) (buf []int, err error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if cols > MaxCells/rows {
		return nil, ErrAllocation
	}
	defer func() {
		if r := recover(); r != nil {
			buf, err = nil, fmt.Errorf("%w: %v", ErrAllocation, r)
		}
	}()

	return make([]int, rows*cols), nil
}
