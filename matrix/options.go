// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the random Factory.
// This file defines:
//   - FactoryOption (functional options mutating factoryConfig),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values).
//
// Design goals:
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.
//   - Without either option the source is seeded once from wall-clock time.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math/rand" // RNG source for random population

// ---------- Defaults (single source of truth) ----------

const (
	// MaxCells is the hard upper bound on rows*cols for any Dense allocation.
	// Requests above it fail with ErrAllocation instead of exhausting memory.
	MaxCells = 1 << 28

	// DefaultMinValue and DefaultMaxValue bound generated values (inclusive).
	DefaultMinValue = 0
	DefaultMaxValue = 10

	// DefaultMinDim and DefaultMaxDim bound randomly chosen dimensions (inclusive).
	DefaultMinDim = 1
	DefaultMaxDim = 5
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicRandNil      = "matrix: WithRand(nil)"
	panicMaxCellsBad  = "matrix: WithMaxCells: limit must be in (0, MaxCells]"
	panicAllocatorNil = "matrix: WithAllocator(nil)"
)

// FactoryOption customizes a Factory before first use.
// Complexity: applying N options costs O(N) time, O(1) space.
type FactoryOption func(*factoryConfig)

// factoryConfig is the resolved Factory configuration.
type factoryConfig struct {
	rng      *rand.Rand                          // nil until resolved; seeded from time by default
	maxCells int                                 // per-factory allocation ceiling
	alloc    func(rows, cols int) ([]int, error) // storage provider; allocCells by default
}

// defaultFactoryConfig returns the zero-option configuration.
func defaultFactoryConfig() factoryConfig {
	return factoryConfig{
		maxCells: MaxCells,
		alloc:    allocCells,
	}
}

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for reproducible runs.
// The Factory serializes access, so the same *rand.Rand must not be shared elsewhere.
func WithRand(r *rand.Rand) FactoryOption {
	if r == nil {
		panic(panicRandNil)
	}
	return func(c *factoryConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) FactoryOption {
	return func(c *factoryConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithMaxCells lowers the per-factory allocation ceiling.
// Allocations above the limit fail with ErrAllocation. Panics on limit<=0 or limit>MaxCells.
func WithMaxCells(limit int) FactoryOption {
	if limit <= 0 || limit > MaxCells {
		panic(panicMaxCellsBad)
	}
	return func(c *factoryConfig) {
		c.maxCells = limit
	}
}

// WithAllocator replaces the storage provider used by Allocate.
// The provider must return a zeroed slice of exactly rows*cols elements or an error;
// any error it returns is reported as ErrAllocation. Panics on nil.
//
// AI-Hints:
//   - Use in tests to inject allocation failures at a chosen call.
func WithAllocator(fn func(rows, cols int) ([]int, error)) FactoryOption {
	if fn == nil {
		panic(panicAllocatorNil)
	}
	return func(c *factoryConfig) {
		c.alloc = fn
	}
}
