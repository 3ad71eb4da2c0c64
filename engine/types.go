// SPDX-License-Identifier: MIT
package engine

import (
	"fmt"
	"time"

	"github.com/katalvlaran/cellmul/matrix"
	"github.com/katalvlaran/cellmul/sched"
)

// State is the orchestrator's lifecycle phase for one multiplication.
type State int

const (
	// StateInitializing builds operands and the compute context.
	StateInitializing State = iota
	// StateSpawningWorkers starts workers in ascending index order.
	StateSpawningWorkers
	// StateAwaitingCompletion joins every spawned worker.
	StateAwaitingCompletion
	// StateAborting cancels and joins the workers spawned before a failure.
	StateAborting
	// StateDone is terminal; resources are released.
	StateDone
)

var stateNames = [...]string{
	StateInitializing:       "Initializing",
	StateSpawningWorkers:    "SpawningWorkers",
	StateAwaitingCompletion: "AwaitingCompletion",
	StateAborting:           "Aborting",
	StateDone:               "Done",
}

// String returns the state name.
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}

	return stateNames[s]
}

// Strategy selects how cells are mapped onto workers.
type Strategy int

const (
	// StrategyPool runs a bounded set of workers draining a queue of cells.
	StrategyPool Strategy = iota
	// StrategyPerCell spawns one worker per output cell.
	StrategyPerCell
)

// String returns "pool" or "per-cell".
func (s Strategy) String() string {
	switch s {
	case StrategyPool:
		return "pool"
	case StrategyPerCell:
		return "per-cell"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "pool" / "per-cell" to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "", "pool":
		return StrategyPool, nil
	case "per-cell", "percell", "cell":
		return StrategyPerCell, nil
	default:
		return StrategyPool, fmt.Errorf("%w: unknown strategy %q", ErrOptionViolation, s)
	}
}

// Dims is the shape request for Run: A is Rows×Inner, B is Inner×Cols.
type Dims struct {
	Rows  int
	Inner int
	Cols  int
}

// Stats summarises one multiplication.
type Stats struct {
	Strategy  Strategy
	Profile   sched.Profile
	Exclusive bool          // writes went through the exclusive lock
	Cells     int           // rows(C) * cols(C)
	Workers   int           // workers spawned
	Writes    int64         // cells written
	Elapsed   time.Duration // from Initializing to Done
}

// Result is a completed multiplication. A and B are the operands unchanged.
type Result struct {
	A, B, C *matrix.Dense
	Stats   Stats
}
