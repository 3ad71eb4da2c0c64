// Package cellmul is a parallel integer matrix-multiplication engine: every
// output cell is one unit of work, computed concurrently and written into a
// shared result under an exclusive, cancellable lock.
//
// 🚀 What is inside?
//
//	• matrix/   Dense int matrices, a seedable random Factory, Dot/Mul kernels
//	            and the Render presenter
//	• engine/   the Orchestrator: per-cell or bounded-pool workers, spawn
//	            failure unwinding (cancel newest first, then join), hooks
//	• sched/    scheduling profiles (policy, priority, inheritance) applied to
//	            worker threads via sched_setattr on Linux
//	• config/   YAML configuration for the command
//	• cmd/cellmul   the demo: random A and B, concurrent C = A×B, coloured output
//
// ✨ Guarantees
//
//   - Operands are never mutated; each result cell is written exactly once.
//   - A worker that cannot be started aborts the multiplication, and no
//     previously started worker outlives the call.
//   - Scheduling configuration errors name the failing step.
//
// Quick example:
//
//	a, _ := matrix.NewDenseFrom([][]int{{1, 2}, {3, 4}})
//	b, _ := matrix.NewDenseFrom([][]int{{5, 6}, {7, 8}})
//	res, err := engine.New().Multiply(ctx, a, b)
//	// res.C == [[19, 22], [43, 50]]
//
//	go install github.com/katalvlaran/cellmul/cmd/cellmul@latest
package cellmul
