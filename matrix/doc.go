// Package matrix provides the integer matrix model used by the cellmul engine.
//
// The matrix package provides:
//
//   - Dense, a row-major int matrix with bounds-checked At/Set.
//   - Factory, which allocates matrices (ErrAllocation on refusal) and fills
//     them with uniform integers in an inclusive range from a seedable source.
//   - Dot and Mul, the read-only kernels behind one output cell and the
//     sequential reference product.
//   - Render, the text presenter for finished matrices.
//
// Operands handed to the engine are never mutated; only result matrices
// are written, one cell at a time.
package matrix
