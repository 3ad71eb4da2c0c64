// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures shared by the matrix tests.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/cellmul/matrix"
)

// mustDense builds a Dense from a literal or fails the test (fatal on error).
func mustDense(tb testing.TB, rows [][]int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFrom(rows)
	if err != nil {
		tb.Fatalf("NewDenseFrom(%v): %v", rows, err)
	}

	return m
}

// naiveProduct is the textbook i→j→k product over literals, used as an
// independent oracle for Dot and Mul.
func naiveProduct(a, b [][]int) [][]int {
	out := make([][]int, len(a))
	for i := range a {
		out[i] = make([]int, len(b[0]))
		for j := range b[0] {
			for k := range b {
				out[i][j] += a[i][k] * b[k][j]
			}
		}
	}

	return out
}
