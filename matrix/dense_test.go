// Package matrix_test contains unit tests for the Dense implementation.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/cellmul/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)                      // zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(5, 0)                       // zero columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(-1, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewDenseTooLarge ensures oversized requests fail with ErrAllocation instead of crashing.
func TestNewDenseTooLarge(t *testing.T) {
	_, err := matrix.NewDense(matrix.MaxCells, 2)
	require.ErrorIs(t, err, matrix.ErrAllocation)
}

// TestRowsColsZeroInit verifies shape accessors and zero initialization.
func TestRowsColsZeroInit(t *testing.T) {
	m, err := matrix.NewDense(3, 4)
	require.NoError(t, err)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	r, c := m.Shape()
	require.Equal(t, [2]int{3, 4}, [2]int{r, c})
	for _, row := range m.ToRows() {
		require.Equal(t, []int{0, 0, 0, 0}, row)
	}
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	require.ErrorIs(t, m.Set(2, 0, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 4), matrix.ErrOutOfRange)
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 789))
	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 789, val)
}

// TestNewDenseFrom covers literal construction, ragged rows and empty input.
func TestNewDenseFrom(t *testing.T) {
	m, err := matrix.NewDenseFrom([][]int{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 2, 3}, {4, 5, 6}}, m.ToRows())

	_, err = matrix.NewDenseFrom([][]int{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseFrom(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFrom([][]int{{}})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := mustDense(t, [][]int{{1, 0}, {0, 2}})
	clone := m.Clone()
	require.True(t, m.Equal(clone))

	require.NoError(t, clone.Set(0, 0, 3)) // modify the clone only

	orig, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, orig) // original unchanged
	require.False(t, m.Equal(clone))
}

// TestEqualShapes checks Equal against shape differences and nil operands.
func TestEqualShapes(t *testing.T) {
	a := mustDense(t, [][]int{{1, 2}})
	b := mustDense(t, [][]int{{1}, {2}})
	require.False(t, a.Equal(b))
	require.False(t, a.Equal(nil))

	var n *matrix.Dense
	require.True(t, n.Equal(nil))
}

// TestRawRowView verifies the view aliases storage and rejects bad rows.
func TestRawRowView(t *testing.T) {
	m := mustDense(t, [][]int{{1, 2}, {3, 4}})
	row := m.RawRowView(1)
	require.Equal(t, []int{3, 4}, row)

	row[0] = 30
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 30, v)

	require.Nil(t, m.RawRowView(2))
	require.Nil(t, m.RawRowView(-1))
}

// TestString renders rows in bracketed comma-separated form.
func TestString(t *testing.T) {
	m := mustDense(t, [][]int{{1, 2}, {3, 4}})
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}
