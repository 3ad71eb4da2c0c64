package matrix_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/cellmul/matrix"
)

// ExampleMul multiplies two literals with the sequential reference kernel.
func ExampleMul() {
	a, _ := matrix.NewDenseFrom([][]int{{1, 2}, {3, 4}})
	b, _ := matrix.NewDenseFrom([][]int{{5, 6}, {7, 8}})

	c, err := matrix.Mul(a, b)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(c)
	// Output:
	// [19, 22]
	// [43, 50]
}

// ExampleRender shows the presenter layout.
func ExampleRender() {
	m, _ := matrix.NewDenseFrom([][]int{{11}})
	_ = matrix.Render(os.Stdout, m, "C", matrix.Style{})
	// Output:
	// Matrix C
	// ........
	// [	11	]
}

// ExampleFactory_CreateRandom builds a reproducible random operand.
func ExampleFactory_CreateRandom() {
	f := matrix.NewFactory(matrix.WithSeed(1))
	m, err := f.CreateRandom(2, 3, 0, 10)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(m.Rows(), m.Cols())
	// Output:
	// 2 3
}
