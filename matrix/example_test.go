package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/prophnet/matrix"
)

// ExampleCSR_MulVecT pushes a vector over the rows of a sparse relation onto
// its columns, the same step a propagation hop performs.
func ExampleCSR_MulVecT() {
	m, _ := matrix.NewCSR(2, 3, []matrix.Entry{
		{Row: 0, Col: 1, Value: 2},
		{Row: 1, Col: 2, Value: 1},
	})
	y, _ := m.MulVecT([]float64{1, 3})
	fmt.Println(y)
	fmt.Println(m.T().RowSums())

	// Output:
	// [0 2 3]
	// [0 2 1]
}
