// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// transposed is a zero-copy transpose view over another Matrix.
type transposed struct {
	m Matrix
}

func (t transposed) Dims() (int, int) {
	r, c := t.m.Dims()
	return c, r
}

func (t transposed) At(i, j int) (float64, error) {
	v, err := t.m.At(j, i)
	if err != nil {
		return 0, fmt.Errorf("T: %w", err)
	}
	return v, nil
}

func (t transposed) Row(i int) ([]float64, error)           { return t.m.Col(i) }
func (t transposed) Col(j int) ([]float64, error)           { return t.m.Row(j) }
func (t transposed) MulVec(x []float64) ([]float64, error)  { return t.m.MulVecT(x) }
func (t transposed) MulVecT(x []float64) ([]float64, error) { return t.m.MulVec(x) }
func (t transposed) T() Matrix                              { return t.m }
func (t transposed) RowSums() []float64                     { return t.m.ColSums() }
func (t transposed) ColSums() []float64                     { return t.m.RowSums() }
func (t transposed) NNZ() int                               { return t.m.NNZ() }

// Each visits the underlying non-zeros with swapped coordinates; the order is
// the underlying row-major order, i.e. column-major for the view.
func (t transposed) Each(fn func(i, j int, v float64)) {
	t.m.Each(func(i, j int, v float64) { fn(j, i, v) })
}
