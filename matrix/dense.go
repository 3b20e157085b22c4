// SPDX-License-Identifier: MIT

// Package matrix - Dense storage backed by gonum.
//
// Purpose:
//   - Row-major float64 storage for the default (non memory-saving) load mode.
//   - Safe public surface: out-of-range access returns ErrOutOfRange instead of
//     the gonum panic.
//   - Products delegate to gonum's MulVec, which runs the pure-Go BLAS kernels
//     with a fixed loop order, so results are reproducible.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// method tags used in error wrappers
const (
	ctxAt      = "At"
	ctxRow     = "Row"
	ctxCol     = "Col"
	ctxMulVec  = "MulVec"
	ctxMulVecT = "MulVecT"
)

// Dense is a gonum-backed row-major matrix.
type Dense struct {
	m *mat.Dense
}

var _ Matrix = (*Dense)(nil)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// NewDense creates a rows×cols matrix over data, stored row-major.
// A nil data slice yields a zero matrix; otherwise len(data) must equal
// rows*cols. The slice is copied and every value must be finite.
//
// Errors: ErrInvalidDimensions, ErrDimensionMismatch, ErrNaNInf.
func NewDense(rows, cols int, data []float64) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	buf := make([]float64, rows*cols)
	if data != nil {
		if len(data) != rows*cols {
			return nil, fmt.Errorf("NewDense: len(data)=%d, want %d: %w", len(data), rows*cols, ErrDimensionMismatch)
		}
		for k, v := range data {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, denseErrorf("New", k/cols, k%cols, ErrNaNInf)
			}
		}
		copy(buf, data)
	}

	return &Dense{m: mat.NewDense(rows, cols, buf)}, nil
}

// NewDenseFromRows builds a Dense from a slice of equally sized rows.
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	cols := len(rows[0])
	flat := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("NewDenseFromRows: row %d has %d columns, want %d: %w", i, len(row), cols, ErrDimensionMismatch)
		}
		flat = append(flat, row...)
	}

	return NewDense(len(rows), cols, flat)
}

// Dims returns the number of rows and columns.
func (d *Dense) Dims() (int, int) { return d.m.Dims() }

// At retrieves the element at (i, j).
func (d *Dense) At(i, j int) (float64, error) {
	r, c := d.m.Dims()
	if i < 0 || i >= r || j < 0 || j >= c {
		return 0, denseErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return d.m.At(i, j), nil
}

// Row returns a copy of row i.
func (d *Dense) Row(i int) ([]float64, error) {
	r, _ := d.m.Dims()
	if i < 0 || i >= r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	return mat.Row(nil, i, d.m), nil
}

// Col returns a copy of column j.
func (d *Dense) Col(j int) ([]float64, error) {
	_, c := d.m.Dims()
	if j < 0 || j >= c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}

	return mat.Col(nil, j, d.m), nil
}

// MulVec returns M·x.
func (d *Dense) MulVec(x []float64) ([]float64, error) {
	r, c := d.m.Dims()
	if err := ValidateVecLen(x, c); err != nil {
		return nil, fmt.Errorf("Dense.%s: %w", ctxMulVec, err)
	}
	out := make([]float64, r)
	y := mat.NewVecDense(r, out)
	y.MulVec(d.m, mat.NewVecDense(c, x))

	return out, nil
}

// MulVecT returns Mᵀ·x.
func (d *Dense) MulVecT(x []float64) ([]float64, error) {
	r, c := d.m.Dims()
	if err := ValidateVecLen(x, r); err != nil {
		return nil, fmt.Errorf("Dense.%s: %w", ctxMulVecT, err)
	}
	out := make([]float64, c)
	y := mat.NewVecDense(c, out)
	y.MulVec(d.m.T(), mat.NewVecDense(r, x))

	return out, nil
}

// T returns a transposed view.
func (d *Dense) T() Matrix { return transposed{m: d} }

// RowSums returns the mass of each row.
func (d *Dense) RowSums() []float64 {
	r, _ := d.m.Dims()
	sums := make([]float64, r)
	for i := 0; i < r; i++ {
		sums[i] = mat.Sum(d.m.RowView(i))
	}

	return sums
}

// ColSums returns the mass of each column.
func (d *Dense) ColSums() []float64 {
	_, c := d.m.Dims()
	sums := make([]float64, c)
	for j := 0; j < c; j++ {
		sums[j] = mat.Sum(d.m.ColView(j))
	}

	return sums
}

// NNZ counts the non-zero entries.
func (d *Dense) NNZ() int {
	n := 0
	d.Each(func(int, int, float64) { n++ })

	return n
}

// Each visits non-zero entries in row-major order.
func (d *Dense) Each(fn func(i, j int, v float64)) {
	raw := d.m.RawMatrix()
	for i := 0; i < raw.Rows; i++ {
		row := raw.Data[i*raw.Stride : i*raw.Stride+raw.Cols]
		for j, v := range row {
			if v != 0 {
				fn(i, j, v)
			}
		}
	}
}

// String implements fmt.Stringer for debugging.
func (d *Dense) String() string {
	return fmt.Sprintf("%v", mat.Formatted(d.m, mat.Squeeze()))
}
