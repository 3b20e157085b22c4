// SPDX-License-Identifier: MIT

// Package matrix - compressed sparse row storage.
//
// Purpose:
//   - Keep relation matrices compact in memory-saving mode: O(rows + nnz).
//   - Materialize dense rows/columns only on demand (Row/Col).
//   - Deterministic products: non-zeros are kept sorted by (row, col) and
//     every kernel walks them in that order.
//
// Duplicate policy: duplicate (row, col) triplets are summed, explicit zeros
// are dropped.

package matrix

import (
	"fmt"
	"math"
	"sort"
)

// CSR is a compressed sparse row matrix.
//   - indptr has rows+1 entries; row i spans indices[indptr[i]:indptr[i+1]].
//   - indices are column indices, strictly increasing within a row.
type CSR struct {
	rows, cols int
	indptr     []int
	indices    []int
	values     []float64
}

var _ Matrix = (*CSR)(nil)

func csrErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("CSR.%s(%d,%d): %w", method, row, col, err)
}

// NewCSR builds a rows×cols sparse matrix from COO triplets.
// The input slice is not modified.
//
// Errors: ErrInvalidDimensions, ErrOutOfRange, ErrNaNInf.
func NewCSR(rows, cols int, entries []Entry) (*CSR, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	sorted := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Row < 0 || e.Row >= rows || e.Col < 0 || e.Col >= cols {
			return nil, csrErrorf("New", e.Row, e.Col, ErrOutOfRange)
		}
		if math.IsNaN(e.Value) || math.IsInf(e.Value, 0) {
			return nil, csrErrorf("New", e.Row, e.Col, ErrNaNInf)
		}
		sorted = append(sorted, e)
	}
	// stable so duplicates are summed in input order
	sort.SliceStable(sorted, func(a, b int) bool {
		if sorted[a].Row != sorted[b].Row {
			return sorted[a].Row < sorted[b].Row
		}
		return sorted[a].Col < sorted[b].Col
	})

	m := &CSR{
		rows:    rows,
		cols:    cols,
		indptr:  make([]int, rows+1),
		indices: make([]int, 0, len(sorted)),
		values:  make([]float64, 0, len(sorted)),
	}
	for k := 0; k < len(sorted); {
		e := sorted[k]
		sum := e.Value
		k++
		for k < len(sorted) && sorted[k].Row == e.Row && sorted[k].Col == e.Col {
			sum += sorted[k].Value
			k++
		}
		if sum == 0 {
			continue
		}
		m.indices = append(m.indices, e.Col)
		m.values = append(m.values, sum)
		m.indptr[e.Row+1]++
	}
	for i := 0; i < rows; i++ {
		m.indptr[i+1] += m.indptr[i]
	}

	return m, nil
}

// ToCSR compresses any Matrix into CSR form.
func ToCSR(src Matrix) (*CSR, error) {
	if ValidateNotNil(src) != nil {
		return nil, ErrNilMatrix
	}
	if c, ok := src.(*CSR); ok {
		return c, nil
	}
	r, c := src.Dims()
	entries := make([]Entry, 0, src.NNZ())
	src.Each(func(i, j int, v float64) {
		entries = append(entries, Entry{Row: i, Col: j, Value: v})
	})

	return NewCSR(r, c, entries)
}

// ToDense expands any Matrix into a Dense copy.
func ToDense(src Matrix) (*Dense, error) {
	if ValidateNotNil(src) != nil {
		return nil, ErrNilMatrix
	}
	if d, ok := src.(*Dense); ok {
		return d, nil
	}
	r, c := src.Dims()
	data := make([]float64, r*c)
	src.Each(func(i, j int, v float64) { data[i*c+j] = v })

	return NewDense(r, c, data)
}

// Dims returns the number of rows and columns.
func (m *CSR) Dims() (int, int) { return m.rows, m.cols }

// At retrieves the element at (i, j) by binary search within row i.
func (m *CSR) At(i, j int) (float64, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, csrErrorf(ctxAt, i, j, ErrOutOfRange)
	}
	lo, hi := m.indptr[i], m.indptr[i+1]
	k := lo + sort.SearchInts(m.indices[lo:hi], j)
	if k < hi && m.indices[k] == j {
		return m.values[k], nil
	}

	return 0, nil
}

// Row decompresses row i.
func (m *CSR) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.rows {
		return nil, csrErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.cols)
	for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
		out[m.indices[k]] = m.values[k]
	}

	return out, nil
}

// Col decompresses column j. O(rows·log(nnz/rows)).
func (m *CSR) Col(j int) ([]float64, error) {
	if j < 0 || j >= m.cols {
		return nil, csrErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]float64, m.rows)
	for i := 0; i < m.rows; i++ {
		out[i], _ = m.At(i, j)
	}

	return out, nil
}

// MulVec returns M·x.
func (m *CSR) MulVec(x []float64) ([]float64, error) {
	if err := ValidateVecLen(x, m.cols); err != nil {
		return nil, fmt.Errorf("CSR.%s: %w", ctxMulVec, err)
	}
	out := make([]float64, m.rows)
	for i := 0; i < m.rows; i++ {
		var acc float64
		for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
			acc += m.values[k] * x[m.indices[k]]
		}
		out[i] = acc
	}

	return out, nil
}

// MulVecT returns Mᵀ·x by scattering each row into the output.
func (m *CSR) MulVecT(x []float64) ([]float64, error) {
	if err := ValidateVecLen(x, m.rows); err != nil {
		return nil, fmt.Errorf("CSR.%s: %w", ctxMulVecT, err)
	}
	out := make([]float64, m.cols)
	for i := 0; i < m.rows; i++ {
		xi := x[i]
		if xi == 0 {
			continue
		}
		for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
			out[m.indices[k]] += m.values[k] * xi
		}
	}

	return out, nil
}

// T returns a transposed view.
func (m *CSR) T() Matrix { return transposed{m: m} }

// RowSums returns the mass of each row.
func (m *CSR) RowSums() []float64 {
	sums := make([]float64, m.rows)
	for i := 0; i < m.rows; i++ {
		for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
			sums[i] += m.values[k]
		}
	}

	return sums
}

// ColSums returns the mass of each column.
func (m *CSR) ColSums() []float64 {
	sums := make([]float64, m.cols)
	for k, j := range m.indices {
		sums[j] += m.values[k]
	}

	return sums
}

// NNZ reports the number of stored non-zeros.
func (m *CSR) NNZ() int { return len(m.values) }

// Each visits stored non-zeros in row-major order.
func (m *CSR) Each(fn func(i, j int, v float64)) {
	for i := 0; i < m.rows; i++ {
		for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
			fn(i, m.indices[k], m.values[k])
		}
	}
}
