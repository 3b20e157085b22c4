// SPDX-License-Identifier: MIT

package matrix

// Matrix is a read-only two-dimensional array of float64 values.
//
// Implementations must be safe for concurrent readers: nothing in this
// interface mutates the receiver.
type Matrix interface {
	// Dims returns the number of rows and columns.
	Dims() (rows, cols int)

	// At retrieves the element at (i, j).
	// Returns ErrOutOfRange for invalid indices.
	At(i, j int) (float64, error)

	// Row materializes row i as a fresh dense slice of length cols.
	Row(i int) ([]float64, error)

	// Col materializes column j as a fresh dense slice of length rows.
	Col(j int) ([]float64, error)

	// MulVec returns y = M·x. len(x) must equal cols.
	MulVec(x []float64) ([]float64, error)

	// MulVecT returns y = Mᵀ·x. len(x) must equal rows.
	MulVecT(x []float64) ([]float64, error)

	// T returns a transposed view sharing storage with the receiver.
	T() Matrix

	// RowSums returns the mass Σ_j M[i][j] of every row.
	RowSums() []float64

	// ColSums returns the mass Σ_i M[i][j] of every column.
	ColSums() []float64

	// NNZ reports the number of non-zero entries.
	NNZ() int

	// Each calls fn for every non-zero entry in a deterministic order.
	Each(fn func(i, j int, v float64))
}

// Entry is a single (row, col, value) triplet used to build sparse matrices.
type Entry struct {
	Row   int
	Col   int
	Value float64
}
