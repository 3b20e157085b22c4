// Package matrix is the linear-algebra seam used by network storage and
// propagation.
//
// The package provides:
//
//   - Matrix, a small read-only capability interface (shape, element and
//     row/column access, matrix-vector products, transpose view, non-zero
//     iteration, row/column mass).
//   - Dense, a gonum-backed row-major implementation for the default load mode.
//   - CSR, a compressed sparse row implementation for memory-saving mode; it
//     never densifies and materializes a row or column only when asked.
//   - Validators shared by every implementation (finite and non-negative
//     entries, vector length).
//
// Both implementations visit non-zeros in ascending (row, col) order, so the
// same input always produces the same products.
//
// Complexity (r rows, c cols, z non-zeros):
//
//	Dense: At O(1), MulVec/MulVecT O(r*c), memory O(r*c)
//	CSR:   At O(log z/r), MulVec/MulVecT O(z), memory O(r + z)
package matrix
