// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Single source of truth for the checks shared by Dense, CSR and callers.
//   - Return sentinel errors wrapped with a validator tag so call sites can
//     match them with errors.Is.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil, including a nil
// *Dense or *CSR held by the interface.
func ValidateNotNil(m Matrix) error {
	var isNil bool
	switch v := m.(type) {
	case nil:
		isNil = true
	case *Dense:
		isNil = v == nil || v.m == nil
	case *CSR:
		isNil = v == nil
	}
	if isNil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateShape ensures m has exactly rows×cols.
func ValidateShape(m Matrix, rows, cols int) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	r, c := m.Dims()
	if r != rows || c != cols {
		return validatorErrorf(fmt.Sprintf("ValidateShape: got %dx%d, want %dx%d", r, c, rows, cols), ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures len(x) == n.
func ValidateVecLen(x []float64, n int) error {
	if len(x) != n {
		return validatorErrorf(fmt.Sprintf("ValidateVecLen: len=%d, want %d", len(x), n), ErrDimensionMismatch)
	}

	return nil
}

// ValidateWeights ensures every stored entry is finite and non-negative.
// The first offending entry is reported.
func ValidateWeights(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	var bad error
	m.Each(func(i, j int, v float64) {
		if bad != nil {
			return
		}
		switch {
		case math.IsNaN(v) || math.IsInf(v, 0):
			bad = validatorErrorf(fmt.Sprintf("ValidateWeights(%d,%d)", i, j), ErrNaNInf)
		case v < 0:
			bad = validatorErrorf(fmt.Sprintf("ValidateWeights(%d,%d)=%g", i, j, v), ErrNegativeEntry)
		}
	})

	return bad
}

// IsSquare reports whether m has as many rows as columns.
func IsSquare(m Matrix) bool {
	r, c := m.Dims()
	return r == c
}
