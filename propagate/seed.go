package propagate

import (
	"fmt"
	"math"
)

// SeedVector is a sparse relevance assignment over the source node set.
// A nil Weights slice gives every index weight 1.
type SeedVector struct {
	Indices []int
	Weights []float64
}

// NewSeed returns a unit-weight seed over indices.
func NewSeed(indices ...int) SeedVector {
	return SeedVector{Indices: append([]int(nil), indices...)}
}

// Dense expands the seed over a node set of size n. Repeated indices add up.
func (s SeedVector) Dense(n int) ([]float64, error) {
	if s.Weights != nil && len(s.Weights) != len(s.Indices) {
		return nil, fmt.Errorf("%w: %d weights for %d indices", ErrInvalidSeedWeight, len(s.Weights), len(s.Indices))
	}
	v := make([]float64, n)
	for k, i := range s.Indices {
		if i < 0 || i >= n {
			return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrSeedOutOfRange, i, n)
		}
		w := 1.0
		if s.Weights != nil {
			w = s.Weights[k]
		}
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("%w: index %d weight %g", ErrInvalidSeedWeight, i, w)
		}
		v[i] += w
	}
	return v, nil
}

// ScoreVector is a dense relevance vector over the destination node set.
type ScoreVector []float64

// IsZero reports whether every score is zero.
func (s ScoreVector) IsZero() bool {
	for _, x := range s {
		if x != 0 {
			return false
		}
	}
	return true
}
