package propagate

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/prophnet/matrix"
)

// Policy names.
const (
	PolicySum       = "sum"
	PolicyRow       = "row"
	PolicyAverage   = "average"
	PolicyMean      = "mean"
	PolicySymmetric = "symmetric"
	PolicyPearson   = "pearson"
)

// HopFunc maps a vector over the rows of m to a vector over its columns.
type HopFunc func(m matrix.Matrix, v []float64) ([]float64, error)

// Policy is a named combine rule applied at every hop.
type Policy struct {
	Name string
	Hop  HopFunc
}

var policies = map[string]HopFunc{
	PolicySum:       hopSum,
	PolicyRow:       hopRow,
	PolicyAverage:   hopAverage,
	PolicyMean:      hopAverage,
	PolicySymmetric: hopSymmetric,
	PolicyPearson:   hopPearson,
}

// LookupPolicy returns the policy registered under name.
func LookupPolicy(name string) (Policy, error) {
	hop, ok := policies[name]
	if !ok {
		return Policy{}, fmt.Errorf("%w: %q (known: %v)", ErrUnknownCorrelationFunction, name, PolicyNames())
	}
	return Policy{Name: name, Hop: hop}, nil
}

// PolicyNames lists the registered policy names in sorted order.
func PolicyNames() []string {
	out := make([]string, 0, len(policies))
	for k := range policies {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func hopSum(m matrix.Matrix, v []float64) ([]float64, error) {
	return m.MulVecT(v)
}

func hopRow(m matrix.Matrix, v []float64) ([]float64, error) {
	return m.MulVecT(scaleBy(v, m.RowSums(), inverse))
}

func hopAverage(m matrix.Matrix, v []float64) ([]float64, error) {
	y, err := m.MulVecT(v)
	if err != nil {
		return nil, err
	}
	return scaleBy(y, m.ColSums(), inverse), nil
}

func hopSymmetric(m matrix.Matrix, v []float64) ([]float64, error) {
	y, err := m.MulVecT(scaleBy(v, m.RowSums(), inverseSqrt))
	if err != nil {
		return nil, err
	}
	return scaleBy(y, m.ColSums(), inverseSqrt), nil
}

func hopPearson(m matrix.Matrix, v []float64) ([]float64, error) {
	y, err := hopSymmetric(m, v)
	if err != nil {
		return nil, err
	}
	var peak float64
	for _, x := range y {
		peak = math.Max(peak, x)
	}
	if peak == 0 {
		return y, nil
	}
	for j := range y {
		y[j] /= peak
	}
	return y, nil
}

func inverse(mass float64) float64 { return 1 / mass }

func inverseSqrt(mass float64) float64 { return 1 / math.Sqrt(mass) }

// scaleBy returns a copy of v with v[i] multiplied by f(mass[i]); entries
// with zero mass become zero.
func scaleBy(v, mass []float64, f func(float64) float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		if x == 0 || i >= len(mass) || mass[i] <= 0 {
			continue
		}
		out[i] = x * f(mass[i])
	}
	return out
}
