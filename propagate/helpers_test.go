package propagate_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/prophnet/matrix"
	"github.com/katalvlaran/prophnet/network"
	"github.com/stretchr/testify/require"
)

// drugGraph mirrors network/testdata/drugs.yaml:
//
//	drugs(0, 3) ─drug-target─ targets(1, 4) ─disease-target (declared diseases→targets)─ diseases(2, 3)
//	drugs carries the intra relation drug-similarity.
func drugGraph(t testing.TB, memSaving bool) *network.Graph {
	t.Helper()
	sim, err := matrix.NewDenseFromRows([][]float64{{0, 0.8, 0}, {0.8, 0, 0}, {0, 0, 0}})
	require.NoError(t, err)
	dt, err := matrix.NewDenseFromRows([][]float64{{1, 1, 0, 0}, {1, 1, 0, 0}, {0, 0, 1, 1}})
	require.NoError(t, err)
	ds, err := matrix.NewCSR(3, 4, []matrix.Entry{
		{Row: 0, Col: 0, Value: 0.5},
		{Row: 0, Col: 1, Value: 1},
		{Row: 1, Col: 2, Value: 1},
		{Row: 2, Col: 3, Value: 0.25},
	})
	require.NoError(t, err)

	g, err := network.NewBuilder().
		AddNodeSet("drugs", 0, []string{"aspirin", "ibuprofen", "metformin"}).
		AddNodeSet("targets", 0, []string{"PTGS1", "PTGS2", "PRKAA1", "SLC22A1"}).
		AddNodeSet("diseases", 3, nil).
		AddRelation("drug-similarity", "drugs", "drugs", sim).
		AddRelation("drug-target", "drugs", "targets", dt).
		AddRelation("disease-target", "diseases", "targets", ds).
		Build(memSaving)
	require.NoError(t, err)
	return g
}

// randomChain builds k node sets linked in a chain by random sparse
// relations with density p; every node set also gets a random adjacency.
func randomChain(t testing.TB, rng *rand.Rand, k int, p float64, memSaving bool) *network.Graph {
	t.Helper()
	sizes := make([]int, k)
	b := network.NewBuilder()
	for i := range sizes {
		sizes[i] = 1 + rng.Intn(12)
		b.AddNodeSet(string(rune('a'+i)), sizes[i], nil)
	}
	sparse := func(r, c int, symmetric bool) matrix.Matrix {
		var entries []matrix.Entry
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				if symmetric && j < i {
					continue
				}
				if rng.Float64() < p {
					w := rng.Float64() * 3
					entries = append(entries, matrix.Entry{Row: i, Col: j, Value: w})
					if symmetric && i != j {
						entries = append(entries, matrix.Entry{Row: j, Col: i, Value: w})
					}
				}
			}
		}
		m, err := matrix.NewCSR(r, c, entries)
		require.NoError(t, err)
		return m
	}
	for i := 0; i < k; i++ {
		name := string(rune('a' + i))
		b.AddRelation("", name, name, sparse(sizes[i], sizes[i], true))
		if i > 0 {
			prev := string(rune('a' + i - 1))
			b.AddRelation("", prev, name, sparse(sizes[i-1], sizes[i], false))
		}
	}
	g, err := b.Build(memSaving)
	require.NoError(t, err)
	return g
}
