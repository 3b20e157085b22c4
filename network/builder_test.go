package network_test

import (
	"testing"

	"github.com/katalvlaran/prophnet/matrix"
	"github.com/katalvlaran/prophnet/network"
	"github.com/stretchr/testify/require"
)

func dense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)
	return m
}

func TestBuild_InfersSizesAndIndexes(t *testing.T) {
	g, err := network.NewBuilder().
		AddNodeSet("a", 0, []string{"x", "y"}).
		AddNodeSet("b", 0, nil).
		AddRelation("", "a", "b", dense(t, [][]float64{{1, 0, 0}, {0, 0, 2}})).
		Build(false)
	require.NoError(t, err)

	require.Equal(t, 2, g.Len())
	b, ok := g.Lookup("b")
	require.True(t, ok)
	require.Equal(t, 1, b.ID())
	require.Equal(t, 3, b.Size())
	require.False(t, b.HasLabels())
	require.Equal(t, "", b.Label(0))

	a, _ := g.NodeSet(0)
	idx, ok := a.Index("y")
	require.True(t, ok)
	require.Equal(t, 1, idx)
	_, ok = a.Index("z")
	require.False(t, ok)
	require.True(t, a.Contains(1))
	require.False(t, a.Contains(2))

	r, ok := g.Relation(0)
	require.True(t, ok)
	require.Equal(t, "a-b", r.Name())
	require.True(t, r.Connects(1, 0))
	require.Equal(t, 0, r.Other(1))
	require.IsType(t, &matrix.Dense{}, r.Matrix())
	require.Len(t, g.Incident(0), 1)
	require.Len(t, g.Incident(1), 1)
}

func TestBuild_MemSavingStoresCSR(t *testing.T) {
	g, err := network.NewBuilder().
		AddNodeSet("a", 2, nil).
		AddRelation("self", "a", "a", dense(t, [][]float64{{0, 1}, {1, 0}})).
		Build(true)
	require.NoError(t, err)
	require.True(t, g.MemSaving())

	r, ok := g.Intra(0)
	require.True(t, ok)
	require.True(t, r.IsIntra())
	require.IsType(t, &matrix.CSR{}, r.Matrix())
	require.Len(t, g.Incident(0), 1) // intra relation listed once
}

func TestBuild_Errors(t *testing.T) {
	neg, err := matrix.NewCSR(2, 2, []matrix.Entry{{Row: 0, Col: 1, Value: -1}})
	require.NoError(t, err)

	cases := []struct {
		name  string
		build func() *network.Builder
		want  error
	}{
		{
			name: "unknown node set",
			build: func() *network.Builder {
				return network.NewBuilder().AddNodeSet("a", 2, nil).
					AddRelation("", "a", "ghost", dense(t, [][]float64{{1}, {1}}))
			},
			want: network.ErrUnknownNodeSet,
		},
		{
			name: "duplicate node set",
			build: func() *network.Builder {
				return network.NewBuilder().AddNodeSet("a", 1, nil).AddNodeSet("a", 1, nil)
			},
			want: network.ErrDuplicateNodeSet,
		},
		{
			name: "labels disagree with size",
			build: func() *network.Builder {
				return network.NewBuilder().AddNodeSet("a", 3, []string{"x"})
			},
			want: network.ErrShapeMismatch,
		},
		{
			name: "relation disagrees with size",
			build: func() *network.Builder {
				return network.NewBuilder().AddNodeSet("a", 3, nil).AddNodeSet("b", 0, nil).
					AddRelation("", "a", "b", dense(t, [][]float64{{1}, {1}}))
			},
			want: network.ErrShapeMismatch,
		},
		{
			name: "non-square intra relation",
			build: func() *network.Builder {
				return network.NewBuilder().AddNodeSet("a", 0, nil).
					AddRelation("", "a", "a", dense(t, [][]float64{{1, 0}}))
			},
			want: network.ErrShapeMismatch,
		},
		{
			name: "negative weight",
			build: func() *network.Builder {
				return network.NewBuilder().AddNodeSet("a", 2, nil).AddRelation("", "a", "a", neg)
			},
			want: network.ErrInvalidWeight,
		},
		{
			name: "size unknown",
			build: func() *network.Builder {
				return network.NewBuilder().AddNodeSet("lonely", 0, nil)
			},
			want: network.ErrEmptyNodeSet,
		},
		{
			name: "empty name",
			build: func() *network.Builder {
				return network.NewBuilder().AddNodeSet("", 1, nil)
			},
			want: network.ErrEmptyName,
		},
		{
			name: "duplicate label",
			build: func() *network.Builder {
				return network.NewBuilder().AddNodeSet("a", 0, []string{"x", "x"})
			},
			want: network.ErrDuplicateLabel,
		},
		{
			name: "nil matrix",
			build: func() *network.Builder {
				return network.NewBuilder().AddNodeSet("a", 1, nil).AddRelation("", "a", "a", nil)
			},
			want: network.ErrNilMatrix,
		},
		{
			name: "nil *Dense",
			build: func() *network.Builder {
				var m *matrix.Dense
				return network.NewBuilder().AddNodeSet("a", 1, nil).AddRelation("", "a", "a", m)
			},
			want: network.ErrNilMatrix,
		},
		{
			name: "nil *CSR",
			build: func() *network.Builder {
				var m *matrix.CSR
				return network.NewBuilder().AddNodeSet("a", 1, nil).AddRelation("", "a", "a", m)
			},
			want: network.ErrNilMatrix,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.build().Build(false)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestBuild_CollectsAllProblems(t *testing.T) {
	_, err := network.NewBuilder().
		AddNodeSet("a", 0, []string{"x", "x"}).
		AddNodeSet("a", 1, nil).
		AddNodeSet("b", -1, nil).
		Build(false)
	require.ErrorIs(t, err, network.ErrDuplicateLabel)
	require.ErrorIs(t, err, network.ErrDuplicateNodeSet)
	require.ErrorIs(t, err, network.ErrShapeMismatch)
}
