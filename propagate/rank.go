package propagate

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/prophnet/network"
)

// Ranked is one entry of a RankedList.
type Ranked struct {
	Rank  int // 1-based
	Index int
	Label string
	Score float64
}

// RankedList is a ScoreVector ordered for consumption.
type RankedList []Ranked

// Rank orders scores descending, ties by ascending index, and keeps the
// first n entries (all when n <= 0). ns supplies labels and may be nil.
func Rank(scores ScoreVector, ns *network.NodeSet, n int) RankedList {
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		if c := cmp.Compare(scores[b], scores[a]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	if n > 0 && n < len(order) {
		order = order[:n]
	}

	out := make(RankedList, len(order))
	for k, i := range order {
		out[k] = Ranked{Rank: k + 1, Index: i, Score: scores[i]}
		if ns != nil {
			out[k].Label = ns.Label(i)
		}
	}
	return out
}

// Indices returns the entity indices in rank order.
func (l RankedList) Indices() []int {
	out := make([]int, len(l))
	for k, r := range l {
		out[k] = r.Index
	}
	return out
}
