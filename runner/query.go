package runner

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/prophnet/network"
)

// QuerySelector identifies the seed entity of a request, either by index or
// by label. The set of implementations is closed.
type QuerySelector interface {
	fmt.Stringer
	resolve(ns *network.NodeSet) (int, error)
}

// ByIndex selects an entity by its zero-based index.
type ByIndex int

// ByName selects an entity by its label in the source node set.
type ByName string

func (q ByIndex) String() string { return "#" + strconv.Itoa(int(q)) }

func (q ByName) String() string { return strconv.Quote(string(q)) }

// Range is checked by the engine against the node set size.
func (q ByIndex) resolve(*network.NodeSet) (int, error) { return int(q), nil }

func (q ByName) resolve(ns *network.NodeSet) (int, error) {
	if !ns.HasLabels() {
		return 0, fmt.Errorf("%w: %s: node set %q carries no labels", ErrUnknownEntity, q, ns.Name())
	}
	i, ok := ns.Index(string(q))
	if !ok {
		return 0, fmt.Errorf("%w: %s not in %q", ErrUnknownEntity, q, ns.Name())
	}
	return i, nil
}
