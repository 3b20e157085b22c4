// SPDX-License-Identifier: MIT

package network

import (
	"fmt"

	"github.com/katalvlaran/prophnet/matrix"
)

// NodeSet is a named, indexed collection of entities of one network.
// Indices are contiguous (0..Size-1) and never change after Build.
type NodeSet struct {
	id     int
	name   string
	size   int
	labels []string       // nil when the set carries no label source
	index  map[string]int // label → index
}

// ID returns the node set's position in declaration order.
func (n *NodeSet) ID() int { return n.id }

// Name returns the node set's unique name.
func (n *NodeSet) Name() string { return n.name }

// Size returns the number of entities.
func (n *NodeSet) Size() int { return n.size }

// HasLabels reports whether entities can be resolved by name.
func (n *NodeSet) HasLabels() bool { return n.labels != nil }

// Label returns the label of entity i, or "" when the set has no labels or
// i is out of range.
func (n *NodeSet) Label(i int) string {
	if i < 0 || i >= len(n.labels) {
		return ""
	}
	return n.labels[i]
}

// Labels returns a copy of the label table (nil when absent).
func (n *NodeSet) Labels() []string {
	if n.labels == nil {
		return nil
	}
	return append([]string(nil), n.labels...)
}

// Index resolves a label to its entity index.
func (n *NodeSet) Index(label string) (int, bool) {
	i, ok := n.index[label]
	return i, ok
}

// Contains reports whether i is a valid entity index.
func (n *NodeSet) Contains(i int) bool { return i >= 0 && i < n.size }

func (n *NodeSet) String() string {
	return fmt.Sprintf("%s(#%d, %d entities)", n.name, n.id, n.size)
}

// Relation is a weighted association matrix between two node sets.
// Rows index Src entities, columns index Dst entities.
type Relation struct {
	id       int
	name     string
	src, dst int
	m        matrix.Matrix
}

// ID returns the relation's position in declaration order.
func (r *Relation) ID() int { return r.id }

// Name returns the relation's name ("<src>-<dst>" when none was declared).
func (r *Relation) Name() string { return r.name }

// Src returns the node set id indexing the rows.
func (r *Relation) Src() int { return r.src }

// Dst returns the node set id indexing the columns.
func (r *Relation) Dst() int { return r.dst }

// Matrix returns the relation's read-only storage.
func (r *Relation) Matrix() matrix.Matrix { return r.m }

// IsIntra reports whether the relation is an adjacency within one node set.
func (r *Relation) IsIntra() bool { return r.src == r.dst }

// Connects reports whether the relation links a and b in either orientation.
func (r *Relation) Connects(a, b int) bool {
	return (r.src == a && r.dst == b) || (r.src == b && r.dst == a)
}

// Other returns the endpoint opposite to id.
func (r *Relation) Other(id int) int {
	if r.src == id {
		return r.dst
	}
	return r.src
}

// Graph is the loaded heterogeneous network. It has no mutation API.
type Graph struct {
	sets      []*NodeSet
	byName    map[string]int
	relations []*Relation
	incident  [][]int // node set id → relation ids in declaration order
	memSaving bool
}

// Len returns the number of node sets.
func (g *Graph) Len() int { return len(g.sets) }

// MemSaving reports whether relations are held in compressed form.
func (g *Graph) MemSaving() bool { return g.memSaving }

// NodeSets returns the node sets in declaration order.
func (g *Graph) NodeSets() []*NodeSet { return append([]*NodeSet(nil), g.sets...) }

// NodeSet returns the node set with the given id.
func (g *Graph) NodeSet(id int) (*NodeSet, bool) {
	if id < 0 || id >= len(g.sets) {
		return nil, false
	}
	return g.sets[id], true
}

// Lookup resolves a node set by name.
func (g *Graph) Lookup(name string) (*NodeSet, bool) {
	id, ok := g.byName[name]
	if !ok {
		return nil, false
	}
	return g.sets[id], true
}

// Relations returns all relations in declaration order.
func (g *Graph) Relations() []*Relation { return append([]*Relation(nil), g.relations...) }

// Relation returns the relation with the given id.
func (g *Graph) Relation(id int) (*Relation, bool) {
	if id < 0 || id >= len(g.relations) {
		return nil, false
	}
	return g.relations[id], true
}

// Incident returns the relations touching node set id, in declaration order.
// Intra relations are included once.
func (g *Graph) Incident(id int) []*Relation {
	if id < 0 || id >= len(g.incident) {
		return nil
	}
	out := make([]*Relation, 0, len(g.incident[id]))
	for _, rid := range g.incident[id] {
		out = append(out, g.relations[rid])
	}
	return out
}

// Intra returns the first-declared intra-network relation of node set id.
func (g *Graph) Intra(id int) (*Relation, bool) {
	if id < 0 || id >= len(g.incident) {
		return nil, false
	}
	for _, rid := range g.incident[id] {
		if r := g.relations[rid]; r.IsIntra() {
			return r, true
		}
	}
	return nil, false
}
