// SPDX-License-Identifier: MIT
// Package: network
//
// builder.go - validated, deterministic Graph assembly.
//
// Contract:
//   - Node sets keep declaration order; their ids are 0..n-1 in that order.
//   - Relations keep declaration order; their ids are 0..m-1 in that order.
//   - A node set's size comes from its labels, its declared size and the
//     dimensions of every relation touching it; all sources must agree.
//   - Every problem is collected; Build reports them together (multierr) so
//     a broken file is diagnosed in one pass.
//   - Build never mutates the matrices handed to AddRelation; storage is
//     converted (CSR or Dense) according to the memory-saving flag.

package network

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/katalvlaran/prophnet/matrix"
)

const methodBuild = "Build"

type setSpec struct {
	name   string
	size   int // 0 = infer
	labels []string
}

type relSpec struct {
	name     string
	src, dst string
	m        matrix.Matrix
}

// Builder accumulates node sets and relations and validates them on Build.
// A Builder is not safe for concurrent use.
type Builder struct {
	sets []setSpec
	rels []relSpec
	errs error
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder { return &Builder{} }

// AddNodeSet declares a node set. size may be 0 when labels or relations
// determine it; labels may be nil.
func (b *Builder) AddNodeSet(name string, size int, labels []string) *Builder {
	if size < 0 {
		b.errs = multierr.Append(b.errs, fmt.Errorf("node set %q: size %d: %w", name, size, ErrShapeMismatch))
		size = 0
	}
	var own []string
	if labels != nil {
		own = append([]string(nil), labels...)
	}
	b.sets = append(b.sets, setSpec{name: name, size: size, labels: own})
	return b
}

// AddRelation declares a relation from node set src (rows) to dst (columns).
// An empty name defaults to "src-dst".
func (b *Builder) AddRelation(name, src, dst string, m matrix.Matrix) *Builder {
	if name == "" {
		name = src + "-" + dst
	}
	b.rels = append(b.rels, relSpec{name: name, src: src, dst: dst, m: m})
	return b
}

// Build validates everything declared so far and returns the Graph.
// memSaving selects CSR (true) or dense (false) relation storage.
func (b *Builder) Build(memSaving bool) (*Graph, error) {
	errs := b.errs
	g := &Graph{
		byName:    make(map[string]int, len(b.sets)),
		memSaving: memSaving,
	}

	// 1) Node sets: names, labels, declared sizes.
	for _, s := range b.sets {
		if s.name == "" {
			errs = multierr.Append(errs, fmt.Errorf("%s: node set #%d: %w", methodBuild, len(g.sets), ErrEmptyName))
			continue
		}
		if _, dup := g.byName[s.name]; dup {
			errs = multierr.Append(errs, fmt.Errorf("%s: %q: %w", methodBuild, s.name, ErrDuplicateNodeSet))
			continue
		}
		ns := &NodeSet{id: len(g.sets), name: s.name, size: s.size}
		if s.labels != nil {
			if s.size != 0 && s.size != len(s.labels) {
				errs = multierr.Append(errs, fmt.Errorf("%s: %q: size %d but %d labels: %w",
					methodBuild, s.name, s.size, len(s.labels), ErrShapeMismatch))
			}
			ns.size = len(s.labels)
			ns.labels = s.labels
			ns.index = make(map[string]int, len(s.labels))
			for i, l := range s.labels {
				if _, dup := ns.index[l]; dup {
					errs = multierr.Append(errs, fmt.Errorf("%s: %q: label %q: %w", methodBuild, s.name, l, ErrDuplicateLabel))
					continue
				}
				ns.index[l] = i
			}
		}
		g.byName[s.name] = ns.id
		g.sets = append(g.sets, ns)
	}

	// 2) Relations: endpoints, shapes, weights, storage.
	g.incident = make([][]int, len(g.sets))
	for _, rs := range b.rels {
		r, err := b.buildRelation(g, rs, len(g.relations), memSaving)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		g.relations = append(g.relations, r)
		g.incident[r.src] = append(g.incident[r.src], r.id)
		if !r.IsIntra() {
			g.incident[r.dst] = append(g.incident[r.dst], r.id)
		}
	}

	// 3) Every node set needs a size by now.
	for _, ns := range g.sets {
		if ns.size == 0 {
			errs = multierr.Append(errs, fmt.Errorf("%s: %q: %w", methodBuild, ns.name, ErrEmptyNodeSet))
		}
	}

	if errs != nil {
		return nil, errs
	}
	return g, nil
}

// buildRelation checks one relation against the node sets and settles any
// still-unknown sizes from its dimensions.
func (b *Builder) buildRelation(g *Graph, rs relSpec, id int, memSaving bool) (*Relation, error) {
	if matrix.ValidateNotNil(rs.m) != nil {
		return nil, fmt.Errorf("%s: relation %q: %w", methodBuild, rs.name, ErrNilMatrix)
	}
	srcID, ok := g.byName[rs.src]
	if !ok {
		return nil, fmt.Errorf("%s: relation %q: src %q: %w", methodBuild, rs.name, rs.src, ErrUnknownNodeSet)
	}
	dstID, ok := g.byName[rs.dst]
	if !ok {
		return nil, fmt.Errorf("%s: relation %q: dst %q: %w", methodBuild, rs.name, rs.dst, ErrUnknownNodeSet)
	}
	rows, cols := rs.m.Dims()
	if srcID == dstID && rows != cols {
		return nil, fmt.Errorf("%s: relation %q: intra relation is %dx%d: %w", methodBuild, rs.name, rows, cols, ErrShapeMismatch)
	}
	if err := checkSize(g.sets[srcID], rows, rs.name); err != nil {
		return nil, err
	}
	if err := checkSize(g.sets[dstID], cols, rs.name); err != nil {
		return nil, err
	}
	if err := matrix.ValidateWeights(rs.m); err != nil {
		return nil, fmt.Errorf("%s: relation %q: %v: %w", methodBuild, rs.name, err, ErrInvalidWeight)
	}

	var (
		stored matrix.Matrix
		err    error
	)
	if memSaving {
		stored, err = matrix.ToCSR(rs.m)
	} else {
		stored, err = matrix.ToDense(rs.m)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: relation %q: %w", methodBuild, rs.name, err)
	}

	// sizes are settled only once the relation is known to be valid
	g.sets[srcID].size = rows
	g.sets[dstID].size = cols

	return &Relation{id: id, name: rs.name, src: srcID, dst: dstID, m: stored}, nil
}

// checkSize accepts n when ns has no size yet or already has size n.
func checkSize(ns *NodeSet, n int, relation string) error {
	if ns.size != 0 && ns.size != n {
		return fmt.Errorf("%s: relation %q: %q has %d entities, matrix side is %d: %w",
			methodBuild, relation, ns.name, ns.size, n, ErrShapeMismatch)
	}
	return nil
}
