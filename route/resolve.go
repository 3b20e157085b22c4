package route

import (
	"context"
	"fmt"

	"github.com/katalvlaran/prophnet/network"
)

// queueItem pairs a node set id with its hop distance from src.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable search state.
type walker struct {
	graph  *network.Graph
	opts   Options
	ctx    context.Context
	queue  []queueItem
	parent map[int]*network.Relation // node set → relation that reached it
	seen   map[int]bool
}

// Resolve returns the relation chain from src to dst.
func Resolve(g *network.Graph, src, dst int, opts ...Option) (*Path, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if _, ok := g.NodeSet(src); !ok {
		return nil, fmt.Errorf("%w: src %d", ErrUnknownNetwork, src)
	}
	if _, ok := g.NodeSet(dst); !ok {
		return nil, fmt.Errorf("%w: dst %d", ErrUnknownNetwork, dst)
	}

	p := &Path{Src: src, Dst: dst, graph: g}

	// Same network: its adjacency if it has one, identity otherwise.
	if src == dst {
		for _, r := range g.Incident(src) {
			if r.IsIntra() && o.Allow(r) {
				p.Steps = []Step{{Relation: r, From: src, To: dst}}
				break
			}
		}
		return p, nil
	}

	// Direct relation: first declared wins.
	for _, r := range g.Incident(src) {
		if !r.IsIntra() && r.Connects(src, dst) && o.Allow(r) {
			p.Steps = []Step{step(r, src)}
			return p, nil
		}
	}

	n := g.Len()
	w := &walker{
		graph:  g,
		opts:   o,
		ctx:    o.Ctx,
		queue:  make([]queueItem, 0, n),
		parent: make(map[int]*network.Relation, n),
		seen:   make(map[int]bool, n),
	}
	found, err := w.search(src, dst)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: %s → %s", ErrNoPath, name(g, src), name(g, dst))
	}
	p.Steps = w.unwind(src, dst)
	return p, nil
}

// search runs BFS from src until dst is reached or the queue drains.
func (w *walker) search(src, dst int) (bool, error) {
	w.seen[src] = true
	w.queue = append(w.queue, queueItem{id: src})
	for len(w.queue) > 0 {
		// cancellation check (once per expansion)
		select {
		case <-w.ctx.Done():
			return false, w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		next := item.depth + 1
		if w.opts.MaxHops > 0 && next > w.opts.MaxHops {
			continue
		}
		for _, r := range w.graph.Incident(item.id) {
			if r.IsIntra() || !w.opts.Allow(r) {
				continue
			}
			nbr := r.Other(item.id)
			if w.seen[nbr] {
				continue
			}
			w.seen[nbr] = true
			w.parent[nbr] = r
			if nbr == dst {
				return true, nil
			}
			w.queue = append(w.queue, queueItem{id: nbr, depth: next})
		}
	}
	return false, nil
}

// unwind rebuilds the step chain by following parent relations back to src.
func (w *walker) unwind(src, dst int) []Step {
	var rev []Step
	for cur := dst; cur != src; {
		r := w.parent[cur]
		from := r.Other(cur)
		rev = append(rev, step(r, from))
		cur = from
	}
	steps := make([]Step, len(rev))
	for i := range rev {
		steps[i] = rev[len(rev)-1-i]
	}
	return steps
}

// step orients r so that it is traversed away from node set from.
func step(r *network.Relation, from int) Step {
	return Step{
		Relation: r,
		From:     from,
		To:       r.Other(from),
		Reversed: r.Src() != from,
	}
}

func name(g *network.Graph, id int) string {
	ns, _ := g.NodeSet(id)
	return ns.Name()
}
