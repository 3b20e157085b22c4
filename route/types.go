package route

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/prophnet/matrix"
	"github.com/katalvlaran/prophnet/network"
)

// Sentinel errors for path resolution.
var (
	// ErrNoPath is returned when no chain of relations links src to dst.
	ErrNoPath = errors.New("route: no path between networks")

	// ErrUnknownNetwork is returned for an id that names no node set.
	// It wraps ErrNoPath.
	ErrUnknownNetwork = fmt.Errorf("%w: unknown network", ErrNoPath)

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("route: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("route: invalid option supplied")
)

// Option configures Resolve via functional arguments. Invalid options are
// recorded and surfaced as ErrOptionViolation when Resolve runs.
type Option func(*Options)

// Options holds the parameters of a resolution.
type Options struct {
	// Ctx allows cancellation between expansions.
	Ctx context.Context

	// MaxHops, if > 0, rejects paths longer than this many relations.
	MaxHops int

	// Allow can exclude relations from the search by returning false.
	Allow func(r *network.Relation) bool

	err error
}

// DefaultOptions returns background context, no hop limit, every relation allowed.
func DefaultOptions() Options {
	return Options{
		Ctx:   context.Background(),
		Allow: func(*network.Relation) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxHops bounds the path length. 0 means no limit; negative is invalid.
func WithMaxHops(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxHops cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxHops = n
	}
}

// WithAllow restricts the relations the search may traverse.
func WithAllow(fn func(r *network.Relation) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.Allow = fn
		}
	}
}

// Step traverses one relation from node set From to node set To.
type Step struct {
	Relation *network.Relation
	From     int
	To       int
	// Reversed is true when the relation was declared To→From and is
	// traversed through its transpose.
	Reversed bool
}

// Matrix returns the relation oriented for this step: rows index From,
// columns index To.
func (s Step) Matrix() matrix.Matrix {
	if s.Reversed {
		return s.Relation.Matrix().T()
	}
	return s.Relation.Matrix()
}

// Path is the ordered chain of steps from Src to Dst.
type Path struct {
	Src   int
	Dst   int
	Steps []Step

	graph *network.Graph
}

// Graph returns the graph the path was resolved on.
func (p *Path) Graph() *network.Graph { return p.graph }

// Len returns the number of hops.
func (p *Path) Len() int { return len(p.Steps) }

// Networks returns the node set ids visited, Src first and Dst last.
func (p *Path) Networks() []int {
	out := []int{p.Src}
	for _, s := range p.Steps {
		out = append(out, s.To)
	}
	return out
}

// String renders the path as "a -[rel]-> b -[rel']-> c".
func (p *Path) String() string {
	name := func(id int) string {
		if p.graph != nil {
			if ns, ok := p.graph.NodeSet(id); ok {
				return ns.Name()
			}
		}
		return fmt.Sprintf("#%d", id)
	}
	var sb strings.Builder
	sb.WriteString(name(p.Src))
	for _, s := range p.Steps {
		arrow := "->"
		if s.Reversed {
			arrow = "->ᵀ"
		}
		fmt.Fprintf(&sb, " -[%s]%s %s", s.Relation.Name(), arrow, name(s.To))
	}
	return sb.String()
}
