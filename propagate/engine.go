package propagate

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/prophnet/logging"
	"github.com/katalvlaran/prophnet/network"
	"github.com/katalvlaran/prophnet/route"
)

// Engine runs propagation requests. It holds no per-request state and is
// safe for concurrent use over immutable graphs.
type Engine struct {
	opts   Options
	logger logging.Logger
}

// NewEngine returns an Engine logging to l (nil discards).
func NewEngine(l logging.Logger, opts ...Option) *Engine {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Engine{opts: o, logger: logging.OrNop(l)}
}

// Propagate resolves the path from src to dst on g and propagates seed
// along it with the named policy.
//
// Check order: policy, options, path, seed range. No arithmetic happens
// before every check passed.
func (e *Engine) Propagate(ctx context.Context, g *network.Graph, seed SeedVector, src, dst int, policy string) (ScoreVector, error) {
	if _, err := LookupPolicy(policy); err != nil {
		return nil, err
	}
	if e.opts.err != nil {
		return nil, e.opts.err
	}
	p, err := route.Resolve(g, src, dst, route.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	e.logger.Debug("path resolved", "path", p.String(), "hops", p.Len())
	return e.PropagatePath(ctx, p, seed, policy)
}

// PropagatePath propagates seed along an already resolved path.
func (e *Engine) PropagatePath(ctx context.Context, p *route.Path, seed SeedVector, policy string) (ScoreVector, error) {
	pol, err := LookupPolicy(policy)
	if err != nil {
		return nil, err
	}
	if e.opts.err != nil {
		return nil, e.opts.err
	}
	if p == nil || p.Graph() == nil {
		return nil, ErrPathNil
	}
	g := p.Graph()
	srcSet, ok := g.NodeSet(p.Src)
	if !ok {
		return nil, fmt.Errorf("%w: src %d", route.ErrUnknownNetwork, p.Src)
	}
	v, err := seed.Dense(srcSet.Size())
	if err != nil {
		return nil, err
	}

	if v, err = e.diffuse(ctx, g, p.Src, v); err != nil {
		return nil, err
	}
	for k, s := range p.Steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if isZero(v) {
			// nothing left to carry; only the size changes
			_, cols := s.Matrix().Dims()
			v = make([]float64, cols)
			continue
		}
		if v, err = pol.Hop(s.Matrix(), v); err != nil {
			return nil, fmt.Errorf("propagate: hop %d (%s): %w", k, s.Relation.Name(), err)
		}
		if s.Relation.IsIntra() {
			continue
		}
		if v, err = e.diffuse(ctx, g, s.To, v); err != nil {
			return nil, err
		}
	}

	sanitize(v)
	e.logger.Debug("propagation done", "policy", pol.Name, "dst", p.Dst, "entities", len(v))
	return ScoreVector(v), nil
}

// diffuse smooths v inside node set id when diffusion is enabled and the
// node set owns an intra relation.
func (e *Engine) diffuse(ctx context.Context, g *network.Graph, id int, v0 []float64) ([]float64, error) {
	if e.opts.Alpha == 0 || isZero(v0) {
		return v0, nil
	}
	intra, ok := g.Intra(id)
	if !ok {
		return v0, nil
	}
	alpha := e.opts.Alpha
	v := append([]float64(nil), v0...)
	for it := 0; it < e.opts.MaxIter; it++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		w, err := hopSymmetric(intra.Matrix(), v)
		if err != nil {
			return nil, fmt.Errorf("propagate: diffusion over %s: %w", intra.Name(), err)
		}
		var delta float64
		for i := range w {
			next := (1-alpha)*v0[i] + alpha*w[i]
			delta += math.Abs(next - v[i])
			v[i] = next
		}
		if delta < e.opts.Tol {
			e.logger.Debug("diffusion converged", "network", id, "rounds", it+1)
			break
		}
	}
	return v, nil
}

func isZero(v []float64) bool { return ScoreVector(v).IsZero() }

// sanitize makes every score finite and ≥ 0: overflow saturates at
// MaxFloat64 so it keeps its rank, NaN and negative residue become 0.
func sanitize(v []float64) {
	for i, x := range v {
		switch {
		case math.IsInf(x, 1):
			v[i] = math.MaxFloat64
		case x < 0 || math.IsNaN(x):
			v[i] = 0
		}
	}
}
