package runner

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator"

	"github.com/katalvlaran/prophnet/logging"
	"github.com/katalvlaran/prophnet/network"
	"github.com/katalvlaran/prophnet/propagate"
	"github.com/katalvlaran/prophnet/route"
)

// Runner executes propagation requests against injected collaborators.
// It keeps no per-request state.
type Runner struct {
	loader   Loader
	engine   Propagator
	sink     Sink
	logger   logging.Logger
	validate *validator.Validate
}

// New returns a Runner. A nil sink writes files through FileSink; a nil
// logger discards diagnostics.
func New(loader Loader, engine Propagator, sink Sink, l logging.Logger) *Runner {
	if sink == nil {
		sink = FileSink{}
	}
	return &Runner{
		loader:   loader,
		engine:   engine,
		sink:     sink,
		logger:   logging.OrNop(l),
		validate: validator.New(),
	}
}

// Run executes the request and reports StatusOK or StatusFailure. Failures
// are logged, never returned.
func (r *Runner) Run(ctx context.Context, cfg Config, req Request) (propagate.RankedList, int) {
	list, err := r.Execute(ctx, cfg, req)
	if err != nil {
		r.logger.Error("run failed", "err", err, "kind", kind(err))
		return nil, StatusFailure
	}
	return list, StatusOK
}

// Execute runs load, query resolution, propagation, ranking and the optional
// save, stopping at the first failing stage.
func (r *Runner) Execute(ctx context.Context, cfg Config, req Request) (propagate.RankedList, error) {
	p, err := r.merge(cfg, req)
	if err != nil {
		return nil, err
	}
	log := r.logger
	log.Debug("request accepted", "matfile", p.MatFile, "query", p.Query.String(), "src", p.Src, "dst", p.Dst, "corr", p.CorrFunction, "memsave", p.MemSave)

	if p.Profile {
		stop := r.startProfile(p)
		defer stop()
	}

	g, err := r.loader.Load(ctx, p.DataPath, p.MatFile, p.MemSave)
	if err != nil {
		return nil, fmt.Errorf("runner: load: %w", err)
	}

	idx, err := r.queryIndex(g, p)
	if err != nil {
		return nil, err
	}

	scores, err := r.engine.Propagate(ctx, g, propagate.NewSeed(idx), p.Src, p.Dst, p.CorrFunction)
	if err != nil {
		if errors.Is(err, propagate.ErrSeedOutOfRange) {
			return nil, fmt.Errorf("%w: %w", ErrRequestShape, err)
		}
		return nil, fmt.Errorf("runner: propagate: %w", err)
	}

	dstSet, _ := g.NodeSet(p.Dst)
	list := propagate.Rank(scores, dstSet, p.N)
	log.Info("propagation finished", "query", p.Query.String(), "dst", p.Dst, "results", len(list))

	if p.Out != "" {
		if err := r.sink.Save(p.Out, list); err != nil {
			return nil, fmt.Errorf("runner: save %s: %w", p.Out, err)
		}
		log.Info("results saved", "path", p.Out)
	}
	return list, nil
}

func (r *Runner) queryIndex(g *network.Graph, p plan) (int, error) {
	if _, byName := p.Query.(ByName); !byName {
		return p.Query.resolve(nil)
	}
	ns, ok := g.NodeSet(p.Src)
	if !ok {
		return 0, fmt.Errorf("runner: %w: src %d", route.ErrUnknownNetwork, p.Src)
	}
	return p.Query.resolve(ns)
}

// kind names the error class for the log line.
func kind(err error) string {
	switch {
	case errors.Is(err, ErrRequestShape):
		return "request"
	case errors.Is(err, network.ErrDataLoad):
		return "data"
	case errors.Is(err, ErrUnknownEntity):
		return "entity"
	case errors.Is(err, route.ErrNoPath):
		return "path"
	case errors.Is(err, propagate.ErrUnknownCorrelationFunction):
		return "corr_function"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "cancelled"
	default:
		return "internal"
	}
}
