package runner

import (
	"context"

	"github.com/katalvlaran/prophnet/network"
	"github.com/katalvlaran/prophnet/propagate"
)

// Exit statuses returned by Run.
const (
	StatusOK      = 0
	StatusFailure = -1
)

// Config is the resolved run configuration. It is passed by value; a Runner
// never keeps it between calls. Engine parameters (diffusion) belong to the
// Propagator given to New.
type Config struct {
	DataPath     string
	CorrFunction string `validate:"required"`
	MatFile      string
	QIndex       *int
	QName        string
	Out          string
	N            int `validate:"min=0"`
	MemSave      bool
	Profile      bool
}

// Request carries per-invocation values. Set fields override Config.
type Request struct {
	Query   QuerySelector
	Src     *int
	Dst     *int
	MatFile string
	Out     string
	MemSave *bool
}

// Loader yields the network graph for a file reference.
type Loader interface {
	Load(ctx context.Context, basePath, ref string, memSaving bool) (*network.Graph, error)
}

// Propagator computes the destination scores for a seed.
type Propagator interface {
	Propagate(ctx context.Context, g *network.Graph, seed propagate.SeedVector, src, dst int, policy string) (propagate.ScoreVector, error)
}

// Sink persists a finished RankedList.
type Sink interface {
	Save(path string, list propagate.RankedList) error
}

var (
	_ Loader     = (*network.FileLoader)(nil)
	_ Loader     = (*network.Cache)(nil)
	_ Propagator = (*propagate.Engine)(nil)
	_ Sink       = FileSink{}
)
