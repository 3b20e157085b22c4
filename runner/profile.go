package runner

import (
	"os"
	"runtime/pprof"
)

const defaultProfile = "prophrun.pprof"

// startProfile starts a CPU profile for the request and returns its stop
// function. Profiling problems are logged and never fail the request.
func (r *Runner) startProfile(p plan) func() {
	path := defaultProfile
	if p.Out != "" {
		path = p.Out + ".pprof"
	}
	f, err := os.Create(path)
	if err != nil {
		r.logger.Warn("cpu profile disabled", "err", err)
		return func() {}
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		r.logger.Warn("cpu profile disabled", "err", err)
		_ = f.Close()
		_ = os.Remove(path)
		return func() {}
	}
	r.logger.Debug("cpu profile started", "path", path)
	return func() {
		pprof.StopCPUProfile()
		_ = f.Close()
	}
}
