package propagate

import "fmt"

// Diffusion defaults.
const (
	DefaultMaxIter = 100
	DefaultTol     = 1e-6
)

// Option configures an Engine. Invalid options are recorded and surfaced as
// ErrOptionViolation by Propagate.
type Option func(*Options)

// Options holds the engine parameters.
type Options struct {
	// Alpha in [0,1) weights intra-network diffusion; 0 disables it.
	Alpha float64
	// MaxIter bounds diffusion rounds per node set.
	MaxIter int
	// Tol is the L1 change below which diffusion stops.
	Tol float64

	err error
}

// DefaultOptions returns diffusion disabled with the default bounds.
func DefaultOptions() Options {
	return Options{MaxIter: DefaultMaxIter, Tol: DefaultTol}
}

// WithDiffusion enables intra-network smoothing. alpha must lie in [0,1),
// maxIter must be > 0 and tol > 0; zero maxIter or tol keep the defaults.
func WithDiffusion(alpha float64, maxIter int, tol float64) Option {
	return func(o *Options) {
		switch {
		case !(alpha >= 0 && alpha < 1):
			o.err = fmt.Errorf("%w: alpha must be in [0,1) (%g)", ErrOptionViolation, alpha)
		case maxIter < 0:
			o.err = fmt.Errorf("%w: maxIter cannot be negative (%d)", ErrOptionViolation, maxIter)
		case tol < 0:
			o.err = fmt.Errorf("%w: tol cannot be negative (%g)", ErrOptionViolation, tol)
		default:
			o.Alpha = alpha
			if maxIter > 0 {
				o.MaxIter = maxIter
			}
			if tol > 0 {
				o.Tol = tol
			}
		}
	}
}
