package graphsolver

import "github.com/adamgagorik/allocate/bucket"

// DefaultMaxAttempts bounds the number of bottom-up passes Solve will run
// before giving up with ErrNotConverged. A tree of depth d converges in at
// most d+1 passes (d that distribute, one that finds nothing left), so this
// default comfortably covers any tree this module is expected to see.
const DefaultMaxAttempts = 1024

// Option configures a Solve call via functional arguments.
type Option func(*options)

type options struct {
	inPlace     bool
	maxAttempts int
	solverOpts  bucket.Options
}

func defaultOptions() options {
	return options{
		inPlace:     false,
		maxAttempts: DefaultMaxAttempts,
		solverOpts:  bucket.DefaultOptions(),
	}
}

// WithInPlace controls whether Solve mutates t directly or first takes a
// tree.Tree.Clone and mutates that, leaving t untouched (the default).
func WithInPlace(inPlace bool) Option {
	return func(o *options) { o.inPlace = inPlace }
}

// WithMaxAttempts overrides DefaultMaxAttempts.
func WithMaxAttempts(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxAttempts = n
		}
	}
}

// WithSolverOptions passes opts through to every bucket.Solver.Solve call
// Solve makes while walking the tree.
func WithSolverOptions(opts bucket.Options) Option {
	return func(o *options) { o.solverOpts = opts }
}
