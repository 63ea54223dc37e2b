package analysis

import "github.com/recourse-go/recourse/solve"

// Option configures one Evaluate run.
type Option func(*config)

type config struct {
	parallel  int
	solveOpts []solve.Option
}

func gatherOptions(opts []Option) *config {
	cfg := &config{parallel: 1}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.parallel < 1 {
		cfg.parallel = 1
	}

	return cfg
}

// WithParallel allows up to n hindsight (per-scenario) solves to run
// concurrently. The stochastic and mean solves stay sequential; only
// the independent per-scenario solves fan out. n < 1 means sequential.
func WithParallel(n int) Option {
	return func(c *config) {
		c.parallel = n
	}
}

// WithSolveOptions passes backend options through to every solve issued
// by Evaluate.
func WithSolveOptions(opts ...solve.Option) Option {
	return func(c *config) {
		c.solveOpts = append(c.solveOpts, opts...)
	}
}
