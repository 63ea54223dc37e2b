// SPDX-License-Identifier: MIT

package solve

// Option configures a single solve call.
type Option func(*solveConfig)

// solveConfig is the per-call option state. Unset pointers mean backend
// defaults.
type solveConfig struct {
	timeLimit *float64
	presolve  *string
	threads   int
	output    bool
	extraArgs []string
}

func gatherOptions(opts []Option) *solveConfig {
	cfg := &solveConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithTimeLimit sets the solver-side time limit in seconds (process
// backends only; the in-process backend relies on context cancellation
// checks). Independent of, and combinable with, a context deadline.
func WithTimeLimit(seconds float64) Option {
	return func(c *solveConfig) {
		c.timeLimit = &seconds
	}
}

// WithPresolve sets the presolve mode ("on" or "off") for process
// backends.
func WithPresolve(mode string) Option {
	return func(c *solveConfig) {
		c.presolve = &mode
	}
}

// WithThreads sets the solver thread count for process backends.
// n < 1 means the backend default.
func WithThreads(n int) Option {
	return func(c *solveConfig) {
		c.threads = n
	}
}

// WithOutput enables echoing of the solver process output to stdout.
// Off by default.
func WithOutput(enabled bool) Option {
	return func(c *solveConfig) {
		c.output = enabled
	}
}

// WithArgs appends raw command-line arguments for process backends,
// inserted before the solve command. Ignored by the in-process backend.
func WithArgs(args ...string) Option {
	return func(c *solveConfig) {
		c.extraArgs = append(c.extraArgs, args...)
	}
}
