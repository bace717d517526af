package bench

// Config defines the benchmark parameters.
type Config struct {
	// Length is the number of elements per input vector.
	Length int

	// Scalar is the multiplier a in out[i] = a * (x[i] + y[i]).
	Scalar float64

	// Seed determines the random input vectors. Runs with equal seeds
	// operate on identical inputs.
	Seed uint64

	// Runs is the number of timed kernel invocations.
	Runs int

	// Workers is forwarded to the kernel's parallel decomposition.
	// 0 selects GOMAXPROCS; 1 forces sequential execution.
	Workers int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the reference benchmark configuration:
// ten million elements, scalar 2.1, a single timed run.
func DefaultConfig() Config {
	return Config{
		Length: 10_000_000,
		Scalar: 2.1,
		Seed:   1,
		Runs:   1,
	}
}

// WithLength sets the input vector length. The value is validated when the
// harness generates its inputs, so invalid lengths surface as errors there.
func WithLength(length int) Option {
	return func(cfg *Config) {
		cfg.Length = length
	}
}

// WithScalar sets the scalar multiplier.
func WithScalar(scalar float64) Option {
	return func(cfg *Config) {
		cfg.Scalar = scalar
	}
}

// WithSeed sets the random seed for input generation.
func WithSeed(seed uint64) Option {
	return func(cfg *Config) {
		cfg.Seed = seed
	}
}

// WithRuns sets the number of timed kernel invocations.
// Values below one are ignored.
func WithRuns(runs int) Option {
	return func(cfg *Config) {
		if runs >= 1 {
			cfg.Runs = runs
		}
	}
}

// WithWorkers sets the kernel worker count. Values below zero are ignored.
func WithWorkers(workers int) Option {
	return func(cfg *Config) {
		if workers >= 0 {
			cfg.Workers = workers
		}
	}
}

// applyOptions applies zero or more options to the default config.
func applyOptions(opts ...Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
