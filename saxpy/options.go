package saxpy

// Config defines execution parameters for the kernel.
type Config struct {
	// Workers is the number of goroutines used for large inputs.
	// 0 selects GOMAXPROCS; 1 forces sequential execution.
	Workers int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Workers: 0,
	}
}

// WithWorkers sets the number of goroutines used for the parallel
// decomposition. Values below zero are ignored.
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
