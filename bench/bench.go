// Package bench orchestrates the SAXPY micro-benchmark: input generation,
// kernel warm-up, timed execution and result aggregation.
//
// The measured interval covers only the kernel invocation itself. A
// throwaway warm-up call on a tiny input precedes the first measurement so
// one-time dispatch and cache effects stay out of the timing samples.
package bench

import (
	"fmt"
	"time"

	"github.com/cwbudde/algo-saxpy/internal/vecmath"
	"github.com/cwbudde/algo-saxpy/randvec"
	"github.com/cwbudde/algo-saxpy/saxpy"
)

// headLen is the number of leading output values reported for sanity
// inspection.
const headLen = 5

// warmupLength is the input size of the throwaway warm-up invocation.
const warmupLength = 1

// Result holds the outcome of a benchmark run.
type Result struct {
	// Length is the input vector length.
	Length int

	// Scalar is the multiplier used.
	Scalar float64

	// Implementation names the kernel variant the dispatch selected.
	Implementation string

	// Samples holds the elapsed wall-clock time of each timed run.
	Samples []time.Duration

	// Head holds the first few output values (at most five).
	Head []float64

	// Checksum is the sum of all output elements. Consuming the output
	// keeps the timed computation observable.
	Checksum float64

	// OutMin and OutMax bound the output values of the last run.
	OutMin, OutMax float64

	// Stats aggregates the timing samples, in seconds.
	Stats Stats
}

// Elapsed returns the wall-clock time of the first timed run.
func (r *Result) Elapsed() time.Duration {
	return r.Samples[0]
}

// Harness owns the input vectors for the duration of one benchmark.
type Harness struct {
	cfg Config
	x   []float64
	y   []float64
}

// New generates the input vectors for the given configuration.
// Generation failures (invalid or unallocatable length) are returned
// immediately; nothing is retried.
func New(opts ...Option) (*Harness, error) {
	cfg := applyOptions(opts...)

	x, err := randvec.Uniform(cfg.Length, cfg.Seed)
	if err != nil {
		return nil, fmt.Errorf("bench: generating x: %w", err)
	}

	y, err := randvec.Uniform(cfg.Length, cfg.Seed+1)
	if err != nil {
		return nil, fmt.Errorf("bench: generating y: %w", err)
	}

	return &Harness{cfg: cfg, x: x, y: y}, nil
}

// Warmup performs a throwaway kernel invocation on a tiny input, binding
// the kernel dispatch before anything is timed. The result is discarded.
func (h *Harness) Warmup() error {
	wx, err := randvec.Uniform(warmupLength, h.cfg.Seed+2)
	if err != nil {
		return fmt.Errorf("bench: generating warm-up input: %w", err)
	}

	if _, err := saxpy.Compute(wx, wx, 1.0, saxpy.WithWorkers(h.cfg.Workers)); err != nil {
		return fmt.Errorf("bench: warm-up run: %w", err)
	}

	return nil
}

// Run executes the configured number of timed kernel invocations and
// aggregates the results. Each run allocates a fresh output vector, as the
// kernel contract promises no aliasing with its inputs.
func (h *Harness) Run() (*Result, error) {
	samples := make([]time.Duration, 0, h.cfg.Runs)

	var out []float64
	for run := 1; run <= h.cfg.Runs; run++ {
		start := time.Now()
		o, err := saxpy.Compute(h.x, h.y, h.cfg.Scalar, saxpy.WithWorkers(h.cfg.Workers))
		elapsed := time.Since(start)

		if err != nil {
			return nil, fmt.Errorf("bench: kernel run %d: %w", run, err)
		}

		samples = append(samples, elapsed)
		out = o
	}

	head := out
	if len(head) > headLen {
		head = head[:headLen]
	}

	outMin, outMax := vecmath.MinMax(out)

	seconds := make([]float64, len(samples))
	for i, s := range samples {
		seconds[i] = s.Seconds()
	}

	return &Result{
		Length:         h.cfg.Length,
		Scalar:         h.cfg.Scalar,
		Implementation: vecmath.ImplementationName(),
		Samples:        samples,
		Head:           head,
		Checksum:       vecmath.Sum(out),
		OutMin:         outMin,
		OutMax:         outMax,
		Stats:          Calculate(seconds),
	}, nil
}

// Run generates inputs, warms the kernel up and executes the timed runs in
// one call. Equivalent to New followed by Warmup and Harness.Run.
func Run(opts ...Option) (*Result, error) {
	h, err := New(opts...)
	if err != nil {
		return nil, err
	}

	if err := h.Warmup(); err != nil {
		return nil, err
	}

	return h.Run()
}
