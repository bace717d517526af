// Command saxpybench runs the SAXPY micro-benchmark: it generates two
// random vectors, computes out[i] = a * (x[i] + y[i]) with the runtime
// selected kernel, and reports the wall-clock time of the timed invocation.
//
// Usage:
//
//	saxpybench [flags]
//
// Without flags it runs the reference configuration (10,000,000 elements,
// a = 2.1, one timed run) and prints two progress dots, the first five
// output values and the elapsed time. A one-time warm-up call precedes the
// measurement and is excluded from it.
//
// Examples:
//
//	saxpybench
//	saxpybench -n 1000000 -a 0.5
//	saxpybench -runs 10 -workers 4
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-saxpy/bench"
	"github.com/cwbudde/algo-saxpy/internal/cpu"
)

func main() {
	defaults := bench.DefaultConfig()

	n := flag.Int("n", defaults.Length, "vector length")
	a := flag.Float64("a", defaults.Scalar, "scalar multiplier")
	seed := flag.Uint64("seed", defaults.Seed, "random seed for input generation")
	runs := flag.Int("runs", defaults.Runs, "number of timed kernel runs")
	workers := flag.Int("workers", 0, "kernel worker goroutines (0 = all cores)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: saxpybench [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Benchmarks the vector kernel out[i] = a * (x[i] + y[i]).\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  saxpybench\n")
		fmt.Fprintf(os.Stderr, "  saxpybench -n 1000000 -a 0.5\n")
		fmt.Fprintf(os.Stderr, "  saxpybench -runs 10 -workers 4\n")
	}
	flag.Parse()

	opts := []bench.Option{
		bench.WithLength(*n),
		bench.WithScalar(*a),
		bench.WithSeed(*seed),
		bench.WithRuns(*runs),
		bench.WithWorkers(*workers),
	}

	// First dot precedes input generation, second follows the warm-up call.
	fmt.Println(".")

	h, err := bench.New(opts...)
	if err != nil {
		fatal(err)
	}
	if err := h.Warmup(); err != nil {
		fatal(err)
	}

	fmt.Println("..")

	res, err := h.Run()
	if err != nil {
		fatal(err)
	}

	fmt.Println(res.Head)
	fmt.Printf("Total time: %0.10f seconds\n", res.Elapsed().Seconds())

	if *runs > 1 {
		printSummary(res)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}

func printSummary(res *bench.Result) {
	features := cpu.DetectFeatures()

	fmt.Printf("\nkernel: %s (%s, %s)\n", res.Implementation, features.Architecture, features.SIMDName())

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Runs\tMin [s]\tMedian [s]\tMean [s]\tMax [s]\tStdDev [s]\tThroughput [GiB/s]\n")
	fmt.Fprintf(tw, "----\t-------\t----------\t--------\t-------\t----------\t------------------\n")
	fmt.Fprintf(tw, "%d\t%.6f\t%.6f\t%.6f\t%.6f\t%.6f\t%.2f\n",
		res.Stats.Runs,
		res.Stats.Min,
		res.Stats.Median,
		res.Stats.Mean,
		res.Stats.Max,
		res.Stats.StdDev,
		throughputGiB(res.Length, res.Stats.Median),
	)
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

// throughputGiB estimates memory throughput for one run: the kernel reads
// both inputs and writes the output, 24 bytes per element.
func throughputGiB(length int, seconds float64) float64 {
	if seconds <= 0 {
		return 0
	}
	bytes := float64(length) * 3 * 8
	return bytes / seconds / (1 << 30)
}
