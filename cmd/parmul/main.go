// SPDX-License-Identifier: MIT

// Command parmul runs the distributed multiplication demo: seeded square
// inputs, a fixed worker pool, channel collection and verification against
// the serial reference, with execution counters sampled around the run.
//
// Usage:
//
//	parmul [-n size] [-p workers]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/katalvlaran/parmul/distribute"
	"github.com/katalvlaran/parmul/matrix"
	"github.com/katalvlaran/parmul/perf"
)

func main() {
	size := flag.Int("n", distribute.DefaultSize, "square matrix dimension (positive)")
	workers := flag.Int("p", distribute.DefaultWorkers, "number of workers (positive)")
	flag.Parse()

	// User input is validated here; the option constructors treat bad values
	// as programmer errors and panic.
	if *size <= 0 || *workers <= 0 {
		fmt.Fprintln(os.Stderr, "parmul: -n and -p must be positive")
		os.Exit(2)
	}

	if err := run(*size, *workers); err != nil {
		fmt.Fprintln(os.Stderr, "parmul:", err)
		os.Exit(1)
	}
}

func run(size, workers int) error {
	fmt.Printf("Distributed Matrix Multiplication (%dx%d) with %d workers\n\n", size, size, workers)

	a, err := matrix.NewSequential(size)
	if err != nil {
		return err
	}
	b, err := matrix.NewNearIdentity(size)
	if err != nil {
		return err
	}

	counters, err := perf.Open()
	if err != nil {
		return err
	}
	defer func() { _ = counters.Close() }()

	coord := distribute.NewCoordinator(
		distribute.WithSize(size),
		distribute.WithWorkers(workers),
	)

	before := counters.Sample()
	rep, err := coord.Run(a, b)
	after := counters.Sample()
	if err != nil {
		return err
	}

	fmt.Println("Matrix A:")
	fmt.Print(a)
	fmt.Println()
	fmt.Println("Matrix B:")
	fmt.Print(b)
	fmt.Println()
	fmt.Println("Result C = A x B:")
	fmt.Print(rep.C)
	fmt.Println()

	for i, cerr := range rep.Collection {
		if cerr != nil {
			fmt.Fprintf(os.Stderr, "parmul: worker %d rows %s: %v\n", i, rep.Ranges[i], cerr)
		}
	}

	d := perf.Delta(before, after)
	fmt.Printf("Cycles:       %d\n", d.Cycles)
	fmt.Printf("Time (ns):    %d\n", d.Ticks)
	fmt.Printf("Instructions: %d\n", d.Instructions)
	fmt.Println()

	if rep.OK {
		fmt.Println("SUCCESS: distributed result matches reference.")

		return nil
	}

	fmt.Println("ERROR: distributed result differs from reference.")

	return rep.Err()
}
