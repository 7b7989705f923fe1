// SPDX-License-Identifier: MIT

// Command perfstat samples the execution counters around a deterministic
// busy loop and prints the per-counter deltas. A quick way to see what the
// perf package can observe on the current machine.
//
// Usage:
//
//	perfstat [-iters n]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/katalvlaran/parmul/perf"
)

func main() {
	iters := flag.Int("iters", 1_000_000, "busy-loop iterations to measure (positive)")
	flag.Parse()

	if *iters <= 0 {
		fmt.Fprintln(os.Stderr, "perfstat: -iters must be positive")
		os.Exit(2)
	}

	counters, err := perf.Open()
	if err != nil {
		fmt.Fprintln(os.Stderr, "perfstat:", err)
		os.Exit(1)
	}
	defer func() { _ = counters.Close() }()

	before := counters.Sample()
	sink := busyWork(*iters)
	after := counters.Sample()

	d := perf.Delta(before, after)
	fmt.Printf("Iterations:   %d (checksum %#x)\n", *iters, sink)
	fmt.Printf("Cycles:       %d\n", d.Cycles)
	fmt.Printf("Time (ns):    %d\n", d.Ticks)
	fmt.Printf("Instructions: %d\n", d.Instructions)

	if !counters.Hardware() {
		fmt.Println("note: hardware counters unavailable, cycle/instruction counts read as zero")
	}
}

// busyWork burns n iterations of a mixed-multiply recurrence. The checksum
// is returned and printed so the loop cannot be optimized away.
func busyWork(n int) uint64 {
	acc := uint64(0x9e3779b97f4a7c15)
	for i := 0; i < n; i++ {
		acc = acc*6364136223846793005 + 1442695040888963407
	}

	return acc
}
