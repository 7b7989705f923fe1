// SPDX-License-Identifier: MIT

// Package perf samples coarse execution counters around a measured region:
// CPU cycles, monotonic wall-clock ticks and retired instructions.
//
// Counters are strictly best-effort. On Linux the hardware counts come from
// the kernel's perf facility when the environment permits it; anywhere the
// facility is restricted or absent, those counts read as zero while the
// wall-clock ticks keep working. Callers sample before and after a region
// and difference the snapshots with Delta.
package perf
