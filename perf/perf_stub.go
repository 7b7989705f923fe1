// SPDX-License-Identifier: MIT

//go:build !linux

package perf

import "time"

// Counters is the portable fallback: wall-clock ticks only, no hardware
// counts. Kept API-compatible with the Linux implementation.
type Counters struct {
	base time.Time // monotonic reference captured at Open
}

// Open establishes the monotonic reference point. Never fails.
func Open() (*Counters, error) {
	return &Counters{base: time.Now()}, nil
}

// Hardware reports false: no hardware counters on this platform.
func (c *Counters) Hardware() bool { return false }

// Sample reads the elapsed monotonic nanoseconds since Open; the hardware
// counts stay zero.
func (c *Counters) Sample() Snapshot {
	return Snapshot{Ticks: uint64(time.Since(c.base))}
}

// Close is a no-op, present for API symmetry.
func (c *Counters) Close() error { return nil }
