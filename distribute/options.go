// SPDX-License-Identifier: MIT

// Package distribute: functional configuration for the coordinator.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.

package distribute

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWorkers is the worker count used when WithWorkers is absent.
	// Small and fixed: the point of the pipeline is the partition/collect
	// protocol, not throughput tuning.
	DefaultWorkers = 4

	// DefaultSize is the square dimension used by RunSeeded when WithSize is
	// absent. Large enough that the default split is uneven (10 rows over 4
	// workers), small enough to eyeball on a console.
	DefaultSize = 10
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWorkersInvalid = "distribute: WithWorkers: count must be positive"
	panicSizeInvalid    = "distribute: WithSize: dimension must be positive"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	workers int // fixed worker count (> 0); DefaultWorkers
	size    int // seeded demo dimension (> 0); DefaultSize
}

// Workers reports the effective worker count. Complexity: O(1).
func (o Options) Workers() int { return o.workers }

// Size reports the effective seeded dimension. Complexity: O(1).
func (o Options) Size() int { return o.size }

// ---------- Constructors (WithX) ----------

// WithWorkers fixes the number of workers the coordinator spawns.
// The count is set once per run and never adapts to load; a count above the
// row total simply leaves the tail workers with zero-length ranges.
// Panics on count <= 0 (programmer error).
// Complexity: Time O(1), Space O(1).
func WithWorkers(count int) Option {
	if count <= 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = count }
}

// WithSize sets the square dimension for RunSeeded's generated inputs.
// Panics on n <= 0 (programmer error).
// Complexity: Time O(1), Space O(1).
func WithSize(n int) Option {
	if n <= 0 {
		panic(panicSizeInvalid)
	}

	return func(o *Options) { o.size = n }
}

// ---------- Internal resolution ----------

// gatherOptions applies defaults, then user opts in order.
// Complexity: Time O(len(opts)), Space O(1).
func gatherOptions(opts ...Option) Options {
	o := Options{
		workers: DefaultWorkers,
		size:    DefaultSize,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
