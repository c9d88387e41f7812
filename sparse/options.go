// SPDX-License-Identifier: MIT

// Package sparse: functional options for Matrix construction.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Option constructors panic only on nonsensical values (programmer error).
//   - Options are resolved once in gatherOptions; Matrix keeps no reference to them.
package sparse

// DefaultCapacity is the initial triplet capacity of a new Matrix and the
// minimum capacity after the first growth step.
const DefaultCapacity = 10

// growthFactor is the multiplier applied to the triplet buffer when it is full.
// Appends are amortized O(1) because capacity at least doubles on every growth.
const growthFactor = 2

const panicCapacityInvalid = "sparse: WithCapacity: capacity must be >= 0"

// Option mutates internal options.
type Option func(*options)

type options struct {
	capacity int // initial capacity of the triplet buffer; DefaultCapacity
}

// WithCapacity presizes the triplet buffer for n entries.
// Panics if n < 0. A capacity of 0 defers allocation to the first Set.
// Complexity: O(1).
func WithCapacity(n int) Option {
	if n < 0 {
		panic(panicCapacityInvalid)
	}
	return func(o *options) { o.capacity = n }
}

// gatherOptions applies opts in order over the documented defaults.
func gatherOptions(opts ...Option) options {
	o := options{capacity: DefaultCapacity}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
