// SPDX-License-Identifier: MIT
// Package: sparsemat/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand" // RNG source for stochastic builders
)

// BuilderOption customizes the behavior of constructors by mutating a
// builderConfig instance before matrix construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithValueFn overrides the per-entry value generator. Panics on nil.
// The function receives the (possibly nil) RNG; a returned 0 leaves the cell empty.
func WithValueFn(fn ValueFn) BuilderOption {
	if fn == nil {
		panic("builder: WithValueFn(nil)")
	}
	return func(c *builderConfig) {
		c.valueFn = fn
	}
}
