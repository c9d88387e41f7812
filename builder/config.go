// SPDX-License-Identifier: MIT
// Package: sparsemat/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • rng      = nil              (pure/deterministic unless seeded)
//   • valueFn  = DefaultValueFn   (constant DefaultValue)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Value generator for new entries.
	valueFn ValueFn
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:     nil,
		valueFn: DefaultValueFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
