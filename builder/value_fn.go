// Package builder provides helper functions and types for configuring the
// distribution of entry values in matrix constructors.
package builder

import (
	"fmt"
	"math/rand"
)

// ValueFn produces an entry value given an optional *rand.Rand source.
// It must be deterministic for a given RNG state.
type ValueFn func(rng *rand.Rand) int64

// DefaultValueFn always returns DefaultValue.
// Complexity: O(1). Never panics.
func DefaultValueFn(_ *rand.Rand) int64 {
	return DefaultValue
}

// ConstantValueFn returns a ValueFn that always yields v.
// Panics if v == 0, since a zero entry is never stored.
func ConstantValueFn(v int64) ValueFn {
	if v == 0 {
		panic("ConstantValueFn: value must be non-zero")
	}
	return func(_ *rand.Rand) int64 {
		return v
	}
}

// UniformValueFn returns a ValueFn sampling uniformly from the non-zero
// integers in [min, max]. Panics if max < min or the interval is {0}.
// If rng is nil, yields DefaultValue to keep a deterministic fallback.
// Complexity: O(1).
func UniformValueFn(min, max int64) ValueFn {
	if max < min || (min == 0 && max == 0) {
		panic(fmt.Sprintf("UniformValueFn: require min ≤ max and [min,max] ≠ {0}, got min=%d, max=%d", min, max))
	}

	span := max - min + 1
	spansZero := min <= 0 && max >= 0
	if spansZero {
		span-- // zero is excluded from the draw
	}
	return func(rng *rand.Rand) int64 {
		if rng == nil {
			return DefaultValue
		}
		v := min + rng.Int63n(span)
		if spansZero && v >= 0 {
			v++ // skip over 0
		}
		return v
	}
}
