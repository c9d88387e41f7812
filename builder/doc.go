// Package builder generates sparse matrix fixtures with functional options:
// random sparse fill, identity/diagonal patterns and dense row literals.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds the RNG and the value generator.
//   - Constructors (composable, applied in order by BuildMatrix):
//     – RandomSparse(p):   each cell independently with probability p.
//     – Identity():        ones on the main diagonal.
//     – Diagonal(vs...):   given values on the main diagonal.
//     – FromRows(rows):    copy of a dense row-major literal.
//   - Value distributions (ValueFn implementations):
//     – DefaultValueFn:    constant DefaultValue.
//     – ConstantValueFn:   fixed non-zero value.
//     – UniformValueFn:    uniform over [min,max] without 0.
//
// Guarantees:
//
//   - Determinism: same shape, options, seed and constructor order ⇒ identical matrices.
//   - Fast-fail on nonsensical option parameters via panics in option constructors.
//   - Constructors return sentinel errors wrapped with their method name; they never panic.
package builder

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'sparsemat'.
func tracer() tracing.Trace {
	return tracing.Select("sparsemat")
}
