// SPDX-License-Identifier: MIT
// Package: sparsemat/builder
//
// impl_random_sparse.go - implementation of RandomSparse(p).
//
// Canonical model:
//   - Bernoulli fill: include each cell (i,j) independently with probability p.
//   - Included cells receive cfg.valueFn(cfg.rng); a 0 draw leaves the cell as is.
//
// Contract:
//   - 0 ≤ p ≤ 1 (else ErrInvalidDensity).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Complexity:
//   - Time: O(rows·cols) trials + O(nnz · (log nnz)) inserts (appends in row-major order).
//
// Determinism:
//   - Stable trial order: i asc, then j asc.

package builder

import (
	"github.com/katalvlaran/sparsemat/sparse"
)

// RandomSparse returns a Constructor that fills each cell with probability p.
func RandomSparse(p float64) Constructor {
	return func(m *sparse.Matrix, cfg builderConfig) error {
		if err := validateDensity(MethodRandomSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > MinDensity && p < MaxDensity {
			return builderErrorf(MethodRandomSparse, "rng is required: %w", ErrNeedRandSource)
		}
		if p == MinDensity {
			return nil
		}

		rows, cols := m.Shape()
		rng := cfg.rng
		var i, j int
		for i = 0; i < rows; i++ {
			for j = 0; j < cols; j++ {
				// p == 1 takes every cell without consuming randomness for the trial.
				if p < MaxDensity && rng.Float64() >= p {
					continue
				}
				v := cfg.valueFn(rng)
				if v == 0 {
					continue
				}
				if err := m.Set(i, j, v); err != nil {
					return builderErrorf(MethodRandomSparse, "Set(%d,%d): %w", i, j, err)
				}
			}
		}

		return nil
	}
}
