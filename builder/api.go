// SPDX-License-Identifier: MIT
// Package: sparsemat/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildMatrix(rows, cols, bopts, cons...). Creates m, resolves cfg, runs cons in order.
//   - All public factories are declared here, implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical matrices.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sparsemat/sparse"
)

// Constructor applies a deterministic mutation to m using the resolved
// builderConfig. Constructors MUST validate parameters early, return sentinel
// errors and write only through m.Set, so later constructors overwrite earlier ones.
type Constructor func(m *sparse.Matrix, cfg builderConfig) error

// BuildMatrix creates an empty rows×cols matrix, resolves the builder
// configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildMatrix: %w" and returned
// immediately; the partially built matrix is discarded.
//
// Errors:
//   - sparse.ErrInvalidDimensions for rows<=0 or cols<=0.
//   - ErrConstructFailed for a nil constructor.
//   - Any constructor sentinel (ErrInvalidDensity, ErrNeedRandSource, ErrShape).
func BuildMatrix(rows, cols int, bopts []BuilderOption, cons ...Constructor) (*sparse.Matrix, error) {
	m, err := sparse.New(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuildMatrix, err)
	}

	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", MethodBuildMatrix, i, ErrConstructFailed)
		}
		if err = fn(m, cfg); err != nil {
			tracer().Errorf("builder: constructor %d: %v", i, err)
			return nil, fmt.Errorf("%s: %w", MethodBuildMatrix, err)
		}
	}

	tracer().Debugf("builder: %dx%d from %d constructors, nnz=%d", rows, cols, len(cons), m.NNZ())
	return m, nil
}
