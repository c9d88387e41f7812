// Package builder provides validation helpers to enforce
// parameter contracts in Constructor factories.
//
// Each function returns a formatted error via builderErrorf
// when its precondition is violated.
package builder

// validateDensity enforces p ∈ [MinDensity, MaxDensity].
// Used by RandomSparse. Returns
// "<Method>: density must be in [0.0,1.0], got <p>: builder: density out of range".
//
// Complexity: O(1) time and space.
func validateDensity(method string, p float64) error {
	if p < MinDensity || p > MaxDensity {
		return builderErrorf(method, "density must be in [%.1f,%.1f], got %f: %w", MinDensity, MaxDensity, p, ErrInvalidDensity)
	}

	return nil
}

// validateFits ensures that n items fit into limit slots of a rows×cols target.
// Used by Diagonal. Returns ErrShape otherwise.
//
// Complexity: O(1) time and space.
func validateFits(method string, n, limit, rows, cols int) error {
	if n > limit {
		return builderErrorf(method, "%d values for a %dx%d matrix (max %d): %w", n, rows, cols, limit, ErrShape)
	}

	return nil
}
