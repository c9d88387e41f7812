// Package builder defines shared constants used by matrix constructors.
package builder

// Method name constants used to prefix errors with the constructor name.
const (
	MethodBuildMatrix  = "BuildMatrix"
	MethodRandomSparse = "RandomSparse"
	MethodIdentity     = "Identity"
	MethodDiagonal     = "Diagonal"
	MethodFromRows     = "FromRows"
)

// Density domain for RandomSparse.
const (
	MinDensity = 0.0
	MaxDensity = 1.0
)

// DefaultValue is the entry value produced when no ValueFn is configured.
const DefaultValue int64 = 1
