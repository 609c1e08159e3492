package spectral

import "errors"

// Domain errors for spectral computations.
var (
	// ErrNoConvergence indicates the symmetric eigensolver failed to converge.
	ErrNoConvergence = errors.New("spectral: eigendecomposition did not converge")

	// ErrIndexRange indicates a spectrum index outside [0, Len).
	ErrIndexRange = errors.New("spectral: eigenpair index out of range")
)
