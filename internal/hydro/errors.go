package hydro

import "errors"

// Domain errors for the hydrodynamic evaluator.
var (
	// ErrInvalidConfiguration indicates parameters that violate a model
	// invariant (damping-matrix count, non-positive weight or buoyancy,
	// malformed matrices). The stored configuration is left unchanged.
	ErrInvalidConfiguration = errors.New("hydro: invalid configuration")

	// ErrInvalidInput indicates a velocity, control-input or acceleration
	// vector carrying a NaN component, i.e. unset sensor or command data
	// upstream. Evaluation is aborted before any computation.
	ErrInvalidInput = errors.New("hydro: invalid input")
)
