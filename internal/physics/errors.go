package physics

import "errors"

// Domain errors for relativistic formulas.
var (
	// ErrVelocityExceedsC indicates a velocity input at or above the speed
	// of light.
	ErrVelocityExceedsC = errors.New("physics: velocity must be less than the speed of light")

	// ErrPrecisionInsufficient indicates a derived velocity that reached c
	// only because the configured precision was too coarse to resolve it
	// below c. No finite rapidity maps to c; this is a numerical artifact,
	// not an invalid physical input.
	ErrPrecisionInsufficient = errors.New("physics: precision too coarse to resolve velocity below c")

	// ErrDivideByZero indicates zero proper acceleration supplied to a
	// formula that divides by it.
	ErrDivideByZero = errors.New("physics: proper acceleration must be non-zero")
)
