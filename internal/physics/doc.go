// Package physics implements special-relativity formulas at arbitrary
// precision: rapidity, Lorentz factor, constant-proper-acceleration motion,
// velocity addition, Doppler shift, four-momentum, invariant mass, and
// spacetime intervals.
//
// A [Relativity] engine instantiates the physical constants (c, c², standard
// gravity, light-year, astronomical unit, seconds per year) at one Context's
// precision, and every formula re-rounds its inputs under that same Context,
// so a multi-step derivation never mixes precisions.
//
// Formulas whose physical validity requires |v| < c all go through one shared
// velocity check and report [ErrVelocityExceedsC]; none of them returns a NaN
// sentinel for that violation. [Relativity.InvariantMass] and the spacetime
// intervals are the deliberate exception the other way: a negative radicand
// is a legitimate physical case (spacelike separation), so they return NaN
// and callers classify with [Classify] before taking the root seriously.
package physics
