// Package maneuver composes single-phase relativistic formulas into
// two-phase trajectories. The flip-and-burn maneuver accelerates to the
// midpoint and decelerates mirror-image to arrive at rest; under that
// symmetry each half is the time-reverse of the other, so the composer
// computes one half and doubles.
//
// Precision loss compounds across the call chain here (the midpoint proper
// time feeds back into the velocity and coordinate-time formulas), which is
// why every step runs under the one Context carried by the engine rather
// than re-deriving a context per call.
package maneuver

import (
	"errors"
	"fmt"

	"github.com/skorva/relcalc/internal/decimal"
	"github.com/skorva/relcalc/internal/physics"
)

// ErrNonPositiveDistance indicates a maneuver over a zero or negative
// distance.
var ErrNonPositiveDistance = errors.New("maneuver: distance must be positive")

// Result holds the outcome of a flip-and-burn maneuver. Value type,
// immutable.
type Result struct {
	ProperTime   decimal.Value // s, shipboard, both phases
	PeakVelocity decimal.Value // m/s, at the flip
	PeakLorentz  decimal.Value // γ at the flip
	CoordTime    decimal.Value // s, stationary frame, both phases
}

// FallResult holds the outcome of a single constant-acceleration burn over a
// fixed distance.
type FallResult struct {
	ProperTime     decimal.Value // s, shipboard
	CoordTime      decimal.Value // s, stationary frame
	ImpactVelocity decimal.Value // m/s on arrival
}

// FlipAndBurn computes a two-phase accelerate/decelerate trajectory over
// dist meters at constant proper acceleration accel: proper time to the
// midpoint via the inverse distance formula, midpoint coordinate time,
// velocity, and Lorentz factor, with both times doubled for the symmetric
// deceleration phase. Requires accel != 0 and dist > 0.
func FlipAndBurn(rel *physics.Relativity, accel, dist decimal.Value) (Result, error) {
	dist = dist.WithContext(rel.Context())
	if err := dist.Err(); err != nil {
		return Result{}, err
	}
	if dist.Sign() <= 0 {
		return Result{}, fmt.Errorf("%w: %s m", ErrNonPositiveDistance, dist)
	}

	two := rel.Context().FromInt64(2)
	halfProper, err := rel.RelativisticTimeForDistance(accel, dist.Div(two))
	if err != nil {
		return Result{}, err
	}
	halfCoord, err := rel.CoordinateTime(accel, halfProper)
	if err != nil {
		return Result{}, err
	}
	peak, err := rel.RelativisticVelocity(accel, halfProper)
	if err != nil {
		return Result{}, err
	}
	lorentz, err := rel.LorentzFactor(peak)
	if err != nil {
		return Result{}, err
	}
	return Result{
		ProperTime:   halfProper.Mul(two),
		PeakVelocity: peak,
		PeakLorentz:  lorentz,
		CoordTime:    halfCoord.Mul(two),
	}, nil
}

// Fall computes a single constant-acceleration burn over dist meters:
// proper time, coordinate time, and the velocity on arrival. It ignores
// altitude-dependent gravity and drag. Requires accel != 0 and dist > 0.
func Fall(rel *physics.Relativity, accel, dist decimal.Value) (FallResult, error) {
	dist = dist.WithContext(rel.Context())
	if err := dist.Err(); err != nil {
		return FallResult{}, err
	}
	if dist.Sign() <= 0 {
		return FallResult{}, fmt.Errorf("%w: %s m", ErrNonPositiveDistance, dist)
	}

	tau, err := rel.RelativisticTimeForDistance(accel, dist)
	if err != nil {
		return FallResult{}, err
	}
	coord, err := rel.CoordinateTime(accel, tau)
	if err != nil {
		return FallResult{}, err
	}
	velocity, err := rel.RelativisticVelocity(accel, tau)
	if err != nil {
		return FallResult{}, err
	}
	return FallResult{ProperTime: tau, CoordTime: coord, ImpactVelocity: velocity}, nil
}
