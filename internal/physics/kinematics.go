package physics

import (
	"fmt"

	"github.com/skorva/relcalc/internal/decimal"
	"github.com/skorva/relcalc/internal/hyperbolic"
)

// RapidityFromVelocity returns atanh(v/c), the additive velocity parameter.
// Requires |v| < c.
func (r *Relativity) RapidityFromVelocity(v decimal.Value) (decimal.Value, error) {
	v = r.ensure(v)
	if err := r.checkVelocity(v); err != nil {
		return decimal.Value{}, err
	}
	phi, err := hyperbolic.Atanh(v.Div(r.C))
	if err != nil {
		return decimal.Value{}, err
	}
	return phi, phi.Err()
}

// VelocityFromRapidity returns c·tanh(φ). No finite rapidity maps to c, so a
// result at or above c is reported as ErrPrecisionInsufficient.
func (r *Relativity) VelocityFromRapidity(phi decimal.Value) (decimal.Value, error) {
	v := r.C.Mul(hyperbolic.Tanh(r.ensure(phi)))
	if err := v.Err(); err != nil {
		return decimal.Value{}, err
	}
	if v.Abs().Cmp(r.C) >= 0 {
		return decimal.Value{}, fmt.Errorf("%w: rapidity %s", ErrPrecisionInsufficient, phi)
	}
	return v, nil
}

// LorentzFactor returns γ = 1 / sqrt(1 - (v/c)²). Requires |v| < c.
func (r *Relativity) LorentzFactor(v decimal.Value) (decimal.Value, error) {
	v = r.ensure(v)
	if err := r.checkVelocity(v); err != nil {
		return decimal.Value{}, err
	}
	beta := v.Div(r.C)
	gamma := r.one.Div(r.one.Sub(beta.Mul(beta)).Sqrt())
	return gamma, gamma.Err()
}

// AddVelocities composes two velocities relativistically:
// (v1 + v2) / (1 + v1·v2/c²). Both inputs must satisfy |v| < c.
func (r *Relativity) AddVelocities(v1, v2 decimal.Value) (decimal.Value, error) {
	v1, v2 = r.ensure(v1), r.ensure(v2)
	if err := r.checkVelocity(v1); err != nil {
		return decimal.Value{}, err
	}
	if err := r.checkVelocity(v2); err != nil {
		return decimal.Value{}, err
	}
	sum := v1.Add(v2).Div(r.one.Add(v1.Mul(v2).Div(r.CSquared)))
	return sum, sum.Err()
}

// RelativisticVelocity returns the velocity c·tanh(aτ/c) reached after proper
// time tau under constant proper acceleration a. Signs are dropped; the
// magnitude of the burn is what matters.
func (r *Relativity) RelativisticVelocity(accel, tau decimal.Value) (decimal.Value, error) {
	accel, tau = r.ensureAbs(accel), r.ensureAbs(tau)
	v := r.C.Mul(hyperbolic.Tanh(accel.Mul(tau).Div(r.C)))
	return v, v.Err()
}

// RelativisticDistance returns the coordinate distance
// (c²/a)(cosh(aτ/c) - 1) covered after proper time tau at constant proper
// acceleration a. Requires a != 0.
func (r *Relativity) RelativisticDistance(accel, tau decimal.Value) (decimal.Value, error) {
	accel, tau = r.ensureAbs(accel), r.ensureAbs(tau)
	if err := accel.Err(); err != nil {
		return decimal.Value{}, err
	}
	if accel.IsZero() {
		return decimal.Value{}, ErrDivideByZero
	}
	d := r.CSquared.Div(accel).Mul(hyperbolic.Cosh(accel.Mul(tau).Div(r.C)).Sub(r.one))
	return d, d.Err()
}

// RelativisticTimeForDistance inverts RelativisticDistance: the proper time
// (c/a)·acosh(a·d/c² + 1) needed to cover coordinate distance d at constant
// proper acceleration a. Requires a != 0.
func (r *Relativity) RelativisticTimeForDistance(accel, dist decimal.Value) (decimal.Value, error) {
	accel, dist = r.ensureAbs(accel), r.ensureAbs(dist)
	if err := accel.Err(); err != nil {
		return decimal.Value{}, err
	}
	if accel.IsZero() {
		return decimal.Value{}, ErrDivideByZero
	}
	arg, err := hyperbolic.Acosh(dist.Mul(accel).Div(r.CSquared).Add(r.one))
	if err != nil {
		return decimal.Value{}, err
	}
	tau := r.C.Div(accel).Mul(arg)
	return tau, tau.Err()
}

// CoordinateTime returns the stationary-frame time (c/a)·sinh(aτ/c) elapsed
// while the traveler ages by proper time tau. Requires a != 0.
func (r *Relativity) CoordinateTime(accel, tau decimal.Value) (decimal.Value, error) {
	accel, tau = r.ensure(accel), r.ensure(tau)
	if err := accel.Err(); err != nil {
		return decimal.Value{}, err
	}
	if accel.IsZero() {
		return decimal.Value{}, ErrDivideByZero
	}
	t := r.C.Div(accel).Mul(hyperbolic.Sinh(accel.Mul(tau).Div(r.C)))
	return t, t.Err()
}

// TauToVelocity returns the proper time (c/a)·atanh(v/c) needed to reach
// velocity v at constant proper acceleration a. Requires a != 0 and |v| < c.
func (r *Relativity) TauToVelocity(accel, v decimal.Value) (decimal.Value, error) {
	accel, v = r.ensure(accel), r.ensure(v)
	if err := accel.Err(); err != nil {
		return decimal.Value{}, err
	}
	if accel.IsZero() {
		return decimal.Value{}, ErrDivideByZero
	}
	if err := r.checkVelocity(v); err != nil {
		return decimal.Value{}, err
	}
	arg, err := hyperbolic.Atanh(v.Div(r.C))
	if err != nil {
		return decimal.Value{}, err
	}
	tau := r.C.Div(accel).Mul(arg)
	return tau, tau.Err()
}

// RelativisticVelocityCoord returns the velocity
// (a·t) / sqrt(1 + (a·t/c)²) after coordinate time t at constant proper
// acceleration a.
func (r *Relativity) RelativisticVelocityCoord(accel, t decimal.Value) (decimal.Value, error) {
	accel, t = r.ensure(accel), r.ensure(t)
	at := accel.Mul(t)
	atc := at.Div(r.C)
	v := at.Div(r.one.Add(atc.Mul(atc)).Sqrt())
	return v, v.Err()
}

// RelativisticDistanceCoord returns the coordinate distance
// (c²/a)(sqrt(1 + (a·t/c)²) - 1) after coordinate time t at constant proper
// acceleration a. Requires a != 0.
func (r *Relativity) RelativisticDistanceCoord(accel, t decimal.Value) (decimal.Value, error) {
	accel, t = r.ensure(accel), r.ensure(t)
	if err := accel.Err(); err != nil {
		return decimal.Value{}, err
	}
	if accel.IsZero() {
		return decimal.Value{}, ErrDivideByZero
	}
	atc := accel.Mul(t).Div(r.C)
	d := r.CSquared.Div(accel).Mul(r.one.Add(atc.Mul(atc)).Sqrt().Sub(r.one))
	return d, d.Err()
}

// SimpleDistance returns the non-relativistic distance half·a·t², kept for
// comparing against the relativistic formulas at low speeds.
func (r *Relativity) SimpleDistance(accel, t decimal.Value) (decimal.Value, error) {
	accel, t = r.ensure(accel), r.ensure(t)
	d := r.half.Mul(accel).Mul(t.Mul(t))
	return d, d.Err()
}

// LengthContraction returns len·sqrt(1 - (v/c)²), the contracted length of a
// proper length seen at velocity v. Requires |v| < c.
func (r *Relativity) LengthContraction(length, v decimal.Value) (decimal.Value, error) {
	length, v = r.ensure(length), r.ensure(v)
	if err := r.checkVelocity(v); err != nil {
		return decimal.Value{}, err
	}
	beta := v.Div(r.C)
	l := length.Mul(r.one.Sub(beta.Mul(beta)).Sqrt())
	return l, l.Err()
}

// DopplerShift returns the observed frequency f·sqrt((1±β)/(1∓β)) for light
// emitted at frequency f by a source moving at velocity v; approaching
// selects the blueshifted sign. Requires |v| < c.
func (r *Relativity) DopplerShift(freq, v decimal.Value, approaching bool) (decimal.Value, error) {
	freq, v = r.ensure(freq), r.ensure(v)
	if err := r.checkVelocity(v); err != nil {
		return decimal.Value{}, err
	}
	beta := v.Div(r.C)
	num, den := r.one.Add(beta), r.one.Sub(beta)
	if !approaching {
		num, den = den, num
	}
	f := freq.Mul(num.Div(den).Sqrt())
	return f, f.Err()
}
