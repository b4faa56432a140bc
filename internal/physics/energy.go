package physics

import "github.com/skorva/relcalc/internal/decimal"

// FourMomentum is the (energy, momentum) pair of a particle's relativistic
// momentum-energy state. Value type; no lifecycle beyond scope exit.
type FourMomentum struct {
	Energy   decimal.Value // joules
	Momentum decimal.Value // kg·m/s
}

// Momentum returns the relativistic momentum m·v·γ. Requires |v| < c.
func (r *Relativity) Momentum(mass, v decimal.Value) (decimal.Value, error) {
	mass, v = r.ensure(mass), r.ensure(v)
	gamma, err := r.LorentzFactor(v)
	if err != nil {
		return decimal.Value{}, err
	}
	p := mass.Mul(v).Mul(gamma)
	return p, p.Err()
}

// Energy returns the total relativistic energy m·c²·γ. Requires |v| < c.
func (r *Relativity) Energy(mass, v decimal.Value) (decimal.Value, error) {
	mass, v = r.ensure(mass), r.ensure(v)
	gamma, err := r.LorentzFactor(v)
	if err != nil {
		return decimal.Value{}, err
	}
	e := mass.Mul(r.CSquared).Mul(gamma)
	return e, e.Err()
}

// NewFourMomentum returns (m·c²·γ, m·v·γ) for a particle of rest mass m at
// velocity v. Requires |v| < c.
func (r *Relativity) NewFourMomentum(mass, v decimal.Value) (FourMomentum, error) {
	mass, v = r.ensure(mass), r.ensure(v)
	gamma, err := r.LorentzFactor(v)
	if err != nil {
		return FourMomentum{}, err
	}
	energy := mass.Mul(r.CSquared).Mul(gamma)
	momentum := mass.Mul(v).Mul(gamma)
	if err := energy.Err(); err != nil {
		return FourMomentum{}, err
	}
	if err := momentum.Err(); err != nil {
		return FourMomentum{}, err
	}
	return FourMomentum{Energy: energy, Momentum: momentum}, nil
}

// InvariantMass returns sqrt((E/c²)² - (p/c)²), the rest mass of a system
// with total energy E and total momentum p. When E < p·c the radicand is
// negative and the result is NaN; that is the documented answer for an
// unphysical pair, not an error.
func (r *Relativity) InvariantMass(energy, momentum decimal.Value) decimal.Value {
	energy, momentum = r.ensure(energy), r.ensure(momentum)
	ec := energy.Div(r.CSquared)
	pc := momentum.Div(r.C)
	radicand := ec.Mul(ec).Sub(pc.Mul(pc))
	if radicand.Err() != nil {
		return radicand
	}
	if radicand.Sign() < 0 {
		return r.ctx.NaN()
	}
	return radicand.Sqrt()
}
