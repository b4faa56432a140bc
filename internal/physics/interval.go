package physics

import "github.com/skorva/relcalc/internal/decimal"

// Event is a spacetime event with one spatial coordinate: time in seconds,
// position in meters.
type Event struct {
	T decimal.Value
	X decimal.Value
}

// Event3D is a spacetime event with three spatial coordinates.
type Event3D struct {
	T decimal.Value
	X decimal.Value
	Y decimal.Value
	Z decimal.Value
}

// IntervalKind classifies a separation by the sign of the squared interval
// c²Δt² - ΣΔxᵢ².
type IntervalKind int

const (
	Timelike  IntervalKind = iota // positive: causally connectable, massive
	Lightlike                     // zero: connected only at light speed
	Spacelike                     // negative: not causally connected
)

func (k IntervalKind) String() string {
	switch k {
	case Timelike:
		return "timelike"
	case Lightlike:
		return "lightlike"
	default:
		return "spacelike"
	}
}

// Classify reports the kind of a squared interval (the radicand, before any
// root is taken).
func Classify(squared decimal.Value) IntervalKind {
	switch {
	case squared.Sign() > 0:
		return Timelike
	case squared.IsZero():
		return Lightlike
	default:
		return Spacelike
	}
}

// IntervalSquared1D returns c²Δt² - Δx², the squared invariant interval
// between two events. Callers distinguish timelike from spacelike by this
// sign before taking a root.
func (r *Relativity) IntervalSquared1D(a, b Event) decimal.Value {
	dt := r.ensure(b.T).Sub(r.ensure(a.T))
	dx := r.ensure(b.X).Sub(r.ensure(a.X))
	return r.CSquared.Mul(dt.Mul(dt)).Sub(dx.Mul(dx))
}

// IntervalSquared3D returns c²Δt² - Δx² - Δy² - Δz².
func (r *Relativity) IntervalSquared3D(a, b Event3D) decimal.Value {
	dt := r.ensure(b.T).Sub(r.ensure(a.T))
	dx := r.ensure(b.X).Sub(r.ensure(a.X))
	dy := r.ensure(b.Y).Sub(r.ensure(a.Y))
	dz := r.ensure(b.Z).Sub(r.ensure(a.Z))
	return r.CSquared.Mul(dt.Mul(dt)).Sub(dx.Mul(dx)).Sub(dy.Mul(dy)).Sub(dz.Mul(dz))
}

// SpacetimeInterval1D returns sqrt(c²Δt² - Δx²). A spacelike separation has a
// negative radicand and yields NaN; deliberately not an error, since callers
// classify first with IntervalSquared1D and Classify.
func (r *Relativity) SpacetimeInterval1D(a, b Event) decimal.Value {
	return r.intervalRoot(r.IntervalSquared1D(a, b))
}

// SpacetimeInterval3D returns sqrt(c²Δt² - Δx² - Δy² - Δz²), NaN when the
// separation is spacelike.
func (r *Relativity) SpacetimeInterval3D(a, b Event3D) decimal.Value {
	return r.intervalRoot(r.IntervalSquared3D(a, b))
}

func (r *Relativity) intervalRoot(squared decimal.Value) decimal.Value {
	if squared.Err() != nil {
		return squared
	}
	if squared.Sign() < 0 {
		return r.ctx.NaN()
	}
	return squared.Sqrt()
}
