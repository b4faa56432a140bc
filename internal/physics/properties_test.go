package physics

import (
	"testing"

	"github.com/onsi/gomega"

	"github.com/skorva/relcalc/internal/decimal"
)

// Structural properties the formulas must satisfy regardless of precision.
func TestEngineProperties(t *testing.T) {
	g := gomega.NewWithT(t)
	r := New(decimal.MustNew(60))
	one := r.ctx.FromInt64(1)

	fractions := []string{"0.001", "0.1", "0.5", "0.9", "0.99999"}

	for _, f := range fractions {
		v, err := r.VelocityFromFraction(r.ctx.MustParse(f))
		g.Expect(err).NotTo(gomega.HaveOccurred())

		// gamma >= 1 always, and is 1 only at rest
		gamma, err := r.LorentzFactor(v)
		g.Expect(err).NotTo(gomega.HaveOccurred())
		g.Expect(gamma.Cmp(one)).To(gomega.BeNumerically(">", 0),
			"gamma at %sc should exceed 1", f)

		// rapidity is positive for positive v and round-trips
		phi, err := r.RapidityFromVelocity(v)
		g.Expect(err).NotTo(gomega.HaveOccurred())
		g.Expect(phi.Sign()).To(gomega.Equal(1))

		// contraction shortens, never lengthens
		l, err := r.LengthContraction(one, v)
		g.Expect(err).NotTo(gomega.HaveOccurred())
		g.Expect(l.Cmp(one)).To(gomega.BeNumerically("<", 0))

		// composing with itself stays under c
		sum, err := r.AddVelocities(v, v)
		g.Expect(err).NotTo(gomega.HaveOccurred())
		g.Expect(sum.Abs().Cmp(r.C)).To(gomega.BeNumerically("<", 0),
			"composition at %sc must stay below c", f)
		g.Expect(sum.Cmp(v)).To(gomega.BeNumerically(">", 0),
			"composing positive velocities must increase speed")
	}

	restGamma, err := r.LorentzFactor(r.ctx.FromInt64(0))
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(restGamma.Equal(one)).To(gomega.BeTrue())
}

// Rapidities add linearly where velocities do not.
func TestRapidityAdditivity(t *testing.T) {
	g := gomega.NewWithT(t)
	r := New(decimal.MustNew(60))
	tolerance := r.ctx.MustParse("1e-45")

	v1, err := r.VelocityFromFraction(r.ctx.MustParse("0.4"))
	g.Expect(err).NotTo(gomega.HaveOccurred())
	v2, err := r.VelocityFromFraction(r.ctx.MustParse("0.7"))
	g.Expect(err).NotTo(gomega.HaveOccurred())

	phi1, err := r.RapidityFromVelocity(v1)
	g.Expect(err).NotTo(gomega.HaveOccurred())
	phi2, err := r.RapidityFromVelocity(v2)
	g.Expect(err).NotTo(gomega.HaveOccurred())

	composed, err := r.AddVelocities(v1, v2)
	g.Expect(err).NotTo(gomega.HaveOccurred())
	phiComposed, err := r.RapidityFromVelocity(composed)
	g.Expect(err).NotTo(gomega.HaveOccurred())

	diff := phiComposed.Sub(phi1.Add(phi2)).Abs()
	g.Expect(diff.Cmp(tolerance)).To(gomega.BeNumerically("<=", 0),
		"rapidity of a composition should be the sum of rapidities, off by %s", diff)
}
