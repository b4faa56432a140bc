package maneuver_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/skorva/relcalc/internal/decimal"
	"github.com/skorva/relcalc/internal/maneuver"
	"github.com/skorva/relcalc/internal/physics"
)

var _ = Describe("FlipAndBurn", func() {
	var (
		rel  *physics.Relativity
		dist decimal.Value
	)

	BeforeEach(func() {
		rel = physics.New(decimal.MustNew(50))
		// Proxima Centauri, roughly
		dist = rel.LightYear.Mul(rel.Context().MustParse("4.2465"))
	})

	It("doubles the half-trajectory times", func() {
		res, err := maneuver.FlipAndBurn(rel, rel.G, dist)
		Expect(err).NotTo(HaveOccurred())

		two := rel.Context().FromInt64(2)
		halfProper, err := rel.RelativisticTimeForDistance(rel.G, dist.Div(two))
		Expect(err).NotTo(HaveOccurred())
		Expect(res.ProperTime.Equal(halfProper.Mul(two))).To(BeTrue())

		halfCoord, err := rel.CoordinateTime(rel.G, halfProper)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.CoordTime.Equal(halfCoord.Mul(two))).To(BeTrue())
	})

	It("peaks below c with a Lorentz factor above one", func() {
		res, err := maneuver.FlipAndBurn(rel, rel.G, dist)
		Expect(err).NotTo(HaveOccurred())

		Expect(res.PeakVelocity.Cmp(rel.C)).To(BeNumerically("<", 0))
		Expect(res.PeakVelocity.Sign()).To(Equal(1))
		Expect(res.PeakLorentz.Cmp(rel.Context().FromInt64(1))).To(BeNumerically(">", 0))
	})

	It("ages the stationary frame faster than the ship", func() {
		res, err := maneuver.FlipAndBurn(rel, rel.G, dist)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.CoordTime.Cmp(res.ProperTime)).To(BeNumerically(">", 0))
	})

	It("takes about three and a half shipboard years to Proxima at one gravity", func() {
		res, err := maneuver.FlipAndBurn(rel, rel.G, dist)
		Expect(err).NotTo(HaveOccurred())

		years := res.ProperTime.Div(rel.SecondsPerYear)
		f, err := years.Float64()
		Expect(err).NotTo(HaveOccurred())
		Expect(f).To(BeNumerically("~", 3.54, 0.1))
	})

	It("rejects non-positive distances", func() {
		zero := rel.Context().FromInt64(0)
		_, err := maneuver.FlipAndBurn(rel, rel.G, zero)
		Expect(err).To(MatchError(maneuver.ErrNonPositiveDistance))

		_, err = maneuver.FlipAndBurn(rel, rel.G, dist.Neg())
		Expect(err).To(MatchError(maneuver.ErrNonPositiveDistance))
	})

	It("surfaces zero acceleration as a divide-by-zero", func() {
		zero := rel.Context().FromInt64(0)
		_, err := maneuver.FlipAndBurn(rel, zero, dist)
		Expect(err).To(MatchError(physics.ErrDivideByZero))
	})
})

var _ = Describe("Fall", func() {
	var rel *physics.Relativity

	BeforeEach(func() {
		rel = physics.New(decimal.MustNew(50))
	})

	It("matches the classical sqrt(2gh) for a short drop", func() {
		drop := rel.Context().FromInt64(1000)
		res, err := maneuver.Fall(rel, rel.G, drop)
		Expect(err).NotTo(HaveOccurred())

		v, err := res.ImpactVelocity.Float64()
		Expect(err).NotTo(HaveOccurred())
		classical := math.Sqrt(2 * 9.80665 * 1000)
		Expect(v).To(BeNumerically("~", classical, 1e-6))

		// times agree at walking pace
		tau, err := res.ProperTime.Float64()
		Expect(err).NotTo(HaveOccurred())
		coord, err := res.CoordTime.Float64()
		Expect(err).NotTo(HaveOccurred())
		Expect(tau).To(BeNumerically("~", coord, 1e-6))
	})

	It("stays below c over an interstellar burn", func() {
		res, err := maneuver.Fall(rel, rel.G, rel.LightYear.Mul(rel.Context().FromInt64(100)))
		Expect(err).NotTo(HaveOccurred())
		Expect(res.ImpactVelocity.Cmp(rel.C)).To(BeNumerically("<", 0))
		Expect(res.CoordTime.Cmp(res.ProperTime)).To(BeNumerically(">", 0))
	})

	It("rejects non-positive distances", func() {
		_, err := maneuver.Fall(rel, rel.G, rel.Context().FromInt64(-5))
		Expect(err).To(MatchError(maneuver.ErrNonPositiveDistance))
	})
})
