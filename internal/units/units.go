// Package units carries quantity kinds and unit conversions at the
// engine's precision. Each quantity is a distinct type over decimal.Value so
// a length cannot be handed to something expecting a time; there is no unit
// algebra beyond that, just the conversions the calculator needs (days and
// years to seconds, light-years and astronomical units to meters, multiples
// of standard gravity to m/s²).
package units

import (
	"errors"
	"fmt"

	"github.com/skorva/relcalc/internal/decimal"
	"github.com/skorva/relcalc/internal/physics"
)

// ErrFractionOfC indicates a fraction of the speed of light at or beyond 1.
var ErrFractionOfC = errors.New("units: fraction of c must satisfy |f| < 1")

// Quantity kinds. Wrapping prevents accidental mixing; unwrap with Value
// when handing a quantity to a formula.
type (
	Time         decimal.Value
	Length       decimal.Value
	Velocity     decimal.Value
	Acceleration decimal.Value
	Mass         decimal.Value
	Energy       decimal.Value
	Momentum     decimal.Value
	Frequency    decimal.Value
)

func (t Time) Value() decimal.Value         { return decimal.Value(t) }
func (l Length) Value() decimal.Value       { return decimal.Value(l) }
func (v Velocity) Value() decimal.Value     { return decimal.Value(v) }
func (a Acceleration) Value() decimal.Value { return decimal.Value(a) }
func (m Mass) Value() decimal.Value         { return decimal.Value(m) }
func (e Energy) Value() decimal.Value       { return decimal.Value(e) }
func (p Momentum) Value() decimal.Value     { return decimal.Value(p) }
func (f Frequency) Value() decimal.Value    { return decimal.Value(f) }

const secondsPerDay = 86400

// Seconds tags a plain value as a time in seconds.
func Seconds(v decimal.Value) Time { return Time(v) }

// Days converts days to seconds.
func Days(v decimal.Value) Time {
	return Time(v.Mul(v.Context().FromInt64(secondsPerDay)))
}

// Years converts Julian years to seconds.
func Years(v decimal.Value) Time {
	return Time(v.Mul(v.Context().MustParse(physics.SecondsPerYear)))
}

// Meters tags a plain value as a length in meters.
func Meters(v decimal.Value) Length { return Length(v) }

// LightYears converts light-years to meters.
func LightYears(v decimal.Value) Length {
	return Length(v.Mul(v.Context().MustParse(physics.MetersPerLightYear)))
}

// AU converts astronomical units to meters.
func AU(v decimal.Value) Length {
	return Length(v.Mul(v.Context().MustParse(physics.MetersPerAU)))
}

// MetersPerSecond tags a plain value as a velocity.
func MetersPerSecond(v decimal.Value) Velocity { return Velocity(v) }

// FractionOfC converts a fraction of the speed of light to a velocity in
// m/s. The fraction must satisfy |f| < 1.
func FractionOfC(v decimal.Value) (Velocity, error) {
	if err := v.Err(); err != nil {
		return Velocity{}, err
	}
	one := v.Context().FromInt64(1)
	if v.Abs().Cmp(one) >= 0 {
		return Velocity{}, fmt.Errorf("%w: got %s", ErrFractionOfC, v)
	}
	return Velocity(v.Mul(v.Context().MustParse(physics.SpeedOfLight))), nil
}

// AsFractionOfC reports a velocity as a fraction of the speed of light.
func (v Velocity) AsFractionOfC() decimal.Value {
	val := v.Value()
	return val.Div(val.Context().MustParse(physics.SpeedOfLight))
}

// MetersPerSecondSquared tags a plain value as an acceleration.
func MetersPerSecondSquared(v decimal.Value) Acceleration { return Acceleration(v) }

// Gravities converts multiples of standard gravity to m/s².
func Gravities(v decimal.Value) Acceleration {
	return Acceleration(v.Mul(v.Context().MustParse(physics.StandardGravity)))
}

// Kilograms tags a plain value as a mass.
func Kilograms(v decimal.Value) Mass { return Mass(v) }

// Joules tags a plain value as an energy.
func Joules(v decimal.Value) Energy { return Energy(v) }

// KilogramMetersPerSecond tags a plain value as a momentum.
func KilogramMetersPerSecond(v decimal.Value) Momentum { return Momentum(v) }

// Hertz tags a plain value as a frequency.
func Hertz(v decimal.Value) Frequency { return Frequency(v) }

// InYears reports a time in Julian years.
func (t Time) InYears() decimal.Value {
	val := t.Value()
	return val.Div(val.Context().MustParse(physics.SecondsPerYear))
}

// InDays reports a time in days.
func (t Time) InDays() decimal.Value {
	val := t.Value()
	return val.Div(val.Context().FromInt64(secondsPerDay))
}

// InLightYears reports a length in light-years.
func (l Length) InLightYears() decimal.Value {
	val := l.Value()
	return val.Div(val.Context().MustParse(physics.MetersPerLightYear))
}
