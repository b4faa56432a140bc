// Package hyperbolic builds cosh, sinh, tanh and their inverses for
// arbitrary-precision Values out of the exp, ln, sqrt, and arithmetic
// primitives, since the underlying decimal offers no native hyperbolics.
//
// Every function evaluates under its operand's Context and never touches the
// package default. Acosh and Atanh validate their domains and report
// ErrDomain instead of returning an unrelated magnitude; callers wanting a
// non-failing variant wrap the call themselves.
//
// Building on exp/ln/sqrt costs accuracy near the domain edges. Tanh
// saturates toward ±1 at large |x|, so Atanh(Tanh(x)) loses roughly
// 2|x|/ln(10) digits to the cancellation in 1-x. Acosh near x = 1 loses
// about half the digits of x-1 to the cancellation inside sqrt(x²-1). Away
// from those edges results stay within a few ulps of the configured
// precision; at 60 digits the cosh²-sinh² identity holds to 1e-50 and the
// inverse round trips to 1e-45 over their tested ranges.
package hyperbolic

import (
	"errors"
	"fmt"

	"github.com/skorva/relcalc/internal/decimal"
)

// ErrDomain indicates an inverse hyperbolic function called outside its valid
// domain.
var ErrDomain = errors.New("hyperbolic: argument outside the function's domain")

// Cosh returns (e^x + e^-x) / 2.
func Cosh(x decimal.Value) decimal.Value {
	if x.Err() != nil {
		return x
	}
	ex := x.Exp()
	enx := x.Neg().Exp()
	return ex.Add(enx).Div(x.Context().FromInt64(2))
}

// Sinh returns (e^x - e^-x) / 2.
func Sinh(x decimal.Value) decimal.Value {
	if x.Err() != nil {
		return x
	}
	ex := x.Exp()
	enx := x.Neg().Exp()
	return ex.Sub(enx).Div(x.Context().FromInt64(2))
}

// Tanh returns (e^x - e^-x) / (e^x + e^-x). This form is used consistently;
// the 1 - 2/(e^2x + 1) variant rounds differently at finite precision.
func Tanh(x decimal.Value) decimal.Value {
	if x.Err() != nil {
		return x
	}
	ex := x.Exp()
	enx := x.Neg().Exp()
	return ex.Sub(enx).Div(ex.Add(enx))
}

// Acosh returns ln(x + sqrt(x² - 1)), defined for x >= 1.
func Acosh(x decimal.Value) (decimal.Value, error) {
	if err := x.Err(); err != nil {
		return decimal.Value{}, err
	}
	one := x.Context().FromInt64(1)
	if x.Cmp(one) < 0 {
		return decimal.Value{}, fmt.Errorf("%w: acosh(%s), need x >= 1", ErrDomain, x)
	}
	y := x.Add(x.Mul(x).Sub(one).Sqrt()).Ln()
	return y, y.Err()
}

// Asinh returns ln(x + sqrt(x² + 1)), defined for all x.
func Asinh(x decimal.Value) decimal.Value {
	if x.Err() != nil {
		return x
	}
	one := x.Context().FromInt64(1)
	return x.Add(x.Mul(x).Add(one).Sqrt()).Ln()
}

// Atanh returns ln((1 + x) / (1 - x)) / 2, defined for -1 < x < 1.
func Atanh(x decimal.Value) (decimal.Value, error) {
	if err := x.Err(); err != nil {
		return decimal.Value{}, err
	}
	one := x.Context().FromInt64(1)
	if x.Abs().Cmp(one) >= 0 {
		return decimal.Value{}, fmt.Errorf("%w: atanh(%s), need |x| < 1", ErrDomain, x)
	}
	y := one.Add(x).Div(one.Sub(x)).Ln().Div(x.Context().FromInt64(2))
	return y, y.Err()
}
