package decimal

import (
	"errors"
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// Rounding selects how results that cannot be represented exactly at the
// configured precision are rounded.
type Rounding = apd.Rounder

// Supported rounding rules.
const (
	RoundHalfEven = apd.RoundHalfEven
	RoundHalfUp   = apd.RoundHalfUp
	RoundDown     = apd.RoundDown
	RoundUp       = apd.RoundUp
	RoundFloor    = apd.RoundFloor
	RoundCeiling  = apd.RoundCeiling
)

const (
	// DefaultDigits is the precision of the package default Context.
	DefaultDigits = 50

	// DefaultExponentBound symmetrically bounds the representable decimal
	// exponent. Rocket calculations over millions of light-years produce
	// exponents far beyond the native float64 range, so the default is wide.
	DefaultExponentBound = 100000
)

var (
	// ErrInvalidPrecision indicates a Context built with a non-positive
	// significant-digit count.
	ErrInvalidPrecision = errors.New("decimal: precision must be a positive digit count")

	// ErrMissingOperand indicates arithmetic on a Value that was never given
	// a magnitude (the zero Value).
	ErrMissingOperand = errors.New("decimal: operation on a Value with no magnitude")
)

// Context is an immutable precision policy: significant digits, rounding
// rule, and exponent bound. Build one with New and share it freely.
type Context struct {
	inner  apd.Context
	digits int
}

// Option configures a Context at construction time.
type Option func(*Context)

// WithRounding overrides the default half-even rounding rule.
func WithRounding(r Rounding) Option {
	return func(c *Context) { c.inner.Rounding = r }
}

// WithExponentBound symmetrically bounds the representable exponent at
// ±bound. Must be positive.
func WithExponentBound(bound int32) Option {
	return func(c *Context) {
		c.inner.MaxExponent = bound
		c.inner.MinExponent = -bound
	}
}

// New builds a Context with the given number of significant digits. Returns
// ErrInvalidPrecision for digits <= 0.
func New(digits int, opts ...Option) (*Context, error) {
	if digits <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPrecision, digits)
	}
	c := &Context{
		digits: digits,
		inner: apd.Context{
			Precision:   uint32(digits),
			MaxExponent: DefaultExponentBound,
			MinExponent: -DefaultExponentBound,
			Rounding:    RoundHalfEven,
			Traps: apd.SystemOverflow | apd.SystemUnderflow |
				apd.DivisionByZero | apd.DivisionUndefined |
				apd.DivisionImpossible | apd.InvalidOperation,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// MustNew is New for static configuration; it panics on an invalid precision.
func MustNew(digits int, opts ...Option) *Context {
	c, err := New(digits, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// defaultCtx is initialized exactly once and never reassigned.
var defaultCtx = MustNew(DefaultDigits)

// Default returns the process-wide default Context: DefaultDigits significant
// digits, half-even rounding. It is immutable, so callers may use it from any
// goroutine.
func Default() *Context {
	return defaultCtx
}

// Digits returns the significant-digit count.
func (c *Context) Digits() int {
	return c.digits
}

// Rounding returns the rounding rule.
func (c *Context) Rounding() Rounding {
	return c.inner.Rounding
}

// ExponentBound returns the symmetric exponent bound.
func (c *Context) ExponentBound() int32 {
	return c.inner.MaxExponent
}
