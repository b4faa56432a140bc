package decimal

import (
	"fmt"
	"hash/fnv"

	"github.com/cockroachdb/apd/v3"
)

// Value is an immutable arbitrary-precision decimal magnitude tagged with the
// Context that governs operations on it. The zero Value has no magnitude;
// using it in arithmetic yields ErrMissingOperand.
type Value struct {
	d   *apd.Decimal
	ctx *Context
	err error
}

// FromInt64 builds a Value from an integer, rounded to c's precision.
func (c *Context) FromInt64(i int64) Value {
	var out apd.Decimal
	if _, err := c.inner.Round(&out, apd.New(i, 0)); err != nil {
		return Value{ctx: c, err: fmt.Errorf("decimal: from int64 %d: %w", i, err)}
	}
	return Value{d: &out, ctx: c}
}

// FromFloat64 builds a Value from a float, rounded to c's precision. NaN and
// infinite floats produce a Value whose Err reports the conversion failure.
func (c *Context) FromFloat64(f float64) Value {
	var d apd.Decimal
	if _, err := d.SetFloat64(f); err != nil {
		return Value{ctx: c, err: fmt.Errorf("decimal: from float64 %v: %w", f, err)}
	}
	var out apd.Decimal
	if _, err := c.inner.Round(&out, &d); err != nil {
		return Value{ctx: c, err: fmt.Errorf("decimal: from float64 %v: %w", f, err)}
	}
	return Value{d: &out, ctx: c}
}

// Parse builds a Value from a decimal string literal, rounded to c's
// precision.
func (c *Context) Parse(s string) (Value, error) {
	var d apd.Decimal
	if _, _, err := c.inner.SetString(&d, s); err != nil {
		return Value{}, fmt.Errorf("decimal: parse %q: %w", s, err)
	}
	return Value{d: &d, ctx: c}, nil
}

// MustParse is Parse for known-good literals; it panics on a malformed one.
func (c *Context) MustParse(s string) Value {
	v, err := c.Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// NaN returns the quiet not-a-number Value under c. It is the documented
// result of formulas whose radicand is negative (spacelike separations,
// lightlike-deficient invariant mass); it is not an error.
func (c *Context) NaN() Value {
	return Value{d: &apd.Decimal{Form: apd.NaN}, ctx: c}
}

func (v Value) valid() bool {
	return v.err == nil && v.d != nil
}

// Err reports the first failure in the chain that produced v, or
// ErrMissingOperand if v never had a magnitude.
func (v Value) Err() error {
	if v.err != nil {
		return v.err
	}
	if v.d == nil {
		return ErrMissingOperand
	}
	return nil
}

// Context returns the Context governing v, which every operation with v on
// the left propagates to its result. Nil for the zero Value.
func (v Value) Context() *Context {
	return v.ctx
}

// WithContext re-rounds v under c and returns a Value governed by c. This is
// how a caller-supplied quantity is brought under an engine's precision
// policy before entering a formula chain.
func (v Value) WithContext(c *Context) Value {
	if v.err != nil {
		return Value{ctx: c, err: v.err}
	}
	if v.d == nil {
		return Value{ctx: c, err: ErrMissingOperand}
	}
	if v.ctx == c {
		return v
	}
	var out apd.Decimal
	if _, err := c.inner.Round(&out, v.d); err != nil {
		return Value{ctx: c, err: fmt.Errorf("decimal: reround: %w", err)}
	}
	return Value{d: &out, ctx: c}
}

// binary evaluates op under the left operand's Context. A sticky error on
// either operand short-circuits; a missing magnitude fails fast.
func (v Value) binary(o Value, op func(*apd.Context, *apd.Decimal, *apd.Decimal, *apd.Decimal) (apd.Condition, error)) Value {
	if v.err != nil {
		return v
	}
	if o.err != nil {
		return Value{ctx: v.ctx, err: o.err}
	}
	if v.d == nil || o.d == nil {
		return Value{ctx: v.ctx, err: ErrMissingOperand}
	}
	var out apd.Decimal
	if _, err := op(&v.ctx.inner, &out, v.d, o.d); err != nil {
		return Value{ctx: v.ctx, err: fmt.Errorf("decimal: %w", err)}
	}
	return Value{d: &out, ctx: v.ctx}
}

func (v Value) unary(op func(*apd.Context, *apd.Decimal, *apd.Decimal) (apd.Condition, error)) Value {
	if v.err != nil {
		return v
	}
	if v.d == nil {
		return Value{ctx: v.ctx, err: ErrMissingOperand}
	}
	var out apd.Decimal
	if _, err := op(&v.ctx.inner, &out, v.d); err != nil {
		return Value{ctx: v.ctx, err: fmt.Errorf("decimal: %w", err)}
	}
	return Value{d: &out, ctx: v.ctx}
}

// Add returns v + o under v's Context.
func (v Value) Add(o Value) Value { return v.binary(o, (*apd.Context).Add) }

// Sub returns v - o under v's Context.
func (v Value) Sub(o Value) Value { return v.binary(o, (*apd.Context).Sub) }

// Mul returns v * o under v's Context.
func (v Value) Mul(o Value) Value { return v.binary(o, (*apd.Context).Mul) }

// Div returns v / o under v's Context. Division by zero surfaces on Err.
func (v Value) Div(o Value) Value { return v.binary(o, (*apd.Context).Quo) }

// Rem returns the remainder of v / o under v's Context.
func (v Value) Rem(o Value) Value { return v.binary(o, (*apd.Context).Rem) }

// Pow returns v ** o under v's Context.
func (v Value) Pow(o Value) Value { return v.binary(o, (*apd.Context).Pow) }

// Neg returns -v.
func (v Value) Neg() Value { return v.unary((*apd.Context).Neg) }

// Abs returns |v|.
func (v Value) Abs() Value { return v.unary((*apd.Context).Abs) }

// Sqrt returns the square root of v. A negative v surfaces on Err.
func (v Value) Sqrt() Value { return v.unary((*apd.Context).Sqrt) }

// Exp returns e**v.
func (v Value) Exp() Value { return v.unary((*apd.Context).Exp) }

// Ln returns the natural logarithm of v.
func (v Value) Ln() Value { return v.unary((*apd.Context).Ln) }

// IsNaN reports whether v holds a not-a-number magnitude.
func (v Value) IsNaN() bool {
	return v.d != nil && (v.d.Form == apd.NaN || v.d.Form == apd.NaNSignaling)
}

// IsZero reports whether v is exactly zero.
func (v Value) IsZero() bool {
	return v.valid() && !v.IsNaN() && v.d.IsZero()
}

// Sign returns -1, 0, or 1 for negative, zero, and positive magnitudes.
// NaN and invalid Values report 0.
func (v Value) Sign() int {
	if !v.valid() || v.IsNaN() {
		return 0
	}
	return v.d.Sign()
}

// Cmp compares magnitudes only; Context plays no part, so two Values computed
// under different precisions but equal in value compare equal. NaNs order by
// the decimal total ordering. Invalid Values compare below every valid one.
func (v Value) Cmp(o Value) int {
	switch {
	case v.valid() && o.valid():
		if v.IsNaN() || o.IsNaN() {
			return v.d.CmpTotal(o.d)
		}
		return v.d.Cmp(o.d)
	case v.valid():
		return 1
	case o.valid():
		return -1
	default:
		return 0
	}
}

// Equal reports magnitude equality. NaN never equals anything, itself
// included.
func (v Value) Equal(o Value) bool {
	return v.valid() && o.valid() && !v.IsNaN() && !o.IsNaN() && v.d.Cmp(o.d) == 0
}

// Hash digests the reduced magnitude alone, so Values that compare equal hash
// equally regardless of Context or internal representation.
func (v Value) Hash() uint64 {
	h := fnv.New64a()
	switch {
	case !v.valid():
		h.Write([]byte("invalid"))
	case v.IsNaN():
		h.Write([]byte("NaN"))
	case v.d.IsZero():
		h.Write([]byte("0"))
	default:
		var r apd.Decimal
		r.Reduce(v.d)
		h.Write([]byte(r.String()))
	}
	return h.Sum64()
}

// String delegates to the primitive's canonical formatting.
func (v Value) String() string {
	if v.d == nil {
		return "<nil>"
	}
	return v.d.String()
}

// Text formats the magnitude like math/big ('f' for plain positional
// notation, 'e' for scientific).
func (v Value) Text(format byte) string {
	if v.d == nil {
		return "<nil>"
	}
	return v.d.Text(format)
}

// Float64 converts to the nearest float64. Lossy; meant for display and
// cross-checking, never for further engine arithmetic.
func (v Value) Float64() (float64, error) {
	if err := v.Err(); err != nil {
		return 0, err
	}
	return v.d.Float64()
}
