package physics

import (
	"fmt"

	"github.com/skorva/relcalc/internal/decimal"
)

// Physical constants as exact decimal literals, SI base units. Each engine
// parses them at its own Context's precision so that c, c², and friends never
// mix precisions within one calculation.
const (
	SpeedOfLight       = "299792458"        // m/s, exact
	StandardGravity    = "9.80665"          // m/s², standard gravity
	MetersPerLightYear = "9460730472580800" // m, IAU light-year
	MetersPerAU        = "149597870700"     // m, astronomical unit
	SecondsPerYear     = "31557600"         // s, Julian year (365.25 days)
)

// Relativity evaluates relativistic formulas with every constant and every
// intermediate result held at one Context's precision. Treat the constant
// fields as read-only.
type Relativity struct {
	C              decimal.Value // speed of light, m/s
	CSquared       decimal.Value // c², m²/s²
	G              decimal.Value // standard gravity, m/s²
	LightYear      decimal.Value // meters per light-year
	AU             decimal.Value // meters per astronomical unit
	SecondsPerYear decimal.Value // seconds per Julian year

	ctx  *decimal.Context
	one  decimal.Value
	two  decimal.Value
	half decimal.Value
}

// New builds an engine whose constants are instantiated at ctx's precision.
// A nil ctx selects the package default Context.
func New(ctx *decimal.Context) *Relativity {
	if ctx == nil {
		ctx = decimal.Default()
	}
	c := ctx.MustParse(SpeedOfLight)
	return &Relativity{
		C:              c,
		CSquared:       c.Mul(c),
		G:              ctx.MustParse(StandardGravity),
		LightYear:      ctx.MustParse(MetersPerLightYear),
		AU:             ctx.MustParse(MetersPerAU),
		SecondsPerYear: ctx.MustParse(SecondsPerYear),
		ctx:            ctx,
		one:            ctx.FromInt64(1),
		two:            ctx.FromInt64(2),
		half:           ctx.MustParse("0.5"),
	}
}

// Context returns the Context every formula of this engine evaluates under.
func (r *Relativity) Context() *decimal.Context {
	return r.ctx
}

// ensure brings a caller-supplied quantity under the engine's Context, so the
// left-operand convention keeps one precision through the whole derivation.
func (r *Relativity) ensure(v decimal.Value) decimal.Value {
	return v.WithContext(r.ctx)
}

func (r *Relativity) ensureAbs(v decimal.Value) decimal.Value {
	return v.WithContext(r.ctx).Abs()
}

// checkVelocity is the one shared velocity-invariant check: |v| must stay
// strictly below c.
func (r *Relativity) checkVelocity(v decimal.Value) error {
	if err := v.Err(); err != nil {
		return err
	}
	if v.Abs().Cmp(r.C) >= 0 {
		return fmt.Errorf("%w: %s m/s", ErrVelocityExceedsC, v)
	}
	return nil
}

// VelocityAsFraction converts a velocity in m/s to a fraction of c.
func (r *Relativity) VelocityAsFraction(v decimal.Value) (decimal.Value, error) {
	v = r.ensure(v)
	if err := r.checkVelocity(v); err != nil {
		return decimal.Value{}, err
	}
	f := v.Div(r.C)
	return f, f.Err()
}

// VelocityFromFraction converts a fraction of c to a velocity in m/s. The
// fraction must satisfy |f| < 1.
func (r *Relativity) VelocityFromFraction(f decimal.Value) (decimal.Value, error) {
	f = r.ensure(f)
	if err := f.Err(); err != nil {
		return decimal.Value{}, err
	}
	if f.Abs().Cmp(r.one) >= 0 {
		return decimal.Value{}, fmt.Errorf("%w: fraction %s", ErrVelocityExceedsC, f)
	}
	v := f.Mul(r.C)
	return v, v.Err()
}
