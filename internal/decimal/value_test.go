package decimal

import (
	"errors"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	ctx := MustNew(10)
	v, err := ctx.Parse("12345.6789")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if v.String() != "12345.6789" {
		t.Errorf("expected 12345.6789, got %s", v)
	}

	if _, err := ctx.Parse("not a number"); err == nil {
		t.Error("expected error for malformed literal")
	}
}

func TestParse_RoundsToPrecision(t *testing.T) {
	ctx := MustNew(5)
	v, err := ctx.Parse("1.23456789")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if v.String() != "1.2346" {
		t.Errorf("expected 1.2346 at 5 digits, got %s", v)
	}
}

func TestArithmetic(t *testing.T) {
	ctx := MustNew(20)
	a := ctx.FromInt64(7)
	b := ctx.FromInt64(3)

	tests := []struct {
		name string
		got  Value
		want string
	}{
		{"add", a.Add(b), "10"},
		{"sub", a.Sub(b), "4"},
		{"mul", a.Mul(b), "21"},
		{"rem", a.Rem(b), "1"},
		{"neg", a.Neg(), "-7"},
		{"abs", a.Neg().Abs(), "7"},
		{"pow", a.Pow(b), "343"},
	}
	for _, tt := range tests {
		if err := tt.got.Err(); err != nil {
			t.Errorf("%s: %v", tt.name, err)
			continue
		}
		want := ctx.MustParse(tt.want)
		if !tt.got.Equal(want) {
			t.Errorf("%s: expected %s, got %s", tt.name, tt.want, tt.got)
		}
	}
}

func TestDiv(t *testing.T) {
	ctx := MustNew(30)
	third := ctx.FromInt64(1).Div(ctx.FromInt64(3))
	if err := third.Err(); err != nil {
		t.Fatalf("1/3: %v", err)
	}
	if !strings.HasPrefix(third.Text('f'), "0.3333333333") {
		t.Errorf("1/3 at 30 digits: got %s", third.Text('f'))
	}
}

func TestDivByZero(t *testing.T) {
	ctx := MustNew(10)
	q := ctx.FromInt64(1).Div(ctx.FromInt64(0))
	if q.Err() == nil {
		t.Fatal("division by zero should surface on Err")
	}
}

func TestStickyError(t *testing.T) {
	ctx := MustNew(10)
	bad := ctx.FromInt64(1).Div(ctx.FromInt64(0))
	first := bad.Err()

	chained := bad.Add(ctx.FromInt64(5)).Mul(ctx.FromInt64(2)).Sqrt()
	if !errors.Is(chained.Err(), first) && chained.Err().Error() != first.Error() {
		t.Errorf("chain should carry the first error, got %v", chained.Err())
	}

	// error on the right operand propagates too
	chained = ctx.FromInt64(5).Add(bad)
	if chained.Err() == nil {
		t.Error("right-operand error should propagate")
	}
}

func TestZeroValue(t *testing.T) {
	var zero Value
	if !errors.Is(zero.Err(), ErrMissingOperand) {
		t.Errorf("zero Value: expected ErrMissingOperand, got %v", zero.Err())
	}

	ctx := MustNew(10)
	sum := ctx.FromInt64(1).Add(zero)
	if !errors.Is(sum.Err(), ErrMissingOperand) {
		t.Errorf("op with zero operand: expected ErrMissingOperand, got %v", sum.Err())
	}
}

func TestLeftContextWins(t *testing.T) {
	coarse := MustNew(5)
	fine := MustNew(40)

	left := fine.FromInt64(1)
	right := coarse.FromInt64(3)
	q := left.Div(right)
	if q.Context() != fine {
		t.Error("result should carry the left operand's Context")
	}
	// 40 digits of 1/3, not 5
	if len(strings.TrimPrefix(q.Text('f'), "0.")) != 40 {
		t.Errorf("expected 40 digits, got %s", q.Text('f'))
	}

	q = coarse.FromInt64(1).Div(fine.FromInt64(3))
	if q.Context() != coarse {
		t.Error("result should carry the left operand's Context")
	}
	if len(strings.TrimPrefix(q.Text('f'), "0.")) != 5 {
		t.Errorf("expected 5 digits, got %s", q.Text('f'))
	}
}

func TestWithContext(t *testing.T) {
	fine := MustNew(40)
	coarse := MustNew(5)

	v := fine.MustParse("1.23456789")
	r := v.WithContext(coarse)
	if r.Context() != coarse {
		t.Error("WithContext should retag the Value")
	}
	if r.String() != "1.2346" {
		t.Errorf("WithContext should re-round, got %s", r)
	}

	// same Context is a no-op
	if v.WithContext(fine).String() != v.String() {
		t.Error("WithContext with the same Context should preserve the magnitude")
	}
}

func TestCmp(t *testing.T) {
	a := MustNew(10)
	b := MustNew(50)

	tests := []struct {
		x, y Value
		want int
	}{
		{a.FromInt64(1), a.FromInt64(2), -1},
		{a.FromInt64(2), a.FromInt64(1), 1},
		{a.FromInt64(2), a.FromInt64(2), 0},
		// magnitude only, Context ignored
		{a.MustParse("1.5"), b.MustParse("1.5"), 0},
		{a.MustParse("1.5"), b.MustParse("1.50000"), 0},
	}
	for i, tt := range tests {
		if got := tt.x.Cmp(tt.y); got != tt.want {
			t.Errorf("case %d: Cmp(%s, %s) = %d, want %d", i, tt.x, tt.y, got, tt.want)
		}
	}

	var zero Value
	if zero.Cmp(a.FromInt64(0)) != -1 {
		t.Error("invalid Value should compare below any valid one")
	}
}

func TestEqualAndHash_CrossContext(t *testing.T) {
	a := MustNew(10)
	b := MustNew(80)

	x := a.MustParse("299792458")
	y := b.MustParse("299792458.000")
	if !x.Equal(y) {
		t.Error("equal magnitudes under different Contexts should be Equal")
	}
	if x.Hash() != y.Hash() {
		t.Error("equal Values must hash equally")
	}

	z := b.MustParse("299792459")
	if x.Equal(z) {
		t.Error("unequal magnitudes should not be Equal")
	}
}

func TestHash_ZeroRepresentations(t *testing.T) {
	ctx := MustNew(10)
	z1 := ctx.FromInt64(0)
	z2 := ctx.MustParse("0.000")
	if !z1.Equal(z2) {
		t.Fatal("0 should equal 0.000")
	}
	if z1.Hash() != z2.Hash() {
		t.Error("all zeros must hash equally")
	}
}

func TestNaN(t *testing.T) {
	ctx := MustNew(10)
	n := ctx.NaN()
	if !n.IsNaN() {
		t.Fatal("NaN() should report IsNaN")
	}
	if n.Err() != nil {
		t.Errorf("quiet NaN is not an error, got %v", n.Err())
	}
	if n.Equal(n) {
		t.Error("NaN should not equal itself")
	}
	if n.Sign() != 0 {
		t.Error("NaN sign should report 0")
	}
}

func TestSqrtNegative(t *testing.T) {
	ctx := MustNew(10)
	r := ctx.FromInt64(-4).Sqrt()
	if r.Err() == nil {
		t.Error("sqrt of a negative should surface on Err")
	}
}

func TestSign(t *testing.T) {
	ctx := MustNew(10)
	if ctx.FromInt64(-3).Sign() != -1 {
		t.Error("negative sign")
	}
	if ctx.FromInt64(0).Sign() != 0 {
		t.Error("zero sign")
	}
	if ctx.FromInt64(3).Sign() != 1 {
		t.Error("positive sign")
	}
}

func TestFloat64RoundTrip(t *testing.T) {
	ctx := MustNew(30)
	v := ctx.MustParse("0.25")
	f, err := v.Float64()
	if err != nil {
		t.Fatalf("Float64: %v", err)
	}
	if f != 0.25 {
		t.Errorf("expected 0.25, got %v", f)
	}
}

func TestExpLn(t *testing.T) {
	ctx := MustNew(40)
	x := ctx.MustParse("2.5")
	back := x.Exp().Ln()
	diff := back.Sub(x).Abs()
	tol := ctx.MustParse("1e-35")
	if diff.Cmp(tol) > 0 {
		t.Errorf("ln(exp(2.5)) drifted by %s", diff)
	}
}
