package decimal

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	ctx, err := New(30)
	if err != nil {
		t.Fatalf("New(30): %v", err)
	}
	if ctx.Digits() != 30 {
		t.Errorf("expected 30 digits, got %d", ctx.Digits())
	}
	if ctx.Rounding() != RoundHalfEven {
		t.Errorf("expected half-even rounding, got %v", ctx.Rounding())
	}
	if ctx.ExponentBound() != DefaultExponentBound {
		t.Errorf("expected exponent bound %d, got %d", DefaultExponentBound, ctx.ExponentBound())
	}
}

func TestNew_InvalidPrecision(t *testing.T) {
	for _, digits := range []int{0, -1, -50} {
		_, err := New(digits)
		if !errors.Is(err, ErrInvalidPrecision) {
			t.Errorf("New(%d): expected ErrInvalidPrecision, got %v", digits, err)
		}
	}
}

func TestNew_Options(t *testing.T) {
	ctx, err := New(10, WithRounding(RoundDown), WithExponentBound(500))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if ctx.Rounding() != RoundDown {
		t.Errorf("expected round-down, got %v", ctx.Rounding())
	}
	if ctx.ExponentBound() != 500 {
		t.Errorf("expected exponent bound 500, got %d", ctx.ExponentBound())
	}
}

func TestDefault(t *testing.T) {
	if Default() != Default() {
		t.Error("Default should return the same Context every call")
	}
	if Default().Digits() != DefaultDigits {
		t.Errorf("default precision: expected %d, got %d", DefaultDigits, Default().Digits())
	}
}

func TestMustNew_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustNew(0) should panic")
		}
	}()
	MustNew(0)
}
