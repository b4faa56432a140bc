// Package format renders arbitrary-precision values for people: comma
// grouping on the integer part, truncated or padded decimal places, and a
// significant-decimals mode that skips a leading run of repeated digits
// (so 0.00001234 keeps its meaning at two significant decimals, and
// 0.9999999991 can skip the nines). Non-finite values and scientific
// notation pass through untouched.
package format

import (
	"strings"

	"github.com/skorva/relcalc/internal/decimal"
)

// AllPlaces disables decimal-place truncation.
const AllPlaces = -1

// Fixed formats v in plain positional notation with comma-grouped integer
// digits and exactly places decimal digits (truncated, not rounded; padded
// with zeros when short). AllPlaces keeps every digit the context produced.
func Fixed(v decimal.Value, places int) string {
	s := plain(v)
	if bypass(s) {
		return s
	}
	intPart, decPart := split(s)
	if places == 0 {
		decPart = ""
	} else if places > 0 {
		if len(decPart) > places {
			decPart = decPart[:places]
		} else {
			decPart += strings.Repeat("0", places-len(decPart))
		}
	}
	return join(groupCommas(intPart), decPart)
}

// Significant formats v with comma grouping, keeping places decimal digits
// counted from the first digit that differs from ignore. With ignore '0',
// 0.00001234 at two places gives 0.000012; with ignore '9',
// 0.99999999991234 keeps the run of nines and then two more digits.
func Significant(v decimal.Value, places int, ignore byte) string {
	s := plain(v)
	if bypass(s) {
		return s
	}
	intPart, decPart := split(s)
	if places == 0 {
		decPart = ""
	} else if places > 0 {
		count := 0
		significant := false
		for i := 0; i < len(decPart); i++ {
			if significant || decPart[i] != ignore {
				count++
				significant = true
			}
			if count == places {
				decPart = decPart[:i+1]
				break
			}
		}
	}
	return join(groupCommas(intPart), decPart)
}

// plain renders v in positional notation, never scientific.
func plain(v decimal.Value) string {
	if v.Err() != nil || v.IsNaN() {
		return "NaN"
	}
	return v.Text('f')
}

func bypass(s string) bool {
	return s == "NaN" || strings.ContainsAny(s, "eE") || strings.Contains(s, "Infinity")
}

func split(s string) (intPart, decPart string) {
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return s[:i], s[i+1:]
	}
	return s, ""
}

func join(intPart, decPart string) string {
	if decPart == "" {
		return intPart
	}
	return intPart + "." + decPart
}

// groupCommas inserts thousands separators, sign-aware.
func groupCommas(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	b.Grow(len(s) + len(s)/3 + 1)
	lead := len(s) % 3
	if lead == 0 {
		lead = 3
	}
	for i, ch := range []byte(s) {
		if i == lead {
			b.WriteByte(',')
			lead += 3
		}
		b.WriteByte(ch)
	}
	out := b.String()
	if neg {
		return "-" + out
	}
	return out
}
