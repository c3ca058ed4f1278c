package calculator

import (
	"math"
	"strconv"
	"strings"
)

// MaxFractionDigits caps the number of digits shown after the decimal point
const MaxFractionDigits = 10

// Glyphs used for values that have no finite decimal rendering
const (
	PositiveInfinityText = "∞"
	NegativeInfinityText = "-∞"
	NaNText              = "NaN"
)

// FormatNumber renders a settled register value for the display.
//
// Finite values use the shortest decimal that reads back as the same float64,
// so a typed 1234567.89 stays 1234567.89. Only when that needs more than
// MaxFractionDigits fractional digits is it rounded to MaxFractionDigits.
// Trailing zeros are dropped, and no grouping separators or exponents are
// used. A result that rounds to negative zero is shown as "0".
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return NaNText
	case math.IsInf(v, 1):
		return PositiveInfinityText
	case math.IsInf(v, -1):
		return NegativeInfinityText
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if dot := strings.IndexByte(s, '.'); dot >= 0 && len(s)-dot-1 > MaxFractionDigits {
		s = strconv.FormatFloat(v, 'f', MaxFractionDigits, 64)
	}
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		return "0"
	}
	return s
}

// positiveZero converts -0.0 to 0.0 and leaves every other value alone.
// -0.0 and 0.0 compare equal but print differently.
func positiveZero(v float64) float64 {
	if v == 0 {
		return 0
	}
	return v
}
