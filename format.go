package mathexpr

import (
	"math"
	"strconv"
	"strings"
)

const (
	// formatDigits is the total significant-digit budget for display.
	formatDigits = 15
	// formatExpReserve is the budget reserved for a scientific-notation
	// exponent suffix, leaving formatDigits-formatExpReserve mantissa digits.
	formatExpReserve = 5
	// zeroFloor collapses floating-point noise to an exact zero.
	zeroFloor = 1e-15
	// sciUpper and sciLower bound the magnitudes rendered in plain decimal.
	sciUpper = 1e10
	sciLower = 1e-6
)

// Format converts a numeric result into its canonical display string. The
// output is plain ASCII with no locale grouping; Infinity, -Infinity, and
// Error stand in for the non-finite values.
func Format(v float64) string {
	switch {
	case math.IsNaN(v):
		return "Error"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	abs := math.Abs(v)
	if abs < zeroFloor {
		return "0"
	}
	if abs >= sciUpper || abs < sciLower {
		return sci(v)
	}
	// Plain decimal with up to formatDigits significant digits. Whole values
	// come out bare after the zero trim.
	intDigits := int(math.Floor(math.Log10(abs))) + 1
	dec := formatDigits - intDigits
	if dec < 0 {
		dec = 0
	}
	return trimZeros(strconv.FormatFloat(v, 'f', dec, 64))
}

// sci renders v in normalized scientific notation with the mantissa digit
// budget.
func sci(v float64) string {
	s := strconv.FormatFloat(v, 'e', formatDigits-formatExpReserve-1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	return trimZeros(mant) + "e" + exp
}

// trimZeros strips insignificant trailing zeros from a fixed-point decimal.
func trimZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
