package mathexpr_test

import (
	"math"
	"strconv"
	"testing"

	mathexpr "github.com/JuiceDogoUi/worldcalculator-sub002"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		name string
		v    float64
		want string
	}{
		{"nan", math.NaN(), "Error"},
		{"inf", math.Inf(1), "Infinity"},
		{"neg-inf", math.Inf(-1), "-Infinity"},
		{"zero", 0, "0"},
		{"neg-zero", math.Copysign(0, -1), "0"},
		{"noise-floor", 1e-16, "0"},
		{"neg-noise-floor", -1e-16, "0"},
		{"integer", 11, "11"},
		{"neg-integer", -4, "-4"},
		{"pow-result", 1024, "1024"},
		{"half", 0.5, "0.5"},
		{"near-half", 0.49999999999999994, "0.5"},
		{"repeating", 2.0 / 3.0, "0.666666666666667"},
		{"fixed", 123456.789, "123456.789"},
		{"small-plain", 1e-6, "0.000001"},
		{"sci-upper", 1e10, "1e+10"},
		{"sci-large", 1.5e100, "1.5e+100"},
		{"sci-small", 5e-7, "5e-07"},
		{"sci-small-frac", 1.5e-7, "1.5e-07"},
		{"sci-mantissa-budget", 1.23456789012345e12, "1.23456789e+12"},
		{"neg-sci", -2.5e11, "-2.5e+11"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := mathexpr.Format(c.v); got != c.want {
				t.Errorf("Format(%g): want %q, got %q", c.v, c.want, got)
			}
		})
	}
}

func TestFormatRoundTrip(t *testing.T) {
	// Formatting then re-parsing a value must come back within tolerance.
	values := []float64{
		0, 1, -1, 0.5, 11, 1024, 2.0 / 3.0, math.Pi, math.E,
		123456.789, 1e-6, 5e-7, 1e10, 1.5e100, -2.5e11, 9.87654321e-12,
		0.1, 1.0 / 3.0, 42424242.42,
	}
	for _, v := range values {
		s := mathexpr.Format(v)
		got, err := strconv.ParseFloat(s, 64)
		if err != nil {
			t.Errorf("Format(%g) = %q does not re-parse: %v", v, s, err)
			continue
		}
		if !approx(got, v) {
			t.Errorf("Format(%g) = %q re-parses to %g", v, s, got)
		}
	}
}

func TestFormatAgreesWithEngine(t *testing.T) {
	// A formatted result is itself a valid expression with the same value.
	for _, src := range []string{"2/3", "10/4", "2^10", "sqrt(2)"} {
		v, err := mathexpr.EvalString(src, mathexpr.Radians)
		if err != nil {
			t.Fatalf("EvalString(%q): %v", src, err)
		}
		r := mathexpr.Evaluate(mathexpr.Format(v), mathexpr.Radians)
		if !r.OK {
			t.Errorf("formatted %q is not evaluable: %s", mathexpr.Format(v), r.Err)
			continue
		}
		if !approx(r.Value, v) {
			t.Errorf("round trip of %q: %g became %g", src, v, r.Value)
		}
	}
}
