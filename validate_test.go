package mathexpr_test

import (
	"strings"
	"testing"

	mathexpr "github.com/JuiceDogoUi/worldcalculator-sub002"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		src  string
		ok   bool
	}{
		{"simple", "1+2", true},
		{"call", "sin(30)", true},
		{"nested", "sqrt(abs(-16))*2", true},
		{"postfix", "5!%", true},
		{"glyphs", "2×π", true},
		{"empty", "", false},
		{"unbalanced-open", "(1+2", false},
		{"unbalanced-close", "1+2)", false},
		{"trailing-op", "3+4*", false},
		{"unknown-ident", "foo(2)", false},
		{"bad-call", "pow(2)", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v := mathexpr.Validate(c.src)
			if v.Valid != c.ok {
				t.Errorf("Validate(%q).Valid = %v, errors %v", c.src, v.Valid, v.Errors)
			}
			if !c.ok && len(v.Errors) == 0 {
				t.Errorf("Validate(%q) invalid but reported no errors", c.src)
			}
			if c.ok && len(v.Errors) != 0 {
				t.Errorf("Validate(%q) valid but reported errors %v", c.src, v.Errors)
			}
		})
	}
}

func TestValidateMissingClose(t *testing.T) {
	cases := []struct {
		src     string
		missing string
	}{
		{"(1+2", "missing 1 closing parenthesis(es)"},
		{"(3+4", "missing 1 closing parenthesis(es)"},
		{"((1+2)", "missing 1 closing parenthesis(es)"},
		{"(((", "missing 3 closing parenthesis(es)"},
	}
	for _, c := range cases {
		v := mathexpr.Validate(c.src)
		if v.Valid {
			t.Errorf("Validate(%q) should be invalid", c.src)
			continue
		}
		if len(v.Errors) != 1 {
			t.Errorf("Validate(%q): want exactly 1 error, got %v", c.src, v.Errors)
			continue
		}
		if v.Errors[0].Message != c.missing {
			t.Errorf("Validate(%q): want %q, got %q", c.src, c.missing, v.Errors[0].Message)
		}
	}
}

func TestValidateStrayClose(t *testing.T) {
	v := mathexpr.Validate("1+2)")
	if v.Valid || len(v.Errors) != 1 {
		t.Fatalf("want exactly 1 error, got valid=%v errors=%v", v.Valid, v.Errors)
	}
	if v.Errors[0].Message != "unmatched closing parenthesis" {
		t.Errorf("want unmatched message, got %q", v.Errors[0].Message)
	}
	if v.Errors[0].Pos != 4 {
		t.Errorf("want position 4, got %d", v.Errors[0].Pos)
	}

	// A stray close followed by a stray open reports both problems.
	v = mathexpr.Validate(")(")
	if len(v.Errors) != 2 {
		t.Errorf("want 2 errors for \")(\", got %v", v.Errors)
	}
}

func TestValidateEmpty(t *testing.T) {
	v := mathexpr.Validate("")
	if v.Valid || len(v.Errors) != 1 {
		t.Fatalf("want exactly 1 error, got valid=%v errors=%v", v.Valid, v.Errors)
	}
	if v.Errors[0].Message != "Empty expression" {
		t.Errorf("want \"Empty expression\", got %q", v.Errors[0].Message)
	}
}

func TestValidateWarnsOnSkipped(t *testing.T) {
	v := mathexpr.Validate("1+2#")
	if !v.Valid {
		t.Fatalf("should be valid, errors %v", v.Errors)
	}
	if len(v.Warnings) != 1 || !strings.Contains(v.Warnings[0], "ignored character") {
		t.Errorf("want an ignored-character warning, got %v", v.Warnings)
	}
}

func TestValidateLexPosition(t *testing.T) {
	v := mathexpr.Validate("2*bogus")
	if v.Valid {
		t.Fatal("should be invalid")
	}
	if len(v.Errors) != 1 || v.Errors[0].Pos != 3 {
		t.Errorf("want one error at column 3, got %v", v.Errors)
	}
}
