package mathexpr

import "fmt"

// Result is the public outcome of evaluating an expression. Exactly one of
// the value fields and Err is meaningful, selected by OK.
type Result struct {
	// OK reports whether evaluation succeeded.
	OK bool
	// Value is the numeric result when OK.
	Value float64
	// Formatted is the canonical display string for Value when OK.
	Formatted string
	// Err is a short display message when not OK.
	Err string
}

// Evaluate parses, evaluates, and formats an expression with the given angle
// mode. Every failure, including any bug that would otherwise panic, is
// normalized into Result.Err; Evaluate never lets a failure escape.
func Evaluate(src string, mode AngleMode, opts ...ParseOption) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = Result{Err: fmt.Sprint("internal error: ", r)}
		}
	}()
	e, err := Parse(src, opts...)
	if err != nil {
		return Result{Err: err.Error()}
	}
	v, err := e.Eval(NewContext(mode))
	if err != nil {
		return Result{Err: err.Error()}
	}
	return Result{OK: true, Value: v, Formatted: Format(v)}
}
