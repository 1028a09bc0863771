package mathexpr

import (
	"math"
	"strconv"
)

// Func is a function from reals to reals. Implementations must be pure: the
// same arguments and angle mode always produce the same result.
type Func interface {
	// Call evaluates the function. args has a length for which CanCall
	// returned true. The context carries the angle mode for trigonometric
	// functions.
	Call(ctx *Context, args []float64) (float64, error)

	// CanCall reports whether the function can be called with n arguments.
	// The parser rejects calls for which CanCall returns false.
	CanCall(n int) bool
}

// globalfuncs is the fixed set of functions the tokenizer recognizes. Each
// entry performs its own domain check before delegating to the math
// primitive.
var globalfuncs = map[string]Func{
	// Angle-mode aware: inputs converted from the active mode to radians.
	"sin": Monadic("sin", func(ctx *Context, x float64) (float64, error) {
		return math.Sin(ctx.toRadians(x)), nil
	}),
	"cos": Monadic("cos", func(ctx *Context, x float64) (float64, error) {
		return math.Cos(ctx.toRadians(x)), nil
	}),
	"tan": Monadic("tan", func(ctx *Context, x float64) (float64, error) {
		r := ctx.toRadians(x)
		if math.Abs(math.Cos(r)) < 1e-10 {
			return 0, &DomainError{Func: "tan", X: x, Msg: "Tangent undefined at this angle"}
		}
		return math.Tan(r), nil
	}),

	// Angle-mode aware: outputs converted from radians to the active mode.
	"asin": Monadic("asin", func(ctx *Context, x float64) (float64, error) {
		if x < -1 || x > 1 {
			return 0, &DomainError{Func: "asin", X: x, Msg: "Inverse sine out of range"}
		}
		return ctx.fromRadians(math.Asin(x)), nil
	}),
	"acos": Monadic("acos", func(ctx *Context, x float64) (float64, error) {
		if x < -1 || x > 1 {
			return 0, &DomainError{Func: "acos", X: x, Msg: "Inverse cosine out of range"}
		}
		return ctx.fromRadians(math.Acos(x)), nil
	}),
	"atan": Monadic("atan", func(ctx *Context, x float64) (float64, error) {
		return ctx.fromRadians(math.Atan(x)), nil
	}),

	// Hyperbolic functions always use raw radians semantics.
	"sinh": Monadic("sinh", func(ctx *Context, x float64) (float64, error) {
		return math.Sinh(x), nil
	}),
	"cosh": Monadic("cosh", func(ctx *Context, x float64) (float64, error) {
		return math.Cosh(x), nil
	}),
	"tanh": Monadic("tanh", func(ctx *Context, x float64) (float64, error) {
		return math.Tanh(x), nil
	}),

	"log": Monadic("log", func(ctx *Context, x float64) (float64, error) {
		if x <= 0 {
			return 0, &DomainError{Func: "log", X: x, Msg: "Logarithm of non-positive number"}
		}
		return math.Log10(x), nil
	}),
	"ln": Monadic("ln", func(ctx *Context, x float64) (float64, error) {
		if x <= 0 {
			return 0, &DomainError{Func: "ln", X: x, Msg: "Logarithm of non-positive number"}
		}
		return math.Log(x), nil
	}),
	"log2": Monadic("log2", func(ctx *Context, x float64) (float64, error) {
		if x <= 0 {
			return 0, &DomainError{Func: "log2", X: x, Msg: "Logarithm of non-positive number"}
		}
		return math.Log2(x), nil
	}),

	"sqrt": Monadic("sqrt", func(ctx *Context, x float64) (float64, error) {
		if x < 0 {
			return 0, &DomainError{Func: "sqrt", X: x, Msg: "Square root of negative number"}
		}
		return math.Sqrt(x), nil
	}),
	// Real cube roots of negatives are fine.
	"cbrt": Monadic("cbrt", func(ctx *Context, x float64) (float64, error) {
		return math.Cbrt(x), nil
	}),

	"pow": Dyadic("pow", pow),
	"exp": Monadic("exp", func(ctx *Context, x float64) (float64, error) {
		return math.Exp(x), nil
	}),
	"pow10": Monadic("pow10", func(ctx *Context, x float64) (float64, error) {
		return math.Pow(10, x), nil
	}),
	"abs": Monadic("abs", func(ctx *Context, x float64) (float64, error) {
		return math.Abs(x), nil
	}),
	"floor": Monadic("floor", func(ctx *Context, x float64) (float64, error) {
		return math.Floor(x), nil
	}),
	"ceil": Monadic("ceil", func(ctx *Context, x float64) (float64, error) {
		return math.Ceil(x), nil
	}),
	"round": Monadic("round", func(ctx *Context, x float64) (float64, error) {
		return math.Round(x), nil
	}),
}

// pow implements both the pow function and the ^ operator. A negative base
// with a non-integer exponent would be complex-valued and is rejected.
func pow(ctx *Context, base, exp float64) (float64, error) {
	if base < 0 && exp != math.Trunc(exp) {
		return 0, &DomainError{Func: "pow", X: base, Msg: "Negative base with fractional exponent"}
	}
	r := math.Pow(base, exp)
	if math.IsNaN(r) {
		return 0, &DomainError{Func: "pow", X: base, Msg: "Result is undefined"}
	}
	return r, nil
}

type monadic struct {
	name string
	f    func(ctx *Context, x float64) (float64, error)
}

func (m monadic) Call(ctx *Context, args []float64) (float64, error) {
	return m.f(ctx, args[0])
}

func (m monadic) CanCall(n int) bool {
	return n == 1
}

// Monadic wraps a function of one variable into a Func.
func Monadic(name string, f func(ctx *Context, x float64) (float64, error)) Func {
	return monadic{name, f}
}

type dyadic struct {
	name string
	f    func(ctx *Context, x, y float64) (float64, error)
}

func (d dyadic) Call(ctx *Context, args []float64) (float64, error) {
	return d.f(ctx, args[0], args[1])
}

func (d dyadic) CanCall(n int) bool {
	return n == 2
}

// Dyadic wraps a function of two variables into a Func.
func Dyadic(name string, f func(ctx *Context, x, y float64) (float64, error)) Func {
	return dyadic{name, f}
}

// DomainError is an error returned when an operation is mathematically
// undefined or disallowed for its inputs. Its message is a short, stable
// string suitable for direct display.
type DomainError struct {
	// Func is a name identifying the function or operator.
	Func string
	// X is the out-of-domain input.
	X float64
	// Msg is the display message.
	Msg string
}

func (err *DomainError) Error() string {
	return err.Msg
}

// Detail returns a diagnostic form of the error including the function name
// and offending value.
func (err *DomainError) Detail() string {
	return err.Msg + ": " + err.Func + "(" + strconv.FormatFloat(err.X, 'g', -1, 64) + ")"
}
