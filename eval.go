package mathexpr

import (
	"math"
	"strconv"
)

// AngleMode selects how trigonometric functions interpret their arguments
// and results.
type AngleMode int

const (
	// Degrees converts trig inputs from degrees to radians and inverse-trig
	// outputs back to degrees.
	Degrees AngleMode = iota
	// Radians passes trig arguments through unchanged.
	Radians
)

func (m AngleMode) String() string {
	switch m {
	case Degrees:
		return "degrees"
	case Radians:
		return "radians"
	}
	return "AngleMode(" + strconv.Itoa(int(m)) + ")"
}

// Context carries the evaluation context for an expression. Contexts are
// stateless apart from the angle mode and are safe for concurrent use.
type Context struct {
	mode AngleMode
}

// NewContext creates an evaluation context with the given angle mode.
func NewContext(mode AngleMode) *Context {
	return &Context{mode: mode}
}

// Mode returns the context's angle mode.
func (ctx *Context) Mode() AngleMode {
	return ctx.mode
}

func (ctx *Context) toRadians(x float64) float64 {
	if ctx.mode == Degrees {
		return x * math.Pi / 180
	}
	return x
}

func (ctx *Context) fromRadians(x float64) float64 {
	if ctx.mode == Degrees {
		return x * 180 / math.Pi
	}
	return x
}

// Eval evaluates the expression. The AST is never mutated, so an Expr may be
// evaluated any number of times, concurrently, with different contexts.
func (e *Expr) Eval(ctx *Context) (float64, error) {
	return e.n.eval(ctx)
}

// EvalString is a shortcut to parse and evaluate an expression.
func EvalString(src string, mode AngleMode, opts ...ParseOption) (float64, error) {
	e, err := Parse(src, opts...)
	if err != nil {
		return 0, err
	}
	return e.Eval(NewContext(mode))
}

func (n *node) eval(ctx *Context) (float64, error) {
	switch n.kind {
	case nodeNum:
		return n.val, nil
	case nodeConst:
		v, ok := constants[n.name]
		if !ok {
			return 0, &InternalError{Op: "constant " + n.name}
		}
		return v, nil
	case nodeCall:
		if n.fn == nil {
			return 0, &InternalError{Op: "function " + n.name}
		}
		args := make([]float64, len(n.args))
		for i, a := range n.args {
			v, err := a.eval(ctx)
			if err != nil {
				return 0, err
			}
			args[i] = v
		}
		return n.fn.Call(ctx, args)
	case nodeNeg:
		v, err := n.left.eval(ctx)
		if err != nil {
			return 0, err
		}
		return -v, nil
	case nodeFact:
		v, err := n.left.eval(ctx)
		if err != nil {
			return 0, err
		}
		return factorial(v)
	case nodePct:
		v, err := n.left.eval(ctx)
		if err != nil {
			return 0, err
		}
		return v / 100, nil
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodeMod, nodePow:
		l, err := n.left.eval(ctx)
		if err != nil {
			return 0, err
		}
		r, err := n.right.eval(ctx)
		if err != nil {
			return 0, err
		}
		return binop(ctx, n.kind, l, r)
	default:
		return 0, &InternalError{Op: "node " + n.kind.String()}
	}
}

func binop(ctx *Context, kind nodeKind, l, r float64) (float64, error) {
	var v float64
	switch kind {
	case nodeAdd:
		v = l + r
	case nodeSub:
		v = l - r
	case nodeMul:
		v = l * r
	case nodeDiv:
		if r == 0 {
			return 0, &DomainError{Func: "/", X: l, Msg: "Division by zero"}
		}
		v = l / r
	case nodeMod:
		if r == 0 {
			return 0, &DomainError{Func: "mod", X: l, Msg: "Modulo by zero"}
		}
		v = math.Mod(l, r)
	case nodePow:
		return pow(ctx, l, r)
	default:
		return 0, &InternalError{Op: "operator " + kind.String()}
	}
	// Degenerate cases like inf - inf produce NaN rather than a value worth
	// displaying.
	if math.IsNaN(v) {
		return 0, &DomainError{Func: binopText(kind), X: l, Msg: "Result is undefined"}
	}
	return v, nil
}

// InternalError indicates an AST node or function that should be impossible
// given a correct parser. It exists so that a bug surfaces as a typed error
// instead of a panic.
type InternalError struct {
	// Op describes what the evaluator could not dispatch.
	Op string
}

func (err *InternalError) Error() string {
	return "internal error: unknown " + err.Op
}
