package mathexpr

// DefaultMaxDepth is the parenthesis and function-call nesting depth allowed
// when no MaxDepth option is given.
const DefaultMaxDepth = 100

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

type (
	funcopt struct {
		name string
		fn   Func
	}
	depthopt int
)

// parsectx holds general data for parsing.
type parsectx struct {
	// funcs is the set of function names the tokenizer resolves.
	funcs map[string]Func
	// maxDepth is the nesting depth limit.
	maxDepth int
}

// ParseFunc sets a function for parsing. To disable a default function, pass
// nil for fn; its name then becomes an unknown identifier.
func ParseFunc(name string, fn Func) ParseOption {
	return &funcopt{name, fn}
}

func (o *funcopt) parseOption(p parsectx) parsectx {
	if p.funcs == nil {
		p.funcs = make(map[string]Func, len(globalfuncs)+1)
		for k, v := range globalfuncs {
			p.funcs[k] = v
		}
	}
	p.funcs[o.name] = o.fn
	return p
}

// MaxDepth sets the maximum parenthesis and function-call nesting depth.
// Nonpositive values restore the default.
func MaxDepth(n int) ParseOption {
	return depthopt(n)
}

func (o depthopt) parseOption(p parsectx) parsectx {
	p.maxDepth = int(o)
	if p.maxDepth <= 0 {
		p.maxDepth = DefaultMaxDepth
	}
	return p
}
