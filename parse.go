package mathexpr

// Grammar, lowest to highest precedence:
//
//	expression := term (('+' | '-') term)*
//	term       := unary (('*' | '/') unary)*
//	unary      := '-'? power
//	power      := postfix ('^' unary)?
//	postfix    := primary ('!' | '%')*
//	primary    := NUMBER | CONSTANT
//	            | FUNCTION '(' expression (',' expression)* ')'
//	            | '(' expression ')'
//
// The exponent production re-enters unary rather than power, so -2^2 parses
// as -(2^2) while 2^-2 remains legal.

// Expr is a parsed expression that can be evaluated with a context.
type Expr struct {
	// n is the root node of the expression.
	n *node
}

// Parse parses an expression. The given options are applied in order. Every
// returned error implements InputError.
func Parse(src string, opts ...ParseOption) (*Expr, error) {
	ctx := parsectx{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		ctx = opt.parseOption(ctx)
	}
	if ctx.funcs == nil {
		ctx.funcs = globalfuncs
	}
	toks, _, err := tokenize(src, ctx.funcs)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks, ctx: &ctx}
	n, err := p.expression()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != tokenEOF {
		return nil, p.trailing(tok)
	}
	return &Expr{n: n}, nil
}

// String creates a fully parenthesized string representation of the parsed
// expression.
func (e *Expr) String() string {
	return e.n.String()
}

type parser struct {
	toks  []lexToken
	pos   int
	depth int
	ctx   *parsectx
}

func (p *parser) peek() lexToken {
	return p.toks[p.pos]
}

func (p *parser) next() lexToken {
	tok := p.toks[p.pos]
	if tok.kind != tokenEOF {
		p.pos++
	}
	return tok
}

// enter counts one level of parenthesis or argument-list nesting. The limit
// guards against native stack overflow on adversarial input.
func (p *parser) enter(col int) error {
	p.depth++
	if p.depth > p.ctx.maxDepth {
		return &NestingError{Col: col, Depth: p.ctx.maxDepth}
	}
	return nil
}

func (p *parser) leave() {
	p.depth--
}

// trailing creates the error for a token left over after a complete
// expression.
func (p *parser) trailing(tok lexToken) error {
	if tok.kind == tokenClose {
		return &BracketError{Col: tok.pos, Right: ")"}
	}
	return &UnexpectedTokenError{Col: tok.pos, Token: tok.text}
}

func (p *parser) expression() (*node, error) {
	n, err := p.term()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.peek()
		if tok.kind != tokenOp || (tok.text != "+" && tok.text != "-") {
			return n, nil
		}
		p.next()
		rhs, err := p.term()
		if err != nil {
			return nil, err
		}
		kind := nodeAdd
		if tok.text == "-" {
			kind = nodeSub
		}
		n = &node{kind: kind, left: n, right: rhs}
	}
}

func (p *parser) term() (*node, error) {
	n, err := p.unary()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.peek()
		if tok.kind != tokenOp || (tok.text != "*" && tok.text != "/") {
			return n, nil
		}
		p.next()
		rhs, err := p.unary()
		if err != nil {
			return nil, err
		}
		kind := nodeMul
		if tok.text == "/" {
			kind = nodeDiv
		}
		n = &node{kind: kind, left: n, right: rhs}
	}
}

func (p *parser) unary() (*node, error) {
	if tok := p.peek(); tok.kind == tokenOp && tok.text == "-" {
		p.next()
		// Chained negation recurses here rather than into power.
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &node{kind: nodeNeg, left: operand}, nil
	}
	return p.power()
}

func (p *parser) power() (*node, error) {
	n, err := p.postfix()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind == tokenOp && tok.text == "^" {
		p.next()
		// Right-associative; the exponent re-enters unary so 2^-2 parses.
		rhs, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &node{kind: nodePow, left: n, right: rhs}, nil
	}
	return n, nil
}

func (p *parser) postfix() (*node, error) {
	n, err := p.primary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek().kind {
		case tokenBang:
			p.next()
			n = &node{kind: nodeFact, left: n}
		case tokenPercent:
			p.next()
			n = &node{kind: nodePct, left: n}
		default:
			return n, nil
		}
	}
}

func (p *parser) primary() (*node, error) {
	tok := p.next()
	switch tok.kind {
	case tokenNum:
		return &node{kind: nodeNum, val: tok.val}, nil
	case tokenConst:
		return &node{kind: nodeConst, name: tok.text}, nil
	case tokenFunc:
		return p.call(tok)
	case tokenOpen:
		if err := p.enter(tok.pos); err != nil {
			return nil, err
		}
		n, err := p.expression()
		if err != nil {
			return nil, err
		}
		end := p.next()
		if end.kind != tokenClose {
			return nil, &BracketError{Col: end.pos, Left: "("}
		}
		p.leave()
		return n, nil
	case tokenClose:
		return nil, &EmptyExpressionError{Col: tok.pos, End: ")"}
	case tokenSep:
		return nil, &UnexpectedTokenError{Col: tok.pos, Token: ","}
	case tokenEOF:
		if p.pos == 0 {
			return nil, &EmptyExpressionError{Col: tok.pos}
		}
		return nil, &UnexpectedTokenError{Col: tok.pos}
	default:
		return nil, &UnexpectedTokenError{Col: tok.pos, Token: tok.text}
	}
}

// call parses a function's parenthesized argument list. The grammar demands
// at least one argument; per-function arity is checked through Func.CanCall
// so that e.g. pow requires exactly two.
func (p *parser) call(fn lexToken) (*node, error) {
	open := p.next()
	if open.kind != tokenOpen {
		return nil, &UnexpectedTokenError{Col: open.pos, Token: open.text}
	}
	if err := p.enter(open.pos); err != nil {
		return nil, err
	}
	var args []*node
	for {
		a, err := p.expression()
		if err != nil {
			return nil, err
		}
		args = append(args, a)
		sep := p.next()
		switch sep.kind {
		case tokenSep:
			continue
		case tokenClose:
			p.leave()
			f := p.ctx.funcs[fn.text]
			if f == nil {
				// tokenize resolved the name, so the table changed under us.
				return nil, &UnexpectedTokenError{Col: fn.pos, Token: fn.text}
			}
			if !f.CanCall(len(args)) {
				return nil, &CallError{Col: open.pos, Func: fn.text, Len: len(args)}
			}
			return &node{kind: nodeCall, name: fn.text, fn: f, args: args}, nil
		default:
			return nil, &BracketError{Col: sep.pos, Left: "("}
		}
	}
}
