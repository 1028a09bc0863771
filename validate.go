package mathexpr

import "strconv"

// Issue is a single validation problem with an optional position.
type Issue struct {
	// Message is a short description of the problem.
	Message string
	// Pos is the 1-based rune column of the problem, or 0 when the problem
	// has no single position.
	Pos int
}

// Validation is the outcome of validating an expression without evaluating
// it.
type Validation struct {
	// Valid reports whether the expression tokenizes and parses.
	Valid bool
	// Errors lists the problems found, in input order.
	Errors []Issue
	// Warnings lists non-fatal oddities, such as characters the tokenizer
	// skipped.
	Warnings []string
}

// Validate checks an expression for lexical and syntactic problems so a
// caller can give live feedback while the user is still typing. It first
// runs a running-depth scan over parentheses on the raw input; only a
// balanced expression proceeds to the full tokenize and parse.
func Validate(src string, opts ...ParseOption) Validation {
	var v Validation
	depth := 0
	col := 0
	for _, r := range src {
		col++
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				v.Errors = append(v.Errors, Issue{
					Message: "unmatched closing parenthesis",
					Pos:     col,
				})
				depth = 0
			}
		}
	}
	if depth > 0 {
		v.Errors = append(v.Errors, Issue{
			Message: "missing " + strconv.Itoa(depth) + " closing parenthesis(es)",
		})
	}
	if len(v.Errors) > 0 {
		return v
	}

	ctx := parsectx{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		ctx = opt.parseOption(ctx)
	}
	if ctx.funcs == nil {
		ctx.funcs = globalfuncs
	}
	toks, skipped, err := tokenize(src, ctx.funcs)
	for _, s := range skipped {
		v.Warnings = append(v.Warnings, "ignored character "+strconv.Quote(s.text)+" at column "+strconv.Itoa(s.pos))
	}
	if err != nil {
		v.Errors = append(v.Errors, issueOf(err))
		return v
	}
	p := &parser{toks: toks, ctx: &ctx}
	if _, err := p.expression(); err != nil {
		v.Errors = append(v.Errors, issueOf(err))
		return v
	}
	if tok := p.peek(); tok.kind != tokenEOF {
		v.Errors = append(v.Errors, issueOf(p.trailing(tok)))
		return v
	}
	v.Valid = true
	return v
}

// issueOf converts a parse or lex error into an Issue, lifting the position
// out of InputError when available.
func issueOf(err error) Issue {
	if ie, ok := err.(InputError); ok {
		return Issue{Message: err.Error(), Pos: ie.Pos()}
	}
	return Issue{Message: err.Error()}
}
