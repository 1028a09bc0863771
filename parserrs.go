package mathexpr

import "strconv"

// UnexpectedTokenError is an error indicating a token that cannot appear at
// its position in the grammar. It implements InputError.
type UnexpectedTokenError struct {
	// Col is the position of the token.
	Col int
	// Token is the token text. The empty string means end of input.
	Token string
}

func (err *UnexpectedTokenError) Error() string {
	if err.Token == "" {
		return errpos(err.Col, "unexpected end of expression")
	}
	return errpos(err.Col, "unexpected token "+strconv.Quote(err.Token))
}

func (err *UnexpectedTokenError) Pos() int {
	return err.Col
}

// BracketError is an error indicating unbalanced parentheses. It implements
// InputError.
type BracketError struct {
	// Col is the position of the problem.
	Col int
	// Left is "(" when an open parenthesis has no close.
	Left string
	// Right is ")" when a close parenthesis has no open.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "unmatched closing parenthesis")
	}
	return errpos(err.Col, "missing closing parenthesis")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating an empty expression or
// subexpression.
type EmptyExpressionError struct {
	// Col is the position of the token that ended the subexpression.
	Col int
	// End is the token that ended the subexpression, or the empty string at
	// end of input.
	End string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" && err.Col <= 1 {
		return "Empty expression"
	}
	if err.End == "" {
		return errpos(err.Col, "no expression at end")
	}
	return errpos(err.Col, "no expression before "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// NestingError is an error indicating that parenthesis or function-call
// nesting exceeded the configured maximum depth.
type NestingError struct {
	// Col is the position where the limit was exceeded.
	Col int
	// Depth is the maximum depth that was exceeded.
	Depth int
}

func (err *NestingError) Error() string {
	return errpos(err.Col, "too deeply nested (limit "+strconv.Itoa(err.Depth)+")")
}

func (err *NestingError) Pos() int {
	return err.Col
}

// CallError is an error indicating a function call with the wrong number of
// arguments. It implements InputError.
type CallError struct {
	// Col is the position of the call's argument list.
	Col int
	// Func is the function name that was called.
	Func string
	// Len is the number of arguments the call supplied.
	Len int
}

func (err *CallError) Error() string {
	return errpos(err.Col, "cannot call "+err.Func+" with "+strconv.Itoa(err.Len)+" arguments")
}

func (err *CallError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting
// from invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based rune column of the token that caused the
	// error, counted in the normalized expression.
	Pos() int
}

var (
	_ InputError = (*UnexpectedTokenError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*NestingError)(nil)
	_ InputError = (*CallError)(nil)
	_ InputError = (*LexError)(nil)
)
