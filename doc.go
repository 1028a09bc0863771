// Package mathexpr implements the expression engine behind the scientific
// calculator: a tokenizer, a recursive-descent parser, an AST evaluator, and
// a result formatter for free-form arithmetic over float64 values.
//
// The pipeline is raw string -> tokens -> AST -> number -> display string.
// Every stage is a pure function; Evaluate and Validate never panic, and all
// failures are reported as typed values. Trigonometric functions honor an
// angle mode (Degrees or Radians) supplied by the caller at evaluation time.
package mathexpr
