package mathexpr

import "math"

// constants is the table of named constants recognized by the tokenizer.
// Lookup is case-insensitive; the tokenizer lowercases identifiers before
// consulting it.
var constants = map[string]float64{
	"pi":  math.Pi,
	"e":   math.E,
	"phi": math.Phi,
}

// factorials holds n! for every n with a finite float64 factorial.
// 170! is the last one; 171! overflows.
var factorials [171]float64

func init() {
	factorials[0] = 1
	for i := 1; i < len(factorials); i++ {
		factorials[i] = factorials[i-1] * float64(i)
	}
}

// factorial computes x! for integer x in [0, 170].
func factorial(x float64) (float64, error) {
	if x != math.Trunc(x) || math.IsInf(x, 0) || math.IsNaN(x) {
		return 0, &DomainError{Func: "!", X: x, Msg: "Factorial of non-integer"}
	}
	if x < 0 || x >= float64(len(factorials)) {
		return 0, &DomainError{Func: "!", X: x, Msg: "Factorial out of range"}
	}
	return factorials[int(x)], nil
}
