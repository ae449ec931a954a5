package trace

import "github.com/arithlab/adder/adder"

// Add records an add op while tracing; otherwise it returns the wrapping
// sum of the operands.
func Add(a, b Uint64) Uint64 {
	return primOp(func() uint64 { return adder.Add(a.Value, b.Value) }, operandVars(a, b)...)
}
