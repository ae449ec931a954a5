// Package trace records additions symbolically. Outside a trace each
// operation evaluates immediately through the adder package; inside one it
// appends an op to the active scope instead, so a computation over inputs
// can be inspected as an op listing.
//
// The active scope is package state, as in a REPL: Start and Stop are meant
// to be called from a single goroutine.
package trace

import (
	"fmt"
	"runtime"
	"strings"
)

func qualifiedCallerName(skip int) string {
	pc, _, _, ok := runtime.Caller(skip + 1)
	if !ok {
		panic("caller unavailable")
	}
	frames := runtime.CallersFrames((&[1]uintptr{pc})[:])
	frame, _ := frames.Next()
	return frame.Function
}

// Op is a single recorded operation: outputs := tag(inputs).
type Op struct {
	tag     string
	inputs  []Variable
	outputs []Variable
}

func (o Op) StringWithIndent(indent int) string {
	indents := strings.Repeat("\t", indent)
	results := make([]string, len(o.outputs))
	for i, v := range o.outputs {
		results[i] = fmt.Sprintf("v%d", v.id)
	}
	inputs := make([]string, len(o.inputs))
	for i, v := range o.inputs {
		inputs[i] = fmt.Sprintf("v%d", v.id)
	}
	return fmt.Sprintf("%s%s := %s(%s)", indents, strings.Join(results, ", "), o.tag, strings.Join(inputs, ", "))
}

// Scope holds the ops recorded between Start and Stop.
type Scope struct {
	lastVar int
	ops     []Op
}

func (s *Scope) String() string {
	res := ""
	for _, op := range s.ops {
		res += op.StringWithIndent(1) + "\n"
	}
	return res
}

// Len returns the number of recorded ops.
func (s *Scope) Len() int {
	return len(s.ops)
}

func (s *Scope) newVariable() Variable {
	s.lastVar++
	return Variable{
		id:    s.lastVar,
		scope: s,
	}
}

var activeScope *Scope = nil

// Variable identifies a value inside a scope's op listing.
type Variable struct {
	id    int
	scope *Scope
}

// Uint64 is a traced operand: a concrete value, plus the variable standing
// for it when it was produced under tracing.
type Uint64 struct {
	Variable *Variable
	Value    uint64
}

// Tracing reports whether a scope is currently recording.
func Tracing() bool {
	return activeScope != nil
}

// Start begins recording ops into a fresh scope.
func Start() {
	activeScope = &Scope{}
}

// Stop ends recording and returns the scope.
func Stop() *Scope {
	res := activeScope
	activeScope = nil
	return res
}

// Input returns a fresh free variable of the active scope, or a plain zero
// operand when not tracing.
func Input() Uint64 {
	if activeScope == nil {
		return Uint64{}
	}
	v := activeScope.newVariable()
	return Uint64{Variable: &v}
}

// Lift wraps a concrete value as a traced operand.
func Lift(v uint64) Uint64 {
	return Uint64{Value: v}
}

func primOp(handler func() uint64, vars ...Variable) Uint64 {
	if activeScope == nil {
		return Uint64{Value: handler()}
	}
	res := activeScope.newVariable()
	activeScope.ops = append(activeScope.ops, Op{qualifiedCallerName(1), vars, []Variable{res}})
	return Uint64{Variable: &res}
}

func operandVars(operands ...Uint64) []Variable {
	vars := make([]Variable, 0, len(operands))
	for _, o := range operands {
		if o.Variable != nil {
			vars = append(vars, *o.Variable)
		}
	}
	return vars
}
