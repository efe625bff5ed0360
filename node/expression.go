package node

import (
	"sync"

	"lkit/scalar"
	"lkit/trace"
)

// Expression pairs a function with an ordered, non-owning argument list.
// Its scalar acts as a one-deep cache of the last evaluation — refreshed
// unconditionally on every Eval call, not change-detected.
type Expression struct {
	mu    sync.Mutex
	name  string // optional debug name
	fn    Function
	args  []Node
	cache scalar.Scalar
}

// NewExpression creates an expression bound to fn with the given initial
// argument list. fn may be nil (an expression created before its function
// is known); Eval on such an expression returns Undefined.
func NewExpression(fn Function, args ...Node) *Expression {
	return &Expression{fn: fn, args: append([]Node(nil), args...)}
}

// Eval invokes the bound function on the current argument list (under the
// expression's lock) and returns the resulting scalar. When tracing is
// enabled, the result is logged under the function's name (or the
// expression's debug name, if set). Arguments are never pre-evaluated for
// tracing purposes — doing so would force short-circuiting functions like
// "and"/"or" to evaluate arguments they are supposed to skip.
func (e *Expression) Eval() scalar.Scalar {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.fn == nil {
		return e.cache
	}

	e.cache = e.fn.Evaluate(e.args)

	if trace.IsEnabled() {
		name := e.fn.Name()
		if e.name != "" {
			name = e.name
		}
		trace.Return(name, e.cache)
	}
	return e.cache
}

// Name returns the expression's optional debug name.
func (e *Expression) Name() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.name
}

// SetName sets the expression's optional debug name.
func (e *Expression) SetName(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.name = name
}

// SetFunction replaces the bound function.
func (e *Expression) SetFunction(fn Function) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.fn = fn
}

// Function returns the bound function, or nil if none is set.
func (e *Expression) Function() Function {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.fn
}

// Args returns a copy of the current argument list.
func (e *Expression) Args() []Node {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]Node(nil), e.args...)
}

// SetArgs replaces the argument list wholesale.
func (e *Expression) SetArgs(args []Node) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.args = append([]Node(nil), args...)
}

// AppendArg appends a single argument to the end of the list.
func (e *Expression) AppendArg(n Node) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.args = append(e.args, n)
}

// AppendArgs appends zero or more arguments to the end of the list.
func (e *Expression) AppendArgs(ns ...Node) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.args = append(e.args, ns...)
}

// RemoveArg removes the first occurrence of n (by reference identity) from
// the argument list. Reports whether an occurrence was found.
func (e *Expression) RemoveArg(n Node) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, a := range e.args {
		if a == n {
			e.args = append(e.args[:i], e.args[i+1:]...)
			return true
		}
	}
	return false
}

// ClearArgs empties the argument list.
func (e *Expression) ClearArgs() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.args = nil
}
