package node

import (
	"sync"

	"lkit/scalar"
)

// Variable is a named, mutable scalar slot, optionally bound to an
// expression that is re-evaluated (and written back into the variable's
// scalar) on every Eval call. The parser creates and owns variables
// (placeholders included); the variable's identity never changes across a
// rebinding of its value, only its contents do (see Environment.AddVariable).
type Variable struct {
	mu   sync.Mutex
	name string
	val  scalar.Scalar
	expr Node // nil if the variable isn't bound to an expression
}

// NewVariable creates an Undefined-valued variable with the given name.
func NewVariable(name string) *Variable {
	return &Variable{name: name}
}

// Name returns the variable's name.
func (v *Variable) Name() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.name
}

// Eval re-evaluates the bound expression (if any) into the variable's
// scalar, then returns that scalar.
func (v *Variable) Eval() scalar.Scalar {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.expr != nil {
		v.val = v.expr.Eval()
	}
	return v.val
}

// Value returns the variable's current scalar without forcing a bound
// expression to re-evaluate; used by read-only introspection (e.g.
// Environment.GetVariable) that should not have evaluation side effects.
func (v *Variable) Value() scalar.Scalar {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.val
}

// Set assigns name and value atomically, dropping any bound expression.
func (v *Variable) Set(name string, value scalar.Scalar) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.name = name
	v.val = value
	v.expr = nil
}

// SetValue assigns value directly, dropping any bound expression. Used by
// the host API's AddVariable to update a value while preserving identity.
func (v *Variable) SetValue(value scalar.Scalar) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.val = value
	v.expr = nil
}

// Bind attaches expr as the variable's bound expression; the next Eval call
// (and every one after) re-evaluates it into the variable's scalar.
func (v *Variable) Bind(expr Node) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.expr = expr
}

// Equal reports whether two variables have the same name and an equal
// current value (forcing re-evaluation of any bound expression on both, so
// the comparison reflects live state).
func (v *Variable) Equal(other *Variable) bool {
	if other == nil {
		return false
	}
	a, b := v.Eval(), other.Eval()
	return v.Name() == other.Name() && a.Equal(b)
}
