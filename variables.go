package lkit

import (
	"sort"
	"sync"

	"lkit/node"
	"lkit/scalar"
)

// DefaultE and DefaultPi are the environment's two built-in variables,
// installed by UseDefaultVariables and Reset.
const (
	DefaultE  = 2.71828183
	DefaultPi = 3.14159265
)

// variableTable is the environment's owning name -> *node.Variable map. A
// lookup that creates a placeholder and a lookup that merely reads share
// this type but are exposed as two different methods (get vs resolve) so
// the parser's placeholder-on-unknown-identifier behavior stays explicit
// at the call site.
type variableTable struct {
	mu   sync.RWMutex
	vars map[string]*node.Variable
}

func newVariableTable() *variableTable {
	return &variableTable{vars: make(map[string]*node.Variable)}
}

// get returns the existing variable named name, if any.
func (t *variableTable) get(name string) (*node.Variable, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.vars[name]
	return v, ok
}

// resolve returns the variable named name, creating an Undefined
// placeholder and registering it under that name if none exists yet. The
// returned node's identity is stable across later Add calls for the same
// name (invariant 6, §8).
func (t *variableTable) resolve(name string) *node.Variable {
	t.mu.Lock()
	defer t.mu.Unlock()
	if v, ok := t.vars[name]; ok {
		return v
	}
	v := node.NewVariable(name)
	t.vars[name] = v
	return v
}

// add sets the value of the variable named name, creating it (as a plain,
// unbound variable) if it doesn't already exist. Existing identity is
// preserved: the value overwrites whatever the variable held before, and
// any bound expression is dropped.
func (t *variableTable) add(name string, value scalar.Scalar) *node.Variable {
	t.mu.Lock()
	defer t.mu.Unlock()
	if v, ok := t.vars[name]; ok {
		v.SetValue(value)
		return v
	}
	v := node.NewVariable(name)
	v.SetValue(value)
	t.vars[name] = v
	return v
}

// bind creates or updates the variable named name so that it re-evaluates
// expr on every read (the "set" special form's richer semantics).
func (t *variableTable) bind(name string, expr node.Node) *node.Variable {
	t.mu.Lock()
	defer t.mu.Unlock()
	if v, ok := t.vars[name]; ok {
		v.Bind(expr)
		return v
	}
	v := node.NewVariable(name)
	v.Bind(expr)
	t.vars[name] = v
	return v
}

// remove deletes the variable named name, reporting whether it existed.
func (t *variableTable) remove(name string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.vars[name]; !ok {
		return false
	}
	delete(t.vars, name)
	return true
}

func (t *variableTable) clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.vars = make(map[string]*node.Variable)
}

func (t *variableTable) useDefaults() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.vars["e"] = node.NewVariable("e")
	t.vars["e"].SetValue(scalar.NewDouble(DefaultE))
	t.vars["pi"] = node.NewVariable("pi")
	t.vars["pi"].SetValue(scalar.NewDouble(DefaultPi))
}

func (t *variableTable) names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	names := make([]string, 0, len(t.vars))
	for n := range t.vars {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// equal reports whether two tables hold the same variable names, each with
// an equal current value.
func (t *variableTable) equal(other *variableTable) bool {
	t.mu.RLock()
	other.mu.RLock()
	defer t.mu.RUnlock()
	defer other.mu.RUnlock()

	if len(t.vars) != len(other.vars) {
		return false
	}
	for name, v := range t.vars {
		ov, ok := other.vars[name]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}
