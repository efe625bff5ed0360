// Package lkit compiles and evaluates LKit source: a small, embeddable,
// Lisp-like prefix expression language over a typed polymorphic scalar
// (see the scalar package). Environment is the host-facing entry point —
// it owns the source text, the function and variable tables, the
// constant and sub-expression pools, and the compiled root, and is the
// sole authority for node identity and lifetime.
package lkit

import (
	"sync"

	"lkit/function"
	"lkit/node"
	"lkit/scalar"
	"lkit/trace"
)

// Environment owns every node reachable from its compiled root: the
// constant pool, the sub-expression pool, the variable table, and the
// function table. Expressions and variables hold only non-owning
// references into these pools; recompiling or clearing the environment is
// the only thing that drops them.
type Environment struct {
	sourceMu sync.RWMutex
	source   string

	functions *function.Registry
	variables *variableTable

	constantsMu sync.Mutex
	constants   []*node.Const

	subExprMu sync.Mutex
	subExprs  []*node.Expression

	rootMu sync.RWMutex
	root   node.Node
}

// NewEnvironment returns an empty environment: no source, no functions, no
// variables. Call UseDefaultFunctions/UseDefaultVariables, or Reset, to
// install the built-in set before compiling source that relies on it.
func NewEnvironment() *Environment {
	return &Environment{
		functions: function.NewRegistry(),
		variables: newVariableTable(),
	}
}

// NewDefaultEnvironment returns an environment pre-seeded with the
// built-in functions and variables.
func NewDefaultEnvironment() *Environment {
	e := NewEnvironment()
	e.Reset()
	return e
}

// SetSource replaces the source text and discards any compiled root, along
// with the constant and sub-expression pools that root was built from —
// those nodes are unreachable once the root they belong to is gone, and
// the next compile rebuilds the pools from scratch rather than appending
// to the discarded ones. Variables and functions are left untouched, so a
// host can evaluate a sequence of expressions against accumulated
// variable state.
func (e *Environment) SetSource(text string) {
	e.sourceMu.Lock()
	e.source = text
	e.sourceMu.Unlock()

	e.rootMu.Lock()
	e.root = nil
	e.rootMu.Unlock()

	e.constantsMu.Lock()
	e.constants = nil
	e.constantsMu.Unlock()

	e.subExprMu.Lock()
	e.subExprs = nil
	e.subExprMu.Unlock()
}

// GetSource returns the current source text.
func (e *Environment) GetSource() string {
	e.sourceMu.RLock()
	defer e.sourceMu.RUnlock()
	return e.source
}

// AddVariable sets the variable named name to value, creating an unbound
// variable under that name if none exists. Re-adding an existing name
// updates its value (and drops any bound expression) while preserving the
// node's identity, so a compiled expression already holding a reference to
// it observes the new value on its next evaluation.
func (e *Environment) AddVariable(name string, value scalar.Scalar) {
	e.variables.add(name, value)
}

// AddVariableNode installs an already-constructed variable, replacing
// whatever was registered under its name before.
func (e *Environment) AddVariableNode(v *node.Variable) {
	e.variables.mu.Lock()
	e.variables.vars[v.Name()] = v
	e.variables.mu.Unlock()
}

// GetVariable returns the named variable's current value and whether it
// exists. It does not force a bound expression to re-evaluate.
func (e *Environment) GetVariable(name string) (scalar.Scalar, bool) {
	v, ok := e.variables.get(name)
	if !ok {
		return scalar.Scalar{}, false
	}
	return v.Value(), true
}

// RemoveVariable deletes the named variable, reporting whether it existed.
func (e *Environment) RemoveVariable(name string) bool { return e.variables.remove(name) }

// ClearVariables empties the variable table.
func (e *Environment) ClearVariables() { e.variables.clear() }

// UseDefaultVariables installs e (2.71828183) and pi (3.14159265),
// leaving any other already-registered variables untouched.
func (e *Environment) UseDefaultVariables() { e.variables.useDefaults() }

// AddFunction registers fn under its own Name(), replacing whatever
// function was registered under that name before.
func (e *Environment) AddFunction(fn node.Function) { e.functions.Register(fn) }

// RemoveFunction deletes the named function, reporting whether it existed.
func (e *Environment) RemoveFunction(name string) bool { return e.functions.Remove(name) }

// ClearFunctions empties the function table.
func (e *Environment) ClearFunctions() { e.functions.Clear() }

// UseDefaultFunctions installs the fixed built-in operator set.
func (e *Environment) UseDefaultFunctions() { e.functions.UseDefaults() }

// Evaluate compiles the current source if it hasn't been compiled yet,
// then evaluates the compiled root. A compile error aborts the call and
// leaves functions, pools, and any previously compiled root untouched, so
// the host can fix the source and retry. The variable table is not rolled
// back: placeholders created for identifiers, and bindings made by 'set'
// forms, that were parsed before the error point stay in place.
func (e *Environment) Evaluate() (scalar.Scalar, error) {
	e.rootMu.RLock()
	root := e.root
	e.rootMu.RUnlock()

	if root == nil {
		var err error
		root, err = e.compile()
		if err != nil {
			return scalar.Scalar{}, err
		}
	}
	result := root.Eval()
	if v, ok := root.(*node.Variable); ok {
		trace.Set(v.Name(), result)
	}
	return result, nil
}

// compile parses the current source in full. Parsing accumulates its
// constants and sub-expressions into the parser's own scratch pools
// (never the environment's) so that a source which fails partway through
// — say, an unterminated expression after several valid literals — never
// leaks those nodes into the environment: on a parse error, nothing is
// committed to the pools or the root, and functions, pools, and any
// previously compiled root are left exactly as they were. Variable-table
// changes made while parsing (placeholders, 'set' bindings) are not
// undone. Only once parsing the
// full program succeeds are the scratch pools committed to the
// environment, replacing whatever pools the previous compiled root left
// behind.
//
// Every top-level form is parsed in textual order (a 'set' form's
// variable registration happens as a parsing side effect, via the
// variable table); every form but the last is then evaluated once, for
// any further side effects, and discarded — the last form becomes the
// new compiled root.
func (e *Environment) compile() (node.Node, error) {
	src := e.GetSource()
	p := newParser(src, e)
	forms, err := p.parseProgram()
	if err != nil {
		trace.CompileError(src, err)
		return nil, err
	}

	e.constantsMu.Lock()
	e.constants = p.constants
	e.constantsMu.Unlock()

	e.subExprMu.Lock()
	e.subExprs = p.subExprs
	e.subExprMu.Unlock()

	for _, f := range forms[:len(forms)-1] {
		result := f.Eval()
		if v, ok := f.(*node.Variable); ok {
			trace.Set(v.Name(), result)
		}
	}
	root := forms[len(forms)-1]

	e.rootMu.Lock()
	e.root = root
	e.rootMu.Unlock()
	return root, nil
}

// Clear empties the environment entirely: source, functions, variables,
// pools, and the compiled root. SetSource("") already drops the compiled
// root and its pools; Clear additionally empties the function and
// variable tables.
func (e *Environment) Clear() {
	e.SetSource("")
	e.functions.Clear()
	e.variables.clear()
}

// Reset clears the environment, then installs the default functions and
// variables. Always succeeds; the bool result mirrors the host API's
// convention rather than signaling any real failure mode.
func (e *Environment) Reset() bool {
	e.Clear()
	e.UseDefaultFunctions()
	e.UseDefaultVariables()
	return true
}

// Equal reports whether two environments have matching source text and
// element-wise equal constant pools, variable tables, and function
// tables.
func (e *Environment) Equal(other *Environment) bool {
	if other == nil {
		return false
	}
	if e.GetSource() != other.GetSource() {
		return false
	}
	if !e.variables.equal(other.variables) {
		return false
	}
	if !e.functions.Equal(other.functions) {
		return false
	}
	return e.equalConstants(other)
}

func (e *Environment) equalConstants(other *Environment) bool {
	e.constantsMu.Lock()
	other.constantsMu.Lock()
	defer e.constantsMu.Unlock()
	defer other.constantsMu.Unlock()

	if len(e.constants) != len(other.constants) {
		return false
	}
	for i, c := range e.constants {
		a, b := c.Eval(), other.constants[i].Eval()
		if !a.Equal(b) {
			return false
		}
	}
	return true
}
