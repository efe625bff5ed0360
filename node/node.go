// Package node implements LKit's evaluation tree: constant, variable, and
// expression nodes sharing one evaluable interface, plus the Function
// contract that expression nodes invoke. The environment (see the root
// lkit package) owns every node; nodes hold only non-owning references to
// each other, modeled here as arena-friendly pointers rather than raw
// back-references, per the design notes in the specification.
package node

import "lkit/scalar"

// Node is any evaluable element of the tree: a constant, a variable, or an
// expression. Evaluating a Node never returns an error — mixed types are
// coerced silently, and division by zero and similar anomalies produce an
// Undefined scalar instead (see the Function contract).
type Node interface {
	Eval() scalar.Scalar
}

// Function is a named operator registered in the environment's function
// table. Evaluate receives the expression's current argument list and
// evaluates each argument node itself, in order, as needed — it is the
// function, not the expression, that decides how (and whether) to force
// each argument, which is what lets "and"/"or" short-circuit.
type Function interface {
	Name() string
	Evaluate(args []Node) scalar.Scalar
}
