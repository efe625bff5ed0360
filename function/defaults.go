package function

import "lkit/node"

// Defaults returns fresh instances of LKit's fixed built-in operator set:
// max, min, +, -, *, /, ==, !=, <, >, <=, >=, and, or, not. This is the set
// Environment.Reset and Environment.UseDefaultFunctions install.
func Defaults() []node.Function {
	return []node.Function{
		newMax(),
		newMin(),
		plusFn{},
		minusFn{},
		timesFn{},
		divFn{},
		newEqual(),
		newNotEqual(),
		newLess(),
		newGreater(),
		newLessEqual(),
		newGreaterEqual(),
		andFn{},
		orFn{},
		notFn{},
	}
}
