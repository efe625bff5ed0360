package function

import (
	"lkit/node"
	"lkit/scalar"
)

// compareFn implements the relational operators. Per §4.2 they distribute
// between consecutive pairs left-to-right: == requires every later value to
// equal the first; != requires none to equal the first; the four ordering
// operators form a strict chain where each successive value must satisfy
// the relation against the previous one (which then becomes the new
// pivot). Any operator needs at least two valid arguments; fewer yields
// Undefined, otherwise a Bool.
type compareFn struct {
	name  string
	apply func(pivot, next *scalar.Scalar) bool
	chain bool // true for the four ordering operators; false for ==/!=, which always compare against the first value
}

func (f compareFn) Name() string { return f.name }

func (f compareFn) Evaluate(args []node.Node) scalar.Scalar {
	vals := evalValid(args)
	if len(vals) < 2 {
		return scalar.New()
	}

	pivot := vals[0]
	for _, v := range vals[1:] {
		if !f.apply(&pivot, &v) {
			return scalar.NewBool(false)
		}
		if f.chain {
			pivot = v
		}
	}
	return scalar.NewBool(true)
}

func newEqual() node.Function {
	return compareFn{name: "==", apply: func(pivot, next *scalar.Scalar) bool { return pivot.Equal(*next) }}
}

func newNotEqual() node.Function {
	return compareFn{name: "!=", apply: func(pivot, next *scalar.Scalar) bool { return pivot.NotEqual(*next) }}
}

func newLess() node.Function {
	return compareFn{name: "<", apply: func(pivot, next *scalar.Scalar) bool { return pivot.Less(*next) }, chain: true}
}

func newGreater() node.Function {
	return compareFn{name: ">", apply: func(pivot, next *scalar.Scalar) bool { return pivot.Greater(*next) }, chain: true}
}

func newLessEqual() node.Function {
	return compareFn{name: "<=", apply: func(pivot, next *scalar.Scalar) bool { return pivot.LessEqual(*next) }, chain: true}
}

func newGreaterEqual() node.Function {
	return compareFn{name: ">=", apply: func(pivot, next *scalar.Scalar) bool { return pivot.GreaterEqual(*next) }, chain: true}
}
