package function

import (
	"lkit/node"
	"lkit/scalar"
)

// extremumFn implements "max"/"min": fold over the valid arguments, keeping
// whichever one currently wins the comparison. Unlike the arithmetic fold
// operators, the result's tag is whichever element wins, not necessarily
// the first argument's — the spec only mandates first-operand typing for
// {+, -, *, /}. Zero valid arguments yields Undefined.
type extremumFn struct {
	name string
	keep func(best, candidate scalar.Scalar) bool // true if candidate should replace best
}

func (f extremumFn) Name() string { return f.name }

func (f extremumFn) Evaluate(args []node.Node) scalar.Scalar {
	vals := evalValid(args)
	if len(vals) == 0 {
		return scalar.New()
	}
	best := vals[0]
	for _, v := range vals[1:] {
		if f.keep(best, v) {
			best = v
		}
	}
	return best
}

func newMax() node.Function {
	return extremumFn{name: "max", keep: func(best, v scalar.Scalar) bool { return best.Less(v) }}
}

func newMin() node.Function {
	return extremumFn{name: "min", keep: func(best, v scalar.Scalar) bool { return best.Greater(v) }}
}
