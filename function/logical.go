package function

import (
	"lkit/node"
	"lkit/scalar"
)

// andFn implements "and": short-circuits to false on the first falsy valid
// argument, otherwise true. Evaluation stops at the deciding argument, so
// later arguments (and any side effects of evaluating them) are never
// forced. Zero valid arguments yields Undefined.
type andFn struct{}

func (andFn) Name() string { return "and" }

func (andFn) Evaluate(args []node.Node) scalar.Scalar {
	any := false
	for _, a := range args {
		v, ok := validArg(a)
		if !ok {
			continue
		}
		any = true
		if !v.EvalAsBool() {
			return scalar.NewBool(false)
		}
	}
	if !any {
		return scalar.New()
	}
	return scalar.NewBool(true)
}

// orFn implements "or": short-circuits to true on the first truthy valid
// argument, otherwise false. Zero valid arguments yields Undefined.
type orFn struct{}

func (orFn) Name() string { return "or" }

func (orFn) Evaluate(args []node.Node) scalar.Scalar {
	any := false
	for _, a := range args {
		v, ok := validArg(a)
		if !ok {
			continue
		}
		any = true
		if v.EvalAsBool() {
			return scalar.NewBool(true)
		}
	}
	if !any {
		return scalar.New()
	}
	return scalar.NewBool(false)
}

// notFn implements "not": negates the first valid argument. Zero valid
// arguments yields Undefined.
type notFn struct{}

func (notFn) Name() string { return "not" }

func (notFn) Evaluate(args []node.Node) scalar.Scalar {
	for _, a := range args {
		v, ok := validArg(a)
		if !ok {
			continue
		}
		return scalar.NewBool(!v.EvalAsBool())
	}
	return scalar.New()
}

// validArg evaluates a single argument node, reporting false if it is a nil
// reference or evaluates to Undefined (both are skipped, not errors).
func validArg(a node.Node) (scalar.Scalar, bool) {
	if a == nil {
		return scalar.Scalar{}, false
	}
	v := a.Eval()
	if v.IsUndefined() {
		return scalar.Scalar{}, false
	}
	return v, true
}
