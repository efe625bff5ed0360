package function

import (
	"lkit/node"
	"lkit/scalar"
)

// evalValid evaluates each argument node in order, skipping a nil
// reference (not an error — §4.2) and dropping any result that evaluates
// to Undefined. The returned slice preserves the relative order of the
// surviving arguments.
func evalValid(args []node.Node) []scalar.Scalar {
	vals := make([]scalar.Scalar, 0, len(args))
	for _, a := range args {
		if a == nil {
			continue
		}
		v := a.Eval()
		if v.IsUndefined() {
			continue
		}
		vals = append(vals, v)
	}
	return vals
}
