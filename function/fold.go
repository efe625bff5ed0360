package function

import (
	"lkit/node"
	"lkit/scalar"
)

// plusFn implements "+": fold left with +=, seeded by the first non-null,
// non-Undefined argument. Zero valid arguments yields Undefined.
type plusFn struct{}

func (plusFn) Name() string { return "+" }

func (plusFn) Evaluate(args []node.Node) scalar.Scalar {
	vals := evalValid(args)
	if len(vals) == 0 {
		return scalar.New()
	}
	acc := vals[0]
	for _, v := range vals[1:] {
		acc.AddAssign(v)
	}
	return acc
}

// minusFn implements "-": a single argument is negated; with two or more,
// the first seeds a left fold of -=. Zero valid arguments yields Undefined.
type minusFn struct{}

func (minusFn) Name() string { return "-" }

func (minusFn) Evaluate(args []node.Node) scalar.Scalar {
	vals := evalValid(args)
	if len(vals) == 0 {
		return scalar.New()
	}
	if len(vals) == 1 {
		return scalar.Negate(vals[0])
	}
	acc := vals[0]
	for _, v := range vals[1:] {
		acc.SubAssign(v)
	}
	return acc
}

// timesFn implements "*": fold left with *=, seeded by the first valid
// argument. Zero valid arguments yields Undefined.
type timesFn struct{}

func (timesFn) Name() string { return "*" }

func (timesFn) Evaluate(args []node.Node) scalar.Scalar {
	vals := evalValid(args)
	if len(vals) == 0 {
		return scalar.New()
	}
	acc := vals[0]
	for _, v := range vals[1:] {
		acc.MulAssign(v)
	}
	return acc
}

// divFn implements "/": fold left with /=, seeded by the first valid
// argument; a zero-valued divisor clears the running result to Undefined.
// Zero valid arguments yields Undefined.
type divFn struct{}

func (divFn) Name() string { return "/" }

func (divFn) Evaluate(args []node.Node) scalar.Scalar {
	vals := evalValid(args)
	if len(vals) == 0 {
		return scalar.New()
	}
	acc := vals[0]
	for _, v := range vals[1:] {
		acc.DivAssign(v)
	}
	return acc
}
