package node

import "lkit/scalar"

// Const is a leaf node wrapping an anonymous scalar literal. The
// environment's constant pool owns these; expressions hold non-owning
// references to them.
type Const struct {
	val scalar.Scalar
}

// NewConst wraps v as a constant node.
func NewConst(v scalar.Scalar) *Const {
	return &Const{val: v}
}

// Eval returns the constant's value.
func (c *Const) Eval() scalar.Scalar {
	return c.val
}
