package node

import (
	"testing"

	"lkit/scalar"
)

// constFn is a minimal Function used only to exercise Expression plumbing;
// the real operator set lives in package function.
type constFn struct {
	name string
	fn   func(args []Node) scalar.Scalar
}

func (f constFn) Name() string                      { return f.name }
func (f constFn) Evaluate(args []Node) scalar.Scalar { return f.fn(args) }

func sum(args []Node) scalar.Scalar {
	result := scalar.New()
	for _, a := range args {
		if a == nil {
			continue
		}
		v := a.Eval()
		if v.IsUndefined() {
			continue
		}
		result.AddAssign(v)
	}
	return result
}

func TestExpressionEvalInvokesFunction(t *testing.T) {
	expr := NewExpression(constFn{"+", sum}, NewConst(scalar.NewInt(1)), NewConst(scalar.NewInt(2)))
	got := expr.Eval()
	if got.Type() != scalar.Int || got.EvalAsInt() != 3 {
		t.Errorf("got %v, want Int(3)", got.String())
	}
}

func TestExpressionNilFunctionIsUndefined(t *testing.T) {
	expr := NewExpression(nil)
	got := expr.Eval()
	if !got.IsUndefined() {
		t.Error("expression with no bound function should evaluate to Undefined")
	}
}

func TestExpressionMutators(t *testing.T) {
	a := NewConst(scalar.NewInt(1))
	b := NewConst(scalar.NewInt(2))
	expr := NewExpression(constFn{"+", sum}, a)
	expr.AppendArg(b)
	if len(expr.Args()) != 2 {
		t.Fatalf("expected 2 args, got %d", len(expr.Args()))
	}

	if !expr.RemoveArg(a) {
		t.Fatal("expected RemoveArg to find a by identity")
	}
	if len(expr.Args()) != 1 || expr.Args()[0] != Node(b) {
		t.Fatalf("expected only b to remain, got %v", expr.Args())
	}

	expr.ClearArgs()
	if len(expr.Args()) != 0 {
		t.Fatal("expected no args after ClearArgs")
	}
}

func TestVariableBoundExpressionReEvaluates(t *testing.T) {
	x := NewVariable("x")
	x.SetValue(scalar.NewInt(10))

	expr := NewExpression(constFn{"+", sum}, x, NewConst(scalar.NewInt(5)))
	bound := NewVariable("y")
	bound.Bind(expr)

	got := bound.Eval()
	if got.EvalAsInt() != 15 {
		t.Fatalf("got %v, want 15", got.EvalAsInt())
	}

	x.SetValue(scalar.NewInt(100))
	got = bound.Eval()
	if got.EvalAsInt() != 105 {
		t.Fatalf("after rebinding x, got %v, want 105", got.EvalAsInt())
	}
}

func TestVariableSetPreservesIdentityAcrossRebinds(t *testing.T) {
	x := NewVariable("x")
	x.SetValue(scalar.NewInt(1))

	expr := NewExpression(constFn{"+", sum}, x, NewConst(scalar.NewInt(1)))

	x.SetValue(scalar.NewInt(41))
	got := expr.Eval()
	if got.EvalAsInt() != 42 {
		t.Fatalf("expression should observe x's new value through the same node, got %v", got.EvalAsInt())
	}
}

func TestVariableEquality(t *testing.T) {
	a := NewVariable("x")
	a.SetValue(scalar.NewInt(1))
	b := NewVariable("x")
	b.SetValue(scalar.NewInt(1))
	c := NewVariable("y")
	c.SetValue(scalar.NewInt(1))

	if !a.Equal(b) {
		t.Error("variables with same name and value should be equal")
	}
	if a.Equal(c) {
		t.Error("variables with different names should not be equal")
	}
}
