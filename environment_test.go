package lkit

import (
	"testing"

	"lkit/scalar"
)

func mustInt(v int32) scalar.Scalar { return scalar.NewInt(v) }

func TestAddVariablePreservesIdentity(t *testing.T) {
	env := NewDefaultEnvironment()
	env.SetSource("(+ x 1)")
	if _, err := env.Evaluate(); err != nil {
		t.Fatal(err)
	}

	first, _ := env.variables.get("x")
	env.AddVariable("x", mustInt(5))
	second, _ := env.variables.get("x")

	if first != second {
		t.Fatal("re-adding an existing variable must preserve node identity")
	}
	got, err := env.Evaluate()
	if err != nil {
		t.Fatal(err)
	}
	if got.EvalAsInt() != 6 {
		t.Fatalf("got %v, want Int 6 (compiled expression observes updated value)", got.String())
	}
}

func TestSetBoundExpressionReEvaluatesEachRead(t *testing.T) {
	env := NewDefaultEnvironment()
	env.AddVariable("n", mustInt(1))
	env.SetSource("(set doubled (* n 2))")
	if _, err := env.Evaluate(); err != nil {
		t.Fatal(err)
	}

	got, _ := env.GetVariable("doubled")
	if got.EvalAsInt() != 2 {
		t.Fatalf("got %v, want Int 2", got.String())
	}

	env.AddVariable("n", mustInt(10))
	env.SetSource("(+ doubled 0)")
	got, err := env.Evaluate()
	if err != nil {
		t.Fatal(err)
	}
	if got.EvalAsInt() != 20 {
		t.Fatalf("got %v, want Int 20 (doubled re-evaluates n*2 on each read)", got.String())
	}
}

func TestResetInstallsDefaults(t *testing.T) {
	env := NewEnvironment()
	env.Reset()

	if _, ok := env.GetVariable("e"); !ok {
		t.Fatal("expected default variable e")
	}
	if _, ok := env.GetVariable("pi"); !ok {
		t.Fatal("expected default variable pi")
	}

	env.SetSource("(+ 1 2 3)")
	got, err := env.Evaluate()
	if err != nil {
		t.Fatal(err)
	}
	if got.EvalAsInt() != 6 {
		t.Fatalf("got %v, want Int 6", got.String())
	}
}

func TestClearEmptiesEverything(t *testing.T) {
	env := NewDefaultEnvironment()
	env.SetSource("(+ 1 2 3)")
	if _, err := env.Evaluate(); err != nil {
		t.Fatal(err)
	}

	env.Clear()

	if env.GetSource() != "" {
		t.Fatal("expected empty source after Clear")
	}
	if _, ok := env.GetVariable("e"); ok {
		t.Fatal("expected variables cleared")
	}
	env.SetSource("(+ 1 2 3)")
	if _, err := env.Evaluate(); err == nil {
		t.Fatal("expected a lookup error: + is no longer registered after Clear")
	}
}

func TestRecompilationReplacesRatherThanAppendsPools(t *testing.T) {
	env := NewDefaultEnvironment()
	env.SetSource("(+ 1 2 3)")
	if _, err := env.Evaluate(); err != nil {
		t.Fatal(err)
	}
	firstConstants := len(env.constants)
	firstSubExprs := len(env.subExprs)

	// Recompiling different source should replace the pools built from the
	// discarded root, not accumulate alongside them.
	env.SetSource("(+ 1 2)")
	if _, err := env.Evaluate(); err != nil {
		t.Fatal(err)
	}
	if len(env.constants) >= firstConstants+2 {
		t.Fatalf("constants pool grew across recompilation: had %d, now %d", firstConstants, len(env.constants))
	}
	if len(env.subExprs) > firstSubExprs {
		t.Fatalf("sub-expression pool grew across recompilation: had %d, now %d", firstSubExprs, len(env.subExprs))
	}

	// Repeatedly recompiling identical source must not grow the pools at
	// all, since each compile fully replaces the previous one's pools.
	env.SetSource("(+ 1 2 3)")
	if _, err := env.Evaluate(); err != nil {
		t.Fatal(err)
	}
	steadyConstants := len(env.constants)
	steadySubExprs := len(env.subExprs)
	for i := 0; i < 3; i++ {
		env.SetSource("(+ 1 2 3)")
		if _, err := env.Evaluate(); err != nil {
			t.Fatal(err)
		}
		if len(env.constants) != steadyConstants {
			t.Fatalf("constants pool size changed across identical recompilation: want %d, got %d", steadyConstants, len(env.constants))
		}
		if len(env.subExprs) != steadySubExprs {
			t.Fatalf("sub-expression pool size changed across identical recompilation: want %d, got %d", steadySubExprs, len(env.subExprs))
		}
	}
}

func TestFailedCompileMidArgumentListLeavesPoolsIntact(t *testing.T) {
	env := NewDefaultEnvironment()
	env.SetSource("(+ 1 2 3)")
	if _, err := env.Evaluate(); err != nil {
		t.Fatal(err)
	}
	wantConstants := len(env.constants)
	wantSubExprs := len(env.subExprs)

	// Bypass SetSource (which would itself clear the pools) so this test
	// exercises compile's own transactional behavior: a source whose head
	// resolves but whose argument list is never terminated fails partway
	// through parseCall, after two constants (1, 2) have already been
	// parsed. Those constants must never reach the environment's pool.
	env.sourceMu.Lock()
	env.source = "(+ 1 2"
	env.sourceMu.Unlock()
	env.rootMu.Lock()
	env.root = nil
	env.rootMu.Unlock()

	if _, err := env.Evaluate(); err == nil {
		t.Fatal("expected a syntax error for an unterminated expression")
	}
	if len(env.constants) != wantConstants {
		t.Fatalf("failed compile leaked constants into the pool: want %d, got %d", wantConstants, len(env.constants))
	}
	if len(env.subExprs) != wantSubExprs {
		t.Fatalf("failed compile leaked sub-expressions into the pool: want %d, got %d", wantSubExprs, len(env.subExprs))
	}

	// Prior state must still evaluate correctly afterward.
	env.SetSource("(+ 1 2 3)")
	got, err := env.Evaluate()
	if err != nil {
		t.Fatal(err)
	}
	if got.EvalAsInt() != 6 {
		t.Fatalf("got %v, want Int 6", got.String())
	}
}

func TestEnvironmentEquality(t *testing.T) {
	a := NewDefaultEnvironment()
	a.SetSource("(+ 1 2)")
	if _, err := a.Evaluate(); err != nil {
		t.Fatal(err)
	}

	b := NewDefaultEnvironment()
	b.SetSource("(+ 1 2)")
	if _, err := b.Evaluate(); err != nil {
		t.Fatal(err)
	}

	if !a.Equal(b) {
		t.Fatal("two independently-built environments over identical source should be equal")
	}

	b.AddVariable("extra", mustInt(1))
	if a.Equal(b) {
		t.Fatal("environments with different variable tables should not be equal")
	}
}
