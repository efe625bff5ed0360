package scalar

import (
	"math"
	"testing"
)

func TestCoercionRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		s    Scalar
	}{
		{"bool true", NewBool(true)},
		{"bool false", NewBool(false)},
		{"int", NewInt(42)},
		{"int negative", NewInt(-7)},
		{"double", NewDouble(3.5)},
		{"timestamp", NewTimestamp(123456789)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.s
			switch s.Type() {
			case Bool:
				if NewBool(s.EvalAsBool()) != s {
					t.Errorf("bool round-trip broke for %v", s)
				}
			case Int:
				if s.EvalAsInt() != s.i {
					t.Errorf("int round-trip broke for %v", s)
				}
			case Double:
				if s.EvalAsDouble() != s.d {
					t.Errorf("double round-trip broke for %v", s)
				}
			case Timestamp:
				if s.EvalAsTimestamp() != s.ts {
					t.Errorf("timestamp round-trip broke for %v", s)
				}
			}
		})
	}
}

func TestUndefinedCoercion(t *testing.T) {
	u := New()
	if u.EvalAsBool() != false {
		t.Error("undefined as bool should be false")
	}
	if u.EvalAsInt() != 0 {
		t.Error("undefined as int should be 0")
	}
	if u.EvalAsTimestamp() != 0 {
		t.Error("undefined as timestamp should be 0")
	}
	if !math.IsNaN(u.EvalAsDouble()) {
		t.Error("undefined as double should be NaN")
	}
}

func TestDestinationTypedAdd(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Scalar
		wantTag  Tag
		wantInt  int32
		wantDbl  float64
		checkDbl bool
	}{
		{"int dominates over double", NewInt(10), NewDouble(5.5), Int, 15, 0, false},
		{"double dominates over int", NewDouble(5.5), NewInt(10), Double, 0, 15.5, true},
		{"undefined adopts source", New(), NewInt(6), Int, 6, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Add(tt.a, tt.b)
			if got.Type() != tt.wantTag {
				t.Fatalf("tag = %s, want %s", got.Type(), tt.wantTag)
			}
			if tt.checkDbl {
				if got.EvalAsDouble() != tt.wantDbl {
					t.Errorf("value = %v, want %v", got.EvalAsDouble(), tt.wantDbl)
				}
			} else if got.Type() == Int && got.EvalAsInt() != tt.wantInt {
				t.Errorf("value = %v, want %v", got.EvalAsInt(), tt.wantInt)
			}
		})
	}
}

func TestSubtractFromUndefinedNegates(t *testing.T) {
	got := Sub(New(), NewInt(5))
	if got.Type() != Int || got.EvalAsInt() != -5 {
		t.Errorf("got %v, want Int(-5)", got.String())
	}

	gotD := Sub(New(), NewDouble(2.5))
	if gotD.Type() != Double || gotD.EvalAsDouble() != -2.5 {
		t.Errorf("got %v, want Double(-2.5)", gotD.String())
	}
}

func TestMulDivOnUndefinedTargetIsNoop(t *testing.T) {
	m := New()
	m.MulAssign(NewInt(5))
	if !m.IsUndefined() {
		t.Error("*= on Undefined target should stay Undefined")
	}

	d := New()
	d.DivAssign(NewInt(5))
	if !d.IsUndefined() {
		t.Error("/= on Undefined target should stay Undefined")
	}
}

func TestDivisionByZeroClearsTarget(t *testing.T) {
	i := NewInt(10)
	i.DivAssign(NewInt(0))
	if !i.IsUndefined() {
		t.Error("int /= 0 should clear to Undefined")
	}

	d := NewDouble(10)
	d.DivAssign(NewDouble(0))
	if !d.IsUndefined() {
		t.Error("double /= 0 should clear to Undefined")
	}
}

func TestBoolArithmeticSpecialCases(t *testing.T) {
	tests := []struct {
		name   string
		a, b   bool
		opFn   func(s *Scalar, v any)
		want   bool
	}{
		{"true + false = xor = true", true, false, (*Scalar).AddAssign, true},
		{"true + true = xor = false", true, true, (*Scalar).AddAssign, false},
		{"true - false = xor = true", true, false, (*Scalar).SubAssign, true},
		{"true / true = !(xor) = true", true, true, (*Scalar).DivAssign, true},
		{"true / false = !(xor) = false", true, false, (*Scalar).DivAssign, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewBool(tt.a)
			tt.opFn(&s, NewBool(tt.b))
			if s.EvalAsBool() != tt.want {
				t.Errorf("got %v, want %v", s.EvalAsBool(), tt.want)
			}
		})
	}
}

func TestComparisonCoercion(t *testing.T) {
	a := NewInt(1)
	if !a.Equal(NewDouble(1.9)) {
		t.Error("Int(1) should equal Double(1.9) coerced down to Int(1)")
	}
	b := NewDouble(1.9)
	if b.Equal(NewInt(1)) {
		t.Error("Double(1.9) should not equal Int(1) coerced up to Double(1.0)")
	}
}

func TestUndefinedComparison(t *testing.T) {
	u1, u2 := New(), New()
	if !u1.Equal(u2) {
		t.Error("Undefined should equal Undefined")
	}
	five := NewInt(5)
	if five.Equal(New()) {
		t.Error("Int should never equal Undefined")
	}
	if five.Less(New()) || five.Greater(New()) {
		t.Error("all orderings against Undefined must be false")
	}
}

func TestHashStableWithinEquality(t *testing.T) {
	a := NewInt(42)
	b := NewInt(42)
	if !a.Equal(b) {
		t.Fatal("precondition failed: a should equal b")
	}
	if a.Hash() != b.Hash() {
		t.Error("equal scalars must hash equal")
	}
	u := New()
	if u.Hash() != 0 {
		t.Error("Undefined must hash to the sentinel 0")
	}
}

func TestFreeArithmeticIsFirstOperandTyped(t *testing.T) {
	// (+ 10 5.5 3.14 6.2) -> Int 24
	result := NewInt(10)
	result.AddAssign(NewDouble(5.5))
	result.AddAssign(NewDouble(3.14))
	result.AddAssign(NewDouble(6.2))
	if result.Type() != Int || result.EvalAsInt() != 24 {
		t.Errorf("got %v, want Int(24)", result.String())
	}

	// (+ 5.5 10 3.14 6.2) -> Double 24.84
	resultD := NewDouble(5.5)
	resultD.AddAssign(NewInt(10))
	resultD.AddAssign(NewDouble(3.14))
	resultD.AddAssign(NewDouble(6.2))
	if resultD.Type() != Double || math.Abs(resultD.EvalAsDouble()-24.84) > 1e-9 {
		t.Errorf("got %v, want Double(24.84)", resultD.String())
	}
}
