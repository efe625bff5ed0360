// Package scalar implements LKit's typed polymorphic value: a tagged union
// of undefined, bool, 32-bit int, 64-bit float and a microsecond timestamp,
// with mixed-type arithmetic, comparison and coercion.
package scalar

import (
	"fmt"
	"math"
)

// Tag identifies which payload a Scalar currently holds.
type Tag int

const (
	Undefined Tag = iota
	Bool
	Int
	Double
	Timestamp
)

func (t Tag) String() string {
	switch t {
	case Undefined:
		return "undefined"
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Double:
		return "double"
	case Timestamp:
		return "timestamp"
	default:
		return "unknown"
	}
}

// Scalar is LKit's tagged-union value. The zero value is Undefined and is
// ready to use. Scalar is freely copyable: every copy carries its own lock,
// so concurrent mutation of two copies never contends with each other.
//
// Every exported method that reads or writes the payload takes the
// instance's spinLock for the duration of the operation; unexported
// "*Nolock" helpers assume the caller already holds it, for composite
// operations (e.g. destination-typed compound assignment) that would
// otherwise re-enter the lock.
type Scalar struct {
	mu  spinLock
	tag Tag
	b   bool
	i   int32
	d   float64
	ts  uint64
}

// New returns an Undefined scalar.
func New() Scalar { return Scalar{} }

// NewBool returns a Bool scalar.
func NewBool(v bool) Scalar { return Scalar{tag: Bool, b: v} }

// NewInt returns an Int scalar.
func NewInt(v int32) Scalar { return Scalar{tag: Int, i: v} }

// NewDouble returns a Double scalar.
func NewDouble(v float64) Scalar { return Scalar{tag: Double, d: v} }

// NewTimestamp returns a Timestamp scalar (microseconds since the epoch, or
// since midnight for a time-only literal — see the parser's timestamp
// forms).
func NewTimestamp(v uint64) Scalar { return Scalar{tag: Timestamp, ts: v} }

// Type returns the scalar's current tag.
func (s *Scalar) Type() Tag {
	s.mu.lock()
	defer s.mu.unlock()
	return s.tag
}

func (s *Scalar) IsUndefined() bool {
	s.mu.lock()
	defer s.mu.unlock()
	return s.tag == Undefined
}

func (s *Scalar) IsInteger() bool {
	s.mu.lock()
	defer s.mu.unlock()
	return s.tag == Int
}

func (s *Scalar) IsDouble() bool {
	s.mu.lock()
	defer s.mu.unlock()
	return s.tag == Double
}

func (s *Scalar) IsTime() bool {
	s.mu.lock()
	defer s.mu.unlock()
	return s.tag == Timestamp
}

// Clear resets the scalar to Undefined.
func (s *Scalar) Clear() {
	s.mu.lock()
	defer s.mu.unlock()
	s.clearNolock()
}

func (s *Scalar) clearNolock() {
	*s = Scalar{mu: s.mu}
}

// Assign overwrites s with other's tag and payload, clobbering whatever s
// held before.
func (s *Scalar) Assign(other Scalar) {
	s.mu.lock()
	defer s.mu.unlock()
	s.assignNolock(other)
}

func (s *Scalar) assignNolock(other Scalar) {
	s.tag, s.b, s.i, s.d, s.ts = other.tag, other.b, other.i, other.d, other.ts
}

func (s *Scalar) AssignBool(v bool)          { s.Assign(NewBool(v)) }
func (s *Scalar) AssignInt(v int32)          { s.Assign(NewInt(v)) }
func (s *Scalar) AssignDouble(v float64)     { s.Assign(NewDouble(v)) }
func (s *Scalar) AssignTimestamp(v uint64)   { s.Assign(NewTimestamp(v)) }

// String returns a debug representation, used by trace output and %v.
func (s *Scalar) String() string {
	s.mu.lock()
	defer s.mu.unlock()
	switch s.tag {
	case Undefined:
		return "undefined"
	case Bool:
		return fmt.Sprintf("%t", s.b)
	case Int:
		return fmt.Sprintf("%d", s.i)
	case Double:
		return fmt.Sprintf("%g", s.d)
	case Timestamp:
		return fmt.Sprintf("%dus", s.ts)
	default:
		return "?"
	}
}

// ---------------------------------------------------------------------
// Coercion ("eval_as_<T>")
// ---------------------------------------------------------------------

// EvalAsBool coerces the scalar to bool. Undefined is false; numeric values
// are truthy iff non-zero.
func (s *Scalar) EvalAsBool() bool {
	s.mu.lock()
	defer s.mu.unlock()
	return s.asBoolNolock()
}

func (s *Scalar) asBoolNolock() bool {
	switch s.tag {
	case Undefined:
		return false
	case Bool:
		return s.b
	case Int:
		return s.i != 0
	case Double:
		return s.d != 0
	case Timestamp:
		return s.ts != 0
	default:
		return false
	}
}

// EvalAsInt coerces the scalar to int32. Undefined is 0.
func (s *Scalar) EvalAsInt() int32 {
	s.mu.lock()
	defer s.mu.unlock()
	return s.asIntNolock()
}

func (s *Scalar) asIntNolock() int32 {
	switch s.tag {
	case Undefined:
		return 0
	case Bool:
		if s.b {
			return 1
		}
		return 0
	case Int:
		return s.i
	case Double:
		return int32(s.d)
	case Timestamp:
		return int32(s.ts)
	default:
		return 0
	}
}

// EvalAsDouble coerces the scalar to float64. Undefined is NaN.
func (s *Scalar) EvalAsDouble() float64 {
	s.mu.lock()
	defer s.mu.unlock()
	return s.asDoubleNolock()
}

func (s *Scalar) asDoubleNolock() float64 {
	switch s.tag {
	case Undefined:
		return math.NaN()
	case Bool:
		if s.b {
			return 1.0
		}
		return 0.0
	case Int:
		return float64(s.i)
	case Double:
		return s.d
	case Timestamp:
		return float64(s.ts)
	default:
		return math.NaN()
	}
}

// EvalAsTimestamp coerces the scalar to a microsecond count. Undefined is 0.
func (s *Scalar) EvalAsTimestamp() uint64 {
	s.mu.lock()
	defer s.mu.unlock()
	return s.asTimestampNolock()
}

func (s *Scalar) asTimestampNolock() uint64 {
	switch s.tag {
	case Undefined:
		return 0
	case Bool:
		if s.b {
			return 1
		}
		return 0
	case Int:
		return uint64(s.i)
	case Double:
		return uint64(s.d)
	case Timestamp:
		return s.ts
	default:
		return 0
	}
}

// coerce returns the value of other converted to a plain Scalar of the
// given tag. It takes no lock: callers pass a copy (see toScalar/snapshot).
func coerce(other Scalar, to Tag) Scalar {
	switch to {
	case Undefined:
		return New()
	case Bool:
		return NewBool(other.asBoolNolock())
	case Int:
		return NewInt(other.asIntNolock())
	case Double:
		return NewDouble(other.asDoubleNolock())
	case Timestamp:
		return NewTimestamp(other.asTimestampNolock())
	default:
		return New()
	}
}

// snapshot copies other under its own lock, so composite operations never
// hold two Scalar locks at once (per the root-to-leaves lock order in the
// concurrency model).
func snapshot(other *Scalar) Scalar {
	other.mu.lock()
	v := Scalar{tag: other.tag, b: other.b, i: other.i, d: other.d, ts: other.ts}
	other.mu.unlock()
	return v
}

// toScalar normalizes the "or a raw type" arithmetic/comparison argument
// into a Scalar, per §4.1.
func toScalar(v any) Scalar {
	switch x := v.(type) {
	case Scalar:
		return x
	case *Scalar:
		return snapshot(x)
	case bool:
		return NewBool(x)
	case int32:
		return NewInt(x)
	case int:
		return NewInt(int32(x))
	case float64:
		return NewDouble(x)
	case uint64:
		return NewTimestamp(x)
	default:
		return New()
	}
}
