package scalar

// op identifies which compound-assignment operator is being applied, so the
// Undefined-target adoption rule and the bool special cases (§4.1) can share
// one implementation.
type op int

const (
	opAdd op = iota
	opSub
	opMul
	opDiv
)

// AddAssign implements `s += v`. v may be a Scalar, *Scalar, or a raw
// bool/int32/int/float64/uint64.
func (s *Scalar) AddAssign(v any) { s.compoundAssign(opAdd, toScalar(v)) }

// SubAssign implements `s -= v`.
func (s *Scalar) SubAssign(v any) { s.compoundAssign(opSub, toScalar(v)) }

// MulAssign implements `s *= v`.
func (s *Scalar) MulAssign(v any) { s.compoundAssign(opMul, toScalar(v)) }

// DivAssign implements `s /= v`. Division by a zero-valued source clears s
// to Undefined (bool÷bool excepted, see below).
func (s *Scalar) DivAssign(v any) { s.compoundAssign(opDiv, toScalar(v)) }

func (s *Scalar) compoundAssign(o op, source Scalar) {
	s.mu.lock()
	defer s.mu.unlock()

	if s.tag == Undefined {
		s.adoptNolock(o, source)
		return
	}

	coerced := coerce(source, s.tag)

	if s.tag == Bool {
		s.boolCompoundNolock(o, coerced.b)
		return
	}

	switch o {
	case opAdd:
		s.numericCompoundNolock(func(a, b int32) int32 { return a + b },
			func(a, b float64) float64 { return a + b },
			func(a, b uint64) uint64 { return a + b }, coerced)
	case opSub:
		s.numericCompoundNolock(func(a, b int32) int32 { return a - b },
			func(a, b float64) float64 { return a - b },
			func(a, b uint64) uint64 { return a - b }, coerced)
	case opMul:
		s.numericCompoundNolock(func(a, b int32) int32 { return a * b },
			func(a, b float64) float64 { return a * b },
			func(a, b uint64) uint64 { return a * b }, coerced)
	case opDiv:
		s.divideNolock(coerced)
	}
}

// adoptNolock implements the "target is Undefined" branch of §4.1: += and
// *=/÷= semantics differ on adoption. += adopts source as-is; -= adopts
// source's type with a negated value; *= and /= against an Undefined target
// are no-ops.
func (s *Scalar) adoptNolock(o op, source Scalar) {
	switch o {
	case opAdd:
		s.assignNolock(source)
	case opSub:
		s.assignNolock(negateNolock(source))
	case opMul, opDiv:
		// no-op: target stays Undefined.
	}
}

func negateNolock(v Scalar) Scalar {
	switch v.tag {
	case Int:
		return NewInt(-v.i)
	case Double:
		return NewDouble(-v.d)
	case Timestamp:
		// Timestamps have no sign; negating reinterprets as a signed
		// count and flips it back into the unsigned domain.
		return NewTimestamp(uint64(-int64(v.ts)))
	case Bool:
		// No numeric negative exists for bool; the natural reading of
		// "negation" in a two-valued domain is logical complement.
		return NewBool(!v.b)
	default:
		return New()
	}
}

// numericCompoundNolock applies one of the three non-bool, non-division
// binary ops to s (already coerced to the target's tag) and coerced.
func (s *Scalar) numericCompoundNolock(iop func(a, b int32) int32, dop func(a, b float64) float64, top func(a, b uint64) uint64, coerced Scalar) {
	switch s.tag {
	case Int:
		s.i = iop(s.i, coerced.i)
	case Double:
		s.d = dop(s.d, coerced.d)
	case Timestamp:
		s.ts = top(s.ts, coerced.ts)
	}
}

// boolCompoundNolock implements the bool-domain special cases: a±b == a xor
// b, a÷b == !(a xor b). Multiplication follows the natural 0/1 reading of
// AND (unspecified by the spec table, chosen for symmetry with bitwise
// AND/XOR over {0,1}; documented in DESIGN.md).
func (s *Scalar) boolCompoundNolock(o op, src bool) {
	switch o {
	case opAdd, opSub:
		s.b = s.b != src
	case opMul:
		s.b = s.b && src
	case opDiv:
		s.b = !(s.b != src)
	}
}

// divideNolock implements /= for the non-bool numeric tags, clearing the
// target to Undefined on division by a zero-valued source.
func (s *Scalar) divideNolock(coerced Scalar) {
	switch s.tag {
	case Int:
		if coerced.i == 0 {
			s.clearNolock()
			return
		}
		s.i = s.i / coerced.i
	case Double:
		if coerced.d == 0 {
			s.clearNolock()
			return
		}
		s.d = s.d / coerced.d
	case Timestamp:
		if coerced.ts == 0 {
			s.clearNolock()
			return
		}
		s.ts = s.ts / coerced.ts
	}
}

// Add returns a new scalar holding a + b: copy a, then apply += b. The
// result's tag is therefore a's tag (or b's, if a is Undefined) — the
// documented "first-operand-dominates" rule the parser's fold relies on.
func Add(a, b Scalar) Scalar { r := a; r.AddAssign(b); return r }

// Sub returns a new scalar holding a - b, by the same first-operand rule.
func Sub(a, b Scalar) Scalar { r := a; r.SubAssign(b); return r }

// Mul returns a new scalar holding a * b, by the same first-operand rule.
func Mul(a, b Scalar) Scalar { r := a; r.MulAssign(b); return r }

// Div returns a new scalar holding a / b, by the same first-operand rule.
func Div(a, b Scalar) Scalar { r := a; r.DivAssign(b); return r }

// Negate returns a new scalar holding -a, preserving a's tag.
func Negate(a Scalar) Scalar {
	return negateNolock(a)
}
