package scalar

import "math"

// Per-tag salts so e.g. Int(0) and Timestamp(0) don't collide; arbitrary
// odd constants, not cryptographic.
const (
	hashSaltBool      = 0x9e3779b97f4a7c15
	hashSaltInt       = 0xc2b2ae3d27d4eb4f
	hashSaltDouble    = 0x165667b19e3779f9
	hashSaltTimestamp = 0x27d4eb2f165667c5
)

// Hash returns a value stable within equality: equal scalars of the same
// tag always hash equal. Undefined hashes to the fixed sentinel 0.
//
// Because Equal coerces its right-hand side into the receiver's type (the
// destination-typed rule in §4.1), equality across mixed tags is not
// symmetric in general (Int(5).Equal(Double(5.5)) truncates and is true,
// while Double(5.5).Equal(Int(5)) is false). Hash does not attempt to
// paper over that asymmetry with a cross-type numeric hash: it hashes the
// scalar's own tag and payload, which is the documented behavior host code
// and the environment's table-equality check rely on.
func (s *Scalar) Hash() uint64 {
	s.mu.lock()
	defer s.mu.unlock()

	switch s.tag {
	case Undefined:
		return 0
	case Bool:
		if s.b {
			return 1 ^ hashSaltBool
		}
		return 2 ^ hashSaltBool
	case Int:
		return uint64(uint32(s.i)) ^ hashSaltInt
	case Double:
		d := s.d
		if d == 0 {
			d = 0 // -0.0 equals 0.0, so both hash as +0.0
		}
		return math.Float64bits(d) ^ hashSaltDouble
	case Timestamp:
		return s.ts ^ hashSaltTimestamp
	default:
		return 0
	}
}
