package scalar

// Equal implements `s == v`. Per §4.1, Undefined compares equal only to
// Undefined; otherwise v is coerced into s's type before comparing.
func (s *Scalar) Equal(v any) bool {
	source := toScalar(v)
	s.mu.lock()
	defer s.mu.unlock()

	if s.tag == Undefined || source.tag == Undefined {
		return s.tag == Undefined && source.tag == Undefined
	}

	coerced := coerce(source, s.tag)
	switch s.tag {
	case Bool:
		return s.b == coerced.b
	case Int:
		return s.i == coerced.i
	case Double:
		return s.d == coerced.d
	case Timestamp:
		return s.ts == coerced.ts
	default:
		return false
	}
}

// NotEqual implements `s != v`.
func (s *Scalar) NotEqual(v any) bool { return !s.Equal(v) }

// Less implements `s < v`.
func (s *Scalar) Less(v any) bool { return s.order(v, func(c int) bool { return c < 0 }) }

// LessEqual implements `s <= v`.
func (s *Scalar) LessEqual(v any) bool { return s.order(v, func(c int) bool { return c <= 0 }) }

// Greater implements `s > v`.
func (s *Scalar) Greater(v any) bool { return s.order(v, func(c int) bool { return c > 0 }) }

// GreaterEqual implements `s >= v`.
func (s *Scalar) GreaterEqual(v any) bool { return s.order(v, func(c int) bool { return c >= 0 }) }

// order coerces v into s's type and applies pred to a three-way comparison,
// except that any ordering against Undefined is false, per §4.1.
func (s *Scalar) order(v any, pred func(int) bool) bool {
	source := toScalar(v)
	s.mu.lock()
	defer s.mu.unlock()

	if s.tag == Undefined || source.tag == Undefined {
		return false
	}

	coerced := coerce(source, s.tag)
	var c int
	switch s.tag {
	case Bool:
		c = boolCompare(s.b, coerced.b)
	case Int:
		c = intCompare(s.i, coerced.i)
	case Double:
		c = doubleCompare(s.d, coerced.d)
	case Timestamp:
		c = timestampCompare(s.ts, coerced.ts)
	}
	return pred(c)
}

func boolCompare(a, b bool) int {
	if a == b {
		return 0
	}
	if !a && b {
		return -1
	}
	return 1
}

func intCompare(a, b int32) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func doubleCompare(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func timestampCompare(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
