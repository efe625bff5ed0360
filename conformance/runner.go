package conformance

import (
	"errors"
	"fmt"

	"lkit"
	"lkit/scalar"
)

// TestResult is the outcome of running one LoadedTest.
type TestResult struct {
	Passed  bool
	Skipped bool
	Reason  string // skip reason, or failure detail
}

// Runner compiles and evaluates each case's source against a fresh default
// environment; it holds no state of its own between cases.
type Runner struct{}

// NewRunner returns a Runner.
func NewRunner() *Runner { return &Runner{} }

// Run evaluates lt.Test.Source and checks it against lt.Test.Expect.
func (r *Runner) Run(lt LoadedTest) TestResult {
	if skip, reason := lt.Test.IsSkipped(); skip {
		return TestResult{Skipped: true, Reason: reason}
	}

	env := lkit.NewDefaultEnvironment()
	env.SetSource(lt.Test.Source)
	result, err := env.Evaluate()

	if lt.Test.Expect.Error != "" {
		return r.checkError(lt.Test.Expect.Error, err)
	}
	if err != nil {
		return TestResult{Passed: false, Reason: fmt.Sprintf("unexpected error: %v", err)}
	}
	return r.checkValue(lt.Test.Expect, result)
}

func (r *Runner) checkError(want string, got error) TestResult {
	if got == nil {
		return TestResult{Passed: false, Reason: fmt.Sprintf("expected %s error, evaluation succeeded", want)}
	}
	var syn *lkit.SyntaxError
	var lookup *lkit.LookupError
	switch want {
	case "syntax":
		if errors.As(got, &syn) {
			return TestResult{Passed: true}
		}
	case "lookup":
		if errors.As(got, &lookup) {
			return TestResult{Passed: true}
		}
	default:
		return TestResult{Passed: false, Reason: fmt.Sprintf("unknown expected error kind %q", want)}
	}
	return TestResult{Passed: false, Reason: fmt.Sprintf("expected %s error, got %v", want, got)}
}

func (r *Runner) checkValue(expect Expectation, got scalar.Scalar) TestResult {
	if expect.Type == "undefined" {
		if !got.IsUndefined() {
			return TestResult{Passed: false, Reason: fmt.Sprintf("expected undefined, got %s", got.String())}
		}
		return TestResult{Passed: true}
	}

	if expect.Type != "" && expect.Type != got.Type().String() {
		return TestResult{Passed: false, Reason: fmt.Sprintf("expected type %s, got %s (%s)", expect.Type, got.Type(), got.String())}
	}

	if expect.Value == nil {
		return TestResult{Passed: true}
	}

	want, err := scalarFromYAML(expect.Value, got.Type())
	if err != nil {
		return TestResult{Passed: false, Reason: err.Error()}
	}
	if !got.Equal(want) {
		return TestResult{Passed: false, Reason: fmt.Sprintf("expected %s, got %s", want.String(), got.String())}
	}
	return TestResult{Passed: true}
}

// scalarFromYAML converts a YAML-decoded value into a Scalar typed to
// match tag, so it can be compared against an evaluation result with
// Scalar.Equal.
func scalarFromYAML(v interface{}, tag scalar.Tag) (scalar.Scalar, error) {
	switch tag {
	case scalar.Bool:
		b, ok := v.(bool)
		if !ok {
			return scalar.Scalar{}, fmt.Errorf("conformance: expected bool value, got %T", v)
		}
		return scalar.NewBool(b), nil
	case scalar.Int:
		switch n := v.(type) {
		case int:
			return scalar.NewInt(int32(n)), nil
		case int64:
			return scalar.NewInt(int32(n)), nil
		default:
			return scalar.Scalar{}, fmt.Errorf("conformance: expected int value, got %T", v)
		}
	case scalar.Double:
		switch n := v.(type) {
		case float64:
			return scalar.NewDouble(n), nil
		case int:
			return scalar.NewDouble(float64(n)), nil
		default:
			return scalar.Scalar{}, fmt.Errorf("conformance: expected double value, got %T", v)
		}
	case scalar.Timestamp:
		switch n := v.(type) {
		case int:
			return scalar.NewTimestamp(uint64(n)), nil
		case int64:
			return scalar.NewTimestamp(uint64(n)), nil
		case string:
			ts, err := lkit.ParseTimestamp(n)
			if err != nil {
				return scalar.Scalar{}, fmt.Errorf("conformance: parsing timestamp value %q: %w", n, err)
			}
			return scalar.NewTimestamp(ts), nil
		default:
			return scalar.Scalar{}, fmt.Errorf("conformance: expected timestamp value, got %T", v)
		}
	default:
		return scalar.Scalar{}, fmt.Errorf("conformance: cannot build a %s-typed expectation", tag)
	}
}
