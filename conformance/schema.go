// Package conformance runs a YAML-described battery of source/expected-result
// pairs against a default Environment, independent of Go's testing package
// internals — a lightweight table format a non-Go contributor can extend
// without touching source.
package conformance

// TestSuite is one YAML conformance file: a named, described group of
// independent test cases.
type TestSuite struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Tests       []TestCase `yaml:"tests"`
}

// TestCase compiles and evaluates Source against a fresh default
// environment and checks the result against Expect.
type TestCase struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description,omitempty"`
	Skip        interface{} `yaml:"skip,omitempty"` // bool, or a string skip reason
	Source      string      `yaml:"source"`
	Expect      Expectation `yaml:"expect"`
}

// Expectation describes the expected outcome of evaluating a TestCase's
// source. Set Error for a case that should fail to compile; otherwise set
// Type and/or Value.
type Expectation struct {
	Type  string      `yaml:"type,omitempty"`  // "bool", "int", "double", "timestamp", "undefined"
	Value interface{} `yaml:"value,omitempty"` // compared via scalar.Equal, not a raw Go comparison
	Error string      `yaml:"error,omitempty"` // "syntax" or "lookup"
}

// IsSkipped reports whether the case should be skipped, and why.
func (tc *TestCase) IsSkipped() (bool, string) {
	switch v := tc.Skip.(type) {
	case nil:
		return false, ""
	case bool:
		if v {
			return true, "skipped"
		}
		return false, ""
	case string:
		return true, v
	default:
		return false, ""
	}
}
