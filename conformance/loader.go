package conformance

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// TestDataDir is the directory, relative to this package, holding the
// conformance suites' YAML fixtures.
const TestDataDir = "testdata"

// LoadedTest pairs one TestCase with the suite and file it came from, so a
// failure can be reported with full provenance.
type LoadedTest struct {
	File  string
	Suite TestSuite
	Test  TestCase
}

// LoadAllTests loads every *.yaml file under TestDataDir.
func LoadAllTests() ([]LoadedTest, error) {
	return LoadTestsFromDir(TestDataDir)
}

// LoadTestsFromDir walks dir for *.yaml/*.yml files and loads each as a
// TestSuite, flattening every suite's cases into individual LoadedTests.
func LoadTestsFromDir(dir string) ([]LoadedTest, error) {
	var loaded []LoadedTest

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		ext := filepath.Ext(path)
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		suite, err := loadTestFile(path)
		if err != nil {
			return fmt.Errorf("conformance: loading %s: %w", path, err)
		}
		for _, tc := range suite.Tests {
			loaded = append(loaded, LoadedTest{File: path, Suite: suite, Test: tc})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return loaded, nil
}

func loadTestFile(path string) (TestSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return TestSuite{}, err
	}
	var suite TestSuite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return TestSuite{}, err
	}
	return suite, nil
}
