package driver

import (
	"github.com/charmbracelet/log"

	"github.com/Aliandi/wollok-ts/pkg/ast"
	"github.com/Aliandi/wollok-ts/pkg/vm"
)

// TestResult is the outcome of running a single test's body against a
// clone of the bootstrap evaluation.
type TestResult struct {
	Name     string
	Describe string // empty for a top-level test
	Err      error  // nil on success
}

// Passed reports whether the test completed without error.
func (r TestResult) Passed() bool { return r.Err == nil }

// RunTests clones evaluation once per test — including each test
// grouped under a Describe, running its beforeEach/afterEach hooks
// around the test body — and reports pass/fail per test (§6,
// "runTests": "initialize evaluation, then for each test clone and
// run").
func (d *Driver) RunTests(evaluation *vm.Evaluation, env *ast.Environment) []TestResult {
	var results []TestResult

	for _, t := range env.Tests() {
		results = append(results, d.runTest(evaluation, "", t.Name, nil, t.Body, nil))
	}
	for _, desc := range env.Describes() {
		for _, t := range desc.Tests {
			results = append(results, d.runTest(evaluation, desc.Name, t.Name, desc.BeforeEach, t.Body, desc.AfterEach))
		}
	}
	return results
}

func (d *Driver) runTest(evaluation *vm.Evaluation, describe, name string, before, body, after *ast.Body) TestResult {
	clone := evaluation.Clone()
	result := TestResult{Name: name, Describe: describe}

	log.Debug("running test", "describe", describe, "name", name)

	if before != nil {
		if _, err := d.Run(clone, before); err != nil {
			result.Err = err
			log.Warn("test beforeEach failed", "name", name, "error", err)
			return result
		}
	}

	_, err := d.Run(clone, body)
	result.Err = err
	if err != nil {
		log.Warn("test failed", "name", name, "error", err)
	}

	if after != nil {
		if _, afterErr := d.Run(clone, after); afterErr != nil && result.Err == nil {
			result.Err = afterErr
			log.Warn("test afterEach failed", "name", name, "error", afterErr)
		}
	}
	return result
}
