// Command wollok drives the compiler and virtual machine core against a
// linked Environment, either running its test suite or a single
// top-level body. There is no source parser in this core (§1
// Non-goals), so the environment it evaluates comes from
// sampleEnvironment — a stand-in for the linked program a real front
// end would hand the driver.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/Aliandi/wollok-ts/pkg/ast"
	"github.com/Aliandi/wollok-ts/pkg/config"
	"github.com/Aliandi/wollok-ts/pkg/driver"
	wollokerrors "github.com/Aliandi/wollok-ts/pkg/errors"
	"github.com/Aliandi/wollok-ts/pkg/natives"
	"github.com/Aliandi/wollok-ts/pkg/vm"

	"github.com/Aliandi/wollok-ts/internal/logger"
)

type options struct {
	configPath string
	debug      bool
	noColor    bool
	runTests   bool
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "Path to a YAML config file")
	flag.BoolVar(&opts.debug, "debug", false, "Verbose logging")
	flag.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	flag.BoolVar(&opts.runTests, "tests", false, "Run the sample environment's test suite instead of its main body")
	flag.Parse()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "wollok: failed to load config: %s\n", err)
		os.Exit(64)
	}
	if opts.debug {
		cfg.Debug = true
	}
	if opts.noColor {
		cfg.NoColor = true
	}

	logger.Init(cfg.Debug, cfg.NoColor)

	env := sampleEnvironment()
	d := driver.New(natives.Register(), cfg.MaxFrames)

	evaluation, err := d.BuildEvaluationFor(env)
	if err != nil {
		log.Error("failed to bootstrap evaluation", "error", err)
		os.Exit(70)
	}

	if opts.runTests {
		runTestSuite(d, evaluation, env)
		return
	}

	body := env.Tests()[0].Body
	result, err := d.Run(evaluation, body)
	if err != nil {
		reportFailure(err)
		os.Exit(70)
	}
	fmt.Printf("=> %s (%s)\n", result.Module, result.ID)
}

func runTestSuite(d *driver.Driver, evaluation *vm.Evaluation, env *ast.Environment) {
	results := d.RunTests(evaluation, env)
	failed := 0
	for _, r := range results {
		status := "ok"
		if !r.Passed() {
			failed++
			status = "FAIL"
		}
		name := r.Name
		if r.Describe != "" {
			name = r.Describe + " " + name
		}
		fmt.Printf("[%s] %s\n", status, name)
		if !r.Passed() {
			reportFailure(r.Err)
		}
	}
	fmt.Printf("%d passed, %d failed\n", len(results)-failed, failed)
	if failed > 0 {
		os.Exit(1)
	}
}

func reportFailure(err error) {
	if evalErr, ok := err.(wollokerrors.EvaluationError); ok {
		fmt.Fprintf(os.Stderr, "wollok: %s failure: %s\n", evalErr.Kind(), evalErr.Message())
		return
	}
	fmt.Fprintf(os.Stderr, "wollok: %s\n", err)
}
