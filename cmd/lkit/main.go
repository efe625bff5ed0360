package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"lkit"
	"lkit/trace"
)

func main() {
	evalExpr := flag.String("eval", "", "Evaluate a single LKit expression and print the result (e.g. \"(+ 1 2)\")")
	traceEnabled := flag.Bool("trace", false, "Enable execution tracing")
	traceFilter := flag.String("trace-filter", "", "Trace filter pattern (glob, e.g. '+' or '*')")

	flag.Parse()

	if *traceEnabled {
		var filters []string
		if *traceFilter != "" {
			filters = strings.Split(*traceFilter, ",")
			for i := range filters {
				filters[i] = strings.TrimSpace(filters[i])
			}
		}
		trace.Init(true, filters, os.Stderr)
		log.Printf("tracing enabled (filters: %v)", filters)
	} else {
		trace.Init(false, nil, nil)
	}

	env := lkit.NewDefaultEnvironment()

	if *evalExpr != "" {
		runSource(env, *evalExpr)
		return
	}

	runREPL(env)
}

// runSource compiles and evaluates a single piece of source text, printing
// the result or error to stdout/stderr.
func runSource(env *lkit.Environment, source string) {
	env.SetSource(source)
	result, err := env.Evaluate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("=> %s\n", result.String())
}

// runREPL reads one form per line from stdin, evaluating each against the
// same environment so variables bound by an earlier line stay visible to
// later ones.
func runREPL(env *lkit.Environment) {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("lkit> ")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			fmt.Print("lkit> ")
			continue
		}
		env.SetSource(line)
		result, err := env.Evaluate()
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		} else {
			fmt.Printf("=> %s\n", result.String())
		}
		fmt.Print("lkit> ")
	}
}
