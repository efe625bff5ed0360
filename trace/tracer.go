// Package trace provides optional execution tracing for LKit expression
// evaluation: which function was called, with what arguments, and what it
// returned, filtered by glob pattern on the function's name.
package trace

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"lkit/scalar"
)

// Tracer writes one line per traced event to an underlying writer, guarded
// by a mutex so concurrent evaluation across goroutines doesn't interleave
// a single line.
type Tracer struct {
	enabled bool
	filters []string
	writer  io.Writer
	mu      sync.Mutex
}

var globalTracer *Tracer

// Init installs the global tracer. filters is a set of glob patterns
// (path/filepath.Match syntax) matched against function names; an empty
// filter set traces every call. writer defaults to os.Stderr.
func Init(enabled bool, filters []string, writer io.Writer) {
	if writer == nil {
		writer = os.Stderr
	}
	globalTracer = &Tracer{enabled: enabled, filters: filters, writer: writer}
}

// IsEnabled reports whether the global tracer is installed and enabled.
func IsEnabled() bool {
	return globalTracer != nil && globalTracer.enabled
}

func (t *Tracer) matchesFilter(name string) bool {
	if len(t.filters) == 0 {
		return true
	}
	for _, pattern := range t.filters {
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	return false
}

// Call logs the invocation of a named function with its already-evaluated
// argument scalars.
func (t *Tracer) Call(name string, args []scalar.Scalar) {
	if !t.enabled || !t.matchesFilter(name) {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	argStrs := make([]string, len(args))
	for i := range args {
		argStrs[i] = args[i].String()
	}
	fmt.Fprintf(t.writer, "[TRACE] CALL %s(%s)\n", name, strings.Join(argStrs, ", "))
}

// Return logs a named function's result.
func (t *Tracer) Return(name string, result scalar.Scalar) {
	if !t.enabled || !t.matchesFilter(name) {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.writer, "[TRACE] RETURN %s => %s\n", name, result.String())
}

// Set logs a variable assignment made by the 'set' special form.
func (t *Tracer) Set(name string, value scalar.Scalar) {
	if !t.enabled {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.writer, "[TRACE]   SET %s = %s\n", name, value.String())
}

// CompileError logs a failed compilation.
func (t *Tracer) CompileError(source string, err error) {
	if !t.enabled {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	display := source
	if len(display) > 60 {
		display = display[:57] + "..."
	}
	fmt.Fprintf(t.writer, "[TRACE] COMPILE ERROR %q: %v\n", display, err)
}

// Call logs through the global tracer, if one is installed.
func Call(name string, args []scalar.Scalar) {
	if globalTracer != nil {
		globalTracer.Call(name, args)
	}
}

// Return logs through the global tracer, if one is installed.
func Return(name string, result scalar.Scalar) {
	if globalTracer != nil {
		globalTracer.Return(name, result)
	}
}

// Set logs through the global tracer, if one is installed.
func Set(name string, value scalar.Scalar) {
	if globalTracer != nil {
		globalTracer.Set(name, value)
	}
}

// CompileError logs through the global tracer, if one is installed.
func CompileError(source string, err error) {
	if globalTracer != nil {
		globalTracer.CompileError(source, err)
	}
}
