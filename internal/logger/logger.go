// Package logger provides verbose pipeline logging for the outfit CLI.
// When verbose mode is enabled via the --verbose flag, each pipeline stage
// (retrieval, assembly, ranking, selection) reports its decisions to
// stderr, including why the index degraded to keyword search or a ranking
// model was bypassed.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

func logf(level, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if !verbose {
		return
	}
	fmt.Fprintf(output, "["+level+"] "+format+"\n", args...)
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) { logf("DEBUG", format, args...) }

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) { logf("INFO", format, args...) }

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) { logf("WARN", format, args...) }

// Section prints a stage header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Stage prints a stage header and returns a func that reports elapsed time
// when the stage finishes. Intended for defer at the top of a pipeline
// stage:
//
//	defer logger.Stage("Catalog Search")()
func Stage(name string) func() {
	Section(name)
	if !IsVerbose() {
		return func() {}
	}
	start := time.Now()
	return func() {
		logf("DEBUG", "%s finished in %s", name, time.Since(start).Round(time.Millisecond))
	}
}
